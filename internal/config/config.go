// Package config resolves maze generation and logging settings.
//
// Sources are layered, each overriding the previous:
//
//	Default() ← .env file ← process environment ← HCL file ← command-line flags
//
// The .env file and the environment share the MAZE_* keys below; the process
// environment wins over the file. Flags are applied by package cli.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/labyrinth/internal/logging"
	"github.com/katalvlaran/labyrinth/maze"
)

// ErrInvalidConfig indicates a value that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid")

// Environment keys.
const (
	EnvRows             = "MAZE_ROWS"
	EnvCols             = "MAZE_COLS"
	EnvSeed             = "MAZE_SEED"
	EnvWallRemovalRatio = "MAZE_WALL_REMOVAL_RATIO"
	EnvLogLevel         = "MAZE_LOG_LEVEL"
	EnvLogFormat        = "MAZE_LOG_FORMAT"
)

var envKeys = []string{EnvRows, EnvCols, EnvSeed, EnvWallRemovalRatio, EnvLogLevel, EnvLogFormat}

// Config holds resolved settings.
type Config struct {
	Rows int
	Cols int

	// Seed is used only when HasSeed is set; otherwise generation is
	// seeded from the clock.
	Seed    int64
	HasSeed bool

	WallRemovalRatio float64

	LogLevel  string
	LogFormat string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Rows:             10,
		Cols:             10,
		WallRemovalRatio: maze.DefaultWallRemovalRatio,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	var errs []error
	if c.Rows < 1 || c.Rows > maze.MaxDimension {
		errs = append(errs, fmt.Errorf("rows %d outside 1..%d", c.Rows, maze.MaxDimension))
	}
	if c.Cols < 1 || c.Cols > maze.MaxDimension {
		errs = append(errs, fmt.Errorf("cols %d outside 1..%d", c.Cols, maze.MaxDimension))
	}
	if !(c.WallRemovalRatio >= 0 && c.WallRemovalRatio <= 1) {
		errs = append(errs, fmt.Errorf("wall removal ratio %v outside [0,1]", c.WallRemovalRatio))
	}
	if !slices.Contains(logging.Levels, strings.ToLower(c.LogLevel)) {
		errs = append(errs, fmt.Errorf("log level %q", c.LogLevel))
	}
	if !slices.Contains(logging.Formats, strings.ToLower(c.LogFormat)) {
		errs = append(errs, fmt.Errorf("log format %q", c.LogFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// MazeOptions translates the generation settings into maze options.
func (c Config) MazeOptions() []maze.Option {
	opts := []maze.Option{maze.WithWallRemovalRatio(c.WallRemovalRatio)}
	if c.HasSeed {
		opts = append(opts, maze.WithSeed(c.Seed))
	}
	return opts
}
