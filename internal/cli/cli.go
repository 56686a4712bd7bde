package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/labyrinth/internal/config"
)

// Subcommands.
const (
	CommandGenerate = "generate"
	CommandSolve    = "solve"
)

// Output formats for solve.
const (
	FormatSVG   = "svg"
	FormatASCII = "ascii"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Invocation is a fully parsed and validated command line.
type Invocation struct {
	Command string
	Config  config.Config

	// Format is the solve output format.
	Format string

	// InPath is the solve input file; empty means standard input.
	InPath string
}

const usage = `
mazectl - generate, store and solve rectangular mazes.

Usage:
  mazectl generate [options]   write a new maze encoding to stdout
  mazectl solve [options]      read an encoding and draw its solution

Settings are layered: defaults, .env file, MAZE_* environment, -config file, flags.

Options:
`

// Parse processes command-line arguments. It returns an Invocation, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "--help" {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}
	inv := &Invocation{Command: args[0]}
	if inv.Command != CommandGenerate && inv.Command != CommandSolve {
		return nil, false, usageError("unknown command %q: want %q or %q", inv.Command, CommandGenerate, CommandSolve)
	}

	flagSet := flag.NewFlagSet("mazectl "+inv.Command, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	envFlag := flagSet.String("env", ".env", "Path to a dotenv file; ignored if missing.")
	rowsFlag := flagSet.Int("rows", 0, "Number of rows (1-255).")
	colsFlag := flagSet.Int("cols", 0, "Number of columns (1-255).")
	seedFlag := flagSet.Int64("seed", 0, "Random seed for a reproducible maze.")
	ratioFlag := flagSet.Float64("ratio", 0, "Share of cells used as extra wall removal attempts.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")
	formatFlag := flagSet.String("format", FormatSVG, "Solve output format: 'svg' or 'ascii'.")
	inFlag := flagSet.String("in", "", "Solve input file; standard input when empty.")

	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, usageError("unexpected arguments: %v", flagSet.Args())
	}

	cfg, err := config.FromEnv(config.Default(), *envFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if *configFlag != "" {
		if cfg, err = config.FromFile(cfg, *configFlag); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	// Explicit flags win over every other source.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rowsFlag
		case "cols":
			cfg.Cols = *colsFlag
		case "seed":
			cfg.Seed, cfg.HasSeed = *seedFlag, true
		case "ratio":
			cfg.WallRemovalRatio = *ratioFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		}
	})
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	inv.Config = cfg

	inv.Format = strings.ToLower(*formatFlag)
	if inv.Format != FormatSVG && inv.Format != FormatASCII {
		return nil, false, usageError("invalid format %q: must be %q or %q", *formatFlag, FormatSVG, FormatASCII)
	}
	inv.InPath = *inFlag
	return inv, false, nil
}
