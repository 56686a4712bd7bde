package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/exp/maps"
)

// FromEnv overlays base with MAZE_* values from the dotenv file (if path is
// non-empty and the file exists) and then from the process environment.
func FromEnv(base Config, dotenvPath string) (Config, error) {
	vars := make(map[string]string, len(envKeys))
	if dotenvPath != "" {
		fileVars, err := godotenv.Read(dotenvPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return base, fmt.Errorf("config: read %s: %w", dotenvPath, err)
		default:
			maps.Copy(vars, fileVars)
		}
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}
	return applyEnv(base, vars)
}

func applyEnv(c Config, vars map[string]string) (Config, error) {
	var err error
	if v, ok := vars[EnvRows]; ok {
		if c.Rows, err = envInt(EnvRows, v); err != nil {
			return c, err
		}
	}
	if v, ok := vars[EnvCols]; ok {
		if c.Cols, err = envInt(EnvCols, v); err != nil {
			return c, err
		}
	}
	if v, ok := vars[EnvSeed]; ok {
		seed, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return c, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, EnvSeed, perr)
		}
		c.Seed, c.HasSeed = seed, true
	}
	if v, ok := vars[EnvWallRemovalRatio]; ok {
		ratio, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			return c, fmt.Errorf("%w: %s must be a number: %v", ErrInvalidConfig, EnvWallRemovalRatio, perr)
		}
		c.WallRemovalRatio = ratio
	}
	if v, ok := vars[EnvLogLevel]; ok {
		c.LogLevel = v
	}
	if v, ok := vars[EnvLogFormat]; ok {
		c.LogFormat = v
	}
	return c, nil
}

func envInt(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}
