// Command mazectl generates mazes into the compact binary encoding and
// draws the weighted shortest path through an encoded maze.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/labyrinth/internal/cli"
	"github.com/katalvlaran/labyrinth/internal/logging"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

func main() {
	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic with its streams injected for testing.
// Usage text and logs go to errW so outW carries only maze data.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	log, err := logging.New(inv.Config.LogLevel, inv.Config.LogFormat, errW)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	switch inv.Command {
	case cli.CommandGenerate:
		return generate(outW, inv, log)
	default:
		return solve(in, outW, inv, log)
	}
}

func generate(outW io.Writer, inv *cli.Invocation, log *slog.Logger) error {
	opts := append(inv.Config.MazeOptions(), maze.WithLogger(log))
	m, err := maze.Generate(inv.Config.Rows, inv.Config.Cols, opts...)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := m.Encode(outW); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	log.Info("maze generated", "rows", m.Rows(), "cols", m.Cols(), "open_pairs", m.OpenWallPairs())
	return nil
}

func solve(in io.Reader, outW io.Writer, inv *cli.Invocation, log *slog.Logger) error {
	if inv.InPath != "" {
		f, err := os.Open(inv.InPath)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		defer f.Close()
		in = f
	}

	m, err := maze.DecodeWithLogger(in, log)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	sol, err := m.Solve()
	switch {
	case errors.Is(err, maze.ErrNoEndpoints):
		// Without endpoints there is nothing to solve; draw the bare maze.
		log.Warn("maze has no recoverable endpoints, skipping solve", "rows", m.Rows(), "cols", m.Cols())
		sol = nil
	case err != nil:
		return fmt.Errorf("solve: %w", err)
	default:
		log.Info("maze solved", "steps", len(sol.Path), "cost", sol.Cost)
	}

	if inv.Format == cli.FormatASCII {
		_, err = io.WriteString(outW, render.ASCII(m, sol))
		return err
	}
	return render.SVG(outW, m, sol)
}
