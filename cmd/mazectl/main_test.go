package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/internal/cli"
	"github.com/katalvlaran/labyrinth/maze"
)

func noEnv(t *testing.T) string {
	return "-env=" + filepath.Join(t.TempDir(), "none.env")
}

func TestRun_GenerateThenSolve(t *testing.T) {
	var encoded, logs bytes.Buffer
	err := run(nil, &encoded, &logs, []string{"generate", noEnv(t), "-rows", "6", "-cols", "8", "-seed", "11", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "maze generated")

	m, err := maze.Parse(encoded.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 6, m.Rows())
	assert.Equal(t, 8, m.Cols())

	var drawing bytes.Buffer
	err = run(bytes.NewReader(encoded.Bytes()), &drawing, &bytes.Buffer{}, []string{"solve", noEnv(t), "-format", "ascii"})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(drawing.String(), "\n"), "\n")
	assert.Len(t, lines, 2*6+1)
	assert.Contains(t, drawing.String(), "S")
	assert.Contains(t, drawing.String(), "E")
}

func TestRun_SolveFromFileAsSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corridor.mze")
	require.NoError(t, os.WriteFile(path, []byte{'M', 'A', 'Z', 'E', 1, 3, 0x1A, 0x2A, 0x3A}, 0o600))

	var out bytes.Buffer
	err := run(nil, &out, &bytes.Buffer{}, []string{"solve", noEnv(t), "-in", path})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "<svg")
	assert.Contains(t, out.String(), "<polyline")
}

func TestRun_SolveWithoutEndpointsDrawsMaze(t *testing.T) {
	// A closed 1x2 grid: both cells keep their west and east boundary walls.
	closed := []byte{'M', 'A', 'Z', 'E', 1, 2, 0x0E, 0x0B}
	var out, logs bytes.Buffer
	err := run(bytes.NewReader(closed), &out, &logs, []string{"solve", noEnv(t), "-format", "ascii"})
	require.NoError(t, err)
	assert.Equal(t, "+---+---+\n|       |\n+---+---+\n", out.String())
	assert.Contains(t, logs.String(), "skipping solve")
}

func TestRun_SeedIsReproducible(t *testing.T) {
	args := []string{"generate", noEnv(t), "-rows", "9", "-cols", "9", "-seed", "5", "-log-level", "error"}
	var a, b bytes.Buffer
	require.NoError(t, run(nil, &a, &bytes.Buffer{}, args))
	require.NoError(t, run(nil, &b, &bytes.Buffer{}, args))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestRun_Errors(t *testing.T) {
	err := run(nil, &bytes.Buffer{}, &bytes.Buffer{}, []string{"generate", noEnv(t), "-rows", "0"})
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)

	err = run(strings.NewReader("NOPE"), &bytes.Buffer{}, &bytes.Buffer{}, []string{"solve", noEnv(t)})
	require.ErrorIs(t, err, maze.ErrInvalidFormat)
	assert.False(t, errors.As(err, &exitErr))
}
