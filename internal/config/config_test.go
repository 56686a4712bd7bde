package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/internal/config"
)

func TestDefault_Valid(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.False(t, c.HasSeed)
	assert.Len(t, c.MazeOptions(), 1)
}

func TestValidate_CollectsAll(t *testing.T) {
	c := config.Default()
	c.Rows = 0
	c.Cols = 300
	c.WallRemovalRatio = -1
	c.LogLevel = "chatty"
	c.LogFormat = "yaml"
	err := c.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	for _, part := range []string{"rows 0", "cols 300", "ratio -1", `"chatty"`, `"yaml"`} {
		assert.Contains(t, err.Error(), part)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromEnv_DotenvThenEnvironment(t *testing.T) {
	path := writeFile(t, ".env", "MAZE_ROWS=12\nMAZE_COLS=14\nMAZE_SEED=99\nMAZE_LOG_FORMAT=json\n")
	t.Setenv(config.EnvCols, "40")
	t.Setenv(config.EnvWallRemovalRatio, "0.25")

	c, err := config.FromEnv(config.Default(), path)
	require.NoError(t, err)
	assert.Equal(t, 12, c.Rows)
	assert.Equal(t, 40, c.Cols, "environment wins over .env")
	assert.True(t, c.HasSeed)
	assert.Equal(t, int64(99), c.Seed)
	assert.Equal(t, 0.25, c.WallRemovalRatio)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, "info", c.LogLevel)
	assert.Len(t, c.MazeOptions(), 2)
}

func TestFromEnv_MissingDotenv(t *testing.T) {
	c, err := config.FromEnv(config.Default(), filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestFromEnv_BadNumber(t *testing.T) {
	t.Setenv(config.EnvRows, "many")
	_, err := config.FromEnv(config.Default(), "")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestFromHCL(t *testing.T) {
	src := []byte(`
maze {
  rows               = 20
  seed               = 7
  wall_removal_ratio = 0
}
log {
  level = "debug"
}
`)
	c, err := config.FromHCL(config.Default(), src, "maze.hcl")
	require.NoError(t, err)
	assert.Equal(t, 20, c.Rows)
	assert.Equal(t, 10, c.Cols)
	assert.True(t, c.HasSeed)
	assert.Equal(t, int64(7), c.Seed)
	assert.Zero(t, c.WallRemovalRatio)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestFromHCL_Expressions(t *testing.T) {
	src := []byte(`
maze {
  rows = base.rows * 3
  cols = max_dimension
  wall_removal_ratio = base.wall_removal_ratio / 2
}
`)
	c, err := config.FromHCL(config.Default(), src, "derived.hcl")
	require.NoError(t, err)
	assert.Equal(t, 30, c.Rows)
	assert.Equal(t, 255, c.Cols)
	assert.InDelta(t, 0.05, c.WallRemovalRatio, 1e-9)

	_, err = config.FromHCL(config.Default(), []byte("maze {\n  rows = base.depth\n}\n"), "missing.hcl")
	require.Error(t, err)
}

func TestFromFile(t *testing.T) {
	path := writeFile(t, "maze.hcl", "maze {\n  cols = 33\n}\n")
	c, err := config.FromFile(config.Default(), path)
	require.NoError(t, err)
	assert.Equal(t, 33, c.Cols)

	_, err = config.FromFile(config.Default(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}

func TestFromHCL_Errors(t *testing.T) {
	_, err := config.FromHCL(config.Default(), []byte("maze {"), "broken.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")

	_, err = config.FromHCL(config.Default(), []byte("maze {\n  rows = \"wide\"\n}\n"), "typed.hcl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")

	_, err = config.FromHCL(config.Default(), []byte("color = \"red\"\n"), "unknown.hcl")
	require.Error(t, err)
}
