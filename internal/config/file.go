package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/labyrinth/maze"
)

// hclConfigFile is the top-level structure of a settings file:
//
//	maze {
//	  rows               = 20
//	  cols               = 30
//	  seed               = 7
//	  wall_removal_ratio = 0.1
//	}
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
// Every block and attribute is optional. Expressions may refer to the
// settings being overlaid as base.rows, base.cols and base.wall_removal_ratio,
// and to max_dimension.
type hclConfigFile struct {
	Maze *hclMazeBlock `hcl:"maze,block"`
	Log  *hclLogBlock  `hcl:"log,block"`
}

type hclMazeBlock struct {
	Rows             *int     `hcl:"rows,optional"`
	Cols             *int     `hcl:"cols,optional"`
	Seed             *int64   `hcl:"seed,optional"`
	WallRemovalRatio *float64 `hcl:"wall_removal_ratio,optional"`
}

type hclLogBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// FromFile overlays base with the settings in the HCL file at path.
func FromFile(base Config, path string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decodeBody(base, file, path)
}

// FromHCL is FromFile for in-memory source; filename is used in diagnostics.
func FromHCL(base Config, src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decodeBody(base, file, filename)
}

func decodeBody(c Config, file *hcl.File, name string) (Config, error) {
	var parsed hclConfigFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(c), &parsed); diags.HasErrors() {
		return c, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}
	if m := parsed.Maze; m != nil {
		if m.Rows != nil {
			c.Rows = *m.Rows
		}
		if m.Cols != nil {
			c.Cols = *m.Cols
		}
		if m.Seed != nil {
			c.Seed, c.HasSeed = *m.Seed, true
		}
		if m.WallRemovalRatio != nil {
			c.WallRemovalRatio = *m.WallRemovalRatio
		}
	}
	if l := parsed.Log; l != nil {
		if l.Level != nil {
			c.LogLevel = *l.Level
		}
		if l.Format != nil {
			c.LogFormat = *l.Format
		}
	}
	return c, nil
}

// evalContext exposes the lower configuration layers to file expressions.
func evalContext(c Config) *hcl.EvalContext {
	vars := map[string]cty.Value{
		"base": cty.ObjectVal(map[string]cty.Value{
			"rows":               cty.NumberIntVal(int64(c.Rows)),
			"cols":               cty.NumberIntVal(int64(c.Cols)),
			"wall_removal_ratio": cty.NumberFloatVal(c.WallRemovalRatio),
		}),
		"max_dimension": cty.NumberIntVal(maze.MaxDimension),
	}
	return &hcl.EvalContext{Variables: vars}
}
