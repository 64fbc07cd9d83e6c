// Package config loads game settings from HCL files.
//
// A settings file may reference the variables max_level, board_width and
// board_height:
//
//	initial_level    = max_level
//	seed             = 42
//	ticks_per_second = 60
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/plus3/tetris/engine"
	"github.com/zclconf/go-cty/cty"
)

// DefaultTicksPerSecond is the frame rate the engine's drop intervals are tuned for.
const DefaultTicksPerSecond = 60

// Settings is the resolved configuration of a session.
type Settings struct {
	InitialLevel   int
	Seed           uint64
	Width          int
	Height         int
	TicksPerSecond int
	LogLevel       string
	LogFormat      string
}

// fileSchema mirrors the HCL layout. Pointers distinguish unset attributes.
type fileSchema struct {
	InitialLevel   *int       `hcl:"initial_level,optional"`
	Seed           *int64     `hcl:"seed,optional"`
	Width          *int       `hcl:"width,optional"`
	Height         *int       `hcl:"height,optional"`
	TicksPerSecond *int       `hcl:"ticks_per_second,optional"`
	Log            *logSchema `hcl:"log,block"`
}

type logSchema struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Seed:           uint64(time.Now().UnixNano()),
		Width:          engine.DefaultWidth,
		Height:         engine.DefaultHeight,
		TicksPerSecond: DefaultTicksPerSecond,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load reads and validates the settings file at path.
func Load(path string) (Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("config: parsing %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse decodes settings from src. filename is only used in diagnostics.
func Parse(src []byte, filename string) (Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Settings{}, fmt.Errorf("config: parsing %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (Settings, error) {
	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &schema); diags.HasErrors() {
		return Settings{}, fmt.Errorf("config: decoding %s: %w", filename, diags)
	}

	s := Default()
	if schema.InitialLevel != nil {
		s.InitialLevel = *schema.InitialLevel
	}
	if schema.Seed != nil {
		s.Seed = uint64(*schema.Seed)
	}
	if schema.Width != nil {
		s.Width = *schema.Width
	}
	if schema.Height != nil {
		s.Height = *schema.Height
	}
	if schema.TicksPerSecond != nil {
		s.TicksPerSecond = *schema.TicksPerSecond
	}
	if schema.Log != nil {
		if schema.Log.Level != nil {
			s.LogLevel = *schema.Log.Level
		}
		if schema.Log.Format != nil {
			s.LogFormat = *schema.Log.Format
		}
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", filename, err)
	}
	return s, nil
}

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"max_level":      cty.NumberIntVal(engine.MaxStartLevel),
			"board_width":  cty.NumberIntVal(engine.DefaultWidth),
			"board_height": cty.NumberIntVal(engine.DefaultHeight),
		},
	}
}

// Validate checks the settings against the engine's limits.
func (s Settings) Validate() error {
	if err := s.Engine(nil).Validate(); err != nil {
		return err
	}
	if s.TicksPerSecond < 1 || s.TicksPerSecond > 1000 {
		return fmt.Errorf("ticks_per_second %d is outside [1, 1000]", s.TicksPerSecond)
	}
	return nil
}

// Engine converts the settings into an engine configuration.
func (s Settings) Engine(logger *slog.Logger) engine.Config {
	return engine.Config{
		Width:        s.Width,
		Height:       s.Height,
		InitialLevel: s.InitialLevel,
		Seed:         s.Seed,
		Logger:       logger,
	}
}

// TickInterval returns the wall-clock duration of one engine tick.
func (s Settings) TickInterval() time.Duration {
	return time.Second / time.Duration(s.TicksPerSecond)
}
