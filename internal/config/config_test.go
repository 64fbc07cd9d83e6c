package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/tetris/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFull(t *testing.T) {
	src := []byte(`
initial_level    = max_level
seed             = 42
width            = board_width + 2
height           = board_height
ticks_per_second = 30

log {
  level  = "debug"
  format = "json"
}
`)
	s, err := Parse(src, "game.hcl")
	require.NoError(t, err)

	assert.Equal(t, engine.MaxStartLevel, s.InitialLevel)
	assert.Equal(t, uint64(42), s.Seed)
	assert.Equal(t, 12, s.Width)
	assert.Equal(t, 20, s.Height)
	assert.Equal(t, 30, s.TicksPerSecond)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.LogFormat)
	assert.Equal(t, time.Second/30, s.TickInterval())
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte(`seed = 7`), "game.hcl")
	require.NoError(t, err)

	assert.Equal(t, 0, s.InitialLevel)
	assert.Equal(t, uint64(7), s.Seed)
	assert.Equal(t, engine.DefaultWidth, s.Width)
	assert.Equal(t, engine.DefaultHeight, s.Height)
	assert.Equal(t, DefaultTicksPerSecond, s.TicksPerSecond)
	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "text", s.LogFormat)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `initial_level = `},
		{"unknown attribute", `speed = 3`},
		{"wrong type", `initial_level = "fast"`},
		{"old width variable", `width = default_width`},
		{"negative level", `initial_level = -1`},
		{"narrow board", `width = 3`},
		{"tick rate", `ticks_per_second = 0`},
		{"unknown variable", `initial_level = min_level`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.hcl")
	require.NoError(t, os.WriteFile(path, []byte("initial_level = 3\nseed = 1\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.InitialLevel)

	g, err := engine.New(s.Engine(nil))
	require.NoError(t, err)
	assert.Equal(t, 9, g.ClearedLines())

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}
