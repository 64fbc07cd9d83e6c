package engine

import (
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20

	// minWidth and minHeight fit every spawn layout.
	minWidth  = 4
	minHeight = 2
)

// Config holds the parameters of a new game.
type Config struct {
	Width  int
	Height int
	// InitialLevel sets the starting cleared-line counter to
	// min(45, InitialLevel*3).
	InitialLevel int
	// Seed feeds the default RandomSource. Ignored when Source is set.
	Seed uint64
	// Source overrides the piece generator.
	Source PieceSource
	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a 10x20 level 0 game seeded from the clock.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Seed:   uint64(time.Now().UnixNano()),
	}
}

// Validate checks that the configuration can host a game.
func (c Config) Validate() error {
	if c.Width < minWidth || c.Height < minHeight {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d", ErrInvalidConfig, c.Width, c.Height, minWidth, minHeight)
	}
	if c.InitialLevel < 0 {
		return fmt.Errorf("%w: initial level %d is negative", ErrInvalidConfig, c.InitialLevel)
	}
	return nil
}
