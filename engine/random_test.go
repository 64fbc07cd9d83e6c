package engine_test

import (
	"testing"

	"github.com/plus3/tetris/engine"
	"github.com/stretchr/testify/assert"
)

func TestRandomSourceCoversAllPieces(t *testing.T) {
	src := engine.NewRandomSource(99)
	counts := make(map[engine.Piece]int)
	for range 7000 {
		p := src.Next()
		assert.True(t, p.Valid())
		counts[p]++
	}
	assert.Len(t, counts, engine.PieceCount)
	for p, n := range counts {
		assert.Greater(t, n, 700, "piece %v drawn %d times", p, n)
	}
}

func TestRandomSourceSeeded(t *testing.T) {
	a := engine.NewRandomSource(5)
	b := engine.NewRandomSource(5)
	for range 100 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestSequenceSource(t *testing.T) {
	src := engine.NewSequenceSource(engine.Bar, engine.Z)
	assert.Equal(t, engine.Bar, src.Next())
	assert.Equal(t, engine.Z, src.Next())
	assert.Equal(t, engine.Bar, src.Next())

	assert.Panics(t, func() { engine.NewSequenceSource() })
	assert.Panics(t, func() { engine.NewSequenceSource(engine.Empty) })
}
