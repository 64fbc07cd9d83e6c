package engine_test

import (
	"testing"

	"github.com/plus3/tetris/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceValid(t *testing.T) {
	assert.False(t, engine.Empty.Valid())
	for _, p := range engine.Pieces() {
		assert.True(t, p.Valid(), p.String())
	}
	assert.False(t, engine.Piece(8).Valid())
	assert.Len(t, engine.Pieces(), engine.PieceCount)
}

func TestPieceString(t *testing.T) {
	assert.Equal(t, "Square", engine.Square.String())
	assert.Equal(t, "Empty", engine.Empty.String())
	assert.Equal(t, "Piece(9)", engine.Piece(9).String())
}

func TestStartingOffsetsAreDistinct(t *testing.T) {
	for _, p := range engine.Pieces() {
		t.Run(p.String(), func(t *testing.T) {
			offsets, err := p.StartingOffsets()
			require.NoError(t, err)

			seen := make(map[engine.Point]bool)
			for _, o := range offsets {
				assert.False(t, seen[o], "duplicate offset %v", o)
				seen[o] = true
				assert.GreaterOrEqual(t, o.Y, 0)
				assert.GreaterOrEqual(t, o.X, -2)
				assert.LessOrEqual(t, o.X, 1)
			}
		})
	}
}

func TestRotationDeltasCloseOverFourSteps(t *testing.T) {
	for _, p := range engine.Pieces() {
		t.Run(p.String(), func(t *testing.T) {
			var sum engine.Coords
			for o := range 4 {
				deltas, err := p.RotationDeltas(o)
				require.NoError(t, err)
				sum = sum.Offset(deltas)
			}
			assert.Equal(t, engine.Coords{}, sum)
		})
	}
}

func TestSymmetricRotationTables(t *testing.T) {
	for _, p := range []engine.Piece{engine.RightZ, engine.Z, engine.Bar} {
		d0, _ := p.RotationDeltas(0)
		d1, _ := p.RotationDeltas(1)
		d2, _ := p.RotationDeltas(2)
		d3, _ := p.RotationDeltas(3)
		assert.Equal(t, d0, d2, p.String())
		assert.Equal(t, d1, d3, p.String())
	}

	for o := range 4 {
		d, _ := engine.Square.RotationDeltas(o)
		assert.Equal(t, engine.Coords{}, d)
	}
}

func TestInvalidPieceLookups(t *testing.T) {
	_, err := engine.Empty.StartingOffsets()
	assert.ErrorIs(t, err, engine.ErrInvalidPiece)

	_, err = engine.Piece(12).RotationDeltas(0)
	assert.ErrorIs(t, err, engine.ErrInvalidPiece)
}

func TestCoordsHelpers(t *testing.T) {
	c := engine.Coords{{0, 0}, {1, 0}, {2, 0}, {3, 0}}

	moved := c.Translate(1, 2)
	assert.Equal(t, engine.Coords{{1, 2}, {2, 2}, {3, 2}, {4, 2}}, moved)
	assert.Equal(t, engine.Point{X: 0, Y: 0}, c[0], "Translate must not modify the receiver")

	assert.True(t, c.Contains(engine.Point{X: 3, Y: 0}))
	assert.False(t, c.Contains(engine.Point{X: 3, Y: 1}))
}
