package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, pieces ...Piece) *Game {
	t.Helper()
	g, err := New(Config{Width: DefaultWidth, Height: DefaultHeight, Source: NewSequenceSource(pieces...)})
	require.NoError(t, err)
	return g
}

// assertConsistent checks that the board shows the active piece where the
// game thinks it is.
func assertConsistent(t *testing.T, g *Game) {
	t.Helper()
	seen := make(map[Point]bool)
	for _, p := range g.active.Coords {
		assert.False(t, seen[p], "active piece overlaps itself at %v", p)
		seen[p] = true
		v, err := g.board.Get(p.X, p.Y)
		require.NoError(t, err)
		assert.Equal(t, g.active.Piece, v, "cell %v", p)
	}
}

// runGravity ticks until a gravity step runs.
func runGravity(t *testing.T, g *Game) {
	t.Helper()
	for range DropInterval(0) + 1 {
		if g.Tick() {
			return
		}
	}
	t.Fatalf("gravity did not run within %d ticks", DropInterval(0)+1)
}

func TestSpawnEveryPiece(t *testing.T) {
	for _, p := range Pieces() {
		t.Run(p.String(), func(t *testing.T) {
			g := newTestGame(t, p)

			assert.Equal(t, Playing, g.Status())
			assert.Equal(t, p, g.Active().Piece)
			assert.Equal(t, 0, g.Active().Orientation)
			assertConsistent(t, g)

			offsets, err := p.StartingOffsets()
			require.NoError(t, err)
			center := DefaultWidth / 2
			for i, c := range g.Active().Coords {
				assert.Equal(t, Point{X: center + offsets[i].X, Y: offsets[i].Y}, c)
				assert.True(t, g.board.InBounds(c.X, c.Y))
			}

			occupied := 0
			for _, v := range g.board.Cells() {
				if v != Empty {
					occupied++
				}
			}
			assert.Equal(t, 4, occupied)
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, p := range Pieces() {
		for orientation := range 4 {
			t.Run(fmt.Sprintf("%v/%d", p, orientation), func(t *testing.T) {
				g := newTestGame(t, p)
				for range 5 {
					require.True(t, g.Move(0, 1))
				}
				for range orientation {
					require.True(t, g.Rotate())
				}
				start := g.Active()
				require.Equal(t, orientation, start.Orientation)

				for i := range 4 {
					require.True(t, g.Rotate(), "rotation %d", i)
					assertConsistent(t, g)
				}

				assert.Equal(t, start.Coords, g.Active().Coords)
				assert.Equal(t, orientation, g.Active().Orientation)
			})
		}
	}
}

func TestRotateBlockedByCeiling(t *testing.T) {
	g := newTestGame(t, Bar)
	before := g.Active()

	assert.False(t, g.Rotate())
	assert.Equal(t, before, g.Active())
	assertConsistent(t, g)
	assert.Equal(t, 1, g.Stats().RotationsBlocked)
}

func TestRotateBlockedByCell(t *testing.T) {
	g := newTestGame(t, Bar)
	for range 3 {
		require.True(t, g.Move(0, 1))
	}
	// The first block of the bar rotates to (5, 1).
	require.NoError(t, g.board.Set(5, 1, Z))
	before := g.Active()

	assert.False(t, g.Rotate())
	assert.Equal(t, before, g.Active())
	assert.Equal(t, Z, mustCell(t, g, 5, 1))
	assertConsistent(t, g)
}

func TestSquareRotationIsStationary(t *testing.T) {
	g := newTestGame(t, Square)
	a := g.Active()
	assert.Equal(t, Coords{{4, 0}, {4, 1}, {5, 0}, {5, 1}}, a.Coords)

	assert.True(t, g.Rotate())
	assert.Equal(t, a.Coords, g.Active().Coords)
	assert.Equal(t, 1, g.Active().Orientation)
	assertConsistent(t, g)
}

func TestMoveToFloor(t *testing.T) {
	for _, p := range Pieces() {
		t.Run(p.String(), func(t *testing.T) {
			g := newTestGame(t, p)
			steps := 0
			for g.Move(0, 1) {
				steps++
				require.LessOrEqual(t, steps, DefaultHeight)
			}
			assertConsistent(t, g)

			lowest := 0
			for _, c := range g.Active().Coords {
				assert.LessOrEqual(t, c.Y, DefaultHeight-1)
				lowest = max(lowest, c.Y)
			}
			assert.Equal(t, DefaultHeight-1, lowest)
		})
	}
}

func TestMoveStopsOnStack(t *testing.T) {
	g := newTestGame(t, Square)
	require.NoError(t, g.board.Set(4, 10, LeftL))

	for g.Move(0, 1) {
	}
	for _, c := range g.Active().Coords {
		if c.X == 4 {
			assert.LessOrEqual(t, c.Y, 9)
		}
	}
	assert.Equal(t, Point{X: 4, Y: 9}, g.Active().Coords[1])
}

func TestMoveWalls(t *testing.T) {
	g := newTestGame(t, Square)
	moves := 0
	for g.Move(-1, 0) {
		moves++
	}
	assert.Equal(t, 4, moves)
	assert.Equal(t, 0, g.Active().Coords[0].X)

	moves = 0
	for g.Move(1, 0) {
		moves++
	}
	assert.Equal(t, 8, moves)
	assert.Equal(t, DefaultWidth-1, g.Active().Coords[2].X)
	assertConsistent(t, g)
}

func TestMoveRejectsInvalidDelta(t *testing.T) {
	g := newTestGame(t, Square)
	before := g.Active()

	assert.False(t, g.Move(2, 0))
	assert.False(t, g.Move(0, -1))
	assert.Equal(t, before, g.Active())
}

func TestHardDrop(t *testing.T) {
	g := newTestGame(t, Square)

	assert.Equal(t, DefaultHeight-2, g.HardDrop())
	assert.Equal(t, Coords{{4, 18}, {4, 19}, {5, 18}, {5, 19}}, g.Active().Coords)
	assert.Equal(t, 0, g.HardDrop())
	assertConsistent(t, g)

	stats := g.Stats()
	assert.Equal(t, 2, stats.HardDrops)
	assert.Equal(t, DefaultHeight-2, stats.HardDropRows)
}

func TestLandingPieceCompletesRow(t *testing.T) {
	g := newTestGame(t, Bar)
	for x := range DefaultWidth - 1 {
		require.NoError(t, g.board.Set(x, DefaultHeight-1, LeftL))
	}

	// Stand the bar up in column 9 and drop it into the gap.
	require.True(t, g.Move(0, 1))
	require.True(t, g.Move(0, 1))
	require.True(t, g.Rotate())
	for g.Move(1, 0) {
	}
	require.Equal(t, DefaultWidth-1, g.Active().Coords[0].X)
	g.HardDrop()
	require.True(t, g.board.RowFull(DefaultHeight-1))

	runGravity(t, g)

	assert.Equal(t, 1, g.ClearedLines())
	assert.Equal(t, 0, g.Level())
	for y := DefaultHeight - 3; y < DefaultHeight; y++ {
		for x := range DefaultWidth {
			want := Empty
			if x == DefaultWidth-1 {
				want = Bar
			}
			assert.Equal(t, want, mustCell(t, g, x, y), "cell (%d,%d)", x, y)
		}
	}
	assert.True(t, g.board.RowEmpty(DefaultHeight-4))

	assert.Equal(t, Playing, g.Status())
	assert.Equal(t, Coords{{3, 0}, {4, 0}, {5, 0}, {6, 0}}, g.Active().Coords)
	assertConsistent(t, g)

	stats := g.Stats()
	assert.Equal(t, 1, stats.LinesCleared)
	assert.Equal(t, map[int]int{1: 1}, stats.ClearsBySize)
	assert.Equal(t, 1, stats.Locks)
	assert.Equal(t, 2, stats.SpawnsByPiece[Bar])
}

func TestGravityTiming(t *testing.T) {
	g := newTestGame(t, Square)
	y0 := g.Active().Coords[0].Y

	for i := 1; i < 15; i++ {
		assert.False(t, g.Tick(), "tick %d", i)
	}
	assert.True(t, g.Tick())
	assert.Equal(t, y0+1, g.Active().Coords[0].Y)

	game, drop := g.Ticks()
	assert.Equal(t, 15, game)
	assert.Equal(t, 15, drop)

	for i := 1; i < 15; i++ {
		assert.False(t, g.Tick())
	}
	assert.True(t, g.Tick())
	assert.Equal(t, y0+2, g.Active().Coords[0].Y)
}

func TestGravityFastestInterval(t *testing.T) {
	g, err := New(Config{Width: 10, Height: 20, InitialLevel: 15, Source: NewSequenceSource(Square)})
	require.NoError(t, err)
	require.Equal(t, 1, g.DropInterval())

	for range 5 {
		assert.True(t, g.Tick())
	}
	assert.Equal(t, 5, g.Active().Coords[0].Y)
}

func TestInitialLevel(t *testing.T) {
	tests := []struct {
		level    int
		lines    int
		interval int
	}{
		{0, 0, 15},
		{1, 3, 14},
		{5, 15, 10},
		{14, 42, 1},
		{15, 45, 1},
		{40, 45, 1},
	}
	for _, tt := range tests {
		g, err := New(Config{Width: 10, Height: 20, InitialLevel: tt.level, Seed: 1})
		require.NoError(t, err)
		assert.Equal(t, tt.lines, g.ClearedLines(), "level %d", tt.level)
		assert.Equal(t, tt.lines/3, g.Level())
		assert.Equal(t, tt.interval, g.DropInterval())
	}
}

func TestLevelMath(t *testing.T) {
	assert.Equal(t, 0, LevelFor(0))
	assert.Equal(t, 0, LevelFor(2))
	assert.Equal(t, 1, LevelFor(3))
	assert.Equal(t, 14, LevelFor(44))

	assert.Equal(t, 15, DropInterval(0))
	assert.Equal(t, 1, DropInterval(14))
	assert.Equal(t, 1, DropInterval(15))
	assert.Equal(t, 1, DropInterval(100))
	assert.Equal(t, 15, MaxStartLevel)
}

func TestPauseGatesCommands(t *testing.T) {
	g := newTestGame(t, Square)
	before := g.Snapshot()

	require.True(t, g.TogglePause())
	require.Equal(t, Paused, g.Status())

	assert.False(t, g.Move(1, 0))
	assert.False(t, g.Rotate())
	assert.Equal(t, 0, g.HardDrop())
	for range 40 {
		assert.False(t, g.Tick())
	}

	after := g.Snapshot()
	assert.Equal(t, before.Cells, after.Cells)
	assert.Equal(t, before.Active, after.Active)
	game, drop := g.Ticks()
	assert.Equal(t, 40, game)
	assert.Equal(t, 0, drop)
	assert.Equal(t, 3, g.Stats().Ignored)

	require.True(t, g.TogglePause())
	assert.Equal(t, Playing, g.Status())
	// The interval elapsed while paused, so gravity is due right away.
	assert.True(t, g.Tick())
}

func TestGameOver(t *testing.T) {
	g, err := New(Config{Width: 10, Height: 2, Source: NewSequenceSource(Square)})
	require.NoError(t, err)
	cells := g.board.Cells()

	runGravity(t, g)

	assert.Equal(t, GameOver, g.Status())
	assert.Equal(t, ActivePiece{}, g.Active())
	assert.Equal(t, cells, g.board.Cells(), "a blocked spawn must not write to the board")
	assert.Equal(t, 1, g.Stats().PiecesSpawned)

	assert.False(t, g.TogglePause())
	assert.False(t, g.Move(1, 0))
	assert.False(t, g.Rotate())
	assert.False(t, g.Tick())
	assert.Equal(t, GameOver, g.Status())
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from Status
		on   event
		to   Status
		ok   bool
	}{
		{Playing, eventPauseToggle, Paused, true},
		{Paused, eventPauseToggle, Playing, true},
		{Playing, eventSpawnBlocked, GameOver, true},
		{Paused, eventSpawnBlocked, Paused, false},
		{GameOver, eventPauseToggle, GameOver, false},
		{GameOver, eventSpawnBlocked, GameOver, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.on.String(), func(t *testing.T) {
			to, ok := tt.from.transition(tt.on)
			assert.Equal(t, tt.to, to)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Width: 3, Height: 20})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Config{Width: 10, Height: 20, InitialLevel: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t, Square)
	snap := g.Snapshot()

	require.True(t, g.Move(1, 0))

	assert.Equal(t, Square, snap.At(4, 0))
	assert.Equal(t, Empty, snap.At(6, 0))
	assert.Equal(t, Empty, snap.At(-1, 0))
	assert.Equal(t, Square, mustCell(t, g, 6, 0))
	assert.Equal(t, Coords{{4, 0}, {4, 1}, {5, 0}, {5, 1}}, snap.Active.Coords)
}

func mustCell(t *testing.T, g *Game, x, y int) Piece {
	t.Helper()
	v, err := g.Cell(x, y)
	require.NoError(t, err)
	return v
}
