package engine

import "github.com/kamstrup/intmap"

// maxClearSize is the most rows a single piece can complete at once.
const maxClearSize = 4

// Stats summarizes activity since the game started.
type Stats struct {
	PiecesSpawned int
	SpawnsByPiece map[Piece]int
	// LinesCleared counts rows removed during play. It excludes the starting
	// counter derived from the initial level.
	LinesCleared int
	// ClearsBySize maps a simultaneous row count (1-4) to how often it happened.
	ClearsBySize     map[int]int
	GravitySteps     int
	Locks            int
	Moves            int
	MovesBlocked     int
	Rotations        int
	RotationsBlocked int
	HardDrops        int
	HardDropRows     int
	// Ignored counts commands discarded because of the current status.
	Ignored int
}

type statsCollector struct {
	spawns *intmap.Map[Piece, int]
	clears *intmap.Map[int, int]

	spawned          int
	lines            int
	gravitySteps     int
	locks            int
	moves            int
	movesBlocked     int
	rotations        int
	rotationsBlocked int
	hardDrops        int
	hardDropRows     int
	ignored          int
}

func newStatsCollector() statsCollector {
	return statsCollector{
		spawns: intmap.New[Piece, int](PieceCount),
		clears: intmap.New[int, int](maxClearSize),
	}
}

func (s *statsCollector) spawn(p Piece) {
	n, _ := s.spawns.Get(p)
	s.spawns.Put(p, n+1)
	s.spawned++
}

func (s *statsCollector) clear(rows int) {
	if rows == 0 {
		return
	}
	n, _ := s.clears.Get(rows)
	s.clears.Put(rows, n+1)
	s.lines += rows
}

// Stats returns a copy of the game's counters.
func (g *Game) Stats() Stats {
	s := &g.stats
	out := Stats{
		PiecesSpawned:    s.spawned,
		SpawnsByPiece:    make(map[Piece]int, s.spawns.Len()),
		LinesCleared:     s.lines,
		ClearsBySize:     make(map[int]int, s.clears.Len()),
		GravitySteps:     s.gravitySteps,
		Locks:            s.locks,
		Moves:            s.moves,
		MovesBlocked:     s.movesBlocked,
		Rotations:        s.rotations,
		RotationsBlocked: s.rotationsBlocked,
		HardDrops:        s.hardDrops,
		HardDropRows:     s.hardDropRows,
		Ignored:          s.ignored,
	}
	for _, p := range Pieces() {
		if n, ok := s.spawns.Get(p); ok {
			out.SpawnsByPiece[p] = n
		}
	}
	for rows := 1; rows <= g.board.Height(); rows++ {
		if n, ok := s.clears.Get(rows); ok {
			out.ClearsBySize[rows] = n
		}
	}
	return out
}
