package engine

// Snapshot is a read-only copy of a game's observable state. It shares no
// memory with the game and stays valid after further commands.
type Snapshot struct {
	Width        int
	Height       int
	Cells        []Piece
	Active       ActivePiece
	Next         Piece
	Status       Status
	ClearedLines int
	Level        int
	GameTicks    int
	DropTicks    int
}

// At returns the cell at (x, y), or Empty outside the grid.
func (s Snapshot) At(x, y int) Piece {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return Empty
	}
	return s.Cells[y*s.Width+x]
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:        g.board.Width(),
		Height:       g.board.Height(),
		Cells:        g.board.Cells(),
		Active:       g.active,
		Next:         g.next,
		Status:       g.status,
		ClearedLines: g.clearedLines,
		Level:        g.Level(),
		GameTicks:    g.gameTicks,
		DropTicks:    g.dropTicks,
	}
}
