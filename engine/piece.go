package engine

// ActivePiece is the tetromino currently under player control.
type ActivePiece struct {
	Piece       Piece
	Orientation int
	Coords      Coords
}

// spawnCoords places p's starting layout at the spawn column of a board of
// the given width.
func spawnCoords(p Piece, width int) Coords {
	center := width / 2
	var c Coords
	for i, off := range startingOffsets[p-1] {
		c[i] = Point{X: center + off.X, Y: off.Y}
	}
	return c
}
