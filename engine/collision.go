package engine

// The checks in this file never mutate the board. Cells covered by the active
// piece are passed in as self and treated as empty, which stands in for lifting
// the piece off the board before probing.

// vacant reports whether every block of c lies inside the grid on an empty cell.
func (b *Board) vacant(c Coords) bool {
	for _, p := range c {
		if b.occupied(p) {
			return false
		}
	}
	return true
}

// movable reports whether self can be translated by (dx, dy).
//
// Only the side walls and the floor are checked; the ceiling is not. Movement
// is limited to dy >= 0, so a piece that starts at a non-negative row can
// never reach a negative one. A negative row still reads as blocked.
func (b *Board) movable(self Coords, dx, dy int) bool {
	for _, p := range self {
		x, y := p.X+dx, p.Y+dy
		if x < 0 || x >= b.width || y >= b.height {
			return false
		}
		target := Point{X: x, Y: y}
		if !self.Contains(target) && b.occupied(target) {
			return false
		}
	}
	return true
}

// placeable reports whether target is a legal position for a piece that
// currently covers self. All four edges are checked: rotation can push a
// block above row 0.
func (b *Board) placeable(self, target Coords) bool {
	for _, p := range target {
		if !b.InBounds(p.X, p.Y) {
			return false
		}
		if !self.Contains(p) && b.occupied(p) {
			return false
		}
	}
	return true
}

// rotated returns the coordinates a reaches after one rotation step.
func rotated(a ActivePiece) Coords {
	return a.Coords.Offset(rotationDeltas[a.Piece-1][a.Orientation&3])
}

// relocate lifts self off the board and paints value at target.
func (b *Board) relocate(self, target Coords, value Piece) {
	b.paint(self, Empty)
	b.paint(target, value)
}
