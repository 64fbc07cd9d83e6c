package engine

import "fmt"

// Board is a fixed-size grid of cells held in one flat buffer.
//
// Rows are addressed through an order table mapping each logical row to a
// physical stride in the buffer, so line clearing can relocate a row by
// rewriting indexes instead of moving cell data.
type Board struct {
	width  int
	height int
	cells  []Piece
	order  []int
}

// NewBoard creates an empty width x height board.
func NewBoard(width, height int) *Board {
	b := &Board{
		width:  width,
		height: height,
		cells:  make([]Piece, width*height),
		order:  make([]int, height),
	}
	for y := range b.order {
		b.order[y] = y
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) lies inside the grid.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) index(x, y int) int {
	return b.order[y]*b.width + x
}

// Get returns the cell at (x, y).
func (b *Board) Get(x, y int) (Piece, error) {
	if !b.InBounds(x, y) {
		return Empty, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	return b.cells[b.index(x, y)], nil
}

// Set overwrites the cell at (x, y).
func (b *Board) Set(x, y int, value Piece) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if value > Square {
		return fmt.Errorf("%w: %d", ErrInvalidPiece, value)
	}
	b.cells[b.index(x, y)] = value
	return nil
}

// occupied treats anything outside the grid as blocked.
func (b *Board) occupied(p Point) bool {
	v, err := b.Get(p.X, p.Y)
	return err != nil || v != Empty
}

// paint writes value into every block of c. The coordinates must have been
// validated beforehand; a failure here is a broken invariant.
func (b *Board) paint(c Coords, value Piece) {
	for _, p := range c {
		if err := b.Set(p.X, p.Y, value); err != nil {
			panic(fmt.Sprintf("engine: paint %v: %v", c, err))
		}
	}
}

// RowFull reports whether every column of row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, v := range b.row(y) {
		if v == Empty {
			return false
		}
	}
	return true
}

// RowEmpty reports whether every column of row y is empty.
func (b *Board) RowEmpty(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, v := range b.row(y) {
		if v != Empty {
			return false
		}
	}
	return true
}

// Row returns a copy of row y, or nil when y is out of range.
func (b *Board) Row(y int) []Piece {
	if y < 0 || y >= b.height {
		return nil
	}
	return append([]Piece(nil), b.row(y)...)
}

func (b *Board) row(y int) []Piece {
	start := b.order[y] * b.width
	return b.cells[start : start+b.width]
}

// Cells returns a row-major copy of the grid in logical row order.
func (b *Board) Cells() []Piece {
	out := make([]Piece, 0, len(b.cells))
	for y := range b.height {
		out = append(out, b.row(y)...)
	}
	return out
}

// Reset empties every cell.
func (b *Board) Reset() {
	clear(b.cells)
	for y := range b.order {
		b.order[y] = y
	}
}
