// Package layout computes where the window front end draws the board, the
// wall and the status column.
package layout

import (
	"image"

	"github.com/plus3/tetris/engine"
)

// WallWidth is the width in pixels of the wall between board and status column.
const WallWidth = 50

// Layout places the board on the left, a wall, and a status column holding
// the counters and the next-piece preview.
type Layout struct {
	Cols, Rows int
	Block      int
}

// New returns the layout of a cols x rows board drawn with square blocks of
// the given pixel size.
func New(cols, rows, block int) Layout {
	return Layout{Cols: cols, Rows: rows, Block: block}
}

// Size returns the screen size in pixels.
func (l Layout) Size() (width, height int) {
	return (l.Cols+6)*l.Block + WallWidth, l.Rows * l.Block
}

// Cell returns the square covering board cell (x, y).
func (l Layout) Cell(x, y int) image.Rectangle {
	return image.Rect(x*l.Block, y*l.Block, (x+1)*l.Block, (y+1)*l.Block)
}

// Wall returns the strip separating the board from the status column.
func (l Layout) Wall() image.Rectangle {
	return image.Rect(l.Cols*l.Block, 0, l.Cols*l.Block+WallWidth, l.Rows*l.Block)
}

// StatusX returns the left edge of the status column text.
func (l Layout) StatusX() int {
	return l.Cols*l.Block + WallWidth + 10
}

// PreviewY returns the row, in pixels, the next-piece preview is anchored to.
func (l Layout) PreviewY() int {
	return max(4, l.Rows/2-1) * l.Block
}

// Preview returns the square for one block of the next-piece preview.
func (l Layout) Preview(off engine.Point) image.Rectangle {
	x := l.Cols*l.Block + WallWidth + (off.X+3)*l.Block
	y := l.PreviewY() + off.Y*l.Block
	return image.Rect(x, y, x+l.Block, y+l.Block)
}

// Banner is the strip cleared for the game-over message.
func (l Layout) Banner() image.Rectangle {
	w, h := l.Size()
	top := h * 7 / 16
	return image.Rect(0, top, w, top+h/8)
}
