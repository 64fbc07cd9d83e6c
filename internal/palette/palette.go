// Package palette maps cell values to the colors the front ends draw them in.
package palette

import (
	"image/color"

	"github.com/plus3/tetris/engine"
)

var (
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	Wall       = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	Text       = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

var blocks = [...]color.RGBA{
	engine.Empty:  Background,
	engine.LeftL:  {R: 0x00, G: 0x3c, B: 0xff, A: 0xff}, // blue
	engine.RightZ: {R: 0x00, G: 0xdc, B: 0xff, A: 0xff}, // cyan
	engine.Bar:    {R: 0x00, G: 0xc8, B: 0x3c, A: 0xff}, // green
	engine.Bump:   {R: 0xff, G: 0x8c, B: 0x00, A: 0xff}, // orange
	engine.L:      {R: 0x96, G: 0x3c, B: 0xdc, A: 0xff}, // purple
	engine.Z:      {R: 0xe6, G: 0x1e, B: 0x1e, A: 0xff}, // red
	engine.Square: {R: 0xff, G: 0xdc, B: 0x00, A: 0xff}, // yellow
}

// Block returns the color of a cell value. Empty and unknown values map to
// the background.
func Block(p engine.Piece) color.RGBA {
	if int(p) >= len(blocks) {
		return Background
	}
	return blocks[p]
}
