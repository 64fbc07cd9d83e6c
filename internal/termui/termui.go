// Package termui draws a game snapshot on a tcell screen and translates key
// events into engine commands.
package termui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/internal/palette"
)

// Every board cell is two terminal columns wide so blocks look square.
const cellWidth = 2

// Board origin on screen, leaving room for the frame.
const (
	originX = 1
	originY = 1
)

const gameOverMessage = "The only winning move is not to play"

// Action tells the caller what to do with a key press.
type Action int

const (
	ActionNone Action = iota
	ActionCommand
	ActionQuit
)

// Translate maps a key press to an engine command.
func Translate(key tcell.Key, ch rune) (engine.Command, Action) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.Command{}, ActionQuit
	case tcell.KeyLeft:
		return engine.Command{Kind: engine.CommandMove, DX: -1}, ActionCommand
	case tcell.KeyRight:
		return engine.Command{Kind: engine.CommandMove, DX: 1}, ActionCommand
	case tcell.KeyDown:
		return engine.Command{Kind: engine.CommandMove, DY: 1}, ActionCommand
	case tcell.KeyUp:
		return engine.Command{Kind: engine.CommandRotate}, ActionCommand
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return engine.Command{}, ActionQuit
		case 'p', 'P':
			return engine.Command{Kind: engine.CommandTogglePause}, ActionCommand
		case ' ':
			return engine.Command{Kind: engine.CommandHardDrop}, ActionCommand
		}
	}
	return engine.Command{}, ActionNone
}

// songKeys lists the keys that pick a background song, in song order.
var songKeys = [...]tcell.Key{tcell.KeyF1, tcell.KeyF2, tcell.KeyF3}

// SongKey reports which song slot, counted from zero, key selects.
func SongKey(key tcell.Key) (int, bool) {
	for i, k := range songKeys {
		if k == key {
			return i, true
		}
	}
	return 0, false
}

// Style returns the style a cell value is drawn with.
func Style(p engine.Piece) tcell.Style {
	c := palette.Block(p)
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Renderer draws snapshots onto a screen.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer returns a renderer for screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// CellOrigin returns the screen position of the left half of board cell (x, y).
func CellOrigin(x, y int) (int, int) {
	return originX + x*cellWidth, originY + y
}

// Draw renders snap and flushes the screen.
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.screen.Clear()
	r.drawFrame(snap.Width, snap.Height)

	for y := range snap.Height {
		for x := range snap.Width {
			r.block(x, y, snap.At(x, y))
		}
	}

	sx := originX + snap.Width*cellWidth + 3
	r.text(sx, originY, tcell.StyleDefault.Bold(true), "TETЯIS")
	r.text(sx, originY+2, tcell.StyleDefault, fmt.Sprintf("Lines: %d", snap.ClearedLines))
	r.text(sx, originY+3, tcell.StyleDefault, fmt.Sprintf("Level: %d", snap.Level))
	r.text(sx, originY+5, tcell.StyleDefault, "Next:")
	if offsets, err := snap.Next.StartingOffsets(); err == nil {
		for _, off := range offsets {
			px := sx + (off.X+2)*cellWidth
			py := originY + 6 + off.Y
			for i := range cellWidth {
				r.screen.SetContent(px+i, py, ' ', nil, Style(snap.Next))
			}
		}
	}

	switch snap.Status {
	case engine.Paused:
		r.text(sx, originY+9, tcell.StyleDefault.Reverse(true), "PAUSED")
	case engine.GameOver:
		c := palette.Text
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).Bold(true)
		r.text(originX, originY+snap.Height/2, style, gameOverMessage)
	}

	r.screen.Show()
}

func (r *Renderer) block(x, y int, p engine.Piece) {
	sx, sy := CellOrigin(x, y)
	if p == engine.Empty {
		r.screen.SetContent(sx, sy, ' ', nil, tcell.StyleDefault)
		r.screen.SetContent(sx+1, sy, '.', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
		return
	}
	style := Style(p)
	for i := range cellWidth {
		r.screen.SetContent(sx+i, sy, ' ', nil, style)
	}
}

func (r *Renderer) drawFrame(cols, rows int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	right := originX + cols*cellWidth
	bottom := originY + rows
	for y := originY; y < bottom; y++ {
		r.screen.SetContent(originX-1, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	for x := originX - 1; x <= right; x++ {
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	r.screen.SetContent(originX-1, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *Renderer) text(x, y int, style tcell.Style, s string) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
