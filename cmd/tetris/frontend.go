package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/internal/debugui/overlay"
	"github.com/plus3/tetris/internal/layout"
	"github.com/plus3/tetris/internal/palette"
	"github.com/plus3/tetris/internal/sound"
)

const gameOverMessage = "The only winning move is not to play"

// bindings maps keys to the engine command issued when they are pressed.
var bindings = []struct {
	key ebiten.Key
	cmd engine.Command
}{
	{ebiten.KeyP, engine.Command{Kind: engine.CommandTogglePause}},
	{ebiten.KeyLeft, engine.Command{Kind: engine.CommandMove, DX: -1}},
	{ebiten.KeyRight, engine.Command{Kind: engine.CommandMove, DX: 1}},
	{ebiten.KeyDown, engine.Command{Kind: engine.CommandMove, DY: 1}},
	{ebiten.KeySpace, engine.Command{Kind: engine.CommandHardDrop}},
	{ebiten.KeyUp, engine.Command{Kind: engine.CommandRotate}},
}

// songKeys pick the background song, in sound.Songs order.
var songKeys = []ebiten.Key{ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3}

// frontend draws a game in an ebiten window and feeds it keyboard input and
// one tick per frame.
type frontend struct {
	game     *engine.Game
	commands *engine.Commands
	layout   layout.Layout
	logger   *slog.Logger
	player   *sound.Player
	// overlay is nil unless the debug windows are enabled.
	overlay *overlay.Overlay

	lines int
	over  bool
}

func newFrontend(game *engine.Game, blockSize int, logger *slog.Logger, player *sound.Player) *frontend {
	return &frontend{
		game:     game,
		commands: engine.NewCommands(),
		layout:   layout.New(game.Width(), game.Height(), blockSize),
		logger:   logger,
		player:   player,
		lines:    game.ClearedLines(),
	}
}

func (f *frontend) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if f.overlay == nil || !f.overlay.WantsKeyboard() {
		for _, b := range bindings {
			if inpututil.IsKeyJustPressed(b.key) {
				f.commands.Push(b.cmd)
			}
		}
		for i, key := range songKeys {
			if inpututil.IsKeyJustPressed(key) {
				f.playSong(sound.Songs()[i])
			}
		}
	}
	f.commands.Tick()
	f.commands.Flush(f.game)
	f.cue()

	if f.overlay != nil {
		f.overlay.Update()
	}
	return nil
}

func (f *frontend) playSong(song sound.Song) {
	if err := f.player.PlaySong(song); err != nil {
		f.logger.Warn("playing song", "song", song, "error", err)
		return
	}
	f.logger.Debug("song", "song", song)
}

func (f *frontend) cue() {
	if lines := f.game.ClearedLines(); lines > f.lines {
		f.player.LineClear(lines - f.lines)
		f.lines = lines
	}
	if !f.over && f.game.Status() == engine.GameOver {
		f.over = true
		f.player.GameOver()
		f.logger.Info("game over",
			"cleared_lines", f.game.ClearedLines(),
			"level", f.game.Level())
	}
}

func (f *frontend) Draw(screen *ebiten.Image) {
	screen.Fill(palette.Background)
	snap := f.game.Snapshot()
	l := f.layout

	for y := range snap.Height {
		for x := range snap.Width {
			if v := snap.At(x, y); v != engine.Empty {
				f.drawBlock(screen, l.Cell(x, y), v)
			}
		}
	}

	fillRect(screen, l.Wall(), palette.Wall)

	sx := l.StatusX()
	ebitenutil.DebugPrintAt(screen, "TETЯIS", sx, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", snap.ClearedLines), sx, 100)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", snap.Level), sx, 180)
	ebitenutil.DebugPrintAt(screen, "Next:", sx, l.PreviewY()-l.Block)

	if offsets, err := snap.Next.StartingOffsets(); err == nil {
		for _, off := range offsets {
			f.drawBlock(screen, l.Preview(off), snap.Next)
		}
	}

	switch snap.Status {
	case engine.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", sx, l.PreviewY()+3*l.Block)
	case engine.GameOver:
		banner := l.Banner()
		fillRect(screen, banner, palette.Background)
		ebitenutil.DebugPrintAt(screen, gameOverMessage, banner.Min.X+l.Block/2, banner.Min.Y+banner.Dy()/2)
	}

	if f.overlay != nil {
		f.overlay.Draw(screen)
	}
}

func (f *frontend) drawBlock(screen *ebiten.Image, r image.Rectangle, p engine.Piece) {
	r.Max = r.Max.Sub(image.Pt(1, 1))
	fillRect(screen, r, palette.Block(p))
}

func fillRect(screen *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

func (f *frontend) Layout(_, _ int) (screenWidth, screenHeight int) {
	w, h := f.layout.Size()
	if f.overlay != nil {
		f.overlay.Layout(w, h)
	}
	return w, h
}
