package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/internal/logging"
	"github.com/plus3/tetris/internal/sound"
	"github.com/plus3/tetris/internal/termui"
)

type terminal struct {
	screen   tcell.Screen
	renderer *termui.Renderer
	game     *engine.Game
	commands *engine.Commands
	player   *sound.Player

	lines int
	over  bool
}

func newTerminal(game *engine.Game, player *sound.Player) (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()
	return &terminal{
		screen:   screen,
		renderer: termui.NewRenderer(screen),
		game:     game,
		commands: engine.NewCommands(),
		player:   player,
		lines:    game.ClearedLines(),
		over:     game.Status() == engine.GameOver,
	}, nil
}

func (t *terminal) close() {
	t.screen.Fini()
}

// loop polls key events on a goroutine and advances the game on every tick
// until the player quits or ctx ends.
func (t *terminal) loop(ctx context.Context, interval time.Duration) error {
	logger := logging.FromContext(ctx)

	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	t.playSong(logger, sound.StartSong)
	t.renderer.Draw(t.game.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if slot, ok := termui.SongKey(ev.Key()); ok {
					t.playSong(logger, sound.Songs()[slot])
					continue
				}
				cmd, action := termui.Translate(ev.Key(), ev.Rune())
				switch action {
				case termui.ActionQuit:
					return nil
				case termui.ActionCommand:
					t.commands.Push(cmd)
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case <-ticker.C:
			t.commands.Tick()
			t.commands.Flush(t.game)
			t.cue(logger)
			t.renderer.Draw(t.game.Snapshot())
		}
	}
}

func (t *terminal) cue(logger *slog.Logger) {
	if lines := t.game.ClearedLines(); lines > t.lines {
		t.player.LineClear(lines - t.lines)
		t.lines = lines
	}
	if !t.over && t.game.Status() == engine.GameOver {
		t.over = true
		t.player.GameOver()
		logger.Info("game over",
			"cleared_lines", t.game.ClearedLines(),
			"level", t.game.Level())
	}
}

func (t *terminal) playSong(logger *slog.Logger, song sound.Song) {
	if err := t.player.PlaySong(song); err != nil {
		logger.Warn("playing song", "song", song, "error", err)
		return
	}
	logger.Debug("song", "song", song)
}
