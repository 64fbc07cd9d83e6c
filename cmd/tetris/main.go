package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/internal/config"
	"github.com/plus3/tetris/internal/debugui/overlay"
	"github.com/plus3/tetris/internal/logging"
	"github.com/plus3/tetris/internal/sound"
)

const title = "TETЯIS"

const usage = `
TETЯIS:

  usage: %s [options] [level 0-15]

  ESC - Quit.
  q   - Quit.
  p   - Pause.

  Left/Right - Move.
  Up         - Rotate.
  Down       - Lower.
  Space      - Drop completely.
  F1-F3      - Change song.

Options:
`

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatalf("tetris: %v", err)
	}
}

func run(args []string, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("tetris", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, usage, flagSet.Name())
		flagSet.PrintDefaults()
	}
	configPath := flagSet.String("config", "", "Path to an HCL settings file.")
	blockSize := flagSet.Int("block-size", 32, "Size of one board cell in pixels.")
	logLevel := flagSet.String("log-level", "", "Override the log level: debug, info, warn or error.")
	logFormat := flagSet.String("log-format", "", "Override the log format: text or json.")
	withSound := flagSet.Bool("sound", true, "Play background music and cue tones.")
	debug := flagSet.Bool("debug", false, "Show the performance and game state debug windows.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	settings := config.Default()
	if *configPath != "" {
		var err error
		if settings, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if flagSet.NArg() > 0 {
		level, err := strconv.Atoi(flagSet.Arg(0))
		if err != nil || level < 0 {
			return fmt.Errorf("invalid level %q", flagSet.Arg(0))
		}
		settings.InitialLevel = level
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}
	if *logFormat != "" {
		settings.LogFormat = *logFormat
	}
	if *blockSize < 4 {
		return fmt.Errorf("block size %d is too small", *blockSize)
	}

	logger, err := logging.New(stderr, settings.LogFormat, settings.LogLevel)
	if err != nil {
		return err
	}

	game, err := engine.New(settings.Engine(logger))
	if err != nil {
		return err
	}
	player, err := sound.New(*withSound)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	logger.Info("starting",
		"level", game.Level(),
		"seed", settings.Seed,
		"tps", settings.TicksPerSecond,
		"sound", player.Enabled(),
		"debug", *debug)

	fe := newFrontend(game, *blockSize, logger, player)
	w, h := fe.layout.Size()
	if *debug {
		fe.overlay = overlay.New(title, w, h, game)
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w, h)
	fe.playSong(sound.StartSong)
	ebiten.SetTPS(settings.TicksPerSecond)
	if err := ebiten.RunGame(fe); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("quit",
		"status", game.Status(),
		"cleared_lines", game.ClearedLines(),
		"level", game.Level())
	return nil
}
