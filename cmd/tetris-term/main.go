// Command tetris-term plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/internal/config"
	"github.com/plus3/tetris/internal/logging"
	"github.com/plus3/tetris/internal/sound"
)

const usage = `
TETЯIS (terminal):

  usage: %s [options] [level 0-15]

  ESC, q     - Quit.
  p          - Pause.
  Left/Right - Move.
  Up         - Rotate.
  Down       - Lower.
  Space      - Drop completely.
  F1-F3      - Change song.

Options:
`

func main() {
	log.SetFlags(0)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		log.Fatalf("tetris-term: %v", err)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("tetris-term", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, usage, flagSet.Name())
		flagSet.PrintDefaults()
	}
	configPath := flagSet.String("config", "", "Path to an HCL settings file.")
	logFile := flagSet.String("log-file", "", "Write logs to this file. Logs are discarded when empty.")
	withSound := flagSet.Bool("sound", true, "Play background music and cue tones.")

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

	// The terminal owns stdout and stderr while the game runs.
	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := logging.New(out, settings.LogFormat, settings.LogLevel)
	if err != nil {
		return err
	}
	ctx = logging.WithLogger(ctx, logger)

	player, err := sound.New(*withSound)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}

	game, err := engine.New(settings.Engine(logger))
	if err != nil {
		return err
	}
	logger.Info("starting",
		"level", game.Level(),
		"seed", settings.Seed,
		"tps", settings.TicksPerSecond,
		"sound", player.Enabled())

	term, err := newTerminal(game, player)
	if err != nil {
		return err
	}
	err = term.loop(ctx, settings.TickInterval())
	term.close()
	if err != nil {
		return err
	}

	logger.Info("quit",
		"status", game.Status(),
		"cleared_lines", game.ClearedLines(),
		"level", game.Level())
	if game.Status() == engine.GameOver {
		fmt.Fprintf(stderr, "Game over: %d lines, level %d\n", game.ClearedLines(), game.Level())
	}
	return nil
}
