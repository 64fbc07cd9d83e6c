// Command tetris-bench plays headless games with random input for a fixed
// duration and prints a Markdown report of engine latency.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/internal/logging"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	width := flag.Int("width", engine.DefaultWidth, "Board width.")
	height := flag.Int("height", engine.DefaultHeight, "Board height.")
	level := flag.Int("level", 0, "Initial level of every game.")
	seed := flag.Uint64("seed", 1, "Seed for pieces and input. Game n uses seed+n.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger, err := logging.New(os.Stderr, "text", *logLevel)
	if err != nil {
		log.Fatalf("tetris-bench: %v", err)
	}

	cfg := engine.Config{Width: *width, Height: *height, InitialLevel: *level}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("tetris-bench: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		Width:          *width,
		Height:         *height,
		Level:          *level,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info("running benchmark", "duration", *duration, "board", fmt.Sprintf("%dx%d", *width, *height))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	if err := runGames(ctx, cfg, *seed, report); err != nil {
		log.Fatalf("tetris-bench: %v", err)
	}
	report.TotalTime = time.Since(start)
	report.CommandTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("benchmark finished", "games", report.Games, "commands", report.Commands)

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("tetris-bench: failed to generate report: %v", err)
	}
}
