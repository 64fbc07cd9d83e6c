package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/plus3/tetris/engine"
)

// maxGameCommands ends a game that never tops out.
const maxGameCommands = 200_000

// input draws a command stream weighted like a human session: mostly
// ticks with occasional moves, rotations and hard drops.
type input struct {
	rng *rand.Rand
}

func newInput(seed uint64) *input {
	return &input{rng: rand.New(rand.NewPCG(seed, ^seed))}
}

func (in *input) next() engine.Command {
	switch r := in.rng.IntN(16); {
	case r < 9:
		return engine.Command{Kind: engine.CommandTick}
	case r < 12:
		return engine.Command{Kind: engine.CommandMove, DX: in.rng.IntN(3) - 1}
	case r < 13:
		return engine.Command{Kind: engine.CommandMove, DY: 1}
	case r < 15:
		return engine.Command{Kind: engine.CommandRotate}
	default:
		return engine.Command{Kind: engine.CommandHardDrop}
	}
}

// runGames plays games back to back until ctx ends, recording every
// command's latency into report.
func runGames(ctx context.Context, cfg engine.Config, seed uint64, report *Report) error {
	for n := uint64(0); ; n++ {
		if ctx.Err() != nil {
			return nil
		}
		cfg.Seed = seed + n
		g, err := engine.New(cfg)
		if err != nil {
			return err
		}
		playGame(ctx, g, newInput(cfg.Seed), report)
		report.addGame(g)
	}
}

func playGame(ctx context.Context, g *engine.Game, in *input, report *Report) {
	for i := 0; i < maxGameCommands && g.Status() != engine.GameOver; i++ {
		if i%1024 == 0 && ctx.Err() != nil {
			return
		}
		cmd := in.next()
		start := time.Now()
		g.Apply(cmd)
		report.CommandTime.Add(time.Since(start))
		report.Commands++
	}
}
