// Package debugui collects what the debug overlay shows: frame timing
// history and a flattened view of a game's state and counters.
package debugui

import (
	"fmt"
	"time"

	"github.com/plus3/tetris/engine"
)

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// Delta returns the time since the previous call.
func (ft *FrameTimer) Delta() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	index   int
	filled  int
}

func NewFrameHistory(frames int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(frames, 1))}
}

// Add records one frame.
func (h *FrameHistory) Add(d time.Duration) {
	h.samples[h.index] = float32(d.Seconds() * 1000)
	h.index = (h.index + 1) % len(h.samples)
	h.filled = min(h.filled+1, len(h.samples))
}

// Samples returns the ring in storage order, for plotting.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

// Average returns the mean of the recorded frame times in milliseconds.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var total float32
	for _, ms := range h.samples[:h.filled] {
		total += ms
	}
	return total / float32(h.filled)
}

// FPS converts the average frame time into frames per second.
func (h *FrameHistory) FPS() float32 {
	avg := h.Average()
	if avg == 0 {
		return 0
	}
	return 1000 / avg
}

type Entry struct {
	Label string
	Value string
}

type Section struct {
	Title   string
	Entries []Entry
}

// Inspect lists the game's state and run counters, grouped for display.
func Inspect(g *engine.Game) []Section {
	snap := g.Snapshot()
	stats := g.Stats()

	state := Section{Title: "Game", Entries: []Entry{
		{"Status", snap.Status.String()},
		{"Level", fmt.Sprint(snap.Level)},
		{"Cleared lines", fmt.Sprint(snap.ClearedLines)},
		{"Drop interval", fmt.Sprintf("%d ticks", g.DropInterval())},
		{"Game ticks", fmt.Sprint(snap.GameTicks)},
		{"Last drop", fmt.Sprint(snap.DropTicks)},
		{"Active", fmt.Sprintf("%v/%d %v", snap.Active.Piece, snap.Active.Orientation, snap.Active.Coords)},
		{"Next", snap.Next.String()},
	}}

	counters := Section{Title: "Counters", Entries: []Entry{
		{"Pieces spawned", fmt.Sprint(stats.PiecesSpawned)},
		{"Locks", fmt.Sprint(stats.Locks)},
		{"Gravity steps", fmt.Sprint(stats.GravitySteps)},
		{"Moves", fmt.Sprintf("%d (%d blocked)", stats.Moves, stats.MovesBlocked)},
		{"Rotations", fmt.Sprintf("%d (%d blocked)", stats.Rotations, stats.RotationsBlocked)},
		{"Hard drops", fmt.Sprintf("%d (%d rows)", stats.HardDrops, stats.HardDropRows)},
		{"Ignored", fmt.Sprint(stats.Ignored)},
	}}

	spawns := Section{Title: "Spawns"}
	for _, p := range engine.Pieces() {
		spawns.Entries = append(spawns.Entries, Entry{p.String(), fmt.Sprint(stats.SpawnsByPiece[p])})
	}

	clears := Section{Title: "Line clears"}
	for rows := 1; rows <= 4; rows++ {
		clears.Entries = append(clears.Entries, Entry{fmt.Sprintf("%d rows", rows), fmt.Sprint(stats.ClearsBySize[rows])})
	}

	return []Section{state, counters, spawns, clears}
}
