package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetris/engine"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Width    int
	Height   int
	Level    int
	Seed     uint64

	// Results
	Games          int
	GamesOver      int
	Commands       int64
	Ticks          int
	Lines          int
	MaxLevel       int
	Pieces         int
	TotalTime      time.Duration
	CommandTime    Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats keeps running latency totals so memory stays flat however many
// commands a run executes.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Count int64
	total time.Duration
}

func (s *Stats) Add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	s.Max = max(s.Max, d)
	s.total += d
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.total / time.Duration(s.Count)
}

func (r *Report) addGame(g *engine.Game) {
	r.Games++
	if g.Status() == engine.GameOver {
		r.GamesOver++
	}
	ticks, _ := g.Ticks()
	r.Ticks += ticks
	r.Lines += g.Stats().LinesCleared
	r.Pieces += g.Stats().PiecesSpawned
	r.MaxLevel = max(r.MaxLevel, g.Level())
}

const reportTemplate = `
# Engine Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Board:** {{.Width}}x{{.Height}}
- **Initial Level:** {{.Level}}
- **Seed:** {{.Seed}}

## Games
- **Games Played:** {{.Games}} ({{.GamesOver}} topped out)
- **Pieces Spawned:** {{.Pieces}}
- **Lines Cleared:** {{.Lines}}
- **Highest Level:** {{.MaxLevel}}
- **Game Ticks:** {{.Ticks}}

## Performance
- **Total Commands:** {{.Commands}}
- **Total Time:** {{.TotalTime}}
- **Command Latency:**
  - **Avg:** {{.CommandTime.Avg}}
  - **Min:** {{.CommandTime.Min}}
  - **Max:** {{.CommandTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{ns .MemStatsEnd.PauseTotalNs}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
