package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetfall/driver"
)

// GameResult is the outcome of one soak game.
type GameResult struct {
	Seed  uint64
	Over  bool
	Stats driver.Stats
}

type Report struct {
	// Configuration
	Duration    time.Duration
	MaxTicks    int
	CommandRate float64

	// Results
	Games          int
	Finished       int
	Abandoned      int
	Ticks          int64
	Commands       int64
	Landed         int
	Lines          int
	Fragments      int
	OutlineMisses  int
	BestLines      int
	BestSeed       uint64
	TotalTime      time.Duration
	TurnTime       Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	total time.Duration
	turns int64
}

// Add folds one game into the report.
func (r *Report) Add(g GameResult) {
	r.Games++
	if g.Over {
		r.Finished++
	} else {
		r.Abandoned++
	}
	s := g.Stats
	r.Ticks += s.Ticks
	r.Commands += s.Commands
	r.Landed += s.Game.Landed
	r.Lines += s.Game.Lines
	r.Fragments += s.Game.Fragments
	r.OutlineMisses += s.Game.OutlineMisses
	if s.Game.Lines > r.BestLines || r.Games == 1 {
		r.BestLines = s.Game.Lines
		r.BestSeed = g.Seed
	}

	if s.Turns == 0 {
		return
	}
	if r.TurnTime.turns == 0 || s.MinTurn < r.TurnTime.Min {
		r.TurnTime.Min = s.MinTurn
	}
	if s.MaxTurn > r.TurnTime.Max {
		r.TurnTime.Max = s.MaxTurn
	}
	r.TurnTime.total += s.TotalTurn
	r.TurnTime.turns += s.Turns
}

func (r *Report) Finalize() {
	if r.TurnTime.turns > 0 {
		r.TurnTime.Avg = r.TurnTime.total / time.Duration(r.TurnTime.turns)
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Tick Budget per Game:** {{.MaxTicks}}
- **Command Rate:** {{printf "%.2f" .CommandRate}}

## Games
- **Played:** {{.Games}} ({{.Finished}} over, {{.Abandoned}} abandoned)
- **Ticks:** {{.Ticks}}
- **Commands:** {{.Commands}}
- **Landings:** {{.Landed}}
- **Lines Cleared:** {{.Lines}}
- **Fragments:** {{.Fragments}}
- **Outline Misses:** {{.OutlineMisses}}
- **Best Game:** {{.BestLines}} lines (seed {{.BestSeed}})

## Performance Results
- **Total Time:** {{.TotalTime}}
- **Turn Time:**
  - **Avg:** {{.TurnTime.Avg}}
  - **Min:** {{.TurnTime.Min}}
  - **Max:** {{.TurnTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

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
