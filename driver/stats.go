package driver

import (
	"time"

	"github.com/plus3/tetfall/tet"
)

// Stats provides statistics about driver execution.
type Stats struct {
	Ticks    int64
	Commands int64
	Halts    int64
	Turns    int64

	MinTurn   time.Duration
	MaxTurn   time.Duration
	AvgTurn   time.Duration
	LastTurn  time.Duration
	TotalTurn time.Duration

	Game tet.Stats
}

type turnStats struct {
	ticks    int64
	commands int64
	halts    int64

	turns         int64
	minDuration   time.Duration
	maxDuration   time.Duration
	lastDuration  time.Duration
	totalDuration time.Duration
}

func newTurnStats() turnStats {
	return turnStats{minDuration: time.Duration(1<<63 - 1)}
}

func (s *turnStats) observe(d time.Duration) {
	s.turns++
	s.lastDuration = d
	s.totalDuration += d
	if d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

func (s *turnStats) snapshot(game tet.Stats) Stats {
	out := Stats{
		Ticks:     s.ticks,
		Commands:  s.commands,
		Halts:     s.halts,
		Turns:     s.turns,
		MaxTurn:   s.maxDuration,
		LastTurn:  s.lastDuration,
		TotalTurn: s.totalDuration,
		Game:      game,
	}
	if s.turns > 0 {
		out.MinTurn = s.minDuration
		out.AvgTurn = s.totalDuration / time.Duration(s.turns)
	}
	return out
}
