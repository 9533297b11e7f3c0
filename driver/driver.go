package driver

import (
	"context"
	"sync"
	"time"

	"github.com/plus3/tetfall/tet"
	log "github.com/sirupsen/logrus"
)

// Driver runs a game in discrete turns. Each queued command and each drop tick is one
// turn, and turns never overlap, so the board is only ever touched by one of them at a
// time.
type Driver struct {
	mu       sync.Mutex
	game     *tet.Game
	interval time.Duration
	elapsed  time.Duration
	halted   bool
	queue    commands
	stats    turnStats
}

// New creates a driver for game that drops the active piece once per interval.
func New(game *tet.Game, interval time.Duration) *Driver {
	return &Driver{
		game:     game,
		interval: interval,
		stats:    newTurnStats(),
	}
}

// Send queues a command for the next turn. It is safe to call from any goroutine.
func (d *Driver) Send(cmd Command) {
	d.queue.push(cmd)
}

// Pending returns the number of commands waiting for the next turn.
func (d *Driver) Pending() int {
	return d.queue.len()
}

// Advance applies the queued commands, then moves the drop clock forward by dt and
// runs one tick for every full interval that has passed. Nothing ticks while
// auto-drop is halted or after the game is over.
func (d *Driver) Advance(dt time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.queue.flush(func(cmd Command) {
		d.turn(func() { d.apply(cmd) })
	})

	if d.halted || d.game.Over() {
		return
	}
	d.elapsed += dt
	for d.elapsed >= d.interval && !d.game.Over() {
		d.elapsed -= d.interval
		d.turn(d.tick)
	}
}

// Run advances the driver on a ticker with the given frame period until ctx is
// cancelled.
func (d *Driver) Run(ctx context.Context, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			d.Advance(dt)
		}
	}
}

// View runs fn with the game while no turn is in progress.
func (d *Driver) View(fn func(g *tet.Game)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(d.game)
}

// Halted reports whether auto-drop was stopped by an unrecognized command.
func (d *Driver) Halted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.halted
}

// Over reports whether the game has ended.
func (d *Driver) Over() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.game.Over()
}

// Stats returns turn counters and timings together with the game counters.
func (d *Driver) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stats.snapshot(d.game.Stats())
}

func (d *Driver) turn(fn func()) {
	start := time.Now()
	fn()
	d.stats.observe(time.Since(start))
}

func (d *Driver) tick() {
	d.stats.ticks++
	if d.game.Active() == nil {
		d.game.Spawn()
		return
	}
	d.game.MoveDown()
}

func (d *Driver) apply(cmd Command) {
	d.stats.commands++
	if d.game.Over() {
		return
	}
	switch cmd {
	case MoveLeft:
		d.game.MoveLeft()
	case MoveRight:
		d.game.MoveRight()
	case Rotate:
		d.game.Rotate()
	case SoftDrop:
		if d.game.Active() == nil {
			return
		}
		d.restartClock()
		d.game.MoveDown()
	case HardDrop:
		d.game.HardDrop()
		d.restartClock()
	default:
		if !d.halted {
			d.stats.halts++
		}
		d.halted = true
		log.WithField("command", cmd.String()).Warn("unrecognized input, auto-drop halted")
	}
}

func (d *Driver) restartClock() {
	d.elapsed = 0
	d.halted = false
}
