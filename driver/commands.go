package driver

import (
	"fmt"
	"sync"
)

// Command is one player input.
type Command int

const (
	Unknown Command = iota
	MoveLeft
	MoveRight
	Rotate
	SoftDrop
	HardDrop
)

func (c Command) String() string {
	switch c {
	case Unknown:
		return "unknown"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Rotate:
		return "rotate"
	case SoftDrop:
		return "soft-drop"
	case HardDrop:
		return "hard-drop"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// commands buffers input sent from any goroutine until the next turn flushes it.
type commands struct {
	mu      sync.Mutex
	pending []Command
}

func (c *commands) push(cmd Command) {
	c.mu.Lock()
	c.pending = append(c.pending, cmd)
	c.mu.Unlock()
}

// flush hands every pending command to fn in the order it was sent and resets the
// buffer. fn runs without the buffer lock held, so it may send more commands; those
// wait for the next flush.
func (c *commands) flush(fn func(Command)) int {
	c.mu.Lock()
	batch := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, cmd := range batch {
		fn(cmd)
	}
	return len(batch)
}

func (c *commands) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
