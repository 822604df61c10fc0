// Package turnclock enforces turn deadlines from outside the engine. The
// engine exposes when the last move happened but never watches the clock
// itself; this package schedules a callback per match and the embedder
// decides what a timeout means, typically calling AdvanceTurn on its
// serialized path into the game.
package turnclock

import (
	"sync"
	"time"

	"github.com/RussellLuo/timingwheel"
)

const (
	wheelTick = 100 * time.Millisecond
	wheelSize = 512
)

// Clock schedules one pending deadline per match on a shared timing
// wheel.
type Clock struct {
	tw      *timingwheel.TimingWheel
	timeout time.Duration

	mu     sync.Mutex
	timers map[string]*timingwheel.Timer
}

// New returns a running clock firing callbacks after the given timeout.
func New(timeout time.Duration) *Clock {
	c := &Clock{
		tw:      timingwheel.NewTimingWheel(wheelTick, wheelSize),
		timeout: timeout,
		timers:  make(map[string]*timingwheel.Timer),
	}
	c.tw.Start()
	return c
}

// Reset arms (or re-arms) the deadline for a match. Call it after every
// applied move; the callback fires once if no reset arrives in time.
// Callbacks run on the wheel's goroutine, so they must hand off to
// whatever serializes access to the game.
func (c *Clock) Reset(gameID string, onTimeout func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[gameID]; ok {
		t.Stop()
	}
	c.timers[gameID] = c.tw.AfterFunc(c.timeout, func() {
		c.mu.Lock()
		delete(c.timers, gameID)
		c.mu.Unlock()
		onTimeout()
	})
}

// Cancel drops the pending deadline for a match, if any.
func (c *Clock) Cancel(gameID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[gameID]; ok {
		t.Stop()
		delete(c.timers, gameID)
	}
}

// Stop cancels all deadlines and halts the wheel.
func (c *Clock) Stop() {
	c.mu.Lock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()
	c.tw.Stop()
}
