package testing

import (
	"sync"

	"github.com/go-drift/asciistats/pkg/clock"
)

// ManualClock is a clock.Clock that ticks only when told to. It records every
// Start and Stop call that changed its state, so tests can assert on clock
// lifecycle edges. All methods are safe for concurrent use.
type ManualClock struct {
	mu     sync.Mutex
	target *clock.Target
	fps    int
	active bool
	starts int
	stops  int
}

// NewManualClock returns a stopped clock firing target.
func NewManualClock(target *clock.Target, fps int) *ManualClock {
	return &ManualClock{target: target, fps: fps}
}

// Start activates the clock.
func (c *ManualClock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return
	}
	c.active = true
	c.starts++
}

// Stop deactivates the clock.
func (c *ManualClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return
	}
	c.active = false
	c.stops++
}

// SetRate records the configured rate.
func (c *ManualClock) SetRate(fps int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fps = fps
}

// Rate returns the configured rate.
func (c *ManualClock) Rate() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fps
}

// Active reports whether the clock is running.
func (c *ManualClock) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Starts returns how many times the clock was started.
func (c *ManualClock) Starts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.starts
}

// Stops returns how many times the clock was stopped.
func (c *ManualClock) Stops() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stops
}

// Step fires one tick if the clock is active and reports whether it did.
// The tick runs on the calling goroutine, which must be the control thread.
func (c *ManualClock) Step() bool {
	c.mu.Lock()
	active := c.active
	c.mu.Unlock()
	if !active || c.target == nil {
		return false
	}
	c.target.Fire()
	return true
}

// ManualClocks is a clock.Factory that remembers every clock it creates.
type ManualClocks struct {
	mu     sync.Mutex
	clocks []*ManualClock
}

// Factory returns the factory function.
func (m *ManualClocks) Factory() clock.Factory {
	return func(target *clock.Target, fps int) clock.Clock {
		c := NewManualClock(target, fps)
		m.mu.Lock()
		m.clocks = append(m.clocks, c)
		m.mu.Unlock()
		return c
	}
}

// All returns the created clocks in creation order.
func (m *ManualClocks) All() []*ManualClock {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*ManualClock(nil), m.clocks...)
}

// Step ticks every active clock once and returns how many ticked.
func (m *ManualClocks) Step() int {
	n := 0
	for _, c := range m.All() {
		if c.Step() {
			n++
		}
	}
	return n
}
