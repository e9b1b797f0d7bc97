// Package clock provides the periodic clock collaborator behind display-link
// elements.
//
// # Core Components
//
//   - [Clock]: fires a callback at a bounded, approximately fixed rate between
//     Start and Stop.
//
//   - [Target]: the retained callback object a clock fires into. Elements
//     keep it in their retained set so the callback outlives construction.
//
//   - [Ticker]: a Clock paced by a token bucket that delivers every tick onto
//     the control thread through a [platform.Dispatcher].
//
// Clocks are driven by element updates, never started or stopped directly by
// application code.
package clock

// DefaultFPS is the tick rate used when none is configured.
const DefaultFPS = 15

// Clock fires its target at a bounded, approximately fixed rate until stopped.
type Clock interface {
	// Start begins delivering ticks. Starting a running clock does nothing.
	Start()
	// Stop ends tick delivery. Stopping a stopped clock does nothing.
	Stop()
	// SetRate changes the tick rate in frames per second.
	SetRate(fps int)
	// Active reports whether the clock is running.
	Active() bool
}

// Factory creates a stopped clock firing target at fps.
type Factory func(target *Target, fps int) Clock

// Target is the retained dispatch target a clock fires into.
type Target struct {
	fire  func()
	ticks uint64
}

// NewTarget creates a target calling fire on every tick.
func NewTarget(fire func()) *Target {
	return &Target{fire: fire}
}

// Fire delivers one tick. It must run on the control thread.
func (t *Target) Fire() {
	t.ticks++
	if t.fire != nil {
		t.fire()
	}
}

// Ticks returns how many ticks the target has received.
func (t *Target) Ticks() uint64 {
	return t.ticks
}

// Rate normalizes a frames-per-second setting.
func Rate(fps int) int {
	if fps <= 0 {
		return DefaultFPS
	}
	return fps
}

var defaultFactory Factory

// SetDefaultFactory replaces the factory display links use when they do not
// configure one. Returns the previous factory so callers can restore it
// during cleanup. Passing nil restores Tickers on the process-wide dispatcher.
func SetDefaultFactory(f Factory) Factory {
	prev := defaultFactory
	defaultFactory = f
	return prev
}

// DefaultFactory returns the factory installed by SetDefaultFactory, or one
// creating Tickers on the process-wide dispatcher.
func DefaultFactory() Factory {
	if defaultFactory != nil {
		return defaultFactory
	}
	return TickerFactory(nil)
}
