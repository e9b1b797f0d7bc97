// Package platform hosts the single control thread the framework runs on.
//
// Everything that mutates state (input events, clock ticks) is funneled
// through a Dispatcher so that reductions never run concurrently.
package platform

import (
	"context"
	"sync"

	"github.com/go-drift/asciistats/pkg/errors"
)

// Dispatcher schedules callbacks on the control thread.
type Dispatcher interface {
	// Dispatch schedules callback and reports whether it was accepted.
	Dispatch(callback func()) bool
}

// DispatchFunc adapts a plain function to Dispatcher.
type DispatchFunc func(callback func()) bool

// Dispatch calls f(callback).
func (f DispatchFunc) Dispatch(callback func()) bool {
	return f(callback)
}

// Immediate runs callbacks synchronously on the calling goroutine. It is
// meant for tests and for hosts that already run on the control thread.
var Immediate Dispatcher = DispatchFunc(func(callback func()) bool {
	if callback == nil {
		return false
	}
	callback()
	return true
})

var (
	dispatchMu sync.RWMutex
	dispatcher Dispatcher
)

// RegisterDispatch sets the process-wide dispatcher used by Dispatch.
// This should be called once by the host during initialization.
func RegisterDispatch(d Dispatcher) {
	dispatchMu.Lock()
	dispatcher = d
	dispatchMu.Unlock()
}

// Dispatch schedules a callback on the registered control thread.
// Returns true if the callback was successfully scheduled, false if no
// dispatcher is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	d := dispatcher
	dispatchMu.RUnlock()
	if d == nil || callback == nil {
		return false
	}
	return d.Dispatch(callback)
}

// Loop is a run-to-completion event loop. Dispatch may be called from any
// goroutine; callbacks execute one at a time on the goroutine running Run.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop buffering up to capacity pending callbacks.
func NewLoop(capacity int) *Loop {
	if capacity <= 0 {
		capacity = 64
	}
	return &Loop{
		queue: make(chan func(), capacity),
		done:  make(chan struct{}),
	}
}

// Dispatch enqueues callback. It blocks while the queue is full and returns
// false once the loop has stopped.
func (l *Loop) Dispatch(callback func()) bool {
	if callback == nil {
		return false
	}
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- callback:
		return true
	case <-l.done:
		return false
	}
}

// Run executes callbacks until ctx is cancelled or Stop is called. A panic in
// a callback is reported and does not stop the loop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return nil
		case cb := <-l.queue:
			errors.Guard("platform.Loop", cb)
		}
	}
}

// Drain runs queued callbacks until the queue is empty and returns how many
// ran, including callbacks enqueued while draining. It lets
// tests and batch hosts step the loop without a goroutine.
func (l *Loop) Drain() int {
	n := 0
	for {
		select {
		case cb := <-l.queue:
			errors.Guard("platform.Loop", cb)
			n++
		default:
			return n
		}
	}
}

// Stop terminates Run. Pending callbacks are dropped.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.done) })
}

// Done is closed when the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
