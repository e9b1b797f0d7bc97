package clock

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/go-drift/asciistats/pkg/errors"
	"github.com/go-drift/asciistats/pkg/platform"
)

// Ticker is a Clock backed by a goroutine and a token bucket limiter.
//
// Start, Stop and SetRate must be called from the control thread, the same
// thread that runs the dispatcher's callbacks. Ticks that were already queued
// when Stop ran are discarded.
type Ticker struct {
	target     *Target
	dispatcher platform.Dispatcher
	limiter    *rate.Limiter

	isActive   bool
	generation uint64
	cancel     context.CancelFunc
}

// NewTicker creates a stopped ticker firing target at fps. A nil dispatcher
// uses platform.Dispatch.
func NewTicker(target *Target, fps int, dispatcher platform.Dispatcher) *Ticker {
	if dispatcher == nil {
		dispatcher = platform.DispatchFunc(platform.Dispatch)
	}
	return &Ticker{
		target:     target,
		dispatcher: dispatcher,
		limiter:    rate.NewLimiter(limitFor(fps), 1),
	}
}

// TickerFactory returns a Factory creating Tickers on dispatcher.
func TickerFactory(dispatcher platform.Dispatcher) Factory {
	return func(target *Target, fps int) Clock {
		return NewTicker(target, fps, dispatcher)
	}
}

func limitFor(fps int) rate.Limit {
	return rate.Every(time.Second / time.Duration(Rate(fps)))
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.generation++
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	go t.run(ctx, t.generation)
}

func (t *Ticker) run(ctx context.Context, generation uint64) {
	for {
		if err := t.limiter.Wait(ctx); err != nil {
			return
		}
		accepted := t.dispatcher.Dispatch(func() {
			if t.isActive && t.generation == generation {
				t.target.Fire()
			}
		})
		if !accepted {
			if ctx.Err() != nil {
				return
			}
			errors.Report(&errors.Error{
				Op:   "clock.Ticker",
				Kind: errors.KindClock,
				Err:  fmt.Errorf("dispatcher rejected tick"),
			})
			return
		}
	}
}

// Stop deactivates the ticker. The pacing goroutine exits on its own; a tick
// it manages to dispatch afterwards is dropped on arrival.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	t.cancel()
	t.cancel = nil
}

// SetRate changes the tick rate. It takes effect on the next tick.
func (t *Ticker) SetRate(fps int) {
	t.limiter.SetLimit(limitFor(fps))
}

// Active returns whether the ticker is currently running.
func (t *Ticker) Active() bool {
	return t.isActive
}

// Dispose stops the ticker. It lets a retained set release the clock.
func (t *Ticker) Dispose() {
	t.Stop()
}
