package clock

import (
	"testing"
	"time"

	"github.com/go-drift/asciistats/pkg/errors"
	"github.com/go-drift/asciistats/pkg/platform"
)

func pumpUntil(loop *platform.Loop, timeout time.Duration, done func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		loop.Drain()
		if done() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func TestTicker_DeliversOnLoop(t *testing.T) {
	loop := platform.NewLoop(16)
	defer loop.Stop()

	target := NewTarget(nil)
	tk := NewTicker(target, 200, loop)
	if tk.Active() {
		t.Fatal("ticker should start stopped")
	}

	tk.Start()
	tk.Start()
	if !tk.Active() {
		t.Fatal("ticker should be active after Start")
	}
	if !pumpUntil(loop, 2*time.Second, func() bool { return target.Ticks() >= 3 }) {
		t.Fatalf("expected at least 3 ticks, got %d", target.Ticks())
	}

	tk.Stop()
	if tk.Active() {
		t.Fatal("ticker should be inactive after Stop")
	}
	stoppedAt := target.Ticks()
	time.Sleep(30 * time.Millisecond)
	loop.Drain()
	if target.Ticks() != stoppedAt {
		t.Errorf("expected no ticks after Stop, got %d more", target.Ticks()-stoppedAt)
	}
}

func TestTicker_RestartAfterStop(t *testing.T) {
	loop := platform.NewLoop(16)
	defer loop.Stop()

	fired := 0
	tk := NewTicker(NewTarget(func() { fired++ }), 500, loop)

	tk.Start()
	if !pumpUntil(loop, 2*time.Second, func() bool { return fired >= 1 }) {
		t.Fatal("expected a tick after first Start")
	}
	tk.Stop()
	loop.Drain()
	before := fired

	tk.Start()
	defer tk.Dispose()
	if !pumpUntil(loop, 2*time.Second, func() bool { return fired > before }) {
		t.Fatal("expected ticks after restart")
	}
}

func TestTicker_DisposeStops(t *testing.T) {
	discard := platform.DispatchFunc(func(func()) bool { return true })
	tk := NewTicker(NewTarget(nil), 30, discard)
	tk.Start()
	tk.Dispose()
	if tk.Active() {
		t.Error("Dispose should stop the ticker")
	}
	tk.Dispose()
}

func TestTicker_ReportsRejectedDispatch(t *testing.T) {
	reported := make(chan *errors.Error, 1)
	old := errors.DefaultHandler
	errors.SetHandler(&recordingHandler{errs: reported})
	defer errors.SetHandler(old)

	reject := platform.DispatchFunc(func(func()) bool { return false })
	tk := NewTicker(NewTarget(nil), 100, reject)
	tk.Start()
	defer tk.Stop()

	select {
	case err := <-reported:
		if err.Kind != errors.KindClock {
			t.Errorf("Kind = %v, want %v", err.Kind, errors.KindClock)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected rejected dispatch to be reported")
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		fps  int
		want int
	}{
		{0, DefaultFPS},
		{-5, DefaultFPS},
		{60, 60},
	}
	for _, tt := range tests {
		if got := Rate(tt.fps); got != tt.want {
			t.Errorf("Rate(%d) = %d, want %d", tt.fps, got, tt.want)
		}
	}
}

func TestTarget_CountsTicks(t *testing.T) {
	calls := 0
	target := NewTarget(func() { calls++ })
	target.Fire()
	target.Fire()
	if target.Ticks() != 2 || calls != 2 {
		t.Errorf("expected 2 ticks and 2 calls, got %d and %d", target.Ticks(), calls)
	}
}

type recordingHandler struct {
	errs chan *errors.Error
}

func (h *recordingHandler) HandleError(err *errors.Error) {
	select {
	case h.errs <- err:
	default:
	}
}

func (h *recordingHandler) HandlePanic(*errors.PanicError) {}
