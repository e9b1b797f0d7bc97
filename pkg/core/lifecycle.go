package core

// ClockPhase is the state of an edge-triggered clock element.
type ClockPhase int

const (
	// Stopped is the initial phase; the clock delivers no ticks.
	Stopped ClockPhase = iota
	// Running means the clock has been started and not yet stopped.
	Running
)

func (p ClockPhase) String() string {
	switch p {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// Effect is the side effect a phase transition asks for.
type Effect int

const (
	// EffectNone leaves the clock alone.
	EffectNone Effect = iota
	// EffectStart starts the clock.
	EffectStart
	// EffectStop stops the clock.
	EffectStop
)

func (e Effect) String() string {
	switch e {
	case EffectStart:
		return "start"
	case EffectStop:
		return "stop"
	default:
		return "none"
	}
}

// Transition computes the next phase of a clock element bound to a boolean
// state flag. Only a false->true edge starts a stopped clock and only a
// true->false edge stops a running one; every other combination keeps the
// phase and requests no effect, so a running clock can never be started twice.
func Transition(phase ClockPhase, prev, next bool) (ClockPhase, Effect) {
	switch {
	case !prev && next && phase == Stopped:
		return Running, EffectStart
	case prev && !next && phase == Running:
		return Stopped, EffectStop
	default:
		return phase, EffectNone
	}
}

// EdgeTrigger tracks the phase of one clock element and applies Transition to
// every state update.
type EdgeTrigger[S any] struct {
	phase ClockPhase
	flag  func(S) bool
	start func()
	stop  func()
}

// NewEdgeTrigger creates a trigger in the Stopped phase.
func NewEdgeTrigger[S any](flag func(S) bool, start, stop func()) *EdgeTrigger[S] {
	return &EdgeTrigger[S]{flag: flag, start: start, stop: stop}
}

// Phase returns the current phase.
func (t *EdgeTrigger[S]) Phase() ClockPhase {
	return t.phase
}

// Update is an UpdateFunc driving start and stop from the flag.
func (t *EdgeTrigger[S]) Update(prev, next S) {
	var effect Effect
	t.phase, effect = Transition(t.phase, t.flag(prev), t.flag(next))
	switch effect {
	case EffectStart:
		if t.start != nil {
			t.start()
		}
	case EffectStop:
		if t.stop != nil {
			t.stop()
		}
	}
}
