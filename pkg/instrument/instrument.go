package instrument

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/asciistats/pkg/core"
)

// Instrument is the single owner of an application's state. It builds the
// element tree once from a root blueprint and, on every reduction, drives
// exactly one update(prev, next) call through the root element.
//
// Instrument is NOT thread-safe. Reduce must only be called from the control
// thread; clocks and input sources hop onto it through a platform.Dispatcher.
type Instrument[E, S any] struct {
	id      string
	store   *Store[S]
	root    core.ReactiveElement[E, S]
	ctx     *core.PresentationContext[S]
	logger  *slog.Logger
	metrics *Metrics

	propagating bool
	pending     []core.Mutator[S]
	closed      bool
}

// Option configures an Instrument.
type Option func(*options)

type options struct {
	navigator core.Navigator
	logger    *slog.Logger
	metrics   *Metrics
}

// WithNavigator routes the navigation hooks of the presentation context.
func WithNavigator(nav core.Navigator) Option {
	return func(o *options) { o.navigator = nav }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics records reductions into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New creates an instrument holding initial, builds blueprint against a fresh
// presentation context, and synchronizes the tree once with
// update(initial, initial).
func New[E, S any](initial S, blueprint core.Blueprint[E, S], opts ...Option) *Instrument[E, S] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.metrics == nil {
		o.metrics = NewMetrics(nil)
	}

	in := &Instrument[E, S]{
		id:      newID(),
		store:   NewStore(initial),
		metrics: o.metrics,
	}
	in.logger = o.logger.With("instrument", in.id)
	in.ctx = core.NewPresentationContext[S](initial, in, o.navigator)
	in.root = blueprint.Build(in.ctx)
	in.store.OnChange(in.propagate)

	in.propagating = true
	in.root.Apply(initial, initial)
	in.propagating = false
	in.drain()

	in.logger.Debug("instrument built", "retained", in.root.Retained.Len())
	return in
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ID identifies the instrument in logs.
func (in *Instrument[E, S]) ID() string {
	return in.id
}

// State returns the current committed state.
func (in *Instrument[E, S]) State() S {
	return in.store.State()
}

// Element returns the root element handle.
func (in *Instrument[E, S]) Element() E {
	return in.root.Element
}

// Context returns the presentation context the tree was built with.
func (in *Instrument[E, S]) Context() *core.PresentationContext[S] {
	return in.ctx
}

// Reduce applies m to a copy of the current state, propagates
// update(prev, next) through the tree, and commits next. Reduce never fails.
//
// A Reduce issued while a propagation is in flight (for example by a mutator
// or an update procedure calling back into the instrument) is not
// interleaved with it. It is queued and applied, in order, once the current
// propagation has finished.
func (in *Instrument[E, S]) Reduce(m core.Mutator[S]) {
	if in.closed || m == nil {
		return
	}
	if in.propagating {
		in.pending = append(in.pending, m)
		in.metrics.DeferredReductions.Inc()
		in.logger.Warn("reduce called during propagation; deferring", "queued", len(in.pending))
		return
	}
	in.apply(m)
	in.drain()
}

func (in *Instrument[E, S]) apply(m core.Mutator[S]) {
	in.propagating = true
	defer func() { in.propagating = false }()
	in.store.Apply(m)
	in.metrics.Reductions.Inc()
}

func (in *Instrument[E, S]) drain() {
	for len(in.pending) > 0 && !in.closed {
		next := in.pending[0]
		in.pending = in.pending[1:]
		in.apply(next)
	}
	in.pending = nil
}

func (in *Instrument[E, S]) propagate(prev, next S) {
	start := time.Now()
	in.root.Apply(prev, next)
	in.metrics.Propagation.Observe(time.Since(start).Seconds())
}

// Close releases every retained object of the tree, stopping running clocks.
// Reductions after Close are ignored.
func (in *Instrument[E, S]) Close() {
	if in.closed {
		return
	}
	in.closed = true
	in.pending = nil
	in.root.Release()
	in.logger.Debug("instrument closed")
}
