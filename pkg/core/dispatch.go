package core

import (
	"log/slog"

	"github.com/go-drift/asciistats/pkg/errors"
)

// Fire runs the action bound to accessor.
//
// The accessor is resolved against the live state of the owning reducer,
// never against the snapshot the control was built from, so the mutator a
// control runs can change from one firing to the next. If the accessor is nil,
// resolves to nil, or panics, Fire does nothing; the failure is never passed
// on to Reduce.
func Fire[S any](ctx *PresentationContext[S], accessor Accessor[S]) {
	if ctx == nil || accessor == nil {
		return
	}
	m, ok := resolve(accessor, ctx.Current())
	if !ok {
		slog.Debug("action did not resolve to a mutator")
		return
	}
	ctx.Reduce(func(s *S) {
		m(s)
	})
}

// Trigger returns Fire bound to ctx and accessor, suitable as a control
// callback.
func Trigger[S any](ctx *PresentationContext[S], accessor Accessor[S]) func() {
	return func() {
		Fire(ctx, accessor)
	}
}

func resolve[S any](accessor Accessor[S], s S) (m Mutator[S], ok bool) {
	ok = errors.Guard("core.Fire", func() {
		m = accessor(s)
	})
	return m, ok && m != nil
}
