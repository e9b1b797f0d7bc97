// Package core provides the blueprint and reactive element framework.
//
// This package defines the foundational types for building reactive user
// interfaces from a single application state value: Blueprint,
// ReactiveElement, PresentationContext and Mutator. A tree is built once from
// an initial state; afterwards every new state is pushed through the tree as
// an update(old, new) call and each leaf patches its own element in place.
//
// # Core Types
//
// Blueprint is a pure constructor. Given a PresentationContext it creates an
// element handle, the update procedure that keeps that handle in sync with
// state, and the set of auxiliary objects the handle needs to stay alive.
//
// ReactiveElement is the result of invoking a Blueprint. It is created once
// and never rebuilt:
//
//	label := core.Blueprint[*view.Label, Counter](func(ctx *core.PresentationContext[Counter]) core.ReactiveElement[*view.Label, Counter] {
//	    l := view.NewLabel("")
//	    return core.ReactiveElement[*view.Label, Counter]{
//	        Element: l,
//	        Update: func(_, s Counter) {
//	            l.SetText(strconv.Itoa(s.Count))
//	        },
//	    }
//	})
//
// # Composition
//
// Compose builds a list of child blueprints against one context and returns
// a container element whose update calls every child update in declaration
// order.
//
// # Actions
//
// Controls never capture mutators. They hold an Accessor that is resolved
// against the live state each time the control fires, so a state field can
// swap which Mutator runs next without rebuilding the control:
//
//	type Counter struct {
//	    Count int
//	    Next  core.Mutator[Counter]
//	}
//
//	core.Fire(ctx, func(s Counter) core.Mutator[Counter] { return s.Next })
//
// # Threading
//
// Everything in this package runs on the single control thread. Reduce is
// not reentrant; see package instrument for how nested reductions are
// handled.
package core
