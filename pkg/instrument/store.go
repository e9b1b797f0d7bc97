// Package instrument owns application state and drives update propagation
// through a tree of reactive elements.
package instrument

import "github.com/go-drift/asciistats/pkg/core"

// Store holds the authoritative state value and applies mutators to it.
//
// Store is NOT thread-safe. It must only be used from the control thread.
type Store[S any] struct {
	current  S
	onChange func(prev, next S)
}

// NewStore creates a store holding initial.
func NewStore[S any](initial S) *Store[S] {
	return &Store[S]{current: initial}
}

// State returns the current state.
func (s *Store[S]) State() S {
	return s.current
}

// OnChange registers the single propagation callback. It is invoked after
// every Apply with the state before and after the mutation, before the new
// state is committed. Registering again replaces the previous callback.
func (s *Store[S]) OnChange(fn func(prev, next S)) {
	s.onChange = fn
}

// Apply runs m on an exclusively owned copy of the current state, invokes the
// propagation callback, then commits the result. A nil mutator still
// propagates an unchanged state.
func (s *Store[S]) Apply(m core.Mutator[S]) (prev, next S) {
	prev = s.current
	next = core.Copy(prev)
	if m != nil {
		m(&next)
	}
	if s.onChange != nil {
		s.onChange(prev, next)
	}
	s.current = next
	return prev, next
}
