package core

// Mutator transforms a state value into its successor in place. It receives
// an exclusively owned copy of the current state.
//
// Mutators are total: a mutator that observes an invalid precondition leaves
// the state unchanged rather than failing. A Mutator may be stored as a field
// of the state itself but must never capture an element handle.
type Mutator[S any] func(*S)

// Accessor yields the Mutator a control should run for a given state. A nil
// result means the accessor did not resolve and the control does nothing.
type Accessor[S any] func(S) Mutator[S]

// Cloner is implemented by states holding reference types (slices, maps)
// that must be deep-copied before a Mutator may change them.
type Cloner[S any] interface {
	Clone() S
}

// Copy returns an exclusively owned copy of s.
func Copy[S any](s S) S {
	if c, ok := any(s).(Cloner[S]); ok {
		return c.Clone()
	}
	return s
}

// Static returns an Accessor that always resolves to m.
func Static[S any](m Mutator[S]) Accessor[S] {
	return func(S) Mutator[S] { return m }
}

// MutatorTable dispatches tagged actions to mutators. It is an alternative to
// storing mutators as state fields when the set of actions is closed.
type MutatorTable[K comparable, S any] struct {
	entries map[K]func(S) Mutator[S]
}

// NewMutatorTable returns an empty table.
func NewMutatorTable[K comparable, S any]() *MutatorTable[K, S] {
	return &MutatorTable[K, S]{entries: make(map[K]func(S) Mutator[S])}
}

// Register binds key to a fixed mutator.
func (t *MutatorTable[K, S]) Register(key K, m Mutator[S]) *MutatorTable[K, S] {
	t.entries[key] = func(S) Mutator[S] { return m }
	return t
}

// RegisterFunc binds key to a state-dependent lookup. The lookup may return
// nil to disable the action for some states.
func (t *MutatorTable[K, S]) RegisterFunc(key K, lookup func(S) Mutator[S]) *MutatorTable[K, S] {
	t.entries[key] = lookup
	return t
}

// Lookup resolves key against s.
func (t *MutatorTable[K, S]) Lookup(key K, s S) (Mutator[S], bool) {
	lookup, ok := t.entries[key]
	if !ok || lookup == nil {
		return nil, false
	}
	m := lookup(s)
	return m, m != nil
}

// Accessor returns an Accessor resolving key through the table.
func (t *MutatorTable[K, S]) Accessor(key K) Accessor[S] {
	return func(s S) Mutator[S] {
		m, _ := t.Lookup(key, s)
		return m
	}
}
