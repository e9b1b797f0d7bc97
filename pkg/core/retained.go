package core

import "sync"

// Disposable is implemented by retained objects that hold resources beyond
// memory, such as running clocks.
type Disposable interface {
	Dispose()
}

// RetainSet owns opaque objects whose only purpose is to stay alive as long
// as an element does. The set is never inspected; it is filled once at
// construction and released together with its element.
//
// The zero value is an empty set ready to use.
type RetainSet struct {
	state *retainState
}

type retainState struct {
	mu       sync.Mutex
	objects  []any
	released bool
}

// Retain returns a set holding objs.
func Retain(objs ...any) RetainSet {
	if len(objs) == 0 {
		return RetainSet{}
	}
	held := make([]any, 0, len(objs))
	for _, obj := range objs {
		if obj != nil {
			held = append(held, obj)
		}
	}
	return RetainSet{state: &retainState{objects: held}}
}

// Merge returns a new set holding the objects of every given set. Order is
// not significant.
func Merge(sets ...RetainSet) RetainSet {
	var all []any
	for _, s := range sets {
		all = append(all, s.objects()...)
	}
	return Retain(all...)
}

// Len reports how many objects the set holds.
func (r RetainSet) Len() int {
	return len(r.objects())
}

func (r RetainSet) objects() []any {
	if r.state == nil {
		return nil
	}
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return r.state.objects
}

// Release disposes every Disposable in the set in reverse order of
// retention and drops all references. Releasing twice is a no-op.
func (r RetainSet) Release() {
	if r.state == nil {
		return
	}
	r.state.mu.Lock()
	if r.state.released {
		r.state.mu.Unlock()
		return
	}
	r.state.released = true
	objs := r.state.objects
	r.state.objects = nil
	r.state.mu.Unlock()

	for i := len(objs) - 1; i >= 0; i-- {
		if d, ok := objs[i].(Disposable); ok {
			d.Dispose()
		}
	}
}
