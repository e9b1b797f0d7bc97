// Package navigation provides the push/pop collaborator behind the navigation
// hooks of a presentation context.
package navigation

import (
	"sync"

	"github.com/go-drift/asciistats/pkg/core"
)

// Observer is notified after the navigation stack changes.
type Observer interface {
	DidPush(screen any, depth int)
	DidPop(screen any, depth int)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnPush func(screen any, depth int)
	OnPop  func(screen any, depth int)
}

// DidPush calls OnPush.
func (o ObserverFuncs) DidPush(screen any, depth int) {
	if o.OnPush != nil {
		o.OnPush(screen, depth)
	}
}

// DidPop calls OnPop.
func (o ObserverFuncs) DidPop(screen any, depth int) {
	if o.OnPop != nil {
		o.OnPop(screen, depth)
	}
}

// Stack manages a stack of screens using imperative navigation. The root
// screen can never be popped.
type Stack struct {
	mu        sync.Mutex
	screens   []any
	observers []Observer
}

var _ core.Navigator = (*Stack)(nil)

// NewStack creates a stack showing root.
func NewStack(root any) *Stack {
	s := &Stack{}
	if root != nil {
		s.screens = append(s.screens, root)
	}
	return s
}

// SetRoot replaces the bottom screen. It is used when the root screen only
// exists after the instrument that owns the navigator has been built.
func (s *Stack) SetRoot(root any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.screens) == 0 {
		s.screens = append(s.screens, root)
		return
	}
	s.screens[0] = root
}

// AddObserver registers o for push and pop notifications.
func (s *Stack) AddObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Push shows screen on top of the stack.
func (s *Stack) Push(screen any) {
	if screen == nil {
		return
	}
	s.mu.Lock()
	s.screens = append(s.screens, screen)
	depth := len(s.screens)
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	for _, o := range observers {
		o.DidPush(screen, depth)
	}
}

// Pop removes the top screen unless it is the root.
func (s *Stack) Pop() {
	s.MaybePop()
}

// MaybePop removes the top screen and reports whether anything was popped.
func (s *Stack) MaybePop() bool {
	s.mu.Lock()
	if len(s.screens) <= 1 {
		s.mu.Unlock()
		return false
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	depth := len(s.screens)
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	for _, o := range observers {
		o.DidPop(top, depth)
	}
	return true
}

// CanPop reports whether a screen above the root is showing.
func (s *Stack) CanPop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.screens) > 1
}

// Top returns the visible screen, or nil for an empty stack.
func (s *Stack) Top() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Depth returns the number of screens on the stack.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.screens)
}
