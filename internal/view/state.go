// Package view holds the observable per-screen state machines sitting
// between the store, the report engine, and any presentation surface.
// Every screen's state moves Idle -> Loading -> Loaded | Failed;
// failures carry a human-readable message and never a panic.
package view

import "sync"

// Phase is a screen's position in its loading lifecycle.
type Phase int

const (
	// PhaseIdle means no load has been requested yet.
	PhaseIdle Phase = iota
	// PhaseLoading means a store call is in flight.
	PhaseLoading
	// PhaseLoaded means Data holds a fresh view model.
	PhaseLoaded
	// PhaseFailed means the last operation failed; Err is displayable.
	PhaseFailed
)

// State is the observable snapshot of one screen.
type State[T any] struct {
	Err   string
	Data  T
	Phase Phase
}

// screen is the shared state-holder embedded by each view model. It
// publishes every state change to subscribers as a full replacement.
type screen[T any] struct {
	mu       sync.Mutex
	state    State[T]
	watchers []chan State[T]
}

// State returns the current snapshot.
func (s *screen[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe returns a channel receiving every subsequent state change.
// A pending unconsumed state is displaced by a newer one.
func (s *screen[T]) Subscribe() <-chan State[T] {
	ch := make(chan State[T], 1)
	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()
	return ch
}

func (s *screen[T]) publish(state State[T]) {
	s.mu.Lock()
	s.state = state
	watchers := s.watchers
	s.mu.Unlock()

	for _, ch := range watchers {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
		default:
		}
	}
}

func (s *screen[T]) setLoading() {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()
	state.Phase = PhaseLoading
	state.Err = ""
	s.publish(state)
}

func (s *screen[T]) setLoaded(data T) {
	s.publish(State[T]{Phase: PhaseLoaded, Data: data})
}

func (s *screen[T]) setFailed(msg string) {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()
	state.Phase = PhaseFailed
	state.Err = msg
	s.publish(state)
}
