package mdview

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ReadySource reports when the parser is ready. Subscribe registers fn to run
// once the source becomes ready (immediately if it already is) and returns a
// function that removes the registration.
type ReadySource interface {
	Ready() bool
	Subscribe(fn func()) (unsubscribe func())
}

var _ ReadySource = (*Signal)(nil)

// Signal is a one-shot ReadySource. The zero value is ready to use and safe
// for concurrent use.
type Signal struct {
	mu        sync.Mutex
	fired     bool
	nextID    int
	listeners map[int]func()
}

// NewSignal returns an unfired Signal.
func NewSignal() *Signal {
	return &Signal{}
}

// Fire marks the signal ready and runs every subscribed listener. Calls after
// the first are no-ops.
func (s *Signal) Fire() {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		return
	}
	s.fired = true
	listeners := s.listeners
	s.listeners = nil
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Ready reports whether Fire has been called.
func (s *Signal) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fired
}

// Subscribe registers fn. If the signal already fired, fn runs before
// Subscribe returns.
func (s *Signal) Subscribe(fn func()) func() {
	s.mu.Lock()
	if s.fired {
		s.mu.Unlock()
		fn()
		return func() {}
	}
	if s.listeners == nil {
		s.listeners = make(map[int]func())
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Listeners returns the number of pending subscriptions.
func (s *Signal) Listeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// WaitReady blocks until src is ready, timeout elapses or ctx is done,
// whichever happens first. A nil src counts as ready. When src is already
// ready it returns without subscribing. The subscription and the timer are
// released before WaitReady returns, whatever the outcome.
func WaitReady(ctx context.Context, src ReadySource, timeout time.Duration) error {
	if src == nil || src.Ready() {
		return nil
	}

	ready := make(chan struct{})
	var once sync.Once
	unsubscribe := src.Subscribe(func() {
		once.Do(func() { close(ready) })
	})
	defer unsubscribe()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ready:
		return nil
	case <-timer.C:
		return fmt.Errorf("%w after %s", ErrReadyTimeout, timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}
