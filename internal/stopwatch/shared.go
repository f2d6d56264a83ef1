package stopwatch

import (
	"io"
	"sync"
)

// Shared is a Stopwatch safe for concurrent use. Every call takes the lock
// for a single short critical section. Owners share a *Shared handle; the
// registry behind it is never copied.
type Shared struct {
	mu sync.Mutex
	sw *Stopwatch
}

// NewShared returns a concurrent stopwatch reporting to os.Stdout and
// os.Stderr.
func NewShared() *Shared {
	return &Shared{sw: New()}
}

// NewSharedWithOutput returns a concurrent stopwatch with injected writers.
func NewSharedWithOutput(out, errOut io.Writer) *Shared {
	return &Shared{sw: NewWithOutput(out, errOut)}
}

// Start begins a timer under label, resetting any running timer with the
// same label.
func (s *Shared) Start(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sw.Start(label)
}

// Peek reports elapsed milliseconds for label without stopping the timer.
func (s *Shared) Peek(label string, opts ...Option) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sw.Peek(label, opts...)
}

// Stop reports elapsed milliseconds for label and removes the timer.
func (s *Shared) Stop(label string, opts ...Option) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sw.Stop(label, opts...)
}

// Active returns the labels of all running timers in sorted order.
func (s *Shared) Active() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sw.Active()
}
