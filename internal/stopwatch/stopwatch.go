// Package stopwatch provides labeled timers for measuring and logging
// elapsed durations.
package stopwatch

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// report carries the per-call reporting controls for Peek and Stop.
type report struct {
	message string
	silent  bool
}

// Option adjusts how a single Peek or Stop call reports its measurement.
type Option func(*report)

// WithMessage appends a trailing message to the emitted timing line.
func WithMessage(message string) Option {
	return func(r *report) {
		r.message = message
	}
}

// Silent suppresses the timing line; the measured value is still returned.
func Silent() Option {
	return func(r *report) {
		r.silent = true
	}
}

// Stopwatch tracks named timers by their start instant. The start instants
// come from time.Now, which carries a monotonic clock reading, so elapsed
// values are immune to wall-clock adjustments.
//
// A Stopwatch is not safe for concurrent use; see Shared for the
// mutex-guarded variant.
type Stopwatch struct {
	timers map[string]time.Time
	out    io.Writer
	errOut io.Writer
}

// New returns a Stopwatch that reports to os.Stdout and os.Stderr.
func New() *Stopwatch {
	return NewWithOutput(os.Stdout, os.Stderr)
}

// NewWithOutput returns a Stopwatch that reports timing lines to out and
// missing-timer diagnostics to errOut.
func NewWithOutput(out, errOut io.Writer) *Stopwatch {
	return &Stopwatch{
		timers: make(map[string]time.Time),
		out:    out,
		errOut: errOut,
	}
}

// Start begins a timer under label, resetting any timer already running
// under the same label.
func (s *Stopwatch) Start(label string) {
	s.timers[label] = time.Now()
}

// Peek reports the elapsed milliseconds for label without stopping the
// timer. A missing label is reported on the error writer and yields 0.
func (s *Stopwatch) Peek(label string, opts ...Option) float64 {
	started, ok := s.timers[label]
	if !ok {
		return s.missing(label)
	}
	return s.emit(label, time.Since(started), opts)
}

// Stop reports the elapsed milliseconds for label and removes the timer.
// A missing label is reported on the error writer and yields 0.
func (s *Stopwatch) Stop(label string, opts ...Option) float64 {
	started, ok := s.timers[label]
	if !ok {
		return s.missing(label)
	}
	delete(s.timers, label)
	return s.emit(label, time.Since(started), opts)
}

// Active returns the labels of all running timers in sorted order.
func (s *Stopwatch) Active() []string {
	labels := make([]string, 0, len(s.timers))
	for label := range s.timers {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func (s *Stopwatch) emit(label string, elapsed time.Duration, opts []Option) float64 {
	var r report
	for _, opt := range opts {
		opt(&r)
	}
	ms := toMilliseconds(elapsed)
	if !r.silent {
		if r.message != "" {
			fmt.Fprintf(s.out, "%s: %.3fms - %s\n", label, ms, r.message)
		} else {
			fmt.Fprintf(s.out, "%s: %.3fms\n", label, ms)
		}
	}
	return ms
}

func (s *Stopwatch) missing(label string) float64 {
	fmt.Fprintf(s.errOut, "Timer '%s' does not exist\n", label)
	return 0
}

// toMilliseconds converts a duration to fractional milliseconds: whole
// seconds times 1000 plus the sub-second remainder in nanoseconds over 1e6.
// Whole-millisecond durations convert exactly.
func toMilliseconds(d time.Duration) float64 {
	return float64(d/time.Second)*1000 + float64(d%time.Second)/1e6
}
