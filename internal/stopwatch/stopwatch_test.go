package stopwatch

import (
	"bytes"
	"fmt"
	"regexp"
	"testing"
	"time"
)

func newBuffered(t *testing.T) (*Stopwatch, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewWithOutput(out, errOut), out, errOut
}

func TestStartThenPeek(t *testing.T) {
	sw, _, errOut := newBuffered(t)
	sw.Start("tight")
	ms := sw.Peek("tight", Silent())
	if ms < 0 {
		t.Fatalf("elapsed must not be negative, got %f", ms)
	}
	if ms >= 1000 {
		t.Fatalf("immediate peek took implausibly long: %fms", ms)
	}
	if errOut.Len() != 0 {
		t.Fatalf("unexpected diagnostic: %q", errOut.String())
	}
}

func TestPeekAfterSleep(t *testing.T) {
	sw, _, _ := newBuffered(t)
	sw.Start("nap")
	time.Sleep(10 * time.Millisecond)
	ms := sw.Peek("nap", Silent())
	if ms < 10 {
		t.Fatalf("slept 10ms but measured %fms", ms)
	}
	if ms > 5000 {
		t.Fatalf("measured %fms, far beyond scheduler jitter", ms)
	}
}

func TestStopRemovesTimer(t *testing.T) {
	sw, _, errOut := newBuffered(t)
	sw.Start("once")
	if ms := sw.Stop("once", Silent()); ms < 0 {
		t.Fatalf("stop returned %f", ms)
	}
	ms := sw.Peek("once", Silent())
	if ms != 0 {
		t.Fatalf("expected 0 after stop, got %f", ms)
	}
	if got, want := errOut.String(), "Timer 'once' does not exist\n"; got != want {
		t.Fatalf("expected diagnostic %q got %q", want, got)
	}
}

func TestPeekKeepsTimer(t *testing.T) {
	sw, _, errOut := newBuffered(t)
	sw.Start("keep")
	first := sw.Peek("keep", Silent())
	second := sw.Peek("keep", Silent())
	if errOut.Len() != 0 {
		t.Fatalf("peek removed the timer: %q", errOut.String())
	}
	if second < first {
		t.Fatalf("elapsed went backwards: %f then %f", first, second)
	}
}

func TestRestartResetsOrigin(t *testing.T) {
	sw, _, _ := newBuffered(t)
	sw.Start("again")
	time.Sleep(20 * time.Millisecond)
	before := sw.Peek("again", Silent())
	sw.Start("again")
	after := sw.Peek("again", Silent())
	if after >= before {
		t.Fatalf("restart did not reset the clock: %f then %f", before, after)
	}
}

func TestMissingTimer(t *testing.T) {
	for _, op := range []string{"peek", "stop"} {
		t.Run(op, func(t *testing.T) {
			sw, out, errOut := newBuffered(t)
			var ms float64
			if op == "peek" {
				ms = sw.Peek("ghost")
			} else {
				ms = sw.Stop("ghost")
			}
			if ms != 0 {
				t.Fatalf("expected 0 for missing timer, got %f", ms)
			}
			if out.Len() != 0 {
				t.Fatalf("missing timer wrote to stdout: %q", out.String())
			}
			if got, want := errOut.String(), "Timer 'ghost' does not exist\n"; got != want {
				t.Fatalf("expected diagnostic %q got %q", want, got)
			}
		})
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		pattern string
	}{
		{"plain", nil, `^work: \d+\.\d{3}ms\n$`},
		{"message", []Option{WithMessage("done")}, `^work: \d+\.\d{3}ms - done\n$`},
		{"silent", []Option{Silent()}, `^$`},
		{"silent message", []Option{Silent(), WithMessage("done")}, `^$`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sw, out, _ := newBuffered(t)
			sw.Start("work")
			ms := sw.Stop("work", tc.opts...)
			if ms < 0 {
				t.Fatalf("stop returned %f", ms)
			}
			re := regexp.MustCompile(tc.pattern)
			if !re.MatchString(out.String()) {
				t.Fatalf("output %q does not match %q", out.String(), tc.pattern)
			}
		})
	}
}

func TestToMilliseconds(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want float64
	}{
		{1234 * time.Millisecond, 1234.0},
		{time.Second, 1000.0},
		{1500 * time.Microsecond, 1.5},
		{time.Nanosecond, 1e-6},
		{0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			if got := toMilliseconds(tc.d); got != tc.want {
				t.Fatalf("expected %v got %v", tc.want, got)
			}
		})
	}
}

func TestActive(t *testing.T) {
	sw, _, _ := newBuffered(t)
	for _, label := range []string{"b", "a", "c"} {
		sw.Start(label)
	}
	sw.Stop("b", Silent())
	got := sw.Active()
	want := []string{"a", "c"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("expected %v got %v", want, got)
	}
}
