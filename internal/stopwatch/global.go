package stopwatch

import "sync"

var (
	defaultOnce sync.Once
	defaultSW   *Shared
)

// Default returns the process-wide stopwatch. It is constructed exactly once,
// even under concurrent first access, and is safe to use from any goroutine.
func Default() *Shared {
	defaultOnce.Do(func() {
		defaultSW = NewShared()
	})
	return defaultSW
}
