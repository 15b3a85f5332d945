// internal/clock/timer.go
package clock

import (
	"sync"
	"time"
)

// idleTimers holds stopped, drained timers between waits.
var idleTimers sync.Pool

// AcquireTimer hands out a one-shot timer due after d.
// Every timer obtained here goes back through ReleaseTimer once the wait is over.
func AcquireTimer(d time.Duration) *time.Timer {
	t, ok := idleTimers.Get().(*time.Timer)
	if !ok {
		return time.NewTimer(d)
	}
	t.Reset(d)
	return t
}

// ReleaseTimer parks t for reuse. A tick that fired but was never read is
// discarded so the next holder starts with an empty channel.
func ReleaseTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	idleTimers.Put(t)
}
