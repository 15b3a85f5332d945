// internal/status/tracker.go
package status

// Tracker owns the live Snapshot of the fetch loop.
// Observe folds in one attempt result; Tick is called at 1 Hz.
// Both report whether the snapshot changed and needs delivery.
//
// Tracker is not safe for concurrent use; one orchestrator goroutine owns it.
type Tracker struct {
	snap Snapshot
}

// NewTracker starts in HealthUnknown.
func NewTracker() *Tracker {
	return &Tracker{snap: Snapshot{Health: HealthUnknown}}
}

func (t *Tracker) Snapshot() Snapshot { return t.snap }

// Observe records one attempt. code is 0 for success.
func (t *Tracker) Observe(ok bool, code uint16) (Snapshot, bool) {
	prev := t.snap

	if ok {
		// Recovery resets the error state.
		t.snap = Snapshot{Health: HealthOK}
	} else {
		t.snap.Health = HealthError
		t.snap.LastErrorCode = code
		// seconds_in_error only moves on Tick
	}

	return t.snap, t.snap != prev
}

// Tick advances seconds_in_error while not OK. It saturates, never wraps.
func (t *Tracker) Tick() (Snapshot, bool) {
	if t.snap.Health == HealthOK || t.snap.SecondsInError >= MaxSecondsInError {
		return t.snap, false
	}
	t.snap.SecondsInError++
	return t.snap, true
}
