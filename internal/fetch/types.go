// internal/fetch/types.go
package fetch

import (
	"net/netip"
	"time"
)

// Result is produced once per fetch attempt.
type Result struct {
	// ID correlates the log lines of one attempt.
	ID      string
	At      time.Time
	Outcome Outcome
	Err     error // nil only for StreamComplete

	// Addr is the address resolved for this attempt (zero on DNSFailure).
	Addr netip.AddrPort

	// BytesReceived counts bytes echoed during RECEIVING.
	BytesReceived int
	// LastRead is the byte count of the read that ended the receive phase (<= 0).
	LastRead int
	// LastReadErr is the error returned alongside LastRead, if any.
	LastReadErr error
}

// Healthy reports whether the attempt completed the stream.
func (r Result) Healthy() bool { return r.Outcome == StreamComplete }

// Code returns the outcome's status code.
func (r Result) Code() uint16 { return r.Outcome.Code() }

// State is a step of the fetch cycle.
type State uint8

const (
	Resolving State = iota
	Connecting
	Sending
	Configuring
	Receiving
	Completing
)

func (s State) String() string {
	switch s {
	case Resolving:
		return "resolving"
	case Connecting:
		return "connecting"
	case Sending:
		return "sending"
	case Configuring:
		return "configuring"
	case Receiving:
		return "receiving"
	case Completing:
		return "stream-complete"
	default:
		return "unknown"
	}
}
