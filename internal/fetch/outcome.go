// internal/fetch/outcome.go
package fetch

import "time"

// Outcome is the single result class of one fetch attempt.
type Outcome uint8

const (
	StreamComplete Outcome = iota
	DNSFailure
	SocketAllocationFailure
	ConnectFailure
	RequestSendFailure
	TimeoutConfigFailure
)

// Fixed cooldown tiers. Not configurable.
const (
	// PreConnectCooldown applies when no socket was consumed.
	PreConnectCooldown = 1 * time.Second
	// PostConnectCooldown applies once a socket or handshake was attempted.
	PostConnectCooldown = 4 * time.Second
)

var outcomeNames = [...]string{
	StreamComplete:          "stream-complete",
	DNSFailure:              "dns-failure",
	SocketAllocationFailure: "socket-allocation-failure",
	ConnectFailure:          "connect-failure",
	RequestSendFailure:      "request-send-failure",
	TimeoutConfigFailure:    "timeout-config-failure",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Failed reports whether the attempt ended before the stream was read.
func (o Outcome) Failed() bool { return o != StreamComplete }

// Code is the stable numeric code published in the status block. 0 means success.
func (o Outcome) Code() uint16 { return uint16(o) }

// Cooldown is the fixed pause before the next resolution after a failure.
// StreamComplete has no cooldown of its own; its pause is the completion countdown.
func (o Outcome) Cooldown() time.Duration {
	switch o {
	case DNSFailure, SocketAllocationFailure:
		return PreConnectCooldown
	case ConnectFailure, RequestSendFailure, TimeoutConfigFailure:
		return PostConnectCooldown
	default:
		return 0
	}
}
