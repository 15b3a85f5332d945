// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/netpanel/internal/status"
)

// StatusWriter is the delivery-only contract for fetch status.
// It receives a snapshot and writes it verbatim.
// No logic, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// statusWriter writes the block as a full re-assert first, then per-slot deltas.
type statusWriter struct {
	plan *StatusPlan
	cli  EndpointClient

	needFull bool
	last     status.Snapshot
}

// NewStatusWriter builds a status writer for plan over cli.
// A nil plan means status is disabled.
func NewStatusWriter(plan *StatusPlan, cli EndpointClient) (StatusWriter, bool) {
	if plan == nil {
		return nil, false
	}

	return &statusWriter{
		plan:     plan,
		cli:      cli,
		needFull: true, // full re-assert on first successful write
		last:     status.Snapshot{Health: status.HealthUnknown},
	}, true
}

// WriteStatus delivers a snapshot into status memory.
// On any write failure, the next successful call re-asserts the full block.
func (sw *statusWriter) WriteStatus(s status.Snapshot) error {
	if sw.cli == nil {
		return fmt.Errorf("status writer: missing client for endpoint %s", sw.plan.Endpoint)
	}

	// seconds_in_error MUST NOT wrap
	if s.SecondsInError > status.MaxSecondsInError {
		s.SecondsInError = status.MaxSecondsInError
	}

	base := sw.baseAddr()

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		regs := status.Encode(s, sw.plan.DeviceName)
		if err := sw.cli.WriteRegisters(AreaHoldingRegisters, sw.plan.UnitID, base, regs); err != nil {
			sw.needFull = true
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = s
		return nil
	}

	var errs []string

	write := func(slot uint16, name string, v uint16, last *uint16) {
		if *last == v {
			return
		}
		if err := sw.cli.WriteRegisters(AreaHoldingRegisters, sw.plan.UnitID, base+slot, []uint16{v}); err != nil {
			errs = append(errs, fmt.Sprintf("slot%d %s write failed: %v", slot, name, err))
			return
		}
		*last = v
	}

	write(status.SlotHealthCode, "health", s.Health, &sw.last.Health)
	write(status.SlotLastErrorCode, "last_error", s.LastErrorCode, &sw.last.LastErrorCode)
	write(status.SlotSecondsInError, "seconds", s.SecondsInError, &sw.last.SecondsInError)

	if len(errs) > 0 {
		// Any partial failure introduces doubt; re-assert on next success.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *statusWriter) baseAddr() uint16 {
	// Each block owns a fixed SlotsPerDevice range.
	return sw.plan.BaseSlot * status.SlotsPerDevice
}
