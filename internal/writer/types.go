// internal/writer/types.go
package writer

import "time"

// AreaHoldingRegisters is the register area the status block lives in.
const AreaHoldingRegisters byte = 3

// EndpointClient is the exact contract the status writer uses.
type EndpointClient interface {
	WriteRegisters(area byte, unitID uint8, addr uint16, regs []uint16) error
	Close() error
}

// StatusPlan is the fully-built delivery plan for the status block.
type StatusPlan struct {
	Endpoint   string
	Protocol   string
	UnitID     uint8
	BaseSlot   uint16
	DeviceName string
	Timeout    time.Duration
}
