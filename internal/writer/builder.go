// internal/writer/builder.go
package writer

import (
	"fmt"
	"time"

	"github.com/tamzrod/netpanel/internal/config"
	wingest "github.com/tamzrod/netpanel/internal/writer/ingest"
	wmodbus "github.com/tamzrod/netpanel/internal/writer/modbus"
)

// BuildStatusPlan converts the status config into a StatusPlan.
// It returns nil when the status block is disabled.
// Assumes config has already passed validation.
func BuildStatusPlan(c config.StatusConfig) *StatusPlan {
	if !c.Enabled() {
		return nil
	}
	return &StatusPlan{
		Endpoint:   c.Endpoint,
		Protocol:   c.Protocol,
		UnitID:     c.UnitID,
		BaseSlot:   c.Slot,
		DeviceName: c.DeviceName,
		Timeout:    time.Duration(c.TimeoutMs) * time.Millisecond,
	}
}

// BuildEndpointClient creates the client for the plan's protocol.
func BuildEndpointClient(p *StatusPlan) (EndpointClient, error) {
	if p == nil {
		return nil, fmt.Errorf("writer: status plan required")
	}

	switch p.Protocol {
	case config.ProtocolModbus:
		return wmodbus.NewEndpointClient(wmodbus.Config{
			Endpoint: p.Endpoint,
			Timeout:  p.Timeout,
		})
	case config.ProtocolIngest:
		return wingest.NewEndpointClient(wingest.Config{
			Endpoint: p.Endpoint,
			Timeout:  p.Timeout,
		})
	default:
		return nil, fmt.Errorf("writer: unknown protocol %q", p.Protocol)
	}
}
