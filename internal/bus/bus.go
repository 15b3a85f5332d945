// internal/bus/bus.go

// Package bus owns the I2C bus resource the panel hangs off.
//
// A bus is opened once at process start and handed to the display sequencer.
// Probe and Scan implement the diagnostic presence sweep; they never fail the caller.
package bus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/tamzrod/netpanel/internal/logger"
	"github.com/tamzrod/netpanel/internal/clock"
)

// Scan range and per-address probe timeout of the presence sweep.
const (
	ScanFirst    uint16 = 0x08
	ScanLast     uint16 = 0x78
	ProbeTimeout        = 100 * time.Millisecond
)

// SimName selects the in-process simulated bus.
const SimName = "sim"

// ErrProbeTimeout is returned when a device does not answer within the timeout.
var ErrProbeTimeout = errors.New("bus: probe timeout")

// Open opens the named I2C bus. An empty name opens the first bus registered
// by the host drivers; SimName opens a simulated bus with a panel at panelAddr.
func Open(name string, panelAddr uint16) (i2c.BusCloser, error) {
	if name == SimName {
		return NewSim(panelAddr), nil
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("bus: host init: %w", err)
	}
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("bus: open %q: %w", name, err)
	}
	return b, nil
}

// Probe checks whether a device acknowledges addr with a one-byte read.
// It gives up after timeout; a bus transaction that outlives it is abandoned.
func Probe(ctx context.Context, b i2c.Bus, addr uint16, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		var r [1]byte
		done <- b.Tx(addr, nil, r[:])
	}()

	t := clock.AcquireTimer(timeout)
	defer clock.ReleaseTimer(t)

	select {
	case err := <-done:
		return err
	case <-t.C:
		return ErrProbeTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Scan probes every address in [first, last] and returns those that answered.
func Scan(ctx context.Context, b i2c.Bus, first, last uint16, timeout time.Duration, log logger.Logger) []uint16 {
	if log == nil {
		log = logger.GetLogger()
	}

	var found []uint16
	for addr := first; addr <= last; addr++ {
		if ctx.Err() != nil {
			break
		}
		if err := Probe(ctx, b, addr, timeout); err == nil {
			log.Info("found device", "address", fmt.Sprintf("0x%02X", addr))
			found = append(found, addr)
		}
	}
	return found
}
