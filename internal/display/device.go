// internal/display/device.go
package display

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/i2c"

	"github.com/tamzrod/netpanel/internal/bus"
	"github.com/tamzrod/netpanel/internal/logger"
)

// Device is the panel controller contract the sequencer drives.
type Device interface {
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
	SetContrast(level byte) error
	// Enable forces the panel on.
	Enable() error
}

// Open acquires the panel at Address on b with the default bus clock.
// On a simulated bus the panel is a Console.
func Open(b i2c.Bus, log logger.Logger) (Device, error) {
	if b == nil {
		return nil, fmt.Errorf("display: nil bus")
	}
	if sim, ok := b.(*bus.Sim); ok {
		// one-byte read acts as the presence check of the simulated controller
		if err := sim.Tx(Address, nil, make([]byte, 1)); err != nil {
			return nil, fmt.Errorf("display: panel at 0x%02X: %w", Address, err)
		}
		return NewConsole(log), nil
	}
	return OpenSSD1306(b)
}
