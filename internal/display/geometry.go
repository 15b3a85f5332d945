// internal/display/geometry.go
package display

// Fixed panel geometry and addressing. Not configurable.
const (
	Width      = 128
	Height     = 64
	PageHeight = 8
	Pages      = Height / PageHeight

	// Address is the panel's 7-bit I2C address.
	Address uint16 = 0x3C

	// MaxContrast is the highest contrast level.
	MaxContrast byte = 0xFF
)
