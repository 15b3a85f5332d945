// internal/display/ssd1306.go
package display

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
)

// SSD1306 command bytes.
const (
	cmdPrefix    byte = 0x00
	cmdDisplayOn byte = 0xAF
)

// SSD1306 adapts the periph.io driver to Device.
type SSD1306 struct {
	dev *ssd1306.Dev
	ctl *i2c.Dev
}

// OpenSSD1306 initialises a 128x64 panel on b.
func OpenSSD1306(b i2c.Bus) (*SSD1306, error) {
	dev, err := ssd1306.NewI2C(b, &ssd1306.Opts{W: Width, H: Height})
	if err != nil {
		return nil, fmt.Errorf("display: ssd1306 init: %w", err)
	}
	return &SSD1306{
		dev: dev,
		ctl: &i2c.Dev{Bus: b, Addr: Address},
	}, nil
}

func (p *SSD1306) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	return p.dev.Draw(r, src, sp)
}

func (p *SSD1306) SetContrast(level byte) error {
	return p.dev.SetContrast(level)
}

func (p *SSD1306) Enable() error {
	return p.ctl.Tx([]byte{cmdPrefix, cmdDisplayOn}, nil)
}
