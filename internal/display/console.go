// internal/display/console.go
package display

import (
	"image"
	"image/draw"
	"strings"
	"sync"

	"periph.io/x/devices/v3/ssd1306/image1bit"

	"github.com/tamzrod/netpanel/internal/logger"
)

// Console is a panel stand-in that keeps its own framebuffer and dumps every
// frame to the debug log as text.
type Console struct {
	mu       sync.Mutex
	fb       *image1bit.VerticalLSB
	contrast byte
	enabled  bool
	draws    int
	log      logger.Logger
}

var _ Device = (*Console)(nil)

// NewConsole returns a dark, disabled console panel.
func NewConsole(log logger.Logger) *Console {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Console{
		fb:  image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height)),
		log: log.With("panel", "console"),
	}
}

func (c *Console) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	c.mu.Lock()
	draw.Draw(c.fb, r.Intersect(c.fb.Bounds()), src, sp, draw.Src)
	c.draws++
	c.mu.Unlock()

	if c.log.Level() <= logger.DebugLevel {
		c.log.Debug("frame", "pixels", c.ASCII())
	}
	return nil
}

func (c *Console) SetContrast(level byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contrast = level
	return nil
}

func (c *Console) Enable() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = true
	return nil
}

func (c *Console) Contrast() byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contrast
}

func (c *Console) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// Draws counts Draw calls.
func (c *Console) Draws() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draws
}

// Lit reports whether pixel (x, y) of the last shown frame is on.
func (c *Console) Lit(x, y int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return bool(c.fb.BitAt(x, y))
}

// ASCII renders the framebuffer, one line per pixel row.
func (c *Console) ASCII() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if c.fb.BitAt(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
