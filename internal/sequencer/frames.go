// internal/sequencer/frames.go
package sequencer

import (
	"strconv"
	"time"

	"github.com/tamzrod/netpanel/internal/countdown"
	"github.com/tamzrod/netpanel/internal/display"
)

// Frame is one visual state held on the panel.
type Frame struct {
	// Label is logged when the frame starts; empty for continuation frames.
	Label string
	// Clear wipes the canvas before Draw; Invert lights the wiped canvas.
	Clear  bool
	Invert bool
	Draw   func(c *display.Canvas)
	Hold   time.Duration
}

// Period is the wake-to-wake period of the outer loop.
const Period = 10 * time.Second

const (
	iconX = 31
	iconY = 0
)

// digitCountdown drives step 5. It never reaches 0.
var digitCountdown = countdown.Countdown{From: 9, To: 1, Interval: time.Second}

var demo = buildDemo()

// Demo returns the fixed demonstration sequence. The slice is a copy;
// the frames themselves are never mutated.
func Demo() []Frame {
	out := make([]Frame, len(demo))
	copy(out, demo)
	return out
}

func buildDemo() []Frame {
	frames := []Frame{
		{
			Label: "Display x3 Text",
			Clear: true,
			Draw:  func(c *display.Canvas) { c.TextScaled(0, "Hello", 3, false) },
			Hold:  3 * time.Second,
		},
		{
			Label: "Display bitmap icons",
			Clear: true,
			Draw:  func(c *display.Canvas) { c.Bitmap(iconX, iconY, display.DataRx, false) },
			Hold:  500 * time.Millisecond,
		},
		{
			Draw: func(c *display.Canvas) { c.Bitmap(iconX, iconY, display.DataTx, false) },
			Hold: time.Second,
		},
		{
			Label: "Display x2 Text",
			Clear: true,
			Draw: func(c *display.Canvas) {
				c.TextScaled(0, "{xTEXTx}", 2, false)
				c.TextScaled(2, " X2-X2", 2, false)
			},
			Hold: 3 * time.Second,
		},
		{
			Label: "Display Text",
			Clear: true,
			Draw: func(c *display.Canvas) {
				c.Text(0, "SSD1306 128x64", false)
				c.Text(1, "Hello World!!", false)
				c.Text(2, "SSD1306 128x64", true)
				c.Text(3, "Hello World!!", true)
			},
			Hold: 3 * time.Second,
		},
	}

	for i, n := range digitCountdown.Values() {
		digit := strconv.Itoa(n)
		f := Frame{
			Clear: true,
			Draw:  func(c *display.Canvas) { c.TextScaled(2, digit, 3, false) },
			Hold:  digitCountdown.Interval,
		}
		if i == 0 {
			f.Label = "Display Count Down"
		}
		frames = append(frames, f)
	}

	frames = append(frames,
		Frame{
			Label: "Simple Demo",
			Clear: true,
			Draw: func(c *display.Canvas) {
				c.Text(0, "WiFi Connected", false)
				c.Text(2, "HTTP GET Demo", false)
			},
			Hold: 3 * time.Second,
		},
		Frame{
			Label:  "Invert",
			Clear:  true,
			Invert: true,
			Draw:   func(c *display.Canvas) { c.Text(1, "  Good Bye!!", true) },
			Hold:   5 * time.Second,
		},
	)
	return frames
}
