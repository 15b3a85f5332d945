// internal/sequencer/sequencer.go

// Package sequencer drives the panel through a fixed sequence of frames, forever.
//
// The sequence is data (a Frame table) played by one generic driver that shows
// and holds each frame in turn. Iterations are paced by a drift-corrected period.
package sequencer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/i2c"

	"github.com/tamzrod/netpanel/internal/bus"
	"github.com/tamzrod/netpanel/internal/clock"
	"github.com/tamzrod/netpanel/internal/display"
	"github.com/tamzrod/netpanel/internal/logger"
)

// ErrNoBus terminates the sequencer when it is started without a bus handle.
var ErrNoBus = errors.New("sequencer: I2C bus handle is nil")

// OpenFunc acquires the panel on a bus.
type OpenFunc func(b i2c.Bus, log logger.Logger) (display.Device, error)

// Config is the runtime config of the sequencer.
// Zero-valued fields fall back to display.Open, the demo table, Period,
// the wall clock and the default logger.
type Config struct {
	Bus    i2c.Bus
	Open   OpenFunc
	Frames []Frame
	Period time.Duration
	Clock  clock.Clock
	Logger logger.Logger
}

// Sequencer owns the bus and the panel for its whole lifetime.
type Sequencer struct {
	bus    i2c.Bus
	open   OpenFunc
	frames []Frame
	period time.Duration
	clk    clock.Clock
	log    logger.Logger
}

// New validates cfg. A nil bus is accepted here and reported by Run.
func New(cfg Config) (*Sequencer, error) {
	if cfg.Open == nil {
		cfg.Open = display.Open
	}
	if cfg.Frames == nil {
		cfg.Frames = Demo()
	}
	if len(cfg.Frames) == 0 {
		return nil, errors.New("sequencer: no frames")
	}
	for i, f := range cfg.Frames {
		if f.Hold < 0 {
			return nil, fmt.Errorf("sequencer: frame %d: negative hold", i)
		}
	}
	if cfg.Period == 0 {
		cfg.Period = Period
	}
	if cfg.Period < 0 {
		return nil, errors.New("sequencer: negative period")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.Real{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}

	return &Sequencer{
		bus:    cfg.Bus,
		open:   cfg.Open,
		frames: cfg.Frames,
		period: cfg.Period,
		clk:    cfg.Clock,
		log:    cfg.Logger.With("component", "ssd1306"),
	}, nil
}

// Run initializes the panel and plays the sequence until ctx is done.
// It returns early only when the bus or the panel cannot be acquired.
func (s *Sequencer) Run(ctx context.Context) error {
	pacer := clock.NewPacer(s.clk, s.period)

	if s.bus == nil {
		s.log.Error("I2C bus handle is nil")
		return ErrNoBus
	}

	s.log.Info("Scanning I2C bus for devices...")
	bus.Scan(ctx, s.bus, bus.ScanFirst, bus.ScanLast, bus.ProbeTimeout, s.log)
	s.log.Info("I2C scan complete.")

	dev, err := s.open(s.bus, s.log)
	if err != nil {
		s.log.Error("ssd1306 handle init failed", "error", err)
		return fmt.Errorf("sequencer: open panel: %w", err)
	}

	canvas, err := display.NewCanvas()
	if err != nil {
		s.log.Error("canvas init failed", "error", err)
		return fmt.Errorf("sequencer: canvas: %w", err)
	}

	s.powerOn(dev, canvas)

	for {
		s.log.Info("SSD1306 - START")
		s.log.Info(fmt.Sprintf("Panel is %dx%d", display.Width, display.Height))

		for i, f := range s.frames {
			if err := s.play(ctx, dev, canvas, i, f); err != nil {
				return err
			}
		}

		s.log.Info("SSD1306 - END")

		overrun, err := pacer.Wait(ctx)
		if err != nil {
			return err
		}
		if overrun {
			s.log.Debug("sequence overran its period", "period", s.period)
		}
	}
}

func (s *Sequencer) powerOn(dev display.Device, c *display.Canvas) {
	if err := dev.Enable(); err != nil {
		s.log.Warn("display on failed", "error", err)
	}
	if err := dev.SetContrast(display.MaxContrast); err != nil {
		s.log.Warn("set contrast failed", "error", err)
	}

	c.Clear(false)
	c.Text(0, "TEST!!", false)
	if err := c.Show(dev); err != nil {
		s.log.Warn("draw failed", "error", err)
	}
	s.log.Info("Display forced ON, contrast max.")
}

func (s *Sequencer) play(ctx context.Context, dev display.Device, c *display.Canvas, i int, f Frame) error {
	if f.Label != "" {
		s.log.Info(f.Label)
	}
	if f.Clear {
		c.Clear(f.Invert)
	}
	if f.Draw != nil {
		f.Draw(c)
	}
	if err := c.Show(dev); err != nil {
		s.log.Warn("draw failed", "frame", i, "error", err)
	}
	return s.clk.Sleep(ctx, f.Hold)
}
