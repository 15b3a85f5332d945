// internal/countdown/countdown.go
package countdown

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/netpanel/internal/clock"
)

// Countdown counts from From down to To inclusive, one step per Interval.
type Countdown struct {
	From     int
	To       int
	Interval time.Duration
}

// Validate rejects counting upwards and non-positive intervals.
func (c Countdown) Validate() error {
	if c.From < c.To {
		return errors.New("countdown: from must be >= to")
	}
	if c.Interval <= 0 {
		return errors.New("countdown: interval must be > 0")
	}
	return nil
}

// Values returns From..To in descending order.
func (c Countdown) Values() []int {
	if c.From < c.To {
		return nil
	}
	out := make([]int, 0, c.From-c.To+1)
	for n := c.From; n >= c.To; n-- {
		out = append(out, n)
	}
	return out
}

// Run calls tick with each value and then pauses Interval, including after the last value.
func (c Countdown) Run(ctx context.Context, clk clock.Clock, tick func(n int)) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, n := range c.Values() {
		if tick != nil {
			tick(n)
		}
		if err := clk.Sleep(ctx, c.Interval); err != nil {
			return err
		}
	}
	return nil
}
