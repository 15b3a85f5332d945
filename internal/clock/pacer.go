// internal/clock/pacer.go
package clock

import (
	"context"
	"time"
)

// Pacer implements a fixed-period wait relative to a remembered last wake time.
//
// Each Wait targets lastWake+period, not now+period, so time spent between waits
// does not accumulate as drift. lastWake always advances by exactly one period.
// When the target is already in the past, Wait returns at once and reports an overrun.
type Pacer struct {
	clk      Clock
	period   time.Duration
	lastWake time.Time
}

// NewPacer starts the schedule at clk.Now().
func NewPacer(clk Clock, period time.Duration) *Pacer {
	return &Pacer{clk: clk, period: period, lastWake: clk.Now()}
}

// LastWake returns the current schedule anchor.
func (p *Pacer) LastWake() time.Time { return p.lastWake }

// Wait blocks until the next period boundary.
func (p *Pacer) Wait(ctx context.Context) (overrun bool, err error) {
	next := p.lastWake.Add(p.period)
	p.lastWake = next

	d := next.Sub(p.clk.Now())
	if d <= 0 {
		return true, ctx.Err()
	}
	return false, p.clk.Sleep(ctx, d)
}
