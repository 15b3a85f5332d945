// internal/clock/pacer_test.go
package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestPacer_WakeToWakeIsExactlyOnePeriod(t *testing.T) {
	clk := NewFake(epoch)
	p := NewPacer(clk, 10*time.Second)
	ctx := context.Background()

	// Render cost varies per iteration; the wake instants must not drift.
	for i, work := range []time.Duration{3 * time.Second, 7500 * time.Millisecond, 0, 9999 * time.Millisecond} {
		clk.Advance(work)

		overrun, err := p.Wait(ctx)
		require.NoError(t, err)
		assert.False(t, overrun)

		want := epoch.Add(time.Duration(i+1) * 10 * time.Second)
		assert.Equal(t, want, clk.Now(), "iteration %d", i)
	}
}

func TestPacer_OverrunDoesNotSleepAndKeepsSchedule(t *testing.T) {
	clk := NewFake(epoch)
	p := NewPacer(clk, 10*time.Second)

	clk.Advance(27500 * time.Millisecond)

	overrun, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.True(t, overrun)
	assert.Empty(t, clk.Sleeps())
	assert.Equal(t, epoch.Add(10*time.Second), p.LastWake())
}

func TestPacer_CancelledContext(t *testing.T) {
	clk := NewFake(epoch)
	p := NewPacer(clk, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRealSleep(t *testing.T) {
	start := time.Now()
	require.NoError(t, Real{}.Sleep(context.Background(), 10*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, Real{}.Sleep(ctx, time.Hour), context.Canceled)
}
