// internal/countdown/countdown_test.go
package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/netpanel/internal/clock"
)

func TestValues(t *testing.T) {
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}, Countdown{From: 9, To: 1, Interval: time.Second}.Values())
	assert.Equal(t, []int{0}, Countdown{From: 0, To: 0, Interval: time.Second}.Values())
	assert.Nil(t, Countdown{From: 1, To: 2}.Values())
}

func TestRun_TicksThenPauses(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))

	var seen []int
	err := Countdown{From: 10, To: 0, Interval: time.Second}.Run(context.Background(), clk, func(n int) {
		seen = append(seen, n)
	})
	require.NoError(t, err)

	assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, seen)
	require.Len(t, clk.Sleeps(), 11)
	for _, d := range clk.Sleeps() {
		assert.Equal(t, time.Second, d)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	ctx, cancel := context.WithCancel(context.Background())

	var seen []int
	err := Countdown{From: 5, To: 1, Interval: time.Second}.Run(ctx, clk, func(n int) {
		seen = append(seen, n)
		if n == 4 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{5, 4}, seen)
}

func TestValidate(t *testing.T) {
	require.Error(t, Countdown{From: 1, To: 2, Interval: time.Second}.Validate())
	require.Error(t, Countdown{From: 2, To: 1}.Validate())
	require.NoError(t, Countdown{From: 2, To: 1, Interval: time.Millisecond}.Validate())
}
