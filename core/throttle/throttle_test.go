package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWait_SpacesCalls(t *testing.T) {
	interval := 30 * time.Millisecond
	th := New(interval)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, th.Wait(ctx))
	first := time.Since(start)
	require.NoError(t, th.Wait(ctx))
	second := time.Since(start)

	// The first call waits too; allow a little scheduler slack
	assert.GreaterOrEqual(t, first, interval-5*time.Millisecond)
	assert.GreaterOrEqual(t, second, 2*interval-5*time.Millisecond)
}

func TestWait_ZeroInterval(t *testing.T) {
	th := New(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, th.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestWait_Canceled(t *testing.T) {
	th := New(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, th.Wait(ctx), context.Canceled)
}

func TestWait_DeadlineTooShort(t *testing.T) {
	th := New(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := th.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWait_IdleGapCountsTowardSpacing(t *testing.T) {
	const interval = 20 * time.Millisecond
	th := New(interval)
	require.NoError(t, th.Wait(context.Background()))

	time.Sleep(2 * interval)

	start := time.Now()
	require.NoError(t, th.Wait(context.Background()))
	assert.Less(t, time.Since(start), interval/2)
}
