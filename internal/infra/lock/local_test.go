//go:build unit

package lock

import (
	"context"
	"testing"
	"time"

	"decor-booking/internal/pkg/clock"
	"decor-booking/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	l := NewLocalLocker(clk)

	release, err := l.TryLock(ctx, "payment:pi_1", 5*time.Second)
	require.NoError(t, err)

	_, err = l.TryLock(ctx, "payment:pi_1", 5*time.Second)
	assert.ErrorIs(t, err, commands.ErrLockNotAcquired)

	other, err := l.TryLock(ctx, "payment:pi_2", 5*time.Second)
	require.NoError(t, err)
	require.NoError(t, other(ctx))

	require.NoError(t, release(ctx))
	again, err := l.TryLock(ctx, "payment:pi_1", 5*time.Second)
	require.NoError(t, err)

	t.Run("expired lease can be taken over", func(t *testing.T) {
		clk.Add(6 * time.Second)
		takeover, err := l.TryLock(ctx, "payment:pi_1", 5*time.Second)
		require.NoError(t, err)

		// the stale holder must not release the new lease
		require.NoError(t, again(ctx))
		_, err = l.TryLock(ctx, "payment:pi_1", 5*time.Second)
		assert.ErrorIs(t, err, commands.ErrLockNotAcquired)

		require.NoError(t, takeover(ctx))
	})
}
