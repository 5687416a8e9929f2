package payments_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Aryan9369/HonestWork/internal/adapters/payments"
)

func TestMockProvider_ConfirmSurvivesCancelledContext(t *testing.T) {
	var confirmed atomic.Bool
	provider := payments.NewMockProvider(10*time.Millisecond, func(ctx context.Context, sessionID string) error {
		require.NoError(t, ctx.Err(), "confirm must run on a live context")
		confirmed.Store(true)
		return nil
	})

	// A booking request's context dies the moment the response is
	// written. The gateway callback must outlive it.
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, provider.InitiateCheckout(ctx, "sess-1"))
	cancel()

	require.Eventually(t, confirmed.Load, time.Second, 5*time.Millisecond)
}

func TestMockProvider_ConfirmErrorIsSwallowed(t *testing.T) {
	var calls atomic.Int32
	provider := payments.NewMockProvider(time.Millisecond, func(ctx context.Context, sessionID string) error {
		calls.Add(1)
		return context.DeadlineExceeded
	})

	require.NoError(t, provider.InitiateCheckout(context.Background(), "sess-2"))

	// One shot, no retry.
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	require.EqualValues(t, 1, calls.Load())
}
