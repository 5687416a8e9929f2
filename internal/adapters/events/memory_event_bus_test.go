package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan9369/HonestWork/internal/adapters/events"
	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
)

func TestMemoryEventBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := events.NewMemoryEventBus()
	defer bus.Close()
	ctx := context.Background()

	first, err := bus.Subscribe(ctx, providers.EventChannelDataUpdates)
	require.NoError(t, err)
	second, err := bus.Subscribe(ctx, providers.EventChannelDataUpdates)
	require.NoError(t, err)

	event := entities.NewChangeEvent(entities.ChangeEventTypeDataUpdate, providers.KeyCustomCompanies)
	require.NoError(t, bus.Publish(ctx, providers.EventChannelDataUpdates, event))

	for _, ch := range []<-chan *entities.ChangeEvent{first, second} {
		select {
		case got := <-ch:
			assert.Equal(t, event.ID, got.ID)
			assert.Equal(t, providers.KeyCustomCompanies, got.Key)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestMemoryEventBus_ChannelsAreIsolated(t *testing.T) {
	bus := events.NewMemoryEventBus()
	defer bus.Close()
	ctx := context.Background()

	dataCh, err := bus.Subscribe(ctx, providers.EventChannelDataUpdates)
	require.NoError(t, err)

	event := entities.NewChangeEvent(entities.ChangeEventTypeChatUpdate, providers.KeyChatMessages)
	require.NoError(t, bus.Publish(ctx, providers.EventChannelChatUpdates, event))

	select {
	case got := <-dataCh:
		t.Fatalf("data subscriber received chat event %v", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryEventBus_ContextCancelTearsDownSubscription(t *testing.T) {
	bus := events.NewMemoryEventBus()
	defer bus.Close()

	subCtx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Subscribe(subCtx, providers.EventChannelDataUpdates)
	require.NoError(t, err)

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, open := <-ch:
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond, "subscriber channel must close on cancel")

	// Publishing after teardown must not panic or block.
	event := entities.NewChangeEvent(entities.ChangeEventTypeDataUpdate, "k")
	require.NoError(t, bus.Publish(context.Background(), providers.EventChannelDataUpdates, event))
}

func TestMemoryEventBus_CloseClosesSubscribers(t *testing.T) {
	bus := events.NewMemoryEventBus()
	ctx := context.Background()

	ch, err := bus.Subscribe(ctx, providers.EventChannelChatUpdates)
	require.NoError(t, err)

	require.NoError(t, bus.Close())

	_, open := <-ch
	assert.False(t, open)

	// Close is idempotent and publish after close is a no-op.
	require.NoError(t, bus.Close())
	event := entities.NewChangeEvent(entities.ChangeEventTypeDataUpdate, "k")
	require.NoError(t, bus.Publish(ctx, providers.EventChannelDataUpdates, event))
}
