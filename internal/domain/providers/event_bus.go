package providers

import (
	"context"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// storage change events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.ChangeEvent) error

	// Subscribe subscribes to events on a channel. The subscription is
	// torn down when ctx is cancelled.
	Subscribe(ctx context.Context, channel string) (<-chan *entities.ChangeEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannel constants for the two notification paths
const (
	// EventChannelDataUpdates carries the generic "data changed" signal
	// fired after every storage mutation, from any source.
	EventChannelDataUpdates = "honestwork:updates:data"

	// EventChannelChatUpdates carries chat message and session status
	// changes so only chat views re-poll.
	EventChannelChatUpdates = "honestwork:updates:chat"
)
