package events

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
)

// MemoryEventBus implements EventBus inside a single process. Mutations
// from this process reach every subscriber; there is no external-origin
// signal, so it suits single-profile deployments and tests.
type MemoryEventBus struct {
	subscribers map[string]map[chan *entities.ChangeEvent]struct{}
	mu          sync.RWMutex
	closed      bool
}

// NewMemoryEventBus creates a new in-process event bus
func NewMemoryEventBus() providers.EventBus {
	return &MemoryEventBus{
		subscribers: make(map[string]map[chan *entities.ChangeEvent]struct{}),
	}
}

// Publish delivers the event to all current subscribers of the channel
func (b *MemoryEventBus) Publish(_ context.Context, channel string, event *entities.ChangeEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for subscriber := range b.subscribers[channel] {
		select {
		case subscriber <- event:
		default:
			// Subscriber channel full, skip event
			log.Warn().Str("channel", channel).Str("event_id", event.ID).Msg("subscriber channel full, skipping event")
		}
	}
	return nil
}

// Subscribe registers a subscriber for a channel until ctx is cancelled
func (b *MemoryEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.ChangeEvent, error) {
	b.mu.Lock()
	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[chan *entities.ChangeEvent]struct{})
	}
	eventChan := make(chan *entities.ChangeEvent, 100)
	b.subscribers[channel][eventChan] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.removeSubscriber(channel, eventChan)
	}()

	return eventChan, nil
}

// Unsubscribe drops all subscribers of a channel
func (b *MemoryEventBus) Unsubscribe(_ context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for subscriber := range b.subscribers[channel] {
		close(subscriber)
	}
	delete(b.subscribers, channel)
	return nil
}

// Close shuts the bus down and closes all subscriber channels
func (b *MemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for channel, subscribers := range b.subscribers {
		for subscriber := range subscribers {
			close(subscriber)
		}
		delete(b.subscribers, channel)
	}
	return nil
}

func (b *MemoryEventBus) removeSubscriber(channel string, eventChan chan *entities.ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subscribers, exists := b.subscribers[channel]
	if !exists {
		return
	}
	if _, ok := subscribers[eventChan]; !ok {
		return
	}
	delete(subscribers, eventChan)
	close(eventChan)
	if len(subscribers) == 0 {
		delete(b.subscribers, channel)
	}
}
