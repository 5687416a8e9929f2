package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	"github.com/Aryan9369/HonestWork/internal/infrastructure/observability"
	apperrors "github.com/Aryan9369/HonestWork/pkg/errors"
)

// readList decodes the stored JSON list under key. Missing or corrupt
// state degrades to an empty list so a read can never crash a view;
// corruption is logged and the seed layer still serves.
func readList[T any](ctx context.Context, store providers.KVStore, key string) []T {
	data, err := store.Get(ctx, key)
	if errors.Is(err, providers.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to read stored list")
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		corrupt := apperrors.NewStorageCorruptError("stored list failed to decode", err)
		observability.LoggerFromContext(ctx).Warn().Err(corrupt).Str("key", key).Msg("degrading to seed-only data")
		return nil
	}
	return items
}

// writeList persists items as a JSON list under key
func writeList[T any](ctx context.Context, store providers.KVStore, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return apperrors.NewInternalError("failed to encode list for "+key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return apperrors.NewInternalError("failed to persist "+key, err)
	}
	return nil
}

// appendToList appends one item to the persisted list under key
func appendToList[T any](ctx context.Context, store providers.KVStore, key string, item T) error {
	items := readList[T](ctx, store, key)
	items = append(items, item)
	return writeList(ctx, store, key, items)
}

// notifyDataChanged fires the generic "data changed" broadcast after a
// completed write. Delivery is best-effort: the mutation already
// succeeded, so a publish failure is logged rather than surfaced.
func notifyDataChanged(ctx context.Context, bus providers.EventBus, key string) {
	event := entities.NewChangeEvent(entities.ChangeEventTypeDataUpdate, key)
	if err := bus.Publish(ctx, providers.EventChannelDataUpdates, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to publish data change event")
	}
}

// notifyChatChanged fires the dedicated chat broadcast so only chat views
// re-poll
func notifyChatChanged(ctx context.Context, bus providers.EventBus, key string) {
	event := entities.NewChangeEvent(entities.ChangeEventTypeChatUpdate, key)
	if err := bus.Publish(ctx, providers.EventChannelChatUpdates, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to publish chat change event")
	}
}
