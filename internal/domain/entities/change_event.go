package entities

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// ChangeEventType represents the type of storage change event
type ChangeEventType string

const (
	ChangeEventTypeDataUpdate ChangeEventType = "data_update"
	ChangeEventTypeChatUpdate ChangeEventType = "chat_update"
)

// ChangeEvent is broadcast after every storage mutation so views re-read
// fresh state. Chat message appends are broadcast on a dedicated channel
// so only chat views re-poll.
type ChangeEvent struct {
	ID        string          `json:"id"`
	EventType ChangeEventType `json:"event_type"`
	Key       string          `json:"key"`
	Origin    string          `json:"origin,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewChangeEvent creates a new change event for the given storage key
func NewChangeEvent(eventType ChangeEventType, key string) *ChangeEvent {
	return &ChangeEvent{
		ID:        generateEventID(),
		EventType: eventType,
		Key:       key,
		Timestamp: time.Now(),
	}
}

// generateEventID generates a unique event ID
func generateEventID() string {
	return time.Now().Format("20060102150405") + "-" + randomEventToken(8)
}

func randomEventToken(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp-based if crypto/rand fails
		return time.Now().Format("150405.000")
	}
	return hex.EncodeToString(bytes)[:length]
}
