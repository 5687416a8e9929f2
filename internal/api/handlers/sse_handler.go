package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	"github.com/Aryan9369/HonestWork/internal/infrastructure/observability"
)

// heartbeatInterval keeps idle SSE connections from being reaped by
// intermediaries.
const heartbeatInterval = 30 * time.Second

// SSEHandler streams change notifications to connected views over
// Server-Sent Events. Views re-read storage when a notification lands;
// the events themselves carry no payload beyond the touched key.
type SSEHandler struct {
	eventBus providers.EventBus
}

// NewSSEHandler creates a new SSE handler
func NewSSEHandler(eventBus providers.EventBus) *SSEHandler {
	return &SSEHandler{eventBus: eventBus}
}

// StreamDataUpdates handles GET /api/stream/data
func (h *SSEHandler) StreamDataUpdates(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, providers.EventChannelDataUpdates)
}

// StreamChatUpdates handles GET /api/stream/chat
func (h *SSEHandler) StreamChatUpdates(w http.ResponseWriter, r *http.Request) {
	h.stream(w, r, providers.EventChannelChatUpdates)
}

func (h *SSEHandler) stream(w http.ResponseWriter, r *http.Request, channel string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	logger := observability.LoggerFromContext(r.Context())

	// The subscription is scoped to the request context; the bus closes
	// the channel when the client goes away.
	eventChan, err := h.eventBus.Subscribe(r.Context(), channel)
	if err != nil {
		logger.Error().Err(err).Str("channel", channel).Msg("Failed to subscribe to event channel")
		respondWithError(w, http.StatusInternalServerError, "subscription failed")
		return
	}

	h.sendEvent(w, "connected", map[string]interface{}{
		"channel":   channel,
		"timestamp": time.Now(),
	})
	flusher.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			logger.Debug().Str("channel", channel).Msg("SSE client disconnected")
			return
		case <-ticker.C:
			h.sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case event, open := <-eventChan:
			if !open {
				return
			}
			if event == nil {
				continue
			}
			h.sendEvent(w, string(event.EventType), event)
			flusher.Flush()
		}
	}
}

// sendEvent writes one SSE frame to the client
func (h *SSEHandler) sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		observability.GetLogger().Error().Err(err).Msg("Failed to marshal SSE event data")
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", jsonData)
}
