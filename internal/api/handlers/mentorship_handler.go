package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Aryan9369/HonestWork/internal/application/services"
	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	"github.com/Aryan9369/HonestWork/internal/infrastructure/observability"
)

// MentorshipHandler handles mentor registry and paid chat requests
type MentorshipHandler struct {
	mentorship *services.MentorshipService
	payments   providers.PaymentProvider
	simulator  *services.ChatSimulator
}

// NewMentorshipHandler creates a new mentorship handler
func NewMentorshipHandler(mentorship *services.MentorshipService, payments providers.PaymentProvider, simulator *services.ChatSimulator) *MentorshipHandler {
	return &MentorshipHandler{
		mentorship: mentorship,
		payments:   payments,
		simulator:  simulator,
	}
}

// ListMentors handles GET /api/mentors?entity_id=
func (h *MentorshipHandler) ListMentors(w http.ResponseWriter, r *http.Request) {
	var mentors []entities.Mentor
	if entityID := r.URL.Query().Get("entity_id"); entityID != "" {
		mentors = h.mentorship.ListMentors(r.Context(), entityID)
	} else {
		mentors = h.mentorship.ListAllMentors(r.Context())
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"mentors": mentors,
		"count":   len(mentors),
	})
}

// GetMentor handles GET /api/mentors/{id}
func (h *MentorshipHandler) GetMentor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "mentor ID is required")
		return
	}

	mentor, err := h.mentorship.GetMentor(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, mentor)
}

// RegisterMentor handles POST /api/mentors
func (h *MentorshipHandler) RegisterMentor(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterMentorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	mentor, err := h.mentorship.RegisterMentor(r.Context(), input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, mentor)
}

// ListSessions handles GET /api/chat/sessions
func (h *MentorshipHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.mentorship.ListSessions(r.Context())

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

// GetChatSession handles GET /api/chat/sessions/{id}
func (h *MentorshipHandler) GetChatSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "session ID is required")
		return
	}

	session, err := h.mentorship.GetSession(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, session)
}

type bookSessionRequest struct {
	MentorID  string `json:"mentor_id"`
	UserEmail string `json:"user_email"`
}

// BookSession handles POST /api/chat/sessions. The session is created
// awaiting payment and checkout is kicked off with the gateway; the
// gateway confirms asynchronously and the session activates then.
func (h *MentorshipHandler) BookSession(w http.ResponseWriter, r *http.Request) {
	var payload bookSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.MentorID == "" {
		respondWithError(w, http.StatusBadRequest, "mentor_id is required")
		return
	}

	sessionID, err := h.mentorship.BookSession(r.Context(), payload.MentorID, payload.UserEmail)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.payments.InitiateCheckout(r.Context(), sessionID); err != nil {
		observability.LoggerFromContext(r.Context()).Error().Err(err).
			Str("session_id", sessionID).
			Msg("Failed to initiate checkout")
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"session_id": sessionID,
		"status":     string(entities.SessionStatusPendingPayment),
	})
}

// EndSession handles POST /api/chat/sessions/{id}/end
func (h *MentorshipHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "session ID is required")
		return
	}

	if err := h.mentorship.EndSession(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": string(entities.SessionStatusCompleted)})
}

// ListMessages handles GET /api/chat/sessions/{id}/messages
func (h *MentorshipHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "session ID is required")
		return
	}

	messages := h.mentorship.ListMessages(r.Context(), id)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
		"count":    len(messages),
	})
}

type postMessageRequest struct {
	Text string `json:"text"`
}

// PostMessage handles POST /api/chat/sessions/{id}/messages. The user's
// message is appended and the mentor side is nudged for a delayed reply.
func (h *MentorshipHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "session ID is required")
		return
	}

	var payload postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	payload.Text = strings.TrimSpace(payload.Text)
	if payload.Text == "" {
		respondWithError(w, http.StatusBadRequest, "message text is required")
		return
	}

	if err := h.mentorship.PostMessage(r.Context(), id, entities.MessageSenderUser, payload.Text); err != nil {
		respondServiceError(w, err)
		return
	}

	h.simulator.OnUserMessage(r.Context(), id)

	respondWithJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}
