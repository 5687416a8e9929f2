package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Aryan9369/HonestWork/internal/application/services"
	"github.com/Aryan9369/HonestWork/internal/domain/entities"
)

// ContentHandler handles review, Q&A, interview and salary requests.
// All content is keyed by the owning organization's entity ID.
type ContentHandler struct {
	content  *services.ContentService
	identity *services.IdentityService
}

// NewContentHandler creates a new content handler
func NewContentHandler(content *services.ContentService, identity *services.IdentityService) *ContentHandler {
	return &ContentHandler{content: content, identity: identity}
}

// ListReviews handles GET /api/entities/{id}/reviews
func (h *ContentHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	entityID := r.PathValue("id")
	if entityID == "" {
		respondWithError(w, http.StatusBadRequest, "entity ID is required")
		return
	}

	reviews := h.content.ListReviews(r.Context(), entityID)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// AddReview handles POST /api/entities/{id}/reviews.
// The verified-author badge comes from the session, never from the
// payload, and new reviews always start with zero helpful votes.
func (h *ContentHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	entityID := r.PathValue("id")
	if entityID == "" {
		respondWithError(w, http.StatusBadRequest, "entity ID is required")
		return
	}

	var review entities.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	session := h.identity.GetSession(r.Context())
	review.IsVerified = session.IsVerified && session.VerifiedEntityID == entityID
	review.HelpfulVotes = 0
	review.IsUpvoted = false

	if err := h.content.AddReview(r.Context(), entityID, &review); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, review)
}

// ToggleHelpfulVote handles POST /api/reviews/{id}/vote
func (h *ContentHandler) ToggleHelpfulVote(w http.ResponseWriter, r *http.Request) {
	reviewID := r.PathValue("id")
	if reviewID == "" {
		respondWithError(w, http.StatusBadRequest, "review ID is required")
		return
	}

	if err := h.content.ToggleHelpfulVote(r.Context(), reviewID); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListQuestions handles GET /api/entities/{id}/questions
func (h *ContentHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	entityID := r.PathValue("id")
	if entityID == "" {
		respondWithError(w, http.StatusBadRequest, "entity ID is required")
		return
	}

	questions := h.content.ListQuestions(r.Context(), entityID)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"count":     len(questions),
	})
}

type questionRequest struct {
	Text string `json:"text"`
}

// AddQuestion handles POST /api/entities/{id}/questions
func (h *ContentHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	entityID := r.PathValue("id")
	if entityID == "" {
		respondWithError(w, http.StatusBadRequest, "entity ID is required")
		return
	}

	var payload questionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	payload.Text = strings.TrimSpace(payload.Text)
	if payload.Text == "" {
		respondWithError(w, http.StatusBadRequest, "question text is required")
		return
	}

	if err := h.content.AddQuestion(r.Context(), entityID, payload.Text); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

type answerRequest struct {
	Text string `json:"text"`
}

// AddAnswer handles POST /api/entities/{id}/questions/{questionId}/answers.
// The answer carries a verified badge when the current session is
// verified for the same organization the question belongs to.
func (h *ContentHandler) AddAnswer(w http.ResponseWriter, r *http.Request) {
	entityID := r.PathValue("id")
	questionID := r.PathValue("questionId")
	if entityID == "" || questionID == "" {
		respondWithError(w, http.StatusBadRequest, "entity ID and question ID are required")
		return
	}

	var payload answerRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	payload.Text = strings.TrimSpace(payload.Text)
	if payload.Text == "" {
		respondWithError(w, http.StatusBadRequest, "answer text is required")
		return
	}

	session := h.identity.GetSession(r.Context())
	isVerified := session.IsVerified && session.VerifiedEntityID == entityID

	if err := h.content.AddAnswer(r.Context(), entityID, questionID, payload.Text, isVerified); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// ListInterviews handles GET /api/entities/{id}/interviews
func (h *ContentHandler) ListInterviews(w http.ResponseWriter, r *http.Request) {
	entityID := r.PathValue("id")
	if entityID == "" {
		respondWithError(w, http.StatusBadRequest, "entity ID is required")
		return
	}

	interviews := h.content.ListInterviews(r.Context(), entityID)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"interviews": interviews,
		"count":      len(interviews),
	})
}

// AddInterview handles POST /api/entities/{id}/interviews
func (h *ContentHandler) AddInterview(w http.ResponseWriter, r *http.Request) {
	entityID := r.PathValue("id")
	if entityID == "" {
		respondWithError(w, http.StatusBadRequest, "entity ID is required")
		return
	}

	var report entities.InterviewReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.content.AddInterview(r.Context(), entityID, &report); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, report)
}

// ListSalaries handles GET /api/entities/{id}/salaries
func (h *ContentHandler) ListSalaries(w http.ResponseWriter, r *http.Request) {
	entityID := r.PathValue("id")
	if entityID == "" {
		respondWithError(w, http.StatusBadRequest, "entity ID is required")
		return
	}

	salaries := h.content.ListSalaries(r.Context(), entityID)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"salaries": salaries,
		"count":    len(salaries),
	})
}

// AddSalary handles POST /api/entities/{id}/salaries
func (h *ContentHandler) AddSalary(w http.ResponseWriter, r *http.Request) {
	entityID := r.PathValue("id")
	if entityID == "" {
		respondWithError(w, http.StatusBadRequest, "entity ID is required")
		return
	}

	var submission entities.SalarySubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.content.AddSalary(r.Context(), entityID, &submission); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, submission)
}
