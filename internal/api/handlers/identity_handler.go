package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Aryan9369/HonestWork/internal/application/services"
	"github.com/Aryan9369/HonestWork/internal/domain/entities"
)

// IdentityHandler handles session state, email verification and invite
// code requests.
type IdentityHandler struct {
	identity *services.IdentityService
}

// NewIdentityHandler creates a new identity handler
func NewIdentityHandler(identity *services.IdentityService) *IdentityHandler {
	return &IdentityHandler{identity: identity}
}

// GetSession handles GET /api/session
func (h *IdentityHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session := h.identity.GetSession(r.Context())
	respondWithJSON(w, http.StatusOK, session)
}

// UpdateSession handles PATCH /api/session. Absent fields are left
// untouched.
func (h *IdentityHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var patch entities.UserSessionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := h.identity.UpdateSession(r.Context(), patch); err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, h.identity.GetSession(r.Context()))
}

type verifyEmailRequest struct {
	Email string `json:"email"`
}

// VerifyEmail handles POST /api/verify-email
func (h *IdentityHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var payload verifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	payload.Email = strings.TrimSpace(payload.Email)

	result, err := h.identity.VerifyEmail(r.Context(), payload.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

type inviteCodeRequest struct {
	Code string `json:"code"`
}

// ValidateInviteCode handles POST /api/invites/validate
func (h *IdentityHandler) ValidateInviteCode(w http.ResponseWriter, r *http.Request) {
	var payload inviteCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]bool{
		"valid": h.identity.ValidateInviteCode(payload.Code),
	})
}
