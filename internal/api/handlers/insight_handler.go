package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Aryan9369/HonestWork/internal/application/services"
)

// InsightHandler handles AI summary and AI web-search requests
type InsightHandler struct {
	insight   *services.InsightService
	directory *services.DirectoryService
	content   *services.ContentService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insight *services.InsightService, directory *services.DirectoryService, content *services.ContentService) *InsightHandler {
	return &InsightHandler{
		insight:   insight,
		directory: directory,
		content:   content,
	}
}

type summaryRequest struct {
	EntityID string `json:"entity_id"`
}

// SummarizeReviews handles POST /api/insights/summary. The response is
// always 200 with a summary string; provider failures surface as a
// fallback message, never as an error status.
func (h *InsightHandler) SummarizeReviews(w http.ResponseWriter, r *http.Request) {
	var payload summaryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.EntityID == "" {
		respondWithError(w, http.StatusBadRequest, "entity_id is required")
		return
	}

	org, err := h.directory.ResolveOrganization(r.Context(), payload.EntityID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	reviews := h.content.ListReviews(r.Context(), payload.EntityID)
	summary := h.insight.SummarizeReviews(r.Context(), org.Name, reviews)

	respondWithJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

// SearchCompanies handles GET /api/insights/company-search?q=. A result
// superseded by a newer concurrent query answers 409 so the caller
// discards it instead of rendering stale candidates.
func (h *InsightHandler) SearchCompanies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	candidates, err := h.insight.SearchOrganizations(r.Context(), query)
	if err != nil {
		if errors.Is(err, services.ErrSearchSuperseded) {
			respondWithError(w, http.StatusConflict, "superseded by a newer query")
			return
		}
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"candidates": candidates,
		"count":      len(candidates),
	})
}
