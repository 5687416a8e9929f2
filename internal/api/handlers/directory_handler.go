package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Aryan9369/HonestWork/internal/application/services"
	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	apperrors "github.com/Aryan9369/HonestWork/pkg/errors"
)

// DirectoryHandler handles organization catalog HTTP requests
type DirectoryHandler struct {
	directory *services.DirectoryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directory *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// ListOrganizations handles GET /api/organizations/{kind}
func (h *DirectoryHandler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseOrgKind(w, r)
	if !ok {
		return
	}

	orgs, err := h.directory.ListOrganizations(r.Context(), kind)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"organizations": orgs,
		"count":         len(orgs),
	})
}

// GetOrganization handles GET /api/organizations/{kind}/{id}
func (h *DirectoryHandler) GetOrganization(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseOrgKind(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "organization ID is required")
		return
	}

	switch kind {
	case entities.OrgKindCompany:
		company, err := h.directory.GetCompany(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, company)
	case entities.OrgKindCollege:
		college, err := h.directory.GetCollege(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, college)
	case entities.OrgKindSchool:
		school, err := h.directory.GetSchool(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, school)
	case entities.OrgKindGovOrg:
		org, err := h.directory.GetGovOrg(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, org)
	}
}

// AddOrganization handles POST /api/organizations/{kind}
func (h *DirectoryHandler) AddOrganization(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseOrgKind(w, r)
	if !ok {
		return
	}

	switch kind {
	case entities.OrgKindCompany:
		var input services.AddCompanyInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		company, err := h.directory.AddCompany(r.Context(), input)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, company)
	case entities.OrgKindCollege:
		var input services.AddCollegeInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		college, err := h.directory.AddCollege(r.Context(), input)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, college)
	case entities.OrgKindSchool:
		var input services.AddSchoolInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		school, err := h.directory.AddSchool(r.Context(), input)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, school)
	case entities.OrgKindGovOrg:
		var input services.AddGovOrgInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request payload")
			return
		}
		org, err := h.directory.AddGovOrg(r.Context(), input)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, org)
	}
}

// ResolveOrganization handles GET /api/organizations/resolve/{id}
func (h *DirectoryHandler) ResolveOrganization(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "organization ID is required")
		return
	}

	org, err := h.directory.ResolveOrganization(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, org)
}

// SearchOrganizations handles GET /api/organizations/search?q=
func (h *DirectoryHandler) SearchOrganizations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	orgs := h.directory.SearchOrganizations(r.Context(), query)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"organizations": orgs,
		"count":         len(orgs),
	})
}

// parseOrgKind extracts and validates the {kind} path segment, writing
// a 400 response itself when the segment is not a known kind.
func parseOrgKind(w http.ResponseWriter, r *http.Request) (entities.OrgKind, bool) {
	kind := entities.OrgKind(r.PathValue("kind"))
	for _, known := range entities.AllOrgKinds {
		if kind == known {
			return kind, true
		}
	}
	respondWithError(w, http.StatusBadRequest, "unknown organization kind: "+string(kind))
	return "", false
}

// Helper functions

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondServiceError translates typed service errors into HTTP status
// codes. Unknown errors become opaque 500s so internals never leak.
func respondServiceError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeInvalidTransition:
			respondWithError(w, http.StatusConflict, appErr.Message)
		case apperrors.ErrorTypeExternal:
			respondWithError(w, http.StatusBadGateway, appErr.Message)
		default:
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
