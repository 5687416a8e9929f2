package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryan9369/HonestWork/internal/adapters/events"
	"github.com/Aryan9369/HonestWork/internal/adapters/insight"
	"github.com/Aryan9369/HonestWork/internal/adapters/kv"
	"github.com/Aryan9369/HonestWork/internal/adapters/payments"
	"github.com/Aryan9369/HonestWork/internal/api/handlers"
	"github.com/Aryan9369/HonestWork/internal/api/routes"
	"github.com/Aryan9369/HonestWork/internal/application/services"
)

// newTestServer wires the full HTTP surface over in-memory backends
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	store := kv.NewMemoryStore()
	bus := events.NewMemoryEventBus()
	t.Cleanup(func() { bus.Close() })

	directory := services.NewDirectoryService(store, bus, nil)
	content := services.NewContentService(store, bus)
	identity := services.NewIdentityService(store, bus, directory)
	mentorship := services.NewMentorshipService(store, bus, identity)
	insightSvc := services.NewInsightService(insight.NewUnavailableProvider())
	simulator := services.NewChatSimulator(mentorship, time.Millisecond)
	provider := payments.NewMockProvider(time.Millisecond, mentorship.ConfirmPayment)

	router := routes.NewRouter(
		handlers.NewDirectoryHandler(directory),
		handlers.NewContentHandler(content, identity),
		handlers.NewIdentityHandler(identity),
		handlers.NewMentorshipHandler(mentorship, provider, simulator),
		handlers.NewInsightHandler(insightSvc, directory, content),
		handlers.NewSSEHandler(bus),
	)
	return router.SetupRoutes()
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListOrganizations(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/organizations/company", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Count         int `json:"count"`
		Organizations []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"organizations"`
	}
	decode(t, rec, &payload)
	require.NotZero(t, payload.Count)
	assert.Equal(t, "Google", payload.Organizations[0].Name)
}

func TestListOrganizations_UnknownKind(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/organizations/charity", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddAndResolveOrganization(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/organizations/college", map[string]string{
		"name":    "Test U",
		"website": "https://www.testu.edu",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var college struct {
		ID                  string   `json:"id"`
		AllowedEmailDomains []string `json:"allowed_email_domains"`
	}
	decode(t, rec, &college)
	assert.Equal(t, []string{"testu.edu"}, college.AllowedEmailDomains)

	rec = doJSON(t, srv, http.MethodGet, "/api/organizations/resolve/"+college.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var org struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}
	decode(t, rec, &org)
	assert.Equal(t, "college", org.Kind)
	assert.Equal(t, "Test U", org.Name)
}

func TestVerifyEmailFlow(t *testing.T) {
	srv := newTestServer(t)

	// Add a college, verify a student address against it, then leave a
	// review and toggle a helpful vote.
	rec := doJSON(t, srv, http.MethodPost, "/api/organizations/college", map[string]string{
		"name":    "Test U",
		"website": "https://www.testu.edu",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var college struct {
		ID string `json:"id"`
	}
	decode(t, rec, &college)

	rec = doJSON(t, srv, http.MethodPost, "/api/verify-email", map[string]string{
		"email": "jane@testu.edu",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var result struct {
		Matched   bool   `json:"matched"`
		RoleLabel string `json:"role_label"`
	}
	decode(t, rec, &result)
	assert.True(t, result.Matched)
	assert.Equal(t, "Student/Alumni", result.RoleLabel)

	rec = doJSON(t, srv, http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var session struct {
		IsVerified       bool   `json:"is_verified"`
		VerifiedEntityID string `json:"verified_entity_id"`
		InvitesRemaining int    `json:"invites_remaining"`
	}
	decode(t, rec, &session)
	assert.True(t, session.IsVerified)
	assert.Equal(t, college.ID, session.VerifiedEntityID)
	assert.Equal(t, 5, session.InvitesRemaining)

	rec = doJSON(t, srv, http.MethodPost, "/api/entities/"+college.ID+"/reviews", map[string]interface{}{
		"rating": 5,
		"title":  "Great campus",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var review struct {
		ID string `json:"id"`
	}
	decode(t, rec, &review)

	rec = doJSON(t, srv, http.MethodPost, "/api/reviews/"+review.ID+"/vote", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/entities/"+college.ID+"/reviews", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var reviews struct {
		Reviews []struct {
			ID           string `json:"id"`
			HelpfulVotes int    `json:"helpful_votes"`
			IsUpvoted    bool   `json:"is_upvoted"`
		} `json:"reviews"`
	}
	decode(t, rec, &reviews)
	require.Len(t, reviews.Reviews, 1)
	assert.Equal(t, 1, reviews.Reviews[0].HelpfulVotes)
	assert.True(t, reviews.Reviews[0].IsUpvoted)
}

// The verified badge and the vote counter are server-derived; payload
// values for either are discarded.
func TestAddReviewDerivesVerificationFromSession(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/entities/1/reviews", map[string]interface{}{
		"rating":        4,
		"title":         "Fine",
		"is_verified":   true,
		"helpful_votes": 9000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var review struct {
		IsVerified   bool `json:"is_verified"`
		HelpfulVotes int  `json:"helpful_votes"`
	}
	decode(t, rec, &review)
	assert.False(t, review.IsVerified, "unverified session must not mint a verified badge")
	assert.Zero(t, review.HelpfulVotes)

	// Verify against Stripe, then review Stripe: the badge is earned.
	rec = doJSON(t, srv, http.MethodPost, "/api/verify-email", map[string]string{
		"email": "jane@stripe.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/entities/3/reviews", map[string]interface{}{
		"rating": 5,
		"title":  "Good team",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	decode(t, rec, &review)
	assert.True(t, review.IsVerified)

	// The badge is scoped to the verified organization only.
	rec = doJSON(t, srv, http.MethodPost, "/api/entities/1/reviews", map[string]interface{}{
		"rating": 3,
		"title":  "Heard good things",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	decode(t, rec, &review)
	assert.False(t, review.IsVerified)
}

func TestReviewValidationSurfacesAs400(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/entities/1/reviews", map[string]interface{}{
		"rating": 9,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatBookingFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/chat/sessions", map[string]string{
		"mentor_id":  "m1",
		"user_email": "jane@stripe.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var booked struct {
		SessionID string `json:"session_id"`
		Status    string `json:"status"`
	}
	decode(t, rec, &booked)
	assert.Equal(t, "PENDING_PAYMENT", booked.Status)

	// The mock gateway confirms after a millisecond; wait for ACTIVE.
	require.Eventually(t, func() bool {
		rec := doJSON(t, srv, http.MethodGet, "/api/chat/sessions/"+booked.SessionID, nil)
		if rec.Code != http.StatusOK {
			return false
		}
		var session struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil {
			return false
		}
		return session.Status == "ACTIVE"
	}, time.Second, 5*time.Millisecond)

	rec = doJSON(t, srv, http.MethodPost, "/api/chat/sessions/"+booked.SessionID+"/messages", map[string]string{
		"text": "Hello!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/chat/sessions/"+booked.SessionID+"/end", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Messaging a completed session conflicts.
	rec = doJSON(t, srv, http.MethodPost, "/api/chat/sessions/"+booked.SessionID+"/messages", map[string]string{
		"text": "too late",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

// Over a live server the booking request's context is cancelled as soon
// as the response is written; the payment confirmation must still land.
func TestChatBookingConfirmsOverLiveServer(t *testing.T) {
	ts := httptest.NewServer(newTestServer(t))
	defer ts.Close()

	body, err := json.Marshal(map[string]string{
		"mentor_id":  "m1",
		"user_email": "jane@stripe.com",
	})
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/api/chat/sessions", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var booked struct {
		SessionID string `json:"session_id"`
		Status    string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&booked))
	assert.Equal(t, "PENDING_PAYMENT", booked.Status)

	require.Eventually(t, func() bool {
		resp, err := http.Get(ts.URL + "/api/chat/sessions/" + booked.SessionID)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		var session struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
			return false
		}
		return session.Status == "ACTIVE"
	}, time.Second, 5*time.Millisecond)
}

func TestBookingUnknownMentorIs404(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/chat/sessions", map[string]string{
		"mentor_id": "nope",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInsightSummaryDegradesGracefully(t *testing.T) {
	srv := newTestServer(t)

	// The test server has no AI collaborator configured, and Google has
	// seed reviews, so the unavailable fallback is served.
	rec := doJSON(t, srv, http.MethodPost, "/api/insights/summary", map[string]string{
		"entity_id": "1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Summary string `json:"summary"`
	}
	decode(t, rec, &payload)
	assert.Equal(t, "AI insight currently unavailable.", payload.Summary)
}

func TestInviteCodeValidation(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/invites/validate", map[string]string{"code": "HONEST-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Valid bool `json:"valid"`
	}
	decode(t, rec, &payload)
	assert.True(t, payload.Valid)

	rec = doJSON(t, srv, http.MethodPost, "/api/invites/validate", map[string]string{"code": "WRONG"})
	decode(t, rec, &payload)
	assert.False(t, payload.Valid)
}
