package routes

import (
	"net/http"

	"github.com/Aryan9369/HonestWork/internal/api/handlers"
	"github.com/Aryan9369/HonestWork/internal/api/middleware"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	directoryHandler  *handlers.DirectoryHandler
	contentHandler    *handlers.ContentHandler
	identityHandler   *handlers.IdentityHandler
	mentorshipHandler *handlers.MentorshipHandler
	insightHandler    *handlers.InsightHandler
	sseHandler        *handlers.SSEHandler
}

// NewRouter creates a new router
func NewRouter(
	directoryHandler *handlers.DirectoryHandler,
	contentHandler *handlers.ContentHandler,
	identityHandler *handlers.IdentityHandler,
	mentorshipHandler *handlers.MentorshipHandler,
	insightHandler *handlers.InsightHandler,
	sseHandler *handlers.SSEHandler,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		directoryHandler:  directoryHandler,
		contentHandler:    contentHandler,
		identityHandler:   identityHandler,
		mentorshipHandler: mentorshipHandler,
		insightHandler:    insightHandler,
		sseHandler:        sseHandler,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Organization catalog endpoints
	r.mux.HandleFunc("GET /api/organizations/search", r.directoryHandler.SearchOrganizations)
	r.mux.HandleFunc("GET /api/organizations/resolve/{id}", r.directoryHandler.ResolveOrganization)
	r.mux.HandleFunc("GET /api/organizations/{kind}", r.directoryHandler.ListOrganizations)
	r.mux.HandleFunc("POST /api/organizations/{kind}", r.directoryHandler.AddOrganization)
	r.mux.HandleFunc("GET /api/organizations/{kind}/{id}", r.directoryHandler.GetOrganization)

	// Content endpoints, keyed by the owning organization
	r.mux.HandleFunc("GET /api/entities/{id}/reviews", r.contentHandler.ListReviews)
	r.mux.HandleFunc("POST /api/entities/{id}/reviews", r.contentHandler.AddReview)
	r.mux.HandleFunc("POST /api/reviews/{id}/vote", r.contentHandler.ToggleHelpfulVote)
	r.mux.HandleFunc("GET /api/entities/{id}/questions", r.contentHandler.ListQuestions)
	r.mux.HandleFunc("POST /api/entities/{id}/questions", r.contentHandler.AddQuestion)
	r.mux.HandleFunc("POST /api/entities/{id}/questions/{questionId}/answers", r.contentHandler.AddAnswer)
	r.mux.HandleFunc("GET /api/entities/{id}/interviews", r.contentHandler.ListInterviews)
	r.mux.HandleFunc("POST /api/entities/{id}/interviews", r.contentHandler.AddInterview)
	r.mux.HandleFunc("GET /api/entities/{id}/salaries", r.contentHandler.ListSalaries)
	r.mux.HandleFunc("POST /api/entities/{id}/salaries", r.contentHandler.AddSalary)

	// Session and verification endpoints
	r.mux.HandleFunc("GET /api/session", r.identityHandler.GetSession)
	r.mux.HandleFunc("PATCH /api/session", r.identityHandler.UpdateSession)
	r.mux.HandleFunc("POST /api/verify-email", r.identityHandler.VerifyEmail)
	r.mux.HandleFunc("POST /api/invites/validate", r.identityHandler.ValidateInviteCode)

	// Mentorship and chat endpoints
	r.mux.HandleFunc("GET /api/mentors", r.mentorshipHandler.ListMentors)
	r.mux.HandleFunc("POST /api/mentors", r.mentorshipHandler.RegisterMentor)
	r.mux.HandleFunc("GET /api/mentors/{id}", r.mentorshipHandler.GetMentor)
	r.mux.HandleFunc("GET /api/chat/sessions", r.mentorshipHandler.ListSessions)
	r.mux.HandleFunc("POST /api/chat/sessions", r.mentorshipHandler.BookSession)
	r.mux.HandleFunc("GET /api/chat/sessions/{id}", r.mentorshipHandler.GetChatSession)
	r.mux.HandleFunc("POST /api/chat/sessions/{id}/end", r.mentorshipHandler.EndSession)
	r.mux.HandleFunc("GET /api/chat/sessions/{id}/messages", r.mentorshipHandler.ListMessages)
	r.mux.HandleFunc("POST /api/chat/sessions/{id}/messages", r.mentorshipHandler.PostMessage)

	// AI collaborator endpoints
	r.mux.HandleFunc("POST /api/insights/summary", r.insightHandler.SummarizeReviews)
	r.mux.HandleFunc("GET /api/insights/company-search", r.insightHandler.SearchCompanies)

	// Change notification streams
	r.mux.HandleFunc("GET /api/stream/data", r.sseHandler.StreamDataUpdates)
	r.mux.HandleFunc("GET /api/stream/chat", r.sseHandler.StreamChatUpdates)

	// Apply middleware in reverse order; CORS wraps everything so
	// preflights and error responses also get headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
