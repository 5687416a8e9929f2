package providers

import (
	"context"
	"errors"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
)

// ErrRateLimited marks a transient upstream rejection worth retrying
var ErrRateLimited = errors.New("insight provider rate limited")

// ErrUnavailable marks a transient upstream outage worth retrying
var ErrUnavailable = errors.New("insight provider unavailable")

// InsightProvider is the external AI text-generation collaborator.
// Results are display-only and never persisted as source-of-truth data.
type InsightProvider interface {
	// SummarizeReviews produces a short sentiment summary for an
	// organization's reviews.
	SummarizeReviews(ctx context.Context, orgName string, reviews []entities.Review) (string, error)

	// SearchOrganizations returns organization candidates for a free-text
	// query from the provider's web knowledge.
	SearchOrganizations(ctx context.Context, query string) ([]entities.CompanyCandidate, error)
}
