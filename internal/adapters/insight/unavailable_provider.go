package insight

import (
	"context"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
)

// UnavailableProvider stands in when no AI collaborator is configured.
// Every call reports unavailability so the service layer degrades to its
// user-visible fallbacks instead of panicking on a nil provider.
type UnavailableProvider struct{}

// NewUnavailableProvider creates the stand-in provider
func NewUnavailableProvider() providers.InsightProvider {
	return &UnavailableProvider{}
}

func (p *UnavailableProvider) SummarizeReviews(ctx context.Context, orgName string, reviews []entities.Review) (string, error) {
	return "", providers.ErrUnavailable
}

func (p *UnavailableProvider) SearchOrganizations(ctx context.Context, query string) ([]entities.CompanyCandidate, error) {
	return nil, providers.ErrUnavailable
}
