package services

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	"github.com/Aryan9369/HonestWork/internal/infrastructure/observability"
	"github.com/Aryan9369/HonestWork/pkg/retry"
)

// Fallback strings shown when the AI collaborator cannot serve
const (
	summaryFallbackEmpty       = "Not enough reviews for an AI summary yet."
	summaryFallbackUnavailable = "AI insight currently unavailable."
)

// ErrSearchSuperseded is returned when a newer query was issued while
// this search was in flight; the stale result must be discarded, not
// applied out of order.
var ErrSearchSuperseded = errors.New("search superseded by a newer query")

// InsightService wraps the external AI collaborator with bounded
// retry-on-transient, user-visible fallbacks, and a supersede guard for
// the web search. Raw provider errors never reach the view layer.
type InsightService struct {
	provider  providers.InsightProvider
	retryCfg  retry.Config
	searchGen atomic.Uint64
}

// NewInsightService creates a new insight service
func NewInsightService(provider providers.InsightProvider) *InsightService {
	cfg := retry.DefaultConfig()
	cfg.Retryable = isTransientInsightErr
	return &InsightService{
		provider: provider,
		retryCfg: cfg,
	}
}

func isTransientInsightErr(err error) bool {
	return errors.Is(err, providers.ErrRateLimited) || errors.Is(err, providers.ErrUnavailable)
}

// SummarizeReviews returns a short AI summary of an organization's
// reviews, or a fallback string when there is nothing to summarize or
// the provider stays down after retries.
func (s *InsightService) SummarizeReviews(ctx context.Context, orgName string, reviews []entities.Review) string {
	if len(reviews) == 0 {
		return summaryFallbackEmpty
	}

	var summary string
	err := retry.Do(ctx, s.retryCfg, func() error {
		var callErr error
		summary, callErr = s.provider.SummarizeReviews(ctx, orgName, reviews)
		return callErr
	})
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("org", orgName).Msg("review summary unavailable")
		return summaryFallbackUnavailable
	}
	return summary
}

// SearchOrganizations runs the external web search for organization
// candidates. Each call supersedes any still-running one: a result that
// arrives after a newer query started is dropped with
// ErrSearchSuperseded. Permanent provider failure degrades to an empty
// list.
func (s *InsightService) SearchOrganizations(ctx context.Context, query string) ([]entities.CompanyCandidate, error) {
	generation := s.searchGen.Add(1)

	var candidates []entities.CompanyCandidate
	err := retry.Do(ctx, s.retryCfg, func() error {
		if s.searchGen.Load() != generation {
			return ErrSearchSuperseded
		}
		var callErr error
		candidates, callErr = s.provider.SearchOrganizations(ctx, query)
		return callErr
	})

	if s.searchGen.Load() != generation {
		return nil, ErrSearchSuperseded
	}
	if err != nil {
		if errors.Is(err, ErrSearchSuperseded) {
			return nil, ErrSearchSuperseded
		}
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("query", query).Msg("organization search unavailable")
		return []entities.CompanyCandidate{}, nil
	}
	return candidates, nil
}
