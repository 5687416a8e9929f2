package providers

import (
	"context"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
)

// SearchIndex offloads organization name search to a dedicated engine.
// Optional: the directory works without one, falling back to in-memory
// substring matching.
type SearchIndex interface {
	// InitSchema ensures the organizations collection exists
	InitSchema(ctx context.Context) error

	// Index upserts an organization document
	Index(ctx context.Context, org entities.Organization) error

	// Search returns matching organization ids ranked by relevance
	Search(ctx context.Context, query string, limit int) ([]string, error)
}
