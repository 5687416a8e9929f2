package search

import (
	"context"
	"fmt"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/Aryan9369/HonestWork/internal/domain/entities"
	"github.com/Aryan9369/HonestWork/internal/domain/providers"
	tsclient "github.com/Aryan9369/HonestWork/internal/infrastructure/clients/typesense"
)

const collectionName = "organizations"

// TypesenseAdapter implements organization name search using Typesense
type TypesenseAdapter struct {
	client *tsclient.Client
}

// Ensure TypesenseAdapter implements SearchIndex
var _ providers.SearchIndex = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the organizations collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil // Collection exists
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "kind", Type: "string", Facet: pointer.True()},
			{Name: "description", Type: "string", Optional: pointer.True()},
		},
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// Index upserts an organization document
func (a *TypesenseAdapter) Index(ctx context.Context, org entities.Organization) error {
	document := map[string]interface{}{
		"id":          org.ID,
		"name":        org.Name,
		"kind":        string(org.Kind),
		"description": org.Description,
	}

	_, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index organization: %w", err)
	}
	return nil
}

// Search returns matching organization ids ranked by relevance
func (a *TypesenseAdapter) Search(ctx context.Context, query string, limit int) ([]string, error) {
	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("name,description"),
		PerPage: pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search organizations: %w", err)
	}

	ids := []string{}
	if result.Hits == nil {
		return ids, nil
	}
	for _, hit := range *result.Hits {
		doc := *hit.Document
		if id, ok := doc["id"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
