// Package search adapts the domain search request to the remote store.
package search

import (
	"context"
	"fmt"

	"github.com/textdex/textdex/internal/db"
	"github.com/textdex/textdex/internal/domain"
)

// store is the consumer interface for search (ISP).
type store interface {
	Search(ctx context.Context, q *db.SearchQuery) ([][]db.Hit, error)
}

// Repo implements usecase/search.Repository.
type Repo struct {
	store store
}

// New creates a search repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// FullText runs one ranked search for all queries in the request.
func (r *Repo) FullText(ctx context.Context, collection string, req *domain.SearchRequest) ([][]domain.Hit, error) {
	hits, err := r.store.Search(ctx, &db.SearchQuery{
		Collection:   collection,
		Queries:      req.Queries,
		ANNSField:    req.ANNSField,
		OutputFields: req.OutputFields,
		Limit:        req.Limit,
		DropRatio:    req.DropRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", collection, err)
	}

	results := make([][]domain.Hit, len(hits))
	for i, list := range hits {
		results[i] = make([]domain.Hit, len(list))
		for j, h := range list {
			results[i][j] = domain.Hit{ID: h.ID, Score: h.Score, Fields: h.Fields}
		}
	}
	return results, nil
}
