package textdex

import (
	"context"
	"fmt"

	searchuc "github.com/textdex/textdex/internal/usecase/search"
)

// SearchService runs ranked full-text searches against a single collection.
type SearchService struct {
	collection   string
	svc          *searchuc.Service
	defaultLimit int
}

// FullText runs one ranked BM25 search per query and returns one hit list
// per query, each ordered by descending score. A limit of 0 uses the
// client's default. Returns nil when the collection does not exist.
func (s *SearchService) FullText(ctx context.Context, queries []string, limit int) ([][]Hit, error) {
	if limit == 0 {
		limit = s.defaultLimit
	}

	results, err := s.svc.FullText(ctx, s.collection, queries, limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if results == nil {
		return nil, nil
	}
	return fromDomainHits(results), nil
}

// Query is a single-query convenience over FullText.
func (s *SearchService) Query(ctx context.Context, query string, limit int) ([]Hit, error) {
	results, err := s.FullText(ctx, []string{query}, limit)
	if err != nil {
		return nil, err
	}
	if results == nil {
		return nil, nil
	}
	return results[0], nil
}
