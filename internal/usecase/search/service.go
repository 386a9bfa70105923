// Package search implements the ranked full-text search operation.
package search

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/textdex/textdex/internal/domain"
	"github.com/textdex/textdex/internal/validate"
)

// The facade pins the search to the default full-text schema: queries match
// against the sparse field and only the text field is returned. Drop ratio
// discards the lowest-scoring fifth of candidates before final ranking.
const (
	annsField = domain.FieldSparse
	dropRatio = 0.2
)

var outputFields = []string{domain.FieldText}

// Repository is the search boundary toward the remote service.
type Repository interface {
	FullText(ctx context.Context, collection string, req *domain.SearchRequest) ([][]domain.Hit, error)
}

// CollectionReader lists collection names for the existence guard.
type CollectionReader interface {
	List(ctx context.Context) ([]string, error)
}

// Service handles full-text search against one collection at a time.
type Service struct {
	repo   Repository
	colls  CollectionReader
	logger *zap.Logger
}

// New creates a search service.
func New(repo Repository, colls CollectionReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, colls: colls, logger: logger}
}

// FullText validates inputs, checks the collection exists, then runs one
// ranked search for all queries and validates the nested result shape.
// Returns (nil, nil) when the collection is absent.
func (s *Service) FullText(ctx context.Context, collection string, queries []string, limit int) ([][]domain.Hit, error) {
	if err := validate.CollectionName(collection); err != nil {
		return nil, err
	}
	if err := validate.Queries(queries); err != nil {
		return nil, err
	}
	if err := validate.Limit(limit); err != nil {
		return nil, err
	}

	names, err := s.colls.List(ctx)
	if err != nil {
		s.logger.Error("existence check failed", zap.String("collection", collection), zap.Error(err))
		return nil, fmt.Errorf("list collections: %w", err)
	}
	if !slices.Contains(names, collection) {
		s.logger.Info("collection not found, skipping search", zap.String("collection", collection))
		return nil, nil
	}

	s.logger.Info("searching",
		zap.String("collection", collection),
		zap.Int("queries", len(queries)),
		zap.Int("limit", limit),
	)

	req := &domain.SearchRequest{
		Queries:      queries,
		Limit:        limit,
		ANNSField:    annsField,
		OutputFields: outputFields,
		DropRatio:    dropRatio,
	}
	results, err := s.repo.FullText(ctx, collection, req)
	if err != nil {
		s.logger.Error("search failed", zap.String("collection", collection), zap.Error(err))
		return nil, fmt.Errorf("full text search: %w", err)
	}
	if err := validate.HitLists(results, len(queries)); err != nil {
		s.logger.Error("search result malformed", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}

	for i, hits := range results {
		for j, hit := range hits {
			s.logger.Debug("search hit",
				zap.Int("query", i),
				zap.Int("rank", j),
				zap.String("id", hit.ID),
				zap.Float32("score", hit.Score),
			)
		}
	}
	return results, nil
}
