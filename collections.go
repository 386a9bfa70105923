package textdex

import (
	"context"
	"fmt"

	collectionuc "github.com/textdex/textdex/internal/usecase/collection"
)

// CollectionService manages collections.
type CollectionService struct {
	svc      *collectionuc.Service
	defaults SchemaDefaults
}

// List returns all collection names.
func (s *CollectionService) List(ctx context.Context) ([]string, error) {
	names, err := s.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// Exists reports whether a collection with the given name is present.
func (s *CollectionService) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := s.svc.Exists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("collection exists: %w", err)
	}
	return ok, nil
}

// Create creates a collection with the default full-text schema unless
// overridden by options. Creating an existing collection is a no-op;
// the returned bool reports whether a collection was actually created.
func (s *CollectionService) Create(
	ctx context.Context, name string, opts ...CollectionOption,
) (bool, error) {
	cfg := &collectionConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if cfg.fields == nil {
		cfg.fields = DefaultFields(s.defaults)
	}
	if cfg.functions == nil {
		cfg.functions = DefaultFunctions()
	}
	if cfg.indexes == nil {
		cfg.indexes = DefaultIndexes(s.defaults)
	}

	created, err := s.svc.Create(ctx, name,
		toDomainFields(cfg.fields),
		toDomainFunctions(cfg.functions),
		toDomainIndexes(cfg.indexes),
	)
	if err != nil {
		return false, fmt.Errorf("create collection: %w", err)
	}
	return created, nil
}

// Drop removes a collection. Dropping an absent collection is a no-op;
// the returned bool reports whether a collection was actually dropped.
func (s *CollectionService) Drop(ctx context.Context, name string) (bool, error) {
	dropped, err := s.svc.Drop(ctx, name)
	if err != nil {
		return false, fmt.Errorf("drop collection: %w", err)
	}
	return dropped, nil
}
