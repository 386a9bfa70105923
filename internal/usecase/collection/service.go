// Package collection implements the collection lifecycle operations:
// existence-guarded create and drop with post-condition checks.
package collection

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/textdex/textdex/internal/domain"
	"github.com/textdex/textdex/internal/validate"
)

// Repository is the storage boundary for collections.
type Repository interface {
	List(ctx context.Context) ([]string, error)
	Create(ctx context.Context, col *domain.Collection) error
	Drop(ctx context.Context, name string) error
}

// Service handles collection create/drop/list. Every mutating operation
// re-lists collection names immediately before and after acting; the gap
// between check and act is not transactional.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// New creates a collection service.
func New(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger}
}

// List returns all collection names.
func (s *Service) List(ctx context.Context) ([]string, error) {
	names, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list collections failed", zap.Error(err))
		return nil, fmt.Errorf("list collections: %w", err)
	}
	s.logger.Debug("listed collections", zap.Strings("names", names))
	return names, nil
}

// Exists reports whether the name appears in the remote collection list.
func (s *Service) Exists(ctx context.Context, name string) (bool, error) {
	if err := validate.CollectionName(name); err != nil {
		return false, err
	}
	names, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

// Create validates the descriptors, checks the name is absent, then creates
// the collection and verifies it appears in the post-create list. Returns
// false with no error when the collection already exists.
func (s *Service) Create(
	ctx context.Context,
	name string,
	fields []domain.FieldSpec,
	functions []domain.FunctionSpec,
	indexes []domain.IndexSpec,
) (bool, error) {
	if err := validate.CollectionName(name); err != nil {
		return false, err
	}
	if err := validate.Fields(fields); err != nil {
		return false, err
	}
	if err := validate.Functions(functions); err != nil {
		return false, err
	}
	if err := validate.Indexes(indexes); err != nil {
		return false, err
	}

	names, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	if slices.Contains(names, name) {
		s.logger.Info("collection already exists", zap.String("collection", name))
		return false, nil
	}

	s.logger.Info("creating collection",
		zap.String("collection", name),
		zap.Int("fields", len(fields)),
		zap.Int("functions", len(functions)),
		zap.Int("indexes", len(indexes)),
	)

	col := &domain.Collection{Name: name, Fields: fields, Functions: functions, Indexes: indexes}
	if err := s.repo.Create(ctx, col); err != nil {
		s.logger.Error("create collection failed", zap.String("collection", name), zap.Error(err))
		return false, fmt.Errorf("create collection: %w", err)
	}

	names, err = s.List(ctx)
	if err != nil {
		return false, err
	}
	if !slices.Contains(names, name) {
		err := fmt.Errorf("%w: collection %q missing after create", domain.ErrInvariant, name)
		s.logger.Error("create post-condition failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}

	s.logger.Info("created collection", zap.String("collection", name))
	return true, nil
}

// Drop checks the name is present, then drops the collection and verifies it
// left the post-drop list. Returns false with no error when the collection
// does not exist.
func (s *Service) Drop(ctx context.Context, name string) (bool, error) {
	if err := validate.CollectionName(name); err != nil {
		return false, err
	}

	names, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	if !slices.Contains(names, name) {
		s.logger.Info("collection not found, nothing to drop", zap.String("collection", name))
		return false, nil
	}

	s.logger.Info("dropping collection", zap.String("collection", name))
	if err := s.repo.Drop(ctx, name); err != nil {
		s.logger.Error("drop collection failed", zap.String("collection", name), zap.Error(err))
		return false, fmt.Errorf("drop collection: %w", err)
	}

	names, err = s.List(ctx)
	if err != nil {
		return false, err
	}
	if slices.Contains(names, name) {
		err := fmt.Errorf("%w: collection %q still present after drop", domain.ErrInvariant, name)
		s.logger.Error("drop post-condition failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}

	s.logger.Info("dropped collection", zap.String("collection", name))
	return true, nil
}
