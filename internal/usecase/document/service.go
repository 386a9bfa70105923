// Package document implements existence-guarded record insert and delete.
package document

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/textdex/textdex/internal/domain"
	"github.com/textdex/textdex/internal/validate"
)

// Repository is the storage boundary for records.
type Repository interface {
	Insert(ctx context.Context, collection string, records []domain.Record) (*domain.InsertAck, error)
	Delete(ctx context.Context, collection string, ids []string) (int64, error)
}

// CollectionReader lists collection names for the existence guard.
type CollectionReader interface {
	List(ctx context.Context) ([]string, error)
}

// Service handles record writes. Operations against an absent collection
// return a nil result without touching the remote service.
type Service struct {
	docs   Repository
	colls  CollectionReader
	logger *zap.Logger
}

// New creates a document service.
func New(docs Repository, colls CollectionReader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{docs: docs, colls: colls, logger: logger}
}

// Insert validates inputs, checks the collection exists, inserts the records,
// and validates the acknowledgment. Returns (nil, nil) when the collection is
// absent.
func (s *Service) Insert(ctx context.Context, collection string, records []domain.Record) (*domain.InsertAck, error) {
	if err := validate.CollectionName(collection); err != nil {
		return nil, err
	}
	if err := validate.Records(records); err != nil {
		return nil, err
	}

	present, err := s.exists(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !present {
		s.logger.Info("collection not found, skipping insert", zap.String("collection", collection))
		return nil, nil
	}

	s.logger.Info("inserting records",
		zap.String("collection", collection),
		zap.Int("count", len(records)),
	)
	ack, err := s.docs.Insert(ctx, collection, records)
	if err != nil {
		s.logger.Error("insert failed", zap.String("collection", collection), zap.Error(err))
		return nil, fmt.Errorf("insert: %w", err)
	}
	if err := validate.InsertAck(ack); err != nil {
		s.logger.Error("insert result malformed", zap.String("collection", collection), zap.Error(err))
		return nil, err
	}

	s.logger.Info("inserted records",
		zap.String("collection", collection),
		zap.Int64("count", ack.InsertCount),
	)
	return ack, nil
}

// Delete validates inputs, checks the collection exists, then deletes the
// given ids. Returns (0, nil) when the collection is absent.
func (s *Service) Delete(ctx context.Context, collection string, ids []string) (int64, error) {
	if err := validate.CollectionName(collection); err != nil {
		return 0, err
	}
	if err := validate.IDs(ids); err != nil {
		return 0, err
	}

	present, err := s.exists(ctx, collection)
	if err != nil {
		return 0, err
	}
	if !present {
		s.logger.Info("collection not found, skipping delete", zap.String("collection", collection))
		return 0, nil
	}

	s.logger.Info("deleting records",
		zap.String("collection", collection),
		zap.Int("ids", len(ids)),
	)
	n, err := s.docs.Delete(ctx, collection, ids)
	if err != nil {
		s.logger.Error("delete failed", zap.String("collection", collection), zap.Error(err))
		return 0, fmt.Errorf("delete: %w", err)
	}

	s.logger.Info("deleted records", zap.String("collection", collection), zap.Int64("count", n))
	return n, nil
}

func (s *Service) exists(ctx context.Context, collection string) (bool, error) {
	names, err := s.colls.List(ctx)
	if err != nil {
		s.logger.Error("existence check failed", zap.String("collection", collection), zap.Error(err))
		return false, fmt.Errorf("list collections: %w", err)
	}
	return slices.Contains(names, collection), nil
}
