package textdex

import (
	"context"
	"fmt"

	"github.com/textdex/textdex/internal/domain"
	documentuc "github.com/textdex/textdex/internal/usecase/document"
)

// DocumentService writes records into a single collection.
type DocumentService struct {
	collection string
	svc        *documentuc.Service
}

// Insert writes records into the collection and waits for them to become
// searchable. Returns nil when the collection does not exist.
func (s *DocumentService) Insert(ctx context.Context, records ...Record) (*InsertAck, error) {
	rows := make([]domain.Record, len(records))
	for i, r := range records {
		rows[i] = domain.Record(r)
	}

	ack, err := s.svc.Insert(ctx, s.collection, rows)
	if err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	if ack == nil {
		return nil, nil
	}
	return &InsertAck{InsertCount: ack.InsertCount, IDs: ack.IDs}, nil
}

// InsertTexts is a convenience for the default schema: each string becomes
// one record with only the text field set.
func (s *DocumentService) InsertTexts(ctx context.Context, texts ...string) (*InsertAck, error) {
	records := make([]Record, len(texts))
	for i, t := range texts {
		records[i] = Record{FieldText: t}
	}
	return s.Insert(ctx, records...)
}

// Delete removes records by primary key and waits for the removal to become
// visible. Reports zero deletions when the collection does not exist.
func (s *DocumentService) Delete(ctx context.Context, ids ...string) (int64, error) {
	n, err := s.svc.Delete(ctx, s.collection, ids)
	if err != nil {
		return 0, fmt.Errorf("delete: %w", err)
	}
	return n, nil
}
