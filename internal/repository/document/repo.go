// Package document adapts record insert and delete operations to the remote
// store and applies the post-write settle delay.
package document

import (
	"context"
	"fmt"
	"time"

	"github.com/textdex/textdex/internal/db"
	"github.com/textdex/textdex/internal/domain"
)

// DefaultSettleDelay is how long to wait after a write for the remote
// service to make it visible to subsequent searches.
const DefaultSettleDelay = 500 * time.Millisecond

// store is the consumer interface for document operations (ISP).
type store interface {
	Insert(ctx context.Context, collection string, rows []map[string]any) (*db.InsertAck, error)
	Delete(ctx context.Context, req *db.DeleteRequest) (int64, error)
}

// Repo implements usecase/document.Repository.
type Repo struct {
	store   store
	settle  time.Duration
	idField string
}

// New creates a document repository with the default settle delay and the
// default primary-key field.
func New(s store) *Repo {
	return &Repo{store: s, settle: DefaultSettleDelay, idField: domain.FieldID}
}

// WithSettleDelay overrides the post-write settle delay.
func (r *Repo) WithSettleDelay(d time.Duration) *Repo {
	if d >= 0 {
		r.settle = d
	}
	return r
}

// Insert writes records and waits out the settle delay before returning.
func (r *Repo) Insert(ctx context.Context, collection string, records []domain.Record) (*domain.InsertAck, error) {
	rows := make([]map[string]any, len(records))
	for i, rec := range records {
		rows[i] = map[string]any(rec)
	}

	ack, err := r.store.Insert(ctx, collection, rows)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", collection, err)
	}
	if err := r.wait(ctx); err != nil {
		return nil, fmt.Errorf("settle after insert: %w", err)
	}

	if ack == nil {
		return nil, nil
	}
	return &domain.InsertAck{InsertCount: ack.InsertCount, IDs: ack.IDs}, nil
}

// Delete removes records by id and waits out the settle delay.
func (r *Repo) Delete(ctx context.Context, collection string, ids []string) (int64, error) {
	n, err := r.store.Delete(ctx, &db.DeleteRequest{
		Collection: collection,
		IDField:    r.idField,
		IDs:        ids,
	})
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", collection, err)
	}
	if err := r.wait(ctx); err != nil {
		return n, fmt.Errorf("settle after delete: %w", err)
	}
	return n, nil
}

// wait blocks for the settle delay, honoring context cancellation.
func (r *Repo) wait(ctx context.Context) error {
	if r.settle == 0 {
		return nil
	}
	timer := time.NewTimer(r.settle)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
