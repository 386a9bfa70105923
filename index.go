package textdex

import (
	"context"
	"fmt"
)

// TypedIndex is a generic, schema-first handle over one collection.
// The searchable text field is inferred from T's struct tags at
// construction time.
type TypedIndex[T any] struct {
	name   string
	client *Client
	meta   *schemaMeta
}

// NewIndex creates a typed index handle for the given collection name.
// T must be a struct with textdex tags. Tags are parsed once and cached.
func NewIndex[T any](client *Client, name string) (*TypedIndex[T], error) {
	meta, err := parseSchema[T]()
	if err != nil {
		return nil, fmt.Errorf("new index %q: %w", name, err)
	}
	return &TypedIndex[T]{name: name, client: client, meta: meta}, nil
}

// Ensure creates the collection with the default full-text schema if it
// does not exist (idempotent).
func (idx *TypedIndex[T]) Ensure(ctx context.Context) error {
	if _, err := idx.client.Collections().Create(ctx, idx.name); err != nil {
		return fmt.Errorf("ensure %q: %w", idx.name, err)
	}
	return nil
}

// Drop removes the collection (idempotent).
func (idx *TypedIndex[T]) Drop(ctx context.Context) error {
	if _, err := idx.client.Collections().Drop(ctx, idx.name); err != nil {
		return fmt.Errorf("drop %q: %w", idx.name, err)
	}
	return nil
}

// Insert writes typed items. Returns nil when the collection is absent.
func (idx *TypedIndex[T]) Insert(ctx context.Context, items ...T) (*InsertAck, error) {
	records := make([]Record, len(items))
	for i, item := range items {
		records[i] = idx.meta.toRecord(item)
	}
	return idx.client.Documents(idx.name).Insert(ctx, records...)
}

// Delete removes items by primary key.
func (idx *TypedIndex[T]) Delete(ctx context.Context, ids ...string) (int64, error) {
	return idx.client.Documents(idx.name).Delete(ctx, ids...)
}

// Search returns a fluent search builder for this index.
func (idx *TypedIndex[T]) Search() *SearchBuilder[T] {
	return &SearchBuilder[T]{idx: idx}
}
