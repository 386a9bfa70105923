package db

import (
	"context"
	"time"
)

// Observer receives one observation per completed store operation.
type Observer interface {
	ObserveOp(op string, d time.Duration, err error)
}

// Instrumented decorates a Store with per-operation observations.
type Instrumented struct {
	inner Store
	obs   Observer
}

var _ Store = (*Instrumented)(nil)

// NewInstrumented wraps a Store. obs must not be nil.
func NewInstrumented(inner Store, obs Observer) *Instrumented {
	return &Instrumented{inner: inner, obs: obs}
}

func (s *Instrumented) observe(op string, start time.Time, err error) {
	s.obs.ObserveOp(op, time.Since(start), err)
}

// Ping checks remote-service connectivity.
func (s *Instrumented) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.inner.Ping(ctx)
	s.observe(OpPing, start, err)
	return err
}

// ListCollections lists all collection names.
func (s *Instrumented) ListCollections(ctx context.Context) ([]string, error) {
	start := time.Now()
	names, err := s.inner.ListCollections(ctx)
	s.observe(OpListCollections, start, err)
	return names, err
}

// CreateCollection creates a collection from the given spec.
func (s *Instrumented) CreateCollection(ctx context.Context, spec *CollectionSpec) error {
	start := time.Now()
	err := s.inner.CreateCollection(ctx, spec)
	s.observe(OpCreateCollection, start, err)
	return err
}

// DropCollection drops a collection by name.
func (s *Instrumented) DropCollection(ctx context.Context, name string) error {
	start := time.Now()
	err := s.inner.DropCollection(ctx, name)
	s.observe(OpDropCollection, start, err)
	return err
}

// Insert inserts rows into a collection.
func (s *Instrumented) Insert(ctx context.Context, collection string, rows []map[string]any) (*InsertAck, error) {
	start := time.Now()
	ack, err := s.inner.Insert(ctx, collection, rows)
	s.observe(OpInsert, start, err)
	return ack, err
}

// Delete deletes rows by id.
func (s *Instrumented) Delete(ctx context.Context, req *DeleteRequest) (int64, error) {
	start := time.Now()
	n, err := s.inner.Delete(ctx, req)
	s.observe(OpDelete, start, err)
	return n, err
}

// Search runs a ranked full-text search.
func (s *Instrumented) Search(ctx context.Context, q *SearchQuery) ([][]Hit, error) {
	start := time.Now()
	hits, err := s.inner.Search(ctx, q)
	s.observe(OpSearch, start, err)
	return hits, err
}

// Close shuts down the underlying store.
func (s *Instrumented) Close() {
	s.inner.Close()
}

// WaitForReady delegates to the underlying store.
func (s *Instrumented) WaitForReady(ctx context.Context, timeout time.Duration) error {
	return s.inner.WaitForReady(ctx, timeout)
}
