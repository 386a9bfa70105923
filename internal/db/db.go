// Package db defines the capability boundary over the remote data service.
// Consumers depend on the narrow sub-interfaces; drivers live in subpackages.
package db

import (
	"context"
	"time"
)

// Store is the full remote-service facade combining all sub-interfaces.
type Store interface {
	Pinger
	CollectionManager
	DocumentStore
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks remote-service connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CollectionManager provides collection lifecycle operations.
type CollectionManager interface {
	ListCollections(ctx context.Context) ([]string, error)
	CreateCollection(ctx context.Context, spec *CollectionSpec) error
	DropCollection(ctx context.Context, name string) error
}

// DocumentStore provides row insert and delete-by-id operations.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, rows []map[string]any) (*InsertAck, error)
	Delete(ctx context.Context, req *DeleteRequest) (int64, error)
}

// Searcher provides ranked full-text search.
type Searcher interface {
	Search(ctx context.Context, q *SearchQuery) ([][]Hit, error)
}

// FieldSpec is one schema field as submitted to the remote service.
type FieldSpec struct {
	Name           string
	DataType       string
	PrimaryKey     bool
	AutoID         bool
	MaxLength      int
	EnableAnalyzer bool
}

// FunctionSpec is one server-side embedding function of the schema.
type FunctionSpec struct {
	Name         string
	Type         string
	InputFields  []string
	OutputFields []string
}

// IndexSpec is one index definition. Params are forwarded verbatim.
type IndexSpec struct {
	Field      string
	IndexType  string
	MetricType string
	Params     map[string]string
}

// CollectionSpec is the full create-collection payload: fields, functions,
// and indexes are each applied exactly once, in order, with the supplied
// values unchanged.
type CollectionSpec struct {
	Name          string
	Fields        []FieldSpec
	Functions     []FunctionSpec
	Indexes       []IndexSpec
	DynamicFields bool
}

// InsertAck is the remote acknowledgment of an insert.
type InsertAck struct {
	InsertCount int64
	IDs         []string
}

// DeleteRequest deletes rows by primary-key values.
type DeleteRequest struct {
	Collection string
	IDField    string
	IDs        []string
}

// SearchQuery is a ranked full-text search over one collection.
type SearchQuery struct {
	Collection   string
	Queries      []string
	ANNSField    string
	OutputFields []string
	Limit        int
	DropRatio    float64
}

// Hit is one search match with its server-assigned relevance score.
type Hit struct {
	ID     string
	Score  float32
	Fields map[string]any
}
