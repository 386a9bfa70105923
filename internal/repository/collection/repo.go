// Package collection adapts domain collection specs to the remote store.
package collection

import (
	"context"
	"fmt"

	"github.com/textdex/textdex/internal/db"
	"github.com/textdex/textdex/internal/domain"
)

// store is the consumer interface for collection lifecycle operations (ISP).
type store interface {
	ListCollections(ctx context.Context) ([]string, error)
	CreateCollection(ctx context.Context, spec *db.CollectionSpec) error
	DropCollection(ctx context.Context, name string) error
}

// Repo implements usecase/collection.Repository.
type Repo struct {
	store store
}

// New creates a collection repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// List returns all collection names known to the remote service.
func (r *Repo) List(ctx context.Context) ([]string, error) {
	names, err := r.store.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// Create submits the collection schema and indexes in one remote call.
func (r *Repo) Create(ctx context.Context, col *domain.Collection) error {
	if err := r.store.CreateCollection(ctx, collectionToSpec(col)); err != nil {
		return fmt.Errorf("create collection %s: %w", col.Name, err)
	}
	return nil
}

// Drop removes a collection by name.
func (r *Repo) Drop(ctx context.Context, name string) error {
	if err := r.store.DropCollection(ctx, name); err != nil {
		return fmt.Errorf("drop collection %s: %w", name, err)
	}
	return nil
}

// collectionToSpec converts the domain aggregate to the wire spec: one entry
// per descriptor, values unchanged. Dynamic fields stay enabled so callers
// can attach extra fields later.
func collectionToSpec(col *domain.Collection) *db.CollectionSpec {
	spec := &db.CollectionSpec{
		Name:          col.Name,
		Fields:        make([]db.FieldSpec, len(col.Fields)),
		Functions:     make([]db.FunctionSpec, len(col.Functions)),
		Indexes:       make([]db.IndexSpec, len(col.Indexes)),
		DynamicFields: true,
	}
	for i, f := range col.Fields {
		spec.Fields[i] = db.FieldSpec{
			Name:           f.Name,
			DataType:       f.DataType,
			PrimaryKey:     f.PrimaryKey,
			AutoID:         f.AutoID,
			MaxLength:      f.MaxLength,
			EnableAnalyzer: f.EnableAnalyzer,
		}
	}
	for i, fn := range col.Functions {
		spec.Functions[i] = db.FunctionSpec{
			Name:         fn.Name,
			Type:         fn.Type,
			InputFields:  fn.InputFields,
			OutputFields: fn.OutputFields,
		}
	}
	for i, idx := range col.Indexes {
		spec.Indexes[i] = db.IndexSpec{
			Field:      idx.Field,
			IndexType:  idx.IndexType,
			MetricType: idx.MetricType,
			Params:     idx.Params,
		}
	}
	return spec
}
