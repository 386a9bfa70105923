// Package validate holds the runtime argument and result checks performed by
// every public operation before and after delegating to the remote service.
// All failures wrap domain.ErrValidation.
package validate

import (
	"fmt"

	"github.com/textdex/textdex/internal/domain"
)

// CollectionName checks the collection identity key.
func CollectionName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: collection name must not be empty", domain.ErrValidation)
	}
	return nil
}

// Fields checks field descriptors before schema assembly.
func Fields(fields []domain.FieldSpec) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: at least one field is required", domain.ErrValidation)
	}
	for i, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field %d has no name", domain.ErrValidation, i)
		}
		if f.DataType == "" {
			return fmt.Errorf("%w: field %q has no data type", domain.ErrValidation, f.Name)
		}
	}
	return nil
}

// Functions checks embedding function descriptors.
func Functions(funcs []domain.FunctionSpec) error {
	for i, fn := range funcs {
		if fn.Name == "" {
			return fmt.Errorf("%w: function %d has no name", domain.ErrValidation, i)
		}
		if fn.Type == "" {
			return fmt.Errorf("%w: function %q has no type", domain.ErrValidation, fn.Name)
		}
		if len(fn.InputFields) == 0 || len(fn.OutputFields) == 0 {
			return fmt.Errorf("%w: function %q must name input and output fields",
				domain.ErrValidation, fn.Name)
		}
	}
	return nil
}

// Indexes checks index descriptors before index-params assembly.
func Indexes(indexes []domain.IndexSpec) error {
	if len(indexes) == 0 {
		return fmt.Errorf("%w: at least one index is required", domain.ErrValidation)
	}
	for i, idx := range indexes {
		if idx.Field == "" {
			return fmt.Errorf("%w: index %d has no target field", domain.ErrValidation, i)
		}
	}
	return nil
}

// Records checks rows before insert. Each record is validated loosely as a
// non-empty mapping; field-level checks belong to the remote service.
func Records(records []domain.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("%w: records must not be empty", domain.ErrValidation)
	}
	for i, r := range records {
		if len(r) == 0 {
			return fmt.Errorf("%w: record %d is not a non-empty mapping", domain.ErrValidation, i)
		}
	}
	return nil
}

// IDs checks the id list for delete.
func IDs(ids []string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: ids must not be empty", domain.ErrValidation)
	}
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("%w: id %d is empty", domain.ErrValidation, i)
		}
	}
	return nil
}

// Queries checks the query list for search.
func Queries(queries []string) error {
	if len(queries) == 0 {
		return fmt.Errorf("%w: query list must not be empty", domain.ErrValidation)
	}
	for i, q := range queries {
		if q == "" {
			return fmt.Errorf("%w: query %d is empty", domain.ErrValidation, i)
		}
	}
	return nil
}

// Limit checks the maximum result count for search.
func Limit(limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", domain.ErrValidation, limit)
	}
	return nil
}

// InsertAck checks the remote insert acknowledgment shape.
func InsertAck(ack *domain.InsertAck) error {
	if ack == nil {
		return fmt.Errorf("%w: insert returned no acknowledgment", domain.ErrValidation)
	}
	if ack.InsertCount < 0 {
		return fmt.Errorf("%w: insert count is negative: %d", domain.ErrValidation, ack.InsertCount)
	}
	return nil
}

// HitLists checks the nested search result shape: one hit list per query.
func HitLists(results [][]domain.Hit, queries int) error {
	if results == nil {
		return fmt.Errorf("%w: search returned no result", domain.ErrValidation)
	}
	if len(results) != queries {
		return fmt.Errorf("%w: expected %d hit lists, got %d",
			domain.ErrValidation, queries, len(results))
	}
	for i, hits := range results {
		for j, h := range hits {
			if h.Fields == nil {
				return fmt.Errorf("%w: hit %d of query %d has no fields",
					domain.ErrValidation, j, i)
			}
		}
	}
	return nil
}
