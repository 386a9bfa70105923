package milvus

import (
	"fmt"

	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/index"
	"github.com/milvus-io/milvus/client/v2/milvusclient"

	"github.com/textdex/textdex/internal/db"
)

// buildSchema converts a collection spec into a Milvus schema: one field per
// field spec and one function per function spec, in order, values unchanged.
func buildSchema(spec *db.CollectionSpec) (*entity.Schema, error) {
	schema := entity.NewSchema().
		WithName(spec.Name).
		WithDynamicFieldEnabled(spec.DynamicFields)

	for _, fs := range spec.Fields {
		field, err := buildField(fs)
		if err != nil {
			return nil, err
		}
		schema.WithField(field)
	}

	for _, fn := range spec.Functions {
		f, err := buildFunction(fn)
		if err != nil {
			return nil, err
		}
		schema.WithFunction(f)
	}

	return schema, nil
}

// buildField converts one field spec. Flags and size limits are applied only
// when set, so the wire payload carries exactly the supplied values.
func buildField(fs db.FieldSpec) (*entity.Field, error) {
	ft, err := fieldType(fs.DataType)
	if err != nil {
		return nil, err
	}

	field := entity.NewField().WithName(fs.Name).WithDataType(ft)
	if fs.PrimaryKey {
		field = field.WithIsPrimaryKey(true)
	}
	if fs.AutoID {
		field = field.WithIsAutoID(true)
	}
	if fs.MaxLength > 0 {
		field = field.WithMaxLength(int64(fs.MaxLength))
	}
	if fs.EnableAnalyzer {
		field = field.WithEnableAnalyzer(true)
	}
	return field, nil
}

func fieldType(dataType string) (entity.FieldType, error) {
	switch dataType {
	case "INT64":
		return entity.FieldTypeInt64, nil
	case "VARCHAR":
		return entity.FieldTypeVarChar, nil
	case "SPARSE_FLOAT_VECTOR":
		return entity.FieldTypeSparseVector, nil
	case "FLOAT_VECTOR":
		return entity.FieldTypeFloatVector, nil
	case "BOOL":
		return entity.FieldTypeBool, nil
	case "DOUBLE":
		return entity.FieldTypeDouble, nil
	case "JSON":
		return entity.FieldTypeJSON, nil
	default:
		return 0, fmt.Errorf("unknown data type %q", dataType)
	}
}

func buildFunction(fn db.FunctionSpec) (*entity.Function, error) {
	ft, err := functionType(fn.Type)
	if err != nil {
		return nil, err
	}
	f := entity.NewFunction().WithName(fn.Name).WithType(ft).
		WithInputFields(fn.InputFields...).
		WithOutputFields(fn.OutputFields...)
	return f, nil
}

func functionType(typ string) (entity.FunctionType, error) {
	switch typ {
	case "BM25":
		return entity.FunctionTypeBM25, nil
	case "TEXTEMBEDDING":
		return entity.FunctionTypeTextEmbedding, nil
	default:
		return 0, fmt.Errorf("unknown function type %q", typ)
	}
}

// buildIndexOptions converts index specs into create-index options: one per
// spec, with index type, metric type, and every tuning param forwarded
// verbatim as key-value pairs.
func buildIndexOptions(collection string, specs []db.IndexSpec) []milvusclient.CreateIndexOption {
	opts := make([]milvusclient.CreateIndexOption, 0, len(specs))
	for _, is := range specs {
		opts = append(opts, milvusclient.NewCreateIndexOption(collection, is.Field, buildIndex(is)))
	}
	return opts
}

func buildIndex(is db.IndexSpec) index.Index {
	params := make(map[string]string, len(is.Params)+2)
	if is.IndexType != "" {
		params[index.IndexTypeKey] = is.IndexType
	}
	if is.MetricType != "" {
		params[index.MetricTypeKey] = is.MetricType
	}
	for k, v := range is.Params {
		params[k] = v
	}
	return index.NewGenericIndex(is.Field, params)
}
