package domain

import "strconv"

// Well-known field names of the default full-text schema.
const (
	FieldID     = "id"
	FieldText   = "text"
	FieldSparse = "sparse"
)

// Data kinds understood by the remote service.
const (
	DataTypeInt64             = "INT64"
	DataTypeVarChar           = "VARCHAR"
	DataTypeSparseFloatVector = "SPARSE_FLOAT_VECTOR"
)

// Index and metric kinds for sparse full-text indexes.
const (
	IndexTypeSparseInverted = "SPARSE_INVERTED_INDEX"
	IndexTypeAuto           = "AUTOINDEX"
	MetricTypeBM25          = "BM25"
)

// FunctionTypeBM25 is the server-side text-to-sparse embedding function kind.
const FunctionTypeBM25 = "BM25"

// FieldSpec describes one field of a collection schema.
// Immutable once submitted to the remote service.
type FieldSpec struct {
	Name           string
	DataType       string
	PrimaryKey     bool
	AutoID         bool
	MaxLength      int
	EnableAnalyzer bool
}

// FunctionSpec describes a server-side embedding function attached to the
// schema. For BM25 full-text search the function reads the text field and
// writes term weights into the sparse field.
type FunctionSpec struct {
	Name         string
	Type         string
	InputFields  []string
	OutputFields []string
}

// IndexSpec describes one index of a collection. Params are passed through
// to the remote service unchanged.
type IndexSpec struct {
	Field      string
	IndexType  string
	MetricType string
	Params     map[string]string
}

// Collection is the schema of a named collection as submitted on creation.
// Its name is the sole identity key; existence is always established by
// listing collection names immediately before acting.
type Collection struct {
	Name      string
	Fields    []FieldSpec
	Functions []FunctionSpec
	Indexes   []IndexSpec
}

// SchemaDefaults tunes the default full-text schema.
type SchemaDefaults struct {
	TextMaxLength     int
	BM25K1            float64
	BM25B             float64
	InvertedIndexAlgo string
}

// DefaultSchemaDefaults returns the standard tuning: max term-frequency
// weighting and full document-length normalization.
func DefaultSchemaDefaults() SchemaDefaults {
	return SchemaDefaults{
		TextMaxLength:     1000,
		BM25K1:            3,
		BM25B:             1,
		InvertedIndexAlgo: "DAAT_MAXSCORE",
	}
}

// DefaultFields returns the field descriptors of the default full-text
// schema: an auto-id primary key, an analyzed text field, and the sparse
// vector field populated server-side by the BM25 function.
func DefaultFields(d SchemaDefaults) []FieldSpec {
	return []FieldSpec{
		{Name: FieldID, DataType: DataTypeInt64, PrimaryKey: true, AutoID: true},
		{Name: FieldText, DataType: DataTypeVarChar, MaxLength: d.TextMaxLength, EnableAnalyzer: true},
		{Name: FieldSparse, DataType: DataTypeSparseFloatVector},
	}
}

// DefaultFunctions returns the BM25 embedding function descriptor.
func DefaultFunctions() []FunctionSpec {
	return []FunctionSpec{
		{
			Name:         "text_bm25_emb",
			Type:         FunctionTypeBM25,
			InputFields:  []string{FieldText},
			OutputFields: []string{FieldSparse},
		},
	}
}

// DefaultIndexes returns the sparse inverted index descriptor.
func DefaultIndexes(d SchemaDefaults) []IndexSpec {
	return []IndexSpec{
		{
			Field:      FieldSparse,
			IndexType:  IndexTypeSparseInverted,
			MetricType: MetricTypeBM25,
			Params: map[string]string{
				"inverted_index_algo": d.InvertedIndexAlgo,
				"bm25_k1":             formatFloat(d.BM25K1),
				"bm25_b":              formatFloat(d.BM25B),
			},
		},
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
