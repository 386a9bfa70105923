package textdex

// Record is one document to insert. Keys are field names; with the default
// schema only the "text" key is required.
type Record = map[string]any

// InsertAck reports the outcome of an insert.
type InsertAck struct {
	InsertCount int64
	IDs         []string
}

// Hit is one ranked search result.
type Hit struct {
	ID     string
	Score  float32
	Fields map[string]any
}

// Field describes one field of a collection schema.
type Field struct {
	Name           string
	DataType       string
	PrimaryKey     bool
	AutoID         bool
	MaxLength      int
	EnableAnalyzer bool
}

// Function describes a server-side embedding function attached to the schema.
type Function struct {
	Name         string
	Type         string
	InputFields  []string
	OutputFields []string
}

// Index describes one index of a collection. Params are passed to the
// database unchanged.
type Index struct {
	Field      string
	IndexType  string
	MetricType string
	Params     map[string]string
}

// Field and index constants of the default full-text schema.
const (
	FieldID     = "id"
	FieldText   = "text"
	FieldSparse = "sparse"

	DataTypeInt64             = "INT64"
	DataTypeVarChar           = "VARCHAR"
	DataTypeSparseFloatVector = "SPARSE_FLOAT_VECTOR"

	IndexTypeSparseInverted = "SPARSE_INVERTED_INDEX"
	MetricTypeBM25          = "BM25"
	FunctionTypeBM25        = "BM25"
)
