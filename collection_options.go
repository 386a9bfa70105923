package textdex

import "github.com/textdex/textdex/internal/domain"

// SchemaDefaults tunes the default full-text schema.
type SchemaDefaults struct {
	TextMaxLength     int
	BM25K1            float64
	BM25B             float64
	InvertedIndexAlgo string
}

// DefaultSchemaDefaults returns the standard BM25 tuning.
func DefaultSchemaDefaults() SchemaDefaults {
	return SchemaDefaults(domain.DefaultSchemaDefaults())
}

func (d SchemaDefaults) domain() domain.SchemaDefaults {
	return domain.SchemaDefaults(d)
}

// DefaultFields returns the field descriptors of the default full-text
// schema: an auto-id primary key, an analyzed text field, and a sparse
// vector field populated server-side.
func DefaultFields(d SchemaDefaults) []Field {
	return fromDomainFields(domain.DefaultFields(d.domain()))
}

// DefaultFunctions returns the BM25 embedding function descriptor.
func DefaultFunctions() []Function {
	return fromDomainFunctions(domain.DefaultFunctions())
}

// DefaultIndexes returns the sparse inverted index descriptor.
func DefaultIndexes(d SchemaDefaults) []Index {
	return fromDomainIndexes(domain.DefaultIndexes(d.domain()))
}

// CollectionOption configures collection creation.
type CollectionOption func(*collectionConfig)

type collectionConfig struct {
	fields    []Field
	functions []Function
	indexes   []Index
}

// WithFields replaces the default schema fields.
func WithFields(ff ...Field) CollectionOption {
	return func(c *collectionConfig) {
		c.fields = ff
	}
}

// WithFunctions replaces the default embedding functions.
func WithFunctions(ff ...Function) CollectionOption {
	return func(c *collectionConfig) {
		c.functions = ff
	}
}

// WithIndexes replaces the default indexes.
func WithIndexes(ii ...Index) CollectionOption {
	return func(c *collectionConfig) {
		c.indexes = ii
	}
}
