package domain

// Record is one row to insert: a free-form mapping of field name to value.
// It must contain the fields declared by the active schema; the remote
// service rejects rows that do not fit.
type Record map[string]any

// InsertAck is the remote service's acknowledgment of an insert.
type InsertAck struct {
	InsertCount int64
	IDs         []string
}

// Hit is a single search result: the output fields of the matched record
// plus the relevance score assigned by the remote service.
type Hit struct {
	ID     string
	Score  float32
	Fields map[string]any
}

// SearchRequest is a full-text search against one collection. The facade
// fixes ANNSField, OutputFields, and DropRatio; only queries and limit come
// from the caller.
type SearchRequest struct {
	Queries      []string
	Limit        int
	ANNSField    string
	OutputFields []string
	DropRatio    float64
}
