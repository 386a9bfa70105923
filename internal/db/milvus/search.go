package milvus

import (
	"context"
	"fmt"

	"github.com/milvus-io/milvus/client/v2/column"
	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/index"
	"github.com/milvus-io/milvus/client/v2/milvusclient"

	"github.com/textdex/textdex/internal/db"
)

// Search runs one ranked full-text search for all queries. Query strings are
// sent as text vectors; the server computes sparse BM25 embeddings via the
// schema function before matching.
func (s *Store) Search(ctx context.Context, q *db.SearchQuery) ([][]db.Hit, error) {
	vectors := make([]entity.Vector, len(q.Queries))
	for i, query := range q.Queries {
		vectors[i] = entity.Text(query)
	}

	annParam := index.NewSparseAnnParam()
	annParam.WithDropRatio(q.DropRatio)

	opt := milvusclient.NewSearchOption(q.Collection, q.Limit, vectors).
		WithANNSField(q.ANNSField).
		WithOutputFields(q.OutputFields...).
		WithAnnParam(annParam)

	resultSets, err := s.client.Search(ctx, opt)
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	results := make([][]db.Hit, len(resultSets))
	for i := range resultSets {
		results[i] = toHits(&resultSets[i], q.OutputFields)
	}
	return results, nil
}

// toHits flattens one per-query result set into hits with output fields.
func toHits(rs *milvusclient.ResultSet, outputFields []string) []db.Hit {
	hits := make([]db.Hit, 0, rs.ResultCount)
	for i := 0; i < rs.ResultCount; i++ {
		hit := db.Hit{Fields: make(map[string]any, len(outputFields))}
		if rs.IDs != nil {
			if v, err := rs.IDs.Get(i); err == nil {
				hit.ID = fmt.Sprint(v)
			}
		}
		if i < len(rs.Scores) {
			hit.Score = rs.Scores[i]
		}
		for _, name := range outputFields {
			col := rs.GetColumn(name)
			if col == nil {
				continue
			}
			if v, err := col.Get(i); err == nil {
				hit.Fields[name] = v
			}
		}
		hits = append(hits, hit)
	}
	return hits
}

// columnToStrings renders a primary-key column as strings regardless of the
// underlying key type.
func columnToStrings(col column.Column) []string {
	if col == nil {
		return nil
	}
	out := make([]string, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		v, err := col.Get(i)
		if err != nil {
			continue
		}
		out = append(out, fmt.Sprint(v))
	}
	return out
}
