package textdex

import (
	"context"
	"fmt"
)

// TypedHit is a typed search result.
type TypedHit[T any] struct {
	ID    string
	Score float32
	Item  T
}

// SearchBuilder is a fluent builder for typed full-text queries.
type SearchBuilder[T any] struct {
	idx     *TypedIndex[T]
	queries []string
	limit   int
}

// Query adds a query string. Each query produces its own hit list.
func (b *SearchBuilder[T]) Query(q string) *SearchBuilder[T] {
	b.queries = append(b.queries, q)
	return b
}

// Limit sets the maximum number of results per query.
func (b *SearchBuilder[T]) Limit(n int) *SearchBuilder[T] {
	b.limit = n
	return b
}

// Do executes the search and returns one typed hit list per query.
// Returns nil when the collection is absent.
func (b *SearchBuilder[T]) Do(ctx context.Context) ([][]TypedHit[T], error) {
	results, err := b.idx.client.Search(b.idx.name).FullText(ctx, b.queries, b.limit)
	if err != nil {
		return nil, fmt.Errorf("typed search: %w", err)
	}
	if results == nil {
		return nil, nil
	}

	out := make([][]TypedHit[T], len(results))
	for i, hits := range results {
		out[i] = make([]TypedHit[T], len(hits))
		for j, h := range hits {
			item, _ := b.idx.meta.fromHit(h).(T)
			out[i][j] = TypedHit[T]{ID: h.ID, Score: h.Score, Item: item}
		}
	}
	return out, nil
}
