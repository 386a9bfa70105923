// Package milvus implements db.Store over the Milvus Go client.
package milvus

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/milvus-io/milvus/client/v2/milvusclient"

	"github.com/textdex/textdex/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a Milvus store.
type Config struct {
	Address  string
	Username string
	Password string
	DBName   string
}

// Store implements db.Store via the Milvus gRPC client.
type Store struct {
	client *milvusclient.Client
}

// NewStore connects to the Milvus server at the configured address.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("address is required")
	}

	client, err := milvusclient.New(ctx, &milvusclient.ClientConfig{
		Address:  cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DBName:   cfg.DBName,
	})
	if err != nil {
		return nil, &db.Error{Op: db.OpConnect, Err: fmt.Errorf("%w: %w", db.ErrUnreachable, err)}
	}

	return &Store{client: client}, nil
}

// Ping checks connectivity. Milvus has no dedicated ping RPC; listing
// collection names is the cheapest round trip.
func (s *Store) Ping(ctx context.Context) error {
	if _, err := s.client.ListCollections(ctx, milvusclient.NewListCollectionOption()); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close shuts down the client.
func (s *Store) Close() {
	_ = s.client.Close(context.Background())
}

// WaitForReady polls Ping until the server responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for server: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// ListCollections returns all collection names.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.client.ListCollections(ctx, milvusclient.NewListCollectionOption())
	if err != nil {
		return nil, &db.Error{Op: db.OpListCollections, Err: err}
	}
	return names, nil
}

// CreateCollection assembles the schema and index options from the spec and
// issues a single create call.
func (s *Store) CreateCollection(ctx context.Context, spec *db.CollectionSpec) error {
	schema, err := buildSchema(spec)
	if err != nil {
		return &db.Error{Op: db.OpCreateCollection, Err: err}
	}

	opt := milvusclient.NewCreateCollectionOption(spec.Name, schema).
		WithIndexOptions(buildIndexOptions(spec.Name, spec.Indexes)...)

	if err := s.client.CreateCollection(ctx, opt); err != nil {
		return &db.Error{Op: db.OpCreateCollection, Err: err}
	}
	return nil
}

// DropCollection drops a collection by name.
func (s *Store) DropCollection(ctx context.Context, name string) error {
	if err := s.client.DropCollection(ctx, milvusclient.NewDropCollectionOption(name)); err != nil {
		return &db.Error{Op: db.OpDropCollection, Err: err}
	}
	return nil
}

// Insert writes rows into a collection and returns the acknowledgment.
func (s *Store) Insert(ctx context.Context, collection string, rows []map[string]any) (*db.InsertAck, error) {
	anyRows := make([]any, len(rows))
	for i, r := range rows {
		anyRows[i] = r
	}

	res, err := s.client.Insert(ctx, milvusclient.NewRowBasedInsertOption(collection, anyRows...))
	if err != nil {
		return nil, &db.Error{Op: db.OpInsert, Err: err}
	}

	return &db.InsertAck{
		InsertCount: res.InsertCount,
		IDs:         columnToStrings(res.IDs),
	}, nil
}

// Delete removes rows by primary-key values. Ids that all parse as integers
// are sent as INT64 keys, otherwise as VARCHAR keys.
func (s *Store) Delete(ctx context.Context, req *db.DeleteRequest) (int64, error) {
	opt := milvusclient.NewDeleteOption(req.Collection)

	if intIDs, ok := parseInt64IDs(req.IDs); ok {
		opt = opt.WithInt64IDs(req.IDField, intIDs)
	} else {
		opt = opt.WithStringIDs(req.IDField, req.IDs)
	}

	res, err := s.client.Delete(ctx, opt)
	if err != nil {
		return 0, &db.Error{Op: db.OpDelete, Err: err}
	}
	return res.DeleteCount, nil
}

func parseInt64IDs(ids []string) ([]int64, bool) {
	out := make([]int64, len(ids))
	for i, id := range ids {
		v, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
