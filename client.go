// Package textdex is a validated client for BM25 full-text search over a
// Milvus database. Collections carry a server-side BM25 function, so
// documents are plain text rows and queries are plain strings; the database
// does the term weighting.
package textdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/textdex/textdex/internal/db"
	dbMilvus "github.com/textdex/textdex/internal/db/milvus"
	collectionrepo "github.com/textdex/textdex/internal/repository/collection"
	documentrepo "github.com/textdex/textdex/internal/repository/document"
	searchrepo "github.com/textdex/textdex/internal/repository/search"
	collectionuc "github.com/textdex/textdex/internal/usecase/collection"
	documentuc "github.com/textdex/textdex/internal/usecase/document"
	searchuc "github.com/textdex/textdex/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the textdex SDK entry point.
type Client struct {
	store        db.Store
	collSvc      *collectionuc.Service
	docSvc       *documentuc.Service
	searchSvc    *searchuc.Service
	defaults     SchemaDefaults
	defaultLimit int
}

// New creates a textdex Client and connects to the database.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		settleDelay:      -1,
		defaults:         DefaultSchemaDefaults(),
		defaultLimit:     3,
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o(cfg)
	}

	store := cfg.store
	if store == nil {
		if cfg.address == "" {
			return nil, errors.New("textdex: database address required (use WithAddress)")
		}
		s, err := dbMilvus.NewStore(ctx, dbMilvus.Config{
			Address:  cfg.address,
			Username: cfg.username,
			Password: cfg.password,
			DBName:   cfg.dbName,
		})
		if err != nil {
			return nil, fmt.Errorf("textdex: create store: %w", err)
		}
		store = s

		if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
			store.Close()
			return nil, fmt.Errorf("textdex: database not ready: %w", err)
		}
	}

	if cfg.observer != nil {
		store = db.NewInstrumented(store, cfg.observer)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	collRepo := collectionrepo.New(store)
	docRepo := documentrepo.New(store)
	if cfg.settleDelay >= 0 {
		docRepo = docRepo.WithSettleDelay(cfg.settleDelay)
	}
	searchRepo := searchrepo.New(store)

	return &Client{
		store:        store,
		collSvc:      collectionuc.New(collRepo, logger),
		docSvc:       documentuc.New(docRepo, collRepo, logger),
		searchSvc:    searchuc.New(searchRepo, collRepo, logger),
		defaults:     cfg.defaults,
		defaultLimit: cfg.defaultLimit,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Collections returns the collection management service.
func (c *Client) Collections() *CollectionService {
	return &CollectionService{svc: c.collSvc, defaults: c.defaults}
}

// Documents returns the document service for a given collection.
func (c *Client) Documents(collection string) *DocumentService {
	return &DocumentService{collection: collection, svc: c.docSvc}
}

// Search returns the search service for a given collection.
func (c *Client) Search(collection string) *SearchService {
	return &SearchService{
		collection:   collection,
		svc:          c.searchSvc,
		defaultLimit: c.defaultLimit,
	}
}
