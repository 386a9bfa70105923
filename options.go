package textdex

import (
	"time"

	"go.uber.org/zap"

	"github.com/textdex/textdex/internal/db"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	address  string
	username string
	password string
	dbName   string

	store            db.Store
	observer         db.Observer
	logger           *zap.Logger
	settleDelay      time.Duration
	defaults         SchemaDefaults
	defaultLimit     int
	readinessTimeout time.Duration
}

// WithAddress sets the database address (host:port).
func WithAddress(addr string) Option {
	return func(c *clientConfig) {
		c.address = addr
	}
}

// WithCredentials sets the database username and password.
func WithCredentials(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithDatabase selects a named database on the server.
func WithDatabase(name string) Option {
	return func(c *clientConfig) {
		c.dbName = name
	}
}

// WithStore supplies a pre-built store, bypassing the connection step.
// The address options are ignored when a store is given.
func WithStore(s db.Store) Option {
	return func(c *clientConfig) {
		c.store = s
	}
}

// WithObserver wraps the store with per-operation observations
// (e.g. metrics.StoreObserver).
func WithObserver(obs db.Observer) Option {
	return func(c *clientConfig) {
		c.observer = obs
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithSettleDelay overrides the pause after document writes that lets the
// database make them searchable.
func WithSettleDelay(d time.Duration) Option {
	return func(c *clientConfig) {
		c.settleDelay = d
	}
}

// WithSchemaDefaults tunes the default full-text schema used when a
// collection is created without explicit fields.
func WithSchemaDefaults(d SchemaDefaults) Option {
	return func(c *clientConfig) {
		c.defaults = d
	}
}

// WithDefaultLimit sets the result limit used when a search does not
// specify one.
func WithDefaultLimit(n int) Option {
	return func(c *clientConfig) {
		c.defaultLimit = n
	}
}

// WithReadinessTimeout bounds how long New waits for the database to
// answer its first ping.
func WithReadinessTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.readinessTimeout = d
	}
}
