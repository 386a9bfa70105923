package db

import "errors"

// ErrUnreachable signals that the remote service could not be reached.
var ErrUnreachable = errors.New("db: server unreachable")

// Op constants map to remote RPC names for error context.
const (
	OpConnect          = "Connect"
	OpPing             = "Ping"
	OpListCollections  = "ListCollections"
	OpCreateCollection = "CreateCollection"
	OpDropCollection   = "DropCollection"
	OpInsert           = "Insert"
	OpDelete           = "Delete"
	OpSearch           = "Search"
)

// Error wraps an underlying remote failure with the operation name for
// diagnostics. The cause is preserved unchanged.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
