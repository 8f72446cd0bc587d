package cursor

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/rango/connector"
)

var (
	// ErrDeleted reports use of an iterator after Close.
	ErrDeleted = errors.New("cursor deleted")

	// errMissingID reports a continuation attempt on a cursor the server
	// reported more results for without handing out an id.
	errMissingID = errors.New("cursor has more results but no id")
)

// State tracks where an iterator is in the cursor lifecycle.
type State uint8

const (
	// StateCreated means the first batch is held but not yet consumed.
	StateCreated State = iota
	// StateHasMore means the server holds an open cursor with further
	// batches.
	StateHasMore
	// StateExhausted means all batches have been read and the server-side
	// cursor is gone.
	StateExhausted
	// StateDeleted means the cursor was disposed via Close.
	StateDeleted
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateHasMore:
		return "has-more"
	case StateExhausted:
		return "exhausted"
	case StateDeleted:
		return "deleted"
	}
	return "unknown"
}

// Query submits a query and wraps the resulting cursor in an Iterator.
func Query[T any](ctx context.Context, conn *connector.Connection, nc *NewCursor) (*Iterator[T], error) {
	batch, err := Create[T](ctx, conn, nc)
	if err != nil {
		return nil, err
	}
	return NewIterator(conn, batch), nil
}

// Iterator walks a cursor's result set one document at a time, fetching
// batches from the server as the local one drains. It follows the
// rows-style contract: Next advances, Value reads, Err reports what
// stopped the iteration. Not safe for concurrent use.
type Iterator[T any] struct {
	conn    *connector.Connection
	batch   *Cursor[T]
	index   int
	state   State
	current T
	err     error
}

// NewIterator wraps an already-created cursor batch. Most callers use
// Query instead.
func NewIterator[T any](conn *connector.Connection, batch *Cursor[T]) *Iterator[T] {
	state := StateCreated
	if !batch.HasMore {
		state = StateExhausted
	}
	return &Iterator[T]{conn: conn, batch: batch, state: state}
}

// Next advances to the next document, fetching the next batch from the
// server when the local one is drained. It returns false when the result
// set is exhausted or an error occurred; Err distinguishes the two.
func (it *Iterator[T]) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}
	if it.state == StateDeleted {
		it.err = ErrDeleted
		return false
	}

	for it.index >= len(it.batch.Result) {
		if !it.batch.HasMore {
			return false
		}
		if it.batch.ID == "" {
			it.err = errMissingID
			return false
		}
		next, err := ReadNextBatch[T](ctx, it.conn, it.batch.ID)
		if err != nil {
			it.err = err
			return false
		}
		// A continuation batch may omit fields the first one carried;
		// keep the id so a later Close can still dispose the cursor.
		if next.ID == "" && next.HasMore {
			next.ID = it.batch.ID
		}
		it.batch = next
		it.index = 0
		if next.HasMore {
			it.state = StateHasMore
		} else {
			it.state = StateExhausted
		}
	}

	it.current = it.batch.Result[it.index]
	it.index++
	return true
}

// Value returns the document the last successful Next advanced to.
func (it *Iterator[T]) Value() T {
	return it.current
}

// Err returns the error that stopped iteration, or nil when Next returned
// false because the result set was exhausted.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Close disposes the server-side cursor when one is still open. It is
// idempotent and safe to call on exhausted iterators, where the server
// has already dropped the cursor and there is nothing to delete.
func (it *Iterator[T]) Close(ctx context.Context) error {
	switch it.state {
	case StateDeleted, StateExhausted:
		it.state = StateDeleted
		return nil
	}
	it.state = StateDeleted
	if it.batch.ID == "" {
		return nil
	}
	if err := Delete(ctx, it.conn, it.batch.ID); err != nil {
		return fmt.Errorf("deleting cursor %s: %w", it.batch.ID, err)
	}
	return nil
}

// State returns the iterator's position in the cursor lifecycle.
func (it *Iterator[T]) State() State {
	return it.state
}

// Count returns the total size of the result set, when the query was
// created with count enabled.
func (it *Iterator[T]) Count() (int64, bool) {
	if it.batch.Count == nil {
		return 0, false
	}
	return *it.batch.Count, true
}

// Stats returns the execution statistics of the current batch, or nil.
func (it *Iterator[T]) Stats() *Statistics {
	if it.batch.Extra == nil {
		return nil
	}
	return it.batch.Extra.Stats
}

// Warnings returns the warnings reported with the current batch.
func (it *Iterator[T]) Warnings() []Warning {
	if it.batch.Extra == nil {
		return nil
	}
	return it.batch.Extra.Warnings
}

// IsCached reports whether the result came from the query result cache.
func (it *Iterator[T]) IsCached() bool {
	return it.batch.Cached
}
