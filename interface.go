package catalogindex

import "context"

// CatalogSource is an interface for the authoritative record store that the
// engine mirrors. The engine never owns record truth: every mutation is
// persisted here, and the full snapshot is always sufficient to rebuild the
// in-memory indexes from scratch.
type CatalogSource interface {
	// FetchAll retrieves the full record snapshot.
	// The returned records must not be retained or mutated by the source
	// after the call returns.
	FetchAll(ctx context.Context) ([]*Book, error)

	// Insert persists a new record.
	// It returns an error wrapping ErrDuplicate if a record with the same
	// ISBN already exists.
	Insert(ctx context.Context, book *Book) error

	// Update persists changed fields of an existing record, matched by ISBN.
	// It returns an error wrapping ErrNotFound if the record does not exist.
	Update(ctx context.Context, book *Book) error

	// Delete removes the record with the given ISBN.
	// It returns an error wrapping ErrNotFound if the record does not exist.
	Delete(ctx context.Context, isbn string) error
}

// Refresher is an interface for rebuilding derived state from an
// authoritative source.
type Refresher interface {
	// Refresh rebuilds the derived state from a fresh source snapshot.
	Refresh(ctx context.Context) error
}
