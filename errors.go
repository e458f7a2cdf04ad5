package catalogindex

import "errors"

var (
	// ErrNotFound is returned by CatalogSource implementations when the
	// requested record does not exist. Index reads never return it; absence
	// is signalled by a nil result.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned by CatalogSource implementations when
	// inserting a record whose ISBN is already present.
	ErrDuplicate = errors.New("record already exists")

	// ErrMissingISBN is returned by the engine when a mutation carries a
	// record without an identifier.
	ErrMissingISBN = errors.New("record has no ISBN")
)
