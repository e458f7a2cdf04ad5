// Package pebblesource provides a durable CatalogSource backed by a
// cockroachdb/pebble key-value store. Records are stored as JSON values under
// ISBN-derived keys; the engine's indexes hold no persistent state of their
// own, so this store is always sufficient to rebuild them.
package pebblesource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	catalogindex "github.com/karupanerura/catalog-index"
)

// keyPrefix namespaces record keys, leaving room for other key spaces in the
// same pebble instance.
const keyPrefix = "book/"

// Source is a pebble-backed catalog store. Safe for concurrent use.
type Source struct {
	db *pebble.DB
}

var _ catalogindex.CatalogSource = (*Source)(nil)

// Open opens (or creates) a pebble database at path and returns a Source
// over it.
func Open(path string) (*Source, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebblesource: open %q: %w", path, err)
	}
	return &Source{db: db}, nil
}

// New wraps an already opened pebble database. The caller keeps ownership of
// the database lifetime.
func New(db *pebble.DB) *Source {
	return &Source{db: db}
}

// Close closes the underlying database. Only call it for a Source created
// with Open.
func (s *Source) Close() error {
	return s.db.Close()
}

func recordKey(isbn string) []byte {
	return []byte(keyPrefix + isbn)
}

// FetchAll returns all stored records, ascending by ISBN.
func (s *Source) FetchAll(_ context.Context) ([]*catalogindex.Book, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: upperBound([]byte(keyPrefix)),
	})
	if err != nil {
		return nil, fmt.Errorf("pebblesource: fetch all: %w", err)
	}
	defer iter.Close()

	var books []*catalogindex.Book
	for iter.First(); iter.Valid(); iter.Next() {
		var b catalogindex.Book
		if err := json.Unmarshal(iter.Value(), &b); err != nil {
			return nil, fmt.Errorf("pebblesource: decode record %q: %w", iter.Key(), err)
		}
		books = append(books, &b)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("pebblesource: fetch all: %w", err)
	}
	return books, nil
}

// Insert stores a new record.
func (s *Source) Insert(_ context.Context, book *catalogindex.Book) error {
	key := recordKey(book.ISBN)
	if ok, err := s.exists(key); err != nil {
		return fmt.Errorf("pebblesource: insert %q: %w", book.ISBN, err)
	} else if ok {
		return fmt.Errorf("pebblesource: insert %q: %w", book.ISBN, catalogindex.ErrDuplicate)
	}
	return s.set(key, book)
}

// Update overwrites an existing record, matched by ISBN.
func (s *Source) Update(_ context.Context, book *catalogindex.Book) error {
	key := recordKey(book.ISBN)
	if ok, err := s.exists(key); err != nil {
		return fmt.Errorf("pebblesource: update %q: %w", book.ISBN, err)
	} else if !ok {
		return fmt.Errorf("pebblesource: update %q: %w", book.ISBN, catalogindex.ErrNotFound)
	}
	return s.set(key, book)
}

// Delete removes the record with the given ISBN.
func (s *Source) Delete(_ context.Context, isbn string) error {
	key := recordKey(isbn)
	if ok, err := s.exists(key); err != nil {
		return fmt.Errorf("pebblesource: delete %q: %w", isbn, err)
	} else if !ok {
		return fmt.Errorf("pebblesource: delete %q: %w", isbn, catalogindex.ErrNotFound)
	}
	if err := s.db.Delete(key, pebble.Sync); err != nil {
		return fmt.Errorf("pebblesource: delete %q: %w", isbn, err)
	}
	return nil
}

func (s *Source) exists(key []byte) (bool, error) {
	_, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	_ = closer.Close()
	return true, nil
}

func (s *Source) set(key []byte, book *catalogindex.Book) error {
	value, err := json.Marshal(book)
	if err != nil {
		return fmt.Errorf("pebblesource: encode %q: %w", book.ISBN, err)
	}
	if err := s.db.Set(key, value, pebble.Sync); err != nil {
		return fmt.Errorf("pebblesource: store %q: %w", book.ISBN, err)
	}
	return nil
}

// upperBound returns the smallest key greater than every key with the given
// prefix.
func upperBound(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
