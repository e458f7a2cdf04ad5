// Package memsource provides an in-memory CatalogSource, primarily for tests
// and examples. Records are cloned on every boundary crossing, so callers can
// never alias the stored state.
package memsource

import (
	"context"
	"fmt"
	"sort"
	"sync"

	catalogindex "github.com/karupanerura/catalog-index"
)

// Source is an in-memory catalog store keyed by ISBN. Safe for concurrent
// use.
type Source struct {
	mu    sync.RWMutex
	books map[string]*catalogindex.Book
}

var _ catalogindex.CatalogSource = (*Source)(nil)

// New creates a Source seeded with the given records. Seed records with a
// duplicate ISBN overwrite earlier ones.
func New(seed ...*catalogindex.Book) *Source {
	books := make(map[string]*catalogindex.Book, len(seed))
	for _, b := range seed {
		if b != nil && b.ISBN != "" {
			books[b.ISBN] = b.Clone()
		}
	}
	return &Source{books: books}
}

// FetchAll returns clones of all stored records, ascending by ISBN.
func (s *Source) FetchAll(_ context.Context) ([]*catalogindex.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]*catalogindex.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b.Clone())
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ISBN < books[j].ISBN })
	return books, nil
}

// Insert stores a new record.
func (s *Source) Insert(_ context.Context, book *catalogindex.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[book.ISBN]; ok {
		return fmt.Errorf("memsource: insert %q: %w", book.ISBN, catalogindex.ErrDuplicate)
	}
	s.books[book.ISBN] = book.Clone()
	return nil
}

// Update overwrites an existing record, matched by ISBN.
func (s *Source) Update(_ context.Context, book *catalogindex.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[book.ISBN]; !ok {
		return fmt.Errorf("memsource: update %q: %w", book.ISBN, catalogindex.ErrNotFound)
	}
	s.books[book.ISBN] = book.Clone()
	return nil
}

// Delete removes the record with the given ISBN.
func (s *Source) Delete(_ context.Context, isbn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[isbn]; !ok {
		return fmt.Errorf("memsource: delete %q: %w", isbn, catalogindex.ErrNotFound)
	}
	delete(s.books, isbn)
	return nil
}

// Len returns the number of stored records.
func (s *Source) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}
