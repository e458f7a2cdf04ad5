package source

import (
	"context"
	"fmt"

	catalogindex "github.com/karupanerura/catalog-index"
)

// VerifySource is a catalog source wrapper that is used for linting purposes.
// It validates the behavior of the wrapped source implementation, ensuring it
// properly follows the CatalogSource contract.
type VerifySource struct {
	Source catalogindex.CatalogSource
}

var _ catalogindex.CatalogSource = (*VerifySource)(nil)

// FetchAll retrieves the full snapshot from the wrapped source.
// It checks that the snapshot contains no nil records, no records without an
// ISBN, and no two records sharing an ISBN.
func (s *VerifySource) FetchAll(ctx context.Context) ([]*catalogindex.Book, error) {
	books, err := s.Source.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(books))
	for i, b := range books {
		if b == nil {
			return nil, fmt.Errorf("source: FetchAll returned nil record at position %d", i)
		}
		if b.ISBN == "" {
			return nil, fmt.Errorf("source: FetchAll returned record %q without ISBN", b.Title)
		}
		if _, ok := seen[b.ISBN]; ok {
			return nil, fmt.Errorf("source: FetchAll returned duplicate ISBN %q", b.ISBN)
		}
		seen[b.ISBN] = struct{}{}
	}
	return books, nil
}

// Insert persists the record through the wrapped source after validating it.
func (s *VerifySource) Insert(ctx context.Context, book *catalogindex.Book) error {
	if err := validateRecord(book); err != nil {
		return fmt.Errorf("source: Insert: %w", err)
	}
	return s.Source.Insert(ctx, book)
}

// Update persists the record through the wrapped source after validating it.
func (s *VerifySource) Update(ctx context.Context, book *catalogindex.Book) error {
	if err := validateRecord(book); err != nil {
		return fmt.Errorf("source: Update: %w", err)
	}
	return s.Source.Update(ctx, book)
}

// Delete removes the record through the wrapped source.
func (s *VerifySource) Delete(ctx context.Context, isbn string) error {
	if isbn == "" {
		return fmt.Errorf("source: Delete: %w", catalogindex.ErrMissingISBN)
	}
	return s.Source.Delete(ctx, isbn)
}

func validateRecord(book *catalogindex.Book) error {
	if book == nil {
		return fmt.Errorf("nil record")
	}
	if book.ISBN == "" {
		return catalogindex.ErrMissingISBN
	}
	return nil
}
