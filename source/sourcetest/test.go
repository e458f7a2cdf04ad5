// Package sourcetest provides generic contract tests for CatalogSource
// implementations.
package sourcetest

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	catalogindex "github.com/karupanerura/catalog-index"
)

// TestSource runs the CatalogSource contract suite against the source
// returned by provider. The provider returns a fresh empty source and a
// release function, called once the subtest is done with it.
func TestSource(t *testing.T, provider func() (catalogindex.CatalogSource, func())) {
	t.Run("FetchAllEmpty", func(t *testing.T) {
		source, release := provider()
		defer release()
		ctx := t.Context()

		books, err := source.FetchAll(ctx)
		if err != nil {
			t.Fatalf("FetchAll: %v", err)
		}
		if len(books) != 0 {
			t.Errorf("FetchAll on empty source returned %d records", len(books))
		}
	})

	t.Run("InsertAndFetchAll", func(t *testing.T) {
		source, release := provider()
		defer release()
		ctx := t.Context()

		want := []*catalogindex.Book{
			{ISBN: "978-0441013593", Title: "Dune", Author: "Frank Herbert", Category: "SF", Available: 2, Total: 3},
			{ISBN: "978-0441172719", Title: "Dune Messiah", Author: "Frank Herbert", Category: "SF", Available: 1, Total: 1},
			{ISBN: "978-0553293357", Title: "Foundation", Author: "Isaac Asimov", Category: "SF", Available: 4, Total: 4},
		}
		for _, b := range want {
			if err := source.Insert(ctx, b); err != nil {
				t.Fatalf("Insert(%q): %v", b.ISBN, err)
			}
		}

		got, err := source.FetchAll(ctx)
		if err != nil {
			t.Fatalf("FetchAll: %v", err)
		}
		sort.Slice(got, func(i, j int) bool { return got[i].ISBN < got[j].ISBN })
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected snapshot (-want +got):\n%s", diff)
		}
	})

	t.Run("InsertDuplicate", func(t *testing.T) {
		source, release := provider()
		defer release()
		ctx := t.Context()

		book := &catalogindex.Book{ISBN: "978-0441013593", Title: "Dune"}
		if err := source.Insert(ctx, book); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		err := source.Insert(ctx, book)
		if !errors.Is(err, catalogindex.ErrDuplicate) {
			t.Errorf("duplicate Insert error = %v, want ErrDuplicate", err)
		}
	})

	t.Run("Update", func(t *testing.T) {
		source, release := provider()
		defer release()
		ctx := t.Context()

		book := &catalogindex.Book{ISBN: "978-0441013593", Title: "Dune", Available: 1}
		if err := source.Insert(ctx, book); err != nil {
			t.Fatalf("Insert: %v", err)
		}

		changed := book.Clone()
		changed.Available = 0
		if err := source.Update(ctx, changed); err != nil {
			t.Fatalf("Update: %v", err)
		}

		got, err := source.FetchAll(ctx)
		if err != nil {
			t.Fatalf("FetchAll: %v", err)
		}
		if diff := cmp.Diff([]*catalogindex.Book{changed}, got); diff != "" {
			t.Errorf("unexpected snapshot after update (-want +got):\n%s", diff)
		}
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		source, release := provider()
		defer release()
		ctx := t.Context()

		err := source.Update(ctx, &catalogindex.Book{ISBN: "978-0441013593", Title: "Dune"})
		if !errors.Is(err, catalogindex.ErrNotFound) {
			t.Errorf("Update of missing record error = %v, want ErrNotFound", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		source, release := provider()
		defer release()
		ctx := t.Context()

		book := &catalogindex.Book{ISBN: "978-0441013593", Title: "Dune"}
		if err := source.Insert(ctx, book); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if err := source.Delete(ctx, book.ISBN); err != nil {
			t.Fatalf("Delete: %v", err)
		}

		got, err := source.FetchAll(ctx)
		if err != nil {
			t.Fatalf("FetchAll: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("FetchAll after delete returned %d records", len(got))
		}
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		source, release := provider()
		defer release()
		ctx := t.Context()

		err := source.Delete(ctx, "978-0441013593")
		if !errors.Is(err, catalogindex.ErrNotFound) {
			t.Errorf("Delete of missing record error = %v, want ErrNotFound", err)
		}
	})

	t.Run("ConcurrentInserts", func(t *testing.T) {
		source, release := provider()
		defer release()
		ctx := t.Context()

		const n = 32
		var eg errgroup.Group
		for i := 0; i < n; i++ {
			eg.Go(func() error {
				return source.Insert(ctx, &catalogindex.Book{
					ISBN:  fmt.Sprintf("isbn-%02d", i),
					Title: fmt.Sprintf("Title %02d", i),
				})
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatalf("concurrent Insert: %v", err)
		}

		got, err := source.FetchAll(ctx)
		if err != nil {
			t.Fatalf("FetchAll: %v", err)
		}
		if len(got) != n {
			t.Errorf("FetchAll returned %d records, want %d", len(got), n)
		}
	})
}
