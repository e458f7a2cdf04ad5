package catalogindex_test

import (
	"context"
	"fmt"

	catalogindex "github.com/karupanerura/catalog-index"
	"github.com/karupanerura/catalog-index/source/memsource"
)

func ExampleEngine() {
	// Create an in-memory catalog store seeded with a few records
	store := memsource.New(
		&catalogindex.Book{ISBN: "978-0441013593", Title: "Dune", Author: "Frank Herbert", Available: 2, Total: 3},
		&catalogindex.Book{ISBN: "978-0441172719", Title: "Dune Messiah", Author: "Frank Herbert", Available: 1, Total: 1},
		&catalogindex.Book{ISBN: "978-0553293357", Title: "Foundation", Author: "Isaac Asimov", Available: 4, Total: 4},
	)

	// Create the engine and populate its indexes from the store
	engine := catalogindex.NewEngine(store)
	ctx := context.Background()
	if err := engine.Load(ctx); err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Direct lookup by ISBN
	book, err := engine.SearchByISBN(ctx, "978-0553293357")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("By ISBN:", book.Title)

	// Prefix search over titles; case folding makes "dune" match "Dune"
	books, err := engine.SearchByTitlePrefix(ctx, "dune")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, b := range books {
		fmt.Println("By prefix:", b.Title)
	}

	// All records ascending by title
	sorted, err := engine.SortedByTitle(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, b := range sorted {
		fmt.Println("Sorted:", b.Title)
	}

	// Output:
	// By ISBN: Foundation
	// By prefix: Dune
	// By prefix: Dune Messiah
	// Sorted: Dune
	// Sorted: Dune Messiah
	// Sorted: Foundation
}

func ExampleEngine_UpdateBook() {
	store := memsource.New(
		&catalogindex.Book{ISBN: "978-0441013593", Title: "Dune", Author: "Frank Herbert", Available: 2, Total: 3},
	)
	engine := catalogindex.NewEngine(store)
	ctx := context.Background()
	if err := engine.Load(ctx); err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Renaming a record moves it under its new keys in every index
	title := "Dune: Deluxe Edition"
	if _, err := engine.UpdateBook(ctx, "978-0441013593", catalogindex.BookUpdate{Title: &title}); err != nil {
		fmt.Println("Error:", err)
		return
	}

	if old, _ := engine.SearchByTitleExact(ctx, "Dune"); old == nil {
		fmt.Println("Old title: gone")
	}
	if renamed, _ := engine.SearchByTitleExact(ctx, title); renamed != nil {
		fmt.Println("New title:", renamed.Title)
	}

	// Output:
	// Old title: gone
	// New title: Dune: Deluxe Edition
}
