package catalogindex

// Book is a catalog record. The external store owns its lifetime; the
// indexes keep references for lookup only.
type Book struct {
	// ISBN is the unique identifier of the record. It never changes after
	// the record has been created.
	ISBN string

	// Title is the display title of the record. It is indexed under its
	// normalized (case-folded) form.
	Title string

	// Author is the author display name, indexed for prefix search.
	Author string

	// Category is a free-form shelf category. Not indexed.
	Category string

	// Available is the number of copies currently on the shelf. Not indexed.
	Available int

	// Total is the total number of copies owned. Not indexed.
	Total int
}

// Clone returns a copy of the record.
func (b *Book) Clone() *Book {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
