package catalogindex

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/karupanerura/catalog-index/avltree"
	"github.com/karupanerura/catalog-index/hashtable"
	"github.com/karupanerura/catalog-index/internal/iterutil"
	"github.com/karupanerura/catalog-index/internal/keynorm"
	"github.com/karupanerura/catalog-index/internal/panicutil"
	"github.com/karupanerura/catalog-index/trie"
)

// indexSet bundles the in-memory structures so they can be built aside and
// swapped in atomically.
type indexSet struct {
	titles     *avltree.Tree[string, *Book] // ordered index, keyed by normalized title
	isbns      *hashtable.Table[*Book]      // direct index, keyed by ISBN
	titleTrie  *trie.Trie[*Book]            // prefix index over titles
	authorTrie *trie.Trie[*Book]            // prefix index over author names
}

func (s *indexSet) insert(b *Book) {
	s.titles.Insert(keynorm.Key(b.Title), b)
	s.isbns.Insert(b.ISBN, b)
	s.titleTrie.Insert(b.Title, b)
	if b.Author != "" {
		s.authorTrie.Insert(b.Author, b)
	}
}

func (s *indexSet) remove(b *Book) {
	s.titles.Delete(keynorm.Key(b.Title))
	s.isbns.Delete(b.ISBN)
	s.titleTrie.Delete(b.Title, b)
	if b.Author != "" {
		s.authorTrie.Delete(b.Author, b)
	}
}

// Engine is the index coordinator. It fronts an ordered index (titles), a
// direct index (ISBNs) and two prefix indexes (titles, authors), keeps them
// consistent with the authoritative CatalogSource, and is the only legal
// mutation entry point: callers never touch the structures directly.
//
// A single readers-writer lock guards all four structures for the full
// duration of each operation, so reads share and mutations exclude. Records
// are cloned on the way in and out.
type Engine struct {
	source  CatalogSource
	options engineOptions
	metrics *engineMetrics

	mu      sync.RWMutex
	indexes *indexSet
}

var _ Refresher = (*Engine)(nil)

// NewEngine creates an Engine mirroring the given source. The indexes start
// empty; call Load once at startup to populate them.
func NewEngine(source CatalogSource, opts ...EngineOption) *Engine {
	options := defaultEngineOptions()
	for _, opt := range opts {
		opt.apply(&options)
	}
	e := &Engine{
		source:  source,
		options: options,
		metrics: newEngineMetrics(),
	}
	e.indexes = e.newIndexSet()
	return e
}

func (e *Engine) newIndexSet() *indexSet {
	return &indexSet{
		titles: avltree.New[string, *Book](
			avltree.WithRotationHook(func(kind avltree.RotationKind, key string) {
				e.metrics.rotations.Inc()
				e.options.logger.Debug("avl rotation", "kind", kind, "key", key)
			}),
		),
		isbns: hashtable.New[*Book](
			hashtable.WithSize(e.options.directIndexSize),
			hashtable.WithCollisionHook(func(key string, bucket int) {
				e.metrics.collisions.Inc()
				e.options.logger.Debug("hash collision", "isbn", key, "bucket", bucket)
			}),
		),
		titleTrie:  trie.New[*Book](),
		authorTrie: trie.New[*Book](),
	}
}

// Load bulk-populates the indexes from a full source snapshot. Startup only;
// use Refresh for later rebuilds.
func (e *Engine) Load(ctx context.Context) error {
	n, err := e.rebuild(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	e.options.logger.Info("catalog loaded", "records", n)
	return nil
}

// Refresh rebuilds all indexes from a fresh source snapshot and swaps them in
// under the write lock, so readers observe either the old or the new record
// set, never a partially built one.
func (e *Engine) Refresh(ctx context.Context) error {
	n, err := e.rebuild(ctx)
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	e.options.logger.Debug("catalog refreshed", "records", n)
	return nil
}

func (e *Engine) rebuild(ctx context.Context) (int, error) {
	var books []*Book
	if err := panicutil.Call(func() (err error) {
		books, err = e.source.FetchAll(ctx)
		return
	}); err != nil {
		return 0, err
	}

	indexes := e.newIndexSet()
	n := 0
	for _, b := range books {
		if b == nil || b.ISBN == "" {
			continue
		}
		indexes.insert(e.options.cloner.CloneRecord(b))
		n++
	}

	e.mu.Lock()
	e.indexes = indexes
	e.mu.Unlock()
	return n, nil
}

// AddBook persists a new record and inserts it into all indexes. The store
// comes first: the identifier must be durable before any index knows it.
func (e *Engine) AddBook(ctx context.Context, book *Book) error {
	if book == nil || book.ISBN == "" {
		return ErrMissingISBN
	}
	b := e.options.cloner.CloneRecord(book)

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := panicutil.Call(func() error { return e.source.Insert(ctx, b) }); err != nil {
		return fmt.Errorf("add book %q: %w", b.ISBN, err)
	}
	e.indexes.insert(b)
	e.options.logger.Debug("book added", "isbn", b.ISBN, "title", b.Title)
	return nil
}

// RemoveBook removes the record from all indexes using its pre-mutation key
// values, then deletes it from the store. A record unknown to the indexes is
// still deleted from the store; a record unknown to the store surfaces the
// store's ErrNotFound after the index removal already took effect.
func (e *Engine) RemoveBook(ctx context.Context, book *Book) error {
	if book == nil || book.ISBN == "" {
		return ErrMissingISBN
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Resolve the canonical stored record: destructive index operations must
	// run against the keys the indexes actually hold.
	if stored, ok := e.indexes.isbns.Get(book.ISBN); ok {
		e.indexes.remove(stored)
	}
	if err := panicutil.Call(func() error { return e.source.Delete(ctx, book.ISBN) }); err != nil {
		return fmt.Errorf("remove book %q: %w", book.ISBN, err)
	}
	e.options.logger.Debug("book removed", "isbn", book.ISBN)
	return nil
}

// BookUpdate describes field changes for UpdateBook. Nil fields are left
// unchanged. The ISBN is immutable and therefore not part of the update.
type BookUpdate struct {
	Title     *string
	Author    *string
	Category  *string
	Available *int
	Total     *int
}

// reindexes reports whether the update touches an indexed key.
func (u BookUpdate) reindexes() bool {
	return u.Title != nil || u.Author != nil
}

func (u BookUpdate) applyTo(b *Book) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Category != nil {
		b.Category = *u.Category
	}
	if u.Available != nil {
		b.Available = *u.Available
	}
	if u.Total != nil {
		b.Total = *u.Total
	}
}

// UpdateBook applies field changes to the record with the given ISBN. When an
// indexed key (title or author) changes, the record is first removed from all
// indexes under its old keys, then persisted, then re-inserted under its new
// keys; changes to non-indexed fields leave the indexes untouched. The whole
// sequence runs under the write lock, so no reader observes the
// remove-then-reinsert window.
//
// There is no partial-failure recovery: if the store rejects the update after
// the indexes dropped the old keys, the record stays absent from the indexes
// until the next Refresh.
func (e *Engine) UpdateBook(ctx context.Context, isbn string, update BookUpdate) (*Book, error) {
	if isbn == "" {
		return nil, ErrMissingISBN
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	stored, ok := e.indexes.isbns.Get(isbn)
	if !ok {
		return nil, fmt.Errorf("update book %q: %w", isbn, ErrNotFound)
	}

	next := stored.Clone()
	update.applyTo(next)
	reindex := update.reindexes()

	if reindex {
		e.indexes.remove(stored)
	}
	if err := panicutil.Call(func() error { return e.source.Update(ctx, next) }); err != nil {
		return nil, fmt.Errorf("update book %q: %w", isbn, err)
	}
	*stored = *next
	if reindex {
		e.indexes.insert(stored)
	}
	e.options.logger.Debug("book updated", "isbn", isbn, "reindexed", reindex)
	return e.options.cloner.CloneRecord(stored), nil
}

// SearchByISBN looks the record up in the direct index. A nil result means
// the ISBN is absent.
func (e *Engine) SearchByISBN(_ context.Context, isbn string) (*Book, error) {
	start := e.options.clock.Now()
	e.mu.RLock()
	defer e.mu.RUnlock()
	defer func() { e.metrics.observe(e.metrics.isbnSearches, e.options.clock.Now().Sub(start)) }()

	b, ok := e.indexes.isbns.Get(isbn)
	if !ok {
		return nil, nil
	}
	return e.options.cloner.CloneRecord(b), nil
}

// SearchByTitleExact looks the record up in the ordered index by its
// normalized title. A nil result means the title is absent.
func (e *Engine) SearchByTitleExact(_ context.Context, title string) (*Book, error) {
	start := e.options.clock.Now()
	e.mu.RLock()
	defer e.mu.RUnlock()
	defer func() { e.metrics.observe(e.metrics.titleSearches, e.options.clock.Now().Sub(start)) }()

	b, ok := e.indexes.titles.Search(keynorm.Key(title))
	if !ok {
		return nil, nil
	}
	return e.options.cloner.CloneRecord(b), nil
}

// SearchByTitlePrefix returns every record whose title starts with the given
// prefix, in the prefix index's deterministic order.
func (e *Engine) SearchByTitlePrefix(_ context.Context, prefix string) ([]*Book, error) {
	start := e.options.clock.Now()
	e.mu.RLock()
	defer e.mu.RUnlock()
	defer func() { e.metrics.observe(e.metrics.titleSearches, e.options.clock.Now().Sub(start)) }()

	return slices.Collect(iterutil.Map(e.indexes.titleTrie.SearchPrefix(prefix), e.options.cloner.CloneRecord)), nil
}

// SearchByAuthorPrefix returns every record whose author name starts with the
// given prefix.
func (e *Engine) SearchByAuthorPrefix(_ context.Context, prefix string) ([]*Book, error) {
	start := e.options.clock.Now()
	e.mu.RLock()
	defer e.mu.RUnlock()
	defer func() { e.metrics.observe(e.metrics.authorSearches, e.options.clock.Now().Sub(start)) }()

	return slices.Collect(iterutil.Map(e.indexes.authorTrie.SearchPrefix(prefix), e.options.cloner.CloneRecord)), nil
}

// SearchByPrefix searches both prefix indexes and returns the union, with a
// record matching on title and author reported once. Title matches come
// first.
func (e *Engine) SearchByPrefix(_ context.Context, prefix string) ([]*Book, error) {
	start := e.options.clock.Now()
	e.mu.RLock()
	defer e.mu.RUnlock()
	defer func() {
		elapsed := e.options.clock.Now().Sub(start)
		e.metrics.observe(e.metrics.titleSearches, elapsed)
		e.metrics.authorSearches.Inc()
	}()

	merged := iterutil.Union(
		e.indexes.titleTrie.SearchPrefix(prefix),
		e.indexes.authorTrie.SearchPrefix(prefix),
	)
	return slices.Collect(iterutil.Map(merged, e.options.cloner.CloneRecord)), nil
}

// SortedByTitle returns every record ascending by normalized title.
func (e *Engine) SortedByTitle(_ context.Context) ([]*Book, error) {
	start := e.options.clock.Now()
	e.mu.RLock()
	defer e.mu.RUnlock()
	defer func() { e.metrics.observe(nil, e.options.clock.Now().Sub(start)) }()

	books := make([]*Book, 0, e.indexes.titles.Len())
	for _, b := range e.indexes.titles.All() {
		books = append(books, e.options.cloner.CloneRecord(b))
	}
	return books, nil
}

// TitleRange returns every record whose normalized title is within the
// inclusive interval [lo, hi], ascending.
func (e *Engine) TitleRange(_ context.Context, lo, hi string) ([]*Book, error) {
	start := e.options.clock.Now()
	e.mu.RLock()
	defer e.mu.RUnlock()
	defer func() { e.metrics.observe(nil, e.options.clock.Now().Sub(start)) }()

	var books []*Book
	for _, b := range e.indexes.titles.Range(keynorm.Key(lo), keynorm.Key(hi)) {
		books = append(books, e.options.cloner.CloneRecord(b))
	}
	return books, nil
}

// Metrics returns a snapshot of the engine's operation counters.
func (e *Engine) Metrics() MetricsSnapshot {
	return e.metrics.snapshot()
}
