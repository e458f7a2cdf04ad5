package catalogindex

import (
	"time"

	"github.com/puzpuzpuz/xsync/v3"
)

// MetricsSnapshot is a read-only view of the engine's operation counters.
// Purely observational; it never affects query results.
type MetricsSnapshot struct {
	// ISBNSearches is the number of direct-index lookups.
	ISBNSearches int64

	// TitleSearches is the number of exact and prefix title searches.
	TitleSearches int64

	// AuthorSearches is the number of author prefix searches.
	AuthorSearches int64

	// Rotations is the number of ordered-index rebalancing rotations.
	Rotations int64

	// Collisions is the number of direct-index collision events.
	Collisions int64

	// TotalSearchTime is the cumulative latency of all search operations.
	TotalSearchTime time.Duration

	// AvgSearchTime is TotalSearchTime divided by the counted searches.
	AvgSearchTime time.Duration
}

type engineMetrics struct {
	isbnSearches   *xsync.Counter
	titleSearches  *xsync.Counter
	authorSearches *xsync.Counter
	rotations      *xsync.Counter
	collisions     *xsync.Counter
	searchNanos    *xsync.Counter
}

func newEngineMetrics() *engineMetrics {
	return &engineMetrics{
		isbnSearches:   xsync.NewCounter(),
		titleSearches:  xsync.NewCounter(),
		authorSearches: xsync.NewCounter(),
		rotations:      xsync.NewCounter(),
		collisions:     xsync.NewCounter(),
		searchNanos:    xsync.NewCounter(),
	}
}

func (m *engineMetrics) observe(counter *xsync.Counter, elapsed time.Duration) {
	if counter != nil {
		counter.Inc()
	}
	m.searchNanos.Add(elapsed.Nanoseconds())
}

func (m *engineMetrics) snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		ISBNSearches:    m.isbnSearches.Value(),
		TitleSearches:   m.titleSearches.Value(),
		AuthorSearches:  m.authorSearches.Value(),
		Rotations:       m.rotations.Value(),
		Collisions:      m.collisions.Value(),
		TotalSearchTime: time.Duration(m.searchNanos.Value()),
	}
	if n := s.ISBNSearches + s.TitleSearches + s.AuthorSearches; n > 0 {
		s.AvgSearchTime = s.TotalSearchTime / time.Duration(n)
	}
	return s
}
