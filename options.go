package catalogindex

import "github.com/karupanerura/catalog-index/hashtable"

type engineOptions struct {
	logger          Logger
	clock           Clock
	cloner          RecordCloner[*Book]
	directIndexSize int
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		logger:          NopLogger{},
		clock:           SystemClock,
		cloner:          DefaultRecordCloner[*Book](),
		directIndexSize: hashtable.DefaultSize,
	}
}

// EngineOption configures an Engine.
type EngineOption interface {
	apply(*engineOptions)
}

type engineOptionFunc func(*engineOptions)

func (f engineOptionFunc) apply(o *engineOptions) {
	f(o)
}

// WithLogger sets the logger the engine reports through.
func WithLogger(logger Logger) EngineOption {
	return engineOptionFunc(func(o *engineOptions) {
		o.logger = logger
	})
}

// WithClock sets the clock used for latency measurement.
func WithClock(clock Clock) EngineOption {
	return engineOptionFunc(func(o *engineOptions) {
		o.clock = clock
	})
}

// WithRecordCloner sets the cloner applied to records crossing the engine
// boundary. NopRecordCloner is an option when callers are trusted never to
// mutate returned records.
func WithRecordCloner(cloner RecordCloner[*Book]) EngineOption {
	return engineOptionFunc(func(o *engineOptions) {
		o.cloner = cloner
	})
}

// WithDirectIndexSize sets the bucket count of the direct (ISBN) index.
// The index never resizes afterwards.
func WithDirectIndexSize(size int) EngineOption {
	return engineOptionFunc(func(o *engineOptions) {
		o.directIndexSize = size
	})
}
