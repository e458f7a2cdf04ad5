// Package refresh provides background refreshing for catalog indexes.
package refresh

import (
	"context"
	"time"

	catalogindex "github.com/karupanerura/catalog-index"
)

// IntervalRefresher is a background task that rebuilds a Refresher's derived
// state at a fixed interval. Pointing it at an Engine keeps the in-memory
// indexes converging on the authoritative store even when records change
// behind the engine's back.
type IntervalRefresher struct {
	target            catalogindex.Refresher
	interval          time.Duration
	onBackgroundError func(error)
}

// NewIntervalRefresher creates a new IntervalRefresher.
// Errors from background refreshes are delivered to onBackgroundError; the
// callback must be non-nil.
func NewIntervalRefresher(target catalogindex.Refresher, interval time.Duration, onBackgroundError func(error)) *IntervalRefresher {
	return &IntervalRefresher{
		target:            target,
		interval:          interval,
		onBackgroundError: onBackgroundError,
	}
}

// LaunchBackgroundRefresher starts the background task. It refreshes once
// immediately, then on every interval tick until the context is canceled.
func (r *IntervalRefresher) LaunchBackgroundRefresher(ctx context.Context) {
	go r.poll(ctx)
}

// poll refreshes the target at the fixed interval.
func (r *IntervalRefresher) poll(ctx context.Context) {
	if err := r.target.Refresh(ctx); err != nil {
		r.onBackgroundError(err)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if err := r.target.Refresh(ctx); err != nil {
				r.onBackgroundError(err)
			}
		}
	}
}
