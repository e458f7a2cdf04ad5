package refresh_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/karupanerura/catalog-index/refresh"
)

type mockRefresher func(context.Context) error

func (f mockRefresher) Refresh(ctx context.Context) error {
	return f(ctx)
}

func TestLaunchBackgroundRefresher(t *testing.T) {
	t.Parallel()

	var callCount uint32
	target := mockRefresher(func(context.Context) error {
		atomic.AddUint32(&callCount, 1)
		return nil
	})

	var bgErrs []error
	var mu sync.Mutex
	refresher := refresh.NewIntervalRefresher(target, 200*time.Millisecond, func(err error) {
		mu.Lock()
		defer mu.Unlock()
		bgErrs = append(bgErrs, err)
	})
	refresher.LaunchBackgroundRefresher(t.Context())

	time.Sleep(100 * time.Millisecond)
	if atomic.LoadUint32(&callCount) != 1 {
		t.Errorf("expect the immediate refresh")
	}

	time.Sleep(200 * time.Millisecond)
	if atomic.LoadUint32(&callCount) != 2 {
		t.Errorf("expect the first interval refresh")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(bgErrs) != 0 {
		t.Errorf("should no background errors, but got: %+v", bgErrs)
	}
}

func TestLaunchBackgroundRefresher_Error(t *testing.T) {
	t.Parallel()

	refreshErr := errors.New("refresh error")
	target := mockRefresher(func(context.Context) error {
		return refreshErr
	})

	var bgErrs []error
	var mu sync.Mutex
	refresher := refresh.NewIntervalRefresher(target, 200*time.Millisecond, func(err error) {
		mu.Lock()
		defer mu.Unlock()
		bgErrs = append(bgErrs, err)
	})
	refresher.LaunchBackgroundRefresher(t.Context())

	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if len(bgErrs) != 1 || !errors.Is(bgErrs[0], refreshErr) {
		t.Errorf("unexpected background errors: %+v", bgErrs)
	}
}

func TestLaunchBackgroundRefresher_StopsOnCancel(t *testing.T) {
	t.Parallel()

	var callCount uint32
	target := mockRefresher(func(context.Context) error {
		atomic.AddUint32(&callCount, 1)
		return nil
	})

	ctx, cancel := context.WithCancel(t.Context())
	refresher := refresh.NewIntervalRefresher(target, 100*time.Millisecond, func(error) {})
	refresher.LaunchBackgroundRefresher(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(250 * time.Millisecond)

	if got := atomic.LoadUint32(&callCount); got != 1 {
		t.Errorf("refresh count after cancel = %d, want 1", got)
	}
}
