package panicutil_test

import (
	"errors"
	"testing"

	"github.com/karupanerura/catalog-index/internal/panicutil"
	"github.com/sourcegraph/conc/panics"
)

func TestCall_NormalReturn(t *testing.T) {
	t.Parallel()

	if err := panicutil.Call(func() error { return nil }); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCall_ErrorReturn(t *testing.T) {
	t.Parallel()

	want := errors.New("source failed")
	if err := panicutil.Call(func() error { return want }); err != want {
		t.Errorf("got %v, want %v", err, want)
	}
}

func TestCall_Panic(t *testing.T) {
	t.Parallel()

	err := panicutil.Call(func() error { panic("boom") })
	if err == nil {
		t.Fatal("expected error from panic")
	}
	var recovered *panics.ErrRecovered
	if !errors.As(err, &recovered) {
		t.Fatalf("expected *panics.ErrRecovered, got %T: %v", err, err)
	}
	if recovered.Value != "boom" {
		t.Errorf("recovered value = %v, want %q", recovered.Value, "boom")
	}
}
