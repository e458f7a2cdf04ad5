package panicutil

import (
	"github.com/sourcegraph/conc/panics"
)

// Call runs f and recovers any panic it raises, returning it as an error.
// The engine wraps every call into foreign CatalogSource code with it, so a
// panicking store implementation cannot take down the process while the
// engine holds its lock.
// If f returns normally, Call returns f's error value. If f panics, Call
// returns the recovered panic value as a *panics.ErrRecovered.
func Call(f func() error) error {
	var err error
	if r := panics.Try(func() { err = f() }); r != nil {
		return r.AsError()
	}
	return err
}
