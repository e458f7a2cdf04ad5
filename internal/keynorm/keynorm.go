// Package keynorm normalizes index keys.
//
// All three index structures compare keys in their normalized form, so a
// record inserted as "Dune Messiah" is found under "dune m". Normalization is
// Unicode case folding rather than plain ASCII lowercasing, which also maps
// characters like 'İ' and 'ß' onto a single canonical form.
package keynorm

import "golang.org/x/text/cases"

// Key returns the normalized form of s.
func Key(s string) string {
	// cases.Caser is stateful and not safe for shared use.
	return cases.Fold().String(s)
}
