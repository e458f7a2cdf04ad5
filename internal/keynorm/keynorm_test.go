package keynorm_test

import (
	"testing"

	"github.com/karupanerura/catalog-index/internal/keynorm"
)

func TestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii lowercase passthrough", input: "dune", want: "dune"},
		{name: "ascii mixed case", input: "Dune Messiah", want: "dune messiah"},
		{name: "already folded", input: "a tale of two cities", want: "a tale of two cities"},
		{name: "empty", input: "", want: ""},
		{name: "digits and punctuation", input: "Catch-22", want: "catch-22"},
		{name: "case folding beyond ToLower", input: "Straße", want: "strasse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := keynorm.Key(tt.input); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
