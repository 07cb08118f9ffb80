// Package analysis derives annotations from a raw nucleotide sequence:
// normalization, validation, length and GC content, codon translation and
// the reverse complement strand. Everything here is pure and safe to call
// from any number of goroutines.
package analysis

import (
	"strings"
	"unicode"
)

// Normalize strips all whitespace (spaces, tabs, line breaks, carriage
// returns) and uppercases what remains. It never fails; correctness of the
// alphabet is left to Validate.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
