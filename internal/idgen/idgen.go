// Package idgen produces the short tokens that tag each commit and mark the
// target file's content.
package idgen

import (
	"strings"

	"github.com/samber/lo"

	"github.com/bashhack/committer/internal/random"
)

// Length is the number of characters in an identifier.
const Length = 6

// Alphabet holds the 36 symbols identifiers are drawn from: a-z then 0-9.
var Alphabet = string(lo.Flatten([][]rune{lo.LowerCaseLettersCharset, lo.NumbersCharset}))

// Generate returns a fresh identifier. Each character is drawn independently
// and uniformly from Alphabet. Repeats across calls are possible.
func Generate(src random.Source) string {
	var b strings.Builder
	b.Grow(Length)

	for i := 0; i < Length; i++ {
		b.WriteByte(Alphabet[src.IntN(len(Alphabet))])
	}
	return b.String()
}

// Valid reports whether id has the identifier shape.
func Valid(id string) bool {
	if len(id) != Length {
		return false
	}
	for i := 0; i < len(id); i++ {
		if !strings.ContainsRune(Alphabet, rune(id[i])) {
			return false
		}
	}
	return true
}
