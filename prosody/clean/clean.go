// Package clean implements the text cleaner (C2): punctuation and tatweel
// removal plus whitespace collapsing.
package clean

import (
	"strings"

	"github.com/omars-kassem/arudy/internal/diacritic"
)

var stripSet = map[rune]bool{
	':': true, '(': true, ')': true, '-': true, '_': true,
	'؟': true, '!': true, '.': true, '"': true, '“': true, '”': true,
	'[': true, ']': true, '،': true, '؛': true, '*': true, '«': true, '»': true,
}

// Clean strips the fixed punctuation set and all tatweel, then collapses
// whitespace runs to single spaces and trims the ends. Idempotent.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if stripSet[r] || r == diacritic.Tatweel {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
