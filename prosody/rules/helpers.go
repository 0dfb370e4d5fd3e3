package rules

import (
	"strings"

	"github.com/omars-kassem/arudy/internal/diacritic"
	"github.com/omars-kassem/arudy/internal/grapheme"
)

// trailingPunct mirrors the punctuation set the rule engine must look past
// when it inspects a word's or hemistich's final letter, before the text
// cleaner (C2) has had a chance to run. The rule engine runs before C2 in
// the matcher's pipeline (spec §4.6), so several rules must strip and
// reattach punctuation themselves.
var trailingPunct = map[rune]bool{
	':': true, '(': true, ')': true, '-': true, '_': true,
	'؟': true, '!': true, '.': true, '"': true, '“': true, '”': true,
	'[': true, ']': true, '،': true, '؛': true, '*': true, '«': true, '»': true,
}

// stripTrailingPunct splits s into a core and a trailing run of punctuation
// characters, so a rule can inspect the true final letter.
func stripTrailingPunct(s string) (core, suffix string) {
	r := []rune(s)
	i := len(r)
	for i > 0 && trailingPunct[r[i-1]] {
		i--
	}
	return string(r[:i]), string(r[i:])
}

// splitLeadingSpaces separates s into its leading run of space characters
// and the remainder, used by the prosthetic-alif rules that operate on the
// start of the hemistich.
func splitLeadingSpaces(s string) (leading, rest string) {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return s[:i], s[i:]
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

func hasMarkInRange(rs []rune, lo, hi rune) bool {
	for _, x := range rs {
		if x >= lo && x <= hi {
			return true
		}
	}
	return false
}

// startsWithDefiniteArticle reports whether w begins with bare or
// sukūn-marked "ال", used by rule 1's lookahead into the following word.
func startsWithDefiniteArticle(w string) bool {
	return strings.HasPrefix(w, "ال") ||
		strings.HasPrefix(w, string(diacritic.Alef)+string(diacritic.Lam)+string(diacritic.Sukun))
}

// isShortVowelRune reports whether r is fatḥa, ḍamma, or kasra — the set
// Python's original prefix rule calls "حركة" ('َُِ').
func isShortVowelRune(r rune) bool { return diacritic.IsShortVowel(r) }

func isArabicSukunCluster(c grapheme.Cluster) bool {
	return diacritic.IsArabicLetter(c.Base) && c.HasSukun()
}
