// Package grapheme implements the base-letter-plus-combining-marks iterator
// the rule engine and unit extractor are built on. It intentionally does not
// use any general-purpose Unicode grapheme segmentation: the rule engine's
// context predicates care about the Arabic short-vowel/sukūn/shadda marks
// specifically, not about grapheme clusters in general.
package grapheme

import (
	"strings"

	"github.com/omars-kassem/arudy/internal/diacritic"
)

// Cluster is a base code point together with its contiguous trailing
// combining marks, in original order.
type Cluster struct {
	Base  rune
	Marks []rune
}

// HasMark reports whether m is among the cluster's combining marks.
func (c Cluster) HasMark(m rune) bool {
	for _, x := range c.Marks {
		if x == m {
			return true
		}
	}
	return false
}

// HasSukun reports whether the cluster carries a sukūn.
func (c Cluster) HasSukun() bool { return c.HasMark(diacritic.Sukun) }

// HasShadda reports whether the cluster carries a shadda.
func (c Cluster) HasShadda() bool { return c.HasMark(diacritic.Shadda) }

// HasHaraka reports whether the cluster carries any short-vowel, tanwīn, or
// shadda mark.
func (c Cluster) HasHaraka() bool {
	for _, m := range c.Marks {
		if diacritic.IsHaraka(m) {
			return true
		}
	}
	return false
}

// String renders the cluster back to text.
func (c Cluster) String() string {
	var b strings.Builder
	b.WriteRune(c.Base)
	for _, m := range c.Marks {
		b.WriteRune(m)
	}
	return b.String()
}

// Split walks s left to right, grouping each base code point with its
// contiguous trailing combining marks. Any combining marks with no
// preceding base code point (malformed input) are skipped rather than
// producing a marks-only cluster.
func Split(s string) []Cluster {
	runes := []rune(s)
	i := 0
	for i < len(runes) && diacritic.IsCombiningMark(runes[i]) {
		i++
	}
	out := make([]Cluster, 0, len(runes)-i)
	for i < len(runes) {
		base := runes[i]
		i++
		var marks []rune
		for i < len(runes) && diacritic.IsCombiningMark(runes[i]) {
			marks = append(marks, runes[i])
			i++
		}
		out = append(out, Cluster{Base: base, Marks: marks})
	}
	return out
}

// Join renders a cluster sequence back to text.
func Join(cs []Cluster) string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.String())
	}
	return b.String()
}
