package rules

import (
	"strings"

	"github.com/omars-kassem/arudy/internal/diacritic"
	"github.com/omars-kassem/arudy/internal/grapheme"
)

// annotateLongVowelSukun is rule 11: a letter carrying fatḥa/ḍamma/kasra
// immediately followed by its matching bare long-vowel letter gets a sukūn
// inserted onto that long vowel.
func annotateLongVowelSukun(s string) string {
	clusters := grapheme.Split(s)
	for i := 0; i < len(clusters)-1; i++ {
		c, next := clusters[i], clusters[i+1]
		if len(c.Marks) != 1 || len(next.Marks) != 0 {
			continue
		}
		switch {
		case c.Marks[0] == diacritic.Fatha && (next.Base == diacritic.Alef || next.Base == diacritic.AlefMaksura):
			clusters[i+1].Marks = []rune{diacritic.Sukun}
		case c.Marks[0] == diacritic.Damma && next.Base == diacritic.Waw:
			clusters[i+1].Marks = []rune{diacritic.Sukun}
		case c.Marks[0] == diacritic.Kasra && next.Base == diacritic.Yeh:
			clusters[i+1].Marks = []rune{diacritic.Sukun}
		}
	}
	return grapheme.Join(clusters)
}

// elidePluralWawAlif is rule 21: the silent "plural wāw" alif is dropped
// after a ḍamma-carrying letter + bare wāw, or after a fatḥa-carrying
// letter + wāw+sukūn, at word end.
func elidePluralWawAlif(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		clusters := grapheme.Split(w)
		n := len(clusters)
		if n < 3 {
			continue
		}
		c0, c1, c2 := clusters[n-3], clusters[n-2], clusters[n-1]
		if c2.Base != diacritic.Alef || len(c2.Marks) != 0 {
			continue
		}
		matched := diacritic.IsArabicLetter(c0.Base) && len(c0.Marks) == 1 && c0.Marks[0] == diacritic.Damma &&
			c1.Base == diacritic.Waw && len(c1.Marks) == 0
		matched = matched || (diacritic.IsArabicLetter(c0.Base) && len(c0.Marks) == 1 && c0.Marks[0] == diacritic.Fatha &&
			c1.Base == diacritic.Waw && len(c1.Marks) == 1 && c1.Marks[0] == diacritic.Sukun)
		if matched {
			words[i] = grapheme.Join(clusters[:n-1])
		}
	}
	return strings.Join(words, " ")
}
