package rules

import (
	"strings"

	"github.com/omars-kassem/arudy/internal/diacritic"
)

// prefixedDefiniteArticlePrefixes lists the seven attached particles that
// carry "ال" as their tail, tried in this order (spec §4.1 rule 4, open
// question: the أَبِال case assumes an explicit fatḥa on the hamza).
var prefixedDefiniteArticlePrefixes = []string{
	"كَال", "فَال", "بِال", "وَال", "وَبِال", "فَبِال", "أَبِال",
}

// prefixedDefiniteArticle is rule 4.
func prefixedDefiniteArticle(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		wr := []rune(w)
		for _, p := range prefixedDefiniteArticlePrefixes {
			pr := []rune(p)
			if len(wr) <= len(pr) || !strings.HasPrefix(w, p) {
				continue
			}
			har := ""
			if len(wr) > 1 && isShortVowelRune(wr[1]) {
				har = string(wr[1])
			}
			after := wr[len(pr):]
			c := after[0]
			switch {
			case diacritic.IsMoonLetter(c):
				words[i] = string(wr[0]) + har + string(diacritic.Lam) + string(diacritic.Sukun) + string(after)
			case diacritic.IsSunLetter(c):
				words[i] = string(wr[0]) + har + string(after)
			}
			break
		}
	}
	return strings.Join(words, " ")
}

// stripLeadingAlifUnlessLam deletes a leading bare alif from s unless it is
// immediately followed by lām.
func stripLeadingAlifUnlessLam(s string) string {
	r := []rune(s)
	if len(r) == 0 || r[0] != diacritic.Alef {
		return s
	}
	if len(r) >= 2 && r[1] == diacritic.Lam {
		return s
	}
	return string(r[1:])
}

// stripInitialProstheticAlif is rule 5. It strips at the hemistich start
// first, then re-derives words from the already-modified string and strips
// at each word start — matching the original two-layer application exactly.
func stripInitialProstheticAlif(s string) string {
	s = stripLeadingAlifUnlessLam(s)
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = stripLeadingAlifUnlessLam(w)
	}
	return strings.Join(words, " ")
}

// bareDefiniteArticle is rule 6: words that still literally begin with "ال"
// after rule 4 has consumed the prefixed cases.
func bareDefiniteArticle(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		wr := []rune(w)
		if len(wr) <= 2 || wr[0] != diacritic.Alef || wr[1] != diacritic.Lam {
			continue
		}
		c := wr[2]
		switch {
		case diacritic.IsMoonLetter(c):
			words[i] = string(diacritic.Lam) + string(diacritic.Sukun) + string(wr[2:])
		case diacritic.IsSunLetter(c):
			words[i] = string(wr[2:])
		}
	}
	return strings.Join(words, " ")
}
