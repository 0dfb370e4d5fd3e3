package rules

import (
	"strings"

	"github.com/omars-kassem/arudy/internal/diacritic"
)

// normalizeTanwinSpellings is rule 7: collapse the four alif/alif-maqṣūra +
// tanwīn-fatḥa spellings to the bare mark.
func normalizeTanwinSpellings(s string) string {
	alef := string(diacritic.Alef)
	maksura := string(diacritic.AlefMaksura)
	fathatan := string(diacritic.Fathatan)
	r := strings.NewReplacer(
		alef+fathatan, fathatan,
		fathatan+alef, fathatan,
		maksura+fathatan, fathatan,
		fathatan+maksura, fathatan,
	)
	return r.Replace(s)
}

// expandTanwin is rule 8: each tanwīn mark becomes its short vowel followed
// by nūn+sukūn.
func expandTanwin(s string) string {
	noonSukun := string(diacritic.Noon) + string(diacritic.Sukun)
	r := strings.NewReplacer(
		string(diacritic.Dammatan), string(diacritic.Damma)+noonSukun,
		string(diacritic.Kasratan), string(diacritic.Kasra)+noonSukun,
		string(diacritic.Fathatan), string(diacritic.Fatha)+noonSukun,
	)
	return r.Replace(s)
}

// dissolveTanwinNunTerminal is rule 19: a word ending in a nūn cluster that
// carries both shadda and sukūn is rewritten to a bare nūn+sukūn, with an
// extra (prev-letter+sukūn) cluster inserted two positions before the end.
func dissolveTanwinNunTerminal(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = dissolveTerminalNoonCluster(w)
	}
	return strings.Join(words, " ")
}

// dissolveTanwinNunPenultimateAlif is rule 20: same rewrite as rule 19, but
// triggered when the nūn cluster is the second-to-last cluster and is
// followed by a lone, unmarked alif — the alif is dropped first.
func dissolveTanwinNunPenultimateAlif(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = dissolveTanwinNunPenultimateAlifWord(w)
	}
	return strings.Join(words, " ")
}
