package rules

import (
	"github.com/omars-kassem/arudy/internal/diacritic"
	"github.com/omars-kassem/arudy/internal/grapheme"
)

// prostheticPrefix is the hamza+fatḥa ("أَ") prepended by rules 15 and 18.
const prostheticPrefix = string(diacritic.Hamza) + string(diacritic.Fatha)

// prostheticAlifGemination is rule 15: the hemistich begins with a
// consonant+sukūn immediately followed by the same consonant bearing a
// short vowel (a geminated initial consonant written defectively).
func prostheticAlifGemination(s string) string {
	leading, rest := splitLeadingSpaces(s)
	clusters := grapheme.Split(rest)
	if len(clusters) >= 2 &&
		diacritic.IsArabicLetter(clusters[0].Base) && clusters[0].HasSukun() &&
		clusters[1].Base == clusters[0].Base &&
		hasMarkInRange(clusters[1].Marks, diacritic.Fathatan, diacritic.Kasra) {
		return leading + prostheticPrefix + rest
	}
	return s
}

// prostheticAlifSukun is rule 18: the hemistich begins with any
// sukūn-bearing letter.
func prostheticAlifSukun(s string) string {
	leading, rest := splitLeadingSpaces(s)
	clusters := grapheme.Split(rest)
	if len(clusters) >= 1 && isArabicSukunCluster(clusters[0]) {
		return leading + prostheticPrefix + rest
	}
	return s
}

// cleanupLilLal is rule 14: delete a bare alif immediately before "لْل", and
// collapse "لِل" to "لِ" when the second lām carries no mark.
func cleanupLilLal(s string) string {
	clusters := grapheme.Split(s)

	var afterAlifDrop []grapheme.Cluster
	for i := 0; i < len(clusters); i++ {
		c := clusters[i]
		if c.Base == diacritic.Alef && len(c.Marks) == 0 &&
			i+2 < len(clusters) &&
			clusters[i+1].Base == diacritic.Lam && clusters[i+1].HasSukun() &&
			clusters[i+2].Base == diacritic.Lam && containsRune(clusters[i+2].Marks, diacritic.Fatha) {
			continue // drop the alif
		}
		afterAlifDrop = append(afterAlifDrop, c)
	}

	var out []grapheme.Cluster
	for i := 0; i < len(afterAlifDrop); i++ {
		c := afterAlifDrop[i]
		if c.Base == diacritic.Lam && containsRune(c.Marks, diacritic.Kasra) &&
			i+1 < len(afterAlifDrop) && afterAlifDrop[i+1].Base == diacritic.Lam && len(afterAlifDrop[i+1].Marks) == 0 {
			out = append(out, c)
			i++ // skip the collapsed second lām
			continue
		}
		out = append(out, c)
	}
	return grapheme.Join(out)
}
