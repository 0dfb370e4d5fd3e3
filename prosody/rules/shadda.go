package rules

import (
	"sort"

	"github.com/omars-kassem/arudy/internal/diacritic"
	"github.com/omars-kassem/arudy/internal/grapheme"
)

// reorderShaddaHaraka is rule 2: within each cluster, shadda must precede
// any short-vowel/tanwīn mark. Every cluster has at most two combining marks
// at this stage, so a stable sort suffices.
func reorderShaddaHaraka(s string) string {
	clusters := grapheme.Split(s)
	for i := range clusters {
		marks := clusters[i].Marks
		if len(marks) < 2 {
			continue
		}
		sort.SliceStable(marks, func(a, b int) bool {
			return marks[a] == diacritic.Shadda && marks[b] != diacritic.Shadda
		})
	}
	return grapheme.Join(clusters)
}

// splitShadda is rule 10: a geminated consonant splits into an unvowelled
// copy followed by a vowelled (or tanwīn-bearing, or long-vowel-preceding,
// or bare) copy. The six textual sub-patterns of spec §4.1 step 10 collapse
// to four cluster-level cases here, since grouping marks per-cluster already
// makes "vowel before shadda" and "vowel after shadda" indistinguishable in
// a way that doesn't affect the outcome.
func splitShadda(s string) string {
	clusters := grapheme.Split(s)
	out := make([]grapheme.Cluster, 0, len(clusters)+4)
	for i := 0; i < len(clusters); i++ {
		c := clusters[i]
		if !c.HasShadda() {
			out = append(out, c)
			continue
		}

		var vowel rune
		hasVowel := false
		var tanwin rune
		hasTanwin := false
		for _, m := range c.Marks {
			if diacritic.IsTanwin(m) {
				tanwin, hasTanwin = m, true
			}
			if diacritic.IsShortVowel(m) {
				vowel, hasVowel = m, true
			}
		}

		switch {
		case hasVowel:
			out = append(out,
				grapheme.Cluster{Base: c.Base, Marks: []rune{diacritic.Sukun}},
				grapheme.Cluster{Base: c.Base, Marks: []rune{vowel}},
			)
		case hasTanwin:
			out = append(out,
				grapheme.Cluster{Base: c.Base, Marks: []rune{diacritic.Sukun}},
				grapheme.Cluster{Base: c.Base, Marks: []rune{tanwin}},
			)
		case i+1 < len(clusters) && diacritic.IsLongVowelLetter(clusters[i+1].Base) && len(clusters[i+1].Marks) == 0:
			out = append(out,
				grapheme.Cluster{Base: c.Base, Marks: []rune{diacritic.Sukun}},
				grapheme.Cluster{Base: c.Base, Marks: nil},
			)
		default:
			// Shadda alone: treated as if followed by fatḥa.
			out = append(out,
				grapheme.Cluster{Base: c.Base, Marks: []rune{diacritic.Sukun}},
				grapheme.Cluster{Base: c.Base, Marks: []rune{diacritic.Fatha}},
			)
		}
	}
	return grapheme.Join(out)
}
