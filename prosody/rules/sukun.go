package rules

import "github.com/omars-kassem/arudy/internal/grapheme"

// reduceDoubleSukun is rule 13: repeatedly delete the first of any two
// sukūn-bearing letters separated by nothing or by whitespace, until no such
// pair remains.
func reduceDoubleSukun(s string) string {
	for {
		clusters := grapheme.Split(s)
		removedAt := -1
		for i := 0; i < len(clusters); i++ {
			if !isArabicSukunCluster(clusters[i]) {
				continue
			}
			j := i + 1
			for j < len(clusters) && clusters[j].Base == ' ' {
				j++
			}
			if j < len(clusters) && isArabicSukunCluster(clusters[j]) {
				removedAt = i
				break
			}
		}
		if removedAt < 0 {
			return s
		}
		out := make([]grapheme.Cluster, 0, len(clusters)-1)
		out = append(out, clusters[:removedAt]...)
		out = append(out, clusters[removedAt+1:]...)
		s = grapheme.Join(out)
	}
}

// elideCrossWordSukun is rule 17: a single left-to-right pass deleting any
// (letter+sukūn) immediately followed by whitespace and another
// (letter+sukūn) — unlike rule 13, this does not repeat to a fixpoint.
func elideCrossWordSukun(s string) string {
	clusters := grapheme.Split(s)
	out := make([]grapheme.Cluster, 0, len(clusters))
	for i := 0; i < len(clusters); i++ {
		c := clusters[i]
		if isArabicSukunCluster(c) {
			j := i + 1
			for j < len(clusters) && clusters[j].Base == ' ' {
				j++
			}
			if j > i+1 && j < len(clusters) && isArabicSukunCluster(clusters[j]) {
				continue // drop this cluster, keep scanning from i+1
			}
		}
		out = append(out, c)
	}
	return grapheme.Join(out)
}
