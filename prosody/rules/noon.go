package rules

import (
	"github.com/omars-kassem/arudy/internal/diacritic"
	"github.com/omars-kassem/arudy/internal/grapheme"
)

// rewriteTerminalNoon performs the shared rewrite of rules 19/20: the last
// cluster becomes a bare nūn+sukūn, and a (prev-letter+sukūn) cluster is
// inserted immediately before what was the second-to-last cluster.
func rewriteTerminalNoon(clusters []grapheme.Cluster) []grapheme.Cluster {
	n := len(clusters)
	clusters[n-1] = grapheme.Cluster{Base: diacritic.Noon, Marks: []rune{diacritic.Sukun}}
	if n < 2 {
		return clusters
	}
	prevBase := clusters[n-2].Base
	inserted := grapheme.Cluster{Base: prevBase, Marks: []rune{diacritic.Sukun}}
	out := make([]grapheme.Cluster, 0, n+1)
	out = append(out, clusters[:n-2]...)
	out = append(out, inserted)
	out = append(out, clusters[n-2:]...)
	return out
}

func dissolveTerminalNoonCluster(w string) string {
	clusters := grapheme.Split(w)
	n := len(clusters)
	if n == 0 {
		return w
	}
	last := clusters[n-1]
	if last.Base != diacritic.Noon || !last.HasShadda() || !last.HasSukun() {
		return w
	}
	return grapheme.Join(rewriteTerminalNoon(clusters))
}

func dissolveTanwinNunPenultimateAlifWord(w string) string {
	clusters := grapheme.Split(w)
	n := len(clusters)
	if n < 2 {
		return w
	}
	noonCluster, lastCluster := clusters[n-2], clusters[n-1]
	if noonCluster.Base != diacritic.Noon || !noonCluster.HasShadda() || !noonCluster.HasSukun() {
		return w
	}
	if lastCluster.Base != diacritic.Alef || len(lastCluster.Marks) != 0 {
		return w
	}
	clusters = clusters[:n-1] // drop the lone alif
	return grapheme.Join(rewriteTerminalNoon(clusters))
}
