package rules

import (
	"strings"

	"github.com/omars-kassem/arudy/internal/diacritic"
	"github.com/omars-kassem/arudy/internal/grapheme"
)

// terminalHaMimLengthening is rule 1.
func (e *Engine) terminalHaMimLengthening(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		core, suf := stripTrailingPunct(w)
		clusters := grapheme.Split(core)
		if len(clusters) == 0 {
			continue
		}
		last := clusters[len(clusters)-1]

		var add rune
		switch {
		case last.Base == diacritic.Heh && last.HasMark(diacritic.Kasra):
			add = diacritic.Yeh
		case last.Base == diacritic.Heh && last.HasMark(diacritic.Damma):
			add = diacritic.Waw
		case last.Base == diacritic.Meem && last.HasMark(diacritic.Damma):
			add = diacritic.Waw
		default:
			continue
		}

		prevent := false
		if len(clusters) >= 2 {
			prev := clusters[len(clusters)-2]
			if diacritic.IsLongVowelLetter(prev.Base) && len(prev.Marks) == 0 {
				prevent = true
			}
			if prev.HasSukun() {
				prevent = true
			}
		}
		if i+1 < len(words) && startsWithDefiniteArticle(words[i+1]) {
			prevent = true
		}
		if prevent {
			continue
		}
		words[i] = core + string(add) + string(diacritic.Sukun) + suf
	}
	return strings.Join(words, " ")
}

// lengthenTerminal is rule 12: the last vowelled letter of the whole
// hemistich, not a per-word rule.
func lengthenTerminal(s string) string {
	core, suf := stripTrailingPunct(s)
	clusters := grapheme.Split(core)
	if len(clusters) == 0 {
		return s
	}
	last := clusters[len(clusters)-1]
	var add string
	switch {
	case containsRune(last.Marks, diacritic.Damma):
		add = string(diacritic.Waw) + string(diacritic.Sukun)
	case containsRune(last.Marks, diacritic.Kasra):
		add = string(diacritic.Yeh) + string(diacritic.Sukun)
	case containsRune(last.Marks, diacritic.Fatha):
		add = string(diacritic.Alef) + string(diacritic.Sukun)
	default:
		return s
	}
	return core + add + suf
}

// lengthenTerminalHaSecondPass is rule 16: a second, rune-level pass (not
// cluster-level) over words ending in hāʾ+kasra/ḍamma, guarded only by
// whether the rune three positions from the end is a literal sukūn.
func lengthenTerminalHaSecondPass(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		wr := []rune(w)
		n := len(wr)
		if n < 2 || wr[n-2] != diacritic.Heh {
			continue
		}
		var add string
		switch wr[n-1] {
		case diacritic.Kasra:
			add = string(diacritic.Yeh) + string(diacritic.Sukun)
		case diacritic.Damma:
			add = string(diacritic.Waw) + string(diacritic.Sukun)
		default:
			continue
		}
		if n >= 3 && wr[n-3] == diacritic.Sukun {
			continue
		}
		words[i] = w + add
	}
	return strings.Join(words, " ")
}
