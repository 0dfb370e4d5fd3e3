// Package rules implements the rule engine (C3): the ordered, 21-step
// phonological rewrite pipeline that turns human-typed, partially-diacritized
// Arabic verse text into scansion-ready text. See spec §4.1 for the
// authoritative description of every step; this package's rule functions are
// named after, and appear in, that same order.
package rules

import (
	"golang.org/x/text/unicode/norm"

	"github.com/omars-kassem/arudy/prosody/replace"
)

// Rule is one named, pure string→string transformation in the pipeline.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Engine holds the ordered rule list and the replacement table the literal
// replacement step (rule 3) is parameterized by. It has no other state, and
// is safe for concurrent use by multiple goroutines: Apply never mutates the
// Engine or the Table it was built with.
type Engine struct {
	table replace.Table
	rules []Rule
}

// New builds an Engine bound to table. The rule order below is the
// contract: spec §4.1 states it "must match exactly."
func New(table replace.Table) *Engine {
	e := &Engine{table: table}
	e.rules = []Rule{
		{"terminal-ha-mim-lengthening", e.terminalHaMimLengthening},
		{"shadda-haraka-reorder", reorderShaddaHaraka},
		{"literal-replacements", e.literalReplacements},
		{"definite-article-with-prefix", prefixedDefiniteArticle},
		{"initial-prosthetic-alif-stripping", stripInitialProstheticAlif},
		{"bare-definite-article", bareDefiniteArticle},
		{"tanwin-normalization", normalizeTanwinSpellings},
		{"tanwin-expansion", expandTanwin},
		{"taa-marbuta", tehMarbutaToTeh},
		{"shadda-splitting", splitShadda},
		{"long-vowel-sukun-annotation", annotateLongVowelSukun},
		{"terminal-lengthening", lengthenTerminal},
		{"double-sukun-reduction", reduceDoubleSukun},
		{"lil-lal-cleanup", cleanupLilLal},
		{"initial-prosthetic-alif-gemination", prostheticAlifGemination},
		{"terminal-ha-lengthening-second-pass", lengthenTerminalHaSecondPass},
		{"cross-word-sukun-elision", elideCrossWordSukun},
		{"initial-prosthetic-alif-sukun", prostheticAlifSukun},
		{"tanwin-nun-dissolution-terminal", dissolveTanwinNunTerminal},
		{"tanwin-nun-dissolution-penultimate-alif", dissolveTanwinNunPenultimateAlif},
		{"plural-waw-alif-elision", elidePluralWawAlif},
	}
	return e
}

// Apply runs every rule in order over s, after normalizing s to canonical
// composed form once (spec §9: normalize at rewriter start, not per-rule).
// It is a pure function of s and the Engine's table: same inputs, same
// output, no matter how many times it is called.
func (e *Engine) Apply(s string) string {
	s = norm.NFC.String(s)
	for _, r := range e.rules {
		s = r.Apply(s)
	}
	return s
}

// ApplyNamed runs only the named subset of rules, in pipeline order,
// skipping normalization. This is the testability hook spec §9 calls for:
// it lets a test exercise step N in isolation against a hand-built input
// already in the form step N-1 would have produced.
func (e *Engine) ApplyNamed(s string, names ...string) string {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	for _, r := range e.rules {
		if want[r.Name] {
			s = r.Apply(s)
		}
	}
	return s
}

// Names returns the ordered list of rule names, for diagnostics and tests
// that want to assert on pipeline shape without hardcoding the count twice.
func (e *Engine) Names() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}
	return names
}
