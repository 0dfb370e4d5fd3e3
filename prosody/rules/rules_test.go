package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omars-kassem/arudy/internal/diacritic"
	"github.com/omars-kassem/arudy/prosody/replace"
)

func r(runes ...rune) string {
	return string(runes)
}

func TestTerminalHaMimLengthening(t *testing.T) {
	e := New(replace.New(nil))

	// ءُهُ -> ءُهُوْ: last letter haa+damma, preceding letter hamza (no sukun,
	// not a long vowel), no following word -> lengthens.
	word := r(diacritic.Hamza, diacritic.Damma, diacritic.Heh, diacritic.Damma)
	got := e.ApplyNamed(word, "terminal-ha-mim-lengthening")
	want := word + r(diacritic.Waw, diacritic.Sukun)
	require.Equal(t, want, got)
}

func TestTerminalHaMimLengtheningPreventedAfterLongVowel(t *testing.T) {
	e := New(replace.New(nil))
	// Preceding base letter is a bare alif (long vowel, no diacritic): prevented.
	word := r(diacritic.Meem, diacritic.Alef, diacritic.Heh, diacritic.Damma)
	got := e.ApplyNamed(word, "terminal-ha-mim-lengthening")
	require.Equal(t, word, got)
}

func TestTehMarbutaToTeh(t *testing.T) {
	got := tehMarbutaToTeh(r(diacritic.Meem, diacritic.TehMarbuta))
	require.Equal(t, r(diacritic.Meem, diacritic.Teh), got)
}

func TestExpandTanwin(t *testing.T) {
	got := expandTanwin(r(diacritic.Noon, diacritic.Dammatan))
	want := r(diacritic.Noon, diacritic.Damma, diacritic.Noon, diacritic.Sukun)
	require.Equal(t, want, got)
}

func TestNormalizeTanwinSpellings(t *testing.T) {
	got := normalizeTanwinSpellings(r(diacritic.Meem, diacritic.Alef, diacritic.Fathatan))
	want := r(diacritic.Meem, diacritic.Fathatan)
	require.Equal(t, want, got)
}

func TestSplitShaddaBeforeVowel(t *testing.T) {
	in := r(diacritic.Lam, diacritic.Shadda, diacritic.Fatha)
	got := splitShadda(in)
	want := r(diacritic.Lam, diacritic.Sukun, diacritic.Lam, diacritic.Fatha)
	require.Equal(t, want, got)
}

func TestSplitShaddaAlone(t *testing.T) {
	in := r(diacritic.Lam, diacritic.Shadda)
	got := splitShadda(in)
	want := r(diacritic.Lam, diacritic.Sukun, diacritic.Lam, diacritic.Fatha)
	require.Equal(t, want, got)
}

func TestSplitShaddaBeforeLongVowel(t *testing.T) {
	in := r(diacritic.Lam, diacritic.Shadda, diacritic.Alef)
	got := splitShadda(in)
	want := r(diacritic.Lam, diacritic.Sukun, diacritic.Lam, diacritic.Alef)
	require.Equal(t, want, got)
}

func TestReorderShaddaHaraka(t *testing.T) {
	in := r(diacritic.Lam, diacritic.Fatha, diacritic.Shadda)
	got := reorderShaddaHaraka(in)
	want := r(diacritic.Lam, diacritic.Shadda, diacritic.Fatha)
	require.Equal(t, want, got)
}

func TestBareDefiniteArticleMoonLetter(t *testing.T) {
	const qaf = 'ق'
	word := r(diacritic.Alef, diacritic.Lam, qaf)
	got := bareDefiniteArticle(word)
	want := r(diacritic.Lam, diacritic.Sukun, qaf)
	require.Equal(t, want, got)
}

func TestBareDefiniteArticleSunLetter(t *testing.T) {
	word := r(diacritic.Alef, diacritic.Lam, diacritic.Noon)
	got := bareDefiniteArticle(word)
	want := r(diacritic.Noon)
	require.Equal(t, want, got)
}

func TestStripInitialProstheticAlifUnlessLam(t *testing.T) {
	require.Equal(t, r(diacritic.Kasra), stripLeadingAlifUnlessLam(r(diacritic.Alef, diacritic.Kasra)))
	kept := r(diacritic.Alef, diacritic.Lam, diacritic.Noon)
	require.Equal(t, kept, stripLeadingAlifUnlessLam(kept))
}

func TestReduceDoubleSukun(t *testing.T) {
	in := r(diacritic.Lam, diacritic.Sukun) + " " + r(diacritic.Noon, diacritic.Sukun)
	got := reduceDoubleSukun(in)
	// the separating space survives as its own cluster once the first
	// sukūn-bearing letter is dropped.
	require.Equal(t, " "+r(diacritic.Noon, diacritic.Sukun), got)
}

func TestReduceDoubleSukunAdjacentNoSpace(t *testing.T) {
	in := r(diacritic.Lam, diacritic.Sukun, diacritic.Noon, diacritic.Sukun)
	got := reduceDoubleSukun(in)
	require.Equal(t, r(diacritic.Noon, diacritic.Sukun), got)
}

func TestElideCrossWordSukunRequiresWhitespace(t *testing.T) {
	in := r(diacritic.Lam, diacritic.Sukun) + " " + r(diacritic.Noon, diacritic.Sukun)
	got := elideCrossWordSukun(in)
	require.Equal(t, " "+r(diacritic.Noon, diacritic.Sukun), got)

	adjacent := r(diacritic.Lam, diacritic.Sukun, diacritic.Noon, diacritic.Sukun)
	require.Equal(t, adjacent, elideCrossWordSukun(adjacent))
}

func TestProstheticAlifGemination(t *testing.T) {
	in := r(diacritic.Lam, diacritic.Sukun, diacritic.Lam, diacritic.Fatha)
	got := prostheticAlifGemination(in)
	want := r(diacritic.Hamza, diacritic.Fatha) + in
	require.Equal(t, want, got)
}

func TestProstheticAlifSukun(t *testing.T) {
	in := r(diacritic.Lam, diacritic.Sukun)
	got := prostheticAlifSukun(in)
	want := r(diacritic.Hamza, diacritic.Fatha) + in
	require.Equal(t, want, got)
}

func TestDissolveTanwinNunTerminal(t *testing.T) {
	const ba = 'ب'
	word := r(ba, diacritic.Fatha, diacritic.Noon, diacritic.Shadda, diacritic.Sukun)
	got := dissolveTanwinNunTerminal(word)
	want := r(ba, diacritic.Sukun, ba, diacritic.Fatha, diacritic.Noon, diacritic.Sukun)
	require.Equal(t, want, got)
}

func TestElidePluralWawAlif(t *testing.T) {
	const qaf = 'ق'
	word := r(qaf, diacritic.Damma, diacritic.Waw, diacritic.Alef)
	got := elidePluralWawAlif(word)
	want := r(qaf, diacritic.Damma, diacritic.Waw)
	require.Equal(t, want, got)
}

func TestEngineApplyIsIdempotent(t *testing.T) {
	const qaf = 'ق'
	const teh = 'ت' // sun letter, for definite-article assimilation
	e := New(replace.New(nil))
	inputs := []string{
		"",
		r(qaf, diacritic.Fatha, diacritic.Alef),
		r(diacritic.Alef, diacritic.Lam, teh),
		r(diacritic.Meem, diacritic.Noon, diacritic.Fathatan),
	}
	for _, in := range inputs {
		once := e.Apply(in)
		twice := e.Apply(once)
		require.Equal(t, once, twice, "Apply not idempotent for %q", in)
	}
}

func TestEngineNamesMatchesPipelineLength(t *testing.T) {
	e := New(replace.New(nil))
	require.Len(t, e.Names(), 21)
}
