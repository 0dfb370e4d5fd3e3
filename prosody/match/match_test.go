package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omars-kassem/arudy/prosody/meter"
	"github.com/omars-kassem/arudy/prosody/replace"
	"github.com/omars-kassem/arudy/prosody/rules"
)

func newTestMatcher(rows []meter.Row) *Matcher {
	return New(rules.New(replace.New(nil)), meter.Build(rows))
}

func TestAnalyzeEmptyInput(t *testing.T) {
	m := newTestMatcher(nil)
	got := m.Analyze("   !!! ،،،   ")
	require.Equal(t, Result{}, got)
}

func TestAnalyzeDegenerateKeyWithoutDelimiter(t *testing.T) {
	m := newTestMatcher(nil)
	got := m.Analyze("كلمة بلا فاصل")
	require.Empty(t, got.Matches)
	require.NotEmpty(t, got.Rewritten)
}

func TestAnalyzeNoMatchAgainstEmptyIndex(t *testing.T) {
	m := newTestMatcher(nil)
	got := m.Analyze("قِفَا نَبْكِ *** مِنْ ذِكْرَى حَبِيبٍ")
	require.Empty(t, got.Matches)
}

func TestAnalyzeMatchesCanonicalRowWithIdenticalRewrite(t *testing.T) {
	// Seed the index with the verse's own rewritten form as the canonical
	// line: whatever the engine produces for this verse must match itself.
	engine := rules.New(replace.New(nil))
	verseText := "قِفَا نَبْكِ *** مِنْ ذِكْرَى حَبِيبٍ"

	probe := newTestMatcher(nil)
	rewritten := probe.Analyze(verseText).Rewritten
	require.NotEmpty(t, rewritten)

	idx := meter.Build([]meter.Row{{Name: "بحر الاختبار", Line: rewritten}})
	m := New(engine, idx)

	got := m.Analyze(verseText)
	require.Equal(t, rewritten, got.Rewritten)
	require.Len(t, got.Matches, 1)
	require.Equal(t, "بحر الاختبار", got.Matches[0].Name)

	line, ok := got.LineFor("بحر الاختبار")
	require.True(t, ok)
	require.Equal(t, rewritten, line)

	_, ok = got.LineFor("absent-meter")
	require.False(t, ok)
}

func TestAnalyzeIgnoresSurroundingWhitespace(t *testing.T) {
	engine := rules.New(replace.New(nil))
	verseText := "قِفَا نَبْكِ *** مِنْ ذِكْرَى حَبِيبٍ"

	probe := newTestMatcher(nil)
	rewritten := probe.Analyze(verseText).Rewritten
	idx := meter.Build([]meter.Row{{Name: "بحر الاختبار", Line: rewritten}})
	m := New(engine, idx)

	padded := m.Analyze("   قِفَا نَبْكِ   ***   مِنْ ذِكْرَى حَبِيبٍ   ")
	tight := m.Analyze(verseText)
	require.Equal(t, tight.Matches, padded.Matches)
	require.NotEmpty(t, tight.Matches)
}
