package grapheme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omars-kassem/arudy/internal/diacritic"
)

func TestSplitGroupsTrailingMarks(t *testing.T) {
	s := string(diacritic.Lam) + string(diacritic.Kasra) + string(diacritic.Noon) + string(diacritic.Sukun)
	got := Split(s)
	require.Len(t, got, 2)
	require.Equal(t, diacritic.Lam, got[0].Base)
	require.Equal(t, []rune{diacritic.Kasra}, got[0].Marks)
	require.Equal(t, diacritic.Noon, got[1].Base)
	require.True(t, got[1].HasSukun())
}

func TestSplitSkipsLeadingStrayMarks(t *testing.T) {
	s := string(diacritic.Fatha) + string(diacritic.Alef)
	got := Split(s)
	require.Len(t, got, 1)
	require.Equal(t, diacritic.Alef, got[0].Base)
	require.Empty(t, got[0].Marks)
}

func TestSplitTreatsSpaceAsItsOwnCluster(t *testing.T) {
	s := string(diacritic.Lam) + " " + string(diacritic.Noon)
	got := Split(s)
	require.Len(t, got, 3)
	require.Equal(t, rune(' '), got[1].Base)
}

func TestJoinRoundTrips(t *testing.T) {
	s := string(diacritic.Meem) + string(diacritic.Damma) + string(diacritic.Waw) + string(diacritic.Sukun)
	require.Equal(t, s, Join(Split(s)))
}

func TestClusterHasHaraka(t *testing.T) {
	c := Cluster{Base: diacritic.Noon, Marks: []rune{diacritic.Shadda, diacritic.Damma}}
	require.True(t, c.HasHaraka())
	require.True(t, c.HasShadda())
	require.False(t, c.HasSukun())
}
