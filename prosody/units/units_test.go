package units

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omars-kassem/arudy/internal/diacritic"
)

func TestExtractClassifiesEachCluster(t *testing.T) {
	s := string(diacritic.Lam) + string(diacritic.Fatha) + // vowelled
		string(diacritic.Meem) + string(diacritic.Sukun) + // sukun
		string(diacritic.Noon) // bare

	got := Extract(s)
	require.Equal(t, []Unit{Vowelled, Sukun, Bare}, got)
}

func TestExtractLengthMatchesBaseCodepointCount(t *testing.T) {
	s := string(diacritic.Fatha) + string(diacritic.Alef) + string(diacritic.Sukun) +
		string(diacritic.Lam) + string(diacritic.Kasra)
	got := Extract(s)
	// one stray leading mark is skipped, leaving two base letters: ا, ل
	require.Len(t, got, 2)
}

func TestEncodeRoundTripsThroughSequence(t *testing.T) {
	seq := Encode([]Unit{Bare, Vowelled, Sukun, Vowelled})
	require.Equal(t, Sequence("BVSV"), seq)
	require.Equal(t, 4, seq.Len())
}

func TestUnitString(t *testing.T) {
	require.Equal(t, "BARE", Bare.String())
	require.Equal(t, "VOWELLED", Vowelled.String())
	require.Equal(t, "SUKUN", Sukun.String())
}
