package verse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitOnDelimiter(t *testing.T) {
	got := Split("قفا نبك *** بسقط اللوى")
	require.Equal(t, []string{"قفا نبك", "بسقط اللوى"}, got)
}

func TestSplitWithoutDelimiterYieldsOneElement(t *testing.T) {
	got := Split("كلمة بلا فاصل")
	require.Len(t, got, 1)
	require.Equal(t, "كلمة بلا فاصل", got[0])
}

func TestSplitTrimsPieces(t *testing.T) {
	got := Split("  أ  ***  ب  ")
	require.Equal(t, []string{"أ", "ب"}, got)
}

func TestJoinSingleHemistichInsertsNoDelimiter(t *testing.T) {
	require.Equal(t, "أ", Join([]string{"أ"}))
}

func TestJoinTwoHemistichsPadsDelimiter(t *testing.T) {
	require.Equal(t, "أ *** ب", Join([]string{"أ", "ب"}))
}
