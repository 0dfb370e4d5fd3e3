package process

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineDegenerateWithoutDelimiter(t *testing.T) {
	key := Line("كلمة بلا فاصل")
	require.Len(t, key, 1)
	require.False(t, key.Valid())
}

func TestLineValidWithDelimiter(t *testing.T) {
	key := Line("فَعُولُنْ *** مَفَاعِيلُنْ")
	require.True(t, key.Valid())
	require.Len(t, key, 2)
}

func TestMapKeyIsStableForEqualKeys(t *testing.T) {
	a := Line("فَعُولُنْ *** مَفَاعِيلُنْ")
	b := Line("فَعُولُنْ *** مَفَاعِيلُنْ")
	require.Equal(t, a.MapKey(), b.MapKey())
}

func TestMapKeyDiffersForDifferentHemistichSplit(t *testing.T) {
	a := Line("فَعُولُنْ *** مَفَاعِيلُنْ")
	b := Line("فَعُو *** لُنْمَفَاعِيلُنْ")
	require.NotEqual(t, a.MapKey(), b.MapKey())
}

func TestLineIgnoresPunctuationAndTatweel(t *testing.T) {
	a := Line("قِفَا، نَبْكِ! *** بِسِقْطِ اللِّوَى")
	b := Line("قِـفَا نَبْـكِ *** بِسِقْطِ اللِّوَى")
	require.Equal(t, a.MapKey(), b.MapKey())
}
