package sessions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	t.Parallel()

	list := Defaults()
	require.Equal(t, list, Filter(list, ""))
	require.Equal(t, list, Filter(list, "   "))
}

func TestFilterSubstringMatch(t *testing.T) {
	t.Parallel()

	out := Filter(Defaults(), "gno")
	require.Len(t, out, 1)
	require.Equal(t, "gnome", out[0].Key)
}

func TestFilterMatchesKeyToo(t *testing.T) {
	t.Parallel()

	out := Filter(Defaults(), "kde")
	require.Len(t, out, 1)
	require.Equal(t, "Plasma", out[0].Name)
}

func TestFilterFuzzyMatch(t *testing.T) {
	t.Parallel()

	// "gnme" is not a substring of anything but is one edit from "gnome".
	out := Filter(Defaults(), "gnme")
	require.NotEmpty(t, out)
	require.Equal(t, "gnome", out[0].Key)
}

func TestFilterNoMatch(t *testing.T) {
	t.Parallel()

	out := Filter(Defaults(), "xxxxxxxxxxxxxxxx")
	require.Empty(t, out)
}
