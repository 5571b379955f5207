package apps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	t.Parallel()

	data := []byte(`
[[application]]
id = "gallery-app"
name = "Gallery"
icon = "gallery"
stage = "main"

[[application]]
id = "facebook-webapp"
icon = "facebook"
stage = "side"
`)
	reg, err := ParseCatalog(data)
	require.NoError(t, err)

	a, err := reg.Lookup("gallery-app")
	require.NoError(t, err)
	require.Equal(t, "gallery", a.Icon)
	require.Equal(t, MainStage, a.Stage)

	b, err := reg.Lookup("facebook-webapp")
	require.NoError(t, err)
	require.Equal(t, SideStage, b.Stage)
	require.Equal(t, "facebook-webapp", b.Name, "name falls back to id")

	_, err = reg.Lookup("nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestParseCatalogValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
	}{
		{"missing id", "[[application]]\nicon = \"x\"\n"},
		{"missing icon", "[[application]]\nid = \"x\"\n"},
		{"bad stage", "[[application]]\nid = \"x\"\nicon = \"x\"\nstage = \"corner\"\n"},
		{"duplicate id", "[[application]]\nid = \"x\"\nicon = \"a\"\n\n[[application]]\nid = \"x\"\nicon = \"b\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.data))
			require.Error(t, err)
		})
	}
}

func TestLoadCatalogBootstrapsDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "applications.toml")
	reg, err := LoadCatalog(path)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr, "default catalog written to disk")

	a, err := reg.Lookup("camera-app")
	require.NoError(t, err)
	require.Equal(t, "camera", a.Icon)
}

func TestListSortedByName(t *testing.T) {
	t.Parallel()

	reg, err := NewRegistry(
		Application{ID: "z", Name: "Zed", Icon: "z"},
		Application{ID: "a", Name: "Alpha", Icon: "a"},
	)
	require.NoError(t, err)
	all := reg.List()
	require.Len(t, all, 2)
	require.Equal(t, "Alpha", all[0].Name)
}
