package display

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActiveQuickPrefersActivated(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add(Window{ID: "shell", Width: 800, Height: 600, Backend: BackendQuick})
	r.Add(Window{ID: "osk", Width: 400, Height: 200, Backend: BackendQuick})
	r.Activate("shell")

	w, ok := r.ActiveQuick()
	require.True(t, ok)
	require.Equal(t, "shell", w.ID)
	require.Equal(t, 800, w.Width)
}

func TestActiveQuickFallsBackToMostRecent(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add(Window{ID: "splash", Width: 640, Backend: BackendBasic})
	r.Add(Window{ID: "a", Width: 800, Backend: BackendQuick})
	r.Add(Window{ID: "b", Width: 1024, Backend: BackendQuick})

	w, ok := r.ActiveQuick()
	require.True(t, ok)
	require.Equal(t, "b", w.ID, "without explicit activation the newest quick window wins")
}

func TestActiveQuickIgnoresNonQuickActive(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add(Window{ID: "splash", Width: 640, Backend: BackendBasic})
	r.Activate("splash")

	_, ok := r.ActiveQuick()
	require.False(t, ok)
}

func TestResizeAndReplace(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Add(Window{ID: "shell", Width: 800, Height: 600, Backend: BackendQuick})
	r.Resize("shell", 1280, 720)
	r.Add(Window{ID: "shell", Width: 1920, Height: 1080, Backend: BackendQuick})
	require.Equal(t, 1, r.Len())

	w, ok := r.ActiveQuick()
	require.True(t, ok)
	require.Equal(t, 1920, w.Width)
}
