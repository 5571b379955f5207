package screenshot

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lucas-Developer/yunit/internal/apps"
	"github.com/Lucas-Developer/yunit/internal/display"
)

// writeScreenshot drops a PNG of the given dimensions where the provider
// expects to find the icon's screenshot.
func writeScreenshot(t *testing.T, baseDir, icon string, w, h int) {
	t.Helper()
	dir := filepath.Join(baseDir, "Dash", "graphics", "phone", "screenshots")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, icon+"@12.png"))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func newProvider(t *testing.T, baseDir string, gridUnitPx, rightMargin int, windows *display.Registry) *Provider {
	t.Helper()
	reg, err := apps.NewRegistry(
		apps.Application{ID: "gallery-app", Name: "Gallery", Icon: "gallery", Stage: apps.MainStage},
		apps.Application{ID: "facebook-webapp", Name: "Facebook", Icon: "facebook", Stage: apps.SideStage},
	)
	require.NoError(t, err)
	if windows == nil {
		windows = display.NewRegistry()
	}
	return &Provider{
		Apps:        reg,
		Windows:     windows,
		BaseDir:     baseDir,
		GridUnitPx:  gridUnitPx,
		RightMargin: rightMargin,
	}
}

func TestRequestUnknownAppReturnsEmpty(t *testing.T) {
	t.Parallel()

	p := newProvider(t, t.TempDir(), 8, 0, nil)
	img, size, err := p.Request("no-such-app/anything", Size{})
	require.ErrorIs(t, err, ErrAppUnknown)
	require.Equal(t, Size{}, size)
	require.Equal(t, 0, img.Bounds().Dx())
	require.Equal(t, 0, img.Bounds().Dy())
}

func TestRequestMissingFileReturnsEmpty(t *testing.T) {
	t.Parallel()

	p := newProvider(t, t.TempDir(), 8, 0, nil)
	img, size, err := p.Request("gallery-app/screenshot", Size{})
	require.ErrorIs(t, err, ErrImageUnreadable)
	require.Equal(t, Size{}, size)
	require.Equal(t, 0, img.Bounds().Dx())
}

func TestRequestCorruptFileReturnsEmpty(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	dir := filepath.Join(baseDir, "Dash", "graphics", "phone", "screenshots")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gallery@12.png"), []byte("not a png"), 0o644))

	p := newProvider(t, baseDir, 8, 0, nil)
	_, size, err := p.Request("gallery-app/screenshot", Size{})
	require.ErrorIs(t, err, ErrImageUnreadable)
	require.Equal(t, Size{}, size)
}

func TestRequestSideStageScalesToGridUnits(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	writeScreenshot(t, baseDir, "facebook", 96, 48)

	p := newProvider(t, baseDir, 8, 0, nil)
	img, size, err := p.Request("facebook-webapp/screenshot", Size{})
	require.NoError(t, err)
	require.Equal(t, 384, size.Width, "8px grid unit x 48")
	require.Equal(t, 192, size.Height, "aspect ratio preserved")
	require.Equal(t, size.Width, img.Bounds().Dx())
}

func TestRequestMainStageScalesToWindowMinusMargin(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	writeScreenshot(t, baseDir, "gallery", 160, 90)

	windows := display.NewRegistry()
	windows.Add(display.Window{ID: "shell", Width: 800, Height: 600, Backend: display.BackendQuick})

	p := newProvider(t, baseDir, 8, 100, windows)
	_, size, err := p.Request("gallery-app/screenshot", Size{})
	require.NoError(t, err)
	require.Equal(t, 700, size.Width)
	require.Equal(t, 394, size.Height, "90 * 700/160 rounded")
}

func TestRequestMainStageWithoutQuickWindowStaysUnscaled(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	writeScreenshot(t, baseDir, "gallery", 160, 90)

	windows := display.NewRegistry()
	windows.Add(display.Window{ID: "splash", Width: 640, Backend: display.BackendBasic})

	p := newProvider(t, baseDir, 8, 100, windows)
	_, size, err := p.Request("gallery-app/screenshot", Size{})
	require.NoError(t, err)
	require.Equal(t, Size{Width: 160, Height: 90}, size)
}

func TestRequestMainStageWithoutWindowSourceStaysUnscaled(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	writeScreenshot(t, baseDir, "gallery", 160, 90)

	reg, err := apps.NewRegistry(
		apps.Application{ID: "gallery-app", Name: "Gallery", Icon: "gallery", Stage: apps.MainStage},
	)
	require.NoError(t, err)

	p := &Provider{Apps: reg, BaseDir: baseDir, GridUnitPx: 8, RightMargin: 100}
	_, size, err := p.Request("gallery-app/screenshot", Size{})
	require.NoError(t, err)
	require.Equal(t, Size{Width: 160, Height: 90}, size)
}

func TestRequestTokenWithoutSuffix(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	writeScreenshot(t, baseDir, "facebook", 96, 48)

	p := newProvider(t, baseDir, 8, 0, nil)
	_, size, err := p.Request("facebook-webapp", Size{})
	require.NoError(t, err)
	require.Equal(t, 384, size.Width)
}

func TestRequestIgnoresRequestedSizeHint(t *testing.T) {
	t.Parallel()

	baseDir := t.TempDir()
	writeScreenshot(t, baseDir, "facebook", 96, 48)

	p := newProvider(t, baseDir, 8, 0, nil)
	_, size, err := p.Request("facebook-webapp/x", Size{Width: 10, Height: 10})
	require.NoError(t, err)
	require.Equal(t, 384, size.Width)
}
