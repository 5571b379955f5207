package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/image/draw"

	"github.com/Lucas-Developer/yunit/internal/apps"
	"github.com/Lucas-Developer/yunit/internal/display"
)

var log = logging.MustGetLogger("screenshot")

var (
	// ErrAppUnknown reports a token whose application id resolved to
	// no registry record.
	ErrAppUnknown = errors.New("screenshot: application unknown")
	// ErrImageUnreadable reports a known application whose backing
	// screenshot file is missing or corrupt.
	ErrImageUnreadable = errors.New("screenshot: image unreadable")
)

// Size is the actual pixel dimensions of a returned screenshot.
type Size struct {
	Width  int
	Height int
}

// Side-stage screenshots scale to a fixed multiple of the grid unit.
const sideStageGridUnits = 48

// Registry resolves application ids to records.
type Registry interface {
	Lookup(id string) (apps.Application, error)
}

// WindowSource supplies the scaling reference for main-stage screenshots.
type WindowSource interface {
	ActiveQuick() (display.Window, bool)
}

// Provider loads an application's stored screenshot and scales it for
// display. All failure paths degrade to an empty image with a typed
// error; callers that only want the silent-degrade behavior can ignore
// the error entirely.
type Provider struct {
	Apps        Registry
	Windows     WindowSource
	BaseDir     string
	GridUnitPx  int
	RightMargin int
}

// Request resolves the token "<appId>/<anything>" to a scaled screenshot.
// The suffix and the requested size hint are ignored; scaled variants are
// never cached, so there is nothing for the hint to select.
func (p *Provider) Request(token string, _ Size) (image.Image, Size, error) {
	appID := token
	if i := strings.IndexByte(token, '/'); i >= 0 {
		appID = token[:i]
	}

	app, err := p.Apps.Lookup(appID)
	if err != nil {
		log.Debugf("app not found: %s", appID)
		return emptyImage(), Size{}, fmt.Errorf("%w: %s", ErrAppUnknown, appID)
	}

	path := filepath.Join(p.BaseDir, "Dash", "graphics", "phone", "screenshots", app.Icon+"@12.png")
	img, err := loadPNG(path)
	if err != nil {
		log.Debugf("failed loading app image %s: %v", path, err)
		return emptyImage(), Size{}, fmt.Errorf("%w: %s", ErrImageUnreadable, path)
	}

	img = p.scaleForStage(img, app.Stage)
	b := img.Bounds()
	size := Size{Width: b.Dx(), Height: b.Dy()}
	log.Debugf("got image of size %dx%d for %s", size.Width, size.Height, appID)
	return img, size, nil
}

func (p *Provider) scaleForStage(img image.Image, stage apps.Stage) image.Image {
	if stage == apps.SideStage {
		return scaleToWidth(img, p.GridUnitPx*sideStageGridUnits)
	}
	if p.Windows == nil {
		log.Debugf("no window source configured, returning unscaled image")
		return img
	}
	win, ok := p.Windows.ActiveQuick()
	if !ok {
		log.Debugf("no quick window available, returning unscaled image")
		return img
	}
	return scaleToWidth(img, win.Width-p.RightMargin)
}

// scaleToWidth resizes img to the given width preserving aspect ratio.
// Nonpositive targets collapse to an empty image, mirroring how toolkit
// scaling treats invalid widths.
func scaleToWidth(img image.Image, width int) image.Image {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 || width <= 0 {
		return emptyImage()
	}
	if width == b.Dx() {
		return img
	}
	height := int(math.Round(float64(b.Dy()) * float64(width) / float64(b.Dx())))
	if height < 1 {
		height = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func emptyImage() image.Image {
	return image.NewNRGBA(image.Rect(0, 0, 0, 0))
}
