package apps

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrNotFound is returned when an application id resolves to no record.
var ErrNotFound = errors.New("apps: application not found")

// Stage is the display mode an application window runs in.
type Stage int

const (
	MainStage Stage = iota
	SideStage
)

func (s Stage) String() string {
	if s == SideStage {
		return "side"
	}
	return "main"
}

// ParseStage parses a catalog stage value (case-insensitive).
func ParseStage(s string) (Stage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "main":
		return MainStage, nil
	case "side":
		return SideStage, nil
	default:
		return MainStage, fmt.Errorf("apps: unknown stage %q", s)
	}
}

// Application is one registry record. Icon names the screenshot asset,
// not a file path.
type Application struct {
	ID    string
	Name  string
	Icon  string
	Stage Stage
}

// Registry is a read-only lookup table of applications, keyed by id.
type Registry struct {
	byID  map[string]Application
	order []string
}

type appEntry struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Icon  string `toml:"icon"`
	Stage string `toml:"stage"`
}

type catalogFile struct {
	Application []appEntry `toml:"application"`
}

const defaultCatalogTOML = `# Application catalog for the greeter shell.
# Add [[application]] blocks for every app with a stored screenshot.

[[application]]
id = "dialer-app"
name = "Phone"
icon = "dialer"
stage = "main"

[[application]]
id = "camera-app"
name = "Camera"
icon = "camera"
stage = "main"

[[application]]
id = "gallery-app"
name = "Gallery"
icon = "gallery"
stage = "main"

[[application]]
id = "facebook-webapp"
name = "Facebook"
icon = "facebook"
stage = "side"
`

// LoadCatalog reads the application catalog at path. A missing file is
// created with the default catalog first, matching the config-file
// bootstrap behavior elsewhere in the shell.
func LoadCatalog(path string) (*Registry, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if wErr := os.WriteFile(path, []byte(defaultCatalogTOML), 0o644); wErr != nil {
			return nil, fmt.Errorf("write default catalog: %w", wErr)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses TOML bytes into a registry.
func ParseCatalog(data []byte) (*Registry, error) {
	var cf catalogFile
	if err := toml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	apps := make([]Application, 0, len(cf.Application))
	for i, e := range cf.Application {
		if e.ID == "" {
			return nil, fmt.Errorf("application[%d]: id is required", i)
		}
		if e.Icon == "" {
			return nil, fmt.Errorf("application[%d] %q: icon is required", i, e.ID)
		}
		stage, err := ParseStage(e.Stage)
		if err != nil {
			return nil, fmt.Errorf("application[%d] %q: %w", i, e.ID, err)
		}
		name := e.Name
		if name == "" {
			name = e.ID
		}
		apps = append(apps, Application{ID: e.ID, Name: name, Icon: e.Icon, Stage: stage})
	}
	return NewRegistry(apps...)
}

// NewRegistry builds a registry from records. Duplicate ids are an error:
// an identifier must resolve to exactly one application.
func NewRegistry(apps ...Application) (*Registry, error) {
	r := &Registry{byID: make(map[string]Application, len(apps))}
	for _, a := range apps {
		if _, exists := r.byID[a.ID]; exists {
			return nil, fmt.Errorf("apps: duplicate application id %q", a.ID)
		}
		r.byID[a.ID] = a
		r.order = append(r.order, a.ID)
	}
	return r, nil
}

// Lookup resolves an application id.
func (r *Registry) Lookup(id string) (Application, error) {
	a, ok := r.byID[id]
	if !ok {
		return Application{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return a, nil
}

// List returns all applications sorted by name.
func (r *Registry) List() []Application {
	out := make([]Application, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
