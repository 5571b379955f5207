package display

import "sync"

// Backend identifies a window's render backend.
type Backend string

const (
	// BackendQuick marks scene-graph windows; only these are valid
	// scaling references for main-stage screenshots.
	BackendQuick Backend = "quick"
	BackendBasic Backend = "basic"
)

// Window is one top-level window of the running shell.
type Window struct {
	ID      string
	Width   int
	Height  int
	Backend Backend
}

// Registry tracks the shell's top-level windows. Lookups are
// deterministic: the explicitly activated quick window wins, otherwise
// the most recently added quick window.
type Registry struct {
	mu      sync.RWMutex
	windows []Window
	active  string
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a window. Re-adding an id replaces the record in place.
func (r *Registry) Add(w Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.windows {
		if r.windows[i].ID == w.ID {
			r.windows[i] = w
			return
		}
	}
	r.windows = append(r.windows, w)
}

// Resize updates a window's dimensions. Unknown ids are ignored.
func (r *Registry) Resize(id string, width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.windows {
		if r.windows[i].ID == id {
			r.windows[i].Width = width
			r.windows[i].Height = height
			return
		}
	}
}

// Activate marks a window as the active scaling reference.
func (r *Registry) Activate(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = id
}

// ActiveQuick returns the active quick window, falling back to the most
// recently added quick window. The second return is false when no quick
// window exists.
func (r *Registry) ActiveQuick() (Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.active != "" {
		for _, w := range r.windows {
			if w.ID == r.active && w.Backend == BackendQuick {
				return w, true
			}
		}
	}
	for i := len(r.windows) - 1; i >= 0; i-- {
		if r.windows[i].Backend == BackendQuick {
			return r.windows[i], true
		}
	}
	return Window{}, false
}

// Len reports the number of registered windows.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.windows)
}
