package sessions

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Session is one selectable login option shown before authentication.
type Session struct {
	Key  string `toml:"key"`
	Name string `toml:"name"`
	Icon string `toml:"icon"`
	Exec string `toml:"exec"`
}

// Load reads all session entry files (*.toml) under dir, sorted by
// display name. A missing or empty directory yields the built-in
// defaults so the greeter always has something to offer.
func Load(dir string) ([]Session, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("read sessions dir: %w", err)
	}

	var out []Session
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".toml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read session entry %s: %w", entry.Name(), err)
		}
		s, err := parseEntry(data)
		if err != nil {
			return nil, fmt.Errorf("session entry %s: %w", entry.Name(), err)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return Defaults(), nil
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func parseEntry(data []byte) (Session, error) {
	var s Session
	if err := toml.Unmarshal(data, &s); err != nil {
		return Session{}, err
	}
	if s.Key == "" {
		return Session{}, fmt.Errorf("key is required")
	}
	if s.Name == "" {
		return Session{}, fmt.Errorf("name is required")
	}
	return s, nil
}

// Defaults returns the built-in session list.
func Defaults() []Session {
	return []Session{
		{Key: "gnome", Name: "GNOME", Icon: "gnome_badge", Exec: "gnome-session"},
		{Key: "kde", Name: "Plasma", Icon: "kde_badge", Exec: "startplasma-wayland"},
		{Key: "recovery", Name: "Recovery Console", Icon: "recovery_console_badge", Exec: "/bin/sh"},
		{Key: "yunit", Name: "Yunit", Icon: "yunit_badge", Exec: "yunit8"},
	}
}

// Find returns the session with the given key, or false.
func Find(list []Session, key string) (Session, bool) {
	for _, s := range list {
		if s.Key == key {
			return s, true
		}
	}
	return Session{}, false
}
