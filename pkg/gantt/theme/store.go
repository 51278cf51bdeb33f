package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/quickgantt/quickgantt-go/pkg/gantt/models"
)

const (
	settingsDir = ".quickgantt"
	themesFile  = "color_themes.json"
)

// Store persists named themes as JSON under the user's home directory.
type Store struct {
	// Path is the themes file location.
	Path string
	// Themes maps theme name to its saved colors.
	Themes map[string]models.Theme

	dirty bool
}

// NewStore opens the default theme store, loading any existing themes
// file. A missing file is not an error; the store starts empty.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(filepath.Join(home, settingsDir, themesFile))
}

// NewStoreAt opens a theme store backed by the given file path.
func NewStoreAt(path string) (*Store, error) {
	s := &Store{
		Path:   path,
		Themes: make(map[string]models.Theme),
	}
	if _, err := os.Stat(path); err == nil {
		if err := s.load(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Store) load() error {
	f, err := os.Open(s.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(&s.Themes)
}

// Save writes the themes file if anything changed since loading.
func (s *Store) Save() error {
	if !s.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Themes, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Get returns the named theme.
func (s *Store) Get(name string) (models.Theme, error) {
	t, ok := s.Themes[name]
	if !ok {
		return models.Theme{}, fmt.Errorf("theme %q not found", name)
	}
	return t, nil
}

// Put stores a theme under the given name, replacing any existing one.
func (s *Store) Put(name string, t models.Theme) {
	s.Themes[name] = t
	s.dirty = true
}

// Delete removes the named theme. Deleting an absent theme is a no-op.
func (s *Store) Delete(name string) {
	if _, ok := s.Themes[name]; ok {
		delete(s.Themes, name)
		s.dirty = true
	}
}

// List returns the saved theme names in sorted order.
func (s *Store) List() []string {
	names := make([]string, 0, len(s.Themes))
	for name := range s.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
