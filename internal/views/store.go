// Package views persists named list descriptors so operators can reopen and
// share them later.
package views

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// SavedView is a named list descriptor. Query holds the encoded location
// query exactly as the list codec produced it.
type SavedView struct {
	Name    string    `json:"name"`
	Query   string    `json:"query"`
	SavedAt time.Time `json:"saved_at"`
}

// Store keeps saved views in a single JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// List returns all saved views sorted by name. A missing or empty file is an
// empty store.
func (s *Store) List() ([]SavedView, error) {
	views, err := s.load()
	if err != nil {
		return nil, err
	}

	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

// Get looks a view up by name.
func (s *Store) Get(name string) (*SavedView, error) {
	views, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, view := range views {
		if view.Name == name {
			return &view, nil
		}
	}

	return nil, fmt.Errorf("view %q is not saved", name)
}

// Save upserts a view under its name and stamps the save time.
func (s *Store) Save(view SavedView) error {
	view.Name = strings.TrimSpace(view.Name)
	if view.Name == "" {
		return fmt.Errorf("view name is required")
	}
	view.SavedAt = time.Now().UTC()

	views, err := s.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range views {
		if views[i].Name == view.Name {
			views[i] = view
			replaced = true
			break
		}
	}
	if !replaced {
		views = append(views, view)
	}

	return s.store(views)
}

// Delete removes a view by name.
func (s *Store) Delete(name string) error {
	views, err := s.load()
	if err != nil {
		return err
	}

	kept := views[:0]
	for _, view := range views {
		if view.Name != name {
			kept = append(kept, view)
		}
	}
	if len(kept) == len(views) {
		return fmt.Errorf("view %q is not saved", name)
	}

	return s.store(kept)
}

func (s *Store) load() ([]SavedView, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Size() == 0 {
		return nil, nil
	}

	var views []SavedView
	if err := json.NewDecoder(file).Decode(&views); err != nil {
		return nil, fmt.Errorf("decoding views file %q: %w", s.path, err)
	}
	return views, nil
}

func (s *Store) store(views []SavedView) error {
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}
