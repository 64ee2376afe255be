// Package bookmarks persists named directory shortcuts as a TOML file.
package bookmarks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// envOverride names the environment variable that overrides the default
// bookmarks file location.
const envOverride = "GITUP_BOOKMARKS"

// Bookmark is one named shortcut to a directory tree (a repository or a
// container of repositories).
type Bookmark struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// Store holds the ordered bookmark list. Order is first-seen and is
// preserved across load/save cycles; updates run in this order.
type Store struct {
	Bookmarks []Bookmark `toml:"bookmark"`
}

// DefaultPath returns the bookmarks file location: $GITUP_BOOKMARKS if
// set, otherwise <user config dir>/gitup/bookmarks.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv(envOverride); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "gitup", "bookmarks.toml"), nil
}

// Load reads and parses a bookmarks file from the given path.
// If the file does not exist it returns an empty store (no error).
func Load(path string) (*Store, error) {
	s := &Store{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading bookmarks: %w", err)
	}

	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing bookmarks: %w", err)
	}

	return s, nil
}

// Save writes the store back to the given path, creating parent
// directories as needed.
func (s *Store) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating bookmarks directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating bookmarks file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("encoding bookmarks: %w", err)
	}

	return nil
}

// Set adds a bookmark, or updates the path of an existing one with the
// same name. Position in the list is kept on update.
func (s *Store) Set(name, path string) {
	for i, b := range s.Bookmarks {
		if b.Name == name {
			s.Bookmarks[i].Path = path
			return
		}
	}
	s.Bookmarks = append(s.Bookmarks, Bookmark{Name: name, Path: path})
}

// Remove deletes the bookmark with the given name.
// Returns true if it existed, false otherwise.
func (s *Store) Remove(name string) bool {
	for i, b := range s.Bookmarks {
		if b.Name == name {
			s.Bookmarks = append(s.Bookmarks[:i], s.Bookmarks[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the bookmark with the given name.
func (s *Store) Get(name string) (Bookmark, bool) {
	for _, b := range s.Bookmarks {
		if b.Name == name {
			return b, true
		}
	}
	return Bookmark{}, false
}

// Names returns all bookmark names in stored order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Bookmarks))
	for _, b := range s.Bookmarks {
		names = append(names, b.Name)
	}
	return names
}
