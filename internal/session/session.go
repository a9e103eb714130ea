// Package session remembers the focused page per pages directory.
// State is stored in ~/.local/state/pageswipe/session.toml.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Session is the on-disk session document.
type Session struct {
	Focus map[string]int `toml:"focus"` // absolute pages dir -> 1-based index
}

// Load reads a session file. A missing file yields an empty session.
func Load(path string) (Session, error) {
	s := Session{Focus: map[string]int{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read session: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Session{Focus: map[string]int{}}, fmt.Errorf("parse session: %w", err)
	}
	if s.Focus == nil {
		s.Focus = map[string]int{}
	}
	return s, nil
}

// Save writes a session file, creating directories as needed.
func Save(path string, s Session) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("session path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Store tracks the focus for one pages directory and persists changes.
type Store struct {
	mu   sync.Mutex
	path string
	dir  string
	data Session
}

// Open loads the session at path and scopes it to pagesDir
func Open(path, pagesDir string) (*Store, error) {
	abs, err := filepath.Abs(pagesDir)
	if err != nil {
		return nil, fmt.Errorf("resolve pages dir: %w", err)
	}
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, dir: abs, data: data}, nil
}

// Path returns the session file location
func (s *Store) Path() string {
	return s.path
}

// Focus returns the remembered page, or 0 when there is none
func (s *Store) Focus() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Focus[s.dir]
}

// Record stores index as the focused page and writes the file
func (s *Store) Record(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.Focus[s.dir] == index {
		return nil
	}
	s.data.Focus[s.dir] = index
	return Save(s.path, s.data)
}
