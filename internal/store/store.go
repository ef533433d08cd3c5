package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	stateFileName = "reading_positions.json"
	hashBytes     = 8192 // First 8KB for content hash
)

// Position stores the reading position for a single book
type Position struct {
	PageIndex int `json:"page_index"`
}

// Store manages persistent reading positions, keyed by a content hash
// so renamed files keep their place
type Store struct {
	path string
	data map[string]Position
	mu   sync.RWMutex
}

// New creates or loads the store from XDG_STATE_HOME/pageturn/
func New() (*Store, error) {
	dir := stateDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	s := &Store{
		path: filepath.Join(dir, stateFileName),
		data: make(map[string]Position),
	}
	if err := s.load(); err != nil {
		// Non-fatal - start with empty state
		s.data = make(map[string]Position)
	}
	return s, nil
}

// stateDir returns XDG_STATE_HOME/pageturn or ~/.local/state/pageturn
func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "pageturn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "pageturn")
}

// ComputeHash generates a content hash identifying a book file
func ComputeHash(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, hashBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}

	hash := sha256.Sum256(buf[:n])
	return hex.EncodeToString(hash[:16]), nil
}

// PageIndex returns the saved position for a book, or 0 if not found
func (s *Store) PageIndex(hash string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos, ok := s.data[hash]; ok {
		return pos.PageIndex
	}
	return 0
}

// SetPageIndex saves the position for a book
func (s *Store) SetPageIndex(hash string, pageIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[hash] = Position{PageIndex: pageIndex}
	return s.save()
}

// Clear removes the saved position for a book
func (s *Store) Clear(hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, hash)
	return s.save()
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &s.data)
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
