package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorrupt is returned when the high score file exists but cannot be decoded
var ErrCorrupt = errors.New("corrupt high score file")

type record struct {
	HighScore int `json:"highScore"`
}

// HighScoreStore persists the best score as a small JSON document
type HighScoreStore struct {
	path string
	mu   sync.Mutex
}

// NewHighScoreStore creates a store backed by path
func NewHighScoreStore(path string) *HighScoreStore {
	return &HighScoreStore{path: path}
}

// Path returns the backing file
func (s *HighScoreStore) Path() string {
	return s.path
}

// Load returns the stored high score, 0 when nothing has been saved yet
func (s *HighScoreStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading high score: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("%s: %w", s.path, ErrCorrupt)
	}
	if rec.HighScore < 0 {
		return 0, fmt.Errorf("%s: negative score: %w", s.path, ErrCorrupt)
	}
	return rec.HighScore, nil
}

// SaveHighScore writes the score through a temp file and rename
func (s *HighScoreStore) SaveHighScore(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(record{HighScore: score}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding high score: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing high score: %w", err)
	}
	return nil
}
