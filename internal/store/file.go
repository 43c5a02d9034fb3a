package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wayfarer-app/wayfarer/internal/domain"
)

// FileStore persists the state as a single pretty-printed JSON file.
// Saves are write-new-then-rename: the state is written to a temporary
// file in the same directory and atomically renamed over the target, so
// a crash mid-write leaves the previous file intact.
type FileStore struct {
	path string
	log  *slog.Logger
}

// NewFileStore constructs a FileStore writing to path. Parent
// directories are created on the first save. log may be nil.
func NewFileStore(path string, log *slog.Logger) *FileStore {
	if log == nil {
		log = slog.Default()
	}
	return &FileStore{path: path, log: log}
}

// Load reads and decodes the state file. A missing or undecodable file
// falls back to the seed state: startup must always succeed, and a
// corrupt file is preserved on disk untouched for manual recovery.
func (s *FileStore) Load() (domain.AppState, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Seed(), nil
		}
		return domain.AppState{}, fmt.Errorf("store.FileStore.Load: %w", err)
	}

	var state domain.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		s.log.Warn("state file is not valid JSON, starting from seed state",
			"path", s.path, "error", err)
		return Seed(), nil
	}
	return state, nil
}

// Save writes the full state atomically.
func (s *FileStore) Save(state domain.AppState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("store.FileStore.Save: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store.FileStore.Save: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("store.FileStore.Save: temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store.FileStore.Save: write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("store.FileStore.Save: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store.FileStore.Save: close: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("store.FileStore.Save: rename: %w", err)
	}
	return nil
}
