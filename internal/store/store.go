// Package store persists completed life scenarios and serializes access to
// the scenario list, the only shared mutable resource in the system.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lifesim/scenario-engine/internal/domain"
)

// Repository is the persistence collaborator: Load returns the stored
// scenarios (or an empty list), Save replaces them.
type Repository interface {
	Load() ([]domain.LifeScenario, error)
	Save(scenarios []domain.LifeScenario) error
}

// FileStore persists the scenario list as a single JSON document. Saves are
// atomic from the caller's perspective: the document is written to a
// temporary file in the same directory and renamed over the target, so a
// crash mid-write never leaves a partially written store.
type FileStore struct {
	path string
}

// NewFileStore creates a file store at the given path. The parent directory
// is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored scenarios. A missing file is an empty store, not an
// error.
func (fs *FileStore) Load() ([]domain.LifeScenario, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return []domain.LifeScenario{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading scenario store %s: %w", fs.path, err)
	}

	var scenarios []domain.LifeScenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("decoding scenario store %s: %w", fs.path, err)
	}
	return scenarios, nil
}

// Save writes the full scenario list with a temp-file-then-rename swap.
func (fs *FileStore) Save(scenarios []domain.LifeScenario) error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(scenarios, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scenario store: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".scenarios-*.json")
	if err != nil {
		return fmt.Errorf("creating temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp store file: %w", err)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("swapping scenario store into place: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Repository for tests and ephemeral use.
type MemoryStore struct {
	scenarios []domain.LifeScenario
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scenarios: []domain.LifeScenario{}}
}

func (ms *MemoryStore) Load() ([]domain.LifeScenario, error) {
	out := make([]domain.LifeScenario, len(ms.scenarios))
	copy(out, ms.scenarios)
	return out, nil
}

func (ms *MemoryStore) Save(scenarios []domain.LifeScenario) error {
	ms.scenarios = make([]domain.LifeScenario, len(scenarios))
	copy(ms.scenarios, scenarios)
	return nil
}
