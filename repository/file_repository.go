package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"clinic-inventory-service/models"
)

// FileStateRepository persists the state as a pretty-printed JSON file.
// It is the fallback store when MongoDB is not configured or unreachable.
type FileStateRepository struct {
	path string
}

// NewFileStateRepository creates a file-backed state repository.
func NewFileStateRepository(path string) *FileStateRepository {
	return &FileStateRepository{path: path}
}

// Load reads the state file. A missing file is not an error: it yields a
// default-empty state, so first use works without setup.
func (f *FileStateRepository) Load(ctx context.Context) (*models.State, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewState(), nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	state := models.NewState()
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}
	state.EnsureDefaults()
	return state, nil
}

// Save overwrites the state file with the full state.
func (f *FileStateRepository) Save(ctx context.Context, state *models.State) error {
	raw, err := json.MarshalIndent(state, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode state: %v", ErrPersistence, err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create state dir: %v", ErrPersistence, err)
		}
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("%w: write state file: %v", ErrPersistence, err)
	}
	return nil
}
