// ABOUTME: JSON-file persistence backend for the entry collection.
// ABOUTME: Whole-file read and overwrite; the default backend.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/bodylog/internal/models"
)

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "bodylog")
}

// FileStore persists the collection as a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed persister at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the collection. A missing file is an empty collection;
// unreadable or corrupt data is the one hard failure the core surfaces.
func (f *FileStore) Load() (*models.Collection, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Collection{}, nil
		}
		return nil, fmt.Errorf("read entry log: %w", err)
	}

	var col models.Collection
	if err := json.Unmarshal(data, &col); err != nil {
		return nil, fmt.Errorf("decode entry log: %w", err)
	}
	return &col, nil
}

// Save overwrites the collection file.
func (f *FileStore) Save(col *models.Collection) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("encode entry log: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0600); err != nil {
		return fmt.Errorf("write entry log: %w", err)
	}
	return nil
}
