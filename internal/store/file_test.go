// ABOUTME: Tests for the JSON file persister.
// ABOUTME: Covers missing-file bootstrap, round trips, and unknown-key fidelity.
package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/bodylog/internal/models"
)

func TestFileStoreMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "bodylog.json"))
	col, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, col.Entries)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bodylog.json")
	fs := NewFileStore(path)

	e := &models.Entry{ID: "abc123", TS: "2025-03-01T09:30:00"}
	e.Set(models.MetricHR, models.IntValue(72))
	e.Set(models.MetricBP, models.TextValue("120/80"))

	require.NoError(t, fs.Save(&models.Collection{Entries: []*models.Entry{e}}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	col, err := fs.Load()
	require.NoError(t, err)
	require.Len(t, col.Entries, 1)
	assert.Equal(t, "abc123", col.Entries[0].ID)
	assert.Equal(t, "2025-03-01T09:30:00", col.Entries[0].TS)
	hr := col.Entries[0].Value(models.MetricHR)
	n, ok := hr.Num()
	require.True(t, ok)
	assert.Equal(t, 72.0, n)
}

func TestFileStorePreservesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bodylog.json")
	raw := `{"entries":[{"id":"abc","ts":"2025-03-01T09:30:00","hr":72,"custom":{"a":1}}],"schema_rev":3}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))

	fs := NewFileStore(path)
	col, err := fs.Load()
	require.NoError(t, err)
	require.NoError(t, fs.Save(col))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"custom"`)
	assert.Contains(t, string(data), `"schema_rev"`)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bodylog.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	fs := NewFileStore(path)
	_, err := fs.Load()
	assert.Error(t, err)
}
