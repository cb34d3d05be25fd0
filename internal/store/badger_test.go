// ABOUTME: Tests for the Badger KV persistence backend.
// ABOUTME: Covers round trips, deletion on save, and meta preservation.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/bodylog/internal/models"
)

func TestBadgerStoreRoundTrip(t *testing.T) {
	bs, err := OpenBadgerStore(t.TempDir())
	require.NoError(t, err)
	defer bs.Close()

	a := &models.Entry{ID: "aaa", TS: "2025-03-01T09:30:00"}
	a.Set(models.MetricHR, models.IntValue(72))
	b := &models.Entry{ID: "bbb", TS: "2025-03-02T09:30:00"}
	b.Set(models.MetricBP, models.TextValue("120/80"))

	require.NoError(t, bs.Save(&models.Collection{Entries: []*models.Entry{a, b}}))

	col, err := bs.Load()
	require.NoError(t, err)
	require.Len(t, col.Entries, 2)

	byID := map[string]*models.Entry{}
	for _, e := range col.Entries {
		byID[e.ID] = e
	}
	require.Contains(t, byID, "aaa")
	require.Contains(t, byID, "bbb")
	n, ok := byID["aaa"].Value(models.MetricHR).Num()
	require.True(t, ok)
	assert.Equal(t, 72.0, n)
	assert.Equal(t, "120/80", byID["bbb"].Value(models.MetricBP).String())
}

func TestBadgerStoreSaveDropsRemovedEntries(t *testing.T) {
	bs, err := OpenBadgerStore(t.TempDir())
	require.NoError(t, err)
	defer bs.Close()

	a := &models.Entry{ID: "aaa", TS: "2025-03-01T09:30:00"}
	b := &models.Entry{ID: "bbb", TS: "2025-03-02T09:30:00"}
	require.NoError(t, bs.Save(&models.Collection{Entries: []*models.Entry{a, b}}))

	require.NoError(t, bs.Save(&models.Collection{Entries: []*models.Entry{b}}))

	col, err := bs.Load()
	require.NoError(t, err)
	require.Len(t, col.Entries, 1)
	assert.Equal(t, "bbb", col.Entries[0].ID)
}

func TestBadgerStorePreservesMeta(t *testing.T) {
	bs, err := OpenBadgerStore(t.TempDir())
	require.NoError(t, err)
	defer bs.Close()

	col := &models.Collection{}
	require.NoError(t, col.UnmarshalJSON([]byte(`{"entries":[{"id":"aaa","ts":"2025-03-01T09:30:00"}],"schema_rev":3}`)))
	require.NoError(t, bs.Save(col))

	loaded, err := bs.Load()
	require.NoError(t, err)
	meta := loaded.Meta()
	require.Contains(t, meta, "schema_rev")
	assert.Equal(t, "3", string(meta["schema_rev"]))
}

func TestBadgerStoreEmpty(t *testing.T) {
	bs, err := OpenBadgerStore(t.TempDir())
	require.NoError(t, err)
	defer bs.Close()

	col, err := bs.Load()
	require.NoError(t, err)
	assert.Empty(t, col.Entries)
}
