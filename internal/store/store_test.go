// ABOUTME: Tests for the entry store accessor.
// ABOUTME: Covers append ordering, the three deletion modes, and id backfill.
package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/bodylog/internal/models"
)

// memStore is an in-memory Persister for exercising the accessor
// without touching disk.
type memStore struct {
	col   *models.Collection
	saves int
}

func (m *memStore) Load() (*models.Collection, error) {
	if m.col == nil {
		return &models.Collection{}, nil
	}
	return m.col, nil
}

func (m *memStore) Save(col *models.Collection) error {
	m.col = col
	m.saves++
	return nil
}

func entryAt(ts string, fields map[models.Metric]models.Value) *models.Entry {
	return &models.Entry{TS: ts, Fields: fields}
}

func TestAppendAssignsIDAndSorts(t *testing.T) {
	mem := &memStore{}
	s, err := Open(mem)
	require.NoError(t, err)

	require.NoError(t, s.Append(entryAt("2025-03-01T08:00:00", nil)))
	require.NoError(t, s.Append(entryAt("2025-03-03T08:00:00", nil)))
	require.NoError(t, s.Append(entryAt("2025-03-02T08:00:00", nil)))

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "2025-03-03T08:00:00", entries[0].TS)
	assert.Equal(t, "2025-03-02T08:00:00", entries[1].TS)
	assert.Equal(t, "2025-03-01T08:00:00", entries[2].TS)

	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
	}
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestAppendKeepsExistingID(t *testing.T) {
	mem := &memStore{}
	s, err := Open(mem)
	require.NoError(t, err)

	e := entryAt("2025-03-01T08:00:00", nil)
	e.ID = "fixed"
	require.NoError(t, s.Append(e))
	assert.Equal(t, "fixed", s.Entries()[0].ID)
}

func TestDeleteByIDs(t *testing.T) {
	mem := &memStore{}
	s, err := Open(mem)
	require.NoError(t, err)

	keep := entryAt("2025-03-02T08:00:00", map[models.Metric]models.Value{
		models.MetricHR: models.IntValue(72),
	})
	gone := entryAt("2025-03-01T08:00:00", nil)
	require.NoError(t, s.Append(keep))
	require.NoError(t, s.Append(gone))

	before, err := json.Marshal(keep)
	require.NoError(t, err)

	n, err := s.DeleteByIDs([]string{gone.ID, "nonexistent"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries := s.Entries()
	require.Len(t, entries, 1)
	after, err := json.Marshal(entries[0])
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after), "survivors must be untouched")
}

func TestDeleteByIDsZeroMatches(t *testing.T) {
	mem := &memStore{}
	s, err := Open(mem)
	require.NoError(t, err)
	require.NoError(t, s.Append(entryAt("2025-03-01T08:00:00", nil)))

	n, err := s.DeleteByIDs([]string{"nope"})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, s.Entries(), 1)
}

func TestDeleteByRange(t *testing.T) {
	mem := &memStore{}
	s, err := Open(mem)
	require.NoError(t, err)

	require.NoError(t, s.Append(entryAt("2025-03-01T00:00:00", nil)))
	require.NoError(t, s.Append(entryAt("2025-03-02T12:00:00", nil)))
	require.NoError(t, s.Append(entryAt("2025-03-03T23:59:59", nil)))
	require.NoError(t, s.Append(entryAt("2025-03-04T00:00:00", nil)))
	require.NoError(t, s.Append(entryAt("broken-ts", nil)))

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 3, 3, 23, 59, 59, 0, time.Local)

	assert.Equal(t, 3, s.CountInRange(start, end))

	n, err := s.DeleteByRange(start, end)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "range bounds are inclusive")

	var remaining []string
	for _, e := range s.Entries() {
		remaining = append(remaining, e.TS)
	}
	assert.ElementsMatch(t, []string{"2025-03-04T00:00:00", "broken-ts"}, remaining,
		"entries outside the range and unparseable timestamps survive")
}

func TestDeleteByRangeSparesDuplicateContent(t *testing.T) {
	mem := &memStore{}
	s, err := Open(mem)
	require.NoError(t, err)

	fields := map[models.Metric]models.Value{models.MetricHR: models.IntValue(72)}
	inside := entryAt("2025-03-02T08:00:00", fields)
	outside := entryAt("2025-04-02T08:00:00", fields)
	require.NoError(t, s.Append(inside))
	require.NoError(t, s.Append(outside))

	n, err := s.DeleteByRange(
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, s.Entries(), 1)
	assert.Equal(t, outside.ID, s.Entries()[0].ID)
}

func TestDeleteAll(t *testing.T) {
	mem := &memStore{}
	s, err := Open(mem)
	require.NoError(t, err)

	require.NoError(t, s.Append(entryAt("2025-03-01T08:00:00", nil)))
	require.NoError(t, s.Append(entryAt("2025-03-02T08:00:00", nil)))

	require.NoError(t, s.DeleteAll())
	assert.Empty(t, s.Entries())
}

func TestBackfillIDs(t *testing.T) {
	mem := &memStore{col: &models.Collection{Entries: []*models.Entry{
		entryAt("2025-03-02T08:00:00", nil),
		{TS: "2025-03-01T08:00:00", ID: "haveone"},
		entryAt("2025-02-28T08:00:00", nil),
	}}}

	s, err := Open(mem)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Backfilled())
	assert.Equal(t, 1, mem.saves, "backfill persists once")

	for _, e := range s.Entries() {
		assert.NotEmpty(t, e.ID)
	}

	// Reopening with all ids present must not write again.
	saves := mem.saves
	s2, err := Open(mem)
	require.NoError(t, err)
	assert.Zero(t, s2.Backfilled())
	assert.Equal(t, saves, mem.saves)
}

func TestOpenSortsLoadedEntries(t *testing.T) {
	mem := &memStore{col: &models.Collection{Entries: []*models.Entry{
		{TS: "2025-03-01T08:00:00", ID: "a"},
		{TS: "2025-03-03T08:00:00", ID: "b"},
		{TS: "2025-03-02T08:00:00", ID: "c"},
	}}}

	s, err := Open(mem)
	require.NoError(t, err)

	entries := s.Entries()
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "c", entries[1].ID)
	assert.Equal(t, "a", entries[2].ID)
}
