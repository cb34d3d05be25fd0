// ABOUTME: Entry store accessor: append, delete, id backfill over a persisted log.
// ABOUTME: Delegates load/save to a Persister; single-writer, full-overwrite semantics.
package store

import (
	"io"
	"sort"
	"time"

	"github.com/harperreed/bodylog/internal/models"
)

// Persister is the external persistence collaborator. Load returns the
// whole collection (empty when nothing is stored yet); Save overwrites
// it. Implementations must round-trip every key they do not understand.
type Persister interface {
	Load() (*models.Collection, error)
	Save(*models.Collection) error
}

// Store wraps the persisted entry collection. It holds no lock: the
// design assumes exactly one writer process at a time, and concurrent
// writers from two sessions can clobber each other.
type Store struct {
	p          Persister
	col        *models.Collection
	backfilled int
}

// Open loads the collection and backfills ids on legacy entries that
// lack one. The backfill persists only when it assigned at least one id.
func Open(p Persister) (*Store, error) {
	col, err := p.Load()
	if err != nil {
		return nil, err
	}
	if col == nil {
		col = &models.Collection{}
	}

	s := &Store{p: p, col: col}
	s.sortEntries()

	n, err := s.BackfillIDs()
	if err != nil {
		return nil, err
	}
	s.backfilled = n
	return s, nil
}

// Close releases the underlying persister when it holds resources.
func (s *Store) Close() error {
	if c, ok := s.p.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Backfilled reports how many legacy entries received an id on Open.
func (s *Store) Backfilled() int {
	return s.backfilled
}

// Entries returns the collection, most recent first.
func (s *Store) Entries() []*models.Entry {
	return s.col.Entries
}

// Append assigns a fresh id when the entry lacks one, inserts it,
// re-sorts the whole collection descending by timestamp, and persists.
// Keeping the on-disk order most-recent-first is a design invariant the
// recency-bounded views rely on.
func (s *Store) Append(e *models.Entry) error {
	if e.ID == "" {
		e.ID = models.NewID()
	}
	s.col.Entries = append(s.col.Entries, e)
	s.sortEntries()
	return s.p.Save(s.col)
}

// DeleteByIDs removes every entry whose id is in the given set and
// persists. Returns the number removed; zero matches is not an error.
func (s *Store) DeleteByIDs(ids []string) (int, error) {
	member := make(map[string]bool, len(ids))
	for _, id := range ids {
		member[id] = true
	}

	kept := s.col.Entries[:0]
	removed := 0
	for _, e := range s.col.Entries {
		if e.ID != "" && member[e.ID] {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.col.Entries = kept

	if err := s.p.Save(s.col); err != nil {
		return 0, err
	}
	return removed, nil
}

// DeleteByRange removes every entry whose parsed timestamp falls within
// [start, end] inclusive and persists. Entries with unparseable
// timestamps never match. Matching is by id, so duplicate-content
// entries outside the range are never collateral damage.
func (s *Store) DeleteByRange(start, end time.Time) (int, error) {
	return s.DeleteByIDs(s.idsInRange(start, end))
}

// CountInRange reports how many entries a range deletion would remove,
// for preview before the destructive step.
func (s *Store) CountInRange(start, end time.Time) int {
	return len(s.idsInRange(start, end))
}

func (s *Store) idsInRange(start, end time.Time) []string {
	var ids []string
	for _, e := range s.col.Entries {
		t, ok := e.Time()
		if !ok {
			continue
		}
		if !t.Before(start) && !t.After(end) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// DeleteAll clears the collection unconditionally and persists.
func (s *Store) DeleteAll() error {
	s.col.Entries = nil
	return s.p.Save(s.col)
}

// BackfillIDs assigns a fresh id to every entry lacking one. Persists
// only when at least one id was assigned; running it again is a no-op.
func (s *Store) BackfillIDs() (int, error) {
	changed := 0
	for _, e := range s.col.Entries {
		if e.ID == "" {
			e.ID = models.NewID()
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}
	if err := s.p.Save(s.col); err != nil {
		return 0, err
	}
	return changed, nil
}

// sortEntries orders the collection descending by raw timestamp. The
// stored ISO-8601 strings sort chronologically as strings, which keeps
// entries with unparseable timestamps in a stable place instead of
// erroring the sort.
func (s *Store) sortEntries() {
	sort.SliceStable(s.col.Entries, func(i, j int) bool {
		return s.col.Entries[i].TS > s.col.Entries[j].TS
	})
}
