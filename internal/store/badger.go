// ABOUTME: Badger KV persistence backend for the entry collection.
// ABOUTME: One key per entry plus a meta key for preserved collection keys.
package store

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/harperreed/bodylog/internal/models"
)

const (
	entryPrefix = "entry:"
	metaKey     = "meta"
)

// BadgerStore persists the collection in a local Badger database.
// Save still has full-overwrite semantics: the stored set is replaced
// wholesale so deletions take effect.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens or creates a Badger database at the given dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the underlying database.
func (b *BadgerStore) Close() error {
	return b.db.Close()
}

// Load reads every stored entry plus the preserved meta keys.
func (b *BadgerStore) Load() (*models.Collection, error) {
	col := &models.Collection{}

	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var e models.Entry
			if err := json.Unmarshal(val, &e); err != nil {
				return fmt.Errorf("decode entry %s: %w", it.Item().Key(), err)
			}
			col.Entries = append(col.Entries, &e)
		}

		item, err := txn.Get([]byte(metaKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		var meta map[string]json.RawMessage
		if err := json.Unmarshal(val, &meta); err != nil {
			return fmt.Errorf("decode meta: %w", err)
		}
		col.SetMeta(meta)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load entry log: %w", err)
	}
	return col, nil
}

// Save replaces the stored entry set with the given collection.
func (b *BadgerStore) Save(col *models.Collection) error {
	keep := make(map[string]bool, len(col.Entries))
	for _, e := range col.Entries {
		keep[entryPrefix+e.ID] = true
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		// Drop entries no longer in the collection.
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		var stale [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			if !keep[string(it.Item().Key())] {
				stale = append(stale, it.Item().KeyCopy(nil))
			}
		}
		it.Close()
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		for _, e := range col.Entries {
			data, err := json.Marshal(e)
			if err != nil {
				return err
			}
			if err := txn.Set([]byte(entryPrefix+e.ID), data); err != nil {
				return err
			}
		}

		if meta := col.Meta(); len(meta) > 0 {
			data, err := json.Marshal(meta)
			if err != nil {
				return err
			}
			return txn.Set([]byte(metaKey), data)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save entry log: %w", err)
	}
	return nil
}
