// ABOUTME: Observation entry and collection models.
// ABOUTME: JSON codec preserves unknown keys for lossless round-trips.
package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the stored timestamp format: ISO-8601 at second
// precision, no zone.
const TimeLayout = "2006-01-02T15:04:05"

// NewID returns a fresh collision-resistant entry id (uuid hex).
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Entry is one timestamped observation: zero or more metric fields plus
// an optional memo. Entries are created once and never edited; the only
// later lifecycle event is deletion.
type Entry struct {
	ID     string
	TS     string
	Fields map[Metric]Value
	Memo   string

	// extra carries keys this tool does not understand, so a collection
	// written by a newer or foreign tool survives a load/save cycle.
	extra map[string]json.RawMessage
}

// NewEntry creates an entry stamped at the given time, without an id.
// The store assigns the id on append.
func NewEntry(at time.Time) *Entry {
	return &Entry{
		TS:     at.Format(TimeLayout),
		Fields: make(map[Metric]Value),
	}
}

// Time parses the entry timestamp. Entries whose timestamp does not
// parse are excluded from every range-based view but stay on disk.
func (e *Entry) Time() (time.Time, bool) {
	if t, err := time.ParseInLocation(TimeLayout, e.TS, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, e.TS); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Value returns the recorded value for a metric; absent if not recorded.
func (e *Entry) Value(m Metric) Value {
	return e.Fields[m]
}

// Set records a field value. Absent values are dropped rather than
// stored as placeholders.
func (e *Entry) Set(m Metric, v Value) {
	if e.Fields == nil {
		e.Fields = make(map[Metric]Value)
	}
	if v.IsAbsent() {
		delete(e.Fields, m)
		return
	}
	e.Fields[m] = v
}

// WithMemo sets the memo, trimming surrounding whitespace. An empty memo
// stays unset.
func (e *Entry) WithMemo(memo string) *Entry {
	e.Memo = strings.TrimSpace(memo)
	return e
}

// UnmarshalJSON decodes an entry, keeping any key it does not recognize
// in extra so it is re-emitted verbatim on save.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Fields = make(map[Metric]Value)
	e.extra = nil

	for key, rv := range raw {
		switch key {
		case "id":
			_ = json.Unmarshal(rv, &e.ID)
			continue
		case "ts":
			_ = json.Unmarshal(rv, &e.TS)
			continue
		case "memo":
			_ = json.Unmarshal(rv, &e.Memo)
			continue
		}
		if IsValidMetric(key) {
			if v, ok := decodeValue(rv); ok {
				e.Fields[Metric(key)] = v
				continue
			}
		}
		if e.extra == nil {
			e.extra = make(map[string]json.RawMessage)
		}
		e.extra[key] = rv
	}
	return nil
}

// MarshalJSON emits a canonical key order: id, ts, metric fields in
// catalog order, memo, then preserved unknown keys sorted by name.
func (e *Entry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(key string, val interface{}) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if e.ID != "" {
		if err := writeField("id", e.ID); err != nil {
			return nil, err
		}
	}
	if err := writeField("ts", e.TS); err != nil {
		return nil, err
	}
	for _, m := range AllMetrics {
		if v, ok := e.Fields[m]; ok && !v.IsAbsent() {
			if err := writeField(string(m), v); err != nil {
				return nil, err
			}
		}
	}
	if e.Memo != "" {
		if err := writeField("memo", e.Memo); err != nil {
			return nil, err
		}
	}
	for _, k := range sortedKeys(e.extra) {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(e.extra[k])
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Collection is the persisted entry log. On disk it is always kept
// most-recent-first; the store re-sorts on every write that appends.
type Collection struct {
	Entries []*Entry

	extra map[string]json.RawMessage
}

// UnmarshalJSON decodes a collection, preserving unknown top-level keys.
func (c *Collection) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.Entries = nil
	c.extra = nil

	for key, rv := range raw {
		if key == "entries" {
			if err := json.Unmarshal(rv, &c.Entries); err != nil {
				return err
			}
			continue
		}
		if c.extra == nil {
			c.extra = make(map[string]json.RawMessage)
		}
		c.extra[key] = rv
	}
	return nil
}

// MarshalJSON emits the entries sequence first, then preserved keys.
func (c *Collection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.WriteString(`"entries":`)

	entries := c.Entries
	if entries == nil {
		entries = []*Entry{}
	}
	eb, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	buf.Write(eb)

	for _, k := range sortedKeys(c.extra) {
		buf.WriteByte(',')
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(c.extra[k])
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Meta exposes the preserved collection-level keys for persisters that
// do not store the collection as one document.
func (c *Collection) Meta() map[string]json.RawMessage {
	return c.extra
}

// SetMeta restores collection-level keys captured by Meta.
func (c *Collection) SetMeta(m map[string]json.RawMessage) {
	if len(m) == 0 {
		c.extra = nil
		return
	}
	c.extra = m
}

func sortedKeys(m map[string]json.RawMessage) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
