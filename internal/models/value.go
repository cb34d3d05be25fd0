// ABOUTME: Tagged value type for metric fields.
// ABOUTME: Distinguishes absent, integer, decimal, and text representations.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Kind discriminates the representation of a recorded field value.
type Kind int

const (
	KindAbsent Kind = iota
	KindInt
	KindDecimal
	KindText
)

// Value is a tagged metric field value. The zero Value is absent, which
// is how a not-recorded field reads: absence is structural, never a zero
// number or empty string standing in for "missing".
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// IntValue wraps an integer reading.
func IntValue(v int64) Value { return Value{kind: KindInt, i: v} }

// DecimalValue wraps a decimal reading.
func DecimalValue(v float64) Value { return Value{kind: KindDecimal, f: v} }

// TextValue wraps a textual reading, such as a composite "120/80".
func TextValue(s string) Value { return Value{kind: KindText, s: s} }

// Kind reports how the value is represented.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the field was not recorded.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Num returns the value as a float64 when it is numeric.
func (v Value) Num() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindDecimal:
		return v.f, true
	default:
		return 0, false
	}
}

// Text returns the raw string when the value is textual.
func (v Value) Text() (string, bool) {
	if v.kind == KindText {
		return v.s, true
	}
	return "", false
}

// String renders the value for display. Absent renders empty.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindDecimal:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindText:
		return v.s
	default:
		return ""
	}
}

// MarshalJSON emits numbers for numeric kinds and a JSON string for text.
// Absent values are never marshaled; the field key is omitted instead.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case KindDecimal:
		return []byte(strconv.FormatFloat(v.f, 'f', -1, 64)), nil
	case KindText:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

// decodeValue interprets a raw JSON field value. Strings become text,
// numbers become integers when their source has no fractional part,
// decimals otherwise. Anything else is not representable.
func decodeValue(raw json.RawMessage) (Value, bool) {
	t := strings.TrimSpace(string(raw))
	if t == "" || t == "null" {
		return Value{}, false
	}
	if t[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, false
		}
		return TextValue(s), true
	}
	if !strings.ContainsAny(t, ".eE") {
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return IntValue(i), true
		}
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return DecimalValue(f), true
	}
	return Value{}, false
}
