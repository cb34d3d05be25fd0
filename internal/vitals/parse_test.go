// ABOUTME: Tests for composite-value parsing.
// ABOUTME: Well-formed S/D strings parse; everything else yields no value.
package vitals

import "testing"

func TestParseComposite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		a, b  int
		ok    bool
	}{
		{"plain", "120/80", 120, 80, true},
		{"whitespace", " 120 / 80 ", 120, 80, true},
		{"high reading", "190/70", 190, 70, true},
		{"negative components", "-5/-3", -5, -3, true},
		{"no slash", "12080", 0, 0, false},
		{"two slashes", "120/80/60", 0, 0, false},
		{"non-numeric systolic", "abc/80", 0, 0, false},
		{"non-numeric diastolic", "120/xyz", 0, 0, false},
		{"decimal component", "120.5/80", 0, 0, false},
		{"missing diastolic", "120/", 0, 0, false},
		{"empty", "", 0, 0, false},
		{"only slash", "/", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, ok := ParseComposite(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseComposite(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && (a != tt.a || b != tt.b) {
				t.Errorf("ParseComposite(%q) = (%d, %d), want (%d, %d)", tt.input, a, b, tt.a, tt.b)
			}
		})
	}
}
