package validation

import (
	"math"
	"testing"
)

func TestValidUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"ascii", "GwyDataField", true},
		{"empty", "", true},
		{"multibyte", "Ångström", true},
		{"bare continuation", "\x80", false},
		{"truncated sequence", "\xc3", false},
		{"invalid byte", "a\xffb", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidUTF8(tt.input); got != tt.want {
				t.Errorf("ValidUTF8(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"type name", "GwyDataField", true},
		{"lowercase", "unitstr", true},
		{"with digits", "Gwy2Field", true},
		{"with underscore", "si_unit_xy", true},
		{"empty", "", false},
		{"leading digit", "2field", false},
		{"leading underscore", "_field", false},
		{"space", "Gwy Field", false},
		{"slash", "/0/data", false},
		{"non-ascii letter", "Ångström", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIdentifier(tt.input); got != tt.want {
				t.Errorf("IsIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFiniteDouble(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  bool
	}{
		{"zero", 0, true},
		{"negative", -1.5, true},
		{"max", math.MaxFloat64, true},
		{"nan", math.NaN(), false},
		{"positive inf", math.Inf(1), false},
		{"negative inf", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FiniteDouble(tt.input); got != tt.want {
				t.Errorf("FiniteDouble(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFiniteDoubles(t *testing.T) {
	if !FiniteDoubles(nil) {
		t.Error("FiniteDoubles(nil) = false")
	}
	if !FiniteDoubles([]float64{1, 2, 3}) {
		t.Error("FiniteDoubles(finite) = false")
	}
	if FiniteDoubles([]float64{1, math.NaN(), 3}) {
		t.Error("FiniteDoubles(with NaN) = true")
	}
}
