package encoding

import (
	"strings"
	"testing"
)

func TestEscapePathComponent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "GwyDataField", "GwyDataField"},
		{"empty", "", ""},
		{"slash", "a/b", "a\\/b"},
		{"space", "si unit", "si\\ unit"},
		{"backslash", "a\\b", "a\\\\b"},
		{"control", "a\x01b", "a\\x01b"},
		{"delete", "a\x7fb", "a\\x7fb"},
		{"newline", "a\nb", "a\\x0ab"},
		{"mixed", "/ \\", "\\/\\ \\\\"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapePathComponent(tt.input); got != tt.want {
				t.Errorf("EscapePathComponent(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapePathComponentTruncation(t *testing.T) {
	long := strings.Repeat("a", MaxComponentLength+10)
	got := EscapePathComponent(long)
	if got != strings.Repeat("a", MaxComponentLength)+"..." {
		t.Errorf("long component = %q", got)
	}

	exact := strings.Repeat("b", MaxComponentLength)
	if got := EscapePathComponent(exact); got != exact {
		t.Errorf("exact-length component was modified: %q", got)
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		name       string
		components []string
		want       string
	}{
		{"empty", nil, "/"},
		{"single", []string{"a"}, "/a"},
		{"nested", []string{"a", "b", "c"}, "/a/b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinPath(tt.components); got != tt.want {
				t.Errorf("JoinPath(%v) = %q, want %q", tt.components, got, tt.want)
			}
		})
	}
}
