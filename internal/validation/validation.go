// Package validation provides structural validation helpers and resource
// limits shared by the codec core and the CLI: UTF-8 well-formedness,
// identifier checks for object type names, and the default bounds protecting
// the decoder against adversarial input.
package validation

import (
	"math"
	"unicode/utf8"
)

// Resource limits protecting decode from hostile or corrupt input.
const (
	// MaxFileSize is the default byte budget for reading a whole file (1 GB).
	MaxFileSize = 1 << 30
	// MaxDecodeDepth is the default object nesting ceiling of the decoder.
	MaxDecodeDepth = 200
)

// ValidUTF8 reports whether s is well-formed UTF-8.
func ValidUTF8(s string) bool {
	return utf8.ValidString(s)
}

// IsIdentifier reports whether s is a bare identifier: an ASCII letter
// followed by letters, digits or underscores. Object type names are expected
// to be identifiers (they name serialized class types).
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_' && i > 0:
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// FiniteDouble reports whether v is neither NaN nor infinite.
func FiniteDouble(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FiniteDoubles reports whether every element of vs is finite.
func FiniteDoubles(vs []float64) bool {
	for _, v := range vs {
		if !FiniteDouble(v) {
			return false
		}
	}
	return true
}
