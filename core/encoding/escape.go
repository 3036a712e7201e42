// Package encoding provides shared escaping utilities for diagnostic output.
package encoding

import (
	"fmt"
	"strings"
)

// MaxComponentLength is the maximum unescaped length of a single path
// component in diagnostic messages. Longer components are truncated with an
// ellipsis so message size stays bounded regardless of input names.
const MaxComponentLength = 60

// EscapePathComponent escapes a tree-path component for diagnostic messages.
// Slash, space and backslash are doubled-up with a backslash; non-printable
// bytes are hex-escaped. Components longer than MaxComponentLength bytes are
// truncated and terminated with "...".
func EscapePathComponent(s string) string {
	truncated := false
	if len(s) > MaxComponentLength {
		s = s[:MaxComponentLength]
		truncated = true
	}

	var b strings.Builder
	// Escaping at most doubles the length, plus the ellipsis.
	b.Grow(2*len(s) + 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '/' || c == ' ' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 0x20 || c == 0x7f:
			fmt.Fprintf(&b, "\\x%02x", c)
		default:
			b.WriteByte(c)
		}
	}
	if truncated {
		b.WriteString("...")
	}
	return b.String()
}

// JoinPath joins already-escaped path components with slashes, rooted with a
// leading slash. An empty component list yields "/".
func JoinPath(components []string) string {
	if len(components) == 0 {
		return "/"
	}
	return "/" + strings.Join(components, "/")
}
