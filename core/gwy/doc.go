// Package gwy implements a codec and in-memory model for the GWY
// hierarchical binary container format.
//
// A GWY file is a 4-byte magic tag followed by one serialized object. An
// object is a NUL-terminated name, a 32-bit little-endian size of its item
// stream, and that many bytes of items. An item is a NUL-terminated name, a
// one-byte type tag and a payload; object-typed items nest recursively.
//
// # Data Model
//
// Object: named collection of items, unique by name, insertion order
// preserved on the wire.
// Item: named, typed value slot holding a scalar, a string, an array, or a
// nested object.
//
// Both keep an exact cached serialized size. Every mutation propagates the
// size delta up the ownership chain, so Object.Size is O(1) at any time and
// mutations cost O(depth) rather than O(subtree).
//
// # Ownership
//
// Items and objects form a forest: a node has at most one owner. Adding an
// already-owned node to a second container is a programming error and
// panics. Duplicate item names on Add are rejected with a false return.
//
// # Decoding untrusted input
//
// The decoder never trusts declared sizes: every read is charged against a
// shrinking byte budget, object nesting is limited by a configurable depth
// ceiling (default 200), and zero-length arrays and duplicate item names are
// rejected. On any failure no partial tree is returned.
//
// # Checking
//
// Check audits a tree without mutating it: validity findings (invalid UTF-8,
// non-finite doubles) are format-breaking, warning findings (non-identifier
// type names, empty item names) are legal but discouraged. Findings carry an
// escaped, bounded path from the root for diagnostics.
package gwy
