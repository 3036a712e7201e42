package gwy

import (
	"github.com/FocuswithJustin/gwyfile/core/encoding"
)

// maxPathComponents bounds the number of components in a formatted path.
// Deeper paths keep the leaf end and elide the rest, so diagnostic messages
// stay bounded even for trees built through the API with no depth limit.
const maxPathComponents = 32

// pathNode is a lightweight parent chain used while decoding, before the
// real tree (and its owner links) exists.
type pathNode struct {
	name   string
	parent *pathNode
}

func (n *pathNode) path() string {
	var components []string
	for p := n; p != nil; p = p.parent {
		components = append(components, encoding.EscapePathComponent(p.name))
	}
	return joinReversed(components)
}

// ItemPath returns the escaped path of the item from its root, for
// diagnostics. Components are individually escaped and length-bounded.
func ItemPath(it *Item) string {
	var components []string
	components = append(components, encoding.EscapePathComponent(it.name))
	for o := it.owner; o != nil; {
		components = append(components, encoding.EscapePathComponent(o.name))
		if o.owner == nil {
			break
		}
		components = append(components, encoding.EscapePathComponent(o.owner.name))
		o = o.owner.owner
	}
	return joinReversed(components)
}

// ObjectPath returns the escaped path of the object from its root, for
// diagnostics.
func ObjectPath(o *Object) string {
	var components []string
	for o != nil {
		components = append(components, encoding.EscapePathComponent(o.name))
		if o.owner == nil {
			break
		}
		components = append(components, encoding.EscapePathComponent(o.owner.name))
		o = o.owner.owner
	}
	return joinReversed(components)
}

// joinReversed joins leaf-first components root-first, eliding everything
// above maxPathComponents.
func joinReversed(components []string) string {
	elided := false
	if len(components) > maxPathComponents {
		components = components[:maxPathComponents]
		elided = true
	}
	ordered := make([]string, 0, len(components)+1)
	if elided {
		ordered = append(ordered, "...")
	}
	for i := len(components) - 1; i >= 0; i-- {
		ordered = append(ordered, components[i])
	}
	return encoding.JoinPath(ordered)
}
