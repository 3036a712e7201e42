package gwy

import (
	"fmt"
)

// Object is a named collection of items, unique by name. Insertion order is
// not semantically significant but is preserved on the wire. An object has
// at most one owner: an object-typed or object-array-typed item.
type Object struct {
	name     string
	owner    *Item
	items    []*Item
	dataSize uint64 // cached sum of the serialized sizes of all items
}

// NewObject creates an object holding the given items, taking ownership of
// all of them. It panics if an item already has an owner or two items share
// a name; use Add for recoverable duplicate handling.
func NewObject(name string, items ...*Item) *Object {
	o := &Object{name: name}
	for _, it := range items {
		if !o.Add(it) {
			panic(fmt.Sprintf("gwy: duplicate item %q in new object %q", it.name, name))
		}
	}
	return o
}

// Name returns the object name. By convention it is the serialized type
// name, e.g. "GwyDataField".
func (o *Object) Name() string { return o.name }

// Owner returns the item owning this object, or nil for a root object.
func (o *Object) Owner() *Item { return o.owner }

// DataSize returns the serialized size of the object's item stream in
// bytes, excluding the object name and the size field itself.
func (o *Object) DataSize() uint64 { return o.dataSize }

// Size returns the total serialized size of the object in bytes.
func (o *Object) Size() uint64 {
	return uint64(len(o.name)) + 1 + 4 + o.dataSize
}

// NItems returns the number of items in the object.
func (o *Object) NItems() int { return len(o.items) }

// ItemNames returns the names of all items in insertion order.
func (o *Object) ItemNames() []string {
	names := make([]string, len(o.items))
	for i, it := range o.items {
		names[i] = it.name
	}
	return names
}

// ForEach calls fn for each direct item of the object in insertion order.
// fn must not add or remove items during the walk.
func (o *Object) ForEach(fn func(*Item)) {
	for _, it := range o.items {
		fn(it)
	}
}

// find returns the index of the item with the given name, or -1.
func (o *Object) find(name string) int {
	for i, it := range o.items {
		if it.name == name {
			return i
		}
	}
	return -1
}

// Get returns the item with the given name, or nil. The item stays owned by
// the object.
func (o *Object) Get(name string) *Item {
	if i := o.find(name); i >= 0 {
		return o.items[i]
	}
	return nil
}

// GetWithType returns the item with the given name if it exists and has the
// given type, or nil.
func (o *Object) GetWithType(name string, typ ItemType) *Item {
	it := o.Get(name)
	if it == nil || it.typ != typ {
		return nil
	}
	return it
}

// Add inserts an item, transferring ownership to the object. It returns
// false, leaving the item untouched, when the object already contains an
// item of the same name. It panics if the item already has an owner.
func (o *Object) Add(item *Item) bool {
	if item.owner != nil {
		panic(fmt.Sprintf("gwy: item %q already has an owner", item.name))
	}
	if o.find(item.name) >= 0 {
		return false
	}
	o.appendItem(item)
	return true
}

// appendItem links an item into the object without the duplicate check and
// propagates the size increase. Decoding uses it directly because duplicate
// detection there is a batch post-pass.
func (o *Object) appendItem(item *Item) {
	item.owner = o
	o.items = append(o.items, item)
	o.propagate(int64(item.Size()))
}

// Remove detaches and drops the item with the given name. It reports
// whether the item existed.
func (o *Object) Remove(name string) bool {
	i := o.find(name)
	if i < 0 {
		return false
	}
	o.detach(i)
	return true
}

// Take detaches the item with the given name and returns it as a new root,
// or nil when no such item exists.
func (o *Object) Take(name string) *Item {
	i := o.find(name)
	if i < 0 {
		return nil
	}
	return o.detach(i)
}

// TakeWithType detaches and returns the item with the given name if it has
// the given type. It panics when the item exists with a different type: the
// caller asserted a type it did not verify, and the tree must not be
// perturbed on a contract violation.
func (o *Object) TakeWithType(name string, typ ItemType) *Item {
	i := o.find(name)
	if i < 0 {
		return nil
	}
	if o.items[i].typ != typ {
		panic(fmt.Sprintf("gwy: TakeWithType(%q, %s) on %s item", name, typ, o.items[i].typ))
	}
	return o.detach(i)
}

// detach removes the item at index i and returns it with its owner link
// cleared. The item is first swapped to the last slot so removal is always
// a pop, then the size decrease is propagated before the item leaves the
// object.
func (o *Object) detach(i int) *Item {
	last := len(o.items) - 1
	o.items[i], o.items[last] = o.items[last], o.items[i]
	item := o.items[last]
	o.propagate(-int64(item.Size()))
	o.items[last] = nil
	o.items = o.items[:last]
	item.owner = nil
	return item
}

// propagate adjusts the cached size of this object and every ancestor by
// delta, alternating item and object levels until a root is reached. Each
// level is adjusted by exactly delta, never recomputed from scratch, so a
// mutation costs O(depth).
func (o *Object) propagate(delta int64) {
	for obj := o; ; {
		obj.dataSize = uint64(int64(obj.dataSize) + delta)
		it := obj.owner
		if it == nil {
			return
		}
		it.dataSize = uint64(int64(it.dataSize) + delta)
		obj = it.owner
		if obj == nil {
			return
		}
	}
}
