package gwy

import (
	"encoding/binary"
	"io"
	"math"
	"sort"

	"github.com/FocuswithJustin/gwyfile/core/errors"
	"github.com/FocuswithJustin/gwyfile/internal/validation"
)

// ReadOptions configures decoding of untrusted input.
type ReadOptions struct {
	// MaxSize is the total byte budget; reads beyond it fail with a
	// confinement error. Zero means no explicit budget.
	MaxSize uint64
	// MaxDepth is the object nesting ceiling. Zero means the default (200).
	MaxDepth int
}

func (opts *ReadOptions) budget() uint64 {
	if opts == nil || opts.MaxSize == 0 {
		return ^uint64(0)
	}
	return opts.MaxSize
}

func (opts *ReadOptions) maxDepth() int {
	if opts == nil || opts.MaxDepth == 0 {
		return validation.MaxDecodeDepth
	}
	return opts.MaxDepth
}

// ReadObject decodes one serialized object (without the file magic) from r.
// On any failure no partial tree is returned.
func ReadObject(r io.Reader, opts *ReadOptions) (*Object, error) {
	return decodeObject(newReader(r, opts.budget()), 1, opts.maxDepth(), nil)
}

// ReadItem decodes one serialized item (without the file magic) from r.
// On any failure no partial item is returned.
func ReadItem(r io.Reader, opts *ReadOptions) (*Item, error) {
	return decodeItem(newReader(r, opts.budget()), 0, opts.maxDepth(), nil)
}

// qualify attaches the node's path to a data error that does not carry one
// yet, and wraps system errors with the same context.
func qualify(err error, node *pathNode) error {
	var de *errors.DataError
	if errors.As(err, &de) {
		if de.Path == "" {
			de.Path = node.path()
		}
		return err
	}
	var se *errors.SystemError
	if errors.As(err, &se) && se.Path == "" {
		se.Path = node.path()
	}
	return err
}

// decodeObject decodes a name, a 32-bit item-stream size and that many bytes
// of items. depth counts enclosing objects including this one; it is checked
// before anything is read so pathological nesting cannot grow the call
// stack. Duplicate names are detected in a batch pass after the whole item
// set is read, preserving the wire error ordering.
func decodeObject(r *reader, depth, maxDepth int, parent *pathNode) (*Object, error) {
	if depth > maxDepth {
		return nil, errors.NewDataf(errors.CodeTooDeepNesting, parent.path(),
			"object nesting exceeds %d levels", maxDepth)
	}

	name, err := r.readNULString()
	if err != nil {
		return nil, qualify(err, parent)
	}
	node := &pathNode{name: name, parent: parent}

	size, err := r.readUint32()
	if err != nil {
		return nil, qualify(err, node)
	}
	outer, err := r.pushLimit(size)
	if err != nil {
		return nil, qualify(err, node)
	}

	// A zero size is legal: an object may have no items.
	obj := &Object{name: name}
	for r.remaining > 0 {
		item, err := decodeItem(r, depth, maxDepth, node)
		if err != nil {
			return nil, err
		}
		obj.appendItem(item)
	}
	r.popLimit(outer)

	if dup := findDuplicateItem(obj); dup != "" {
		return nil, errors.NewDataf(errors.CodeDuplicateName, node.path(),
			"object contains two items named %q", dup)
	}
	return obj, nil
}

// findDuplicateItem returns the name of any item occurring twice in obj, or
// the empty string.
func findDuplicateItem(obj *Object) string {
	if len(obj.items) < 2 {
		return ""
	}
	names := obj.ItemNames()
	sort.Strings(names)
	for i := 1; i < len(names); i++ {
		if names[i] == names[i-1] {
			return names[i]
		}
	}
	return ""
}

// decodeItem decodes one item: name, type tag and payload. depth is the
// nesting level of the enclosing object.
func decodeItem(r *reader, depth, maxDepth int, parent *pathNode) (*Item, error) {
	name, err := r.readNULString()
	if err != nil {
		return nil, qualify(err, parent)
	}
	node := &pathNode{name: name, parent: parent}

	tag, err := r.readByte()
	if err != nil {
		return nil, qualify(err, node)
	}
	typ := ItemType(tag)
	if !typ.valid() {
		return nil, errors.NewDataf(errors.CodeItemType, node.path(),
			"unknown item type tag 0x%02x", tag)
	}

	item := newItem(name, typ)
	switch typ {
	case TypeBool:
		b, err := r.readByte()
		if err != nil {
			return nil, qualify(err, node)
		}
		item.boolVal = b != 0
	case TypeChar:
		if item.charVal, err = r.readByte(); err != nil {
			return nil, qualify(err, node)
		}
	case TypeInt32:
		if item.int32Val, err = r.readInt32(); err != nil {
			return nil, qualify(err, node)
		}
	case TypeInt64:
		if item.int64Val, err = r.readInt64(); err != nil {
			return nil, qualify(err, node)
		}
	case TypeDouble:
		if item.doubleVal, err = r.readDouble(); err != nil {
			return nil, qualify(err, node)
		}
	case TypeString:
		if item.strVal, err = r.readNULString(); err != nil {
			return nil, qualify(err, node)
		}
	case TypeObject:
		obj, err := decodeObject(r, depth+1, maxDepth, node)
		if err != nil {
			return nil, err
		}
		item.objVal = obj
		obj.owner = item
	default:
		if err := decodeArray(r, item, depth, maxDepth, node); err != nil {
			return nil, err
		}
	}

	item.dataSize = item.computeDataSize()
	return item, nil
}

// decodeArray decodes the element count and elements of an array item.
// Fixed-width element data is charged against the budget before any
// allocation, so a hostile count cannot force a large allocation.
func decodeArray(r *reader, item *Item, depth, maxDepth int, node *pathNode) error {
	count, err := r.readUint32()
	if err != nil {
		return qualify(err, node)
	}
	if count == 0 {
		return errors.NewData(errors.CodeArraySize, node.path(),
			"arrays of zero length are not allowed")
	}
	n := uint64(count)

	switch item.typ {
	case TypeCharArray:
		if err := r.charge(n); err != nil {
			return qualify(err, node)
		}
		item.charArr = make([]byte, n)
		if err := r.readRawFull(item.charArr); err != nil {
			return qualify(err, node)
		}
	case TypeInt32Array:
		if err := r.charge(4 * n); err != nil {
			return qualify(err, node)
		}
		item.int32Arr = make([]int32, n)
		for i := range item.int32Arr {
			if err := r.readRawFull(r.scratch[:4]); err != nil {
				return qualify(err, node)
			}
			item.int32Arr[i] = int32(binary.LittleEndian.Uint32(r.scratch[:4]))
		}
	case TypeInt64Array:
		if err := r.charge(8 * n); err != nil {
			return qualify(err, node)
		}
		item.int64Arr = make([]int64, n)
		for i := range item.int64Arr {
			if err := r.readRawFull(r.scratch[:8]); err != nil {
				return qualify(err, node)
			}
			item.int64Arr[i] = int64(binary.LittleEndian.Uint64(r.scratch[:8]))
		}
	case TypeDoubleArray:
		if err := r.charge(8 * n); err != nil {
			return qualify(err, node)
		}
		item.doubleArr = make([]float64, n)
		for i := range item.doubleArr {
			if err := r.readRawFull(r.scratch[:8]); err != nil {
				return qualify(err, node)
			}
			item.doubleArr[i] = math.Float64frombits(binary.LittleEndian.Uint64(r.scratch[:8]))
		}
	case TypeStringArray:
		// Every string needs at least its terminator, so the budget caps a
		// hostile count before any large allocation.
		item.strArr = make([]string, 0, minUint64(n, r.remaining))
		for i := uint64(0); i < n; i++ {
			s, err := r.readNULString()
			if err != nil {
				return qualify(err, node)
			}
			item.strArr = append(item.strArr, s)
		}
	case TypeObjectArray:
		// A serialized object is at least 5 bytes (empty name + size field).
		item.objArr = make([]*Object, 0, minUint64(n, r.remaining/5+1))
		for i := uint64(0); i < n; i++ {
			obj, err := decodeObject(r, depth+1, maxDepth, node)
			if err != nil {
				return err
			}
			item.objArr = append(item.objArr, obj)
			obj.owner = item
		}
	}
	return nil
}
