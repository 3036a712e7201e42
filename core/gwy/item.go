package gwy

import (
	"fmt"
)

// Item is a named, typed value slot: a scalar, a string, an array, or a
// nested object. An item has at most one owner.
//
// Accessing a value through a mismatched typed accessor is a programming
// error and panics; so is inserting an item that already has an owner.
type Item struct {
	name     string
	typ      ItemType
	owner    *Object
	dataSize uint64 // cached serialized payload size, excluding name and type tag
	owned    bool   // item owns its payload storage (may mutate or drop it)

	boolVal   bool
	charVal   byte
	int32Val  int32
	int64Val  int64
	doubleVal float64
	strVal    string
	objVal    *Object

	charArr   []byte
	int32Arr  []int32
	int64Arr  []int64
	doubleArr []float64
	strArr    []string
	objArr    []*Object
}

// Name returns the item name.
func (it *Item) Name() string { return it.name }

// Type returns the item type tag.
func (it *Item) Type() ItemType { return it.typ }

// Owner returns the object owning this item, or nil for a root item.
func (it *Item) Owner() *Object { return it.owner }

// OwnsData reports whether the item owns its payload storage. Borrowed
// payloads (Const constructors) are caller-managed and must outlive the item.
func (it *Item) OwnsData() bool { return it.owned }

// DataSize returns the serialized size of the payload in bytes, excluding
// the item name and type tag. For arrays it includes the count field.
func (it *Item) DataSize() uint64 { return it.dataSize }

// Size returns the total serialized size of the item in bytes.
func (it *Item) Size() uint64 {
	return uint64(len(it.name)) + 2 + it.dataSize
}

// ArrayLength returns the element count of an array item. It panics for
// non-array items.
func (it *Item) ArrayLength() uint32 {
	switch it.typ {
	case TypeCharArray:
		return uint32(len(it.charArr))
	case TypeInt32Array:
		return uint32(len(it.int32Arr))
	case TypeInt64Array:
		return uint32(len(it.int64Arr))
	case TypeDoubleArray:
		return uint32(len(it.doubleArr))
	case TypeStringArray:
		return uint32(len(it.strArr))
	case TypeObjectArray:
		return uint32(len(it.objArr))
	}
	panic(fmt.Sprintf("gwy: ArrayLength on %s item %q", it.typ, it.name))
}

// mustBe panics unless the item has type t.
func (it *Item) mustBe(t ItemType) {
	if it.typ != t {
		panic(fmt.Sprintf("gwy: %s item %q accessed as %s", it.typ, it.name, t))
	}
}

// computeDataSize returns the serialized payload size from the current value.
func (it *Item) computeDataSize() uint64 {
	switch it.typ {
	case TypeBool, TypeChar:
		return 1
	case TypeInt32:
		return 4
	case TypeInt64, TypeDouble:
		return 8
	case TypeString:
		return uint64(len(it.strVal)) + 1
	case TypeObject:
		return it.objVal.Size()
	case TypeCharArray:
		return 4 + uint64(len(it.charArr))
	case TypeInt32Array:
		return 4 + 4*uint64(len(it.int32Arr))
	case TypeInt64Array:
		return 4 + 8*uint64(len(it.int64Arr))
	case TypeDoubleArray:
		return 4 + 8*uint64(len(it.doubleArr))
	case TypeStringArray:
		size := uint64(4)
		for _, s := range it.strArr {
			size += uint64(len(s)) + 1
		}
		return size
	case TypeObjectArray:
		size := uint64(4)
		for _, o := range it.objArr {
			size += o.Size()
		}
		return size
	}
	panic(fmt.Sprintf("gwy: item %q has invalid type 0x%02x", it.name, byte(it.typ)))
}

// updateDataSize replaces the cached payload size and propagates the delta
// up the ownership chain, one level at a time.
func (it *Item) updateDataSize(newSize uint64) {
	delta := int64(newSize) - int64(it.dataSize)
	it.dataSize = newSize
	if delta != 0 && it.owner != nil {
		it.owner.propagate(delta)
	}
}

func newItem(name string, typ ItemType) *Item {
	return &Item{name: name, typ: typ, owned: true}
}

func checkArrayLen(name string, n int) {
	if n == 0 {
		panic(fmt.Sprintf("gwy: zero-length array item %q", name))
	}
	if int64(n) > int64(^uint32(0)) {
		panic(fmt.Sprintf("gwy: array item %q length %d exceeds 32 bits", name, n))
	}
}

func checkUnowned(obj *Object) {
	if obj != nil && obj.owner != nil {
		panic(fmt.Sprintf("gwy: object %q already has an owner", obj.name))
	}
}

// Scalar constructors

// NewBool creates a boolean item.
func NewBool(name string, value bool) *Item {
	it := newItem(name, TypeBool)
	it.boolVal = value
	it.dataSize = 1
	return it
}

// NewChar creates a character item.
func NewChar(name string, value byte) *Item {
	it := newItem(name, TypeChar)
	it.charVal = value
	it.dataSize = 1
	return it
}

// NewInt32 creates a 32-bit integer item.
func NewInt32(name string, value int32) *Item {
	it := newItem(name, TypeInt32)
	it.int32Val = value
	it.dataSize = 4
	return it
}

// NewInt64 creates a 64-bit integer item.
func NewInt64(name string, value int64) *Item {
	it := newItem(name, TypeInt64)
	it.int64Val = value
	it.dataSize = 8
	return it
}

// NewDouble creates a double item.
func NewDouble(name string, value float64) *Item {
	it := newItem(name, TypeDouble)
	it.doubleVal = value
	it.dataSize = 8
	return it
}

// NewString creates a string item.
func NewString(name, value string) *Item {
	it := newItem(name, TypeString)
	it.strVal = value
	it.dataSize = it.computeDataSize()
	return it
}

// NewObjectItem creates an object-valued item, taking ownership of obj.
// It panics if obj already has an owner.
func NewObjectItem(name string, obj *Object) *Item {
	checkUnowned(obj)
	it := newItem(name, TypeObject)
	it.objVal = obj
	obj.owner = it
	it.dataSize = it.computeDataSize()
	return it
}

// Array constructors. The plain form takes ownership of the backing slice,
// the Copy form duplicates it, and the Const form borrows it: the caller
// keeps ownership and must not let it change while the item is alive.

// NewCharArray creates a character array item, taking ownership of data.
func NewCharArray(name string, data []byte) *Item {
	checkArrayLen(name, len(data))
	it := newItem(name, TypeCharArray)
	it.charArr = data
	it.dataSize = it.computeDataSize()
	return it
}

// NewCharArrayCopy creates a character array item with a private copy of data.
func NewCharArrayCopy(name string, data []byte) *Item {
	checkArrayLen(name, len(data))
	return NewCharArray(name, append([]byte(nil), data...))
}

// NewCharArrayConst creates a character array item borrowing data.
func NewCharArrayConst(name string, data []byte) *Item {
	it := NewCharArray(name, data)
	it.owned = false
	return it
}

// NewInt32Array creates a 32-bit integer array item, taking ownership of data.
func NewInt32Array(name string, data []int32) *Item {
	checkArrayLen(name, len(data))
	it := newItem(name, TypeInt32Array)
	it.int32Arr = data
	it.dataSize = it.computeDataSize()
	return it
}

// NewInt32ArrayCopy creates a 32-bit integer array item with a private copy of data.
func NewInt32ArrayCopy(name string, data []int32) *Item {
	checkArrayLen(name, len(data))
	return NewInt32Array(name, append([]int32(nil), data...))
}

// NewInt32ArrayConst creates a 32-bit integer array item borrowing data.
func NewInt32ArrayConst(name string, data []int32) *Item {
	it := NewInt32Array(name, data)
	it.owned = false
	return it
}

// NewInt64Array creates a 64-bit integer array item, taking ownership of data.
func NewInt64Array(name string, data []int64) *Item {
	checkArrayLen(name, len(data))
	it := newItem(name, TypeInt64Array)
	it.int64Arr = data
	it.dataSize = it.computeDataSize()
	return it
}

// NewInt64ArrayCopy creates a 64-bit integer array item with a private copy of data.
func NewInt64ArrayCopy(name string, data []int64) *Item {
	checkArrayLen(name, len(data))
	return NewInt64Array(name, append([]int64(nil), data...))
}

// NewInt64ArrayConst creates a 64-bit integer array item borrowing data.
func NewInt64ArrayConst(name string, data []int64) *Item {
	it := NewInt64Array(name, data)
	it.owned = false
	return it
}

// NewDoubleArray creates a double array item, taking ownership of data.
func NewDoubleArray(name string, data []float64) *Item {
	checkArrayLen(name, len(data))
	it := newItem(name, TypeDoubleArray)
	it.doubleArr = data
	it.dataSize = it.computeDataSize()
	return it
}

// NewDoubleArrayCopy creates a double array item with a private copy of data.
func NewDoubleArrayCopy(name string, data []float64) *Item {
	checkArrayLen(name, len(data))
	return NewDoubleArray(name, append([]float64(nil), data...))
}

// NewDoubleArrayConst creates a double array item borrowing data.
func NewDoubleArrayConst(name string, data []float64) *Item {
	it := NewDoubleArray(name, data)
	it.owned = false
	return it
}

// NewStringArray creates a string array item, taking ownership of data.
func NewStringArray(name string, data []string) *Item {
	checkArrayLen(name, len(data))
	it := newItem(name, TypeStringArray)
	it.strArr = data
	it.dataSize = it.computeDataSize()
	return it
}

// NewStringArrayCopy creates a string array item with a private copy of data.
func NewStringArrayCopy(name string, data []string) *Item {
	checkArrayLen(name, len(data))
	return NewStringArray(name, append([]string(nil), data...))
}

// NewStringArrayConst creates a string array item borrowing data.
func NewStringArrayConst(name string, data []string) *Item {
	it := NewStringArray(name, data)
	it.owned = false
	return it
}

// NewObjectArray creates an object array item, taking ownership of every
// object in objs. It panics if any of them already has an owner.
func NewObjectArray(name string, objs []*Object) *Item {
	checkArrayLen(name, len(objs))
	for _, o := range objs {
		checkUnowned(o)
	}
	it := newItem(name, TypeObjectArray)
	it.objArr = objs
	for _, o := range objs {
		o.owner = it
	}
	it.dataSize = it.computeDataSize()
	return it
}

// Typed accessors. Each panics when the item has a different type.

// Bool returns the value of a boolean item.
func (it *Item) Bool() bool {
	it.mustBe(TypeBool)
	return it.boolVal
}

// Char returns the value of a character item.
func (it *Item) Char() byte {
	it.mustBe(TypeChar)
	return it.charVal
}

// Int32 returns the value of a 32-bit integer item.
func (it *Item) Int32() int32 {
	it.mustBe(TypeInt32)
	return it.int32Val
}

// Int64 returns the value of a 64-bit integer item.
func (it *Item) Int64() int64 {
	it.mustBe(TypeInt64)
	return it.int64Val
}

// Double returns the value of a double item.
func (it *Item) Double() float64 {
	it.mustBe(TypeDouble)
	return it.doubleVal
}

// String returns the value of a string item.
func (it *Item) String() string {
	it.mustBe(TypeString)
	return it.strVal
}

// Object returns the object held by an object item. The object stays owned
// by the item.
func (it *Item) Object() *Object {
	it.mustBe(TypeObject)
	return it.objVal
}

// CharArray returns the backing slice of a character array item.
func (it *Item) CharArray() []byte {
	it.mustBe(TypeCharArray)
	return it.charArr
}

// Int32Array returns the backing slice of a 32-bit integer array item.
func (it *Item) Int32Array() []int32 {
	it.mustBe(TypeInt32Array)
	return it.int32Arr
}

// Int64Array returns the backing slice of a 64-bit integer array item.
func (it *Item) Int64Array() []int64 {
	it.mustBe(TypeInt64Array)
	return it.int64Arr
}

// DoubleArray returns the backing slice of a double array item.
func (it *Item) DoubleArray() []float64 {
	it.mustBe(TypeDoubleArray)
	return it.doubleArr
}

// StringArray returns the backing slice of a string array item.
func (it *Item) StringArray() []string {
	it.mustBe(TypeStringArray)
	return it.strArr
}

// ObjectArray returns the backing slice of an object array item. The objects
// stay owned by the item.
func (it *Item) ObjectArray() []*Object {
	it.mustBe(TypeObjectArray)
	return it.objArr
}

// Setters. Replacing a payload recomputes the serialized size and propagates
// the delta to every ancestor.

// SetBool replaces the value of a boolean item.
func (it *Item) SetBool(value bool) {
	it.mustBe(TypeBool)
	it.boolVal = value
}

// SetChar replaces the value of a character item.
func (it *Item) SetChar(value byte) {
	it.mustBe(TypeChar)
	it.charVal = value
}

// SetInt32 replaces the value of a 32-bit integer item.
func (it *Item) SetInt32(value int32) {
	it.mustBe(TypeInt32)
	it.int32Val = value
}

// SetInt64 replaces the value of a 64-bit integer item.
func (it *Item) SetInt64(value int64) {
	it.mustBe(TypeInt64)
	it.int64Val = value
}

// SetDouble replaces the value of a double item.
func (it *Item) SetDouble(value float64) {
	it.mustBe(TypeDouble)
	it.doubleVal = value
}

// SetString replaces the value of a string item.
func (it *Item) SetString(value string) {
	it.mustBe(TypeString)
	it.strVal = value
	it.owned = true
	it.updateDataSize(it.computeDataSize())
}

// SetCharArray replaces the payload of a character array item, taking
// ownership of data.
func (it *Item) SetCharArray(data []byte) {
	it.mustBe(TypeCharArray)
	checkArrayLen(it.name, len(data))
	it.charArr = data
	it.owned = true
	it.updateDataSize(it.computeDataSize())
}

// SetCharArrayCopy replaces the payload of a character array item with a
// private copy of data.
func (it *Item) SetCharArrayCopy(data []byte) {
	it.SetCharArray(append([]byte(nil), data...))
}

// SetCharArrayConst replaces the payload of a character array item,
// borrowing data.
func (it *Item) SetCharArrayConst(data []byte) {
	it.SetCharArray(data)
	it.owned = false
}

// SetInt32Array replaces the payload of a 32-bit integer array item, taking
// ownership of data.
func (it *Item) SetInt32Array(data []int32) {
	it.mustBe(TypeInt32Array)
	checkArrayLen(it.name, len(data))
	it.int32Arr = data
	it.owned = true
	it.updateDataSize(it.computeDataSize())
}

// SetInt32ArrayCopy replaces the payload of a 32-bit integer array item with
// a private copy of data.
func (it *Item) SetInt32ArrayCopy(data []int32) {
	it.SetInt32Array(append([]int32(nil), data...))
}

// SetInt32ArrayConst replaces the payload of a 32-bit integer array item,
// borrowing data.
func (it *Item) SetInt32ArrayConst(data []int32) {
	it.SetInt32Array(data)
	it.owned = false
}

// SetInt64Array replaces the payload of a 64-bit integer array item, taking
// ownership of data.
func (it *Item) SetInt64Array(data []int64) {
	it.mustBe(TypeInt64Array)
	checkArrayLen(it.name, len(data))
	it.int64Arr = data
	it.owned = true
	it.updateDataSize(it.computeDataSize())
}

// SetInt64ArrayCopy replaces the payload of a 64-bit integer array item with
// a private copy of data.
func (it *Item) SetInt64ArrayCopy(data []int64) {
	it.SetInt64Array(append([]int64(nil), data...))
}

// SetInt64ArrayConst replaces the payload of a 64-bit integer array item,
// borrowing data.
func (it *Item) SetInt64ArrayConst(data []int64) {
	it.SetInt64Array(data)
	it.owned = false
}

// SetDoubleArray replaces the payload of a double array item, taking
// ownership of data.
func (it *Item) SetDoubleArray(data []float64) {
	it.mustBe(TypeDoubleArray)
	checkArrayLen(it.name, len(data))
	it.doubleArr = data
	it.owned = true
	it.updateDataSize(it.computeDataSize())
}

// SetDoubleArrayCopy replaces the payload of a double array item with a
// private copy of data.
func (it *Item) SetDoubleArrayCopy(data []float64) {
	it.SetDoubleArray(append([]float64(nil), data...))
}

// SetDoubleArrayConst replaces the payload of a double array item, borrowing
// data.
func (it *Item) SetDoubleArrayConst(data []float64) {
	it.SetDoubleArray(data)
	it.owned = false
}

// SetStringArray replaces the payload of a string array item, taking
// ownership of data.
func (it *Item) SetStringArray(data []string) {
	it.mustBe(TypeStringArray)
	checkArrayLen(it.name, len(data))
	it.strArr = data
	it.owned = true
	it.updateDataSize(it.computeDataSize())
}

// SetStringArrayCopy replaces the payload of a string array item with a
// private copy of data.
func (it *Item) SetStringArrayCopy(data []string) {
	it.SetStringArray(append([]string(nil), data...))
}

// SetStringArrayConst replaces the payload of a string array item, borrowing
// data.
func (it *Item) SetStringArrayConst(data []string) {
	it.SetStringArray(data)
	it.owned = false
}

// ReleaseObject detaches the object held by an object item and returns it as
// a new root. The item itself becomes empty and must be discarded. It panics
// if the item still has an owner; take it from its object first.
func (it *Item) ReleaseObject() *Object {
	it.mustBe(TypeObject)
	if it.owner != nil {
		panic(fmt.Sprintf("gwy: ReleaseObject on owned item %q", it.name))
	}
	obj := it.objVal
	obj.owner = nil
	it.objVal = nil
	it.dataSize = 0
	return obj
}

// ReleaseObjects detaches all objects held by an object array item and
// returns them as new roots. The item itself becomes empty and must be
// discarded. It panics if the item still has an owner.
func (it *Item) ReleaseObjects() []*Object {
	it.mustBe(TypeObjectArray)
	if it.owner != nil {
		panic(fmt.Sprintf("gwy: ReleaseObjects on owned item %q", it.name))
	}
	objs := it.objArr
	for _, o := range objs {
		o.owner = nil
	}
	it.objArr = nil
	it.dataSize = 0
	return objs
}
