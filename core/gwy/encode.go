package gwy

import (
	"io"
	"math"

	"github.com/FocuswithJustin/gwyfile/core/errors"
)

// WriteObject serializes one object (without the file magic) to w.
func WriteObject(o *Object, w io.Writer) error {
	bw := newWriter(w)
	if err := encodeObject(o, bw); err != nil {
		return err
	}
	return bw.flush()
}

// WriteItem serializes one item (without the file magic) to w.
func WriteItem(it *Item, w io.Writer) error {
	bw := newWriter(w)
	if err := encodeItem(it, bw); err != nil {
		return err
	}
	return bw.flush()
}

// encodeObject writes the object name, the 32-bit size of the item stream
// and every item in current order. An object whose cached size does not fit
// the 32-bit size field is a reportable error: hosts can build trees too
// large for the format.
func encodeObject(o *Object, w *writer) error {
	if o.dataSize > math.MaxUint32 {
		return errors.NewDataf(errors.CodeObjectSize, ObjectPath(o),
			"object data size %d does not fit in 32 bits", o.dataSize)
	}
	if err := w.writeNULString(o.name); err != nil {
		return err
	}
	if err := w.writeUint32(uint32(o.dataSize)); err != nil {
		return err
	}
	for _, item := range o.items {
		if err := encodeItem(item, w); err != nil {
			return err
		}
	}
	return nil
}

// encodeItem writes the item name, type tag and payload. Arrays write their
// 32-bit element count before the elements; object payloads recurse with the
// same shape as the decoder. No depth limit is needed here: the tree was
// bounded at construction or by the decoder.
func encodeItem(it *Item, w *writer) error {
	if err := w.writeNULString(it.name); err != nil {
		return err
	}
	if err := w.writeByte(byte(it.typ)); err != nil {
		return err
	}

	switch it.typ {
	case TypeBool:
		b := byte(0)
		if it.boolVal {
			b = 1
		}
		return w.writeByte(b)
	case TypeChar:
		return w.writeByte(it.charVal)
	case TypeInt32:
		return w.writeInt32(it.int32Val)
	case TypeInt64:
		return w.writeInt64(it.int64Val)
	case TypeDouble:
		return w.writeDouble(it.doubleVal)
	case TypeString:
		return w.writeNULString(it.strVal)
	case TypeObject:
		return encodeObject(it.objVal, w)
	case TypeCharArray:
		if err := w.writeUint32(uint32(len(it.charArr))); err != nil {
			return err
		}
		return w.writeBytes(it.charArr)
	case TypeInt32Array:
		if err := w.writeUint32(uint32(len(it.int32Arr))); err != nil {
			return err
		}
		for _, v := range it.int32Arr {
			if err := w.writeInt32(v); err != nil {
				return err
			}
		}
		return nil
	case TypeInt64Array:
		if err := w.writeUint32(uint32(len(it.int64Arr))); err != nil {
			return err
		}
		for _, v := range it.int64Arr {
			if err := w.writeInt64(v); err != nil {
				return err
			}
		}
		return nil
	case TypeDoubleArray:
		if err := w.writeUint32(uint32(len(it.doubleArr))); err != nil {
			return err
		}
		for _, v := range it.doubleArr {
			if err := w.writeDouble(v); err != nil {
				return err
			}
		}
		return nil
	case TypeStringArray:
		if err := w.writeUint32(uint32(len(it.strArr))); err != nil {
			return err
		}
		for _, s := range it.strArr {
			if err := w.writeNULString(s); err != nil {
				return err
			}
		}
		return nil
	case TypeObjectArray:
		if err := w.writeUint32(uint32(len(it.objArr))); err != nil {
			return err
		}
		for _, o := range it.objArr {
			if err := encodeObject(o, w); err != nil {
				return err
			}
		}
		return nil
	}
	panic("gwy: encodeItem: invalid item type")
}
