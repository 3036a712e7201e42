package gwy

// Magic is the 4-byte tag opening every GWY file.
const Magic = "GWYP"

// ItemType is the one-byte type tag of an item. Tags are ASCII letters;
// uppercase letters mark the array variant of the corresponding scalar.
type ItemType byte

const (
	// TypeBool is a boolean stored as one byte.
	TypeBool ItemType = 'b'
	// TypeChar is a single character (byte).
	TypeChar ItemType = 'c'
	// TypeInt32 is a 32-bit little-endian signed integer.
	TypeInt32 ItemType = 'i'
	// TypeInt64 is a 64-bit little-endian signed integer.
	TypeInt64 ItemType = 'q'
	// TypeDouble is a 64-bit little-endian IEEE-754 double.
	TypeDouble ItemType = 'd'
	// TypeString is a NUL-terminated UTF-8 string.
	TypeString ItemType = 's'
	// TypeObject is a nested object.
	TypeObject ItemType = 'o'
	// TypeCharArray is a counted array of characters.
	TypeCharArray ItemType = 'C'
	// TypeInt32Array is a counted array of 32-bit integers.
	TypeInt32Array ItemType = 'I'
	// TypeInt64Array is a counted array of 64-bit integers.
	TypeInt64Array ItemType = 'Q'
	// TypeDoubleArray is a counted array of doubles.
	TypeDoubleArray ItemType = 'D'
	// TypeStringArray is a counted array of NUL-terminated strings.
	TypeStringArray ItemType = 'S'
	// TypeObjectArray is a counted array of nested objects.
	TypeObjectArray ItemType = 'O'
)

// String returns the human-readable type name.
func (t ItemType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeChar:
		return "char"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	case TypeCharArray:
		return "char array"
	case TypeInt32Array:
		return "int32 array"
	case TypeInt64Array:
		return "int64 array"
	case TypeDoubleArray:
		return "double array"
	case TypeStringArray:
		return "string array"
	case TypeObjectArray:
		return "object array"
	default:
		return "unknown"
	}
}

// IsArray reports whether t is an array variant.
func (t ItemType) IsArray() bool {
	switch t {
	case TypeCharArray, TypeInt32Array, TypeInt64Array, TypeDoubleArray, TypeStringArray, TypeObjectArray:
		return true
	}
	return false
}

// valid reports whether t is a known type tag.
func (t ItemType) valid() bool {
	switch t {
	case TypeBool, TypeChar, TypeInt32, TypeInt64, TypeDouble, TypeString, TypeObject,
		TypeCharArray, TypeInt32Array, TypeInt64Array, TypeDoubleArray, TypeStringArray, TypeObjectArray:
		return true
	}
	return false
}
