package jdom

import "math"

// equalsEpsilon is the tolerance used when comparing numbers structurally.
const equalsEpsilon = 0.000001

// Value is one node of a JSON document tree: a tagged union over
// null/bool/number/string/array/object. A Value is created detached and
// becomes owned by at most one container for its lifetime; insertion
// operations reject a Value that already has a parent.
type Value struct {
	typ     ValueType
	parent  *Value
	boolean bool
	num     float64
	str     string
	arr     *Array
	obj     *Object
}

// Null returns a new detached null value.
func Null() *Value {
	return &Value{typ: TypeNull}
}

// Bool returns a new detached boolean value.
func Bool(b bool) *Value {
	return &Value{typ: TypeBool, boolean: b}
}

// Number returns a new detached number value. NaN and infinities are not
// representable in JSON and are rejected.
func Number(n float64) (*Value, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, ErrInvalidNumber
	}
	return &Value{typ: TypeNumber, num: n}, nil
}

// String returns a new detached string value. The text must be valid
// UTF-8; invalid sequences are rejected and no value is created.
func String(s string) (*Value, error) {
	if !validUTF8(s) {
		return nil, ErrInvalidUTF8
	}
	return &Value{typ: TypeString, str: s}, nil
}

// stringNoVerify skips UTF-8 validation. The parser builds strings from
// already-unescaped bytes and passes raw non-escape bytes through, same
// as the text it was given.
func stringNoVerify(s string) *Value {
	return &Value{typ: TypeString, str: s}
}

// NewArray returns a new detached value holding an empty array.
func NewArray() *Value {
	v := &Value{typ: TypeArray}
	v.arr = &Array{wrap: v}
	return v
}

// NewObject returns a new detached value holding an empty object.
func NewObject() *Value {
	v := &Value{typ: TypeObject}
	v.obj = &Object{wrap: v}
	return v
}

// Type reports the variant stored in v. A nil value reports TypeInvalid.
func (v *Value) Type() ValueType {
	if v == nil {
		return TypeInvalid
	}
	return v.typ
}

// Parent returns the container value that owns v, or nil for a root.
func (v *Value) Parent() *Value {
	if v == nil {
		return nil
	}
	return v.parent
}

// IsRoot reports whether v is not owned by any container.
func (v *Value) IsRoot() bool {
	return v != nil && v.parent == nil
}

// Bool returns the stored boolean, or false if v is not a boolean.
// Check Type before trusting the sentinel as real data.
func (v *Value) Bool() bool {
	if v == nil || v.typ != TypeBool {
		return false
	}
	return v.boolean
}

// Number returns the stored number, or 0 if v is not a number.
func (v *Value) Number() float64 {
	if v == nil || v.typ != TypeNumber {
		return 0
	}
	return v.num
}

// String returns the stored text, or "" if v is not a string.
func (v *Value) String() string {
	if v == nil || v.typ != TypeString {
		return ""
	}
	return v.str
}

// Array returns the contained array, or nil if v is not an array.
func (v *Value) Array() *Array {
	if v == nil || v.typ != TypeArray {
		return nil
	}
	return v.arr
}

// Object returns the contained object, or nil if v is not an object.
func (v *Value) Object() *Object {
	if v == nil || v.typ != TypeObject {
		return nil
	}
	return v.obj
}

// DeepCopy returns a detached copy of v sharing no structure with it.
// Copying a nil value returns nil.
func (v *Value) DeepCopy() *Value {
	if v == nil {
		return nil
	}
	switch v.typ {
	case TypeNull:
		return Null()
	case TypeBool:
		return Bool(v.boolean)
	case TypeNumber:
		return &Value{typ: TypeNumber, num: v.num}
	case TypeString:
		return stringNoVerify(v.str)
	case TypeArray:
		cp := NewArray()
		a := cp.arr
		a.grow(v.arr.Len())
		for _, item := range v.arr.values {
			child := item.DeepCopy()
			child.parent = cp
			a.values = append(a.values, child)
		}
		return cp
	case TypeObject:
		cp := NewObject()
		o := cp.obj
		o.grow(v.obj.Len())
		for i, key := range v.obj.keys {
			child := v.obj.values[i].DeepCopy()
			child.parent = cp
			o.keys = append(o.keys, key)
			o.values = append(o.values, child)
		}
		return cp
	}
	return nil
}

// Equals reports structural equality of two trees. Numbers are compared
// within a small epsilon, object member order is irrelevant, array order
// is not. Two nil values are equal.
func Equals(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case TypeNull:
		return true
	case TypeBool:
		return a.boolean == b.boolean
	case TypeNumber:
		return math.Abs(a.num-b.num) < equalsEpsilon
	case TypeString:
		return a.str == b.str
	case TypeArray:
		if a.arr.Len() != b.arr.Len() {
			return false
		}
		for i, item := range a.arr.values {
			if !Equals(item, b.arr.values[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for i, key := range a.obj.keys {
			other := b.obj.Get(key)
			if other == nil || !Equals(a.obj.values[i], other) {
				return false
			}
		}
		return true
	}
	return false
}
