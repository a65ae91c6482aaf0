// Package jdom provides an in-memory JSON document model: a mutable value
// tree built by a strict recursive-descent parser or programmatically, and
// serialized back to compact or pretty-printed text.
package jdom

import "errors"

// Error definitions shared across parse, mutate and serialize operations.
var (
	ErrInvalidJSON     = errors.New("invalid json document")
	ErrTooDeep         = errors.New("maximum nesting depth exceeded")
	ErrDuplicateKey    = errors.New("duplicate object key")
	ErrInvalidUTF8     = errors.New("invalid utf-8 sequence")
	ErrInvalidNumber   = errors.New("number is not finite")
	ErrNilValue        = errors.New("nil value")
	ErrValueAttached   = errors.New("value already has a parent")
	ErrPathNotFound    = errors.New("path not found in document")
	ErrArrayIndex      = errors.New("array index out of bounds")
	ErrTypeMismatch    = errors.New("type mismatch between value and destination")
	ErrBufferTooSmall  = errors.New("buffer too small for serialized output")
	ErrOperationFailed = errors.New("operation failed")
)

const (
	// startingCapacity is the minimum backing capacity allocated for a
	// non-empty object or array.
	startingCapacity = 16

	// maxNesting bounds parser recursion on adversarial input.
	maxNesting = 2048

	// numBufSize holds a double printed with 17 significant digits;
	// that's at most 25 bytes, so this is generous on purpose.
	numBufSize = 64
)

// ValueType represents the type of a JSON value.
type ValueType uint8

const (
	TypeInvalid ValueType = iota
	TypeNull
	TypeBool
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

// String returns the JSON name of the type.
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	}
	return "invalid"
}

// Allocator supplies the byte buffers used for serializer output. The
// default allocates from the heap; substitute it with SetAllocator before
// any other call to route all output buffers through custom storage
// (an arena, a pool). Buffers are handed to the caller, so an Allocator
// that recycles memory must only do so once the caller is done.
type Allocator interface {
	Alloc(n int) []byte
}

type heapAllocator struct{}

func (heapAllocator) Alloc(n int) []byte { return make([]byte, n) }

var allocator Allocator = heapAllocator{}

// SetAllocator replaces the buffer allocator used by serialization.
// It must be called before any other use of the package and is not safe
// for concurrent use with other calls.
func SetAllocator(a Allocator) {
	if a == nil {
		allocator = heapAllocator{}
		return
	}
	allocator = a
}

// escapeSlashes is the package-wide default for escaping '/' as '\/'
// during serialization, which keeps output embeddable in HTML/XML.
// Per-call SerializeOptions override it.
var escapeSlashes = true

// SetEscapeSlashes sets the package-wide default for escaping '/' in
// serialized strings. The default is true.
func SetEscapeSlashes(escape bool) {
	escapeSlashes = escape
}
