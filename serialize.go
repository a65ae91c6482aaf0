package jdom

import (
	"math"
	"strconv"
)

// defaultIndent is one pretty-printing level.
const defaultIndent = "    "

// SerializeOptions configures one serialization call. The zero value
// produces compact output with the package-default slash escaping.
type SerializeOptions struct {
	// Pretty places every member and element on its own indented line.
	Pretty bool

	// Indent is the per-level indent string used when Pretty is set.
	// Empty means four spaces.
	Indent string

	// EscapeSlashes overrides the package default set with
	// SetEscapeSlashes. Escaping '/' keeps output embeddable in
	// HTML/XML contexts.
	EscapeSlashes *bool
}

// DefaultSerializeOptions is used when a nil options pointer is passed.
var DefaultSerializeOptions = SerializeOptions{}

func (opts *SerializeOptions) resolve() (pretty bool, indent string, escSlash bool) {
	if opts == nil {
		opts = &DefaultSerializeOptions
	}
	indent = opts.Indent
	if indent == "" {
		indent = defaultIndent
	}
	escSlash = escapeSlashes
	if opts.EscapeSlashes != nil {
		escSlash = *opts.EscapeSlashes
	}
	return opts.Pretty, indent, escSlash
}

// Serialize renders the tree as compact JSON text into a buffer of
// exactly the needed size.
func Serialize(v *Value) ([]byte, error) {
	return SerializeWithOptions(v, nil)
}

// SerializePretty renders the tree as indented JSON text.
func SerializePretty(v *Value) ([]byte, error) {
	return SerializeWithOptions(v, &SerializeOptions{Pretty: true})
}

// SerializeWithOptions renders the tree in two passes: the first runs
// the traversal with no output target and computes the exact byte count,
// the second writes into a buffer of that size. Both passes share one
// code path, so they cannot drift apart.
func SerializeWithOptions(v *Value, opts *SerializeOptions) ([]byte, error) {
	n, err := SerializedLen(v, opts)
	if err != nil {
		return nil, err
	}
	buf := allocator.Alloc(n)
	written, err := serializeInto(v, buf[:n], opts)
	if err != nil {
		return nil, err
	}
	if written != n {
		return nil, ErrOperationFailed
	}
	return buf[:n], nil
}

// SerializedLen returns the exact number of bytes the tree serializes
// to under opts, without allocating output.
func SerializedLen(v *Value, opts *SerializeOptions) (int, error) {
	pretty, indent, escSlash := opts.resolve()
	w := &writer{pretty: pretty, indent: indent, escapeSlashes: escSlash}
	if err := w.value(v, 0); err != nil {
		return 0, err
	}
	return w.pos, nil
}

// SerializeToBuffer renders the tree into a caller-provided buffer and
// returns the number of bytes written. It fails with ErrBufferTooSmall
// when buf cannot hold the output.
func SerializeToBuffer(v *Value, buf []byte, opts *SerializeOptions) (int, error) {
	return serializeInto(v, buf, opts)
}

// SerializeString is Serialize returning a string.
func SerializeString(v *Value) (string, error) {
	b, err := Serialize(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SerializeStringPretty is SerializePretty returning a string.
func SerializeStringPretty(v *Value) (string, error) {
	b, err := SerializePretty(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func serializeInto(v *Value, buf []byte, opts *SerializeOptions) (int, error) {
	pretty, indent, escSlash := opts.resolve()
	w := &writer{dst: buf, pretty: pretty, indent: indent, escapeSlashes: escSlash}
	if err := w.value(v, 0); err != nil {
		return 0, err
	}
	return w.pos, nil
}

//------------------------------------------------------------------------------
// TWO-PASS WRITER
//------------------------------------------------------------------------------

// writer emits into dst, or only counts when dst is nil. The measuring
// pass and the emitting pass run the identical traversal.
type writer struct {
	dst           []byte
	pos           int
	indent        string
	pretty        bool
	escapeSlashes bool
}

func (w *writer) str(s string) error {
	if w.dst != nil {
		if w.pos+len(s) > len(w.dst) {
			return ErrBufferTooSmall
		}
		copy(w.dst[w.pos:], s)
	}
	w.pos += len(s)
	return nil
}

func (w *writer) byte(c byte) error {
	if w.dst != nil {
		if w.pos+1 > len(w.dst) {
			return ErrBufferTooSmall
		}
		w.dst[w.pos] = c
	}
	w.pos++
	return nil
}

// writeIndent appends level copies of the indent string.
func (w *writer) writeIndent(level int) error {
	for i := 0; i < level; i++ {
		if err := w.str(w.indent); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) value(v *Value, level int) error {
	if v == nil {
		return ErrNilValue
	}
	switch v.typ {
	case TypeNull:
		return w.str("null")
	case TypeBool:
		if v.boolean {
			return w.str("true")
		}
		return w.str("false")
	case TypeNumber:
		return w.number(v.num)
	case TypeString:
		return w.string(v.str)
	case TypeArray:
		return w.array(v.arr, level)
	case TypeObject:
		return w.object(v.obj, level)
	}
	return ErrOperationFailed
}

func (w *writer) array(a *Array, level int) error {
	count := a.Len()
	if err := w.byte('['); err != nil {
		return err
	}
	if count > 0 && w.pretty {
		if err := w.byte('\n'); err != nil {
			return err
		}
	}
	for i, item := range a.values {
		if w.pretty {
			if err := w.writeIndent(level + 1); err != nil {
				return err
			}
		}
		if err := w.value(item, level+1); err != nil {
			return err
		}
		if i < count-1 {
			if err := w.byte(','); err != nil {
				return err
			}
		}
		if w.pretty {
			if err := w.byte('\n'); err != nil {
				return err
			}
		}
	}
	if count > 0 && w.pretty {
		if err := w.writeIndent(level); err != nil {
			return err
		}
	}
	return w.byte(']')
}

func (w *writer) object(o *Object, level int) error {
	count := o.Len()
	if err := w.byte('{'); err != nil {
		return err
	}
	if count > 0 && w.pretty {
		if err := w.byte('\n'); err != nil {
			return err
		}
	}
	for i, key := range o.keys {
		if w.pretty {
			if err := w.writeIndent(level + 1); err != nil {
				return err
			}
		}
		if err := w.string(key); err != nil {
			return err
		}
		if err := w.byte(':'); err != nil {
			return err
		}
		if w.pretty {
			if err := w.byte(' '); err != nil {
				return err
			}
		}
		if err := w.value(o.values[i], level+1); err != nil {
			return err
		}
		if i < count-1 {
			if err := w.byte(','); err != nil {
				return err
			}
		}
		if w.pretty {
			if err := w.byte('\n'); err != nil {
				return err
			}
		}
	}
	if count > 0 && w.pretty {
		if err := w.writeIndent(level); err != nil {
			return err
		}
	}
	return w.byte('}')
}

// string emits a quoted JSON string, escaping the two mandatory
// characters, the short escapes, every control byte 0x00-0x1F as \u00xx,
// and '/' when slash escaping is on. All other bytes pass through.
func (w *writer) string(s string) error {
	if err := w.byte('"'); err != nil {
		return err
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			if err := w.str(`\"`); err != nil {
				return err
			}
		case c == '\\':
			if err := w.str(`\\`); err != nil {
				return err
			}
		case c == '\b':
			if err := w.str(`\b`); err != nil {
				return err
			}
		case c == '\f':
			if err := w.str(`\f`); err != nil {
				return err
			}
		case c == '\n':
			if err := w.str(`\n`); err != nil {
				return err
			}
		case c == '\r':
			if err := w.str(`\r`); err != nil {
				return err
			}
		case c == '\t':
			if err := w.str(`\t`); err != nil {
				return err
			}
		case c < 0x20:
			const hex = "0123456789abcdef"
			if err := w.str(`\u00`); err != nil {
				return err
			}
			if err := w.byte(hex[c>>4]); err != nil {
				return err
			}
			if err := w.byte(hex[c&0xF]); err != nil {
				return err
			}
		case c == '/' && w.escapeSlashes:
			if err := w.str(`\/`); err != nil {
				return err
			}
		default:
			if err := w.byte(c); err != nil {
				return err
			}
		}
	}
	return w.byte('"')
}

// number formats with up to 17 significant digits (enough to round-trip
// any double) into a bounded scratch buffer.
func (w *writer) number(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrInvalidNumber
	}
	var scratch [numBufSize]byte
	b := strconv.AppendFloat(scratch[:0], f, 'g', 17, 64)
	return w.str(string(b))
}
