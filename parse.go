package jdom

import (
	"fmt"
	"strconv"
)

// utf8BOM is tolerated and skipped at the start of input.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseError describes where and why parsing failed. It unwraps to one
// of the package sentinel errors, usually ErrInvalidJSON.
type ParseError struct {
	Offset int
	Msg    string
	err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

func (e *ParseError) Unwrap() error {
	if e.err != nil {
		return e.err
	}
	return ErrInvalidJSON
}

// Parse converts JSON text into a document tree and returns its root.
// The input must be a single RFC 8259 value with nothing but whitespace
// after it; a leading UTF-8 byte-order mark is skipped. On any failure a
// *ParseError is returned and no partial tree is retained.
func Parse(data []byte) (*Value, error) {
	p := &parser{data: skipBOM(data)}
	p.skipWhitespace()
	v, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos != len(p.data) {
		return nil, p.errorf("unexpected trailing characters")
	}
	return v, nil
}

// ParseString is Parse for string input.
func ParseString(s string) (*Value, error) {
	return Parse([]byte(s))
}

// ParseWithComments behaves like Parse but first blanks out // line
// comments and /* block */ comments found outside string literals.
func ParseWithComments(data []byte) (*Value, error) {
	return Parse(stripComments(skipBOM(data)))
}

// ParseStringWithComments is ParseWithComments for string input.
func ParseStringWithComments(s string) (*Value, error) {
	return ParseWithComments([]byte(s))
}

func skipBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == utf8BOM[0] && data[1] == utf8BOM[1] && data[2] == utf8BOM[2] {
		return data[3:]
	}
	return data
}

// stripComments returns a copy of data with comments overwritten by
// spaces, so byte offsets in later parse errors still line up. Comment
// markers inside string literals are left alone; backslash escapes are
// honored when tracking string boundaries. An unterminated block comment
// is blanked to the end and surfaces as a parse error afterwards.
func stripComments(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	inString := false
	escaped := false
	for i := 0; i < len(out); i++ {
		c := out[i]
		if inString {
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch {
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(out) && out[i+1] == '/':
			for i < len(out) && out[i] != '\n' {
				out[i] = ' '
				i++
			}
		case c == '/' && i+1 < len(out) && out[i+1] == '*':
			out[i] = ' '
			out[i+1] = ' '
			i += 2
			for i < len(out) {
				if out[i] == '*' && i+1 < len(out) && out[i+1] == '/' {
					out[i] = ' '
					out[i+1] = ' '
					i++
					break
				}
				out[i] = ' '
				i++
			}
		}
	}
	return out
}

//------------------------------------------------------------------------------
// RECURSIVE DESCENT PARSER
//------------------------------------------------------------------------------

type parser struct {
	data []byte
	pos  int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// parseValue dispatches on the next non-whitespace character. depth is
// the number of enclosing containers; every '{' or '[' entered at
// depth maxNesting fails with ErrTooDeep.
func (p *parser) parseValue(depth int) (*Value, error) {
	p.skipWhitespace()
	if p.pos >= len(p.data) {
		return nil, p.errorf("unexpected end of input")
	}
	switch c := p.data[p.pos]; {
	case c == '{':
		return p.parseObject(depth)
	case c == '[':
		return p.parseArray(depth)
	case c == '"':
		s, err := p.parseRawString()
		if err != nil {
			return nil, err
		}
		return stringNoVerify(s), nil
	case c == 't' || c == 'f':
		return p.parseBool()
	case c == 'n':
		return p.parseNull()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
}

func (p *parser) parseObject(depth int) (*Value, error) {
	if depth >= maxNesting {
		return nil, &ParseError{Offset: p.pos, Msg: "nesting too deep", err: ErrTooDeep}
	}
	p.pos++ // consume '{'
	v := NewObject()
	o := v.obj
	p.skipWhitespace()
	if p.pos < len(p.data) && p.data[p.pos] == '}' {
		p.pos++
		return v, nil
	}
	for {
		p.skipWhitespace()
		if p.pos >= len(p.data) || p.data[p.pos] != '"' {
			return nil, p.errorf("expected object key")
		}
		keyOffset := p.pos
		key, err := p.parseRawString()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			return nil, p.errorf("expected ':' after object key")
		}
		p.pos++
		member, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := o.Add(key, member); err != nil {
			return nil, &ParseError{Offset: keyOffset, Msg: fmt.Sprintf("duplicate key %q", key), err: ErrDuplicateKey}
		}
		p.skipWhitespace()
		if p.pos < len(p.data) && p.data[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if p.pos >= len(p.data) || p.data[p.pos] != '}' {
		return nil, p.errorf("expected ',' or '}' in object")
	}
	p.pos++
	o.trim()
	return v, nil
}

func (p *parser) parseArray(depth int) (*Value, error) {
	if depth >= maxNesting {
		return nil, &ParseError{Offset: p.pos, Msg: "nesting too deep", err: ErrTooDeep}
	}
	p.pos++ // consume '['
	v := NewArray()
	a := v.arr
	p.skipWhitespace()
	if p.pos < len(p.data) && p.data[p.pos] == ']' {
		p.pos++
		return v, nil
	}
	for {
		item, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if err := a.Append(item); err != nil {
			return nil, p.errorf("%v", err)
		}
		p.skipWhitespace()
		if p.pos < len(p.data) && p.data[p.pos] == ',' {
			p.pos++
			continue
		}
		break
	}
	if p.pos >= len(p.data) || p.data[p.pos] != ']' {
		return nil, p.errorf("expected ',' or ']' in array")
	}
	p.pos++
	a.trim()
	return v, nil
}

// parseRawString consumes a quoted string, scanning for the matching
// unescaped closing quote before expanding escapes.
func (p *parser) parseRawString() (string, error) {
	start := p.pos
	p.pos++ // consume opening quote
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case '"':
			raw := p.data[start+1 : p.pos]
			p.pos++
			s, ok := unescapeString(raw)
			if !ok {
				return "", &ParseError{Offset: start, Msg: "invalid string literal"}
			}
			return s, nil
		case '\\':
			p.pos++
			if p.pos >= len(p.data) {
				return "", &ParseError{Offset: start, Msg: "unterminated string"}
			}
			p.pos++
		default:
			p.pos++
		}
	}
	return "", &ParseError{Offset: start, Msg: "unterminated string"}
}

func (p *parser) parseBool() (*Value, error) {
	if p.hasToken("true") {
		p.pos += 4
		return Bool(true), nil
	}
	if p.hasToken("false") {
		p.pos += 5
		return Bool(false), nil
	}
	return nil, p.errorf("invalid literal")
}

func (p *parser) parseNull() (*Value, error) {
	if p.hasToken("null") {
		p.pos += 4
		return Null(), nil
	}
	return nil, p.errorf("invalid literal")
}

func (p *parser) hasToken(tok string) bool {
	return len(p.data)-p.pos >= len(tok) && string(p.data[p.pos:p.pos+len(tok)]) == tok
}

// parseNumber scans the numeric token, validates it against the JSON
// number grammar (the conversion routine alone is more permissive: it
// would take leading zeros or hex floats), then converts it.
func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	for p.pos < len(p.data) && isNumberChar(p.data[p.pos]) {
		p.pos++
	}
	token := p.data[start:p.pos]
	if !validNumberLiteral(token) {
		return nil, &ParseError{Offset: start, Msg: fmt.Sprintf("invalid number literal %q", token)}
	}
	n, err := strconv.ParseFloat(string(token), 64)
	if err != nil {
		return nil, &ParseError{Offset: start, Msg: fmt.Sprintf("invalid number literal %q", token)}
	}
	return &Value{typ: TypeNumber, num: n}, nil
}

func isNumberChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E'
}

// validNumberLiteral checks the RFC 8259 number grammar:
// -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func validNumberLiteral(b []byte) bool {
	i := 0
	if i < len(b) && b[i] == '-' {
		i++
	}
	switch {
	case i < len(b) && b[i] == '0':
		i++
	case i < len(b) && b[i] >= '1' && b[i] <= '9':
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
		}
	default:
		return false
	}
	if i < len(b) && b[i] == '.' {
		i++
		if i >= len(b) || b[i] < '0' || b[i] > '9' {
			return false
		}
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
		}
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			i++
		}
		if i >= len(b) || b[i] < '0' || b[i] > '9' {
			return false
		}
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
		}
	}
	return i == len(b)
}
