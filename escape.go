package jdom

import "unicode/utf8"

// isCont reports whether b is a UTF-8 continuation byte.
func isCont(b byte) bool {
	return b&0xC0 == 0x80
}

// decodeUTF8Sequence decodes and validates one UTF-8 sequence at the
// start of b. It classifies the lead byte into a 1-4 byte sequence,
// checks every continuation byte, and rejects overlong encodings,
// codepoints beyond U+10FFFF and surrogate codepoints. ok is false for
// any invalid or truncated sequence.
func decodeUTF8Sequence(b []byte) (r rune, size int, ok bool) {
	if len(b) == 0 {
		return 0, 0, false
	}
	lead := b[0]
	switch {
	case lead < 0x80:
		return rune(lead), 1, true
	case lead&0xE0 == 0xC0:
		size = 2
	case lead&0xF0 == 0xE0:
		size = 3
	case lead&0xF8 == 0xF0:
		size = 4
	default:
		return 0, 0, false
	}
	if len(b) < size {
		return 0, 0, false
	}
	for i := 1; i < size; i++ {
		if !isCont(b[i]) {
			return 0, 0, false
		}
	}
	switch size {
	case 2:
		r = rune(lead&0x1F)<<6 | rune(b[1]&0x3F)
		if r < 0x80 {
			return 0, 0, false // overlong
		}
	case 3:
		r = rune(lead&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
		if r < 0x800 {
			return 0, 0, false // overlong
		}
		if r >= 0xD800 && r <= 0xDFFF {
			return 0, 0, false // surrogate half
		}
	case 4:
		r = rune(lead&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F)
		if r < 0x10000 {
			return 0, 0, false // overlong
		}
		if r > 0x10FFFF {
			return 0, 0, false
		}
	}
	return r, size, true
}

// validUTF8 reports whether s consists entirely of valid UTF-8
// sequences per decodeUTF8Sequence.
func validUTF8(s string) bool {
	b := []byte(s)
	for len(b) > 0 {
		_, size, ok := decodeUTF8Sequence(b)
		if !ok {
			return false
		}
		b = b[size:]
	}
	return true
}

// parseHexQuad parses exactly four hex digits. ok is false on short
// input or any non-hex character.
func parseHexQuad(b []byte) (uint16, bool) {
	if len(b) < 4 {
		return 0, false
	}
	var n uint16
	for i := 0; i < 4; i++ {
		c := b[i]
		n <<= 4
		switch {
		case c >= '0' && c <= '9':
			n |= uint16(c - '0')
		case c >= 'a' && c <= 'f':
			n |= uint16(c-'a') + 10
		case c >= 'A' && c <= 'F':
			n |= uint16(c-'A') + 10
		default:
			return 0, false
		}
	}
	return n, true
}

// decodeUTF16Escape consumes one \uXXXX escape starting at the 'u' in
// raw, combining a lead surrogate with its mandatory \uXXXX trail into a
// supplementary codepoint. It appends the UTF-8 encoding to dst and
// returns the number of raw bytes consumed ("uXXXX" is 5,
// "uXXXX\uXXXX" is 11). ok is false for a short or malformed escape, a
// lead surrogate without a valid trail, or a lone trail surrogate.
func decodeUTF16Escape(dst, raw []byte) (out []byte, consumed int, ok bool) {
	if len(raw) == 0 || raw[0] != 'u' {
		return dst, 0, false
	}
	cp, ok := parseHexQuad(raw[1:])
	if !ok {
		return dst, 0, false
	}
	r := rune(cp)
	consumed = 5
	switch {
	case r >= 0xDC00 && r <= 0xDFFF:
		// Trail surrogate with no preceding lead.
		return dst, 0, false
	case r >= 0xD800 && r <= 0xDBFF:
		if len(raw) < 11 || raw[5] != '\\' || raw[6] != 'u' {
			return dst, 0, false
		}
		trail, ok := parseHexQuad(raw[7:])
		if !ok || trail < 0xDC00 || trail > 0xDFFF {
			return dst, 0, false
		}
		r = ((r-0xD800)<<10 | (rune(trail) - 0xDC00)) + 0x10000
		consumed = 11
	}
	return utf8.AppendRune(dst, r), consumed, true
}

// unescapeString expands the escape sequences of a raw JSON string body
// (the bytes between the quotes). It rejects unescaped control bytes
// 0x00-0x1F and unknown escapes; all other bytes pass through unchanged.
func unescapeString(raw []byte) (string, bool) {
	// Fast path: nothing to expand, nothing to reject.
	clean := true
	for _, c := range raw {
		if c == '\\' || c < 0x20 {
			clean = false
			break
		}
	}
	if clean {
		return string(raw), true
	}

	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		c := raw[i]
		if c < 0x20 {
			return "", false
		}
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		i++
		if i >= len(raw) {
			return "", false
		}
		switch raw[i] {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case '/':
			out = append(out, '/')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			var consumed int
			var ok bool
			out, consumed, ok = decodeUTF16Escape(out, raw[i:])
			if !ok {
				return "", false
			}
			i += consumed
			continue
		default:
			return "", false
		}
		i++
	}
	return string(out), true
}
