package jdom

// Text-level formatting helpers: parse strictly, then re-serialize.
// Unlike whitespace-shuffling formatters these reject malformed input
// instead of passing it through.

// FormatOptions contains formatting configuration.
type FormatOptions struct {
	// Indent is the per-level indentation string (e.g. "  ", "\t").
	// Empty means minify.
	Indent string

	// EscapeSlashes overrides the package default for '/' escaping.
	EscapeSlashes *bool
}

// Pretty formats JSON text with four-space indentation.
func Pretty(data []byte) ([]byte, error) {
	return PrettyWithOptions(data, &FormatOptions{Indent: defaultIndent})
}

// PrettyWithOptions formats JSON text with custom options. An empty
// indent minifies, same as Ugly.
func PrettyWithOptions(data []byte, opts *FormatOptions) ([]byte, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	so := &SerializeOptions{}
	if opts != nil {
		so.Indent = opts.Indent
		so.EscapeSlashes = opts.EscapeSlashes
		so.Pretty = opts.Indent != ""
	}
	return SerializeWithOptions(v, so)
}

// Ugly removes all whitespace between tokens.
func Ugly(data []byte) ([]byte, error) {
	return PrettyWithOptions(data, nil)
}

// Valid reports whether data is a single well-formed JSON value.
func Valid(data []byte) bool {
	_, err := Parse(data)
	return err == nil
}
