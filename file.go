package jdom

import "os"

// File helpers read the whole file into memory and delegate to the
// in-memory parser and serializer; there is no streaming.

// ParseFile reads and parses a JSON file.
func ParseFile(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// ParseFileWithComments reads and parses a JSON file that may contain
// // and /* */ comments.
func ParseFileWithComments(path string) (*Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseWithComments(data)
}

// WriteFile serializes the tree compactly and writes it to path.
func WriteFile(v *Value, path string) error {
	data, err := Serialize(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteFilePretty serializes the tree with indentation and writes it
// to path.
func WriteFilePretty(v *Value, path string) error {
	data, err := SerializePretty(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
