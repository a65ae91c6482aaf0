package jdom

import "strings"

// Dotted paths address nested object members: "a.b.c" names member "c"
// inside object "b" inside object "a". The grammar is deliberately
// minimal, matching the dot accessors on Object: segments are literal
// keys, so keys that themselves contain '.' cannot be addressed.

// BuildPath joins literal key segments into a dotted path.
// Example: BuildPath("config", "server", "port") -> "config.server.port".
func BuildPath(segments ...string) string {
	return strings.Join(segments, ".")
}

// splitPath splits a path at its first dot. hasDot is false when the
// path is a single segment.
func splitPath(path string) (head, rest string, hasDot bool) {
	i := strings.IndexByte(path, '.')
	if i < 0 {
		return path, "", false
	}
	return path[:i], path[i+1:], true
}
