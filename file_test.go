package jdom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a":[1,2]}`), 0o644))

	v, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Object().GetArray("a").Len())

	_, err = ParseFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"a":`), 0o644))
	_, err = ParseFile(path)
	assert.Error(t, err)
}

func TestParseFileWithComments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := "{\n// port to listen on\n\"port\": 8080 /* default */\n}"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := ParseFileWithComments(path)
	require.NoError(t, err)
	assert.Equal(t, float64(8080), v.Object().GetNumber("port"))
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	v, err := Parse([]byte(`{"a":1,"b":["x"]}`))
	require.NoError(t, err)

	compact := filepath.Join(dir, "compact.json")
	require.NoError(t, WriteFile(v, compact))
	data, err := os.ReadFile(compact)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":["x"]}`, string(data))

	prettyPath := filepath.Join(dir, "pretty.json")
	require.NoError(t, WriteFilePretty(v, prettyPath))
	back, err := ParseFile(prettyPath)
	require.NoError(t, err)
	assert.True(t, Equals(v, back))

	// Unwritable destination surfaces the I/O failure.
	assert.Error(t, WriteFile(v, filepath.Join(dir, "no", "such", "dir.json")))
}
