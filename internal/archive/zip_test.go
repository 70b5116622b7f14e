package archive

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpack_RoundTrip(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(cwd, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "src", "a.js"), []byte("var a = 1;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "index.js"), []byte("require('./src/a');"), 0o644))

	data, err := Pack([]string{filepath.FromSlash("src/a.js"), "index.js"}, cwd)
	require.NoError(t, err)

	dest := t.TempDir()
	require.NoError(t, Unpack(data, dest))

	a, err := os.ReadFile(filepath.Join(dest, "src", "a.js"))
	require.NoError(t, err)
	assert.Equal(t, "var a = 1;", string(a))

	idx, err := os.ReadFile(filepath.Join(dest, "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "require('./src/a');", string(idx))
}

func TestPack_EntryNamesAreSlashRelative(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(cwd, "lib", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "lib", "deep", "b.js"), []byte("b"), 0o644))

	data, err := Pack([]string{filepath.FromSlash("lib/deep/b.js")}, cwd)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "lib/deep/b.js", zr.File[0].Name)
}

func TestPack_MissingSourceFails(t *testing.T) {
	_, err := Pack([]string{"nope.js"}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.js")
}

func TestUnpack_RejectsEscapingEntries(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("../evil.js")
	require.NoError(t, err)
	_, err = w.Write([]byte("boom"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	dest := t.TempDir()
	err = Unpack(buf.Bytes(), dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes")

	_, statErr := os.Stat(filepath.Join(dest, "..", "evil.js"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestUnpack_GarbageInput(t *testing.T) {
	err := Unpack([]byte("not a zip"), t.TempDir())
	require.Error(t, err)
}
