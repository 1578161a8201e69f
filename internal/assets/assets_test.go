package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_CollectsOnlyCSSSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "zebra.css", ".z{}")
	writeFile(t, dir, "app.css", ".a{}")
	writeFile(t, dir, filepath.Join("chunks", "vendor.css"), ".v{}")
	writeFile(t, dir, "bundle.js", "console.log(1)")
	writeFile(t, dir, "index.html", "<html></html>")

	list, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "app.css", list[0].ID)
	assert.Equal(t, "chunks/vendor.css", list[1].ID)
	assert.Equal(t, "zebra.css", list[2].ID)
	assert.Equal(t, ".a{}", list[0].Text)
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestWrite_ReplacesContent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, filepath.Join("chunks", "app.css"), ".old{}")

	require.NoError(t, Write(dir, "chunks/app.css", ".new{}"))

	content, err := os.ReadFile(filepath.Join(dir, "chunks", "app.css"))
	require.NoError(t, err)
	assert.Equal(t, ".new{}", string(content))
}
