package projectfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string, content []byte) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, content, 0o640))
}

func TestListFilesFiltering(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", []byte("<html></html>"))
	writeFile(t, root, "src/app.js", []byte("console.log(1)"))
	writeFile(t, root, ".env", []byte("SECRET=1"))
	writeFile(t, root, ".git/config", []byte("[core]"))
	writeFile(t, root, "node_modules/lib/index.js", []byte("module.exports = {}"))

	paths, err := ListFiles(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "src/app.js"}, paths)
}

func TestReadSkipsBinary(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.js", []byte("let x = 1"))
	writeFile(t, root, "logo.png", []byte{0x89, 'P', 'N', 'G', 0x00, 0x01})

	src, err := Read(root, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, src.FileCount)
	assert.Contains(t, src.Text, "=== app.js ===")
	assert.NotContains(t, src.Text, "logo.png")
}

func TestReadRespectsBudget(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", []byte("aaaa"))
	writeFile(t, root, "b.txt", []byte("bbbb"))

	src, err := Read(root, 20)
	require.NoError(t, err)
	assert.True(t, src.Truncated)
	assert.Equal(t, 1, src.FileCount)
	assert.Contains(t, src.Text, "a.txt")
	assert.NotContains(t, src.Text, "b.txt")

	full, err := Read(root, 0)
	require.NoError(t, err)
	assert.False(t, full.Truncated)
	assert.Equal(t, 2, full.FileCount)
}
