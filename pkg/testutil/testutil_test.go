package testutil

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/scaffold/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndReadTree(t *testing.T) {
	root := t.TempDir()
	tree := map[string]string{
		"README.md":       "hello",
		"src/":            "",
		"src/app/main.py": "print()",
	}
	WriteTree(t, root, tree)

	AssertTree(t, map[string]string{
		"README.md":       "hello",
		"src/":            "",
		"src/app/":        "",
		"src/app/main.py": "print()",
	}, root)

	assert.Equal(t, []string{"README.md", "src"}, Entries(t, root))
	assert.Nil(t, Entries(t, filepath.Join(root, "missing")))
	assert.True(t, FileExists(t, filepath.Join(root, "README.md")))
	assert.True(t, DirExists(t, filepath.Join(root, "src")))
	assert.True(t, PathExists(t, filepath.Join(root, "src")))
}

func TestFailingFS(t *testing.T) {
	root := t.TempDir()
	ffs := NewFailingFS(filesystem.NewOS(), 2)

	require.NoError(t, ffs.MkdirAll(filepath.Join(root, "a"), 0755))
	err := ffs.WriteFile(filepath.Join(root, "a", "f"), []byte("x"), 0644)
	assert.True(t, errors.Is(err, ErrInjected))
	require.NoError(t, ffs.WriteFile(filepath.Join(root, "a", "g"), []byte("x"), 0644))

	assert.Equal(t, 3, ffs.Calls())
	assert.Len(t, ffs.Ops(), 3)
	assert.False(t, FileExists(t, filepath.Join(root, "a", "f")))
	assert.True(t, FileExists(t, filepath.Join(root, "a", "g")))
}
