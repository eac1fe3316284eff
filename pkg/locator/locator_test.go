// Test Type: Unit Test
// Description: Tests for the locator package - template resolution across search roots

package locator_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/locator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builtinRoot() locator.Root {
	return locator.Root{
		Name:    "built-in catalog",
		BuiltIn: true,
		FS: fstest.MapFS{
			"standard/README.md":     {Data: []byte("built-in")},
			"standard/scaffold.toml": {Data: []byte("description = \"builtin standard\"\n")},
			"api/main.py":            {Data: []byte("print()")},
			"empty":                  {Mode: os.ModeDir | 0755},
			"broken/scaffold.toml":   {Data: []byte("version = 9\n")},
			"notadir":                {Data: []byte("file")},
		},
	}
}

func userRoot(t *testing.T) (locator.Root, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "standard"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "standard", "README.md"), []byte("user"), 0644))
	return locator.NewDirRoot(dir), dir
}

func TestLocate_FirstRootWins(t *testing.T) {
	user, dir := userRoot(t)

	desc, err := locator.Locate("standard", []locator.Root{user, builtinRoot()})
	require.NoError(t, err)
	assert.False(t, desc.BuiltIn)
	assert.Equal(t, filepath.Join(dir, "standard"), desc.Root)
	assert.False(t, desc.Manifest.Present)

	desc, err = locator.Locate("standard", []locator.Root{builtinRoot(), user})
	require.NoError(t, err)
	assert.True(t, desc.BuiltIn)
	assert.Equal(t, "builtin:standard", desc.Root)
	assert.Equal(t, "builtin standard", desc.Manifest.Description)
}

func TestLocate_DescriptorFSIsRootedAtTemplate(t *testing.T) {
	desc, err := locator.Locate("api", []locator.Root{builtinRoot()})
	require.NoError(t, err)

	data, err := readFile(desc, "main.py")
	require.NoError(t, err)
	assert.Equal(t, "print()", data)
}

func TestLocate_NotFound(t *testing.T) {
	missing := locator.NewDirRoot(filepath.Join(t.TempDir(), "does-not-exist"))

	_, err := locator.Locate("django", []locator.Root{missing, builtinRoot()})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
	assert.Equal(t, []string{missing.Name, "built-in catalog"}, errors.GetErrorDetail(err, "searched"))
}

func TestLocate_CaseSensitive(t *testing.T) {
	_, err := locator.Locate("Standard", []locator.Root{builtinRoot()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
}

func TestLocate_FileIsNotATemplate(t *testing.T) {
	_, err := locator.Locate("notadir", []locator.Root{builtinRoot()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
}

func TestLocate_InvalidTemplate(t *testing.T) {
	for _, name := range []string{"empty", "broken"} {
		t.Run(name, func(t *testing.T) {
			_, err := locator.Locate(name, []locator.Root{builtinRoot()})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTemplate))
			assert.Equal(t, "builtin:"+name, errors.GetErrorDetail(err, "root"))
		})
	}
}

func TestLocate_InvalidName(t *testing.T) {
	for _, name := range []string{"", ".", "..", "a/b", `a\b`, "../etc"} {
		_, err := locator.Locate(name, []locator.Root{builtinRoot()})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), name)
	}
}

func TestSearchRoots(t *testing.T) {
	builtin := builtinRoot()

	roots := locator.SearchRoots(builtin, []string{"/a", "", "/b"}, locator.PrecedenceUserFirst)
	require.Len(t, roots, 3)
	assert.Equal(t, "/a", roots[0].Name)
	assert.Equal(t, "/b", roots[1].Name)
	assert.True(t, roots[2].BuiltIn)

	roots = locator.SearchRoots(builtin, []string{"/a", "/b"}, locator.PrecedenceBuiltinFirst)
	require.Len(t, roots, 3)
	assert.True(t, roots[0].BuiltIn)
	assert.Equal(t, "/a", roots[1].Name)
}

func TestList(t *testing.T) {
	user, dir := userRoot(t)

	listings := locator.List([]locator.Root{user, builtinRoot()})

	var names []string
	for _, l := range listings {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"standard", "api", "broken", "empty", "standard"}, names)

	assert.Equal(t, dir, listings[0].Root)
	assert.False(t, listings[0].Shadowed)
	assert.True(t, listings[4].Shadowed)
	assert.Equal(t, "builtin standard", listings[4].Description)
	assert.Error(t, listings[2].Err)
}
