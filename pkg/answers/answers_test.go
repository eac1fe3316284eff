package answers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/variables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{
			name:   "yaml",
			format: FormatYAML,
			data:   "project_name: demo\ninclude_ai: true\nworkers: 4\nratio: 0.5\nmeta:\n  owner: team\n",
		},
		{
			name:   "json with comments",
			format: FormatJSON,
			data: `{
  // the project
  "project_name": "demo",
  "include_ai": true,
  "workers": 4,
  "ratio": 0.5,
  "meta": {"owner": "team"},
}`,
		},
		{
			name:   "toml",
			format: FormatTOML,
			data:   "project_name = \"demo\"\ninclude_ai = true\nworkers = 4\nratio = 0.5\n[meta]\nowner = \"team\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)

			assert.Equal(t, "demo", values["project_name"])
			assert.Equal(t, true, values["include_ai"])
			assert.EqualValues(t, 4, values["workers"])
			assert.Equal(t, 0.5, values["ratio"])
			assert.Equal(t, "team", values["meta.owner"])
		})
	}
}

func TestParse_JSONIntegersAreInt64(t *testing.T) {
	values, err := Parse([]byte(`{"n": 3, "list": [1, 2.5]}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, int64(3), values["n"])
	assert.Equal(t, []any{int64(1), 2.5}, values["list"])
}

func TestParse_LargeIntegersKeepDigits(t *testing.T) {
	for _, tc := range []struct {
		format Format
		data   string
	}{
		{FormatYAML, "big: 18446744073709551615"},
		{FormatJSON, `{"big": 18446744073709551615}`},
	} {
		t.Run(string(tc.format), func(t *testing.T) {
			values, err := Parse([]byte(tc.data), tc.format)
			require.NoError(t, err)

			set, err := variables.Resolve(nil, variables.Source{Name: "answers", Values: values})
			require.NoError(t, err)
			big, _ := set.Lookup("big")
			assert.Equal(t, "18446744073709551615", big)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.yml")
	require.NoError(t, os.WriteFile(path, []byte("author: Ada\n"), 0644))

	src, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "answers file "+path, src.Name)
	assert.Equal(t, "Ada", src.Values["author"])
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "answers.ini"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("= nope"), 0644))
	_, err = LoadFile(bad)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestParseSet(t *testing.T) {
	src, err := ParseSet([]string{"include_ai=true", "workers=2", "name=a=b", "license=MIT", "license=\"None\""})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"include_ai": true,
		"workers":    int64(2),
		"name":       "a=b",
		"license":    "None",
	}, src.Values)
}

func TestParseSet_Invalid(t *testing.T) {
	for _, pair := range []string{"novalue", "=x", " =x"} {
		_, err := ParseSet([]string{pair})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), pair)
	}
}
