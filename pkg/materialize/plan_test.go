// Test Type: Unit Test
// Description: Tests for plan computation - selection, rendering, collisions and digests

package materialize_test

import (
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/materialize"
	"github.com/arthur-debert/scaffold/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planPaths(plan *materialize.Plan) []string {
	out := make([]string, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		out = append(out, e.Path)
	}
	return out
}

func findEntry(t *testing.T, plan *materialize.Plan, path string) materialize.PlanEntry {
	t.Helper()
	for _, e := range plan.Entries {
		if e.Path == path {
			return e
		}
	}
	t.Fatalf("no plan entry for %s in %v", path, planPaths(plan))
	return materialize.PlanEntry{}
}

func TestPlan_RendersPathsAndContent(t *testing.T) {
	desc := descriptor(t, fstest.MapFS{
		"README.md":                       file("# {{ project_name }}\n"),
		"src/{{module_name}}/__init__.py": file(""),
		"pyproject.toml.tmpl":             file("name = \"{{project_name}}\"\n"),
	})
	m := materialize.New(testutil.NewTestFS())

	plan, err := m.Plan(desc, vars(t, map[string]any{"project_name": "demo", "module_name": "demo_pkg"}))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"README.md",
		"pyproject.toml",
		"src",
		"src/demo_pkg",
		"src/demo_pkg/__init__.py",
	}, planPaths(plan))
	assert.Equal(t, "# demo\n", string(findEntry(t, plan, "README.md").Content))
	assert.Equal(t, "name = \"demo\"\n", string(findEntry(t, plan, "pyproject.toml").Content))
	assert.Equal(t, "src/{{module_name}}/__init__.py", findEntry(t, plan, "src/demo_pkg/__init__.py").Source)
	assert.Equal(t, 3, plan.Files())
	assert.Equal(t, 2, plan.Dirs())
	assert.NotEmpty(t, plan.Digest)
}

func TestPlan_ManifestIsNeverCopied(t *testing.T) {
	desc := descriptor(t, fstest.MapFS{
		"scaffold.toml": file("description = \"x\"\n"),
		"a.txt":         file("a"),
		".DS_Store":     file("junk"),
	})
	m := materialize.New(testutil.NewTestFS())

	plan, err := m.Plan(desc, vars(t, nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, planPaths(plan))
}

func TestPlan_ConventionDirectories(t *testing.T) {
	desc := descriptor(t, fstest.MapFS{
		"src/main.py":        file("main"),
		"src/ai/__init__.py": file(""),
		"src/ai/model.py":    file("model"),
	})
	m := materialize.New(testutil.NewTestFS())

	tests := []struct {
		name   string
		values map[string]any
		want   []string
	}{
		{
			name:   "flag unset excludes module",
			values: nil,
			want:   []string{"src", "src/main.py"},
		},
		{
			name:   "flag false excludes module",
			values: map[string]any{"include_ai": false},
			want:   []string{"src", "src/main.py"},
		},
		{
			name:   "flag true includes module",
			values: map[string]any{"include_ai": true},
			want:   []string{"src", "src/ai", "src/ai/__init__.py", "src/ai/model.py", "src/main.py"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := m.Plan(desc, vars(t, tt.values))
			require.NoError(t, err)
			assert.Equal(t, tt.want, planPaths(plan))
		})
	}
}

func TestPlan_CustomConventions(t *testing.T) {
	desc := descriptor(t, fstest.MapFS{
		"ai/model.py":   file("model"),
		"docs/index.md": file("docs"),
	})
	m := materialize.New(testutil.NewTestFS(), materialize.WithConventions(map[string]string{"docs": "include_docs"}))

	plan, err := m.Plan(desc, vars(t, nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"ai", "ai/model.py"}, planPaths(plan))
}

func TestPlan_ManifestRules(t *testing.T) {
	desc := descriptor(t, fstest.MapFS{
		"scaffold.toml": file(`
[[rules]]
path = "LICENSE"
when = "license != \"None\""
`),
		"LICENSE":   file("{{license}}"),
		"README.md": file("readme"),
	})
	m := materialize.New(testutil.NewTestFS())

	plan, err := m.Plan(desc, vars(t, map[string]any{"license": "MIT"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"LICENSE", "README.md"}, planPaths(plan))

	plan, err = m.Plan(desc, vars(t, map[string]any{"license": "None"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md"}, planPaths(plan))
}

func TestPlan_Collision(t *testing.T) {
	desc := descriptor(t, fstest.MapFS{
		"{{a}}.txt": file("a"),
		"{{b}}.txt": file("b"),
	})
	m := materialize.New(testutil.NewTestFS())

	_, err := m.Plan(desc, vars(t, map[string]any{"a": "x", "b": "x"}))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathCollision))
	assert.Equal(t, "x.txt", errors.GetErrorDetail(err, "path"))
	assert.Equal(t, []string{"{{a}}.txt", "{{b}}.txt"}, errors.GetErrorDetail(err, "sources"))

	_, err = m.Plan(desc, vars(t, map[string]any{"a": "x", "b": "y"}))
	assert.NoError(t, err)
}

func TestPlan_TemplateSuffixCollision(t *testing.T) {
	desc := descriptor(t, fstest.MapFS{
		"setup.cfg":      file("plain"),
		"setup.cfg.tmpl": file("templated"),
	})
	m := materialize.New(testutil.NewTestFS())

	_, err := m.Plan(desc, vars(t, nil))
	assert.True(t, errors.IsErrorCode(err, errors.ErrPathCollision))
}

func TestPlan_UnresolvedToken(t *testing.T) {
	desc := descriptor(t, fstest.MapFS{
		"README.md": file("line one\n{{ missing }}\n"),
	})
	m := materialize.New(testutil.NewTestFS())

	_, err := m.Plan(desc, vars(t, nil))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnresolvedToken))
	assert.Equal(t, "missing", errors.GetErrorDetail(err, "key"))
	assert.Equal(t, "README.md", errors.GetErrorDetail(err, "location"))
}

func TestPlan_VerbatimAndBinary(t *testing.T) {
	desc := descriptor(t, fstest.MapFS{
		"scaffold.toml": file("verbatim = [\"static/*\"]\n"),
		"static/app.js": file("const t = `{{ nope }}`"),
		"logo.png":      {Data: []byte("\x89PNG\x00{{ nope }}"), Mode: 0644},
		"notes.md":      file("{{ name }}"),
	})
	m := materialize.New(testutil.NewTestFS())

	plan, err := m.Plan(desc, vars(t, map[string]any{"name": "n"}))
	require.NoError(t, err)

	js := findEntry(t, plan, "static/app.js")
	assert.True(t, js.Verbatim)
	assert.Equal(t, "const t = `{{ nope }}`", string(js.Content))

	png := findEntry(t, plan, "logo.png")
	assert.True(t, png.Verbatim)
	assert.Equal(t, "\x89PNG\x00{{ nope }}", string(png.Content))

	notes := findEntry(t, plan, "notes.md")
	assert.False(t, notes.Verbatim)
	assert.Equal(t, "n", string(notes.Content))
}

func TestPlan_ExecutableModes(t *testing.T) {
	desc := descriptor(t, fstest.MapFS{
		"scaffold.toml": file("executable = [\"bin/*.sh\"]\n"),
		"bin/setup.sh":  file("#!/bin/sh\n"),
		"run.sh":        {Data: []byte("#!/bin/sh\n"), Mode: 0755},
		"bin/README.md": file("docs"),
	})
	m := materialize.New(testutil.NewTestFS())

	plan, err := m.Plan(desc, vars(t, nil))
	require.NoError(t, err)
	assert.Equal(t, materialize.ExecutableMode, findEntry(t, plan, "bin/setup.sh").Mode)
	assert.Equal(t, materialize.ExecutableMode, findEntry(t, plan, "run.sh").Mode)
	assert.Equal(t, materialize.FileMode, findEntry(t, plan, "bin/README.md").Mode)
	assert.Equal(t, materialize.DirMode, findEntry(t, plan, "bin").Mode)
}

func TestPlan_DigestIsDeterministic(t *testing.T) {
	desc := descriptor(t, fstest.MapFS{
		"README.md":   file("# {{project_name}}"),
		"src/main.py": file("print('{{project_name}}')"),
	})
	m := materialize.New(testutil.NewTestFS())

	first, err := m.Plan(desc, vars(t, map[string]any{"project_name": "a"}))
	require.NoError(t, err)
	second, err := m.Plan(desc, vars(t, map[string]any{"project_name": "a"}))
	require.NoError(t, err)
	other, err := m.Plan(desc, vars(t, map[string]any{"project_name": "b"}))
	require.NoError(t, err)

	assert.Equal(t, first.Digest, second.Digest)
	assert.Equal(t, first.Entries, second.Entries)
	assert.NotEqual(t, first.Digest, other.Digest)
}

func TestPlan_NilDescriptor(t *testing.T) {
	m := materialize.New(testutil.NewTestFS())
	_, err := m.Plan(nil, vars(t, nil))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
