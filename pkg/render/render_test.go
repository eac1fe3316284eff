package render

import (
	"testing"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/variables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVars(t *testing.T) variables.VariableSet {
	t.Helper()
	set, err := variables.NewVariableSet(map[string]any{
		"project_name": "demo",
		"module_name":  "demo_app",
		"include_ai":   true,
		"workers":      4,
		"ratio":        0.25,
		"company.name": "Acme",
		"slash":        "a/b",
		"empty":        "",
		"dots":         "..",
	})
	require.NoError(t, err)
	return set
}

func TestRender(t *testing.T) {
	vars := testVars(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no tokens", "plain text", "plain text"},
		{"single", "# {{ project_name }}", "# demo"},
		{"no spaces", "{{project_name}}", "demo"},
		{"tabs", "{{\tproject_name\t}}", "demo"},
		{"adjacent", "{{project_name}}{{module_name}}", "demodemo_app"},
		{"bool", "ai={{ include_ai }}", "ai=true"},
		{"int", "n={{ workers }}", "n=4"},
		{"float", "r={{ ratio }}", "r=0.25"},
		{"dotted key", "{{ company.name }}", "Acme"},
		{"escaped", `\{{ project_name }}`, "{{ project_name }}"},
		{"escaped then token", `\{{ x }} {{ project_name }}`, "{{ x }} demo"},
		{"lone braces", "a } b {", "a } b {"},
		{"closing only", "}} and }}", "}} and }}"},
		{"multiline", "line1\n{{ project_name }}\nline3", "line1\ndemo\nline3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.in, vars, "test.txt")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_UnknownKey(t *testing.T) {
	_, err := Render("a\nb\nhello {{ missing }}", testVars(t), "README.md")
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrUnresolvedToken))
	assert.Equal(t, "missing", errors.GetErrorDetail(err, "key"))
	assert.Equal(t, "README.md", errors.GetErrorDetail(err, "location"))
	assert.Equal(t, 3, errors.GetErrorDetail(err, "line"))
}

func TestRender_Malformed(t *testing.T) {
	for _, in := range []string{
		"{{ project_name",
		"{{ }}",
		"{{ two words }}",
		"{{ 9lives }}",
		"{{ a|upper }}",
		"{{\nproject_name }}",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Render(in, testVars(t), "f")
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnresolvedToken))
		})
	}
}

func TestTokens(t *testing.T) {
	text := "{{ b }} {{a}} \\{{ escaped }} {{ bad token }} {{ b }} {{ c.d }} {{ unterminated"
	assert.Equal(t, []string{"a", "b", "c.d"}, Tokens(text))
	assert.Empty(t, Tokens("nothing here"))
}

func TestRenderPath(t *testing.T) {
	vars := testVars(t)

	got, err := RenderPath("src/{{module_name}}/__init__.py", vars)
	require.NoError(t, err)
	assert.Equal(t, "src/demo_app/__init__.py", got)

	got, err = RenderPath("{{ project_name }}-{{workers}}.md", vars)
	require.NoError(t, err)
	assert.Equal(t, "demo-4.md", got)
}

func TestRenderPath_Invalid(t *testing.T) {
	vars := testVars(t)

	for _, rel := range []string{"src/{{ slash }}", "{{ empty }}/x", "{{ dots }}", `src/\{{project_name}}.py`} {
		t.Run(rel, func(t *testing.T) {
			_, err := RenderPath(rel, vars)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidPath))
			assert.Equal(t, rel, errors.GetErrorDetail(err, "path"))
		})
	}

	_, err := RenderPath("src/{{ nope }}", vars)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnresolvedToken))
}

func TestStripTemplateSuffix(t *testing.T) {
	assert.Equal(t, "go.mod", StripTemplateSuffix("go.mod.tmpl"))
	assert.Equal(t, "cmd/main.go", StripTemplateSuffix("cmd/main.go.tmpl"))
	assert.Equal(t, "x.tmpl/main.go", StripTemplateSuffix("x.tmpl/main.go"))
	assert.Equal(t, "dir/.tmpl", StripTemplateSuffix("dir/.tmpl"))
	assert.Equal(t, "README.md", StripTemplateSuffix("README.md"))
}
