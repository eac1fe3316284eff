package style

import (
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/locator"
	"github.com/arthur-debert/scaffold/pkg/manifest"
	"github.com/arthur-debert/scaffold/pkg/materialize"
	"github.com/arthur-debert/scaffold/pkg/scaffold"
	"github.com/stretchr/testify/assert"
)

func sampleResult(dryRun bool) *materialize.Result {
	plan := &materialize.Plan{
		Template: "standard",
		Entries: []materialize.PlanEntry{
			{Path: "README.md"},
			{Path: "src", IsDir: true},
			{Path: "logo.png", Verbatim: true},
		},
		Digest: "0123456789abcdef",
	}
	return &materialize.Result{
		Destination: "/tmp/demo",
		Files:       2,
		Dirs:        1,
		Digest:      plan.Digest,
		DryRun:      dryRun,
		Plan:        plan,
	}
}

func TestPlainRenderer_Result(t *testing.T) {
	r := NewPlainRenderer()

	out := r.RenderResult(sampleResult(false))
	assert.Equal(t, "Created /tmp/demo\n  2 files, 1 directories, digest 0123456789ab", out)

	out = r.RenderResult(sampleResult(true))
	assert.Contains(t, out, "Dry run, nothing was written")
	assert.Contains(t, out, "  src/\n")
	assert.Contains(t, out, "  logo.png (verbatim)\n")
	assert.Contains(t, out, "Would create /tmp/demo")
}

func TestPlainRenderer_Listings(t *testing.T) {
	r := NewPlainRenderer()

	assert.Equal(t, "No templates found.", r.RenderListings(nil))

	out := r.RenderListings([]locator.Listing{
		{Name: "api", Root: "/home/u/boilerplates", Description: "My API"},
		{Name: "standard", Root: "built-in catalog", BuiltIn: true, Description: "Standard"},
		{Name: "api", Root: "built-in catalog", BuiltIn: true, Shadowed: true},
	})
	assert.Equal(t, strings.Join([]string{
		"api\t/home/u/boilerplates\tMy API",
		"standard\tbuilt-in\tStandard",
		"api\tbuilt-in\t(shadowed)",
	}, "\n"), out)
}

func TestPlainRenderer_Description(t *testing.T) {
	d := &scaffold.Description{
		Descriptor: &locator.Descriptor{
			Name:     "standard",
			Root:     "builtin:standard",
			Manifest: &manifest.Manifest{Description: "Standard project"},
		},
		Readme:    "# {{ project_name }}\n",
		Variables: []string{"project_name", "author"},
		Required:  []string{"project_name", "module_name"},
	}

	out := NewPlainRenderer().RenderDescription(d)
	assert.Equal(t, strings.Join([]string{
		"standard (builtin:standard)",
		"Standard project",
		"",
		"# {{ project_name }}",
		"",
		"Variables",
		"  author",
		"  module_name (required)",
		"  project_name (required)",
	}, "\n"), out)
}

func TestPlainRenderer_Error(t *testing.T) {
	r := NewPlainRenderer()

	err := errors.Newf(errors.ErrTemplateNotFound, "template %q not found", "x").
		WithDetail("template", "x").
		WithDetail("searched", []string{"/a", "built-in catalog"})
	assert.Equal(t, strings.Join([]string{
		`Error [TEMPLATE_NOT_FOUND]: template "x" not found`,
		"  searched: /a, built-in catalog",
		"  template: x",
	}, "\n"), r.RenderError(err))

	assert.Equal(t, "Error: boom", r.RenderError(fmt.Errorf("boom")))
	assert.Empty(t, r.RenderError(nil))
}

func TestTerminalRenderer_Uncolored(t *testing.T) {
	Configure(ColorNever, nil)
	r := NewTerminalRenderer()

	out := r.RenderResult(sampleResult(false))
	assert.Contains(t, out, "Created")
	assert.Contains(t, out, "/tmp/demo")

	out = r.RenderError(errors.New(errors.ErrIOFailure, "disk full").WithDetail("path", "/tmp/demo"))
	assert.Contains(t, out, "IO_FAILURE")
	assert.Contains(t, out, "path: /tmp/demo")

	out = r.RenderListings([]locator.Listing{{Name: "standard", BuiltIn: true, Description: "Standard"}})
	assert.Contains(t, out, "standard")
	assert.Contains(t, out, "built-in")
}

func TestConfigure(t *testing.T) {
	assert.True(t, Configure(ColorAlways, nil))
	assert.False(t, Configure(ColorNever, nil))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, Configure(ColorAuto, nil))
}
