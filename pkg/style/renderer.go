package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/scaffold/pkg/errors"
	"github.com/arthur-debert/scaffold/pkg/locator"
	"github.com/arthur-debert/scaffold/pkg/materialize"
	"github.com/arthur-debert/scaffold/pkg/scaffold"
	"github.com/pterm/pterm"
)

// Renderer turns engine results into terminal text
type Renderer interface {
	RenderResult(result *materialize.Result) string
	RenderListings(listings []locator.Listing) string
	RenderDescription(d *scaffold.Description) string
	RenderError(err error) string
}

// NewRenderer returns a TerminalRenderer when color is on, otherwise a PlainRenderer
func NewRenderer(color bool) Renderer {
	if color {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct {
	markdown *MarkdownRenderer
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{markdown: NewMarkdownRenderer(false)}
}

// RenderResult renders a finished or previewed run
func (r *TerminalRenderer) RenderResult(result *materialize.Result) string {
	var b strings.Builder

	if result.DryRun {
		b.WriteString(WarningIndicator() + " " + WarningStyle.Render("Dry run, nothing was written") + "\n\n")
		for _, e := range result.Plan.Entries {
			b.WriteString(Indent(planLine(e, PathStyle.Render), 1) + "\n")
		}
		b.WriteString("\n")
	}

	verb := "Created"
	if result.DryRun {
		verb = "Would create"
	}
	b.WriteString(fmt.Sprintf("%s %s %s\n", SuccessIndicator(), SuccessStyle.Render(verb), PathStyle.Render(result.Destination)))
	b.WriteString(Indent(MutedStyle.Render(summary(result)), 1))
	return b.String()
}

// RenderListings renders templates as a pterm table
func (r *TerminalRenderer) RenderListings(listings []locator.Listing) string {
	if len(listings) == 0 {
		return MutedStyle.Render(msgNoTemplates)
	}

	data := pterm.TableData{{"Template", "Source", "Description"}}
	for _, l := range listings {
		name := l.Name
		source := UserStyle.Render(l.Root)
		if l.BuiltIn {
			source = BuiltinStyle.Render("built-in")
		}
		if l.Shadowed {
			name = MutedStyle.Render(name + " (shadowed)")
		}
		data = append(data, []string{name, source, listingDescription(l)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return NewPlainRenderer().RenderListings(listings)
	}
	return TitleStyle.Render("Available Templates") + "\n" + table
}

// RenderDescription renders a template's README with glamour and its variables
func (r *TerminalRenderer) RenderDescription(d *scaffold.Description) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(d.Name) + "\n")
	b.WriteString(MutedStyle.Render(d.Root) + "\n")
	if d.Manifest.Description != "" {
		b.WriteString(NormalStyle.Render(d.Manifest.Description) + "\n")
	}

	if d.Readme != "" {
		b.WriteString(r.markdown.Render(d.Readme))
	}

	b.WriteString("\n" + SubtitleStyle.Render("Variables") + "\n")
	b.WriteString(variableLines(d, func(name string, required bool) string {
		line := CodeStyle.Render(name)
		if required {
			line += " " + WarningStyle.Render("required")
		}
		return line
	}))
	return strings.TrimRight(b.String(), "\n")
}

// RenderError renders an error with its code and details
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	var se *errors.ScaffoldError
	if !errors.As(err, &se) {
		return fmt.Sprintf("%s %s", ErrorIndicator(), ErrorStyle.Render(err.Error()))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s Error [%s]: %s", ErrorIndicator(), ErrorStyle.Render(string(se.Code)), messageOf(se)))
	for _, line := range detailLines(se) {
		b.WriteString("\n" + Indent(MutedStyle.Render(line), 1))
	}
	return b.String()
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderResult renders a finished or previewed run
func (r *PlainRenderer) RenderResult(result *materialize.Result) string {
	var b strings.Builder

	if result.DryRun {
		b.WriteString("Dry run, nothing was written\n\n")
		for _, e := range result.Plan.Entries {
			b.WriteString("  " + planLine(e, nil) + "\n")
		}
		b.WriteString("\n")
		b.WriteString("Would create " + result.Destination + "\n")
	} else {
		b.WriteString("Created " + result.Destination + "\n")
	}
	b.WriteString("  " + summary(result))
	return b.String()
}

// RenderListings renders templates one per line
func (r *PlainRenderer) RenderListings(listings []locator.Listing) string {
	if len(listings) == 0 {
		return msgNoTemplates
	}

	var b strings.Builder
	for _, l := range listings {
		source := l.Root
		if l.BuiltIn {
			source = "built-in"
		}
		line := fmt.Sprintf("%s\t%s", l.Name, source)
		if l.Shadowed {
			line += "\t(shadowed)"
		}
		if desc := listingDescription(l); desc != "" {
			line += "\t" + desc
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderDescription renders the README as-is followed by the variables
func (r *PlainRenderer) RenderDescription(d *scaffold.Description) string {
	var b strings.Builder

	b.WriteString(d.Name + " (" + d.Root + ")\n")
	if d.Manifest.Description != "" {
		b.WriteString(d.Manifest.Description + "\n")
	}
	if d.Readme != "" {
		b.WriteString("\n" + strings.TrimRight(d.Readme, "\n") + "\n")
	}

	b.WriteString("\nVariables\n")
	b.WriteString(variableLines(d, func(name string, required bool) string {
		if required {
			return name + " (required)"
		}
		return name
	}))
	return strings.TrimRight(b.String(), "\n")
}

// RenderError renders an error with its code and details
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	var se *errors.ScaffoldError
	if !errors.As(err, &se) {
		return "Error: " + err.Error()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Error [%s]: %s", se.Code, messageOf(se)))
	for _, line := range detailLines(se) {
		b.WriteString("\n  " + line)
	}
	return b.String()
}

const msgNoTemplates = "No templates found."

func planLine(e materialize.PlanEntry, style func(...string) string) string {
	path := e.Path
	if e.IsDir {
		path += "/"
	}
	if style != nil {
		path = style(path)
	}
	if e.Verbatim {
		path += " (verbatim)"
	}
	return path
}

func summary(result *materialize.Result) string {
	digest := result.Digest
	if len(digest) > 12 {
		digest = digest[:12]
	}
	return fmt.Sprintf("%d files, %d directories, digest %s", result.Files, result.Dirs, digest)
}

func listingDescription(l locator.Listing) string {
	if l.Err != nil {
		return "invalid manifest"
	}
	return l.Description
}

func variableLines(d *scaffold.Description, line func(name string, required bool) string) string {
	required := make(map[string]bool)
	for _, k := range d.Required {
		required[k] = true
	}

	names := append([]string(nil), d.Variables...)
	for _, k := range d.Required {
		if !contains(names, k) {
			names = append(names, k)
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return "  (none)\n"
	}
	var b strings.Builder
	for _, name := range names {
		b.WriteString("  " + line(name, required[name]) + "\n")
	}
	return b.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// messageOf includes the wrapped cause when it adds information
func messageOf(se *errors.ScaffoldError) string {
	if se.Wrapped == nil {
		return se.Message
	}
	return se.Message + ": " + se.Wrapped.Error()
}

func detailLines(se *errors.ScaffoldError) []string {
	keys := make([]string, 0, len(se.Details))
	for k := range se.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		value := se.Details[k]
		if list, ok := value.([]string); ok {
			value = strings.Join(list, ", ")
		}
		lines = append(lines, fmt.Sprintf("%s: %v", k, value))
	}
	return lines
}
