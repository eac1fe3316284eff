package style

import (
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders template READMEs for the terminal with glamour
type MarkdownRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Word wrap width (0 = glamour default)
}

// NewMarkdownRenderer creates a renderer; plain selects the notty style
func NewMarkdownRenderer(plain bool) *MarkdownRenderer {
	r := &MarkdownRenderer{Style: "auto"}
	if plain {
		r.Style = "notty"
	}
	return r
}

// Render converts markdown to terminal output, falling back to the input on error
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}

	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
