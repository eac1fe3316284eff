package cli

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/scaffold/pkg/cobrax/topics"
	"github.com/arthur-debert/scaffold/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed help/*.md
var helpFiles embed.FS

// initTopics installs `help <topic>` backed by the embedded help directory
func (a *app) initTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(helpFiles, "help")
	if err != nil {
		return
	}

	renderer := topics.RendererFunc(func(content, format string) string {
		if format != ".md" || !a.colorOn {
			return content
		}
		return style.NewMarkdownRenderer(false).Render(content)
	})

	if _, err := topics.InitializeWithOptions(rootCmd, sub, topics.Options{Renderer: renderer}); err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
	}
}
