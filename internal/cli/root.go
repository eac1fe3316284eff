package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/scaffold/internal/version"
	"github.com/arthur-debert/scaffold/pkg/logging"
	"github.com/arthur-debert/scaffold/pkg/paths"
	"github.com/arthur-debert/scaffold/pkg/scaffold"
	"github.com/arthur-debert/scaffold/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds state shared by all commands of one invocation
type app struct {
	verbosity  int
	configFile string
	color      string
	colorOn    bool

	engineOpts []scaffold.Option
	engine     *scaffold.Engine
	renderer   style.Renderer
}

// Option configures the command tree, mostly for tests
type Option func(*app)

// WithEngineOptions passes options to the scaffold engine
func WithEngineOptions(opts ...scaffold.Option) Option {
	return func(a *app) { a.engineOpts = append(a.engineOpts, opts...) }
}

// NewRootCmd creates and returns the root command
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{}
	for _, opt := range opts {
		opt(a)
	}

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "scaffold",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetUsageTemplate(usageTemplate)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&a.color, "color", string(style.ColorAuto), MsgFlagColor)

	rootCmd.AddCommand(newNewCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newDescribeCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	a.initTopics(rootCmd)

	return rootCmd
}

// setup configures logging, colors and the engine from flags and config
func (a *app) setup(cmd *cobra.Command) error {
	mode := style.ColorMode(a.color)
	switch mode {
	case style.ColorAuto, style.ColorAlways, style.ColorNever:
	default:
		return fmt.Errorf(MsgErrColorMode, a.color)
	}

	p := paths.New()
	a.engine = scaffold.New(append([]scaffold.Option{scaffold.WithPaths(p)}, a.engineOpts...)...)

	logFile := p.LogFilePath()
	level := ""
	// Config errors surface from the command itself; logging falls back to defaults
	cfg, cfgErr := a.engine.LoadConfig(a.configFile)
	if cfgErr == nil {
		if cfg.Settings.Log.File != "" {
			logFile = cfg.Settings.Log.File
		}
		level = cfg.Settings.Log.Level
	}

	logging.Setup(logging.Options{Verbosity: a.verbosity, File: logFile, Console: cmd.ErrOrStderr()})
	if a.verbosity == 0 && level != "" && !logging.SetLevel(level) {
		log.Warn().Str("level", level).Msg("Ignoring unknown log level from config")
	}
	if cfgErr != nil {
		log.Debug().Err(cfgErr).Msg(MsgDebugConfig)
	}

	a.colorOn = style.Configure(mode, outputFile(cmd.OutOrStdout()))
	a.renderer = style.NewRenderer(a.colorOn)
	return nil
}

// outputFile returns w as a file when it is one, so terminal detection can use it
func outputFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}

// FormatError renders err for the terminal the way commands render results
func FormatError(err error) string {
	return style.NewRenderer(style.DetectColor(os.Stderr)).RenderError(err)
}
