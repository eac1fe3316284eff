package cli

import (
	"fmt"

	"github.com/arthur-debert/scaffold/internal/version"
	"github.com/arthur-debert/scaffold/pkg/config"
	"github.com/arthur-debert/scaffold/pkg/variables"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(scaffold completion bash)

Zsh:
  $ scaffold completion zsh > "${fpath[1]}/_scaffold"

Fish:
  $ scaffold completion fish | source

PowerShell:
  PS> scaffold completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return fmt.Errorf(MsgErrUnknownShell, args[0])
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		Long:  "Write the scaffold man page to standard output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "SCAFFOLD",
				Section: "1",
				Source:  "scaffold " + version.Version,
				Manual:  "scaffold manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	var showDefaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showDefaults {
				fmt.Fprint(out, config.DefaultsContent())
				return nil
			}

			cfg, err := a.engine.LoadConfig(a.configFile)
			if err != nil {
				return err
			}

			file := cfg.File
			if file == "" {
				file = MsgConfigNoFile
			}
			fmt.Fprintf(out, MsgConfigFileFormat, file)
			fmt.Fprintf(out, MsgConfigPrecedenceFormat, cfg.Settings.Precedence)

			fmt.Fprintln(out, MsgConfigRootsHeader)
			for _, root := range a.engine.Roots(cfg) {
				fmt.Fprintf(out, "  %s\n", root.Name)
			}

			vars, err := variables.NewVariableSet(cfg.Variables.Values)
			if err != nil {
				return err
			}
			if vars.Len() > 0 {
				fmt.Fprintln(out, MsgConfigVariablesHeader)
				for _, key := range vars.Keys() {
					value, _ := vars.Lookup(key)
					fmt.Fprintf(out, "  %s = %s\n", key, value)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDefaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
