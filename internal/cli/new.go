package cli

import (
	"fmt"

	"github.com/arthur-debert/scaffold/pkg/logging"
	"github.com/arthur-debert/scaffold/pkg/scaffold"
	"github.com/spf13/cobra"
)

func newNewCmd(a *app) *cobra.Command {
	var req scaffold.Request

	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: MsgNewShort,
		Long: `New generates a project called NAME from a template.

Variables come from, lowest precedence first: built-in defaults, the config
file, --answers, --set and finally NAME, which becomes project_name.
module_name and project_slug are derived from NAME unless set explicitly.
author and email fall back to your git identity.

Without --template the built-in template for project_type is used:
standard, data_science, web_api, cli_tool or automation.`,
		Example: `  # Standard project in ./demo_app
  scaffold new demo_app

  # FastAPI service
  scaffold new api_service --set project_type=web_api

  # Enable optional modules
  scaffold new demo_app --set include_ai=true --set include_docker=true

  # Use a user template and an answers file
  scaffold new api_service -t fastapi --answers answers.yaml -o ~/src/api

  # Preview without writing
  scaffold new demo_app --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ProjectName = args[0]
			req.ConfigFile = a.configFile

			logger := logging.GetLogger("cli.new")
			logger.Info().
				Str("project", req.ProjectName).
				Str("template", req.Template).
				Bool("dryRun", req.DryRun).
				Bool("force", req.Overwrite).
				Msg("Generating project")

			result, err := a.engine.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.renderer.RenderResult(result))
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Template, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringArrayVar(&req.Set, "set", nil, MsgFlagSet)
	cmd.Flags().StringVar(&req.AnswersFile, "answers", "", MsgFlagAnswers)
	cmd.Flags().StringVarP(&req.Destination, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&req.Overwrite, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&req.DryRun, "dry-run", false, MsgFlagDryRun)

	_ = cmd.RegisterFlagCompletionFunc("template", a.completeTemplates)
	return cmd
}
