package cli

import (
	"fmt"

	"github.com/arthur-debert/scaffold/pkg/locator"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listings, err := a.engine.List(a.configFile)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer.RenderListings(listings))
			return nil
		},
	}
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "describe TEMPLATE",
		Aliases:           []string{"show"},
		Short:             MsgDescribeShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.completeTemplates,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.engine.Describe(args[0], a.configFile)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.renderer.RenderDescription(d))
			return nil
		},
	}
}

// completeTemplates offers the names of visible templates
func (a *app) completeTemplates(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if a.engine == nil {
		if err := a.setup(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	listings, err := a.engine.List(a.configFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return templateNames(listings), cobra.ShellCompDirectiveNoFileComp
}

func templateNames(listings []locator.Listing) []string {
	var names []string
	for _, l := range listings {
		if !l.Shadowed {
			names = append(names, l.Name)
		}
	}
	return names
}
