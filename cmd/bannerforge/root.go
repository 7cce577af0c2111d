package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bannerforge",
		Short:         "bannerforge renders styled ASCII text banners",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGenerateCmd(app, flags))
	cmd.AddCommand(newFontsCmd(app))
	cmd.AddCommand(newTemplatesCmd())
	cmd.AddCommand(newSchemesCmd())
	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newInteractiveCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
