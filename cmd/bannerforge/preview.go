package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bannerforge/bannerforge/internal/style"
)

const defaultPreviewText = "Demo"

func newPreviewCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [TEXT]",
		Short: "Render sample text in every font",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := defaultPreviewText
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				text = args[0]
			}

			out := cmd.OutOrStdout()
			for _, name := range app.Catalog.Fonts() {
				font := name
				rendered, err := app.Service.Render(text, style.New().Apply(style.Overrides{Font: &font}))
				if err != nil {
					return err
				}
				panel := panelStyle.Render(headerStyle.Render(name) + "\n" + rendered)
				fmt.Fprintln(out, panel)
			}
			return nil
		},
	}
}
