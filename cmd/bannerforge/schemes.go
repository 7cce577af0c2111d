package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bannerforge/bannerforge/internal/style"
)

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the color schemes",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, name := range style.Schemes() {
				overrides, err := style.ResolveScheme(name)
				if err != nil {
					return err
				}
				st := style.New().Apply(overrides)
				rows = append(rows, []string{
					name,
					orDash(st.Color),
					orDash(st.BorderColor),
					fmt.Sprint(st.Shadow),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), listTable(
				[]string{"NAME", "COLOR", "BORDER COLOR", "SHADOW"}, rows))
			return nil
		},
	}
}
