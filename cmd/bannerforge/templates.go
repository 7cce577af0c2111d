package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bannerforge/bannerforge/internal/style"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the built-in and user templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, name := range style.Templates() {
				st, err := style.ResolveTemplate(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					name,
					st.Font,
					st.Border.String(),
					orDash(st.Color),
					fmt.Sprint(st.Padding),
					st.Alignment.String(),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), listTable(
				[]string{"NAME", "FONT", "BORDER", "COLOR", "PADDING", "ALIGN"}, rows))
			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
