package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFontsCmd(app *AppContext) *cobra.Command {
	var (
		category string
		search   string
		sample   string
	)

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List the available fonts",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if sample != "" {
				for _, name := range app.Catalog.Fonts() {
					rendered, err := app.Catalog.Sample(name, sample)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s\n%s\n\n", headerStyle.Render(name), rendered)
				}
				return nil
			}

			names := app.Catalog.Fonts()
			switch {
			case search != "":
				names = app.Catalog.Search(search)
			case category != "":
				names = app.Catalog.ByCategory(category)
			}

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				info, err := app.Catalog.Info(name)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					info.Name,
					fmt.Sprint(info.Height),
					joinOrDash(info.Categories),
					joinOrDash(info.RecommendedFor),
				})
			}

			fmt.Fprintln(out, listTable([]string{"NAME", "HEIGHT", "CATEGORIES", "RECOMMENDED FOR"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only fonts in this category")
	cmd.Flags().StringVar(&search, "search", "", "Filter fonts by name, category, or use case")
	cmd.Flags().StringVar(&sample, "sample", "", "Render this text in every font")

	return cmd
}
