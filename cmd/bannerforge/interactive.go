package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bannerforge/bannerforge/internal/tui"
)

var interactiveCmdRunner = runInteractive

func newInteractiveCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Build a banner through guided prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return interactiveCmdRunner(app)
		},
	}
}

func runInteractive(app *AppContext) error {
	model := tui.NewModel(app.Service, app.Renderer.Fonts())

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}

	result, ok := final.(tui.Model)
	if !ok {
		return fmt.Errorf("unexpected wizard state")
	}
	if result.Cancelled() {
		return nil
	}

	text, st, ok := result.Done()
	if !ok {
		return nil
	}

	rendered, err := app.Service.Render(text, st)
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}
