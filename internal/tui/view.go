package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the wizard: title, the active prompt, and the live preview
// once there is text to render.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render("bannerforge • interactive"))
	sections = append(sections, promptStyle.Render(stepPrompts[m.step]))

	switch m.step {
	case stepText:
		sections = append(sections, m.input.View())
	case stepFont:
		sections = append(sections, renderChoices(m.fonts, m.fontIdx))
	case stepBorder:
		sections = append(sections, renderChoices(borders(), m.borderIdx))
	case stepColor:
		sections = append(sections, renderChoices(colorChoices, m.colorIdx))
	case stepPadding:
		sections = append(sections, m.padding.View())
	case stepConfirm:
		sections = append(sections, choiceStyle.Render("enter to generate, esc to cancel"))
	}

	if m.previewErr != "" {
		sections = append(sections, errorStyle.Render(m.previewErr))
	} else if m.preview != "" {
		sections = append(sections, previewStyle.Render(m.preview))
	}

	sections = append(sections, helpStyle.Render(m.help()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderChoices shows the selection inline with its neighbours for context.
func renderChoices(choices []string, idx int) string {
	var parts []string
	for offset := -1; offset <= 1; offset++ {
		i := wrapIndex(idx+offset, len(choices))
		if offset == 0 {
			parts = append(parts, selectedStyle.Render(fmt.Sprintf("‹ %s ›", choices[i])))
			continue
		}
		parts = append(parts, choiceStyle.Render(choices[i]))
	}
	return strings.Join(parts, "  ")
}

func (m Model) help() string {
	switch m.step {
	case stepText, stepPadding:
		return "enter: next • esc: cancel"
	case stepConfirm:
		return "enter: generate • esc: cancel"
	default:
		return "←/→: choose • enter: next • esc: cancel"
	}
}
