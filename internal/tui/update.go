package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and advances the wizard.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		return m.advance()
	case tea.KeyUp, tea.KeyLeft:
		m.cycle(-1)
		m.refreshPreview()
		return m, nil
	case tea.KeyDown, tea.KeyRight:
		m.cycle(1)
		m.refreshPreview()
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs forwards messages to whichever text input is active.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.step {
	case stepText:
		m.input, cmd = m.input.Update(msg)
	case stepPadding:
		m.padding, cmd = m.padding.Update(msg)
		m.refreshPreview()
	}
	return m, cmd
}

// advance moves to the next step, finishing the wizard at the confirm step.
func (m Model) advance() (tea.Model, tea.Cmd) {
	switch m.step {
	case stepText:
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.text = text
		m.input.Blur()
	case stepPadding:
		m.padding.Blur()
	case stepConfirm:
		m.done = true
		return m, tea.Quit
	}

	m.step++
	if m.step == stepPadding {
		m.padding.Focus()
	}
	m.refreshPreview()
	return m, nil
}

// cycle moves the selection on list-based steps.
func (m *Model) cycle(delta int) {
	switch m.step {
	case stepFont:
		m.fontIdx = wrapIndex(m.fontIdx+delta, len(m.fonts))
	case stepBorder:
		m.borderIdx = wrapIndex(m.borderIdx+delta, len(borders()))
	case stepColor:
		m.colorIdx = wrapIndex(m.colorIdx+delta, len(colorChoices))
	}
}

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
