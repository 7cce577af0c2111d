// Package tui implements the interactive banner wizard: a short sequence
// of prompts (text, font, border, color, padding) with a live preview,
// ending in a confirmed style the CLI renders for real.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/style"
)

type step int

const (
	stepText step = iota
	stepFont
	stepBorder
	stepColor
	stepPadding
	stepConfirm
)

var stepPrompts = map[step]string{
	stepText:    "Banner text",
	stepFont:    "Font",
	stepBorder:  "Border",
	stepColor:   "Color",
	stepPadding: "Padding",
	stepConfirm: "Generate this banner?",
}

// colorChoices are the color values offered by the wizard. "none" maps
// to an empty color.
var colorChoices = []string{
	"none",
	"red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright_red", "bright_green", "bright_yellow", "bright_blue",
	"bright_magenta", "bright_cyan",
	"gradient:red-yellow", "gradient:blue-cyan", "gradient:magenta-cyan",
}

// previewWidth keeps the live preview narrow enough for most terminals.
const previewWidth = 60

// Model is the Bubbletea state for the wizard.
type Model struct {
	svc   *banner.Service
	fonts []string

	input   textinput.Model
	padding textinput.Model

	step      step
	text      string
	fontIdx   int
	borderIdx int
	colorIdx  int

	preview    string
	previewErr string

	done      bool
	cancelled bool
}

// NewModel constructs the wizard over the given service and font list.
func NewModel(svc *banner.Service, fonts []string) Model {
	input := textinput.New()
	input.Placeholder = "Your text here"
	input.CharLimit = 80
	input.Focus()

	padding := textinput.New()
	padding.Placeholder = "0"
	padding.CharLimit = 2

	if len(fonts) == 0 {
		fonts = []string{style.DefaultFont}
	}

	m := Model{
		svc:     svc,
		fonts:   fonts,
		input:   input,
		padding: padding,
	}
	for i, font := range fonts {
		if font == style.DefaultFont {
			m.fontIdx = i
			break
		}
	}
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Done reports the confirmed result. ok is false when the wizard was
// cancelled or has not finished.
func (m Model) Done() (string, style.Style, bool) {
	if !m.done || m.cancelled {
		return "", style.Style{}, false
	}
	return m.text, m.currentStyle(), true
}

// Cancelled reports whether the user aborted the wizard.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// borders lists the selectable border names in a fixed order.
func borders() []string {
	return style.BorderKinds()
}

// currentStyle assembles the style from the wizard's selections.
func (m Model) currentStyle() style.Style {
	font := m.fonts[m.fontIdx]
	width := previewWidth

	o := style.Overrides{
		Font:  &font,
		Width: &width,
	}

	if name := borders()[m.borderIdx]; name != "none" {
		if kind, err := style.ParseBorderKind(name); err == nil {
			o.Border = &kind
		}
	}
	if c := colorChoices[m.colorIdx]; c != "none" {
		o.Color = &c
	}
	if p := parsePadding(m.padding.Value()); p > 0 {
		o.Padding = &p
	}

	return style.New().Apply(o)
}

func parsePadding(s string) int {
	p := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		p = p*10 + int(r-'0')
	}
	return p
}

// refreshPreview renders the banner for the current selections.
func (m *Model) refreshPreview() {
	if m.text == "" {
		m.preview = ""
		m.previewErr = ""
		return
	}
	out, err := m.svc.Render(m.text, m.currentStyle())
	if err != nil {
		m.preview = ""
		m.previewErr = err.Error()
		return
	}
	m.preview = out
	m.previewErr = ""
}
