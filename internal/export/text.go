package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bannerforge/bannerforge/internal/style"
)

// TextOptions controls the text serialization.
type TextOptions struct {
	// IncludeColors keeps the ANSI decoration in the output.
	IncludeColors bool
	// IncludeMetadata prefixes the banner with comment lines describing
	// how it was produced.
	IncludeMetadata bool
}

// Text serializes a banner as plain or ANSI-colored text with a trailing
// newline.
func (e *Exporter) Text(text string, st style.Style, opts TextOptions) ([]byte, error) {
	var out string
	if opts.IncludeColors {
		rendered, err := e.svc.Render(text, st)
		if err != nil {
			return nil, err
		}
		out = rendered
	} else {
		block, err := e.plain(text, st)
		if err != nil {
			return nil, err
		}
		out = block.String()
	}

	if opts.IncludeMetadata {
		out = metadataHeader(text, st.Normalize()) + "\n" + out
	}
	return []byte(out + "\n"), nil
}

func metadataHeader(text string, st style.Style) string {
	lines := []string{
		"# bannerforge output",
		"# Text: " + text,
		"# Font: " + st.Font,
	}
	if st.Color != "" {
		lines = append(lines, "# Color: "+st.Color)
	}
	if st.Border != style.BorderNone {
		lines = append(lines, "# Border: "+st.Border.String())
	}
	if st.Padding > 0 {
		lines = append(lines, fmt.Sprintf("# Padding: %d", st.Padding))
	}
	lines = append(lines, "# "+strings.Repeat("=", 60))
	return strings.Join(lines, "\n")
}

type jsonStyle struct {
	Font            string `json:"font"`
	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	Border          string `json:"border"`
	BorderColor     string `json:"border_color,omitempty"`
	Padding         int    `json:"padding"`
	Width           int    `json:"width"`
	Alignment       string `json:"alignment"`
	Compact         bool   `json:"compact"`
	Shadow          bool   `json:"shadow"`
	ShadowColor     string `json:"shadow_color,omitempty"`
}

type jsonDocument struct {
	Text   string    `json:"text"`
	Style  jsonStyle `json:"style"`
	Output struct {
		Plain   string `json:"plain"`
		Colored string `json:"colored"`
	} `json:"output"`
}

// JSON serializes a banner with its style and both output variants.
func (e *Exporter) JSON(text string, st style.Style) ([]byte, error) {
	colored, err := e.svc.RenderBlock(text, st)
	if err != nil {
		return nil, err
	}
	plain, err := e.plain(text, st)
	if err != nil {
		return nil, err
	}

	norm := st.Normalize()
	doc := jsonDocument{
		Text: text,
		Style: jsonStyle{
			Font:            norm.Font,
			Color:           norm.Color,
			BackgroundColor: norm.BackgroundColor,
			Border:          norm.Border.String(),
			BorderColor:     norm.BorderColor,
			Padding:         norm.Padding,
			Width:           norm.Width,
			Alignment:       norm.Alignment.String(),
			Compact:         norm.Compact,
			Shadow:          norm.Shadow,
			ShadowColor:     norm.ShadowColor,
		},
	}
	doc.Output.Plain = plain.String()
	doc.Output.Colored = colored.String()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
