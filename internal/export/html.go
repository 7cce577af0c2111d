package export

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/bannerforge/bannerforge/internal/ansi"
	"github.com/bannerforge/bannerforge/internal/style"
)

// HTMLOptions controls the HTML serialization.
type HTMLOptions struct {
	// Theme selects a stylesheet; unknown or empty selects "default".
	Theme string
	// Snippet emits only the banner markup instead of a standalone page.
	Snippet bool
	// OmitCSS drops the stylesheet entirely.
	OmitCSS bool
}

// HTMLThemes lists the available theme names.
func HTMLThemes() []string {
	return []string{"default", "dark", "terminal", "paper", "neon", "retro"}
}

var standalonePage = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
{{.CSS}}</head>
<body>
    <div class="ascii-banner-container">
{{.Banner}}    </div>
</body>
</html>
`))

type pageData struct {
	Title  string
	CSS    template.HTML
	Banner template.HTML
}

// HTML serializes a banner as markup with a themed stylesheet. The banner
// itself is always the plain variant; color comes from CSS.
func (e *Exporter) HTML(text string, st style.Style, opts HTMLOptions) ([]byte, error) {
	block, err := e.plain(text, st)
	if err != nil {
		return nil, err
	}

	pre := bannerMarkup(block.String(), st.Normalize())

	css := template.HTML("")
	if !opts.OmitCSS {
		css = themeCSS(opts.Theme, st.Normalize())
	}

	if opts.Snippet {
		out := string(css) + string(pre)
		return []byte(out), nil
	}

	var buf bytes.Buffer
	err = standalonePage.Execute(&buf, pageData{
		Title:  text,
		CSS:    css,
		Banner: pre,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func bannerMarkup(content string, st style.Style) template.HTML {
	var inline []string
	if st.Bold {
		inline = append(inline, "font-weight: bold")
	}
	if st.Italic {
		inline = append(inline, "font-style: italic")
	}
	if st.Underline {
		inline = append(inline, "text-decoration: underline")
	}
	if st.Shadow {
		inline = append(inline, "text-shadow: 2px 2px 2px "+cssColor(st.ShadowColor, "#808080"))
	}

	attr := ""
	if len(inline) > 0 {
		attr = fmt.Sprintf(" style=%q", strings.Join(inline, "; "))
	}

	escaped := template.HTMLEscapeString(content)
	markup := fmt.Sprintf("<pre class=\"ascii-banner\" data-font=%q%s>%s</pre>\n", st.Font, attr, escaped)
	return template.HTML(markup)
}

// cssColorNames maps the terminal palette onto CSS hex colors.
var cssColorNames = map[string]string{
	"black":          "#000000",
	"red":            "#ff0000",
	"green":          "#00ff00",
	"yellow":         "#ffff00",
	"blue":           "#0000ff",
	"magenta":        "#ff00ff",
	"cyan":           "#00ffff",
	"white":          "#ffffff",
	"bright_black":   "#808080",
	"bright_red":     "#ff6666",
	"bright_green":   "#66ff66",
	"bright_yellow":  "#ffff66",
	"bright_blue":    "#6666ff",
	"bright_magenta": "#ff66ff",
	"bright_cyan":    "#66ffff",
	"bright_white":   "#ffffff",
}

func cssColor(name, fallback string) string {
	if c, ok := cssColorNames[name]; ok {
		return c
	}
	return fallback
}

// textCSSColor resolves the style's foreground for themes that honor it.
// Gradients have no single CSS equivalent and fall back like unknown names.
func textCSSColor(st style.Style, fallback string) string {
	if st.Color == "" || strings.HasPrefix(st.Color, ansi.GradientPrefix) {
		return fallback
	}
	return cssColor(st.Color, fallback)
}

func themeCSS(theme string, st style.Style) template.HTML {
	textColor := textCSSColor(st, "#333333")
	borderColor := textColor
	if st.BorderColor != "" {
		borderColor = cssColor(st.BorderColor, textColor)
	}

	base := `<style>
    .ascii-banner-container {
        display: flex;
        justify-content: center;
        align-items: center;
        min-height: 100vh;
        margin: 0;
        padding: 20px;
        box-sizing: border-box;
    }
    .ascii-banner {
        font-family: 'Courier New', Courier, monospace;
        line-height: 1.2;
        white-space: pre;
        margin: 0;
        padding: 20px;
        border-radius: 8px;
        overflow-x: auto;
    }
`

	themes := map[string]string{
		"default": `    body {
        background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    }
    .ascii-banner {
        background: rgba(255, 255, 255, 0.95);
        color: #333;
        box-shadow: 0 10px 40px rgba(0, 0, 0, 0.2);
    }`,
		"dark": `    body {
        background: #1a1a1a;
    }
    .ascii-banner {
        background: #2d2d2d;
        color: ` + textCSSColor(st, "#00ff00") + `;
        border: 1px solid #444;
    }`,
		"terminal": `    body {
        background: #000;
    }
    .ascii-banner {
        background: #000;
        color: #00ff00;
        border: 1px solid #00ff00;
        text-shadow: 0 0 3px #00ff00;
    }`,
		"paper": `    body {
        background: #f5f5f5;
    }
    .ascii-banner {
        background: white;
        color: #222;
        border: 1px solid #ddd;
        box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
    }`,
		"neon": `    body {
        background: linear-gradient(45deg, #000428 0%, #004e92 100%);
    }
    .ascii-banner {
        background: rgba(0, 0, 0, 0.8);
        color: ` + textCSSColor(st, "#00ffff") + `;
        border: 2px solid ` + borderColor + `;
        box-shadow: 0 0 30px ` + borderColor + `;
        text-shadow: 0 0 10px currentColor;
    }`,
		"retro": `    body {
        background: linear-gradient(180deg, #2d1b69 0%, #0f0c29 100%);
    }
    .ascii-banner {
        background: #1a1a2e;
        color: #f39c12;
        border: 3px double #f39c12;
        box-shadow: 0 0 20px rgba(243, 156, 18, 0.3);
    }`,
	}

	body, ok := themes[theme]
	if !ok {
		body = themes["default"]
	}
	return template.HTML(base + body + "\n</style>\n")
}
