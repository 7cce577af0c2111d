// Package export serializes rendered banners into files: plain or colored
// text, JSON, standalone HTML, PNG, and SVG. Exporters re-render through
// the banner service so the colored and plain variants always agree with
// what the terminal would show.
package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/style"
	"github.com/bannerforge/bannerforge/pkg/errors"
)

// Format identifies an output serialization.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatHTML), string(FormatPNG), string(FormatSVG)}
}

// ParseFormat validates a format name. Empty input selects text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "html":
		return FormatHTML, nil
	case "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	default:
		return "", errors.NewValidationError("format", "unknown format "+s, nil)
	}
}

// DetectFormat infers the format from a file extension, defaulting to text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".html", ".htm":
		return FormatHTML
	case ".png":
		return FormatPNG
	case ".svg":
		return FormatSVG
	default:
		return FormatText
	}
}

// Exporter serializes banners rendered by a Service.
type Exporter struct {
	svc *banner.Service
}

func New(svc *banner.Service) *Exporter {
	return &Exporter{svc: svc}
}

// Render serializes a banner in the given format with default options.
func (e *Exporter) Render(format Format, text string, st style.Style) ([]byte, error) {
	switch format {
	case FormatJSON:
		return e.JSON(text, st)
	case FormatHTML:
		return e.HTML(text, st, HTMLOptions{})
	case FormatPNG:
		return e.PNG(text, st, ImageOptions{})
	case FormatSVG:
		return e.SVG(text, st, ImageOptions{})
	default:
		return e.Text(text, st, TextOptions{IncludeColors: true})
	}
}

// WriteFile writes serialized banner bytes, creating parent directories as
// needed.
func (e *Exporter) WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// plain renders the undecorated variant used by every non-terminal format.
func (e *Exporter) plain(text string, st style.Style) (banner.Block, error) {
	return e.svc.RenderBlock(text, st.WithoutColor())
}
