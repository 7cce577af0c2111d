// Package ansi maps color specifications to per-line ANSI decorations.
// Decorations are assembled from termenv's ANSI sequence constants, never
// from terminal probing, so identical input always yields identical output.
package ansi

import (
	"strings"

	"github.com/muesli/termenv"
)

// Reset terminates any active decoration.
const Reset = termenv.CSI + termenv.ResetSeq + "m"

// GradientPrefix marks a two-stop gradient color specification.
const GradientPrefix = "gradient:"

// The fixed 16-name palette: the 8 base ANSI colors plus their bright
// variants.
var palette = map[string]termenv.ANSIColor{
	"black":          termenv.ANSIBlack,
	"red":            termenv.ANSIRed,
	"green":          termenv.ANSIGreen,
	"yellow":         termenv.ANSIYellow,
	"blue":           termenv.ANSIBlue,
	"magenta":        termenv.ANSIMagenta,
	"cyan":           termenv.ANSICyan,
	"white":          termenv.ANSIWhite,
	"bright_black":   termenv.ANSIBrightBlack,
	"bright_red":     termenv.ANSIBrightRed,
	"bright_green":   termenv.ANSIBrightGreen,
	"bright_yellow":  termenv.ANSIBrightYellow,
	"bright_blue":    termenv.ANSIBrightBlue,
	"bright_magenta": termenv.ANSIBrightMagenta,
	"bright_cyan":    termenv.ANSIBrightCyan,
	"bright_white":   termenv.ANSIBrightWhite,
}

// Known reports whether name is in the palette.
func Known(name string) bool {
	_, ok := palette[name]
	return ok
}

// Names lists the palette color names in a stable presentation order.
func Names() []string {
	return []string{
		"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
		"bright_black", "bright_red", "bright_green", "bright_yellow",
		"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
	}
}

// foregroundSeq returns the bare SGR parameter for a named foreground
// color, or "" when the name is unknown.
func foregroundSeq(name string) string {
	if c, ok := palette[name]; ok {
		return c.Sequence(false)
	}
	return ""
}

// backgroundSeq returns the bare SGR parameter for a named background
// color, or "" when the name is unknown.
func backgroundSeq(name string) string {
	if c, ok := palette[name]; ok {
		return c.Sequence(true)
	}
	return ""
}

// decoration combines SGR parameters into a single escape sequence.
// Empty parameters are skipped; no parameters yields no decoration.
func decoration(seqs ...string) string {
	parts := make([]string, 0, len(seqs))
	for _, seq := range seqs {
		if seq != "" {
			parts = append(parts, seq)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return termenv.CSI + strings.Join(parts, ";") + "m"
}
