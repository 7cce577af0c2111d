// Package layout implements the banner composition pipeline: the ordered,
// deterministic transforms applied to a glyph block before presentation.
// Stage order is fixed: compact, pad, frame, colorize. Compact is the only
// stage allowed to change the set of lines; every stage from pad onward
// receives and returns a rectangular block of identical visible width.
package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/bannerforge/bannerforge/internal/ansi"
	"github.com/bannerforge/bannerforge/internal/style"
)

// Compose runs the full pipeline over a glyph block. All stages are total:
// Compose never fails, whatever the input.
func Compose(lines []string, st style.Style) []string {
	st = st.Normalize()

	out := lines
	if st.Compact {
		out = Compact(out)
	}
	if st.Padding > 0 {
		out = Pad(out, st.Padding)
	}

	framed := false
	if st.Border != style.BorderNone && len(out) > 0 {
		out = Frame(out, style.Frames(st.Border))
		framed = true
	}

	return decorate(out, st, framed)
}

// Compact removes every line that is empty or all-whitespace, preserving
// the order of the remaining lines. Compacting an already compact block
// returns it unchanged.
func Compact(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Pad surrounds a block with p blank columns and rows on every side. The
// result is rectangular: height grows by 2p and the common width becomes
// the input's max width plus 2p.
func Pad(lines []string, p int) []string {
	if p <= 0 {
		return lines
	}

	width := maxWidth(lines)
	blank := strings.Repeat(" ", width+2*p)
	margin := strings.Repeat(" ", p)

	out := make([]string, 0, len(lines)+2*p)
	for i := 0; i < p; i++ {
		out = append(out, blank)
	}
	for _, line := range lines {
		out = append(out, margin+padRight(line, width)+margin)
	}
	for i := 0; i < p; i++ {
		out = append(out, blank)
	}
	return out
}

// Frame draws a border around a block. The output has two extra rows (the
// synthesized top and bottom rules) and four extra columns (a border glyph
// and an interior space on each side). An empty block is returned
// unchanged: no frame is drawn around zero lines.
func Frame(lines []string, frames style.BorderFrames) []string {
	if len(lines) == 0 {
		return lines
	}

	width := maxWidth(lines)
	rule := strings.Repeat(frames.Horizontal, width+2)

	out := make([]string, 0, len(lines)+2)
	out = append(out, frames.TopLeft+rule+frames.TopRight)
	for _, line := range lines {
		out = append(out, frames.Vertical+" "+padRight(line, width)+" "+frames.Vertical)
	}
	out = append(out, frames.BottomLeft+rule+frames.BottomRight)
	return out
}

// decorate applies color assignment. It adds only non-printing decoration,
// preserving line count and visible width. When the block is framed and a
// border color is set, the rules and side glyphs carry the border color
// while the interior carries the text color.
func decorate(lines []string, st style.Style, framed bool) []string {
	borderDec := ""
	if framed && st.BorderColor != "" {
		borderDec = ansi.Decorations(1, st.BorderColor, "")[0]
	}

	if borderDec == "" {
		return ansi.Colorize(lines, st.Color, st.BackgroundColor)
	}

	decs := ansi.Decorations(len(lines), st.Color, st.BackgroundColor)
	out := make([]string, len(lines))
	for i, line := range lines {
		if i == 0 || i == len(lines)-1 {
			out[i] = ansi.Apply(line, borderDec)
			continue
		}
		runes := []rune(line)
		left := string(runes[0])
		interior := string(runes[1 : len(runes)-1])
		right := string(runes[len(runes)-1])
		out[i] = ansi.Apply(left, borderDec) + ansi.Apply(interior, decs[i]) + ansi.Apply(right, borderDec)
	}
	return out
}

func maxWidth(lines []string) int {
	width := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	return width
}

func padRight(line string, width int) string {
	gap := width - utf8.RuneCountInString(line)
	if gap <= 0 {
		return line
	}
	return line + strings.Repeat(" ", gap)
}
