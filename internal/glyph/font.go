package glyph

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Font is a parsed bitmap font: a fixed row height and a glyph table keyed
// by rune. Fonts are immutable once parsed.
type Font struct {
	Name   string
	Height int

	glyphs map[rune]fontGlyph
}

type fontGlyph struct {
	rows  []string
	width int
}

// ParseFont reads the line-oriented .flt font format:
//
//	// comment
//	font <name>
//	height <rows>
//	space <width>
//	glyph <char>
//	<rows verbatim row lines>
//
// Rows belonging to a glyph are read verbatim, so glyph art may freely use
// the comment marker. Rows shorter than the glyph's widest row are padded
// with spaces on the right.
func ParseFont(data []byte) (*Font, error) {
	font := &Font{glyphs: make(map[rune]fontGlyph)}

	lines := strings.Split(string(data), "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		directive, arg, _ := strings.Cut(trimmed, " ")
		arg = strings.TrimSpace(arg)

		switch directive {
		case "font":
			font.Name = arg
		case "height":
			h, err := strconv.Atoi(arg)
			if err != nil || h <= 0 {
				return nil, fmt.Errorf("invalid font height %q", arg)
			}
			font.Height = h
		case "space":
			if font.Height == 0 {
				return nil, fmt.Errorf("space directive before height directive")
			}
			w, err := strconv.Atoi(arg)
			if err != nil || w <= 0 {
				return nil, fmt.Errorf("invalid space width %q", arg)
			}
			rows := make([]string, font.Height)
			for j := range rows {
				rows[j] = strings.Repeat(" ", w)
			}
			font.glyphs[' '] = newGlyph(rows)
		case "glyph":
			if font.Height == 0 {
				return nil, fmt.Errorf("glyph %q before height directive", arg)
			}
			r, err := glyphRune(arg)
			if err != nil {
				return nil, err
			}
			if i+1+font.Height > len(lines) {
				return nil, fmt.Errorf("font data truncated in glyph %q", arg)
			}
			rows := make([]string, font.Height)
			copy(rows, lines[i+1:i+1+font.Height])
			font.glyphs[r] = newGlyph(rows)
			i += font.Height
		default:
			return nil, fmt.Errorf("unknown font directive %q", directive)
		}
	}

	if font.Name == "" {
		return nil, fmt.Errorf("font data missing name directive")
	}
	if len(font.glyphs) == 0 {
		return nil, fmt.Errorf("font %q defines no glyphs", font.Name)
	}
	return font, nil
}

func glyphRune(arg string) (rune, error) {
	if arg == "space" {
		return ' ', nil
	}
	if utf8.RuneCountInString(arg) != 1 {
		return 0, fmt.Errorf("invalid glyph header %q", arg)
	}
	r, _ := utf8.DecodeRuneInString(arg)
	return r, nil
}

func newGlyph(rows []string) fontGlyph {
	width := 0
	for _, row := range rows {
		if n := utf8.RuneCountInString(row); n > width {
			width = n
		}
	}
	padded := make([]string, len(rows))
	for i, row := range rows {
		gap := width - utf8.RuneCountInString(row)
		if gap > 0 {
			row += strings.Repeat(" ", gap)
		}
		padded[i] = row
	}
	return fontGlyph{rows: padded, width: width}
}

// glyphFor resolves the glyph for a rune, trying an uppercase fold for
// fonts without lowercase forms. Unknown runes fall back to the space
// glyph so unsupported characters render as gaps rather than failing.
func (f *Font) glyphFor(r rune) fontGlyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	if g, ok := f.glyphs[toUpper(r)]; ok {
		return g
	}
	if g, ok := f.glyphs[' ']; ok {
		return g
	}
	return newGlyph(make([]string, f.Height))
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// runeWidth returns the rendered width of a single rune in this font.
func (f *Font) runeWidth(r rune) int {
	return f.glyphFor(r).width
}
