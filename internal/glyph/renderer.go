// Package glyph turns plain text into large multi-line letterforms. Fonts
// are line-oriented text files embedded in the binary, optionally extended
// by user fonts loaded from a directory at startup.
package glyph

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bannerforge/bannerforge/internal/style"
	"github.com/bannerforge/bannerforge/pkg/errors"
)

//go:embed fonts/*.flt
var embeddedFonts embed.FS

// glyphGap is the number of blank columns between adjacent glyphs.
const glyphGap = 1

// Renderer renders text into a block of letterform lines.
type Renderer interface {
	// Render produces the letterform block for text in the named font.
	// width is an advisory maximum visible width: when positive, text is
	// word-wrapped to fit, and center/right alignment pads lines against
	// it. Zero disables wrapping and aligns against the widest line.
	Render(text, fontName string, width int, align style.Alignment) ([]string, error)

	// Fonts lists the available font names in sorted order.
	Fonts() []string

	// Has reports whether a font is available.
	Has(fontName string) bool
}

// FontRenderer is the Renderer backed by parsed font files.
type FontRenderer struct {
	fonts map[string]*Font
}

// NewRenderer builds a renderer over the embedded fonts.
func NewRenderer() (*FontRenderer, error) {
	r := &FontRenderer{fonts: make(map[string]*Font)}
	if err := r.loadFS(embeddedFonts, "fonts"); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FontRenderer) loadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".flt") {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+entry.Name())
		if err != nil {
			return err
		}
		font, err := ParseFont(data)
		if err != nil {
			return errors.NewParseError(entry.Name(), 0, err)
		}
		r.fonts[font.Name] = font
	}
	return nil
}

// LoadDir parses every .flt file under dir and registers the fonts,
// shadowing embedded fonts of the same name. A missing directory is not an
// error: users without custom fonts simply get the embedded set.
func (r *FontRenderer) LoadDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return r.loadFS(os.DirFS(filepath.Dir(dir)), filepath.Base(dir))
}

func (r *FontRenderer) Fonts() []string {
	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *FontRenderer) Has(fontName string) bool {
	_, ok := r.fonts[fontName]
	return ok
}

// Font returns the parsed font for name.
func (r *FontRenderer) Font(fontName string) (*Font, error) {
	font, ok := r.fonts[fontName]
	if !ok {
		return nil, errors.NewNotFoundError("font", fontName, nil)
	}
	return font, nil
}

func (r *FontRenderer) Render(text, fontName string, width int, align style.Alignment) ([]string, error) {
	font, err := r.Font(fontName)
	if err != nil {
		return nil, err
	}

	chunks := wrap(font, text, width)

	var lines []string
	for _, chunk := range chunks {
		lines = append(lines, renderChunk(font, chunk)...)
	}
	if len(lines) == 0 {
		lines = make([]string, font.Height)
	}

	return alignLines(lines, width, align), nil
}

// wrap splits text into lines that fit the advisory width once rendered.
// Wrapping is greedy and word-based; a single word wider than the target is
// emitted on its own line rather than split mid-word.
func wrap(font *Font, text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	spaceWidth := font.runeWidth(' ') + 2*glyphGap

	var chunks []string
	current := ""
	currentWidth := 0
	for _, word := range words {
		w := chunkWidth(font, word)
		switch {
		case current == "":
			current, currentWidth = word, w
		case currentWidth+spaceWidth+w <= width:
			current += " " + word
			currentWidth += spaceWidth + w
		default:
			chunks = append(chunks, current)
			current, currentWidth = word, w
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}

func chunkWidth(font *Font, chunk string) int {
	width := 0
	for i, r := range []rune(chunk) {
		if i > 0 {
			width += glyphGap
		}
		width += font.runeWidth(r)
	}
	return width
}

// renderChunk lays the glyphs of a single text line side by side.
func renderChunk(font *Font, chunk string) []string {
	rows := make([]strings.Builder, font.Height)
	for i, r := range []rune(chunk) {
		g := font.glyphFor(r)
		for j := range rows {
			if i > 0 {
				rows[j].WriteString(strings.Repeat(" ", glyphGap))
			}
			rows[j].WriteString(g.rows[j])
		}
	}

	lines := make([]string, font.Height)
	for i := range rows {
		lines[i] = strings.TrimRight(rows[i].String(), " ")
	}
	return lines
}

// alignLines pads lines according to the alignment. Left alignment leaves
// lines ragged; center and right pad against the target width, or against
// the widest line when no width was requested.
func alignLines(lines []string, width int, align style.Alignment) []string {
	if align == style.AlignLeft {
		return lines
	}

	target := width
	if target <= 0 {
		target = 0
		for _, line := range lines {
			if n := utf8.RuneCountInString(line); n > target {
				target = n
			}
		}
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		gap := target - utf8.RuneCountInString(line)
		if gap <= 0 {
			out[i] = line
			continue
		}
		left := gap
		if align == style.AlignCenter {
			left = gap / 2
		}
		out[i] = strings.Repeat(" ", left) + line
	}
	return out
}
