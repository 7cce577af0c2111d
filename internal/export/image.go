package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/bannerforge/bannerforge/internal/style"
)

// Face7x13 cell metrics.
const (
	cellWidth  = 7
	cellHeight = 13
	cellAscent = 11
	imageInset = 20
)

// ImageOptions controls the PNG and SVG serializations.
type ImageOptions struct {
	// Background and Foreground accept a named color or #rrggbb. Empty
	// selects white on black.
	Background string
	Foreground string
}

// imageColors maps named colors to RGBA values. "#rrggbb" input is parsed
// directly; anything unrecognized falls back to black.
var imageColors = map[string]color.RGBA{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 255, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"magenta":     {255, 0, 255, 255},
	"cyan":        {0, 255, 255, 255},
	"gray":        {128, 128, 128, 255},
	"transparent": {0, 0, 0, 0},
}

func parseImageColor(name string, fallback color.RGBA) color.RGBA {
	if hex, ok := strings.CutPrefix(name, "#"); ok && len(hex) == 6 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err == nil {
			return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
		}
	}
	if c, ok := imageColors[strings.ToLower(name)]; ok {
		return c
	}
	return fallback
}

// PNG rasterizes the plain banner with a monospace bitmap face, one glyph
// cell per character.
func (e *Exporter) PNG(text string, st style.Style, opts ImageOptions) ([]byte, error) {
	block, err := e.plain(text, st)
	if err != nil {
		return nil, err
	}
	lines := block.Lines

	bg := parseImageColor(opts.Background, color.RGBA{255, 255, 255, 255})
	fg := parseImageColor(opts.Foreground, color.RGBA{0, 0, 0, 255})

	width := maxLineLen(lines)*cellWidth + 2*imageInset
	height := len(lines)*cellHeight + 2*imageInset

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(img, bg)

	if st.Normalize().Shadow {
		drawLines(img, lines, color.RGBA{160, 160, 160, 255}, imageInset+2, imageInset+2)
	}
	drawLines(img, lines, fg, imageInset, imageInset)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fill(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawLines(img *image.RGBA, lines []string, c color.RGBA, x, y int) {
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(x, y+i*cellHeight+cellAscent)
		drawer.DrawString(toDrawable(line))
	}
}

// asciiFallback substitutes drawable ASCII for the box-drawing and block
// runes the bitmap face does not cover. Runes it cannot map become spaces
// so columns stay aligned.
var asciiFallback = map[rune]rune{
	'─': '-', '━': '-', '═': '=',
	'│': '|', '┃': '|', '║': '|',
	'┌': '+', '┐': '+', '└': '+', '┘': '+',
	'┏': '+', '┓': '+', '┗': '+', '┛': '+',
	'╔': '+', '╗': '+', '╚': '+', '╝': '+',
	'╭': '+', '╮': '+', '╰': '+', '╯': '+',
	'█': '#',
}

func toDrawable(line string) string {
	runes := []rune(line)
	for i, r := range runes {
		if r < 0x80 {
			continue
		}
		if sub, ok := asciiFallback[r]; ok {
			runes[i] = sub
		} else {
			runes[i] = ' '
		}
	}
	return string(runes)
}

func maxLineLen(lines []string) int {
	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	return width
}
