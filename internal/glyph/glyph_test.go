package glyph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bannerforge/bannerforge/internal/style"
	"github.com/bannerforge/bannerforge/pkg/errors"
)

func newTestRenderer(t *testing.T) *FontRenderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return r
}

func TestParseFontRejectsBadData(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing height":    "font x\nglyph A\n#\n",
		"truncated glyph":   "font x\nheight 3\nglyph A\n#\n#\n",
		"unknown directive": "font x\nheight 1\nwidth 3\n",
		"no name":           "height 1\nglyph A\n#\n",
		"no glyphs":         "font x\nheight 1\n",
		"bad space width":   "font x\nheight 1\nspace zero\n",
	}

	for name, data := range cases {
		_, err := ParseFont([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestParseFontPadsRaggedRows(t *testing.T) {
	t.Parallel()

	font, err := ParseFont([]byte("font x\nheight 3\nglyph A\n##\n####\n#\n"))
	require.NoError(t, err)

	g := font.glyphFor('A')
	assert.Equal(t, 4, g.width)
	assert.Equal(t, []string{"##  ", "####", "#   "}, g.rows)
}

func TestRendererShipsEmbeddedFonts(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	assert.Equal(t, []string{"banner", "big", "block", "digital", "small", "standard"}, r.Fonts())
}

func TestRenderUnknownFont(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	_, err := r.Render("hi", "gothic", 0, style.AlignLeft)
	require.Error(t, err)

	var notFound *errors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "font", notFound.Kind)
	assert.Equal(t, "gothic", notFound.Name)
}

func TestRenderHeightMatchesFont(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)

	lines, err := r.Render("HI", "standard", 0, style.AlignLeft)
	require.NoError(t, err)
	assert.Len(t, lines, 5)

	lines, err = r.Render("HI", "digital", 0, style.AlignLeft)
	require.NoError(t, err)
	assert.Len(t, lines, 3)
	assert.Equal(t, "|H| |I|", lines[1])
}

func TestRenderEmptyTextStillProducesLines(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	lines, err := r.Render("", "small", 0, style.AlignLeft)
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}

func TestRenderLowercaseFoldsToUppercase(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	lower, err := r.Render("go", "big", 0, style.AlignLeft)
	require.NoError(t, err)
	upper, err := r.Render("GO", "big", 0, style.AlignLeft)
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestRenderWordWrap(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)

	// "AAA" is 11 columns in the digital font; both words cannot share a
	// 12-column line, so the text wraps into two stacked chunks.
	lines, err := r.Render("AAA BBB", "digital", 12, style.AlignLeft)
	require.NoError(t, err)
	assert.Len(t, lines, 6)

	lines, err = r.Render("AAA BBB", "digital", 0, style.AlignLeft)
	require.NoError(t, err)
	assert.Len(t, lines, 3)
}

func TestRenderAlignment(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)

	centered, err := r.Render("A", "digital", 21, style.AlignCenter)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat(" ", 9)+"|A|", centered[1])

	right, err := r.Render("A", "digital", 21, style.AlignRight)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat(" ", 18)+"|A|", right[1])

	left, err := r.Render("A", "digital", 21, style.AlignLeft)
	require.NoError(t, err)
	assert.Equal(t, "|A|", left[1])
}

func TestLoadDirShadowsEmbeddedFont(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	custom := "font standard\nheight 1\nspace 1\nglyph A\n*\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "standard.flt"), []byte(custom), 0o644))

	r := newTestRenderer(t)
	require.NoError(t, r.LoadDir(dir))

	font, err := r.Font("standard")
	require.NoError(t, err)
	assert.Equal(t, 1, font.Height)
}

func TestLoadDirMissingIsNoOp(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	require.NoError(t, r.LoadDir(filepath.Join(t.TempDir(), "absent")))
	assert.Len(t, r.Fonts(), 6)
}

func TestCatalogListings(t *testing.T) {
	t.Parallel()

	c := NewCatalog(newTestRenderer(t))

	assert.Equal(t, []string{"classic", "compact", "retro", "solid"}, c.Categories())
	assert.Equal(t, []string{"standard", "big", "banner"}, c.ByCategory("classic"))
	assert.Empty(t, c.ByCategory("cursive"))
	assert.Equal(t, []string{"block", "banner"}, c.Recommended("logos"))
	assert.Empty(t, c.Recommended("novels"))
}

func TestCatalogSearch(t *testing.T) {
	t.Parallel()

	c := NewCatalog(newTestRenderer(t))

	assert.Equal(t, []string{"digital"}, c.Search("digi"))
	assert.Contains(t, c.Search("compact"), "small")
	assert.Equal(t, c.Fonts(), c.Search(""))
	assert.Empty(t, c.Search("zzz"))
}

func TestCatalogInfo(t *testing.T) {
	t.Parallel()

	c := NewCatalog(newTestRenderer(t))

	info, err := c.Info("big")
	require.NoError(t, err)
	assert.Equal(t, "big", info.Name)
	assert.Equal(t, 5, info.Height)
	assert.Contains(t, info.Categories, "classic")
	assert.Contains(t, info.RecommendedFor, "titles")

	_, err = c.Info("gothic")
	assert.Error(t, err)
}

func TestCatalogSample(t *testing.T) {
	t.Parallel()

	c := NewCatalog(newTestRenderer(t))

	sample, err := c.Sample("digital", "AB")
	require.NoError(t, err)
	assert.Equal(t, "+-+ +-+\n|A| |B|\n+-+ +-+", sample)

	_, err = c.Sample("gothic", "AB")
	require.Error(t, err)
	var renderErr *errors.RenderError
	assert.ErrorAs(t, err, &renderErr)
}
