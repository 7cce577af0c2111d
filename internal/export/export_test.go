package export

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bannerforge/bannerforge/internal/banner"
	"github.com/bannerforge/bannerforge/internal/glyph"
	"github.com/bannerforge/bannerforge/internal/logger"
	"github.com/bannerforge/bannerforge/internal/style"
)

func newTestExporter(t *testing.T) *Exporter {
	t.Helper()

	renderer, err := glyph.NewRenderer()
	require.NoError(t, err)
	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)
	return New(banner.NewService(renderer, log))
}

func coloredStyle() style.Style {
	c := "red"
	b := style.BorderSingle
	return style.New().Apply(style.Overrides{Color: &c, Border: &b})
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{
		"":     FormatText,
		"txt":  FormatText,
		"JSON": FormatJSON,
		"html": FormatHTML,
		"png":  FormatPNG,
		"svg":  FormatSVG,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatPNG, DetectFormat("out/banner.PNG"))
	assert.Equal(t, FormatHTML, DetectFormat("banner.htm"))
	assert.Equal(t, FormatSVG, DetectFormat("banner.svg"))
	assert.Equal(t, FormatJSON, DetectFormat("banner.json"))
	assert.Equal(t, FormatText, DetectFormat("banner.txt"))
	assert.Equal(t, FormatText, DetectFormat("banner"))
}

func TestTextExportPlainHasNoEscapes(t *testing.T) {
	t.Parallel()

	e := newTestExporter(t)
	out, err := e.Text("HI", coloredStyle(), TextOptions{})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "\x1b")
	assert.True(t, bytes.HasSuffix(out, []byte("\n")))
}

func TestTextExportColored(t *testing.T) {
	t.Parallel()

	e := newTestExporter(t)
	out, err := e.Text("HI", coloredStyle(), TextOptions{IncludeColors: true})
	require.NoError(t, err)
	assert.Contains(t, string(out), "\x1b[31m")
}

func TestTextExportMetadataHeader(t *testing.T) {
	t.Parallel()

	e := newTestExporter(t)
	out, err := e.Text("HI", coloredStyle(), TextOptions{IncludeMetadata: true})
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "# Text: HI")
	assert.Contains(t, s, "# Font: standard")
	assert.Contains(t, s, "# Color: red")
	assert.Contains(t, s, "# Border: single")
}

func TestJSONExport(t *testing.T) {
	t.Parallel()

	e := newTestExporter(t)
	out, err := e.JSON("HI", coloredStyle())
	require.NoError(t, err)

	var doc struct {
		Text  string `json:"text"`
		Style struct {
			Font   string `json:"font"`
			Color  string `json:"color"`
			Border string `json:"border"`
		} `json:"style"`
		Output struct {
			Plain   string `json:"plain"`
			Colored string `json:"colored"`
		} `json:"output"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "HI", doc.Text)
	assert.Equal(t, "standard", doc.Style.Font)
	assert.Equal(t, "red", doc.Style.Color)
	assert.Equal(t, "single", doc.Style.Border)
	assert.NotContains(t, doc.Output.Plain, "\x1b")
	assert.Contains(t, doc.Output.Colored, "\x1b[31m")
}

func TestHTMLExportStandalonePage(t *testing.T) {
	t.Parallel()

	e := newTestExporter(t)
	out, err := e.HTML("HI", coloredStyle(), HTMLOptions{Theme: "terminal"})
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<!DOCTYPE html>")
	assert.Contains(t, s, `<pre class="ascii-banner" data-font="standard"`)
	assert.Contains(t, s, "color: #00ff00;")
	assert.NotContains(t, s, "\x1b")
}

func TestHTMLExportSnippet(t *testing.T) {
	t.Parallel()

	e := newTestExporter(t)
	out, err := e.HTML("HI", style.New(), HTMLOptions{Snippet: true, OmitCSS: true})
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, "<!DOCTYPE html>")
	assert.NotContains(t, s, "<style>")
	assert.Contains(t, s, `<pre class="ascii-banner"`)
}

func TestHTMLExportPresentationHints(t *testing.T) {
	t.Parallel()

	bold := true
	shadow := true
	st := style.New().Apply(style.Overrides{Bold: &bold, Shadow: &shadow})

	e := newTestExporter(t)
	out, err := e.HTML("HI", st, HTMLOptions{})
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "font-weight: bold")
	assert.Contains(t, s, "text-shadow: 2px 2px 2px #808080")
}

func TestPNGExportDecodes(t *testing.T) {
	t.Parallel()

	e := newTestExporter(t)
	out, err := e.PNG("HI", coloredStyle(), ImageOptions{Background: "black", Foreground: "#00ff00"})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Greater(t, bounds.Dx(), 2*imageInset)
	assert.Greater(t, bounds.Dy(), 2*imageInset)

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.Zero(t, g)
	assert.Zero(t, b)
}

func TestParseImageColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, imageColors["red"], parseImageColor("RED", imageColors["black"]))
	c := parseImageColor("#102030", imageColors["black"])
	assert.Equal(t, uint8(0x10), c.R)
	assert.Equal(t, uint8(0x20), c.G)
	assert.Equal(t, uint8(0x30), c.B)
	assert.Equal(t, imageColors["black"], parseImageColor("mauve", imageColors["black"]))
}

func TestSVGExportParsesBack(t *testing.T) {
	t.Parallel()

	e := newTestExporter(t)
	out, err := e.SVG("HI", style.New(), ImageOptions{})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	svg := doc.SelectElement("svg")
	require.NotNil(t, svg)
	assert.Nil(t, svg.SelectElement("defs"))

	// One text node per banner line.
	assert.Len(t, svg.SelectElements("text"), 5)
}

func TestSVGExportShadowFilter(t *testing.T) {
	t.Parallel()

	shadow := true
	st := style.New().Apply(style.Overrides{Shadow: &shadow})

	e := newTestExporter(t)
	out, err := e.SVG("HI", st, ImageOptions{})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	svg := doc.SelectElement("svg")
	require.NotNil(t, svg)
	defs := svg.SelectElement("defs")
	require.NotNil(t, defs)
	filter := defs.SelectElement("filter")
	require.NotNil(t, filter)
	assert.Equal(t, "shadow", filter.SelectAttrValue("id", ""))

	texts := svg.SelectElements("text")
	require.NotEmpty(t, texts)
	assert.Equal(t, "url(#shadow)", texts[0].SelectAttrValue("filter", ""))
}

func TestRenderDispatch(t *testing.T) {
	t.Parallel()

	e := newTestExporter(t)

	out, err := e.Render(FormatJSON, "HI", style.New())
	require.NoError(t, err)
	assert.True(t, json.Valid(out))

	out, err = e.Render(FormatText, "HI", coloredStyle())
	require.NoError(t, err)
	assert.Contains(t, string(out), "\x1b[31m")
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	t.Parallel()

	e := newTestExporter(t)
	path := filepath.Join(t.TempDir(), "nested", "deep", "banner.txt")
	require.NoError(t, e.WriteFile(path, []byte("hello\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestTextRoundTripThroughWriteFile(t *testing.T) {
	t.Parallel()

	e := newTestExporter(t)
	out, err := e.Text("GO", style.New(), TextOptions{})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "banner.txt")
	require.NoError(t, e.WriteFile(path, out))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, data)
	assert.False(t, strings.Contains(string(data), "\x1b"))
}
