package export

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/bannerforge/bannerforge/internal/style"
)

const (
	svgFontSize   = 14
	svgCharWidth  = svgFontSize * 6 / 10
	svgLineHeight = svgFontSize * 12 / 10
	svgInsetX     = 20
	svgBaselineY  = 30
)

// SVG serializes the plain banner as scalable vector markup: a background
// rect and one text node per line. Style.Shadow adds a Gaussian blur
// filter on the text nodes.
func (e *Exporter) SVG(text string, st style.Style, opts ImageOptions) ([]byte, error) {
	block, err := e.plain(text, st)
	if err != nil {
		return nil, err
	}
	lines := block.Lines

	background := opts.Background
	if background == "" {
		background = "white"
	}
	foreground := opts.Foreground
	if foreground == "" {
		foreground = "black"
	}

	width := maxLineLen(lines)*svgCharWidth + 2*svgInsetX
	height := len(lines)*svgLineHeight + 2*svgInsetX

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := doc.CreateElement("svg")
	svg.CreateAttr("width", fmt.Sprint(width))
	svg.CreateAttr("height", fmt.Sprint(height))
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")

	shadow := st.Normalize().Shadow
	if shadow {
		svg.AddChild(shadowFilter())
	}

	rect := svg.CreateElement("rect")
	rect.CreateAttr("width", "100%")
	rect.CreateAttr("height", "100%")
	rect.CreateAttr("fill", background)

	styleEl := svg.CreateElement("style")
	styleEl.SetText(fmt.Sprintf(
		".ascii-text { font-family: 'Courier New', Courier, monospace; font-size: %dpx; fill: %s; white-space: pre; }",
		svgFontSize, foreground))

	for i, line := range lines {
		node := svg.CreateElement("text")
		node.CreateAttr("x", fmt.Sprint(svgInsetX))
		node.CreateAttr("y", fmt.Sprint(svgBaselineY+i*svgLineHeight))
		node.CreateAttr("class", "ascii-text")
		node.CreateAttr("xml:space", "preserve")
		if shadow {
			node.CreateAttr("filter", "url(#shadow)")
		}
		node.SetText(line)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// shadowFilter builds the defs/filter subtree producing an offset blurred
// copy behind the glyphs.
func shadowFilter() *etree.Element {
	defs := etree.NewElement("defs")
	filter := defs.CreateElement("filter")
	filter.CreateAttr("id", "shadow")
	filter.CreateAttr("x", "-50%")
	filter.CreateAttr("y", "-50%")
	filter.CreateAttr("width", "200%")
	filter.CreateAttr("height", "200%")

	blur := filter.CreateElement("feGaussianBlur")
	blur.CreateAttr("in", "SourceAlpha")
	blur.CreateAttr("stdDeviation", "2")

	offset := filter.CreateElement("feOffset")
	offset.CreateAttr("dx", "2")
	offset.CreateAttr("dy", "2")
	offset.CreateAttr("result", "offsetblur")

	transfer := filter.CreateElement("feComponentTransfer")
	funcA := transfer.CreateElement("feFuncA")
	funcA.CreateAttr("type", "linear")
	funcA.CreateAttr("slope", "0.5")

	merge := filter.CreateElement("feMerge")
	merge.CreateElement("feMergeNode")
	merge.CreateElement("feMergeNode").CreateAttr("in", "SourceGraphic")

	return defs
}
