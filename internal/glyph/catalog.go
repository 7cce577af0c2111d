package glyph

import (
	"sort"
	"strings"

	"github.com/bannerforge/bannerforge/pkg/errors"
)

// fontCategories groups the shipped fonts by visual family. User fonts
// loaded at runtime are listable but uncategorized.
var fontCategories = map[string][]string{
	"classic": {"standard", "big", "banner"},
	"compact": {"small", "digital"},
	"solid":   {"block", "banner"},
	"retro":   {"digital", "block"},
}

// fontUseCases maps a use case to the fonts that suit it, best first.
var fontUseCases = map[string][]string{
	"headers": {"banner", "big", "standard"},
	"titles":  {"standard", "big"},
	"logos":   {"block", "banner"},
	"status":  {"small", "digital"},
	"fun":     {"digital", "block"},
}

// FontInfo describes a single font for listings and help output.
type FontInfo struct {
	Name           string
	Height         int
	SampleWidth    int
	Categories     []string
	RecommendedFor []string
}

// Catalog answers questions about the fonts a renderer carries.
type Catalog struct {
	renderer *FontRenderer
}

func NewCatalog(renderer *FontRenderer) *Catalog {
	return &Catalog{renderer: renderer}
}

// Fonts lists every available font name in sorted order.
func (c *Catalog) Fonts() []string {
	return c.renderer.Fonts()
}

// Categories lists the known category names in sorted order.
func (c *Catalog) Categories() []string {
	return sortedKeys(fontCategories)
}

// UseCases lists the known use case names in sorted order.
func (c *Catalog) UseCases() []string {
	return sortedKeys(fontUseCases)
}

// ByCategory returns the available fonts in a category, preserving the
// category's own ordering. Unknown categories return no fonts.
func (c *Catalog) ByCategory(category string) []string {
	return c.available(fontCategories[category])
}

// Recommended returns the available fonts suited to a use case, best
// first. Unknown use cases return no fonts.
func (c *Catalog) Recommended(useCase string) []string {
	return c.available(fontUseCases[useCase])
}

// Search returns the fonts whose name, category, or use case contains the
// query, case-insensitively, in sorted order.
func (c *Catalog) Search(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.Fonts()
	}

	matched := make(map[string]bool)
	for _, name := range c.renderer.Fonts() {
		if strings.Contains(strings.ToLower(name), query) {
			matched[name] = true
		}
	}
	for category, names := range fontCategories {
		if strings.Contains(category, query) {
			for _, name := range c.available(names) {
				matched[name] = true
			}
		}
	}
	for useCase, names := range fontUseCases {
		if strings.Contains(useCase, query) {
			for _, name := range c.available(names) {
				matched[name] = true
			}
		}
	}

	return sortedKeys(matched)
}

// Info describes a font, including which categories and use cases list it.
func (c *Catalog) Info(name string) (FontInfo, error) {
	font, err := c.renderer.Font(name)
	if err != nil {
		return FontInfo{}, err
	}

	info := FontInfo{
		Name:        font.Name,
		Height:      font.Height,
		SampleWidth: chunkWidth(font, "ABC"),
	}
	for _, category := range c.Categories() {
		if contains(fontCategories[category], name) {
			info.Categories = append(info.Categories, category)
		}
	}
	for _, useCase := range c.UseCases() {
		if contains(fontUseCases[useCase], name) {
			info.RecommendedFor = append(info.RecommendedFor, useCase)
		}
	}
	return info, nil
}

// Sample renders a short preview of text in the named font, joined into a
// single string for display.
func (c *Catalog) Sample(name, text string) (string, error) {
	lines, err := c.renderer.Render(text, name, 0, 0)
	if err != nil {
		return "", errors.NewRenderError(name, err)
	}
	return strings.Join(lines, "\n"), nil
}

func (c *Catalog) available(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if c.renderer.Has(name) {
			out = append(out, name)
		}
	}
	return out
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
