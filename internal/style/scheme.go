package style

import (
	"sort"

	bannererrors "github.com/bannerforge/bannerforge/pkg/errors"
)

// A color scheme is a named bundle of color-only style fields applied as a
// batch update onto an existing Style. Unlike templates, schemes never touch
// layout fields.
var colorSchemes = map[string]Overrides{
	"default": {},
	"rainbow": {
		Color:       ptr("gradient:red-yellow"),
		BorderColor: ptr("magenta"),
	},
	"ocean": {
		Color:       ptr("gradient:blue-cyan"),
		BorderColor: ptr("blue"),
		ShadowColor: ptr("bright_blue"),
	},
	"fire": {
		Color:       ptr("gradient:red-yellow"),
		BorderColor: ptr("red"),
		ShadowColor: ptr("bright_red"),
	},
	"forest": {
		Color:       ptr("gradient:green-bright_green"),
		BorderColor: ptr("green"),
		ShadowColor: ptr("green"),
	},
	"sunset": {
		Color:       ptr("gradient:magenta-yellow"),
		BorderColor: ptr("magenta"),
	},
	"neon": {
		Color:       ptr("gradient:bright_magenta-bright_cyan"),
		BorderColor: ptr("bright_magenta"),
		Shadow:      ptr(true),
	},
	"monochrome": {
		Color:       ptr("white"),
		BorderColor: ptr("bright_black"),
		ShadowColor: ptr("bright_black"),
	},
}

// ResolveScheme returns the override set for a named color scheme.
func ResolveScheme(name string) (Overrides, error) {
	if scheme, ok := colorSchemes[name]; ok {
		return scheme, nil
	}
	return Overrides{}, bannererrors.NewNotFoundError("scheme", name, nil)
}

// Schemes lists the scheme names in sorted order.
func Schemes() []string {
	names := make([]string, 0, len(colorSchemes))
	for name := range colorSchemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ptr[T any](v T) *T {
	return &v
}
