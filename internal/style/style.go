// Package style defines the banner style model: the Style value object,
// the closed border and alignment enums, and the template and color scheme
// catalogs that seed styles by name.
package style

// DefaultFont is the font used when none is specified. It is always
// embedded, which makes it a safe fallback target for the render facade.
const DefaultFont = "standard"

// DefaultWidth is the advisory maximum line width passed to the renderer.
const DefaultWidth = 80

// Style is a value object describing how a banner is rendered. Styles are
// cheaply copyable; deriving a variant goes through Apply rather than
// mutating an instance shared with other callers.
type Style struct {
	Font            string
	Color           string
	BackgroundColor string
	Border          BorderKind
	BorderColor     string
	Padding         int
	Width           int
	Alignment       Alignment
	Compact         bool
	Shadow          bool
	ShadowColor     string
	Bold            bool
	Italic          bool
	Underline       bool
}

// New returns a Style populated with defaults.
func New() Style {
	return Style{
		Font:        DefaultFont,
		Border:      BorderNone,
		Width:       DefaultWidth,
		Alignment:   AlignLeft,
		ShadowColor: "bright_black",
	}
}

// Overrides is a partial Style: nil fields are left untouched by Apply.
// It is the value-semantics replacement for mutate-and-restore patterns;
// exporters build one-off variants (for example a color-free style) instead
// of toggling fields on a shared instance.
type Overrides struct {
	Font            *string
	Color           *string
	BackgroundColor *string
	Border          *BorderKind
	BorderColor     *string
	Padding         *int
	Width           *int
	Alignment       *Alignment
	Compact         *bool
	Shadow          *bool
	ShadowColor     *string
	Bold            *bool
	Italic          *bool
	Underline       *bool
}

// Apply returns a new Style with the set override fields replaced. The
// receiver is never modified.
func (s Style) Apply(o Overrides) Style {
	if o.Font != nil {
		s.Font = *o.Font
	}
	if o.Color != nil {
		s.Color = *o.Color
	}
	if o.BackgroundColor != nil {
		s.BackgroundColor = *o.BackgroundColor
	}
	if o.Border != nil {
		s.Border = *o.Border
	}
	if o.BorderColor != nil {
		s.BorderColor = *o.BorderColor
	}
	if o.Padding != nil {
		s.Padding = *o.Padding
	}
	if o.Width != nil {
		s.Width = *o.Width
	}
	if o.Alignment != nil {
		s.Alignment = *o.Alignment
	}
	if o.Compact != nil {
		s.Compact = *o.Compact
	}
	if o.Shadow != nil {
		s.Shadow = *o.Shadow
	}
	if o.ShadowColor != nil {
		s.ShadowColor = *o.ShadowColor
	}
	if o.Bold != nil {
		s.Bold = *o.Bold
	}
	if o.Italic != nil {
		s.Italic = *o.Italic
	}
	if o.Underline != nil {
		s.Underline = *o.Underline
	}
	return s
}

// WithoutColor returns a variant with all color decoration removed. Used by
// exporters that need the undecorated glyph block.
func (s Style) WithoutColor() Style {
	s.Color = ""
	s.BackgroundColor = ""
	s.BorderColor = ""
	return s
}

// Normalize repairs numeric fields: negative padding becomes zero and a
// non-positive width becomes the default. Enum fields are already closed
// types constructed through validating factories and need no repair.
func (s Style) Normalize() Style {
	if s.Padding < 0 {
		s.Padding = 0
	}
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Font == "" {
		s.Font = DefaultFont
	}
	return s
}
