package style

import (
	"strings"

	bannererrors "github.com/bannerforge/bannerforge/pkg/errors"
)

// BorderKind is the closed set of supported frame styles.
type BorderKind int

const (
	BorderNone BorderKind = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderBold
	BorderASCII
	BorderStar
	BorderHash
)

// BorderFrames holds the six glyphs that make up a rectangular frame.
type BorderFrames struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
}

var borderNames = map[BorderKind]string{
	BorderNone:    "none",
	BorderSingle:  "single",
	BorderDouble:  "double",
	BorderRounded: "rounded",
	BorderBold:    "bold",
	BorderASCII:   "ascii",
	BorderStar:    "star",
	BorderHash:    "hash",
}

var borderKinds = map[string]BorderKind{
	"none":    BorderNone,
	"single":  BorderSingle,
	"double":  BorderDouble,
	"rounded": BorderRounded,
	"bold":    BorderBold,
	"ascii":   BorderASCII,
	"star":    BorderStar,
	"hash":    BorderHash,
}

var borderFrames = map[BorderKind]BorderFrames{
	BorderNone:    {},
	BorderSingle:  {TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘", Horizontal: "─", Vertical: "│"},
	BorderDouble:  {TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝", Horizontal: "═", Vertical: "║"},
	BorderRounded: {TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯", Horizontal: "─", Vertical: "│"},
	BorderBold:    {TopLeft: "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛", Horizontal: "━", Vertical: "┃"},
	BorderASCII:   {TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+", Horizontal: "-", Vertical: "|"},
	BorderStar:    {TopLeft: "*", TopRight: "*", BottomLeft: "*", BottomRight: "*", Horizontal: "*", Vertical: "*"},
	BorderHash:    {TopLeft: "#", TopRight: "#", BottomLeft: "#", BottomRight: "#", Horizontal: "#", Vertical: "#"},
}

// ParseBorderKind converts a user-supplied string into a BorderKind.
// Unknown values fail fast; there is no silent fallback.
func ParseBorderKind(s string) (BorderKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return BorderNone, nil
	}
	if kind, ok := borderKinds[name]; ok {
		return kind, nil
	}
	return BorderNone, bannererrors.NewValidationError("border", "must be one of none, single, double, rounded, bold, ascii, star, hash", nil)
}

// Frames returns the glyph set for a border kind. The function is total:
// unknown kinds degrade to the empty frame, which makes framing a no-op.
func Frames(kind BorderKind) BorderFrames {
	if frames, ok := borderFrames[kind]; ok {
		return frames
	}
	return borderFrames[BorderNone]
}

// BorderKinds lists every border name in declaration order.
func BorderKinds() []string {
	return []string{"none", "single", "double", "rounded", "bold", "ascii", "star", "hash"}
}

func (b BorderKind) String() string {
	if name, ok := borderNames[b]; ok {
		return name
	}
	return "none"
}
