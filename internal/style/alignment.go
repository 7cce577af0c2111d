package style

import (
	"strings"

	bannererrors "github.com/bannerforge/bannerforge/pkg/errors"
)

// Alignment controls horizontal placement of glyph lines within the
// advisory width handed to the renderer.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignmentNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// ParseAlignment converts a user-supplied string into an Alignment.
// Unknown values fail fast; there is no silent fallback.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, bannererrors.NewValidationError("alignment", "must be one of left, center, right", nil)
	}
}

func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return "left"
}
