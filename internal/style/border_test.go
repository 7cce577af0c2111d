package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramesIsTotal(t *testing.T) {
	t.Parallel()

	for _, name := range BorderKinds() {
		kind, err := ParseBorderKind(name)
		require.NoError(t, err)

		frames := Frames(kind)
		if kind == BorderNone {
			assert.Empty(t, frames.Horizontal)
			assert.Empty(t, frames.Vertical)
			continue
		}
		assert.NotEmpty(t, frames.TopLeft, name)
		assert.NotEmpty(t, frames.TopRight, name)
		assert.NotEmpty(t, frames.BottomLeft, name)
		assert.NotEmpty(t, frames.BottomRight, name)
		assert.NotEmpty(t, frames.Horizontal, name)
		assert.NotEmpty(t, frames.Vertical, name)
	}

	// Out-of-range kinds degrade to the empty frame instead of failing.
	assert.Equal(t, Frames(BorderNone), Frames(BorderKind(99)))
}

func TestParseBorderKind(t *testing.T) {
	t.Parallel()

	kind, err := ParseBorderKind("double")
	require.NoError(t, err)
	assert.Equal(t, BorderDouble, kind)

	kind, err = ParseBorderKind("  ROUNDED ")
	require.NoError(t, err)
	assert.Equal(t, BorderRounded, kind)

	kind, err = ParseBorderKind("")
	require.NoError(t, err)
	assert.Equal(t, BorderNone, kind)

	_, err = ParseBorderKind("wavy")
	require.Error(t, err)
}

func TestBorderGlyphs(t *testing.T) {
	t.Parallel()

	ascii := Frames(BorderASCII)
	assert.Equal(t, "+", ascii.TopLeft)
	assert.Equal(t, "-", ascii.Horizontal)
	assert.Equal(t, "|", ascii.Vertical)

	double := Frames(BorderDouble)
	assert.Equal(t, "╔", double.TopLeft)
	assert.Equal(t, "╝", double.BottomRight)

	star := Frames(BorderStar)
	assert.Equal(t, "*", star.Horizontal)
	assert.Equal(t, "*", star.Vertical)
}

func TestBorderKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rounded", BorderRounded.String())
	assert.Equal(t, "none", BorderKind(42).String())
}
