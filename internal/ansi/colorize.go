package ansi

import (
	"strings"
)

// ParseGradient splits a "gradient:<a>-<b>" specification into its two
// stops. ok is false when spec is not a gradient at all.
func ParseGradient(spec string) (a, b string, ok bool) {
	body, found := strings.CutPrefix(spec, GradientPrefix)
	if !found {
		return "", "", false
	}
	a, b, _ = strings.Cut(body, "-")
	return a, b, true
}

// Decorations computes the per-line decoration for n lines under the given
// color specification and optional background color.
//
// A plain name decorates every line identically; unknown names degrade to
// no decoration. A gradient spec is a discrete two-band split, not a smooth
// interpolation: the first ⌊n/2⌋ lines carry stop A, the remainder stop B.
// If either stop fails to resolve the whole block falls back to stop A
// alone (which may itself degrade to no decoration).
func Decorations(n int, colorSpec, background string) []string {
	decs := make([]string, n)
	bg := backgroundSeq(background)

	if a, b, ok := ParseGradient(colorSpec); ok {
		seqA, seqB := foregroundSeq(a), foregroundSeq(b)
		if seqA != "" && seqB != "" {
			half := n / 2
			for i := range decs {
				if i < half {
					decs[i] = decoration(seqA, bg)
				} else {
					decs[i] = decoration(seqB, bg)
				}
			}
			return decs
		}
		colorSpec = a
	}

	uniform := decoration(foregroundSeq(colorSpec), bg)
	for i := range decs {
		decs[i] = uniform
	}
	return decs
}

// Apply wraps a line in a decoration with a trailing reset. An empty
// decoration returns the line unchanged.
func Apply(line, dec string) string {
	if dec == "" {
		return line
	}
	return dec + line + Reset
}

// Colorize decorates a block of lines according to a color specification.
// Line count and visible characters are never altered.
func Colorize(lines []string, colorSpec, background string) []string {
	if colorSpec == "" && background == "" {
		return lines
	}

	decs := Decorations(len(lines), colorSpec, background)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Apply(line, decs[i])
	}
	return out
}
