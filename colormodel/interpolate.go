package colormodel

import (
	"fmt"
	"math"
)

// Lerp linearly interpolates between two colors at position t, clamped to
// [0, 1]. The result is in the first color's space; the second color is
// converted first when the spaces differ.
//
// Ordinary channels interpolate linearly. A hue channel interpolates along
// the shorter of the two circular arcs, crossing the 0/360 wraparound
// point when the absolute difference exceeds 180 degrees. Transparency
// interpolates linearly and rounds to the nearest integer.
func Lerp(start, end ColorModel, t float64) ColorModel {
	e := Convert(end, start.Space())
	switch {
	case math.IsNaN(t) || t <= 0:
		return start
	case t >= 1:
		return e
	}
	sv, ev := start.Values(), e.Values()
	out := make([]float64, len(sv))
	hue := hueIndex(start.Space())
	for i := range sv {
		if i == hue {
			out[i] = lerpHue(sv[i], ev[i], t)
		} else {
			out[i] = sv[i] + (ev[i]-sv[i])*t
		}
	}
	sa, ea := float64(start.alpha()), float64(e.alpha())
	alpha := uint8(math.Round(sa + (ea-sa)*t))
	return fromValues(start.Space(), out, alpha)
}

// LerpSteps produces the evenly spaced interpolation sequence between two
// colors, using t = i/steps for i in 0..steps, so the sequence has
// steps+1 colors and reproduces both endpoints exactly.
//
// When excludeEndpoints is set, the first and last colors are omitted,
// yielding steps-1 colors (an empty sequence when steps is 1). steps must
// be positive; zero or a negative count reports ErrInvalidBounds.
func LerpSteps(start, end ColorModel, steps int, excludeEndpoints bool) ([]ColorModel, error) {
	if steps < 1 {
		return nil, fmt.Errorf("steps must be positive, got %d: %w", steps, ErrInvalidBounds)
	}
	e := Convert(end, start.Space())
	out := make([]ColorModel, 0, steps+1)
	for i := 0; i <= steps; i++ {
		if excludeEndpoints && (i == 0 || i == steps) {
			continue
		}
		out = append(out, Lerp(start, e, float64(i)/float64(steps)))
	}
	return out, nil
}
