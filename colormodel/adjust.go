package colormodel

import (
	"fmt"
	"math"
)

// AdjustMode selects how Warmer and Cooler interpret their amount.
type AdjustMode int

const (
	// AdjustRelative treats the amount as a percentage (0, 100] of the
	// remaining distance to the target hue.
	AdjustRelative AdjustMode = iota

	// AdjustAbsolute treats the amount as a degree delta, capped so the
	// rotation never overshoots the target hue.
	AdjustAbsolute
)

// Warm and cool hue arcs. Warming moves a hue toward the nearest endpoint
// of [0, 60] along the shorter arc; cooling toward the nearest endpoint of
// [180, 240]. Hues already inside an arc are fixed points of the
// corresponding adjustment.
const (
	warmArcStart = 0.0
	warmArcEnd   = 60.0
	coolArcStart = 180.0
	coolArcEnd   = 240.0
)

// RotateHue rotates a color's hue by the given number of degrees, modulo
// 360. Colors in spaces without a hue channel are rotated via an HSL
// round trip. Transparency is unchanged.
func RotateHue(c ColorModel, degrees float64) ColorModel {
	return mapHue(c, func(h float64) float64 {
		return normDeg(h + degrees)
	})
}

// Opposite returns the color rotated by 180 degrees. Applying Opposite
// twice yields the original color.
func Opposite(c ColorModel) ColorModel {
	return RotateHue(c, 180)
}

// Invert returns the space-specific complement of a color: each RGB
// channel maps to 255 minus itself; CMYK channels to 100 minus
// themselves; hue-based spaces rotate the hue 180 degrees and complement
// the other two channels; CIELAB complements lightness against 100 and
// the a/b axes across their range; Oklab likewise (its a/b range is
// symmetric, so the axes negate); CIEXYZ inverts via RGB. Transparency is
// unchanged.
func Invert(c ColorModel) ColorModel {
	switch v := c.(type) {
	case RGB:
		return RGB{255 - v.R, 255 - v.G, 255 - v.B, v.Alpha}
	case CMYK:
		return CMYK{100 - v.C, 100 - v.M, 100 - v.Y, 100 - v.K, v.Alpha}
	case HSB:
		return HSB{normDeg(v.H + 180), 100 - v.S, 100 - v.B, v.Alpha}
	case HSI:
		return HSI{normDeg(v.H + 180), 100 - v.S, 100 - v.I, v.Alpha}
	case HSL:
		return HSL{normDeg(v.H + 180), 100 - v.S, 100 - v.L, v.Alpha}
	case HSP:
		return HSP{normDeg(v.H + 180), 100 - v.S, 100 - v.P, v.Alpha}
	case Lab:
		return Lab{100 - v.L, -1 - v.A, -1 - v.B, v.Alpha}
	case Oklab:
		return Oklab{100 - v.L, -v.A, -v.B, v.Alpha}
	case XYZ:
		return Invert(v.ToRGB()).(RGB).ToXYZ()
	}
	panic("colormodel: unknown space")
}

// Warmer moves a color's hue toward the warm arc along the shorter
// circular arc.
//
// In AdjustRelative mode the amount is a percentage in (0, 100] of the
// remaining distance to the target warm hue; anything else reports
// ErrInvalidBounds. In AdjustAbsolute mode the amount is a non-negative
// degree delta, capped so the hue never overshoots the target.
func Warmer(c ColorModel, amount float64, mode AdjustMode) (ColorModel, error) {
	return shiftToward(c, amount, mode, warmArcStart, warmArcEnd)
}

// Cooler moves a color's hue toward the cool arc along the shorter
// circular arc. The amount follows the same contract as Warmer.
func Cooler(c ColorModel, amount float64, mode AdjustMode) (ColorModel, error) {
	return shiftToward(c, amount, mode, coolArcStart, coolArcEnd)
}

func shiftToward(c ColorModel, amount float64, mode AdjustMode, arcStart, arcEnd float64) (ColorModel, error) {
	switch mode {
	case AdjustRelative:
		if math.IsNaN(amount) || amount <= 0 || amount > 100 {
			return nil, fmt.Errorf("relative amount %v outside (0, 100]: %w", amount, ErrInvalidBounds)
		}
	case AdjustAbsolute:
		if math.IsNaN(amount) || amount < 0 {
			return nil, fmt.Errorf("absolute amount %v is negative: %w", amount, ErrInvalidBounds)
		}
	default:
		return nil, fmt.Errorf("unknown adjust mode %d: %w", mode, ErrInvalidBounds)
	}
	return mapHue(c, func(h float64) float64 {
		delta := arcDelta(h, arcStart, arcEnd)
		if delta == 0 {
			return h
		}
		var step float64
		if mode == AdjustRelative {
			step = math.Abs(delta) * amount / 100
		} else {
			step = math.Min(amount, math.Abs(delta))
		}
		return normDeg(h + math.Copysign(step, delta))
	}), nil
}

// arcDelta returns the signed shortest-arc rotation carrying a hue to the
// nearest endpoint of the arc [arcStart, arcEnd], or 0 when the hue
// already lies inside the arc.
func arcDelta(h, arcStart, arcEnd float64) float64 {
	if h >= arcStart && h <= arcEnd {
		return 0
	}
	dStart := circularDelta(h, arcStart)
	dEnd := circularDelta(h, arcEnd)
	if math.Abs(dStart) <= math.Abs(dEnd) {
		return dStart
	}
	return dEnd
}

// mapHue applies a hue transformation in the color's own space when it has
// a hue channel, otherwise through an HSL round trip.
func mapHue(c ColorModel, fn func(float64) float64) ColorModel {
	if hueIndex(c.Space()) == 0 {
		v := c.Values()
		v[0] = fn(v[0])
		return fromValues(c.Space(), v, c.alpha())
	}
	h := c.ToHSL()
	h.H = fn(h.H)
	return Convert(h, c.Space())
}
