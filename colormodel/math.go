package colormodel

import "math"

// roundInt rounds a channel value to the nearest whole unit, the
// resolution at which equality and the semantic predicates operate.
func roundInt(v float64) int {
	return int(math.Round(v))
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normDeg normalizes an angle in degrees to [0, 360).
func normDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// circularDelta returns the signed shortest-arc rotation from one hue to
// another, in (-180, 180].
func circularDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

// lerpHue interpolates between two hues along the shorter circular arc.
func lerpHue(a, b, t float64) float64 {
	return normDeg(a + circularDelta(a, b)*t)
}
