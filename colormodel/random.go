package colormodel

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// defaultRand builds a time-seeded source for callers that do not inject
// their own.
func defaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// RandomHue draws a hue uniformly from the arc running from min to max.
//
// Both bounds must be in [0, 360]. When min < max the arc is the
// ordinary interval [min, max), so RandomHue(rng, 0, 360) draws from the
// whole circle; when min > max the arc wraps through 0/360, so
// RandomHue(rng, 350, 10) yields values in [350, 360) or [0, 10). A nil
// rng uses a time-seeded source.
func RandomHue(rng *rand.Rand, min, max float64) (float64, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min < 0 || min > 360 || max < 0 || max > 360 {
		return 0, fmt.Errorf("hue bounds [%v, %v] outside [0, 360]: %w", min, max, ErrInvalidBounds)
	}
	if rng == nil {
		rng = defaultRand()
	}
	// The span comes from the raw bounds; normalizing first would fold
	// max = 360 onto 0 and collapse the full-circle arc to a point.
	span := max - min
	if span < 0 {
		span += 360 // wraparound arc
	}
	return normDeg(min + rng.Float64()*span), nil
}

// RandomRGB draws a color with each channel uniform in [lo, hi].
// The bounds must be channel-wise ordered; anything else reports
// ErrInvalidBounds. Transparency is drawn from [lo.Alpha, hi.Alpha].
func RandomRGB(rng *rand.Rand, lo, hi RGB) (RGB, error) {
	v, a, err := randomChannels(rng, SpaceRGB, lo.Values(), hi.Values(), lo.Alpha, hi.Alpha)
	if err != nil {
		return RGB{}, err
	}
	return RGB{v[0], v[1], v[2], a}, nil
}

// RandomCMYK draws a CMYK color with each channel uniform in [lo, hi].
func RandomCMYK(rng *rand.Rand, lo, hi CMYK) (CMYK, error) {
	v, a, err := randomChannels(rng, SpaceCMYK, lo.Values(), hi.Values(), lo.Alpha, hi.Alpha)
	if err != nil {
		return CMYK{}, err
	}
	return CMYK{v[0], v[1], v[2], v[3], a}, nil
}

// RandomHSB draws an HSB color within the bounds. The hue bound may wrap:
// lo.H > hi.H requests the arc from lo.H through 0/360 to hi.H.
func RandomHSB(rng *rand.Rand, lo, hi HSB) (HSB, error) {
	v, a, err := randomChannels(rng, SpaceHSB, lo.Values(), hi.Values(), lo.Alpha, hi.Alpha)
	if err != nil {
		return HSB{}, err
	}
	return HSB{v[0], v[1], v[2], a}, nil
}

// RandomHSI draws an HSI color within the bounds, with the same
// wraparound hue contract as RandomHSB.
func RandomHSI(rng *rand.Rand, lo, hi HSI) (HSI, error) {
	v, a, err := randomChannels(rng, SpaceHSI, lo.Values(), hi.Values(), lo.Alpha, hi.Alpha)
	if err != nil {
		return HSI{}, err
	}
	return HSI{v[0], v[1], v[2], a}, nil
}

// RandomHSL draws an HSL color within the bounds, with the same
// wraparound hue contract as RandomHSB.
func RandomHSL(rng *rand.Rand, lo, hi HSL) (HSL, error) {
	v, a, err := randomChannels(rng, SpaceHSL, lo.Values(), hi.Values(), lo.Alpha, hi.Alpha)
	if err != nil {
		return HSL{}, err
	}
	return HSL{v[0], v[1], v[2], a}, nil
}

// RandomHSP draws an HSP color within the bounds, with the same
// wraparound hue contract as RandomHSB.
func RandomHSP(rng *rand.Rand, lo, hi HSP) (HSP, error) {
	v, a, err := randomChannels(rng, SpaceHSP, lo.Values(), hi.Values(), lo.Alpha, hi.Alpha)
	if err != nil {
		return HSP{}, err
	}
	return HSP{v[0], v[1], v[2], a}, nil
}

// RandomLab draws a CIELAB color with each channel uniform in [lo, hi].
func RandomLab(rng *rand.Rand, lo, hi Lab) (Lab, error) {
	v, a, err := randomChannels(rng, SpaceLab, lo.Values(), hi.Values(), lo.Alpha, hi.Alpha)
	if err != nil {
		return Lab{}, err
	}
	return Lab{v[0], v[1], v[2], a}, nil
}

// RandomOklab draws an Oklab color with each channel uniform in [lo, hi].
func RandomOklab(rng *rand.Rand, lo, hi Oklab) (Oklab, error) {
	v, a, err := randomChannels(rng, SpaceOklab, lo.Values(), hi.Values(), lo.Alpha, hi.Alpha)
	if err != nil {
		return Oklab{}, err
	}
	return Oklab{v[0], v[1], v[2], a}, nil
}

// RandomXYZ draws a CIEXYZ color with each channel uniform in [lo, hi].
func RandomXYZ(rng *rand.Rand, lo, hi XYZ) (XYZ, error) {
	v, a, err := randomChannels(rng, SpaceXYZ, lo.Values(), hi.Values(), lo.Alpha, hi.Alpha)
	if err != nil {
		return XYZ{}, err
	}
	return XYZ{v[0], v[1], v[2], a}, nil
}

// randomChannels validates the per-channel bounds against the space's
// domain and draws each channel uniformly. Circular channels delegate to
// RandomHue and accept wrapped bounds.
func randomChannels(rng *rand.Rand, s Space, lo, hi []float64, loA, hiA uint8) ([]float64, uint8, error) {
	if rng == nil {
		rng = defaultRand()
	}
	defs := channels(s)
	out := make([]float64, len(defs))
	for i, def := range defs {
		a, b := lo[i], hi[i]
		if def.circular {
			h, err := RandomHue(rng, a, b)
			if err != nil {
				return nil, 0, err
			}
			out[i] = h
			continue
		}
		if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) ||
			a < def.min || b > def.max {
			return nil, 0, fmt.Errorf("%s: %s bounds [%v, %v] outside [%v, %v]: %w",
				s, def.name, a, b, def.min, def.max, ErrInvalidBounds)
		}
		if a > b {
			return nil, 0, fmt.Errorf("%s: %s bounds [%v, %v] out of order: %w",
				s, def.name, a, b, ErrInvalidBounds)
		}
		out[i] = a + rng.Float64()*(b-a)
	}
	if loA > hiA {
		return nil, 0, fmt.Errorf("%s: alpha bounds [%d, %d] out of order: %w",
			s, loA, hiA, ErrInvalidBounds)
	}
	alpha := loA + uint8(rng.Intn(int(hiA-loA)+1))
	return out, alpha, nil
}
