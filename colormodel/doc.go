// Package colormodel converts color values among nine color-space
// representations and provides per-space adjustment, interpolation,
// equality, and bounded random generation.
//
// The supported spaces are RGB, CMYK, HSB/HSV, HSI, HSL, HSP, CIELAB,
// Oklab, and CIEXYZ. Every space is an immutable value type carrying its
// channel values as float64 plus a shared transparency channel (0-255,
// 0 = fully transparent). Operations that look like mutations return new
// values, so colors can be shared freely across goroutines.
//
// # Conversion
//
// Convert (or the typed To* methods) produces the representation of the
// same perceptual color in another space. RGB is the hub for the
// hue-based and subtractive spaces (CMYK, HSB, HSI, HSL, HSP); CIEXYZ is
// the hub for CIELAB and Oklab. Conversion never fails for a valid input
// color. CIELAB and Oklab can describe colors outside the sRGB gamut;
// such colors clamp to [0, 255] only on the final projection into RGB,
// never at intermediate stages.
//
// # Precision and equality
//
// Channel values are kept at full float64 precision so chained
// conversions do not accumulate avoidable rounding error. Equality (and
// the IsBlack/IsWhite/IsMonochromatic predicates) operate on channel
// values rounded to whole units, with hue compared modulo 360 and
// transparency compared exactly. Hash is consistent with Equal.
//
// # Error handling
//
// Constructors and bound-taking functions fail fast with one of three
// wrapped sentinels: ErrOutOfRange for a channel value outside its
// declared range, ErrInvalidShape for a value list of the wrong length or
// a malformed hex string, and ErrInvalidBounds for out-of-order or
// out-of-domain random/adjustment bounds. Conversion, interpolation, and
// adjustment with valid inputs are total functions and report no errors.
//
// # Randomness
//
// The Random* functions take an injectable *rand.Rand so tests can seed
// deterministically; a nil source falls back to a time-seeded one. Hue
// bounds may wrap: a minimum above the maximum requests the arc through
// the 0/360 point.
package colormodel
