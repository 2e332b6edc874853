package colormodel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"strconv"
	"strings"
)

// Space identifies one of the supported color spaces.
//
// The set of spaces is closed: every value satisfying ColorModel carries
// exactly one of these tags, and dispatching code may switch over them
// exhaustively.
type Space int

const (
	SpaceRGB Space = iota
	SpaceCMYK
	SpaceHSB
	SpaceHSI
	SpaceHSL
	SpaceHSP
	SpaceLab
	SpaceOklab
	SpaceXYZ
)

// String returns the lowercase name of the space (e.g. "rgb", "oklab").
func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "rgb"
	case SpaceCMYK:
		return "cmyk"
	case SpaceHSB:
		return "hsb"
	case SpaceHSI:
		return "hsi"
	case SpaceHSL:
		return "hsl"
	case SpaceHSP:
		return "hsp"
	case SpaceLab:
		return "lab"
	case SpaceOklab:
		return "oklab"
	case SpaceXYZ:
		return "xyz"
	}
	return "unknown"
}

// Sentinel errors for the three classes of caller-input defects.
//
// All constructors and bound-taking functions wrap one of these, so callers
// can distinguish the failure class with errors.Is:
//
//	_, err := colormodel.NewRGB(300, 0, 0, 255)
//	if errors.Is(err, colormodel.ErrOutOfRange) { ... }
var (
	// ErrOutOfRange reports a channel or transparency value outside its
	// declared range.
	ErrOutOfRange = errors.New("channel value out of range")

	// ErrInvalidShape reports a numeric list of the wrong length or a
	// malformed hexadecimal color string.
	ErrInvalidShape = errors.New("invalid value shape")

	// ErrInvalidBounds reports random-generation or adjustment bounds that
	// are out of order or outside the channel's valid domain.
	ErrInvalidBounds = errors.New("invalid bounds")
)

// ColorModel is the capability set shared by every color value type.
//
// All implementations are immutable value types; every operation that looks
// like a mutation returns a new value. Implementations are safe to share
// across goroutines without coordination.
//
// The interface is sealed (it has an unexported method), so the set of
// implementations is exactly the nine value types in this package.
type ColorModel interface {
	// Space reports which color space the value belongs to.
	Space() Space

	// Values returns the channel values in canonical order, without the
	// transparency channel.
	Values() []float64

	// ValuesWithAlpha returns the channel values in canonical order with
	// the transparency value appended last.
	ValuesWithAlpha() []float64

	// ToRGB converts the color to the RGB space, preserving transparency.
	ToRGB() RGB

	// ToHSL converts the color to the HSL space, preserving transparency.
	ToHSL() HSL

	// IsBlack reports whether the rounded channel values denote black.
	IsBlack() bool

	// IsWhite reports whether the rounded channel values denote white.
	IsWhite() bool

	// IsMonochromatic reports whether the rounded channel values denote a
	// shade of gray (including black and white).
	IsMonochromatic() bool

	// Equal reports whether other is in the same space, every channel
	// rounds to the same integer (hue modulo 360), and the transparency
	// values match exactly.
	Equal(other ColorModel) bool

	// Hash returns a hash consistent with Equal: equal colors hash equal.
	Hash() uint64

	// String returns a diagnostic representation naming the space and
	// listing the channel values. It is not round-trippable.
	String() string

	// alpha seals the interface to this package's value types.
	alpha() uint8
}

// channelDef describes one channel of a color space.
type channelDef struct {
	name     string
	min, max float64
	// unitMax is the upper end used when mapping unit-interval input;
	// it differs from max only for XYZ, whose max is unbounded.
	unitMax  float64
	circular bool
}

// channels returns the channel definitions for a space in canonical order.
func channels(s Space) []channelDef {
	switch s {
	case SpaceRGB:
		return []channelDef{
			{name: "red", max: 255, unitMax: 255},
			{name: "green", max: 255, unitMax: 255},
			{name: "blue", max: 255, unitMax: 255},
		}
	case SpaceCMYK:
		return []channelDef{
			{name: "cyan", max: 100, unitMax: 100},
			{name: "magenta", max: 100, unitMax: 100},
			{name: "yellow", max: 100, unitMax: 100},
			{name: "black", max: 100, unitMax: 100},
		}
	case SpaceHSB:
		return []channelDef{
			{name: "hue", max: 360, unitMax: 360, circular: true},
			{name: "saturation", max: 100, unitMax: 100},
			{name: "brightness", max: 100, unitMax: 100},
		}
	case SpaceHSI:
		return []channelDef{
			{name: "hue", max: 360, unitMax: 360, circular: true},
			{name: "saturation", max: 100, unitMax: 100},
			{name: "intensity", max: 100, unitMax: 100},
		}
	case SpaceHSL:
		return []channelDef{
			{name: "hue", max: 360, unitMax: 360, circular: true},
			{name: "saturation", max: 100, unitMax: 100},
			{name: "lightness", max: 100, unitMax: 100},
		}
	case SpaceHSP:
		return []channelDef{
			{name: "hue", max: 360, unitMax: 360, circular: true},
			{name: "saturation", max: 100, unitMax: 100},
			{name: "perceived brightness", max: 100, unitMax: 100},
		}
	case SpaceLab:
		return []channelDef{
			{name: "lightness", max: 100, unitMax: 100},
			{name: "a", min: -128, max: 127, unitMax: 127},
			{name: "b", min: -128, max: 127, unitMax: 127},
		}
	case SpaceOklab:
		return []channelDef{
			{name: "lightness", max: 100, unitMax: 100},
			{name: "a", min: -100, max: 100, unitMax: 100},
			{name: "b", min: -100, max: 100, unitMax: 100},
		}
	case SpaceXYZ:
		// XYZ has no hard upper bound: out-of-gamut Lab and Oklab values
		// legitimately land beyond the D65 white point.
		return []channelDef{
			{name: "x", max: math.Inf(1), unitMax: refWhiteX},
			{name: "y", max: math.Inf(1), unitMax: refWhiteY},
			{name: "z", max: math.Inf(1), unitMax: refWhiteZ},
		}
	}
	panic("colormodel: unknown space")
}

// hueIndex returns the index of the circular channel for a space, or -1
// if the space has none. Hue is always the first channel.
func hueIndex(s Space) int {
	switch s {
	case SpaceHSB, SpaceHSI, SpaceHSL, SpaceHSP:
		return 0
	}
	return -1
}

// validateChannels checks every channel against its declared range.
func validateChannels(s Space, values []float64) error {
	defs := channels(s)
	for i, def := range defs {
		v := values[i]
		// IsInf matters for XYZ, whose upper bound is itself +Inf.
		if math.IsNaN(v) || math.IsInf(v, 0) || v < def.min || v > def.max {
			return fmt.Errorf("%s: %s value %v outside [%v, %v]: %w",
				s, def.name, v, def.min, def.max, ErrOutOfRange)
		}
	}
	return nil
}

// fromValues rebuilds a color of the given space from canonical-order
// channel values. The values must already be valid; it is used internally
// by the conversion, adjustment, and interpolation engines.
func fromValues(s Space, v []float64, alpha uint8) ColorModel {
	switch s {
	case SpaceRGB:
		return RGB{v[0], v[1], v[2], alpha}
	case SpaceCMYK:
		return CMYK{v[0], v[1], v[2], v[3], alpha}
	case SpaceHSB:
		return HSB{v[0], v[1], v[2], alpha}
	case SpaceHSI:
		return HSI{v[0], v[1], v[2], alpha}
	case SpaceHSL:
		return HSL{v[0], v[1], v[2], alpha}
	case SpaceHSP:
		return HSP{v[0], v[1], v[2], alpha}
	case SpaceLab:
		return Lab{v[0], v[1], v[2], alpha}
	case SpaceOklab:
		return Oklab{v[0], v[1], v[2], alpha}
	case SpaceXYZ:
		return XYZ{v[0], v[1], v[2], alpha}
	}
	panic("colormodel: unknown space")
}

// parseValueList validates a canonical-order value list of n channels with
// an optional trailing transparency entry and splits it into channels and
// alpha. The transparency entry must be in [0, 255]; it is rounded to the
// nearest integer.
func parseValueList(s Space, values []float64) ([]float64, uint8, error) {
	n := len(channels(s))
	switch len(values) {
	case n:
		return values, 255, nil
	case n + 1:
		a := values[n]
		if math.IsNaN(a) || a < 0 || a > 255 {
			return nil, 0, fmt.Errorf("%s: alpha value %v outside [0, 255]: %w",
				s, a, ErrOutOfRange)
		}
		return values[:n], uint8(math.Round(a)), nil
	}
	return nil, 0, fmt.Errorf("%s: expected %d or %d values, got %d: %w",
		s, n, n+1, len(values), ErrInvalidShape)
}

// parseUnitList maps a list of unit-interval values (an optional trailing
// entry being transparency) into a space's channel ranges.
func parseUnitList(s Space, values []float64) ([]float64, uint8, error) {
	defs := channels(s)
	n := len(defs)
	if len(values) != n && len(values) != n+1 {
		return nil, 0, fmt.Errorf("%s: expected %d or %d values, got %d: %w",
			s, n, n+1, len(values), ErrInvalidShape)
	}
	for i, v := range values {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return nil, 0, fmt.Errorf("%s: unit value %v at index %d outside [0, 1]: %w",
				s, v, i, ErrOutOfRange)
		}
	}
	out := make([]float64, n)
	for i, def := range defs {
		out[i] = def.min + values[i]*(def.unitMax-def.min)
	}
	alpha := uint8(255)
	if len(values) == n+1 {
		alpha = uint8(math.Round(values[n] * 255))
	}
	return out, alpha, nil
}

// equalModels implements the rounding-tolerant equality rule shared by all
// value types.
func equalModels(c, other ColorModel) bool {
	if other == nil || c.Space() != other.Space() || c.alpha() != other.alpha() {
		return false
	}
	a, b := c.Values(), other.Values()
	hue := hueIndex(c.Space())
	for i := range a {
		ra, rb := roundInt(a[i]), roundInt(b[i])
		if i == hue {
			// 360 and 0 denote the same angle.
			ra, rb = ra%360, rb%360
		}
		if ra != rb {
			return false
		}
	}
	return true
}

// hashModel produces an FNV-1a hash over the space tag, the rounded channel
// values, and the transparency value, matching equalModels.
func hashModel(c ColorModel) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(c.Space()))
	h.Write(buf[:])
	hue := hueIndex(c.Space())
	for i, v := range c.Values() {
		r := roundInt(v)
		if i == hue {
			r %= 360
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(r)))
		h.Write(buf[:])
	}
	h.Write([]byte{c.alpha()})
	return h.Sum64()
}

// formatModel renders the diagnostic string form, e.g. "hsl(120, 50, 50, a:255)".
func formatModel(c ColorModel) string {
	vals := c.Values()
	parts := make([]string, 0, len(vals)+1)
	for _, v := range vals {
		parts = append(parts, strconv.FormatFloat(roundTo(v, 5), 'g', -1, 64))
	}
	parts = append(parts, fmt.Sprintf("a:%d", c.alpha()))
	return fmt.Sprintf("%s(%s)", c.Space(), strings.Join(parts, ", "))
}
