package colormodel

// HSL represents a color in the HSL (hue, saturation, lightness) space.
//
// HSL is the space the adjustment algorithms round-trip through when a
// color's own space has no hue channel.
type HSL struct {
	H     float64 `json:"h"` // Hue: 0-360 degrees
	S     float64 `json:"s"` // Saturation: 0-100 percent
	L     float64 `json:"l"` // Lightness: 0-100 percent
	Alpha uint8   `json:"alpha"` // Transparency: 0 = transparent, 255 = opaque
}

// NewHSL constructs an HSL color. Hue must be in [0, 360] (360 is stored
// as 0); saturation and lightness in [0, 100].
func NewHSL(h, s, l float64, alpha uint8) (HSL, error) {
	if err := validateChannels(SpaceHSL, []float64{h, s, l}); err != nil {
		return HSL{}, err
	}
	return HSL{normDeg(h), s, l, alpha}, nil
}

// HSLFromValues constructs an HSL color from a canonical-order value list
// of 3 entries, or 4 with transparency (0-255) appended last.
func HSLFromValues(values []float64) (HSL, error) {
	ch, a, err := parseValueList(SpaceHSL, values)
	if err != nil {
		return HSL{}, err
	}
	return NewHSL(ch[0], ch[1], ch[2], a)
}

// HSLFromUnit constructs an HSL color from a list of values pre-scaled to
// [0, 1], the optional 4th entry being transparency on the same scale.
func HSLFromUnit(values []float64) (HSL, error) {
	ch, a, err := parseUnitList(SpaceHSL, values)
	if err != nil {
		return HSL{}, err
	}
	return HSL{normDeg(ch[0]), ch[1], ch[2], a}, nil
}

// HSLFromHex constructs an HSL color from a hexadecimal RGB string.
func HSLFromHex(hex string) (HSL, error) {
	rgb, err := RGBFromHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return rgb.ToHSL(), nil
}

// HSLFrom converts any color model value to HSL.
func HSLFrom(c ColorModel) HSL { return c.ToHSL() }

// Space returns SpaceHSL.
func (c HSL) Space() Space { return SpaceHSL }

func (c HSL) alpha() uint8 { return c.Alpha }

// Values returns the channel values in canonical order (hue, saturation,
// lightness).
func (c HSL) Values() []float64 { return []float64{c.H, c.S, c.L} }

// ValuesWithAlpha returns the channel values with transparency appended.
func (c HSL) ValuesWithAlpha() []float64 { return []float64{c.H, c.S, c.L, float64(c.Alpha)} }

// WithAlpha returns a copy of the color with the given transparency.
func (c HSL) WithAlpha(alpha uint8) HSL {
	c.Alpha = alpha
	return c
}

// IsBlack reports whether lightness rounds to 0.
func (c HSL) IsBlack() bool { return roundInt(c.L) == 0 }

// IsWhite reports whether lightness rounds to 100.
func (c HSL) IsWhite() bool { return roundInt(c.L) == 100 }

// IsMonochromatic reports whether the color is a shade of gray: saturation
// rounds to 0, or lightness rounds to 0 or 100.
func (c HSL) IsMonochromatic() bool {
	l := roundInt(c.L)
	return roundInt(c.S) == 0 || l == 0 || l == 100
}

// Equal reports rounding-tolerant equality with another color.
func (c HSL) Equal(other ColorModel) bool { return equalModels(c, other) }

// Hash returns a hash consistent with Equal.
func (c HSL) Hash() uint64 { return hashModel(c) }

// String returns a diagnostic representation of the color.
func (c HSL) String() string { return formatModel(c) }

// ToRGB converts the color to the RGB space.
func (c HSL) ToRGB() RGB { return hslToRGB(c) }

// ToCMYK converts the color to the CMYK space via RGB.
func (c HSL) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }

// ToHSB converts the color to the HSB space via RGB.
func (c HSL) ToHSB() HSB { return c.ToRGB().ToHSB() }

// ToHSI converts the color to the HSI space via RGB.
func (c HSL) ToHSI() HSI { return c.ToRGB().ToHSI() }

// ToHSL returns the color itself.
func (c HSL) ToHSL() HSL { return c }

// ToHSP converts the color to the HSP space via RGB.
func (c HSL) ToHSP() HSP { return c.ToRGB().ToHSP() }

// ToLab converts the color to the CIELAB space via RGB and CIEXYZ.
func (c HSL) ToLab() Lab { return c.ToRGB().ToLab() }

// ToOklab converts the color to the Oklab space via RGB and CIEXYZ.
func (c HSL) ToOklab() Oklab { return c.ToRGB().ToOklab() }

// ToXYZ converts the color to the CIEXYZ space via RGB.
func (c HSL) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }
