package colormodel

// HSB represents a color in the HSB (hue, saturation, brightness) space,
// also known as HSV.
type HSB struct {
	H     float64 `json:"h"` // Hue: 0-360 degrees
	S     float64 `json:"s"` // Saturation: 0-100 percent
	B     float64 `json:"b"` // Brightness: 0-100 percent
	Alpha uint8   `json:"alpha"` // Transparency: 0 = transparent, 255 = opaque
}

// NewHSB constructs an HSB color. Hue must be in [0, 360] (360 is stored
// as 0); saturation and brightness in [0, 100].
func NewHSB(h, s, b float64, alpha uint8) (HSB, error) {
	if err := validateChannels(SpaceHSB, []float64{h, s, b}); err != nil {
		return HSB{}, err
	}
	return HSB{normDeg(h), s, b, alpha}, nil
}

// HSBFromValues constructs an HSB color from a canonical-order value list
// of 3 entries, or 4 with transparency (0-255) appended last.
func HSBFromValues(values []float64) (HSB, error) {
	ch, a, err := parseValueList(SpaceHSB, values)
	if err != nil {
		return HSB{}, err
	}
	return NewHSB(ch[0], ch[1], ch[2], a)
}

// HSBFromUnit constructs an HSB color from a list of values pre-scaled to
// [0, 1], the optional 4th entry being transparency on the same scale.
func HSBFromUnit(values []float64) (HSB, error) {
	ch, a, err := parseUnitList(SpaceHSB, values)
	if err != nil {
		return HSB{}, err
	}
	return HSB{normDeg(ch[0]), ch[1], ch[2], a}, nil
}

// HSBFromHex constructs an HSB color from a hexadecimal RGB string.
func HSBFromHex(hex string) (HSB, error) {
	rgb, err := RGBFromHex(hex)
	if err != nil {
		return HSB{}, err
	}
	return rgb.ToHSB(), nil
}

// HSBFrom converts any color model value to HSB.
func HSBFrom(c ColorModel) HSB { return c.ToRGB().ToHSB() }

// Space returns SpaceHSB.
func (c HSB) Space() Space { return SpaceHSB }

func (c HSB) alpha() uint8 { return c.Alpha }

// Values returns the channel values in canonical order (hue, saturation,
// brightness).
func (c HSB) Values() []float64 { return []float64{c.H, c.S, c.B} }

// ValuesWithAlpha returns the channel values with transparency appended.
func (c HSB) ValuesWithAlpha() []float64 { return []float64{c.H, c.S, c.B, float64(c.Alpha)} }

// WithAlpha returns a copy of the color with the given transparency.
func (c HSB) WithAlpha(alpha uint8) HSB {
	c.Alpha = alpha
	return c
}

// IsBlack reports whether brightness rounds to 0.
func (c HSB) IsBlack() bool { return roundInt(c.B) == 0 }

// IsWhite reports whether saturation rounds to 0 and brightness to 100.
func (c HSB) IsWhite() bool { return roundInt(c.S) == 0 && roundInt(c.B) == 100 }

// IsMonochromatic reports whether saturation or brightness rounds to 0.
func (c HSB) IsMonochromatic() bool { return roundInt(c.S) == 0 || roundInt(c.B) == 0 }

// Equal reports rounding-tolerant equality with another color.
func (c HSB) Equal(other ColorModel) bool { return equalModels(c, other) }

// Hash returns a hash consistent with Equal.
func (c HSB) Hash() uint64 { return hashModel(c) }

// String returns a diagnostic representation of the color.
func (c HSB) String() string { return formatModel(c) }

// ToRGB converts the color to the RGB space.
func (c HSB) ToRGB() RGB { return hsbToRGB(c) }

// ToCMYK converts the color to the CMYK space via RGB.
func (c HSB) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }

// ToHSB returns the color itself.
func (c HSB) ToHSB() HSB { return c }

// ToHSI converts the color to the HSI space via RGB.
func (c HSB) ToHSI() HSI { return c.ToRGB().ToHSI() }

// ToHSL converts the color to the HSL space via RGB.
func (c HSB) ToHSL() HSL { return c.ToRGB().ToHSL() }

// ToHSP converts the color to the HSP space via RGB.
func (c HSB) ToHSP() HSP { return c.ToRGB().ToHSP() }

// ToLab converts the color to the CIELAB space via RGB and CIEXYZ.
func (c HSB) ToLab() Lab { return c.ToRGB().ToLab() }

// ToOklab converts the color to the Oklab space via RGB and CIEXYZ.
func (c HSB) ToOklab() Oklab { return c.ToRGB().ToOklab() }

// ToXYZ converts the color to the CIEXYZ space via RGB.
func (c HSB) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }
