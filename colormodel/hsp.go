package colormodel

// HSP represents a color in the HSP (hue, saturation, perceived
// brightness) space. Perceived brightness weights the RGB channels by the
// luma coefficients 0.299, 0.587, 0.114, so equal P values look equally
// bright regardless of hue.
type HSP struct {
	H     float64 `json:"h"` // Hue: 0-360 degrees
	S     float64 `json:"s"` // Saturation: 0-100 percent
	P     float64 `json:"p"` // Perceived brightness: 0-100 percent
	Alpha uint8   `json:"alpha"` // Transparency: 0 = transparent, 255 = opaque
}

// NewHSP constructs an HSP color. Hue must be in [0, 360] (360 is stored
// as 0); saturation and perceived brightness in [0, 100].
func NewHSP(h, s, p float64, alpha uint8) (HSP, error) {
	if err := validateChannels(SpaceHSP, []float64{h, s, p}); err != nil {
		return HSP{}, err
	}
	return HSP{normDeg(h), s, p, alpha}, nil
}

// HSPFromValues constructs an HSP color from a canonical-order value list
// of 3 entries, or 4 with transparency (0-255) appended last.
func HSPFromValues(values []float64) (HSP, error) {
	ch, a, err := parseValueList(SpaceHSP, values)
	if err != nil {
		return HSP{}, err
	}
	return NewHSP(ch[0], ch[1], ch[2], a)
}

// HSPFromUnit constructs an HSP color from a list of values pre-scaled to
// [0, 1], the optional 4th entry being transparency on the same scale.
func HSPFromUnit(values []float64) (HSP, error) {
	ch, a, err := parseUnitList(SpaceHSP, values)
	if err != nil {
		return HSP{}, err
	}
	return HSP{normDeg(ch[0]), ch[1], ch[2], a}, nil
}

// HSPFromHex constructs an HSP color from a hexadecimal RGB string.
func HSPFromHex(hex string) (HSP, error) {
	rgb, err := RGBFromHex(hex)
	if err != nil {
		return HSP{}, err
	}
	return rgb.ToHSP(), nil
}

// HSPFrom converts any color model value to HSP.
func HSPFrom(c ColorModel) HSP { return c.ToRGB().ToHSP() }

// Space returns SpaceHSP.
func (c HSP) Space() Space { return SpaceHSP }

func (c HSP) alpha() uint8 { return c.Alpha }

// Values returns the channel values in canonical order (hue, saturation,
// perceived brightness).
func (c HSP) Values() []float64 { return []float64{c.H, c.S, c.P} }

// ValuesWithAlpha returns the channel values with transparency appended.
func (c HSP) ValuesWithAlpha() []float64 { return []float64{c.H, c.S, c.P, float64(c.Alpha)} }

// WithAlpha returns a copy of the color with the given transparency.
func (c HSP) WithAlpha(alpha uint8) HSP {
	c.Alpha = alpha
	return c
}

// IsBlack reports whether perceived brightness rounds to 0.
func (c HSP) IsBlack() bool { return roundInt(c.P) == 0 }

// IsWhite reports whether saturation rounds to 0 and perceived brightness
// to 100.
func (c HSP) IsWhite() bool { return roundInt(c.S) == 0 && roundInt(c.P) == 100 }

// IsMonochromatic reports whether saturation or perceived brightness
// rounds to 0.
func (c HSP) IsMonochromatic() bool { return roundInt(c.S) == 0 || roundInt(c.P) == 0 }

// Equal reports rounding-tolerant equality with another color.
func (c HSP) Equal(other ColorModel) bool { return equalModels(c, other) }

// Hash returns a hash consistent with Equal.
func (c HSP) Hash() uint64 { return hashModel(c) }

// String returns a diagnostic representation of the color.
func (c HSP) String() string { return formatModel(c) }

// ToRGB converts the color to the RGB space, reproducing the perceived
// brightness exactly. Saturated bright colors can exceed the sRGB gamut
// and are clamped on projection.
func (c HSP) ToRGB() RGB { return hspToRGB(c) }

// ToCMYK converts the color to the CMYK space via RGB.
func (c HSP) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }

// ToHSB converts the color to the HSB space via RGB.
func (c HSP) ToHSB() HSB { return c.ToRGB().ToHSB() }

// ToHSI converts the color to the HSI space via RGB.
func (c HSP) ToHSI() HSI { return c.ToRGB().ToHSI() }

// ToHSL converts the color to the HSL space via RGB.
func (c HSP) ToHSL() HSL { return c.ToRGB().ToHSL() }

// ToHSP returns the color itself.
func (c HSP) ToHSP() HSP { return c }

// ToLab converts the color to the CIELAB space via RGB and CIEXYZ.
func (c HSP) ToLab() Lab { return c.ToRGB().ToLab() }

// ToOklab converts the color to the Oklab space via RGB and CIEXYZ.
func (c HSP) ToOklab() Oklab { return c.ToRGB().ToOklab() }

// ToXYZ converts the color to the CIEXYZ space via RGB.
func (c HSP) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }
