package colormodel

// HSI represents a color in the HSI (hue, saturation, intensity) space.
// Intensity is the mean of the RGB channels.
type HSI struct {
	H     float64 `json:"h"` // Hue: 0-360 degrees
	S     float64 `json:"s"` // Saturation: 0-100 percent
	I     float64 `json:"i"` // Intensity: 0-100 percent
	Alpha uint8   `json:"alpha"` // Transparency: 0 = transparent, 255 = opaque
}

// NewHSI constructs an HSI color. Hue must be in [0, 360] (360 is stored
// as 0); saturation and intensity in [0, 100].
func NewHSI(h, s, i float64, alpha uint8) (HSI, error) {
	if err := validateChannels(SpaceHSI, []float64{h, s, i}); err != nil {
		return HSI{}, err
	}
	return HSI{normDeg(h), s, i, alpha}, nil
}

// HSIFromValues constructs an HSI color from a canonical-order value list
// of 3 entries, or 4 with transparency (0-255) appended last.
func HSIFromValues(values []float64) (HSI, error) {
	ch, a, err := parseValueList(SpaceHSI, values)
	if err != nil {
		return HSI{}, err
	}
	return NewHSI(ch[0], ch[1], ch[2], a)
}

// HSIFromUnit constructs an HSI color from a list of values pre-scaled to
// [0, 1], the optional 4th entry being transparency on the same scale.
func HSIFromUnit(values []float64) (HSI, error) {
	ch, a, err := parseUnitList(SpaceHSI, values)
	if err != nil {
		return HSI{}, err
	}
	return HSI{normDeg(ch[0]), ch[1], ch[2], a}, nil
}

// HSIFromHex constructs an HSI color from a hexadecimal RGB string.
func HSIFromHex(hex string) (HSI, error) {
	rgb, err := RGBFromHex(hex)
	if err != nil {
		return HSI{}, err
	}
	return rgb.ToHSI(), nil
}

// HSIFrom converts any color model value to HSI.
func HSIFrom(c ColorModel) HSI { return c.ToRGB().ToHSI() }

// Space returns SpaceHSI.
func (c HSI) Space() Space { return SpaceHSI }

func (c HSI) alpha() uint8 { return c.Alpha }

// Values returns the channel values in canonical order (hue, saturation,
// intensity).
func (c HSI) Values() []float64 { return []float64{c.H, c.S, c.I} }

// ValuesWithAlpha returns the channel values with transparency appended.
func (c HSI) ValuesWithAlpha() []float64 { return []float64{c.H, c.S, c.I, float64(c.Alpha)} }

// WithAlpha returns a copy of the color with the given transparency.
func (c HSI) WithAlpha(alpha uint8) HSI {
	c.Alpha = alpha
	return c
}

// IsBlack reports whether intensity rounds to 0.
func (c HSI) IsBlack() bool { return roundInt(c.I) == 0 }

// IsWhite reports whether saturation rounds to 0 and intensity to 100.
func (c HSI) IsWhite() bool { return roundInt(c.S) == 0 && roundInt(c.I) == 100 }

// IsMonochromatic reports whether saturation or intensity rounds to 0.
func (c HSI) IsMonochromatic() bool { return roundInt(c.S) == 0 || roundInt(c.I) == 0 }

// Equal reports rounding-tolerant equality with another color.
func (c HSI) Equal(other ColorModel) bool { return equalModels(c, other) }

// Hash returns a hash consistent with Equal.
func (c HSI) Hash() uint64 { return hashModel(c) }

// String returns a diagnostic representation of the color.
func (c HSI) String() string { return formatModel(c) }

// ToRGB converts the color to the RGB space. Saturated high-intensity
// colors can exceed the sRGB gamut and are clamped on projection.
func (c HSI) ToRGB() RGB { return hsiToRGB(c) }

// ToCMYK converts the color to the CMYK space via RGB.
func (c HSI) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }

// ToHSB converts the color to the HSB space via RGB.
func (c HSI) ToHSB() HSB { return c.ToRGB().ToHSB() }

// ToHSI returns the color itself.
func (c HSI) ToHSI() HSI { return c }

// ToHSL converts the color to the HSL space via RGB.
func (c HSI) ToHSL() HSL { return c.ToRGB().ToHSL() }

// ToHSP converts the color to the HSP space via RGB.
func (c HSI) ToHSP() HSP { return c.ToRGB().ToHSP() }

// ToLab converts the color to the CIELAB space via RGB and CIEXYZ.
func (c HSI) ToLab() Lab { return c.ToRGB().ToLab() }

// ToOklab converts the color to the Oklab space via RGB and CIEXYZ.
func (c HSI) ToOklab() Oklab { return c.ToRGB().ToOklab() }

// ToXYZ converts the color to the CIEXYZ space via RGB.
func (c HSI) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }
