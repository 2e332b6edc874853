package colormodel

// Lab represents a color in the CIELAB space under the D65 standard
// illuminant.
//
// Lab can represent colors outside the sRGB gamut; converting such a color
// to RGB clamps the channels at the final projection step only.
type Lab struct {
	L     float64 `json:"l"` // Lightness (0-100)
	A     float64 `json:"a"` // Green-red axis (-128-127)
	B     float64 `json:"b"` // Blue-yellow axis (-128-127)
	Alpha uint8   `json:"alpha"` // Transparency: 0 = transparent, 255 = opaque
}

// NewLab constructs a CIELAB color. Lightness must be in [0, 100] and the
// a/b axes in [-128, 127].
func NewLab(l, a, b float64, alpha uint8) (Lab, error) {
	if err := validateChannels(SpaceLab, []float64{l, a, b}); err != nil {
		return Lab{}, err
	}
	return Lab{l, a, b, alpha}, nil
}

// LabFromValues constructs a CIELAB color from a canonical-order value
// list of 3 entries, or 4 with transparency (0-255) appended last.
func LabFromValues(values []float64) (Lab, error) {
	ch, a, err := parseValueList(SpaceLab, values)
	if err != nil {
		return Lab{}, err
	}
	return NewLab(ch[0], ch[1], ch[2], a)
}

// LabFromUnit constructs a CIELAB color from a list of values pre-scaled
// to [0, 1], the optional 4th entry being transparency on the same scale.
func LabFromUnit(values []float64) (Lab, error) {
	ch, a, err := parseUnitList(SpaceLab, values)
	if err != nil {
		return Lab{}, err
	}
	return Lab{ch[0], ch[1], ch[2], a}, nil
}

// LabFromHex constructs a CIELAB color from a hexadecimal RGB string.
func LabFromHex(hex string) (Lab, error) {
	rgb, err := RGBFromHex(hex)
	if err != nil {
		return Lab{}, err
	}
	return rgb.ToLab(), nil
}

// LabFrom converts any color model value to CIELAB.
func LabFrom(c ColorModel) Lab { return Convert(c, SpaceLab).(Lab) }

// Space returns SpaceLab.
func (c Lab) Space() Space { return SpaceLab }

func (c Lab) alpha() uint8 { return c.Alpha }

// Values returns the channel values in canonical order (lightness, a, b).
func (c Lab) Values() []float64 { return []float64{c.L, c.A, c.B} }

// ValuesWithAlpha returns the channel values with transparency appended.
func (c Lab) ValuesWithAlpha() []float64 { return []float64{c.L, c.A, c.B, float64(c.Alpha)} }

// WithAlpha returns a copy of the color with the given transparency.
func (c Lab) WithAlpha(alpha uint8) Lab {
	c.Alpha = alpha
	return c
}

// IsBlack reports whether lightness, a, and b all round to 0.
func (c Lab) IsBlack() bool {
	return roundInt(c.L) == 0 && roundInt(c.A) == 0 && roundInt(c.B) == 0
}

// IsWhite reports whether lightness rounds to 100 with a and b at 0.
func (c Lab) IsWhite() bool {
	return roundInt(c.L) == 100 && roundInt(c.A) == 0 && roundInt(c.B) == 0
}

// IsMonochromatic reports whether both chromatic axes round to 0.
func (c Lab) IsMonochromatic() bool { return roundInt(c.A) == 0 && roundInt(c.B) == 0 }

// Equal reports rounding-tolerant equality with another color.
func (c Lab) Equal(other ColorModel) bool { return equalModels(c, other) }

// Hash returns a hash consistent with Equal.
func (c Lab) Hash() uint64 { return hashModel(c) }

// String returns a diagnostic representation of the color.
func (c Lab) String() string { return formatModel(c) }

// ToRGB converts the color to the RGB space via CIEXYZ, clamping
// out-of-gamut values on projection.
func (c Lab) ToRGB() RGB { return xyzToRGB(labToXYZ(c)) }

// ToCMYK converts the color to the CMYK space via RGB.
func (c Lab) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }

// ToHSB converts the color to the HSB space via RGB.
func (c Lab) ToHSB() HSB { return c.ToRGB().ToHSB() }

// ToHSI converts the color to the HSI space via RGB.
func (c Lab) ToHSI() HSI { return c.ToRGB().ToHSI() }

// ToHSL converts the color to the HSL space via RGB.
func (c Lab) ToHSL() HSL { return c.ToRGB().ToHSL() }

// ToHSP converts the color to the HSP space via RGB.
func (c Lab) ToHSP() HSP { return c.ToRGB().ToHSP() }

// ToLab returns the color itself.
func (c Lab) ToLab() Lab { return c }

// ToOklab converts the color to the Oklab space via CIEXYZ.
func (c Lab) ToOklab() Oklab { return xyzToOklab(labToXYZ(c)) }

// ToXYZ converts the color to the CIEXYZ space.
func (c Lab) ToXYZ() XYZ { return labToXYZ(c) }
