package colormodel

// Oklab represents a color in the Oklab perceptual space.
//
// Channels are stored at 100x the standard unit scale so that whole-unit
// rounding carries the same meaning as in the other spaces: lightness is
// a percentage in [0, 100], and the a/b axes range over [-100, 100]
// (divide by 100 to recover the conventional unit values).
type Oklab struct {
	L     float64 `json:"l"` // Lightness (0-100)
	A     float64 `json:"a"` // Green-red axis (-100-100)
	B     float64 `json:"b"` // Blue-yellow axis (-100-100)
	Alpha uint8   `json:"alpha"` // Transparency: 0 = transparent, 255 = opaque
}

// NewOklab constructs an Oklab color. Lightness must be in [0, 100] and
// the a/b axes in [-100, 100].
func NewOklab(l, a, b float64, alpha uint8) (Oklab, error) {
	if err := validateChannels(SpaceOklab, []float64{l, a, b}); err != nil {
		return Oklab{}, err
	}
	return Oklab{l, a, b, alpha}, nil
}

// OklabFromValues constructs an Oklab color from a canonical-order value
// list of 3 entries, or 4 with transparency (0-255) appended last.
func OklabFromValues(values []float64) (Oklab, error) {
	ch, a, err := parseValueList(SpaceOklab, values)
	if err != nil {
		return Oklab{}, err
	}
	return NewOklab(ch[0], ch[1], ch[2], a)
}

// OklabFromUnit constructs an Oklab color from a list of values pre-scaled
// to [0, 1], the optional 4th entry being transparency on the same scale.
func OklabFromUnit(values []float64) (Oklab, error) {
	ch, a, err := parseUnitList(SpaceOklab, values)
	if err != nil {
		return Oklab{}, err
	}
	return Oklab{ch[0], ch[1], ch[2], a}, nil
}

// OklabFromHex constructs an Oklab color from a hexadecimal RGB string.
func OklabFromHex(hex string) (Oklab, error) {
	rgb, err := RGBFromHex(hex)
	if err != nil {
		return Oklab{}, err
	}
	return rgb.ToOklab(), nil
}

// OklabFrom converts any color model value to Oklab.
func OklabFrom(c ColorModel) Oklab { return Convert(c, SpaceOklab).(Oklab) }

// Space returns SpaceOklab.
func (c Oklab) Space() Space { return SpaceOklab }

func (c Oklab) alpha() uint8 { return c.Alpha }

// Values returns the channel values in canonical order (lightness, a, b).
func (c Oklab) Values() []float64 { return []float64{c.L, c.A, c.B} }

// ValuesWithAlpha returns the channel values with transparency appended.
func (c Oklab) ValuesWithAlpha() []float64 { return []float64{c.L, c.A, c.B, float64(c.Alpha)} }

// WithAlpha returns a copy of the color with the given transparency.
func (c Oklab) WithAlpha(alpha uint8) Oklab {
	c.Alpha = alpha
	return c
}

// IsBlack reports whether lightness, a, and b all round to 0.
func (c Oklab) IsBlack() bool {
	return roundInt(c.L) == 0 && roundInt(c.A) == 0 && roundInt(c.B) == 0
}

// IsWhite reports whether lightness rounds to 100 with a and b at 0.
func (c Oklab) IsWhite() bool {
	return roundInt(c.L) == 100 && roundInt(c.A) == 0 && roundInt(c.B) == 0
}

// IsMonochromatic reports whether both chromatic axes round to 0.
func (c Oklab) IsMonochromatic() bool { return roundInt(c.A) == 0 && roundInt(c.B) == 0 }

// Equal reports rounding-tolerant equality with another color.
func (c Oklab) Equal(other ColorModel) bool { return equalModels(c, other) }

// Hash returns a hash consistent with Equal.
func (c Oklab) Hash() uint64 { return hashModel(c) }

// String returns a diagnostic representation of the color.
func (c Oklab) String() string { return formatModel(c) }

// ToRGB converts the color to the RGB space via CIEXYZ, clamping
// out-of-gamut values on projection.
func (c Oklab) ToRGB() RGB { return xyzToRGB(oklabToXYZ(c)) }

// ToCMYK converts the color to the CMYK space via RGB.
func (c Oklab) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }

// ToHSB converts the color to the HSB space via RGB.
func (c Oklab) ToHSB() HSB { return c.ToRGB().ToHSB() }

// ToHSI converts the color to the HSI space via RGB.
func (c Oklab) ToHSI() HSI { return c.ToRGB().ToHSI() }

// ToHSL converts the color to the HSL space via RGB.
func (c Oklab) ToHSL() HSL { return c.ToRGB().ToHSL() }

// ToHSP converts the color to the HSP space via RGB.
func (c Oklab) ToHSP() HSP { return c.ToRGB().ToHSP() }

// ToLab converts the color to the CIELAB space via CIEXYZ.
func (c Oklab) ToLab() Lab { return xyzToLab(oklabToXYZ(c)) }

// ToOklab returns the color itself.
func (c Oklab) ToOklab() Oklab { return c }

// ToXYZ converts the color to the CIEXYZ space.
func (c Oklab) ToXYZ() XYZ { return oklabToXYZ(c) }
