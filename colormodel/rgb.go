package colormodel

// RGB represents a color in the sRGB space.
//
// Channel values range over [0, 255] but are stored as float64 so that
// chained conversions do not accumulate rounding error; only equality and
// presentation round to whole units.
//
// The zero value is fully transparent black. Construct values with NewRGB
// or one of the RGBFrom* functions so that range invariants hold.
type RGB struct {
	R     float64 `json:"r"` // Red component (0-255)
	G     float64 `json:"g"` // Green component (0-255)
	B     float64 `json:"b"` // Blue component (0-255)
	Alpha uint8   `json:"alpha"` // Transparency: 0 = transparent, 255 = opaque
}

// NewRGB constructs an RGB color from explicit channel values.
//
// Each channel must be in [0, 255]; out-of-range input reports
// ErrOutOfRange.
func NewRGB(r, g, b float64, alpha uint8) (RGB, error) {
	if err := validateChannels(SpaceRGB, []float64{r, g, b}); err != nil {
		return RGB{}, err
	}
	return RGB{r, g, b, alpha}, nil
}

// RGBFromValues constructs an RGB color from a canonical-order value list
// of 3 entries, or 4 with transparency (0-255) appended last.
func RGBFromValues(values []float64) (RGB, error) {
	ch, a, err := parseValueList(SpaceRGB, values)
	if err != nil {
		return RGB{}, err
	}
	return NewRGB(ch[0], ch[1], ch[2], a)
}

// RGBFromUnit constructs an RGB color from a list of values pre-scaled to
// [0, 1], the optional 4th entry being transparency on the same scale.
func RGBFromUnit(values []float64) (RGB, error) {
	ch, a, err := parseUnitList(SpaceRGB, values)
	if err != nil {
		return RGB{}, err
	}
	return RGB{ch[0], ch[1], ch[2], a}, nil
}

// RGBFrom converts any color model value to RGB.
func RGBFrom(c ColorModel) RGB { return c.ToRGB() }

// Space returns SpaceRGB.
func (c RGB) Space() Space { return SpaceRGB }

func (c RGB) alpha() uint8 { return c.Alpha }

// Values returns the channel values in canonical order (red, green, blue).
func (c RGB) Values() []float64 { return []float64{c.R, c.G, c.B} }

// ValuesWithAlpha returns the channel values with transparency appended.
func (c RGB) ValuesWithAlpha() []float64 { return []float64{c.R, c.G, c.B, float64(c.Alpha)} }

// WithAlpha returns a copy of the color with the given transparency.
func (c RGB) WithAlpha(alpha uint8) RGB {
	c.Alpha = alpha
	return c
}

// IsBlack reports whether all channels round to 0.
func (c RGB) IsBlack() bool {
	return roundInt(c.R) == 0 && roundInt(c.G) == 0 && roundInt(c.B) == 0
}

// IsWhite reports whether all channels round to 255.
func (c RGB) IsWhite() bool {
	return roundInt(c.R) == 255 && roundInt(c.G) == 255 && roundInt(c.B) == 255
}

// IsMonochromatic reports whether the rounded channels are all equal.
func (c RGB) IsMonochromatic() bool {
	return roundInt(c.R) == roundInt(c.G) && roundInt(c.G) == roundInt(c.B)
}

// Equal reports rounding-tolerant equality with another color.
func (c RGB) Equal(other ColorModel) bool { return equalModels(c, other) }

// Hash returns a hash consistent with Equal.
func (c RGB) Hash() uint64 { return hashModel(c) }

// String returns a diagnostic representation of the color.
func (c RGB) String() string { return formatModel(c) }

// ToRGB returns the color itself.
func (c RGB) ToRGB() RGB { return c }

// ToCMYK converts the color to the CMYK space.
func (c RGB) ToCMYK() CMYK { return rgbToCMYK(c) }

// ToHSB converts the color to the HSB space.
func (c RGB) ToHSB() HSB { return rgbToHSB(c) }

// ToHSI converts the color to the HSI space.
func (c RGB) ToHSI() HSI { return rgbToHSI(c) }

// ToHSL converts the color to the HSL space.
func (c RGB) ToHSL() HSL { return rgbToHSL(c) }

// ToHSP converts the color to the HSP space.
func (c RGB) ToHSP() HSP { return rgbToHSP(c) }

// ToLab converts the color to the CIELAB space via CIEXYZ.
func (c RGB) ToLab() Lab { return xyzToLab(rgbToXYZ(c)) }

// ToOklab converts the color to the Oklab space via CIEXYZ.
func (c RGB) ToOklab() Oklab { return xyzToOklab(rgbToXYZ(c)) }

// ToXYZ converts the color to the CIEXYZ space.
func (c RGB) ToXYZ() XYZ { return rgbToXYZ(c) }
