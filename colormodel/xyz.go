package colormodel

// XYZ represents a color in the CIEXYZ space, scaled so that the D65
// reference white is (95.047, 100, 108.883).
//
// XYZ is the hub space for CIELAB and Oklab. Channels must be finite and
// non-negative but have no fixed upper bound: out-of-gamut Lab/Oklab inputs
// legitimately produce tristimulus values beyond the reference white, and
// clamping happens only on projection into RGB.
type XYZ struct {
	X     float64 `json:"x"` // X tristimulus value (>= 0)
	Y     float64 `json:"y"` // Y tristimulus value (>= 0)
	Z     float64 `json:"z"` // Z tristimulus value (>= 0)
	Alpha uint8   `json:"alpha"` // Transparency: 0 = transparent, 255 = opaque
}

// NewXYZ constructs a CIEXYZ color from non-negative tristimulus values.
func NewXYZ(x, y, z float64, alpha uint8) (XYZ, error) {
	if err := validateChannels(SpaceXYZ, []float64{x, y, z}); err != nil {
		return XYZ{}, err
	}
	return XYZ{x, y, z, alpha}, nil
}

// XYZFromValues constructs a CIEXYZ color from a canonical-order value
// list of 3 entries, or 4 with transparency (0-255) appended last.
func XYZFromValues(values []float64) (XYZ, error) {
	ch, a, err := parseValueList(SpaceXYZ, values)
	if err != nil {
		return XYZ{}, err
	}
	return NewXYZ(ch[0], ch[1], ch[2], a)
}

// XYZFromUnit constructs a CIEXYZ color from a list of values pre-scaled
// to [0, 1], mapped onto [0, reference white]; the optional 4th entry is
// transparency on the same scale.
func XYZFromUnit(values []float64) (XYZ, error) {
	ch, a, err := parseUnitList(SpaceXYZ, values)
	if err != nil {
		return XYZ{}, err
	}
	return XYZ{ch[0], ch[1], ch[2], a}, nil
}

// XYZFromHex constructs a CIEXYZ color from a hexadecimal RGB string.
func XYZFromHex(hex string) (XYZ, error) {
	rgb, err := RGBFromHex(hex)
	if err != nil {
		return XYZ{}, err
	}
	return rgb.ToXYZ(), nil
}

// XYZFrom converts any color model value to CIEXYZ.
func XYZFrom(c ColorModel) XYZ { return Convert(c, SpaceXYZ).(XYZ) }

// Space returns SpaceXYZ.
func (c XYZ) Space() Space { return SpaceXYZ }

func (c XYZ) alpha() uint8 { return c.Alpha }

// Values returns the channel values in canonical order (x, y, z).
func (c XYZ) Values() []float64 { return []float64{c.X, c.Y, c.Z} }

// ValuesWithAlpha returns the channel values with transparency appended.
func (c XYZ) ValuesWithAlpha() []float64 { return []float64{c.X, c.Y, c.Z, float64(c.Alpha)} }

// WithAlpha returns a copy of the color with the given transparency.
func (c XYZ) WithAlpha(alpha uint8) XYZ {
	c.Alpha = alpha
	return c
}

// IsBlack reports whether all tristimulus values round to 0.
func (c XYZ) IsBlack() bool {
	return roundInt(c.X) == 0 && roundInt(c.Y) == 0 && roundInt(c.Z) == 0
}

// IsWhite reports whether the color rounds to the D65 reference white.
func (c XYZ) IsWhite() bool {
	return roundInt(c.X) == roundInt(refWhiteX) &&
		roundInt(c.Y) == roundInt(refWhiteY) &&
		roundInt(c.Z) == roundInt(refWhiteZ)
}

// IsMonochromatic reports whether the RGB projection is a shade of gray.
func (c XYZ) IsMonochromatic() bool { return c.ToRGB().IsMonochromatic() }

// Equal reports rounding-tolerant equality with another color.
func (c XYZ) Equal(other ColorModel) bool { return equalModels(c, other) }

// Hash returns a hash consistent with Equal.
func (c XYZ) Hash() uint64 { return hashModel(c) }

// String returns a diagnostic representation of the color.
func (c XYZ) String() string { return formatModel(c) }

// ToRGB converts the color to the RGB space, clamping out-of-gamut values
// on projection.
func (c XYZ) ToRGB() RGB { return xyzToRGB(c) }

// ToCMYK converts the color to the CMYK space via RGB.
func (c XYZ) ToCMYK() CMYK { return c.ToRGB().ToCMYK() }

// ToHSB converts the color to the HSB space via RGB.
func (c XYZ) ToHSB() HSB { return c.ToRGB().ToHSB() }

// ToHSI converts the color to the HSI space via RGB.
func (c XYZ) ToHSI() HSI { return c.ToRGB().ToHSI() }

// ToHSL converts the color to the HSL space via RGB.
func (c XYZ) ToHSL() HSL { return c.ToRGB().ToHSL() }

// ToHSP converts the color to the HSP space via RGB.
func (c XYZ) ToHSP() HSP { return c.ToRGB().ToHSP() }

// ToLab converts the color to the CIELAB space.
func (c XYZ) ToLab() Lab { return xyzToLab(c) }

// ToOklab converts the color to the Oklab space.
func (c XYZ) ToOklab() Oklab { return xyzToOklab(c) }

// ToXYZ returns the color itself.
func (c XYZ) ToXYZ() XYZ { return c }
