package colormodel

// CMYK represents a color in the subtractive CMYK space.
//
// All four channels are percentages in [0, 100].
type CMYK struct {
	C     float64 `json:"c"` // Cyan (0-100)
	M     float64 `json:"m"` // Magenta (0-100)
	Y     float64 `json:"y"` // Yellow (0-100)
	K     float64 `json:"k"` // Black key (0-100)
	Alpha uint8   `json:"alpha"` // Transparency: 0 = transparent, 255 = opaque
}

// NewCMYK constructs a CMYK color from explicit channel values, each in
// [0, 100].
func NewCMYK(c, m, y, k float64, alpha uint8) (CMYK, error) {
	if err := validateChannels(SpaceCMYK, []float64{c, m, y, k}); err != nil {
		return CMYK{}, err
	}
	return CMYK{c, m, y, k, alpha}, nil
}

// CMYKFromValues constructs a CMYK color from a canonical-order value list
// of 4 entries, or 5 with transparency (0-255) appended last.
func CMYKFromValues(values []float64) (CMYK, error) {
	ch, a, err := parseValueList(SpaceCMYK, values)
	if err != nil {
		return CMYK{}, err
	}
	return NewCMYK(ch[0], ch[1], ch[2], ch[3], a)
}

// CMYKFromUnit constructs a CMYK color from a list of values pre-scaled to
// [0, 1], the optional 5th entry being transparency on the same scale.
func CMYKFromUnit(values []float64) (CMYK, error) {
	ch, a, err := parseUnitList(SpaceCMYK, values)
	if err != nil {
		return CMYK{}, err
	}
	return CMYK{ch[0], ch[1], ch[2], ch[3], a}, nil
}

// CMYKFromHex constructs a CMYK color from a hexadecimal RGB string.
func CMYKFromHex(hex string) (CMYK, error) {
	rgb, err := RGBFromHex(hex)
	if err != nil {
		return CMYK{}, err
	}
	return rgb.ToCMYK(), nil
}

// CMYKFrom converts any color model value to CMYK.
func CMYKFrom(c ColorModel) CMYK { return c.ToRGB().ToCMYK() }

// Space returns SpaceCMYK.
func (c CMYK) Space() Space { return SpaceCMYK }

func (c CMYK) alpha() uint8 { return c.Alpha }

// Values returns the channel values in canonical order (cyan, magenta,
// yellow, black).
func (c CMYK) Values() []float64 { return []float64{c.C, c.M, c.Y, c.K} }

// ValuesWithAlpha returns the channel values with transparency appended.
func (c CMYK) ValuesWithAlpha() []float64 {
	return []float64{c.C, c.M, c.Y, c.K, float64(c.Alpha)}
}

// WithAlpha returns a copy of the color with the given transparency.
func (c CMYK) WithAlpha(alpha uint8) CMYK {
	c.Alpha = alpha
	return c
}

// IsBlack reports whether the black key rounds to 100.
func (c CMYK) IsBlack() bool { return roundInt(c.K) == 100 }

// IsWhite reports whether all four channels round to 0.
func (c CMYK) IsWhite() bool {
	return roundInt(c.C) == 0 && roundInt(c.M) == 0 && roundInt(c.Y) == 0 && roundInt(c.K) == 0
}

// IsMonochromatic reports whether the color sits on the gray axis, i.e.
// cyan, magenta, and yellow all round to 0.
func (c CMYK) IsMonochromatic() bool {
	return roundInt(c.C) == 0 && roundInt(c.M) == 0 && roundInt(c.Y) == 0
}

// Equal reports rounding-tolerant equality with another color.
func (c CMYK) Equal(other ColorModel) bool { return equalModels(c, other) }

// Hash returns a hash consistent with Equal.
func (c CMYK) Hash() uint64 { return hashModel(c) }

// String returns a diagnostic representation of the color.
func (c CMYK) String() string { return formatModel(c) }

// ToRGB converts the color to the RGB space.
func (c CMYK) ToRGB() RGB { return cmykToRGB(c) }

// ToCMYK returns the color itself.
func (c CMYK) ToCMYK() CMYK { return c }

// ToHSB converts the color to the HSB space via RGB.
func (c CMYK) ToHSB() HSB { return c.ToRGB().ToHSB() }

// ToHSI converts the color to the HSI space via RGB.
func (c CMYK) ToHSI() HSI { return c.ToRGB().ToHSI() }

// ToHSL converts the color to the HSL space via RGB.
func (c CMYK) ToHSL() HSL { return c.ToRGB().ToHSL() }

// ToHSP converts the color to the HSP space via RGB.
func (c CMYK) ToHSP() HSP { return c.ToRGB().ToHSP() }

// ToLab converts the color to the CIELAB space via RGB and CIEXYZ.
func (c CMYK) ToLab() Lab { return c.ToRGB().ToLab() }

// ToOklab converts the color to the Oklab space via RGB and CIEXYZ.
func (c CMYK) ToOklab() Oklab { return c.ToRGB().ToOklab() }

// ToXYZ converts the color to the CIEXYZ space via RGB.
func (c CMYK) ToXYZ() XYZ { return c.ToRGB().ToXYZ() }
