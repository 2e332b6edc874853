package colormodel

import (
	"fmt"
	"strings"
)

// RGBFromHex parses a hexadecimal RGB string into an opaque RGB color.
//
// Accepted forms are 3 or 6 hex digits with an optional leading '#',
// case-insensitive. The 3-digit form expands each digit (e.g. "F80" is
// "FF8800"). Any other length or a non-hex character reports
// ErrInvalidShape.
func RGBFromHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	var digits [6]uint8
	switch len(s) {
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return RGB{}, fmt.Errorf("hex string %q: invalid character %q: %w", hex, s[i], ErrInvalidShape)
			}
			digits[2*i], digits[2*i+1] = d, d
		}
	case 6:
		for i := 0; i < 6; i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return RGB{}, fmt.Errorf("hex string %q: invalid character %q: %w", hex, s[i], ErrInvalidShape)
			}
			digits[i] = d
		}
	default:
		return RGB{}, fmt.Errorf("hex string %q: expected 3 or 6 digits, got %d: %w", hex, len(s), ErrInvalidShape)
	}
	return RGB{
		R:     float64(digits[0]<<4 | digits[1]),
		G:     float64(digits[2]<<4 | digits[3]),
		B:     float64(digits[4]<<4 | digits[5]),
		Alpha: 255,
	}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Hex returns the color in "#RRGGBB" form, channels rounded to whole
// units. Transparency is not representable in this form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X",
		uint8(clamp(float64(roundInt(c.R)), 0, 255)),
		uint8(clamp(float64(roundInt(c.G)), 0, 255)),
		uint8(clamp(float64(roundInt(c.B)), 0, 255)))
}
