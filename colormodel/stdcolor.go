package colormodel

import (
	"image/color"
	"math"
)

// RGBA implements the standard library's color.Color interface: channels
// rounded to 8 bits, alpha-premultiplied, and scaled to 16 bits. This is
// the host-framework boundary; conversion goes through the validated RGB
// projection, so callers of the standard interface never observe
// out-of-range channel values.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: uint8(clamp(math.Round(c.R), 0, 255)),
		G: uint8(clamp(math.Round(c.G), 0, 255)),
		B: uint8(clamp(math.Round(c.B), 0, 255)),
		A: c.Alpha,
	}.RGBA()
}

// FromColor converts any standard library color into an RGB value,
// un-premultiplying alpha and narrowing 16-bit channels to the 0-255
// scale.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{float64(n.R), float64(n.G), float64(n.B), n.A}
}

// ToNRGBA converts any color model value to a standard library NRGBA,
// projecting through RGB.
func ToNRGBA(c ColorModel) color.NRGBA {
	rgb := c.ToRGB()
	return color.NRGBA{
		R: uint8(clamp(math.Round(rgb.R), 0, 255)),
		G: uint8(clamp(math.Round(rgb.G), 0, 255)),
		B: uint8(clamp(math.Round(rgb.B), 0, 255)),
		A: rgb.Alpha,
	}
}
