package imageutil

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"

	"github.com/ironsheep/color-models/colormodel"
)

// RotateHue rotates the hue of every pixel by the given number of
// degrees, modulo 360. Transparency is preserved.
func RotateHue(img image.Image, degrees float64) *image.RGBA {
	return mapPixels(img, func(c colormodel.RGB) colormodel.RGB {
		return colormodel.RotateHue(c, degrees).(colormodel.RGB)
	})
}

// Invert replaces every pixel with its RGB complement. Transparency is
// preserved.
func Invert(img image.Image) *image.RGBA {
	return mapPixels(img, func(c colormodel.RGB) colormodel.RGB {
		return colormodel.Invert(c).(colormodel.RGB)
	})
}

// Warmer shifts every pixel's hue toward the warm arc. The amount and
// mode follow the colormodel.Warmer contract; an invalid amount reports
// the error before any pixel is touched.
func Warmer(img image.Image, amount float64, mode colormodel.AdjustMode) (*image.RGBA, error) {
	// Validate once up front rather than per pixel.
	if _, err := colormodel.Warmer(colormodel.RGB{Alpha: 255}, amount, mode); err != nil {
		return nil, err
	}
	return mapPixels(img, func(c colormodel.RGB) colormodel.RGB {
		out, _ := colormodel.Warmer(c, amount, mode)
		return out.(colormodel.RGB)
	}), nil
}

// Cooler shifts every pixel's hue toward the cool arc, with the same
// contract as Warmer.
func Cooler(img image.Image, amount float64, mode colormodel.AdjustMode) (*image.RGBA, error) {
	if _, err := colormodel.Cooler(colormodel.RGB{Alpha: 255}, amount, mode); err != nil {
		return nil, err
	}
	return mapPixels(img, func(c colormodel.RGB) colormodel.RGB {
		out, _ := colormodel.Cooler(c, amount, mode)
		return out.(colormodel.RGB)
	}), nil
}

// mapPixels lifts a colormodel RGB transformation to a whole image.
// Pixels pass through non-premultiplied form on both sides so that
// partially transparent pixels keep their color ratios.
func mapPixels(img image.Image, fn func(colormodel.RGB) colormodel.RGB) *image.RGBA {
	return adjust.Apply(img, func(c color.RGBA) color.RGBA {
		out := colormodel.ToNRGBA(fn(colormodel.FromColor(c)))
		r, g, b, a := out.RGBA()
		return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	})
}
