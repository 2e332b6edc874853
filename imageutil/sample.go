package imageutil

import (
	"fmt"
	"image"

	"github.com/ironsheep/color-models/colormodel"
)

// ColorSample contains a pixel's color in multiple representations.
//
//   - Hex: compact "#RRGGBB" string for CSS/web usage (alpha excluded)
//   - RGB: the colormodel RGB value, transparency included
//   - HSL: the same color in HSL for intuitive inspection
type ColorSample struct {
	Hex string         `json:"hex"`
	RGB colormodel.RGB `json:"rgb"`
	HSL colormodel.HSL `json:"hsl"`
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Coordinates are 0-based with origin at top-left. A coordinate outside
// the image bounds reports an error wrapping colormodel.ErrInvalidBounds.
//
// The pixel's native color is converted to 8-bit non-premultiplied
// components before entering the color models, so 16-bit and
// premultiplied source images are handled uniformly.
func SampleColor(img image.Image, x, y int) (*ColorSample, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %v: %w",
			x, y, bounds, colormodel.ErrInvalidBounds)
	}

	rgb := colormodel.FromColor(img.At(x, y))
	return &ColorSample{
		Hex: rgb.Hex(),
		RGB: rgb,
		HSL: rgb.ToHSL(),
	}, nil
}

// LabeledPoint is a pixel coordinate with an optional descriptive label,
// such as "button_background" or "header_text".
type LabeledPoint struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Label string `json:"label,omitempty"`
}

// LabeledSample combines a color sample with its location and label.
type LabeledSample struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorSample `json:"color"`
}

// SampleColors extracts colors at multiple pixel coordinates in a single
// call. Results are returned in input order. If any coordinate is outside
// the image bounds, an error is returned and no partial results are
// produced.
func SampleColors(img image.Image, points []LabeledPoint) ([]LabeledSample, error) {
	samples := make([]LabeledSample, 0, len(points))
	for _, p := range points {
		c, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		samples = append(samples, LabeledSample{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *c,
		})
	}
	return samples, nil
}
