package imageutil

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-models/colormodel"
)

// quantStep groups colors whose 8-bit components agree within 16 units,
// so near-identical shades count as one palette entry.
const quantStep = 16

// maxExactPixels is the pixel count above which DominantColors downscales
// the image before counting. Frequency ranking is stable under
// downscaling; per-pixel iteration over multi-megapixel images is not
// worth the exactness.
const maxExactPixels = 512 * 512

// PaletteEntry is a quantized color and its share of the analyzed pixels.
type PaletteEntry struct {
	Hex        string         `json:"hex"`
	Percentage float64        `json:"percentage"`
	RGB        colormodel.RGB `json:"rgb"`
}

// Palette holds the most frequent colors of an image, most common first.
type Palette struct {
	Colors []PaletteEntry `json:"colors"`
}

// DominantColors extracts the count most common colors from an image or
// region, useful for palette extraction or understanding an image's color
// scheme.
//
// region restricts the analysis to a sub-rectangle of the image; nil
// analyzes the whole image. count must be positive and the region (when
// given) non-empty and inside the image bounds; defects report an error
// wrapping colormodel.ErrInvalidBounds.
//
// # Color Quantization
//
// To group similar colors, each 8-bit component is quantized down to a
// multiple of 16, so #F0F0F0 and #FAFAFA count as the same entry. If the
// image has fewer distinct quantized colors than count, fewer entries are
// returned.
//
// # Performance
//
// Whole-image analysis of images larger than about a quarter megapixel
// operates on a downscaled copy; percentages are then estimates of the
// originals, with the ranking preserved.
func DominantColors(img image.Image, count int, region *image.Rectangle) (*Palette, error) {
	if count < 1 {
		return nil, fmt.Errorf("color count must be positive, got %d: %w",
			count, colormodel.ErrInvalidBounds)
	}

	bounds := img.Bounds()
	if region != nil {
		if region.Empty() || !region.In(bounds) {
			return nil, fmt.Errorf("region %v empty or outside image bounds %v: %w",
				*region, bounds, colormodel.ErrInvalidBounds)
		}
		bounds = *region
	} else if bounds.Dx()*bounds.Dy() > maxExactPixels {
		// Shrink the longer side to 512, preserving the aspect ratio.
		if bounds.Dx() >= bounds.Dy() {
			img = imaging.Resize(img, 512, 0, imaging.NearestNeighbor)
		} else {
			img = imaging.Resize(img, 0, 512, imaging.NearestNeighbor)
		}
		bounds = img.Bounds()
	}

	counts := make(map[colormodel.RGB]int)
	totalPixels := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			key := colormodel.RGB{
				R:     float64(uint8(r>>8) / quantStep * quantStep),
				G:     float64(uint8(g>>8) / quantStep * quantStep),
				B:     float64(uint8(b>>8) / quantStep * quantStep),
				Alpha: 255,
			}
			counts[key]++
			totalPixels++
		}
	}

	colors := make([]PaletteEntry, 0, len(counts))
	for rgb, n := range counts {
		colors = append(colors, PaletteEntry{
			Hex:        rgb.Hex(),
			Percentage: float64(n) / float64(totalPixels) * 100,
			RGB:        rgb,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex // stable order for ties
	})

	if len(colors) > count {
		colors = colors[:count]
	}
	return &Palette{Colors: colors}, nil
}
