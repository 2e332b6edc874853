package imageutil

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/color-models/colormodel"
)

func TestDominantColors_TwoColorImage(t *testing.T) {
	// 100x100 image: top 75 rows red, bottom 25 rows blue.
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		c := color.NRGBA{240, 0, 0, 255}
		if y >= 75 {
			c = color.NRGBA{0, 0, 240, 255}
		}
		for x := 0; x < 100; x++ {
			img.Set(x, y, c)
		}
	}

	palette, err := DominantColors(img, 5, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(palette.Colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(palette.Colors))
	}
	if palette.Colors[0].Hex != "#F00000" {
		t.Errorf("most common: got %s, want #F00000", palette.Colors[0].Hex)
	}
	if math.Abs(palette.Colors[0].Percentage-75) > 0.01 {
		t.Errorf("red share: got %v, want 75", palette.Colors[0].Percentage)
	}
	if palette.Colors[1].Hex != "#0000F0" {
		t.Errorf("second: got %s, want #0000F0", palette.Colors[1].Hex)
	}
	if math.Abs(palette.Colors[1].Percentage-25) > 0.01 {
		t.Errorf("blue share: got %v, want 25", palette.Colors[1].Percentage)
	}
}

func TestDominantColors_QuantizationGroupsNearbyShades(t *testing.T) {
	// #F0F0F0 and #FAFAFA quantize to the same bucket.
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{0xF0, 0xF0, 0xF0, 255})
			} else {
				img.Set(x, y, color.NRGBA{0xFA, 0xFA, 0xFA, 255})
			}
		}
	}

	palette, err := DominantColors(img, 5, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(palette.Colors) != 1 {
		t.Fatalf("got %d colors, want 1 after quantization", len(palette.Colors))
	}
	if palette.Colors[0].Hex != "#F0F0F0" {
		t.Errorf("bucket: got %s, want #F0F0F0", palette.Colors[0].Hex)
	}
	if math.Abs(palette.Colors[0].Percentage-100) > 0.01 {
		t.Errorf("share: got %v, want 100", palette.Colors[0].Percentage)
	}
}

func TestDominantColors_CountTruncates(t *testing.T) {
	img := createPatternImage(40, 40) // four quadrant colors
	palette, err := DominantColors(img, 2, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(palette.Colors) != 2 {
		t.Errorf("got %d colors, want 2", len(palette.Colors))
	}
}

func TestDominantColors_Region(t *testing.T) {
	img := createPatternImage(100, 100)
	region := image.Rect(0, 0, 50, 50) // red quadrant only

	palette, err := DominantColors(img, 5, &region)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(palette.Colors) != 1 {
		t.Fatalf("got %d colors, want 1", len(palette.Colors))
	}
	if palette.Colors[0].Hex != "#F00000" {
		t.Errorf("region color: got %s, want #F00000 (quantized red)", palette.Colors[0].Hex)
	}
}

func TestDominantColors_InvalidInputs(t *testing.T) {
	img := createPatternImage(10, 10)

	if _, err := DominantColors(img, 0, nil); !errors.Is(err, colormodel.ErrInvalidBounds) {
		t.Errorf("count 0: got %v, want ErrInvalidBounds", err)
	}
	empty := image.Rect(5, 5, 5, 9)
	if _, err := DominantColors(img, 3, &empty); !errors.Is(err, colormodel.ErrInvalidBounds) {
		t.Errorf("empty region: got %v, want ErrInvalidBounds", err)
	}
	outside := image.Rect(5, 5, 20, 20)
	if _, err := DominantColors(img, 3, &outside); !errors.Is(err, colormodel.ErrInvalidBounds) {
		t.Errorf("region outside bounds: got %v, want ErrInvalidBounds", err)
	}
}

func TestDominantColors_DownscalesLargeImages(t *testing.T) {
	// Uniform color survives downscaling unchanged.
	img := createInMemoryImage(1024, 1024, color.NRGBA{32, 64, 96, 255})
	palette, err := DominantColors(img, 3, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(palette.Colors) != 1 {
		t.Fatalf("got %d colors, want 1", len(palette.Colors))
	}
	if palette.Colors[0].Hex != "#204060" {
		t.Errorf("got %s, want #204060", palette.Colors[0].Hex)
	}
}
