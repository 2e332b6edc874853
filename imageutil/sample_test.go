package imageutil

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/color-models/colormodel"
)

// createInMemoryImage creates a uniformly colored in-memory test image.
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant.
func createPatternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.NRGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.NRGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.NRGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.NRGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.NRGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	want := colormodel.RGB{R: 255, G: 128, B: 64, Alpha: 255}
	if !result.RGB.Equal(want) {
		t.Errorf("RGB: got %v, want %v", result.RGB, want)
	}
	if !result.HSL.Equal(want.ToHSL()) {
		t.Errorf("HSL: got %v, want %v", result.HSL, want.ToHSL())
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.NRGBA
		wantHex string
		wantHue float64
	}{
		{"pure red", color.NRGBA{255, 0, 0, 255}, "#FF0000", 0},
		{"pure green", color.NRGBA{0, 255, 0, 255}, "#00FF00", 120},
		{"pure blue", color.NRGBA{0, 0, 255, 255}, "#0000FF", 240},
		{"white", color.NRGBA{255, 255, 255, 255}, "#FFFFFF", 0},
		{"black", color.NRGBA{0, 0, 0, 255}, "#000000", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL.H != tt.wantHue {
				t.Errorf("Hue: got %v, want %v", result.HSL.H, tt.wantHue)
			}
		})
	}
}

func TestSampleColor_PreservesAlpha(t *testing.T) {
	img := createInMemoryImage(4, 4, color.NRGBA{200, 100, 50, 128})
	result, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if result.RGB.Alpha != 128 {
		t.Errorf("alpha: got %d, want 128", result.RGB.Alpha)
	}
	if result.Hex != "#C86432" {
		t.Errorf("Hex should exclude alpha: got %s, want #C86432", result.Hex)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(10, 10, color.NRGBA{0, 0, 0, 255})
	cases := [][2]int{{-1, 5}, {5, -1}, {10, 5}, {5, 10}}
	for _, c := range cases {
		if _, err := SampleColor(img, c[0], c[1]); !errors.Is(err, colormodel.ErrInvalidBounds) {
			t.Errorf("SampleColor(%d,%d): got %v, want ErrInvalidBounds", c[0], c[1], err)
		}
	}
}

func TestSampleColors(t *testing.T) {
	img := createPatternImage(100, 100)
	points := []LabeledPoint{
		{X: 10, Y: 10, Label: "top_left"},
		{X: 90, Y: 10, Label: "top_right"},
		{X: 10, Y: 90},
	}

	samples, err := SampleColors(img, points)
	if err != nil {
		t.Fatalf("SampleColors failed: %v", err)
	}
	if len(samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(samples))
	}
	if samples[0].Label != "top_left" || samples[0].Color.Hex != "#FF0000" {
		t.Errorf("sample 0: %+v", samples[0])
	}
	if samples[1].Label != "top_right" || samples[1].Color.Hex != "#00FF00" {
		t.Errorf("sample 1: %+v", samples[1])
	}
	if samples[2].Label != "" || samples[2].Color.Hex != "#0000FF" {
		t.Errorf("sample 2: %+v", samples[2])
	}
}

func TestSampleColors_FailsAtomically(t *testing.T) {
	img := createPatternImage(10, 10)
	points := []LabeledPoint{
		{X: 5, Y: 5},
		{X: 100, Y: 5},
	}
	samples, err := SampleColors(img, points)
	if err == nil {
		t.Fatal("expected error for out-of-bounds point")
	}
	if samples != nil {
		t.Errorf("expected no partial results, got %v", samples)
	}
}
