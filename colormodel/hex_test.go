package colormodel

import (
	"errors"
	"testing"
)

func TestRGBFromHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#ff0000", RGB{255, 0, 0, 255}},
		{"ff0000", RGB{255, 0, 0, 255}},
		{"#FFA500", RGB{255, 165, 0, 255}},
		{"#fff", RGB{255, 255, 255, 255}},
		{"0a0", RGB{0, 170, 0, 255}},
		{"#000000", RGB{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := RGBFromHex(tt.in)
			if err != nil {
				t.Fatalf("RGBFromHex(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("RGBFromHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBFromHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#ff00", "#ff00000", "gg0000", "#12345g"} {
		if _, err := RGBFromHex(in); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("RGBFromHex(%q): got %v, want ErrInvalidShape", in, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#FF0000", "#00AA12", "#012345", "#FFFFFF"} {
		c, err := RGBFromHex(s)
		if err != nil {
			t.Fatalf("RGBFromHex(%q): %v", s, err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("Hex() = %q, want %q", got, s)
		}
	}
}

func TestHexRoundsFractionalChannels(t *testing.T) {
	if got := (RGB{254.6, 0.4, 127.5, 255}).Hex(); got != "#FF0080" {
		t.Errorf("Hex() = %q, want #FF0080", got)
	}
}

func TestSpaceFromHex(t *testing.T) {
	hsl, err := HSLFromHex("#ff0000")
	if err != nil {
		t.Fatalf("HSLFromHex: %v", err)
	}
	if !hsl.Equal(HSL{0, 100, 50, 255}) {
		t.Errorf("HSLFromHex(red) = %v", hsl)
	}

	cmyk, err := CMYKFromHex("#000000")
	if err != nil {
		t.Fatalf("CMYKFromHex: %v", err)
	}
	if !cmyk.Equal(CMYK{0, 0, 0, 100, 255}) {
		t.Errorf("CMYKFromHex(black) = %v", cmyk)
	}

	if _, err := LabFromHex("nope"); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("LabFromHex invalid: got %v, want ErrInvalidShape", err)
	}
}
