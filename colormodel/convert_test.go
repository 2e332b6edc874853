package colormodel

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %v, want %v (tolerance %v)", name, got, want, tol)
	}
}

// approxHue compares two hues on the circle.
func approxHue(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(circularDelta(got, want)) > tol {
		t.Errorf("%s: got %v, want %v (circular tolerance %v)", name, got, want, tol)
	}
}

func mustRGB(t *testing.T, r, g, b float64) RGB {
	t.Helper()
	c, err := NewRGB(r, g, b, 255)
	if err != nil {
		t.Fatalf("NewRGB(%v,%v,%v): %v", r, g, b, err)
	}
	return c
}

func TestRGBToLab_PureRed(t *testing.T) {
	lab := mustRGB(t, 255, 0, 0).ToLab()

	approx(t, "L", lab.L, 53.2, 1)
	approx(t, "a", lab.A, 80.1, 1)
	approx(t, "b", lab.B, 67.2, 1)

	back := lab.ToRGB()
	if !back.Equal(mustRGB(t, 255, 0, 0)) {
		t.Errorf("Lab->RGB: got %v, want rgb(255, 0, 0)", back)
	}
}

func TestRGBToCMYK_Black(t *testing.T) {
	cmyk := mustRGB(t, 0, 0, 0).ToCMYK()
	want, _ := NewCMYK(0, 0, 0, 100, 255)
	if !cmyk.Equal(want) {
		t.Errorf("RGB(0,0,0) -> CMYK: got %v, want cmyk(0, 0, 0, 100)", cmyk)
	}

	back := want.ToRGB()
	if !back.Equal(mustRGB(t, 0, 0, 0)) {
		t.Errorf("CMYK(0,0,0,100) -> RGB: got %v, want rgb(0, 0, 0)", back)
	}
}

func TestKnownConversions(t *testing.T) {
	tests := []struct {
		name    string
		rgb     RGB
		hsb     [3]float64
		hsl     [3]float64
		cmyk    [4]float64
		xyz     [3]float64
		lab     [3]float64
	}{
		{
			name: "red",
			rgb:  RGB{255, 0, 0, 255},
			hsb:  [3]float64{0, 100, 100},
			hsl:  [3]float64{0, 100, 50},
			cmyk: [4]float64{0, 100, 100, 0},
			xyz:  [3]float64{41.25, 21.27, 1.93},
			lab:  [3]float64{53.24, 80.09, 67.20},
		},
		{
			name: "green",
			rgb:  RGB{0, 255, 0, 255},
			hsb:  [3]float64{120, 100, 100},
			hsl:  [3]float64{120, 100, 50},
			cmyk: [4]float64{100, 0, 100, 0},
			xyz:  [3]float64{35.76, 71.52, 11.92},
			lab:  [3]float64{87.74, -86.18, 83.18},
		},
		{
			name: "blue",
			rgb:  RGB{0, 0, 255, 255},
			hsb:  [3]float64{240, 100, 100},
			hsl:  [3]float64{240, 100, 50},
			cmyk: [4]float64{100, 100, 0, 0},
			xyz:  [3]float64{18.04, 7.22, 95.03},
			lab:  [3]float64{32.30, 79.20, -107.86},
		},
		{
			name: "white",
			rgb:  RGB{255, 255, 255, 255},
			hsb:  [3]float64{0, 0, 100},
			hsl:  [3]float64{0, 0, 100},
			cmyk: [4]float64{0, 0, 0, 0},
			xyz:  [3]float64{95.05, 100, 108.88},
			lab:  [3]float64{100, 0, 0},
		},
		{
			name: "orange",
			rgb:  RGB{255, 165, 0, 255},
			hsb:  [3]float64{38.8, 100, 100},
			hsl:  [3]float64{38.8, 100, 50},
			cmyk: [4]float64{0, 35.3, 100, 0},
			xyz:  [3]float64{54.70, 48.17, 6.42},
			lab:  [3]float64{74.93, 23.93, 78.95},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hsb := tt.rgb.ToHSB()
			approxHue(t, "hsb hue", hsb.H, tt.hsb[0], 0.2)
			approx(t, "hsb saturation", hsb.S, tt.hsb[1], 0.2)
			approx(t, "hsb brightness", hsb.B, tt.hsb[2], 0.2)

			hsl := tt.rgb.ToHSL()
			approxHue(t, "hsl hue", hsl.H, tt.hsl[0], 0.2)
			approx(t, "hsl saturation", hsl.S, tt.hsl[1], 0.2)
			approx(t, "hsl lightness", hsl.L, tt.hsl[2], 0.2)

			cmyk := tt.rgb.ToCMYK()
			approx(t, "cyan", cmyk.C, tt.cmyk[0], 0.2)
			approx(t, "magenta", cmyk.M, tt.cmyk[1], 0.2)
			approx(t, "yellow", cmyk.Y, tt.cmyk[2], 0.2)
			approx(t, "black", cmyk.K, tt.cmyk[3], 0.2)

			xyz := tt.rgb.ToXYZ()
			approx(t, "x", xyz.X, tt.xyz[0], 0.2)
			approx(t, "y", xyz.Y, tt.xyz[1], 0.2)
			approx(t, "z", xyz.Z, tt.xyz[2], 0.2)

			lab := tt.rgb.ToLab()
			approx(t, "L", lab.L, tt.lab[0], 0.2)
			approx(t, "a", lab.A, tt.lab[1], 0.2)
			approx(t, "b", lab.B, tt.lab[2], 0.2)
		})
	}
}

func TestRGBToOklab_KnownColors(t *testing.T) {
	// Reference values from the Oklab definition, scaled by 100.
	tests := []struct {
		name    string
		rgb     RGB
		l, a, b float64
	}{
		{"white", RGB{255, 255, 255, 255}, 100, 0, 0},
		{"red", RGB{255, 0, 0, 255}, 62.80, 22.49, 12.58},
		{"green", RGB{0, 255, 0, 255}, 86.64, -23.39, 17.95},
		{"blue", RGB{0, 0, 255, 255}, 45.20, -3.25, -31.15},
		{"black", RGB{0, 0, 0, 255}, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := tt.rgb.ToOklab()
			approx(t, "L", ok.L, tt.l, 0.5)
			approx(t, "a", ok.A, tt.a, 0.5)
			approx(t, "b", ok.B, tt.b, 0.5)

			back := ok.ToRGB()
			if !back.Equal(tt.rgb) {
				t.Errorf("Oklab->RGB: got %v, want %v", back, tt.rgb)
			}
		})
	}
}

func TestHSPPreservesPerceivedBrightness(t *testing.T) {
	seeds := []RGB{
		{255, 0, 0, 255},
		{12, 240, 100, 255},
		{89, 144, 233, 255},
		{200, 200, 200, 255},
		{1, 2, 3, 255},
		{250, 128, 7, 255},
	}
	for _, rgb := range seeds {
		hsp := rgb.ToHSP()
		back := hsp.ToRGB()
		if !back.Equal(rgb) {
			t.Errorf("HSP round trip of %v: got %v", rgb, back)
		}
		if got := back.ToHSP().P; math.Abs(got-hsp.P) > 1e-6 {
			t.Errorf("perceived brightness of %v drifted: %v -> %v", rgb, hsp.P, got)
		}
	}
}

var allSpaces = []Space{
	SpaceRGB, SpaceCMYK, SpaceHSB, SpaceHSI, SpaceHSL,
	SpaceHSP, SpaceLab, SpaceOklab, SpaceXYZ,
}

func TestRoundTripAllPairs(t *testing.T) {
	seeds := []RGB{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 255, 255},
		{0, 0, 0, 255},
		{163, 42, 7, 255},
		{89, 144, 233, 128},
		{12, 240, 100, 255},
		{200, 200, 200, 17},
		{1, 2, 3, 255},
	}
	for _, seed := range seeds {
		for _, from := range allSpaces {
			c := Convert(seed, from)
			for _, to := range allSpaces {
				rt := Convert(Convert(c, to), from)
				if !c.Equal(rt) {
					t.Errorf("seed %v: %s -> %s -> %s: got %v, want %v",
						seed, from, to, from, rt, c)
				}
			}
		}
	}
}

func TestRoundTrip_GamutExceeding(t *testing.T) {
	extremes := []ColorModel{
		Lab{100, 127, -128, 255},
		Lab{100, -128, 127, 255},
		Lab{0, 127, 127, 255},
		Lab{50, -128, -128, 255},
		Oklab{100, 100, -100, 255},
		Oklab{100, -100, 100, 255},
		Oklab{5, 100, 100, 255},
	}
	for _, c := range extremes {
		want := RGBFrom(c)
		for _, to := range allSpaces {
			rt := Convert(Convert(c, to), c.Space())
			got := RGBFrom(rt)
			for i, wv := range want.Values() {
				if math.Abs(got.Values()[i]-wv) > 1 {
					t.Errorf("%v via %s: RGB projection drifted: got %v, want %v", c, to, got, want)
					break
				}
			}
		}
	}
}

func TestConvertIdentity(t *testing.T) {
	for _, s := range allSpaces {
		c := Convert(RGB{163, 42, 7, 200}, s)
		if got := Convert(c, s); got != c {
			t.Errorf("%s: identity conversion changed the value: %v -> %v", s, c, got)
		}
	}
}

func TestConvertPreservesAlpha(t *testing.T) {
	seed := RGB{89, 144, 233, 42}
	for _, from := range allSpaces {
		c := Convert(seed, from)
		for _, to := range allSpaces {
			if got := Convert(c, to); got.alpha() != 42 {
				t.Errorf("%s -> %s: alpha not preserved: got %d", from, to, got.alpha())
			}
		}
	}
}

// TestAgainstColorful cross-checks the conversion engine against
// go-colorful as an independent implementation.
func TestAgainstColorful(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				rgb := RGB{float64(r), float64(g), float64(b), 255}
				ref := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

				hsb := rgb.ToHSB()
				h, s, v := ref.Hsv()
				approxHue(t, "hsv hue", hsb.H, h, 0.01)
				approx(t, "hsv saturation", hsb.S, s*100, 0.01)
				approx(t, "hsv value", hsb.B, v*100, 0.01)

				hsl := rgb.ToHSL()
				h, s, l := ref.Hsl()
				approxHue(t, "hsl hue", hsl.H, h, 0.01)
				approx(t, "hsl saturation", hsl.S, s*100, 0.01)
				approx(t, "hsl lightness", hsl.L, l*100, 0.01)

				xyz := rgb.ToXYZ()
				x, y, z := ref.Xyz()
				approx(t, "x", xyz.X, x*100, 0.5)
				approx(t, "y", xyz.Y, y*100, 0.5)
				approx(t, "z", xyz.Z, z*100, 0.5)

				lab := rgb.ToLab()
				cl, ca, cb := ref.Lab()
				approx(t, "lab L", lab.L, cl*100, 0.5)
				approx(t, "lab a", lab.A, ca*100, 0.5)
				approx(t, "lab b", lab.B, cb*100, 0.5)
			}
		}
	}
}

func TestHSIRoundTripExact(t *testing.T) {
	seeds := []RGB{
		{255, 0, 0, 255},
		{10, 200, 30, 255},
		{128, 128, 128, 255},
		{240, 10, 250, 255},
		{0, 64, 64, 255},
	}
	for _, rgb := range seeds {
		hsi := rgb.ToHSI()
		if back := hsi.ToRGB(); !back.Equal(rgb) {
			t.Errorf("HSI round trip of %v: got %v (hsi %v)", rgb, back, hsi)
		}
	}
}
