package colormodel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// D65 reference white tristimulus values on the 0-100 scale.
const (
	refWhiteX = 95.047
	refWhiteY = 100.0
	refWhiteZ = 108.883
)

// CIELAB nonlinearity constants.
const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// HSP luma weights for red, green, and blue.
const (
	hspPr = 0.299
	hspPg = 0.587
	hspPb = 0.114
)

// Fixed 3x3 transform matrices. The RGB matrices are the sRGB/D65 primary
// matrices; the Oklab matrices are the XYZ-to-LMS cone-response matrix,
// the LMS'-to-Lab mixing matrix, and their inverses.
var (
	rgbToXYZMat = mat.NewDense(3, 3, []float64{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	})
	xyzToRGBMat = mat.NewDense(3, 3, []float64{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	})
	xyzToLMSMat = mat.NewDense(3, 3, []float64{
		0.8189330101, 0.3618667424, -0.1288597137,
		0.0329845436, 0.9293118715, 0.0361456387,
		0.0482003018, 0.2643662691, 0.6338517070,
	})
	lmsToXYZMat = mat.NewDense(3, 3, []float64{
		1.2270138511, -0.5577999807, 0.2812561490,
		-0.0405801784, 1.1122568696, -0.0716766787,
		-0.0763812845, -0.4214819784, 1.5861632204,
	})
	lmsToOklabMat = mat.NewDense(3, 3, []float64{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	})
	oklabToLMSMat = mat.NewDense(3, 3, []float64{
		1, 0.3963377774, 0.2158037573,
		1, -0.1055613458, -0.0638541728,
		1, -0.0894841775, -1.2914855480,
	})
)

// mulVec3 applies a 3x3 matrix to a column vector.
func mulVec3(m *mat.Dense, a, b, c float64) (float64, float64, float64) {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{a, b, c}))
	return out.AtVec(0), out.AtVec(1), out.AtVec(2)
}

// Convert produces the representation of a color in the given space,
// preserving the transparency channel. Converting a color to its own space
// is the identity. RGB is the hub for the hue-based and subtractive
// spaces; CIEXYZ is the hub for CIELAB and Oklab.
//
// Conversion is total: it never fails for a color whose channels satisfy
// the source space's invariants. Out-of-gamut values are clamped only on
// the final projection into RGB.
func Convert(c ColorModel, to Space) ColorModel {
	if c.Space() == to {
		return c
	}
	switch to {
	case SpaceRGB:
		return c.ToRGB()
	case SpaceCMYK:
		return rgbToCMYK(c.ToRGB())
	case SpaceHSB:
		return rgbToHSB(c.ToRGB())
	case SpaceHSI:
		return rgbToHSI(c.ToRGB())
	case SpaceHSL:
		return c.ToHSL()
	case SpaceHSP:
		return rgbToHSP(c.ToRGB())
	case SpaceXYZ:
		return toXYZ(c)
	case SpaceLab:
		return xyzToLab(toXYZ(c))
	case SpaceOklab:
		return xyzToOklab(toXYZ(c))
	}
	panic("colormodel: unknown space")
}

// toXYZ routes a color into the CIEXYZ hub without passing through RGB
// when the source already lives on the XYZ side of the graph.
func toXYZ(c ColorModel) XYZ {
	switch v := c.(type) {
	case XYZ:
		return v
	case Lab:
		return labToXYZ(v)
	case Oklab:
		return oklabToXYZ(v)
	}
	return rgbToXYZ(c.ToRGB())
}

// srgbToLinear applies the sRGB inverse transfer function to a channel
// value in [0, 1]: linear below the 0.04045 threshold, power law above.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB applies the sRGB forward transfer function. Negative
// (out-of-gamut) input stays on the linear segment so that the caller's
// clamp sees a finite value rather than NaN.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

func rgbToXYZ(c RGB) XYZ {
	rl := srgbToLinear(c.R / 255)
	gl := srgbToLinear(c.G / 255)
	bl := srgbToLinear(c.B / 255)
	x, y, z := mulVec3(rgbToXYZMat, rl, gl, bl)
	return XYZ{x * 100, y * 100, z * 100, c.Alpha}
}

func xyzToRGB(c XYZ) RGB {
	rl, gl, bl := mulVec3(xyzToRGBMat, c.X/100, c.Y/100, c.Z/100)
	return RGB{
		R:     clamp(linearToSRGB(rl)*255, 0, 255),
		G:     clamp(linearToSRGB(gl)*255, 0, 255),
		B:     clamp(linearToSRGB(bl)*255, 0, 255),
		Alpha: c.Alpha,
	}
}

// labCompress is the CIE nonlinear compounding function f(t): cube root
// above the epsilon threshold, a slope-matched linear segment below it.
func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labUncompress(ft float64) float64 {
	ft3 := ft * ft * ft
	if ft3 > labEpsilon {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

func xyzToLab(c XYZ) Lab {
	fx := labCompress(c.X / refWhiteX)
	fy := labCompress(c.Y / refWhiteY)
	fz := labCompress(c.Z / refWhiteZ)
	return Lab{
		L:     116*fy - 16,
		A:     500 * (fx - fy),
		B:     200 * (fy - fz),
		Alpha: c.Alpha,
	}
}

func labToXYZ(c Lab) XYZ {
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200
	return XYZ{
		X:     labUncompress(fx) * refWhiteX,
		Y:     labUncompress(fy) * refWhiteY,
		Z:     labUncompress(fz) * refWhiteZ,
		Alpha: c.Alpha,
	}
}

func xyzToOklab(c XYZ) Oklab {
	l, m, s := mulVec3(xyzToLMSMat, c.X/100, c.Y/100, c.Z/100)
	lp, mp, sp := math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)
	ol, oa, ob := mulVec3(lmsToOklabMat, lp, mp, sp)
	return Oklab{ol * 100, oa * 100, ob * 100, c.Alpha}
}

func oklabToXYZ(c Oklab) XYZ {
	lp, mp, sp := mulVec3(oklabToLMSMat, c.L/100, c.A/100, c.B/100)
	l, m, s := lp*lp*lp, mp*mp*mp, sp*sp*sp
	x, y, z := mulVec3(lmsToXYZMat, l, m, s)
	return XYZ{x * 100, y * 100, z * 100, c.Alpha}
}

func rgbToCMYK(c RGB) CMYK {
	r, g, b := c.R/255, c.G/255, c.B/255
	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return CMYK{0, 0, 0, 100, c.Alpha}
	}
	return CMYK{
		C:     (1 - r - k) / (1 - k) * 100,
		M:     (1 - g - k) / (1 - k) * 100,
		Y:     (1 - b - k) / (1 - k) * 100,
		K:     k * 100,
		Alpha: c.Alpha,
	}
}

func cmykToRGB(c CMYK) RGB {
	return RGB{
		R:     255 * (1 - c.C/100) * (1 - c.K/100),
		G:     255 * (1 - c.M/100) * (1 - c.K/100),
		B:     255 * (1 - c.Y/100) * (1 - c.K/100),
		Alpha: c.Alpha,
	}
}

// rgbHue computes the hexagonal hue shared by the HSB, HSL, HSI, and HSP
// conversions, along with the max and min of the unit-scaled channels.
// Achromatic input yields hue 0.
func rgbHue(r, g, b float64) (hue, max, min float64) {
	max = math.Max(r, math.Max(g, b))
	min = math.Min(r, math.Min(g, b))
	if max == min {
		return 0, max, min
	}
	d := max - min
	switch max {
	case r:
		hue = math.Mod((g-b)/d, 6)
	case g:
		hue = (b-r)/d + 2
	default:
		hue = (r-g)/d + 4
	}
	hue *= 60
	if hue < 0 {
		hue += 360
	}
	return hue, max, min
}

func rgbToHSB(c RGB) HSB {
	h, max, min := rgbHue(c.R/255, c.G/255, c.B/255)
	s := 0.0
	if max > 0 {
		s = (max - min) / max
	}
	return HSB{h, s * 100, max * 100, c.Alpha}
}

func hsbToRGB(c HSB) RGB {
	h := normDeg(c.H) / 60
	s := c.S / 100
	v := c.B / 100
	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - chroma
	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = chroma, x, 0
	case h < 2:
		r, g, b = x, chroma, 0
	case h < 3:
		r, g, b = 0, chroma, x
	case h < 4:
		r, g, b = 0, x, chroma
	case h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB{(r + m) * 255, (g + m) * 255, (b + m) * 255, c.Alpha}
}

func rgbToHSL(c RGB) HSL {
	h, max, min := rgbHue(c.R/255, c.G/255, c.B/255)
	l := (max + min) / 2
	s := 0.0
	if max != min {
		s = (max - min) / (1 - math.Abs(2*l-1))
	}
	return HSL{h, s * 100, l * 100, c.Alpha}
}

func hslToRGB(c HSL) RGB {
	h := normDeg(c.H) / 60
	s := c.S / 100
	l := c.L / 100
	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := l - chroma/2
	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = chroma, x, 0
	case h < 2:
		r, g, b = x, chroma, 0
	case h < 3:
		r, g, b = 0, chroma, x
	case h < 4:
		r, g, b = 0, x, chroma
	case h < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB{(r + m) * 255, (g + m) * 255, (b + m) * 255, c.Alpha}
}

func rgbToHSI(c RGB) HSI {
	r, g, b := c.R/255, c.G/255, c.B/255
	h, _, min := rgbHue(r, g, b)
	i := (r + g + b) / 3
	s := 0.0
	if i > 0 {
		s = 1 - min/i
	}
	return HSI{h, s * 100, i * 100, c.Alpha}
}

// hsiToRGB inverts the hexagonal HSI conversion exactly. Within a hue
// sector the mid channel sits at min + t*(max-min) with t the fractional
// sector position (mirrored in odd sectors), and the sector mean identity
// max*(1+t) + min*(2-t) = 3*intensity recovers max from min = i*(1-s).
func hsiToRGB(c HSI) RGB {
	i := c.I / 100
	s := clamp(c.S/100, 0, 1)
	if i == 0 {
		return RGB{0, 0, 0, c.Alpha}
	}
	if s == 0 {
		v := clamp(i*255, 0, 255)
		return RGB{v, v, v, c.Alpha}
	}
	h := normDeg(c.H) / 60
	sector := int(h) % 6
	f := h - math.Floor(h)
	t := f
	if sector%2 == 1 {
		t = 1 - f
	}
	min := i * (1 - s)
	max := (3*i - min*(2-t)) / (1 + t)
	mid := min + t*(max-min)

	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = max, mid, min
	case 1:
		r, g, b = mid, max, min
	case 2:
		r, g, b = min, max, mid
	case 3:
		r, g, b = min, mid, max
	case 4:
		r, g, b = mid, min, max
	default:
		r, g, b = max, min, mid
	}
	return RGB{
		R:     clamp(r*255, 0, 255),
		G:     clamp(g*255, 0, 255),
		B:     clamp(b*255, 0, 255),
		Alpha: c.Alpha,
	}
}

func rgbToHSP(c RGB) HSP {
	r, g, b := c.R/255, c.G/255, c.B/255
	p := math.Sqrt(hspPr*r*r + hspPg*g*g + hspPb*b*b)
	if r == g && g == b {
		return HSP{0, 0, p * 100, c.Alpha}
	}
	var h, s float64
	switch {
	case r >= g && r >= b:
		if b >= g {
			h = 1 - (b-g)/(r-g)/6
			s = 1 - g/r
		} else {
			h = (g - b) / (r - b) / 6
			s = 1 - b/r
		}
	case g >= r && g >= b:
		if r >= b {
			h = 2.0/6 - (r-b)/(g-b)/6
			s = 1 - b/g
		} else {
			h = 2.0/6 + (b-r)/(g-r)/6
			s = 1 - r/g
		}
	default:
		if g >= r {
			h = 4.0/6 - (g-r)/(b-r)/6
			s = 1 - r/b
		} else {
			h = 4.0/6 + (r-g)/(b-g)/6
			s = 1 - g/b
		}
	}
	return HSP{normDeg(h * 360), s * 100, p * 100, c.Alpha}
}

// hspToRGB solves, per hue sextant, for the channel magnitudes whose
// weighted quadratic sum reproduces the perceived brightness exactly.
// The minOverMax ratio encodes saturation; the fully saturated case
// (min channel 0) needs its own branch.
func hspToRGB(c HSP) RGB {
	h := normDeg(c.H) / 360
	s := clamp(c.S/100, 0, 1)
	p := c.P / 100
	minOverMax := 1 - s
	var r, g, b float64

	if minOverMax > 0 {
		var part float64
		switch {
		case h < 1.0/6: // R > G > B
			hf := 6 * h
			part = 1 + hf*(1/minOverMax-1)
			b = p / math.Sqrt(hspPr/(minOverMax*minOverMax)+hspPg*part*part+hspPb)
			r = b / minOverMax
			g = b + hf*(r-b)
		case h < 2.0/6: // G > R > B
			hf := 6 * (2.0/6 - h)
			part = 1 + hf*(1/minOverMax-1)
			b = p / math.Sqrt(hspPg/(minOverMax*minOverMax)+hspPr*part*part+hspPb)
			g = b / minOverMax
			r = b + hf*(g-b)
		case h < 3.0/6: // G > B > R
			hf := 6 * (h - 2.0/6)
			part = 1 + hf*(1/minOverMax-1)
			r = p / math.Sqrt(hspPg/(minOverMax*minOverMax)+hspPb*part*part+hspPr)
			g = r / minOverMax
			b = r + hf*(g-r)
		case h < 4.0/6: // B > G > R
			hf := 6 * (4.0/6 - h)
			part = 1 + hf*(1/minOverMax-1)
			r = p / math.Sqrt(hspPb/(minOverMax*minOverMax)+hspPg*part*part+hspPr)
			b = r / minOverMax
			g = r + hf*(b-r)
		case h < 5.0/6: // B > R > G
			hf := 6 * (h - 4.0/6)
			part = 1 + hf*(1/minOverMax-1)
			g = p / math.Sqrt(hspPb/(minOverMax*minOverMax)+hspPr*part*part+hspPg)
			b = g / minOverMax
			r = g + hf*(b-g)
		default: // R > B > G
			hf := 6 * (1 - h)
			part = 1 + hf*(1/minOverMax-1)
			g = p / math.Sqrt(hspPr/(minOverMax*minOverMax)+hspPb*part*part+hspPg)
			r = g / minOverMax
			b = g + hf*(r-g)
		}
	} else {
		switch {
		case h < 1.0/6: // R > G, B = 0
			hf := 6 * h
			r = math.Sqrt(p * p / (hspPr + hspPg*hf*hf))
			g = r * hf
		case h < 2.0/6: // G > R, B = 0
			hf := 6 * (2.0/6 - h)
			g = math.Sqrt(p * p / (hspPg + hspPr*hf*hf))
			r = g * hf
		case h < 3.0/6: // G > B, R = 0
			hf := 6 * (h - 2.0/6)
			g = math.Sqrt(p * p / (hspPg + hspPb*hf*hf))
			b = g * hf
		case h < 4.0/6: // B > G, R = 0
			hf := 6 * (4.0/6 - h)
			b = math.Sqrt(p * p / (hspPb + hspPg*hf*hf))
			g = b * hf
		case h < 5.0/6: // B > R, G = 0
			hf := 6 * (h - 4.0/6)
			b = math.Sqrt(p * p / (hspPb + hspPr*hf*hf))
			r = b * hf
		default: // R > B, G = 0
			hf := 6 * (1 - h)
			r = math.Sqrt(p * p / (hspPr + hspPb*hf*hf))
			b = r * hf
		}
	}
	return RGB{
		R:     clamp(r*255, 0, 255),
		G:     clamp(g*255, 0, 255),
		B:     clamp(b*255, 0, 255),
		Alpha: c.Alpha,
	}
}
