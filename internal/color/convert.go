package color

import "math"

// SRGBToLinear decodes one sRGB-encoded channel to its linear value.
// Piecewise IEC 61966-2-1: a straight segment below 0.04045, a 2.4 power
// curve above. Both domain and range are [0, 1].
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB encodes one linear channel back to sRGB, the inverse of
// SRGBToLinear.
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// SRGBToLinearColor decodes the RGB channels of a color, leaving alpha
// untouched. Gradient stop blending runs through this before mixing.
func SRGBToLinearColor(c ColorF32) ColorF32 {
	return ColorF32{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	}
}

// LinearToSRGBColor re-encodes the RGB channels of a color, leaving alpha
// untouched.
func LinearToSRGBColor(c ColorF32) ColorF32 {
	return ColorF32{
		R: LinearToSRGB(c.R),
		G: LinearToSRGB(c.G),
		B: LinearToSRGB(c.B),
		A: c.A,
	}
}

// U8ToF32 widens pixel bytes to float channels.
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// F32ToU8 quantizes float channels to pixel bytes, clamping to [0, 1] and
// rounding to nearest.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: quantizeChannel(c.R),
		G: quantizeChannel(c.G),
		B: quantizeChannel(c.B),
		A: quantizeChannel(c.A),
	}
}

func quantizeChannel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
