package color

import "math"

// The lookup tables provide O(1) sRGB <-> linear conversions, replacing
// math.Pow calls with array lookups. The rasterizer's per-pixel cell
// shading runs every output pixel through both directions, which makes the
// tables worthwhile.
//
// sRGB is the standard space for images and displays, but light arithmetic
// (such as lightening toward white) must happen in linear space for
// physically plausible results.

// sRGBToLinearLUT converts an sRGB byte [0-255] to linear float32 [0-1].
// 256 entries, 1KB.
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT converts linear float32 [0-1] to an sRGB byte [0-255].
// 4096 entries give 12-bit precision, sufficient for an 8-bit target.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := 0; i < 256; i++ {
		s := float64(i) / 255.0
		var linear float64
		if s <= 0.04045 {
			linear = s / 12.92
		} else {
			linear = math.Pow((s+0.055)/1.055, 2.4)
		}
		sRGBToLinearLUT[i] = float32(linear)
	}

	for i := 0; i < 4096; i++ {
		linear := float64(i) / 4095.0
		var s float64
		if linear <= 0.0031308 {
			s = linear * 12.92
		} else {
			s = 1.055*math.Pow(linear, 1.0/2.4) - 0.055
		}
		srgb := int(s*255.0 + 0.5)
		if srgb < 0 {
			srgb = 0
		}
		if srgb > 255 {
			srgb = 255
		}
		//nolint:gosec // G115: srgb is clamped to [0,255] range
		linearToSRGBLUT[i] = uint8(srgb)
	}
}

// LinearizeByte converts an sRGB byte to its linear value via the lookup
// table.
func LinearizeByte(v uint8) float32 {
	return sRGBToLinearLUT[v]
}

// DelinearizeToByte converts a linear value in [0,1] to an sRGB byte via
// the lookup table. Out-of-range inputs are clamped.
func DelinearizeToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return linearToSRGBLUT[int(v*4095.0+0.5)]
}
