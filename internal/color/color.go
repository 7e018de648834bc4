// Package color provides the color representations and sRGB/linear
// conversions behind gradient interpolation and cell shading.
//
// Two fixed-layout color types cover the pipeline: ColorF32 for float
// arithmetic (gradient blending, lighten factors) and ColorU8 for the
// final pixel bytes. Whether the RGB channels hold sRGB-encoded or linear
// values is a property of the call site, not the type; alpha is always
// linear.
package color

// ColorF32 is a color with float32 channels in [0, 1].
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 is a color with uint8 channels in [0, 255], the layout of the
// output pixel buffer.
type ColorU8 struct {
	R, G, B, A uint8
}
