package color

// Lighten moves an sRGB color toward white by amount in linear space,
// using the lookup tables for both gamma directions. amount outside [0,1]
// is clamped. Alpha is preserved.
//
// This is the hot path of shaded mosaic rendering: one call per output
// pixel.
func Lighten(c ColorU8, amount float32) ColorU8 {
	if amount <= 0 {
		return c
	}
	if amount > 1 {
		amount = 1
	}
	r := LinearizeByte(c.R)
	g := LinearizeByte(c.G)
	b := LinearizeByte(c.B)
	return ColorU8{
		R: DelinearizeToByte(r + (1-r)*amount),
		G: DelinearizeToByte(g + (1-g)*amount),
		B: DelinearizeToByte(b + (1-b)*amount),
		A: c.A,
	}
}
