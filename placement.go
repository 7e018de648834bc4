package mosaic

// Placement positions a shape inside the image: where its center sits, how
// it is rotated, scaled and optionally sheared. Shapes emit their vertices
// around the origin; Placement carries them into image space.
type Placement struct {
	Center   Point
	Rotation float64 // radians
	ScaleX   float64
	ScaleY   float64
	ShearX   float64
	ShearY   float64
}

// Matrix compiles the placement into a single affine transform.
// Order of application: scale, shear, rotate, translate.
func (pl Placement) Matrix() Matrix {
	return Translate(pl.Center.X, pl.Center.Y).
		Multiply(RotateMatrix(pl.Rotation)).
		Multiply(ShearMatrix(pl.ShearX, pl.ShearY)).
		Multiply(ScaleMatrix(pl.ScaleX, pl.ScaleY))
}
