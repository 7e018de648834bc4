package mosaic

import "errors"

// Sentinel errors reported during configuration and construction.
// They are matched with errors.Is; wrapped forms carry detail about the
// offending parameter.
var (
	// ErrInvalidShape indicates a shape parameter violation, such as a
	// vertex count below the minimum.
	ErrInvalidShape = errors.New("mosaic: invalid shape")

	// ErrDegenerateGeometry indicates that fewer than 3 distinct,
	// non-collinear seed points remained after deduplication, so no
	// partition can be formed.
	ErrDegenerateGeometry = errors.New("mosaic: degenerate geometry")

	// ErrInvalidGradient indicates a malformed gradient stop sequence or a
	// degenerate axis/radius configuration in a coloring method.
	ErrInvalidGradient = errors.New("mosaic: invalid gradient")

	// ErrInvalidConfig indicates an invalid builder option, such as a
	// non-positive image dimension or scale.
	ErrInvalidConfig = errors.New("mosaic: invalid configuration")
)
