package mosaic

// LinearGradient colors points by projecting them onto a start-to-end axis
// and sampling a stop sequence along it. It implements ColoringMethod.
//
// Example:
//
//	grad, err := mosaic.NewLinearGradient(
//		mosaic.Pt(0, 0), mosaic.Pt(100, 0),
//		[]mosaic.ColorStop{
//			{Offset: 0, Color: mosaic.Red},
//			{Offset: 0.5, Color: mosaic.Yellow},
//			{Offset: 1, Color: mosaic.Blue},
//		},
//	)
type LinearGradient struct {
	start      Point
	direction  Point // end - start
	invLenSq   float64
	stops      []ColorStop
	extend     ExtendMode
	smoothness float64
}

// NewLinearGradient creates a linear gradient running from start to end.
// Fails with ErrInvalidGradient if the stop sequence is malformed or
// start equals end.
func NewLinearGradient(start, end Point, stops []ColorStop) (*LinearGradient, error) {
	if err := validateStops(stops); err != nil {
		return nil, err
	}
	direction := end.Sub(start)
	lenSq := direction.LengthSquared()
	if lenSq == 0 {
		return nil, errZeroAxis(start)
	}
	return &LinearGradient{
		start:      start,
		direction:  direction,
		invLenSq:   1 / lenSq,
		stops:      copyStops(stops),
		extend:     ExtendPad,
		smoothness: 1,
	}, nil
}

// SetExtend sets how the gradient extends beyond its ends.
// Returns the gradient for method chaining.
func (g *LinearGradient) SetExtend(mode ExtendMode) *LinearGradient {
	g.extend = mode
	return g
}

// SetSmoothness sets the per-pixel/per-cell query policy: 1 (default)
// samples every pixel for a smooth gradient, 0 colors each cell uniformly
// by its site. The value is clamped to [0, 1].
// Returns the gradient for method chaining.
func (g *LinearGradient) SetSmoothness(s float64) *LinearGradient {
	g.smoothness = clamp01(s)
	return g
}

// Start returns the gradient's start point.
func (g *LinearGradient) Start() Point { return g.start }

// End returns the gradient's end point.
func (g *LinearGradient) End() Point { return g.start.Add(g.direction) }

// ColorAt implements ColoringMethod: the query point is projected onto the
// start-to-end axis, normalized to [0, 1] and sampled against the stops.
func (g *LinearGradient) ColorAt(point, site Point) RGBA {
	q := queryPoint(point, site, g.smoothness)
	t := q.Sub(g.start).Dot(g.direction) * g.invLenSq
	return colorAtOffset(g.stops, t, g.extend)
}

func (*LinearGradient) coloringMarker() {}
