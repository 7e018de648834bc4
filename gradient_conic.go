package mosaic

import "math"

// ConicGradient colors points by their angle around a center, sweeping the
// stop sequence once (or repeat times) per full turn, like a pinwheel.
// It implements ColoringMethod.
//
// The angle of the query point relative to the center is offset by the
// start angle, wrapped into [0, 2*pi), multiplied by the repeat count and
// normalized to the gradient parameter.
type ConicGradient struct {
	center     Point
	startAngle float64
	repeat     float64
	stops      []ColorStop
	extend     ExtendMode
	smoothness float64
}

// NewConicGradient creates a conic (sweep) gradient around center,
// starting at startAngle radians. Fails with ErrInvalidGradient if the
// stop sequence is malformed.
func NewConicGradient(center Point, startAngle float64, stops []ColorStop) (*ConicGradient, error) {
	if err := validateStops(stops); err != nil {
		return nil, err
	}
	return &ConicGradient{
		center:     center,
		startAngle: startAngle,
		repeat:     1,
		stops:      copyStops(stops),
		extend:     ExtendRepeat,
		smoothness: 1,
	}, nil
}

// SetRepeat sets how many times the gradient sweeps per full turn.
// Fractional counts are allowed; values below 1 are raised to 1.
// Returns the gradient for method chaining.
func (g *ConicGradient) SetRepeat(count float64) *ConicGradient {
	if count < 1 {
		count = 1
	}
	g.repeat = count
	return g
}

// SetExtend sets how the swept parameter wraps. The default is
// ExtendRepeat, which keeps multiple sweeps continuous.
// Returns the gradient for method chaining.
func (g *ConicGradient) SetExtend(mode ExtendMode) *ConicGradient {
	g.extend = mode
	return g
}

// SetSmoothness sets the per-pixel/per-cell query policy, as in
// [LinearGradient.SetSmoothness]. Returns the gradient for method chaining.
func (g *ConicGradient) SetSmoothness(s float64) *ConicGradient {
	g.smoothness = clamp01(s)
	return g
}

// Center returns the gradient's center point.
func (g *ConicGradient) Center() Point { return g.center }

// StartAngle returns the gradient's start angle in radians.
func (g *ConicGradient) StartAngle() float64 { return g.startAngle }

// ColorAt implements ColoringMethod.
func (g *ConicGradient) ColorAt(point, site Point) RGBA {
	q := queryPoint(point, site, g.smoothness)
	d := q.Sub(g.center)
	if d.X == 0 && d.Y == 0 {
		// Angle undefined at the exact center.
		return g.stops[0].Color
	}

	angle := math.Atan2(d.Y, d.X) - g.startAngle
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}

	t := angle / (2 * math.Pi) * g.repeat
	return colorAtOffset(g.stops, t, g.extend)
}

func (*ConicGradient) coloringMarker() {}
