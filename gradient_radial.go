package mosaic

import (
	"fmt"
	"math"
)

// RadialGradient colors points by their normalized distance from a center
// circle, with an optional off-center focus for spotlight effects and an
// optional repeat factor for concentric rings. It implements
// ColoringMethod.
//
// The gradient parameter runs from 0 at the inner radius to 1 at the outer
// radius: t = (distance - inner) / (outer - inner), clamped or wrapped by
// the extend mode. With the focus offset from the center the distance is
// measured along the ray from the focus, skewing the highlight.
type RadialGradient struct {
	center      Point
	focus       Point
	innerRadius float64
	outerRadius float64
	repeat      float64
	stops       []ColorStop
	extend      ExtendMode
	smoothness  float64
}

// NewRadialGradient creates a radial gradient around center, transitioning
// from innerRadius to outerRadius. The focus defaults to the center.
// Fails with ErrInvalidGradient if the stop sequence is malformed, the
// inner radius is negative, or outerRadius <= innerRadius.
func NewRadialGradient(center Point, innerRadius, outerRadius float64, stops []ColorStop) (*RadialGradient, error) {
	if err := validateStops(stops); err != nil {
		return nil, err
	}
	if innerRadius < 0 {
		return nil, fmt.Errorf("%w: inner radius %g is negative", ErrInvalidGradient, innerRadius)
	}
	if outerRadius <= innerRadius {
		return nil, fmt.Errorf("%w: outer radius %g must exceed inner radius %g",
			ErrInvalidGradient, outerRadius, innerRadius)
	}
	return &RadialGradient{
		center:      center,
		focus:       center,
		innerRadius: innerRadius,
		outerRadius: outerRadius,
		repeat:      1,
		stops:       copyStops(stops),
		extend:      ExtendPad,
		smoothness:  1,
	}, nil
}

// SetFocus moves the focal point away from the center, producing an
// off-center highlight. Returns the gradient for method chaining.
func (g *RadialGradient) SetFocus(focus Point) *RadialGradient {
	g.focus = focus
	return g
}

// SetRepeat multiplies the gradient parameter, wrapping it modulo 1 when
// combined with ExtendRepeat to produce concentric rings. Values below 1
// are raised to 1. Returns the gradient for method chaining.
func (g *RadialGradient) SetRepeat(factor float64) *RadialGradient {
	if factor < 1 {
		factor = 1
	}
	g.repeat = factor
	return g
}

// SetExtend sets how the gradient extends beyond the outer radius.
// Returns the gradient for method chaining.
func (g *RadialGradient) SetExtend(mode ExtendMode) *RadialGradient {
	g.extend = mode
	return g
}

// SetSmoothness sets the per-pixel/per-cell query policy, as in
// [LinearGradient.SetSmoothness]. Returns the gradient for method chaining.
func (g *RadialGradient) SetSmoothness(s float64) *RadialGradient {
	g.smoothness = clamp01(s)
	return g
}

// Center returns the gradient's center point.
func (g *RadialGradient) Center() Point { return g.center }

// Focus returns the gradient's focal point.
func (g *RadialGradient) Focus() Point { return g.focus }

// Radii returns the inner and outer radius.
func (g *RadialGradient) Radii() (inner, outer float64) {
	return g.innerRadius, g.outerRadius
}

// ColorAt implements ColoringMethod.
func (g *RadialGradient) ColorAt(point, site Point) RGBA {
	q := queryPoint(point, site, g.smoothness)
	t := g.parameterAt(q) * g.repeat
	return colorAtOffset(g.stops, t, g.extend)
}

// parameterAt computes the unrepeated gradient parameter for a point:
// 0 at the inner radius, 1 at the outer radius.
func (g *RadialGradient) parameterAt(q Point) float64 {
	if g.focus == g.center {
		distance := q.Distance(g.center)
		return (distance - g.innerRadius) / (g.outerRadius - g.innerRadius)
	}
	return g.focalParameterAt(q)
}

// focalParameterAt handles the off-center focus: the point's distance from
// the focus is compared against the distance from the focus to the outer
// circle along the same ray, then mapped through the inner radius. For
// focus == center this reduces to the concentric formula.
func (g *RadialGradient) focalParameterAt(q Point) float64 {
	d := q.Sub(g.focus)
	f := g.center.Sub(g.focus)

	// Ray-circle intersection: |focus + t*d - center|^2 = outer^2.
	a := d.LengthSquared()
	if a == 0 {
		// Point at focus.
		return -g.innerRadius / (g.outerRadius - g.innerRadius)
	}
	b := -2 * d.Dot(f)
	c := f.LengthSquared() - g.outerRadius*g.outerRadius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		// Focus outside the outer circle and ray missing it entirely.
		return 1
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	// Forward intersection along the ray from the focus through the point.
	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 1
	}

	pointDist := math.Sqrt(a)
	edgeDist := t * pointDist
	if edgeDist == 0 {
		return 1
	}

	// Scale so the outer circle maps to the outer radius, then normalize
	// through the inner radius.
	scaled := pointDist / edgeDist * g.outerRadius
	return (scaled - g.innerRadius) / (g.outerRadius - g.innerRadius)
}

func (*RadialGradient) coloringMarker() {}
