package mosaic

import (
	"fmt"
	"math"
)

// Shape describes a seed geometry: the primary key points of a figure and
// the segment mesh connecting them. Shapes are immutable value types created
// through their constructors, which enforce parameter minimums.
//
// This is a sealed interface; the variants are RegularPolygon,
// PolygonalStar, Grid and TiltedGrid.
//
// Vertices are emitted around the origin and carried into image space by a
// Placement. Polygonal shapes emit unit-radius vertices, so the placement
// scale is the circumradius in pixels; grid shapes emit image-sized
// vertices, so the scale acts as a plain multiplier.
type Shape interface {
	// Vertices returns the ordered primary points of the shape, centered
	// on the origin. The image dimensions only matter for grid shapes,
	// which size themselves against the image.
	Vertices(width, height int) []Point

	// Mesh returns the segments connecting the primary points. The builder
	// intersects this mesh when seed densification is enabled.
	Mesh(points []Point) []Segment

	// String names the shape for diagnostics.
	String() string

	// defaultScale seals the interface and supplies the builder's default
	// placement scale for this shape kind.
	defaultScale(width, height int) float64
}

// RegularPolygon is a shape with n vertices evenly spaced on a circle.
type RegularPolygon struct {
	vertexCount int
}

// NewRegularPolygon creates a regular polygon shape with the given number
// of vertices. Fails with ErrInvalidShape if vertexCount is below 3.
func NewRegularPolygon(vertexCount int) (RegularPolygon, error) {
	if vertexCount < 3 {
		return RegularPolygon{}, fmt.Errorf("%w: regular polygon needs at least 3 vertices, got %d",
			ErrInvalidShape, vertexCount)
	}
	return RegularPolygon{vertexCount: vertexCount}, nil
}

// VertexCount returns the number of polygon vertices.
func (s RegularPolygon) VertexCount() int {
	return s.vertexCount
}

// Vertices returns the polygon's corners on the unit circle. With an odd
// vertex count one corner points straight up; with an even count the top is
// flat. Image coordinates grow downward, hence the -pi/2 offset.
func (s RegularPolygon) Vertices(_, _ int) []Point {
	return polygonRing(s.vertexCount, 1, 0)
}

// Mesh connects every pair of corners: the polygon outline plus all
// diagonals, whose crossings seed the interior.
func (s RegularPolygon) Mesh(points []Point) []Segment {
	n := len(points)
	segments := make([]Segment, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			segments = append(segments, Segment{A: points[i], B: points[j]})
		}
	}
	return segments
}

func (s RegularPolygon) String() string {
	return fmt.Sprintf("regular polygon (%d vertices)", s.vertexCount)
}

func (s RegularPolygon) defaultScale(width, height int) float64 {
	return 0.25 * math.Min(float64(width), float64(height))
}

// PolygonalStar is a star shape with n outer spikes. It produces 2n
// vertices alternating between the outer ring (unit radius) and an inner
// ring rotated by pi/n.
type PolygonalStar struct {
	vertexCount int
}

// NewPolygonalStar creates a polygonal star shape with the given number of
// outer vertices. Fails with ErrInvalidShape if vertexCount is below 3.
func NewPolygonalStar(vertexCount int) (PolygonalStar, error) {
	if vertexCount < 3 {
		return PolygonalStar{}, fmt.Errorf("%w: polygonal star needs at least 3 vertices, got %d",
			ErrInvalidShape, vertexCount)
	}
	return PolygonalStar{vertexCount: vertexCount}, nil
}

// VertexCount returns the number of outer star vertices.
func (s PolygonalStar) VertexCount() int {
	return s.vertexCount
}

// InnerRadiusRatio returns the inner ring radius relative to the outer
// ring. The ratio is chosen so each star edge runs straight from an outer
// vertex through the two flanking inner vertices: about 0.382 for a
// pentagram, 0.577 for a hexagram. This constant is part of the contract.
func (s PolygonalStar) InnerRadiusRatio() float64 {
	n := float64(s.vertexCount)
	return math.Sin(math.Pi*(n-4)/(2*n)) / math.Sin(math.Pi*(n-2)/(2*n))
}

// Vertices returns 2n points alternating outer, inner, outer, ... around
// the origin. The inner ring is offset by pi/n so inner vertices sit
// between outer ones.
func (s PolygonalStar) Vertices(_, _ int) []Point {
	n := s.vertexCount
	outer := polygonRing(n, 1, 0)
	inner := polygonRing(n, s.InnerRadiusRatio(), math.Pi/float64(n))

	points := make([]Point, 0, 2*n)
	for i := 0; i < n; i++ {
		points = append(points, outer[i], inner[i])
	}
	return points
}

// Mesh connects the star outline (outer to flanking inner vertices) plus
// the chords between outer vertices, whose crossings reproduce the layered
// star interior.
func (s PolygonalStar) Mesh(points []Point) []Segment {
	n := s.vertexCount
	var segments []Segment
	// Outline: outer_i -> inner_i -> outer_{i+1}.
	for i := 0; i < n; i++ {
		outer := points[2*i]
		inner := points[2*i+1]
		next := points[(2*i+2)%(2*n)]
		segments = append(segments, Segment{A: outer, B: inner}, Segment{A: inner, B: next})
	}
	// Chords across the outer ring.
	for i := 0; i < n; i++ {
		for j := i + 2; j < n && j-i <= n-2; j++ {
			segments = append(segments, Segment{A: points[2*i], B: points[2*j]})
		}
	}
	return segments
}

func (s PolygonalStar) String() string {
	return fmt.Sprintf("polygonal star (%d vertices)", s.vertexCount)
}

func (s PolygonalStar) defaultScale(width, height int) float64 {
	return 0.25 * math.Min(float64(width), float64(height))
}

// polygonRing places count points on a circle of the given radius around
// the origin. The angle formula keeps a vertex pointing up for odd counts
// and an edge flat on top for even counts.
func polygonRing(count int, radius, rotation float64) []Point {
	points := make([]Point, count)
	n := float64(count)
	for i := range points {
		angle := rotation + math.Pi/n*float64(2*i+1-count%2) - math.Pi/2
		points[i] = Point{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
	return points
}
