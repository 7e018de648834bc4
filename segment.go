package mosaic

// Segment is a straight line segment between two points. Shapes use
// segments to describe the chord mesh connecting their primary vertices;
// the builder intersects that mesh to densify the seed set.
type Segment struct {
	A, B Point
}

// Seg is a convenience function to create a Segment.
func Seg(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Midpoint returns the point halfway between the endpoints.
func (s Segment) Midpoint() Point {
	return s.A.Lerp(s.B, 0.5)
}

// Intersection returns the point where two segments cross and true, or the
// zero Point and false when the segments are parallel, collinear, or meet
// outside either segment's extent. Shared endpoints count as intersections.
func (s Segment) Intersection(o Segment) (Point, bool) {
	d1 := s.B.Sub(s.A)
	d2 := o.B.Sub(o.A)

	denom := d1.Cross(d2)
	if denom == 0 {
		return Point{}, false
	}

	diff := o.A.Sub(s.A)
	t := diff.Cross(d2) / denom
	u := diff.Cross(d1) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return s.A.Add(d1.Mul(t)), true
}

// intersectSegments collects all pairwise intersection points of a segment
// mesh. Duplicates are left in; the seed pipeline dedups them later.
func intersectSegments(segments []Segment) []Point {
	var pts []Point
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			if p, ok := segments[i].Intersection(segments[j]); ok {
				pts = append(pts, p)
			}
		}
	}
	return pts
}
