package mosaic

import "testing"

func TestSegmentLengthMidpoint(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(6, 8))
	if got := s.Length(); got != 10 {
		t.Errorf("Length = %v, want 10", got)
	}
	if got := s.Midpoint(); got != Pt(3, 4) {
		t.Errorf("Midpoint = %v, want (3, 4)", got)
	}
}

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		name   string
		s, o   Segment
		want   Point
		wantOK bool
	}{
		{
			"crossing diagonals",
			Seg(Pt(0, 0), Pt(10, 10)),
			Seg(Pt(0, 10), Pt(10, 0)),
			Pt(5, 5), true,
		},
		{
			"shared endpoint",
			Seg(Pt(0, 0), Pt(10, 0)),
			Seg(Pt(10, 0), Pt(10, 10)),
			Pt(10, 0), true,
		},
		{
			"t junction",
			Seg(Pt(0, 0), Pt(10, 0)),
			Seg(Pt(5, -5), Pt(5, 5)),
			Pt(5, 0), true,
		},
		{
			"parallel",
			Seg(Pt(0, 0), Pt(10, 0)),
			Seg(Pt(0, 1), Pt(10, 1)),
			Point{}, false,
		},
		{
			"collinear overlap",
			Seg(Pt(0, 0), Pt(10, 0)),
			Seg(Pt(5, 0), Pt(15, 0)),
			Point{}, false,
		},
		{
			"lines cross beyond extents",
			Seg(Pt(0, 0), Pt(1, 1)),
			Seg(Pt(10, 0), Pt(0, 10)),
			Point{}, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.s.Intersection(tt.o)
			if ok != tt.wantOK {
				t.Fatalf("Intersection ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !pointsClose(got, tt.want, geomEpsilon) {
				t.Errorf("Intersection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectSegments(t *testing.T) {
	// A square outline plus both diagonals. The diagonals cross in the
	// middle and touch the outline at every corner.
	square := []Segment{
		Seg(Pt(0, 0), Pt(10, 0)),
		Seg(Pt(10, 0), Pt(10, 10)),
		Seg(Pt(10, 10), Pt(0, 10)),
		Seg(Pt(0, 10), Pt(0, 0)),
		Seg(Pt(0, 0), Pt(10, 10)),
		Seg(Pt(10, 0), Pt(0, 10)),
	}
	pts := intersectSegments(square)

	center := 0
	for _, p := range pts {
		if pointsClose(p, Pt(5, 5), geomEpsilon) {
			center++
		}
	}
	if center != 1 {
		t.Errorf("center intersection found %d times, want 1", center)
	}
	if len(pts) == 0 {
		t.Fatal("no intersections found")
	}
}
