package mosaic

import (
	"math"
	"testing"
)

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	p := Pt(3.5, -7.25)
	if got := m.Apply(p); got != p {
		t.Errorf("Identity().Apply(%v) = %v, want %v", p, got, p)
	}
}

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"translate", Translate(10, -5), Pt(1, 2), Pt(11, -3)},
		{"scale", ScaleMatrix(2, 3), Pt(4, 5), Pt(8, 15)},
		{"rotate quarter", RotateMatrix(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"shear", ShearMatrix(0.5, 0), Pt(2, 4), Pt(4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Apply(tt.p); !pointsClose(got, tt.want, geomEpsilon) {
				t.Errorf("Apply(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Multiply applies the right operand first.
	m := Translate(10, 0).Multiply(ScaleMatrix(2, 2))
	got := m.Apply(Pt(3, 4))
	want := Pt(16, 8)
	if !pointsClose(got, want, geomEpsilon) {
		t.Errorf("translate*scale applied to (3,4) = %v, want %v", got, want)
	}

	m = ScaleMatrix(2, 2).Multiply(Translate(10, 0))
	got = m.Apply(Pt(3, 4))
	want = Pt(26, 8)
	if !pointsClose(got, want, geomEpsilon) {
		t.Errorf("scale*translate applied to (3,4) = %v, want %v", got, want)
	}
}

func TestMatrixApplyAll(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 1), Pt(-2, 3)}
	out := Translate(1, 1).ApplyAll(pts)
	if len(out) != len(pts) {
		t.Fatalf("ApplyAll returned %d points, want %d", len(out), len(pts))
	}
	for i, p := range pts {
		want := p.Add(Pt(1, 1))
		if out[i] != want {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
	// Input must stay untouched.
	if pts[0] != Pt(0, 0) {
		t.Errorf("ApplyAll modified its input: %v", pts[0])
	}
}

func TestPlacementMatrix(t *testing.T) {
	pl := Placement{
		Center:   Pt(100, 50),
		Rotation: math.Pi / 2,
		ScaleX:   2,
		ScaleY:   2,
	}
	// Unit vertex (1, 0): scaled to (2, 0), rotated to (0, 2),
	// translated to (100, 52).
	got := pl.Matrix().Apply(Pt(1, 0))
	want := Pt(100, 52)
	if !pointsClose(got, want, geomEpsilon) {
		t.Errorf("placement transform = %v, want %v", got, want)
	}
}

func TestPlacementMatrixWithShear(t *testing.T) {
	pl := Placement{
		Center: Pt(0, 0),
		ScaleX: 1,
		ScaleY: 1,
		ShearX: 0.5,
	}
	got := pl.Matrix().Apply(Pt(0, 2))
	want := Pt(1, 2)
	if !pointsClose(got, want, geomEpsilon) {
		t.Errorf("sheared transform = %v, want %v", got, want)
	}
}
