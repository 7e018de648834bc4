package mosaic

import (
	"bytes"
	"testing"
)

func buildTestMosaic(t *testing.T, kind Kind, opts ...Option) *Mosaic {
	t.Helper()
	shape, err := NewRegularPolygon(5)
	if err != nil {
		t.Fatalf("NewRegularPolygon: %v", err)
	}
	opts = append([]Option{WithImageSize(100, 100)}, opts...)
	m, err := NewMosaic(shape, kind, opts...)
	if err != nil {
		t.Fatalf("NewMosaic: %v", err)
	}
	return m
}

func TestDrawSolidFillsEveryPixel(t *testing.T) {
	m := buildTestMosaic(t, KindVoronoi,
		WithCenter(Pt(50, 50)),
		WithScale(20, 20),
	)
	pm := m.Draw(NewSolid(Red))

	if pm.Width() != 100 || pm.Height() != 100 {
		t.Fatalf("pixmap is %dx%d, want 100x100", pm.Width(), pm.Height())
	}

	data := pm.Data()
	for i := 0; i < len(data); i += 4 {
		if data[i] != 255 || data[i+1] != 0 || data[i+2] != 0 || data[i+3] != 255 {
			t.Fatalf("pixel %d = (%d, %d, %d, %d), want opaque red",
				i/4, data[i], data[i+1], data[i+2], data[i+3])
		}
	}
}

func TestDrawCoversEveryPixelOnce(t *testing.T) {
	for _, kind := range []Kind{KindVoronoi, KindDelaunay} {
		t.Run(kind.String(), func(t *testing.T) {
			m := buildTestMosaic(t, kind)

			// Replaying the rasterizer's point location assigns every
			// pixel center to exactly one valid cell.
			counts := make([]int, len(m.Cells()))
			loc := newLocator(m.partition)
			for y := 0; y < m.Height(); y++ {
				for x := 0; x < m.Width(); x++ {
					idx := loc.locate(Pt(float64(x)+0.5, float64(y)+0.5))
					if idx < 0 || idx >= len(counts) {
						t.Fatalf("pixel (%d, %d) located out-of-range cell %d", x, y, idx)
					}
					counts[idx]++
				}
			}

			total := 0
			for _, n := range counts {
				total += n
			}
			if want := m.Width() * m.Height(); total != want {
				t.Errorf("assigned %d pixels, want %d", total, want)
			}
		})
	}
}

func TestDrawDeterministic(t *testing.T) {
	grad, err := NewLinearGradient(Pt(0, 0), Pt(100, 100), []ColorStop{
		{Offset: 0, Color: Red},
		{Offset: 1, Color: Blue},
	})
	if err != nil {
		t.Fatalf("NewLinearGradient: %v", err)
	}

	for _, kind := range []Kind{KindVoronoi, KindDelaunay} {
		t.Run(kind.String(), func(t *testing.T) {
			a := buildTestMosaic(t, kind).Draw(grad)
			b := buildTestMosaic(t, kind).Draw(grad)
			if !bytes.Equal(a.Data(), b.Data()) {
				t.Error("two identical builds produced different pixels")
			}

			// Repeated draws of one mosaic are also identical.
			m := buildTestMosaic(t, kind)
			if !bytes.Equal(m.Draw(grad).Data(), m.Draw(grad).Data()) {
				t.Error("repeated draws produced different pixels")
			}
		})
	}
}

func TestDrawWorkerCountInvariance(t *testing.T) {
	grad, _ := NewConicGradient(Pt(50, 50), 0, []ColorStop{
		{Offset: 0, Color: Yellow},
		{Offset: 0.5, Color: Magenta},
		{Offset: 1, Color: Cyan},
	})

	want := buildTestMosaic(t, KindVoronoi, WithWorkers(1)).Draw(grad).Data()
	for _, workers := range []int{2, 3, 8} {
		got := buildTestMosaic(t, KindVoronoi, WithWorkers(workers)).Draw(grad).Data()
		if !bytes.Equal(got, want) {
			t.Errorf("%d workers produced different pixels than 1 worker", workers)
		}
	}
}

func TestDrawShadedOnlyLightens(t *testing.T) {
	m := buildTestMosaic(t, KindVoronoi)
	base := m.Draw(NewSolid(NewRGBA(0.3, 0.5, 0.2, 1)))
	shaded := m.DrawShaded(NewSolid(NewRGBA(0.3, 0.5, 0.2, 1)))

	baseData := base.Data()
	shadedData := shaded.Data()
	brightened := false
	for i := 0; i < len(baseData); i += 4 {
		for ch := 0; ch < 3; ch++ {
			// One count of slack: the shaded path quantizes through the
			// lookup tables, the plain path through SetPixel.
			if int(shadedData[i+ch]) < int(baseData[i+ch])-1 {
				t.Fatalf("pixel %d channel %d darkened: %d -> %d",
					i/4, ch, baseData[i+ch], shadedData[i+ch])
			}
			if shadedData[i+ch] > baseData[i+ch] {
				brightened = true
			}
		}
		if shadedData[i+3] != baseData[i+3] {
			t.Fatalf("pixel %d alpha changed: %d -> %d", i/4, baseData[i+3], shadedData[i+3])
		}
	}
	if !brightened {
		t.Error("shading brightened no pixel at all")
	}
}

func TestMosaicAccessors(t *testing.T) {
	shape, _ := NewPolygonalStar(6)
	m, err := NewMosaic(shape, KindDelaunay,
		WithImageSize(200, 150),
		WithUniformScale(60),
	)
	if err != nil {
		t.Fatalf("NewMosaic: %v", err)
	}

	if m.Width() != 200 || m.Height() != 150 {
		t.Errorf("size = %dx%d, want 200x150", m.Width(), m.Height())
	}
	if m.Kind() != KindDelaunay {
		t.Errorf("kind = %v, want delaunay", m.Kind())
	}
	if m.Shape() != Shape(shape) {
		t.Errorf("shape = %v, want %v", m.Shape(), shape)
	}
	if pl := m.Placement(); pl.ScaleX != 60 || pl.ScaleY != 60 {
		t.Errorf("placement scale = (%v, %v), want (60, 60)", pl.ScaleX, pl.ScaleY)
	}
	if len(m.Cells()) == 0 {
		t.Error("no cells")
	}
}

func BenchmarkDrawVoronoi(b *testing.B) {
	shape, _ := NewPolygonalStar(8)
	m, err := NewMosaic(shape, KindVoronoi, WithImageSize(256, 256), WithMeshDensification(true))
	if err != nil {
		b.Fatalf("NewMosaic: %v", err)
	}
	method := NewSolid(Blue)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Draw(method)
	}
}

func BenchmarkDrawDelaunay(b *testing.B) {
	shape, _ := NewPolygonalStar(8)
	m, err := NewMosaic(shape, KindDelaunay, WithImageSize(256, 256), WithMeshDensification(true))
	if err != nil {
		b.Fatalf("NewMosaic: %v", err)
	}
	method, _ := NewRadialGradient(Pt(128, 128), 0, 128, []ColorStop{
		{Offset: 0, Color: White},
		{Offset: 1, Color: Blue},
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Draw(method)
	}
}

func BenchmarkDrawShaded(b *testing.B) {
	shape, _ := NewPolygonalStar(8)
	m, err := NewMosaic(shape, KindVoronoi, WithImageSize(256, 256), WithMeshDensification(true))
	if err != nil {
		b.Fatalf("NewMosaic: %v", err)
	}
	method := NewSolid(Blue)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.DrawShaded(method)
	}
}
