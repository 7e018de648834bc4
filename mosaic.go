package mosaic

import (
	"time"

	internalcolor "github.com/gogpu/mosaic/internal/color"
	"github.com/gogpu/mosaic/internal/parallel"
)

// Mosaic is an immutable, built mosaic: a partition of the image plane
// plus the configuration that produced it. It is created by NewMosaic and
// may be drawn any number of times with different coloring methods; Draw
// never mutates it, so a Mosaic is safe for concurrent use.
type Mosaic struct {
	partition *Partition
	width     int
	height    int
	shape     Shape
	placement Placement
	workers   int

	// maxDistances caches each cell's site-to-farthest-vertex distance
	// for the shaded rasterizer.
	maxDistances []float64
}

// Width returns the image width in pixels.
func (m *Mosaic) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Mosaic) Height() int { return m.height }

// Kind returns the partition kind.
func (m *Mosaic) Kind() Kind { return m.partition.kind }

// Shape returns the originating shape, retained for diagnostics.
func (m *Mosaic) Shape() Shape { return m.shape }

// Placement returns the shape placement used to generate the seeds.
func (m *Mosaic) Placement() Placement { return m.placement }

// Cells returns the partition's cell array. Callers must not modify it.
func (m *Mosaic) Cells() []Cell { return m.partition.cells }

// Draw rasterizes the mosaic with the given coloring method and returns
// the pixel buffer. Every pixel center (x+0.5, y+0.5) is located in
// exactly one cell and colored by the method; a pixel exactly equidistant
// between two Voronoi sites goes to the lower site index.
//
// The pixel grid is sharded across workers in disjoint row bands, so the
// output is byte-identical regardless of the worker count.
func (m *Mosaic) Draw(method ColoringMethod) *Pixmap {
	return m.draw(method, false)
}

// DrawShaded rasterizes like Draw, then lightens every pixel by
// (1 - d/maxDist)^2, where d is the pixel's distance to its cell's site
// and maxDist the cell's farthest boundary vertex. Cells glow around
// their seed, the stained-glass look.
func (m *Mosaic) DrawShaded(method ColoringMethod) *Pixmap {
	return m.draw(method, true)
}

func (m *Mosaic) draw(method ColoringMethod, shaded bool) *Pixmap {
	start := time.Now()
	pm := NewPixmap(m.width, m.height)

	pool := parallel.NewWorkerPool(m.workers)
	defer pool.Close()

	// More bands than workers lets the stealing pool even out rows of
	// differing cell density.
	bandHeight := m.height / (pool.Workers() * 4)
	if bandHeight < 1 {
		bandHeight = 1
	}

	var work []func()
	for y := 0; y < m.height; y += bandHeight {
		y0, y1 := y, y+bandHeight
		if y1 > m.height {
			y1 = m.height
		}
		work = append(work, func() {
			m.drawBand(pm, method, shaded, y0, y1)
		})
	}
	pool.ExecuteAll(work)

	Logger().Debug("mosaic drawn",
		"kind", m.partition.kind.String(),
		"cells", len(m.partition.cells),
		"shaded", shaded,
		"elapsed", time.Since(start))
	return pm
}

// drawBand rasterizes the half-open row range [y0, y1). Each band owns a
// locator so point location can reuse the previous pixel's cell, and
// writes only its own rows of the shared buffer.
func (m *Mosaic) drawBand(pm *Pixmap, method ColoringMethod, shaded bool, y0, y1 int) {
	loc := newLocator(m.partition)
	cells := m.partition.cells

	for y := y0; y < y1; y++ {
		py := float64(y) + 0.5
		for x := 0; x < m.width; x++ {
			p := Point{X: float64(x) + 0.5, Y: py}
			idx := loc.locate(p)
			cell := &cells[idx]
			c := method.ColorAt(p, cell.Site)

			if !shaded {
				pm.SetPixel(x, y, c)
				continue
			}

			factor := 0.0
			if maxDist := m.maxDistances[idx]; maxDist > 0 {
				if f := 1 - p.Distance(cell.Site)/maxDist; f > 0 {
					factor = f * f
				}
			}
			quantized := internalcolor.F32ToU8(toColorF32(c))
			lit := internalcolor.Lighten(quantized, float32(factor))
			pm.SetRGBA8(x, y, lit.R, lit.G, lit.B, lit.A)
		}
	}
}
