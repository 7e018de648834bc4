package mosaic

// Kind selects how the seed points are partitioned into cells.
type Kind int

const (
	// KindVoronoi partitions the image into Voronoi cells, one per seed
	// point ("star" mosaics).
	KindVoronoi Kind = iota
	// KindDelaunay partitions the image into Delaunay triangles spanned by
	// the seed points ("polygon" mosaics).
	KindDelaunay
)

// String names the partition kind.
func (k Kind) String() string {
	switch k {
	case KindVoronoi:
		return "voronoi"
	case KindDelaunay:
		return "delaunay"
	default:
		return "unknown"
	}
}

// Cell is one region of a partition: a representative seed point, a closed
// boundary polygon, and links to the neighboring cells.
//
// Neighbors hold indices into the partition's cell array, never pointers.
// For Voronoi cells the list covers every adjacent cell. For Delaunay cells
// it has exactly three entries aligned with the boundary edges
// (Neighbors[i] lies across the edge Boundary[i]-Boundary[i+1]), with -1
// marking a hull edge that has no neighbor.
type Cell struct {
	Site      Point
	Boundary  []Point
	Neighbors []int
}

// maxSiteDistance returns the distance from the cell's site to its
// farthest boundary vertex. Used by the shaded rasterizer to normalize the
// per-pixel lighten falloff.
func (c *Cell) maxSiteDistance() float64 {
	max := 0.0
	for _, v := range c.Boundary {
		if d := c.Site.Distance(v); d > max {
			max = d
		}
	}
	return max
}

// Partition is a set of cells covering the image plane, produced by the
// builder and owned by a Mosaic. It is immutable after construction.
type Partition struct {
	kind  Kind
	cells []Cell
}

// Kind returns the partition kind.
func (p *Partition) Kind() Kind { return p.kind }

// Cells returns the partition's cell array. Callers must not modify it.
func (p *Partition) Cells() []Cell { return p.cells }

// locator performs point location against a partition. It remembers the
// last cell found and starts the next search there, so queries along a
// pixel row walk only a few cells. Each rasterizer worker owns its own
// locator; a locator is not safe for concurrent use.
type locator struct {
	part    *Partition
	current int
}

func newLocator(p *Partition) *locator {
	return &locator{part: p}
}

// locate returns the index of the cell owning the given point.
func (l *locator) locate(p Point) int {
	switch l.part.kind {
	case KindDelaunay:
		l.current = l.part.locateTriangle(p, l.current)
	default:
		l.current = l.part.locateNearest(p, l.current)
	}
	return l.current
}

// locateNearest finds the cell whose site is nearest to p by greedy
// descent over the neighbor graph: while some neighbor's site is closer,
// move there. The neighbor links form a Delaunay adjacency, so the descent
// cannot get stuck in a local minimum. Comparing (squared distance, index)
// makes a pixel exactly equidistant between two sites resolve to the lower
// site index.
func (p *Partition) locateNearest(q Point, start int) int {
	cells := p.cells
	best := start
	bestDist := cells[best].Site.DistanceSquared(q)

	for {
		improved := false
		for _, n := range cells[best].Neighbors {
			d := cells[n].Site.DistanceSquared(q)
			if d < bestDist || (d == bestDist && n < best) {
				best, bestDist = n, d
				improved = true
			}
		}
		if !improved {
			return best
		}
	}
}

// locateTriangle finds the triangle containing p by walking across shared
// edges from the start triangle. When p lies on an edge shared by several
// triangles the walk settles on the lowest containing index, keeping the
// pixel-to-cell assignment unambiguous. The walk is capped at the cell
// count; degenerate cases fall back to a linear scan.
func (p *Partition) locateTriangle(q Point, start int) int {
	cells := p.cells
	current := start
	for steps := 0; steps <= len(cells); steps++ {
		cell := &cells[current]
		orient := triangleOrientation(cell.Boundary)
		next := -1
		for i := 0; i < 3; i++ {
			a := cell.Boundary[i]
			b := cell.Boundary[(i+1)%3]
			if !insideEdge(a, b, q, orient) {
				if n := cell.Neighbors[i]; n >= 0 {
					next = n
					break
				}
				// Outside a hull edge: clamp to this triangle. Only
				// reachable for pixels outside the seed hull, which the
				// image corner seeds prevent in practice.
				next = -1
			}
		}
		if next < 0 {
			return p.lowestContaining(q, current)
		}
		current = next
	}
	return p.scanTriangles(q, current)
}

// lowestContaining checks the found triangle's neighbors for other
// triangles containing q and returns the lowest index, so boundary points
// resolve deterministically.
func (p *Partition) lowestContaining(q Point, found int) int {
	best := found
	for _, n := range p.cells[found].Neighbors {
		if n >= 0 && n < best && p.triangleContains(n, q) {
			best = n
		}
	}
	return best
}

// scanTriangles is the fallback full scan: the lowest-index triangle
// containing q, or the nearest-centroid triangle if none contains it.
func (p *Partition) scanTriangles(q Point, fallback int) int {
	for i := range p.cells {
		if p.triangleContains(i, q) {
			return i
		}
	}
	best := fallback
	bestDist := p.cells[best].Site.DistanceSquared(q)
	for i := range p.cells {
		if d := p.cells[i].Site.DistanceSquared(q); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (p *Partition) triangleContains(i int, q Point) bool {
	b := p.cells[i].Boundary
	orient := triangleOrientation(b)
	for k := 0; k < 3; k++ {
		if !insideEdge(b[k], b[(k+1)%3], q, orient) {
			return false
		}
	}
	return true
}

// insideEdge reports whether q lies on the triangle-interior side of the
// directed edge a->b, for a triangle with the given winding sign. Points
// within a small scaled tolerance of the edge count as inside on both
// sides, so edge pixels belong to all adjacent triangles and the
// lowest-index rule can settle them deterministically instead of the walk
// oscillating on roundoff.
func insideEdge(a, b, q Point, orient float64) bool {
	tolerance := 1e-9 * (1 + b.Sub(a).Length()*q.Sub(a).Length())
	return triangleEdgeSign(a, b, q)*orient >= -tolerance
}

// triangleEdgeSign returns the cross product of (b-a) x (q-a):
// its sign tells which side of the directed edge a->b the point q is on,
// zero meaning exactly on the edge line.
func triangleEdgeSign(a, b, q Point) float64 {
	return b.Sub(a).Cross(q.Sub(a))
}

// triangleOrientation returns the winding sign of a triangle boundary.
func triangleOrientation(b []Point) float64 {
	s := triangleEdgeSign(b[0], b[1], b[2])
	if s < 0 {
		return -1
	}
	return 1
}
