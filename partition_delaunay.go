package mosaic

import (
	"fmt"

	"github.com/fogleman/delaunay"
)

// buildDelaunayPartition triangulates the seeds plus the four image
// corners and turns every face into a cell. The corners guarantee the
// triangulation's convex hull covers the whole image rectangle, so every
// pixel lands inside some triangle.
//
// Each cell's representative point is the triangle centroid. Neighbors are
// aligned with the boundary edges; -1 marks a hull edge.
func buildDelaunayPartition(seeds []Point, width, height int) (*Partition, error) {
	if err := checkSeeds(seeds); err != nil {
		return nil, err
	}

	w, h := float64(width), float64(height)
	corners := []Point{{0, 0}, {w, 0}, {w, h}, {0, h}}
	all := normalizeSeeds(append(append([]Point{}, seeds...), corners...))

	pts := make([]delaunay.Point, len(all))
	for i, p := range all {
		pts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateGeometry, err)
	}

	triangleCount := len(tri.Triangles) / 3
	cells := make([]Cell, triangleCount)
	for t := 0; t < triangleCount; t++ {
		a := all[tri.Triangles[3*t]]
		b := all[tri.Triangles[3*t+1]]
		c := all[tri.Triangles[3*t+2]]

		neighbors := make([]int, 3)
		for k := 0; k < 3; k++ {
			opposite := tri.Halfedges[3*t+k]
			if opposite >= 0 {
				neighbors[k] = opposite / 3
			} else {
				neighbors[k] = -1
			}
		}

		cells[t] = Cell{
			Site: Point{
				X: (a.X + b.X + c.X) / 3,
				Y: (a.Y + b.Y + c.Y) / 3,
			},
			Boundary:  []Point{a, b, c},
			Neighbors: neighbors,
		}
	}

	return &Partition{kind: KindDelaunay, cells: cells}, nil
}
