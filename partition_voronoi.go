package mosaic

import (
	"fmt"

	"github.com/fogleman/delaunay"
	"github.com/pzsz/voronoi"
)

// buildVoronoiPartition computes the Voronoi diagram of the seeds clipped
// to the image rectangle and normalizes it into cells. Seed order defines
// the cell order, so the caller must pass the canonical (sorted, deduped)
// seed slice.
//
// Cell boundaries come from the Fortune-sweep diagram; neighbor links come
// from the Delaunay triangulation of the same seeds, which is the dual
// adjacency and, unlike the clipped diagram, is complete. The nearest-site
// descent in point location depends on that completeness.
func buildVoronoiPartition(seeds []Point, width, height int) (*Partition, error) {
	if err := checkSeeds(seeds); err != nil {
		return nil, err
	}

	adjacency, err := siteAdjacency(seeds)
	if err != nil {
		return nil, err
	}

	sites := make([]voronoi.Vertex, len(seeds))
	index := make(map[voronoi.Vertex]int, len(seeds))
	for i, p := range seeds {
		sites[i] = voronoi.Vertex{X: p.X, Y: p.Y}
		index[sites[i]] = i
	}

	bbox := voronoi.NewBBox(0, float64(width), 0, float64(height))
	diagram := voronoi.ComputeDiagram(sites, bbox, true)

	cells := make([]Cell, len(seeds))
	for i, p := range seeds {
		cells[i] = Cell{Site: p, Neighbors: adjacency[i]}
	}
	for _, dc := range diagram.Cells {
		i, ok := index[dc.Site]
		if !ok {
			// The library copies site coordinates verbatim, so every
			// diagram cell maps back to exactly one input seed.
			continue
		}
		boundary := make([]Point, 0, len(dc.Halfedges))
		for _, he := range dc.Halfedges {
			v := he.GetStartpoint()
			boundary = append(boundary, Point{X: v.X, Y: v.Y})
		}
		cells[i].Boundary = boundary
	}

	return &Partition{kind: KindVoronoi, cells: cells}, nil
}

// siteAdjacency triangulates the seeds and reads the neighbor relation off
// the triangulation edges: two seeds are neighbors exactly when they share
// a Voronoi edge.
func siteAdjacency(seeds []Point) ([][]int, error) {
	pts := make([]delaunay.Point, len(seeds))
	for i, p := range seeds {
		pts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateGeometry, err)
	}

	seen := make(map[[2]int]struct{})
	adjacency := make([][]int, len(seeds))
	addEdge := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		adjacency[a] = append(adjacency[a], b)
		adjacency[b] = append(adjacency[b], a)
	}
	for e, a := range tri.Triangles {
		b := tri.Triangles[nextHalfedge(e)]
		addEdge(a, b)
	}
	return adjacency, nil
}

// nextHalfedge returns the next halfedge index within the same triangle.
func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}
