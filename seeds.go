package mosaic

import (
	"fmt"
	"math"
	"sort"
)

// seedEpsilon is the coordinate granularity of the seed pipeline. Seed
// coordinates are rounded to this grid before sorting, so two seeds closer
// than the epsilon collapse into one. The value is fixed well below one
// pixel; it is part of the determinism contract because the sorted,
// deduplicated order defines the site indices used by the Voronoi
// tie-break.
const seedEpsilon = 1e-6

func roundToEpsilon(v float64) float64 {
	return math.Round(v/seedEpsilon) * seedEpsilon
}

// normalizeSeeds rounds seed coordinates to the epsilon grid, sorts them
// lexicographically by (x, y) and removes duplicates. The result is the
// canonical site order of the mosaic.
func normalizeSeeds(seeds []Point) []Point {
	out := make([]Point, len(seeds))
	for i, p := range seeds {
		out[i] = Point{X: roundToEpsilon(p.X), Y: roundToEpsilon(p.Y)}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	deduped := out[:0]
	for i, p := range out {
		if i == 0 || p != out[i-1] {
			deduped = append(deduped, p)
		}
	}
	return deduped
}

// checkSeeds verifies that a partition can be formed: at least 3 distinct
// seeds, not all collinear.
func checkSeeds(seeds []Point) error {
	if len(seeds) < 3 {
		return fmt.Errorf("%w: need at least 3 distinct seed points, got %d",
			ErrDegenerateGeometry, len(seeds))
	}
	// Test against the longest available baseline so near-coincident
	// leading seeds cannot mask a genuinely 2D configuration.
	a := seeds[0]
	b := seeds[1]
	for _, p := range seeds[2:] {
		if p.DistanceSquared(a) > b.DistanceSquared(a) {
			b = p
		}
	}
	for _, c := range seeds[1:] {
		if math.Abs(b.Sub(a).Cross(c.Sub(a))) > seedEpsilon {
			return nil
		}
	}
	return fmt.Errorf("%w: all %d seed points are collinear", ErrDegenerateGeometry, len(seeds))
}
