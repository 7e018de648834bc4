package mosaic

// ColoringMethod decides the color of every pixel of every mosaic cell.
// This is a sealed interface; the variants are Solid, LinearGradient,
// RadialGradient and ConicGradient.
//
// ColorAt receives both the pixel position and the representative point
// (site) of the cell being painted. Solid colors ignore both; gradients
// blend the two according to their Smoothness so a single method covers
// smooth per-pixel gradients, stained-glass per-cell coloring, and
// everything in between.
//
// Implementations are pure: calling ColorAt never mutates the method, so a
// single value may be shared by all rasterizer workers.
type ColoringMethod interface {
	// ColorAt returns the color for a pixel at point, inside the cell
	// whose representative point is site.
	ColorAt(point, site Point) RGBA

	// coloringMarker seals the interface.
	coloringMarker()
}

// queryPoint blends the cell site toward the pixel position by smoothness:
// 0 keys the whole cell on its site (stained glass), 1 keys every pixel on
// itself (smooth gradient).
func queryPoint(point, site Point, smoothness float64) Point {
	return site.Lerp(point, smoothness)
}

// Solid is a coloring method that paints every cell and pixel with the
// same fixed color. It has no failure modes.
type Solid struct {
	Color RGBA
}

// NewSolid creates a solid coloring method from an RGBA color.
func NewSolid(c RGBA) Solid {
	return Solid{Color: c}
}

// NewSolidHex creates a solid coloring method from a hex color string.
func NewSolidHex(hex string) Solid {
	return Solid{Color: Hex(hex)}
}

// ColorAt implements ColoringMethod. Returns the fixed color regardless of
// position.
func (s Solid) ColorAt(_, _ Point) RGBA {
	return s.Color
}

func (Solid) coloringMarker() {}
