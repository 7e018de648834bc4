package mosaic

import (
	"fmt"
	"math"
)

// Grid is a shape based on a rectangular grid sized against the image.
// Its primary points are the grid corners plus the row and column division
// points on the border; the mesh consists of the interior grid lines, whose
// crossings seed the lattice.
type Grid struct {
	rows, cols int
}

// NewGrid creates a grid shape with the given number of rows and columns.
// Fails with ErrInvalidShape if either count is below 1.
func NewGrid(rows, cols int) (Grid, error) {
	if rows < 1 || cols < 1 {
		return Grid{}, fmt.Errorf("%w: grid needs at least 1 row and 1 column, got %dx%d",
			ErrInvalidShape, rows, cols)
	}
	return Grid{rows: rows, cols: cols}, nil
}

// Rows returns the number of grid rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g Grid) Cols() int { return g.cols }

// Vertices returns the grid's corner and border division points, centered
// on the origin. The cell step is equalized to the smaller of width/cols
// and height/rows so cells stay square.
func (g Grid) Vertices(width, height int) []Point {
	step := math.Min(float64(width)/float64(g.cols), float64(height)/float64(g.rows))
	halfW := step * float64(g.cols) * 0.5
	halfH := step * float64(g.rows) * 0.5

	points := []Point{
		{X: -halfW, Y: -halfH},
		{X: -halfW, Y: halfH},
		{X: halfW, Y: -halfH},
		{X: halfW, Y: halfH},
	}
	for i := 1; i < g.rows; i++ {
		y := -halfH + step*float64(i)
		points = append(points, Point{X: -halfW, Y: y}, Point{X: halfW, Y: y})
	}
	for i := 1; i < g.cols; i++ {
		x := -halfW + step*float64(i)
		points = append(points, Point{X: x, Y: -halfH}, Point{X: x, Y: halfH})
	}
	return points
}

// Mesh returns the interior grid lines. The four corners (the first four
// points) carry no segments; every following pair spans one line.
func (g Grid) Mesh(points []Point) []Segment {
	var segments []Segment
	for i := 4; i+1 < len(points); i += 2 {
		segments = append(segments, Segment{A: points[i], B: points[i+1]})
	}
	return segments
}

func (g Grid) String() string {
	return fmt.Sprintf("grid (%dx%d)", g.rows, g.cols)
}

func (g Grid) defaultScale(_, _ int) float64 {
	return 1
}

// TiltedGrid is a Grid skewed by horizontal and vertical tilt factors,
// producing parallelogram cells.
type TiltedGrid struct {
	grid  Grid
	tiltX float64
	tiltY float64
}

// NewTiltedGrid creates a tilted grid shape with the given number of rows
// and columns and the given shear factors. Fails with ErrInvalidShape if
// either count is below 1.
func NewTiltedGrid(rows, cols int, tiltX, tiltY float64) (TiltedGrid, error) {
	grid, err := NewGrid(rows, cols)
	if err != nil {
		return TiltedGrid{}, err
	}
	return TiltedGrid{grid: grid, tiltX: tiltX, tiltY: tiltY}, nil
}

// Rows returns the number of grid rows.
func (g TiltedGrid) Rows() int { return g.grid.rows }

// Cols returns the number of grid columns.
func (g TiltedGrid) Cols() int { return g.grid.cols }

// Tilt returns the horizontal and vertical tilt factors.
func (g TiltedGrid) Tilt() (float64, float64) { return g.tiltX, g.tiltY }

// Vertices returns the grid points with the tilt shear applied.
func (g TiltedGrid) Vertices(width, height int) []Point {
	points := g.grid.Vertices(width, height)
	for i, p := range points {
		points[i] = p.Shear(g.tiltX, g.tiltY)
	}
	return points
}

// Mesh returns the interior grid lines, already tilted with the points.
func (g TiltedGrid) Mesh(points []Point) []Segment {
	return g.grid.Mesh(points)
}

func (g TiltedGrid) String() string {
	return fmt.Sprintf("tilted grid (%dx%d, tilt %.2f/%.2f)", g.grid.rows, g.grid.cols, g.tiltX, g.tiltY)
}

func (g TiltedGrid) defaultScale(_, _ int) float64 {
	return 1
}
