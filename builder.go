package mosaic

import (
	"fmt"
	"math"
)

// Option configures mosaic construction. Use functional options to
// customize placement, image size and rendering behavior.
//
// Example:
//
//	m, err := mosaic.NewMosaic(shape, mosaic.KindVoronoi,
//		mosaic.WithImageSize(1024, 768),
//		mosaic.WithUniformScale(300),
//		mosaic.WithRotation(math.Pi/6),
//	)
type Option func(*config)

// config holds the validated construction parameters.
type config struct {
	width, height  int
	center         Point
	centerSet      bool
	rotation       float64
	scaleX, scaleY float64
	scaleSet       bool
	shearX, shearY float64
	densify        bool
	workers        int
}

func defaultConfig() config {
	return config{
		width:  640,
		height: 640,
	}
}

// WithImageSize sets the mosaic's image dimensions in pixels.
// The default is 640x640.
func WithImageSize(width, height int) Option {
	return func(c *config) {
		c.width = width
		c.height = height
	}
}

// WithCenter places the shape's center. The default is the image center;
// values outside the image are clamped to its bounds.
func WithCenter(center Point) Option {
	return func(c *config) {
		c.center = center
		c.centerSet = true
	}
}

// WithRotation sets the shape's rotation angle in radians.
func WithRotation(angle float64) Option {
	return func(c *config) {
		c.rotation = angle
	}
}

// WithScale sets the shape's non-uniform scale factors. For polygonal
// shapes the scale is the circumradius in pixels; for grid shapes it is a
// multiplier. The default is a quarter of the smaller image dimension for
// polygons and 1 for grids.
func WithScale(sx, sy float64) Option {
	return func(c *config) {
		c.scaleX = sx
		c.scaleY = sy
		c.scaleSet = true
	}
}

// WithUniformScale sets the same scale factor for both axes.
func WithUniformScale(s float64) Option {
	return WithScale(s, s)
}

// WithShear sets the shape's horizontal and vertical shear factors.
func WithShear(hx, hy float64) Option {
	return func(c *config) {
		c.shearX = hx
		c.shearY = hy
	}
}

// WithMeshDensification enables seed densification: the shape's segment
// mesh is intersected and every crossing becomes an extra seed point,
// producing the layered interior of the classic figure mosaics.
func WithMeshDensification(enabled bool) Option {
	return func(c *config) {
		c.densify = enabled
	}
}

// WithWorkers sets the number of rasterizer workers used by Draw.
// Zero (the default) uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// NewMosaic validates the configuration, generates the shape's seed
// points, partitions the image and assembles an immutable Mosaic.
//
// All configuration errors surface here, before any geometry work: shape
// construction problems arrive as ErrInvalidShape from the shape
// constructors, option violations as ErrInvalidConfig, and unusable seed
// sets as ErrDegenerateGeometry. A successfully built Mosaic can always be
// drawn.
func NewMosaic(shape Shape, kind Kind, opts ...Option) (*Mosaic, error) {
	if shape == nil {
		return nil, fmt.Errorf("%w: shape must not be nil", ErrInvalidConfig)
	}
	if kind != KindVoronoi && kind != KindDelaunay {
		return nil, fmt.Errorf("%w: unknown partition kind %d", ErrInvalidConfig, kind)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.width <= 0 || cfg.height <= 0 {
		return nil, fmt.Errorf("%w: image size must be positive, got %dx%d",
			ErrInvalidConfig, cfg.width, cfg.height)
	}
	if cfg.workers < 0 {
		return nil, fmt.Errorf("%w: worker count must not be negative, got %d",
			ErrInvalidConfig, cfg.workers)
	}
	if !cfg.scaleSet {
		s := shape.defaultScale(cfg.width, cfg.height)
		cfg.scaleX, cfg.scaleY = s, s
	}
	if !(cfg.scaleX > 0) || !(cfg.scaleY > 0) ||
		math.IsInf(cfg.scaleX, 0) || math.IsInf(cfg.scaleY, 0) {
		return nil, fmt.Errorf("%w: scale factors must be positive and finite, got (%g, %g)",
			ErrInvalidConfig, cfg.scaleX, cfg.scaleY)
	}
	if !cfg.centerSet {
		cfg.center = Point{X: float64(cfg.width) / 2, Y: float64(cfg.height) / 2}
	}
	cfg.center = Point{
		X: math.Min(math.Max(cfg.center.X, 0), float64(cfg.width)),
		Y: math.Min(math.Max(cfg.center.Y, 0), float64(cfg.height)),
	}

	placement := Placement{
		Center:   cfg.center,
		Rotation: cfg.rotation,
		ScaleX:   cfg.scaleX,
		ScaleY:   cfg.scaleY,
		ShearX:   cfg.shearX,
		ShearY:   cfg.shearY,
	}

	seeds := GenerateSeeds(shape, cfg.width, cfg.height, placement, cfg.densify)

	var (
		partition *Partition
		err       error
	)
	switch kind {
	case KindVoronoi:
		partition, err = buildVoronoiPartition(seeds, cfg.width, cfg.height)
	case KindDelaunay:
		partition, err = buildDelaunayPartition(seeds, cfg.width, cfg.height)
	}
	if err != nil {
		return nil, err
	}

	Logger().Debug("mosaic built",
		"shape", shape.String(),
		"kind", kind.String(),
		"seeds", len(seeds),
		"cells", len(partition.cells),
		"size", fmt.Sprintf("%dx%d", cfg.width, cfg.height))

	maxDistances := make([]float64, len(partition.cells))
	for i := range partition.cells {
		maxDistances[i] = partition.cells[i].maxSiteDistance()
	}

	return &Mosaic{
		partition:    partition,
		width:        cfg.width,
		height:       cfg.height,
		shape:        shape,
		placement:    placement,
		workers:      cfg.workers,
		maxDistances: maxDistances,
	}, nil
}

// GenerateSeeds produces the canonical seed point set for a shape: the
// placed primary vertices, optionally densified with the mesh crossings,
// rounded, sorted and deduplicated. The result's order defines the site
// indices of a Voronoi mosaic.
//
// Pure function of its inputs: identical arguments yield identical output.
func GenerateSeeds(shape Shape, width, height int, pl Placement, densify bool) []Point {
	matrix := pl.Matrix()
	placed := matrix.ApplyAll(shape.Vertices(width, height))

	seeds := placed
	if densify {
		mesh := shape.Mesh(placed)
		seeds = append(seeds, intersectSegments(mesh)...)
	}
	return normalizeSeeds(seeds)
}
