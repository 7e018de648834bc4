// Package mosaic generates static raster images composed of colored
// polygonal or Voronoi-cell mosaics derived from seed geometries.
//
// A caller picks a shape (regular polygon, polygonal star, grid), places it
// with a center, rotation and scale, builds a Mosaic, then paints it with a
// coloring method (solid color or a parametric gradient) to obtain a pixel
// buffer:
//
//	shape, err := mosaic.NewRegularPolygon(5)
//	if err != nil {
//		log.Fatal(err)
//	}
//	m, err := mosaic.NewMosaic(shape, mosaic.KindVoronoi,
//		mosaic.WithImageSize(1024, 1024),
//		mosaic.WithRotation(22.5*math.Pi/180),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	pm := m.Draw(mosaic.NewSolid(mosaic.RGB(1, 0.5, 0)))
//	_ = pm.SavePNG("mosaic.png")
//
// A Mosaic is immutable once built and may be drawn any number of times
// with different coloring methods. Voronoi mosaics ("star" mosaics) cut the
// image into the cells nearest each seed point; Delaunay mosaics ("polygon"
// mosaics) cut it into triangles spanned by the seeds.
//
// Voronoi diagrams are computed by github.com/pzsz/voronoi and Delaunay
// triangulations by github.com/fogleman/delaunay; this package normalizes
// both into a common cell representation and handles placement transforms,
// seed generation, point location and coloring.
package mosaic
