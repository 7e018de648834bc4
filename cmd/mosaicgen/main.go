// Command mosaicgen renders mosaic images from the command line.
//
// Examples:
//
//	mosaicgen -shape star -vertices 7 -coloring conic -output star.png
//	mosaicgen -shape polygon -kind delaunay -width 1280 -height 720 -mesh
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/gogpu/mosaic"
)

func main() {
	var (
		shapeName = flag.String("shape", "star", "shape: polygon, star, grid, tilted-grid")
		vertices  = flag.Int("vertices", 5, "vertex count for polygon/star shapes")
		rows      = flag.Int("rows", 4, "row count for grid shapes")
		cols      = flag.Int("cols", 4, "column count for grid shapes")
		tilt      = flag.Float64("tilt", 0.2, "tilt factor for the tilted grid")
		kindName  = flag.String("kind", "voronoi", "partition kind: voronoi, delaunay")
		width     = flag.Int("width", 1024, "image width")
		height    = flag.Int("height", 1024, "image height")
		rotation  = flag.Float64("rotation", 0, "shape rotation in degrees")
		scale     = flag.Float64("scale", 0, "shape scale (0 = shape default)")
		centerX   = flag.Float64("cx", -1, "shape center x (-1 = image center)")
		centerY   = flag.Float64("cy", -1, "shape center y (-1 = image center)")
		mesh      = flag.Bool("mesh", true, "densify seeds with mesh intersections")
		coloring  = flag.String("coloring", "linear", "coloring: solid, linear, radial, conic")
		hex       = flag.String("color", "#E8890C", "solid color (hex)")
		smooth    = flag.Float64("smoothness", 1, "gradient smoothness: 0 per-cell, 1 per-pixel")
		shaded    = flag.Bool("shaded", true, "apply per-cell shading")
		output    = flag.String("output", "mosaic.png", "output file (.png or .bmp)")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		mosaic.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	shape, err := buildShape(*shapeName, *vertices, *rows, *cols, *tilt)
	if err != nil {
		log.Fatalf("Invalid shape: %v", err)
	}

	kind, err := parseKind(*kindName)
	if err != nil {
		log.Fatalf("Invalid kind: %v", err)
	}

	opts := []mosaic.Option{
		mosaic.WithImageSize(*width, *height),
		mosaic.WithRotation(*rotation * math.Pi / 180),
		mosaic.WithMeshDensification(*mesh),
	}
	if *scale > 0 {
		opts = append(opts, mosaic.WithUniformScale(*scale))
	}
	if *centerX >= 0 && *centerY >= 0 {
		opts = append(opts, mosaic.WithCenter(mosaic.Pt(*centerX, *centerY)))
	}

	m, err := mosaic.NewMosaic(shape, kind, opts...)
	if err != nil {
		log.Fatalf("Failed to build mosaic: %v", err)
	}

	method, err := buildColoring(*coloring, *hex, *smooth, *width, *height)
	if err != nil {
		log.Fatalf("Invalid coloring: %v", err)
	}

	var pm *mosaic.Pixmap
	if *shaded {
		pm = m.DrawShaded(method)
	} else {
		pm = m.Draw(method)
	}

	if strings.HasSuffix(strings.ToLower(*output), ".bmp") {
		err = pm.SaveBMP(*output)
	} else {
		err = pm.SavePNG(*output)
	}
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Mosaic saved to %s (%dx%d, %d cells)\n", *output, *width, *height, len(m.Cells()))
}

func buildShape(name string, vertices, rows, cols int, tilt float64) (mosaic.Shape, error) {
	switch name {
	case "polygon":
		return mosaic.NewRegularPolygon(vertices)
	case "star":
		return mosaic.NewPolygonalStar(vertices)
	case "grid":
		return mosaic.NewGrid(rows, cols)
	case "tilted-grid":
		return mosaic.NewTiltedGrid(rows, cols, tilt, tilt/2)
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

func parseKind(name string) (mosaic.Kind, error) {
	switch name {
	case "voronoi", "star":
		return mosaic.KindVoronoi, nil
	case "delaunay", "polygon":
		return mosaic.KindDelaunay, nil
	default:
		return 0, fmt.Errorf("unknown partition kind %q", name)
	}
}

func buildColoring(name, hex string, smoothness float64, width, height int) (mosaic.ColoringMethod, error) {
	w, h := float64(width), float64(height)
	center := mosaic.Pt(w/2, h/2)
	stops := []mosaic.ColorStop{
		{Offset: 0, Color: mosaic.Hex("#1B2A52")},
		{Offset: 0.45, Color: mosaic.Hex("#7C3AA0")},
		{Offset: 0.75, Color: mosaic.Hex("#E8890C")},
		{Offset: 1, Color: mosaic.Hex("#F5E663")},
	}

	switch name {
	case "solid":
		return mosaic.NewSolidHex(hex), nil
	case "linear":
		g, err := mosaic.NewLinearGradient(mosaic.Pt(0, 0), mosaic.Pt(w, h), stops)
		if err != nil {
			return nil, err
		}
		return g.SetSmoothness(smoothness), nil
	case "radial":
		g, err := mosaic.NewRadialGradient(center, 0, math.Min(w, h)/2, stops)
		if err != nil {
			return nil, err
		}
		return g.SetSmoothness(smoothness), nil
	case "conic":
		g, err := mosaic.NewConicGradient(center, 0, stops)
		if err != nil {
			return nil, err
		}
		return g.SetSmoothness(smoothness), nil
	default:
		return nil, fmt.Errorf("unknown coloring %q", name)
	}
}
