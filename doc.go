// Package shapes rasterizes simple geometric outlines onto integer pixel grids.
//
// # Overview
//
// Every shape computes the exact set of integer pixels approximating its
// outline and hands each pixel, with a color, to a [Sink]. The package never
// stores pixels itself: images, windows and test recorders live in the
// surface sub-package or in the caller.
//
// # Quick Start
//
//	img := surface.NewImageSurface(800, 600)
//
//	cube, err := shapes.NewCube(shapes.Pt(300, 200), shapes.Pt(420, 240), shapes.Pt(400, 380))
//	if err != nil {
//	    return err
//	}
//	err = shapes.Render(img, []shapes.Shape{
//	    shapes.Ln(shapes.Pt(10, 10), shapes.Pt(200, 90)),
//	    shapes.NewCircle(shapes.Pt(400, 300), 120),
//	    cube,
//	}, shapes.WithColors(shapes.Cycle(shapes.Red, shapes.Green, shapes.Blue)))
//
//	img.SaveFile("out.png")
//
// # Shapes
//
//   - [Point], [Line], [Triangle], [Rectangle]: outlines built from segments.
//   - [Circle]: a one-pixel ring, computed from one octant and mirrored.
//   - [Polygon]: an equilateral polygon walked with a fixed turning angle.
//   - [Cube] and [DeferredCube]: a parallelogram front face extruded by a depth
//     offset derived purely from the face's diagonals (see [SolveCube]).
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing towards +Y
//
// # Errors
//
// Degenerate geometry (coincident points, zero-length lines, collinear cube
// corners) is drawn as whatever pixels it covers. Only inputs that make a
// shape self-contradictory return an error, and such a shape writes nothing.
package shapes
