// Command shapesview shows random shape scenes in a window.
//
// Space, Enter or R draws a new scene; Escape or Q quits.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/integration/ebitenview"
	"github.com/gogpu/shapes/placement"
	"github.com/gogpu/shapes/surface"
)

func main() {
	var (
		width   = flag.Int("width", 500, "canvas width")
		height  = flag.Int("height", 500, "canvas height")
		seed    = flag.Uint64("seed", 0, "random seed of the first scene (0 picks one from the clock)")
		circles = flag.Int("circles", 50, "number of random circles")
		scale   = flag.Int("scale", 2, "window scale factor")
		verbose = flag.Bool("v", false, "log every drawn shape")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	shapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	v, err := ebitenview.New(*width, *height, func(dst *surface.ImageSurface, gen int) error {
		r := placement.New(*seed + uint64(gen))
		scene := placement.Scene(r, dst.Width(), dst.Height(), *circles)
		return shapes.Render(dst, scene, shapes.WithColors(shapes.RandomColors(r)))
	})
	if err != nil {
		log.Fatalf("Failed to create view: %v", err)
	}

	if err := v.Run("shapes", *scale); err != nil {
		log.Fatalf("View failed: %v", err)
	}
}
