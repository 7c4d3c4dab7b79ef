// Command shapesdemo renders a random scene of rasterized shapes to an image file.
//
// The output format follows the file extension (.png, .bmp, .tif/.tiff).
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/label"
	"github.com/gogpu/shapes/placement"
	"github.com/gogpu/shapes/surface"
)

func main() {
	var (
		width   = flag.Int("width", 1000, "image width")
		height  = flag.Int("height", 1000, "image height")
		output  = flag.String("output", "image.png", "output file (.png, .bmp, .tif)")
		seed    = flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
		circles = flag.Int("circles", 50, "number of random circles")
		labels  = flag.Bool("labels", false, "caption every shape with its kind")
		scale   = flag.Int("scale", 1, "integer upscale factor of the saved image")
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
	r := placement.New(*seed)

	s := surface.NewImageSurface(*width, *height)
	s.Clear(shapes.Black)

	scene := placement.Scene(r, s.Width(), s.Height(), *circles)
	colors := shapes.RandomColors(r)

	var err error
	if *labels {
		err = drawLabeled(s, scene, colors)
	} else {
		err = shapes.Render(s, scene, shapes.WithColors(colors))
	}
	if err != nil {
		// Skipped shapes are already logged; the rest of the scene is still saved.
		shapes.Logger().Warn("shapesdemo: scene incomplete", "err", err)
	}

	if *scale > 1 {
		err = s.SaveScaledFile(*output, *scale)
	} else {
		err = s.SaveFile(*output)
	}
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	shapes.Logger().Info("shapesdemo: image saved",
		"path", *output, "width", s.Width(), "height", s.Height(), "seed", *seed, "shapes", len(scene))
}

// drawLabeled renders the scene one shape at a time so each caption can be
// placed above the pixels its shape actually covered.
func drawLabeled(s *surface.ImageSurface, scene []shapes.Shape, colors shapes.ColorSource) error {
	w := label.New()
	bounds := surface.NewBounds(s)

	var errs []error
	for _, item := range scene {
		bounds.Reset()
		c := colors.Next()
		if err := shapes.Render(bounds, []shapes.Shape{item}, shapes.WithColors(shapes.Solid(c))); err != nil {
			errs = append(errs, err)
			continue
		}
		if r, ok := bounds.Rect(); ok {
			w.Caption(s, item, r, c)
		}
	}
	return errors.Join(errs...)
}
