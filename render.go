package shapes

import (
	"errors"
	"fmt"
)

// Render draws every shape onto dst, taking one color per shape from the
// configured ColorSource.
//
// A shape that fails is skipped without touching dst; the remaining shapes are
// still drawn. The returned error joins the failures of all skipped shapes and
// is nil when every shape was drawn.
func Render(dst Sink, items []Shape, opts ...RenderOption) error {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := Logger()
	var errs []error
	for i, s := range items {
		if s == nil {
			continue
		}
		c := o.colors.Next()
		kind := Kind(s)
		if err := s.Draw(dst, c); err != nil {
			log.Warn("shapes: skipping shape", "index", i, "kind", kind, "err", err)
			errs = append(errs, fmt.Errorf("shape %d (%s): %w", i, kind, err))
			continue
		}
		log.Debug("shapes: drew shape", "index", i, "kind", kind,
			"color", fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A))
	}
	return errors.Join(errs...)
}
