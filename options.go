package shapes

// RenderOption configures a Render call.
// Use functional options to customize rendering.
//
// Example:
//
//	// Every shape white
//	err := shapes.Render(img, scene)
//
//	// Random color per shape
//	rng := rand.New(rand.NewPCG(1, 2))
//	err := shapes.Render(img, scene, shapes.WithColors(shapes.RandomColors(rng)))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for Render.
type renderOptions struct {
	colors ColorSource
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		colors: Solid(White),
	}
}

// WithColors sets the strategy that picks one color per shape.
// A nil source keeps the default.
func WithColors(cs ColorSource) RenderOption {
	return func(o *renderOptions) {
		if cs != nil {
			o.colors = cs
		}
	}
}
