package render

type config struct {
	width  float64
	height float64
	dpi    float64
}

func defaultConfig() config {
	return config{width: 800, height: 700, dpi: 100}
}

// Option adjusts sink output.
type Option func(*config)

// WithSize sets the output size in device pixels.
func WithSize(w, h float64) Option {
	return func(c *config) { c.width, c.height = w, h }
}

// WithDPI sets the resolution used to convert point sizes to pixels.
func WithDPI(dpi float64) Option {
	return func(c *config) { c.dpi = dpi }
}

func buildConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// fontPixels converts a point size to device pixels at the configured DPI.
func (c config) fontPixels(pt float64) float64 {
	return pt * c.dpi / 72
}

// device maps unit-canvas coordinates to device pixels (y flipped).
func (c config) device(x, y float64) (float64, float64) {
	return x * c.width, (1 - y) * c.height
}
