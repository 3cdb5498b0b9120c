// Package styles holds the explicit style configuration consumed by the
// synteny renderers. There is no process-wide theme state: a Style value is
// built once (defaults, optionally overlaid with a TOML file) and passed to
// everything that draws.
package styles

import colorful "github.com/lucasb-eyer/go-colorful"

// Style is the full visual configuration of a synteny figure.
type Style struct {
	// Strand glyph colors: one for '+' genes, one for '-'.
	Forward  colorful.Color
	Backward colorful.Color

	// Extra (non-gene) features, e.g. repeats.
	Extra colorful.Color

	// Track baseline and secondary label color.
	Baseline colorful.Color
	LocLabel colorful.Color

	// Ribbon fill for ordinary (non-highlighted) links.
	ShadeFill colorful.Color

	// Scale bar stroke and label color.
	ScaleBar colorful.Color

	// Glyph height in canvas units. Extra features render at 3/4 of this.
	GlyphHeight float64

	// Vertical clearance between a track and a biased ribbon midpoint, and
	// the label offsets around a pivot.
	Pad  float64
	VPad float64
	HPad float64

	// Rotation (degrees) beyond which label offsets grow with steepness to
	// keep them clear of glyphs.
	LabelDampen float64

	// Extra features spanning less than this fraction of the track window
	// are pruned before rendering. Display-density control, not correctness.
	PruneFraction float64

	// Scale bar target width as a fraction of canvas width, and its anchor
	// position with end-cap half-height.
	ScaleBarFraction float64
	ScaleBarX        float64
	ScaleBarY        float64
	ScaleBarTick     float64

	// The longest track occupies this fraction of canvas width; it fixes
	// the shared bp-per-canvas-unit scale.
	SpanFraction float64

	// Figure proportions (width x height). Rotation happens in this frame.
	FigWidth  float64
	FigHeight float64
}

// Default returns the stock style.
func Default() Style {
	return Style{
		Forward:  MustColor("b"),
		Backward: MustColor("g"),
		Extra:    MustColor("#ff7f00"),
		Baseline: MustColor("gray"),
		LocLabel: MustColor("lightslategrey"),

		ShadeFill: MustColor("gainsboro"),
		ScaleBar:  MustColor("lightslategrey"),

		GlyphHeight: 0.012,
		Pad:         0.05,
		VPad:        0.015,
		HPad:        0.02,
		LabelDampen: 40,

		PruneFraction: 0.001,

		ScaleBarFraction: 0.12,
		ScaleBarX:        0.2,
		ScaleBarY:        0.96,
		ScaleBarTick:     0.005,

		SpanFraction: 0.65,

		FigWidth:  8,
		FigHeight: 7,
	}
}
