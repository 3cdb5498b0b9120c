package synteny

import (
	"github.com/jbeda/geom"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/synteny-tools/synplot/pkg/render"
	"github.com/synteny-tools/synplot/pkg/styles"
)

// LegendOptions toggles the legend's optional parts.
type LegendOptions struct {
	Text   bool // caption each sample glyph
	Repeat bool // include the extra-feature sample
}

// DrawGeneLegend records sample glyphs explaining the figure's symbols: a
// forward gene at x1, a reverse gene at x2, optionally an extra-feature
// glyph between them. Each sample is d wide.
func DrawGeneLegend(list *render.List, x1, x2, ytop float64, st styles.Style, opts LegendOptions) {
	const d = 0.04
	black := colorful.Color{}

	list.Polygon(taperedQuad(x1, x1+d, ytop, st.GlyphHeight),
		render.ShapeStyle{Fill: &st.Forward, Z: zGlyph})
	list.Polygon(taperedQuad(x2+d, x2, ytop, st.GlyphHeight),
		render.ShapeStyle{Fill: &st.Backward, Z: zGlyph})

	caption := func(x float64, s string) {
		list.Text(geom.Coord{X: x, Y: ytop + d/2}, s, 0,
			render.TextStyle{Color: black, Size: 10, HA: "center", VA: "center", Z: zLabel})
	}
	if opts.Text {
		caption(x1+d/2, "gene (+)")
		caption(x2+d/2, "gene (-)")
	}

	if opts.Repeat {
		xr := (x1 + x2 + d) / 2
		list.Polygon(rectQuad(xr-d/2, xr+d/2, ytop, st.GlyphHeight*3/4),
			render.ShapeStyle{Fill: &st.Extra, Z: zExtra})
		caption(xr, "repeat")
	}
}
