package synteny

import (
	"github.com/jbeda/geom"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/synteny-tools/synplot/pkg/render"
)

// ShadeStyle paints one ribbon. A nil Stroke draws fill only.
type ShadeStyle struct {
	Fill        colorful.Color
	Stroke      *colorful.Color
	StrokeWidth float64
	Alpha       float64
	Z           int
}

// DrawShade records the ribbon connecting gene a (on one track) to gene b
// (on another). Both long edges are cubic Beziers whose control points sit
// at ymid, which pulls the ribbon through that height and keeps the two
// edges parallel where the anchors are vertically aligned.
func DrawShade(list *render.List, a, b GenePos, ymid float64, ss ShadeStyle) {
	mid := func(p geom.Coord) geom.Coord { return geom.Coord{X: p.X, Y: ymid} }

	segs := []render.Seg{
		render.MoveTo(a.A),
		render.CurveTo(mid(a.A), mid(b.A), b.A),
		render.LineTo(b.B),
		render.CurveTo(mid(b.B), mid(a.B), a.B),
		render.ClosePath(),
	}
	list.Path(segs, render.ShapeStyle{
		Fill:        &ss.Fill,
		Stroke:      ss.Stroke,
		StrokeWidth: ss.StrokeWidth,
		Alpha:       ss.Alpha,
		Z:           ss.Z,
	})
}
