package synteny

import (
	"github.com/jbeda/geom"

	"github.com/synteny-tools/synplot/pkg/render"
	"github.com/synteny-tools/synplot/pkg/styles"
	"github.com/synteny-tools/synplot/pkg/units"
)

// scaleBarCandidates are the admissible bar lengths in bp: {1,2,5}×10^k for
// k in 3..5, in ascending order.
var scaleBarCandidates = []int{
	1000, 2000, 5000,
	10000, 20000, 50000,
	100000, 200000, 500000,
}

// BestScaleBar picks the candidate length whose canvas width under the
// given scale is closest to the target fraction. Ties go to the shorter
// candidate, so the choice is deterministic.
func BestScaleBar(scale, target float64) int {
	best := scaleBarCandidates[0]
	bestDist := abs(float64(best)/scale - target)
	for _, c := range scaleBarCandidates[1:] {
		if d := abs(float64(c)/scale - target); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// DrawScaleBar records a horizontal reference bar with end ticks and a
// length label, anchored at the style's scale-bar position.
func DrawScaleBar(list *render.List, scale float64, st styles.Style) {
	candidate := BestScaleBar(scale, st.ScaleBarFraction)
	width := float64(candidate) / scale

	x, y, tick := st.ScaleBarX, st.ScaleBarY, st.ScaleBarTick
	a, b := x-width/2, x+width/2

	stroke := render.ShapeStyle{Stroke: &st.ScaleBar, StrokeWidth: 2, Z: zScaleBar}
	list.Line(geom.Coord{X: a, Y: y - tick}, geom.Coord{X: a, Y: y + tick}, stroke)
	list.Line(geom.Coord{X: b, Y: y - tick}, geom.Coord{X: b, Y: y + tick}, stroke)
	list.Line(geom.Coord{X: a, Y: y}, geom.Coord{X: b, Y: y}, stroke)

	list.Text(geom.Coord{X: x, Y: y + 0.02}, units.HumanSize(candidate, 0), 0,
		render.TextStyle{Color: st.ScaleBar, Size: 12, HA: "center", VA: "center", Z: zScaleBar})
}
