// Package geometry implements the coordinate transforms behind synteny
// figures: mapping genomic base-pair positions onto a shared [0,1]² canvas
// under per-track rotation and scaling.
//
// All transforms are pure functions over explicit value types. Rotation is
// always about a track's own pivot, never global, and is computed in the
// device frame defined by the figure aspect before being mapped back to
// canvas space. This matters for everything derived from rotated points
// (Bezier control points, label offsets): a 45° track on an 8×7 figure does
// not appear at 45° on screen, and downstream geometry has to agree with
// what is actually drawn.
package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Aspect is the figure's width and height (in abstract units, typically
// inches). Only the ratio matters. The zero value is treated as square.
type Aspect struct {
	W, H float64
}

// Square is the aspect of a square figure, where device and canvas angles
// coincide.
var Square = Aspect{W: 1, H: 1}

func (a Aspect) orSquare() Aspect {
	if a.W <= 0 || a.H <= 0 {
		return Square
	}
	return a
}

// RotateAbout rotates p by deg degrees counter-clockwise about pivot.
// The rotation is applied in the device frame (canvas coordinates scaled by
// the aspect) and the result is renormalized back into canvas space, so a
// subsequent RotateAbout with -deg restores p exactly up to floating-point
// rounding.
func RotateAbout(p, pivot geom.Coord, deg float64, a Aspect) geom.Coord {
	a = a.orSquare()
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)

	dx := (p.X - pivot.X) * a.W
	dy := (p.Y - pivot.Y) * a.H
	rx := dx*cos - dy*sin
	ry := dx*sin + dy*cos

	return geom.Coord{X: pivot.X + rx/a.W, Y: pivot.Y + ry/a.H}
}

// TransformAngle maps a canvas-space angle in degrees to the angle at which
// it is actually displayed under the given aspect. Text drawn along a
// rotated track baseline uses this so the glyphs follow the baseline on
// non-square figures.
func TransformAngle(deg float64, a Aspect) float64 {
	a = a.orSquare()
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return math.Atan2(sin*a.H, cos*a.W) * 180 / math.Pi
}
