// Package render records drawing primitives into a display list and emits
// them through format sinks (SVG, PNG).
//
// All positions live on the unit canvas: x and y in [0, 1], y growing
// upward. Sinks scale to device pixels and flip the y axis. Every primitive
// carries a z-order; sinks paint in stable z-order, so primitives recorded
// earlier stay below later ones at equal z.
package render

import (
	"cmp"
	"slices"

	"github.com/jbeda/geom"
	"github.com/lucasb-eyer/go-colorful"
)

// ShapeStyle describes how a line, path or polygon is painted. A nil Fill
// or Stroke skips that phase. Alpha zero is treated as opaque.
type ShapeStyle struct {
	Fill        *colorful.Color
	Stroke      *colorful.Color
	StrokeWidth float64
	Alpha       float64
	Z           int
}

func (s ShapeStyle) alpha() float64 {
	if s.Alpha == 0 {
		return 1
	}
	return s.Alpha
}

// TextStyle describes label painting. Size is in points at the sink's DPI.
type TextStyle struct {
	Color colorful.Color
	Size  float64
	HA    string // left, center, right
	VA    string // top, center, bottom
	Z     int
}

// SegOp is a path segment verb.
type SegOp int

const (
	SegMove SegOp = iota
	SegLine
	SegCurve
	SegClose
)

// Seg is one segment of a filled path. C1 and C2 are the cubic control
// points, used by SegCurve only.
type Seg struct {
	Op         SegOp
	C1, C2, To geom.Coord
}

func MoveTo(p geom.Coord) Seg          { return Seg{Op: SegMove, To: p} }
func LineTo(p geom.Coord) Seg          { return Seg{Op: SegLine, To: p} }
func CurveTo(c1, c2, p geom.Coord) Seg { return Seg{Op: SegCurve, C1: c1, C2: c2, To: p} }
func ClosePath() Seg                   { return Seg{Op: SegClose} }

// Op is one recorded primitive.
type Op interface {
	z() int
}

// Line is a straight stroke between two points.
type Line struct {
	From, To geom.Coord
	Style    ShapeStyle
}

// Path is a filled (and optionally stroked) outline built from segments.
type Path struct {
	Segs  []Seg
	Style ShapeStyle
}

// Polygon is a closed straight-edged outline.
type Polygon struct {
	Points []geom.Coord
	Style  ShapeStyle
}

// Text is a label anchored at Pos, rotated counterclockwise by Rotation
// degrees about its anchor.
type Text struct {
	Pos      geom.Coord
	S        string
	Rotation float64
	Style    TextStyle
}

func (o Line) z() int    { return o.Style.Z }
func (o Path) z() int    { return o.Style.Z }
func (o Polygon) z() int { return o.Style.Z }
func (o Text) z() int    { return o.Style.Z }

// List is a recording canvas.
type List struct {
	ops []Op
}

func NewList() *List { return &List{} }

func (l *List) Line(from, to geom.Coord, s ShapeStyle) {
	l.ops = append(l.ops, Line{From: from, To: to, Style: s})
}

func (l *List) Path(segs []Seg, s ShapeStyle) {
	l.ops = append(l.ops, Path{Segs: segs, Style: s})
}

func (l *List) Polygon(pts []geom.Coord, s ShapeStyle) {
	l.ops = append(l.ops, Polygon{Points: pts, Style: s})
}

func (l *List) Text(pos geom.Coord, s string, rotation float64, ts TextStyle) {
	l.ops = append(l.ops, Text{Pos: pos, S: s, Rotation: rotation, Style: ts})
}

// Len reports the number of recorded primitives.
func (l *List) Len() int { return len(l.ops) }

// Ops returns the primitives in paint order: stable-sorted by z.
func (l *List) Ops() []Op {
	out := slices.Clone(l.ops)
	slices.SortStableFunc(out, func(a, b Op) int {
		return cmp.Compare(a.z(), b.z())
	})
	return out
}
