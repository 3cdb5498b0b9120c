// Package synteny draws multi-track synteny figures: chromosome regions on
// a shared unit canvas, Bezier ribbons linking orthologous genes between
// tracks, and an optional scale bar.
//
// The drawing surface is a recording display list (pkg/render); nothing
// here touches pixels. Composition lives in Compose, the per-track work in
// DrawRegion, ribbons in DrawShade.
package synteny

import (
	"github.com/jbeda/geom"

	"github.com/synteny-tools/synplot/pkg/bed"
	"github.com/synteny-tools/synplot/pkg/blocks"
	"github.com/synteny-tools/synplot/pkg/errors"
	"github.com/synteny-tools/synplot/pkg/geometry"
	"github.com/synteny-tools/synplot/pkg/layout"
	"github.com/synteny-tools/synplot/pkg/render"
	"github.com/synteny-tools/synplot/pkg/styles"
	"github.com/synteny-tools/synplot/pkg/units"
)

// Z-order bands, low to high: baselines, then ribbons, then glyphs, with
// labels on top. Highlighted ribbons sit above ordinary ones.
const (
	zBaseline  = 1
	zShade     = 1
	zExtra     = 2
	zHighlight = 2
	zGlyph     = 3
	zScaleBar  = 4
	zLabel     = 10
)

// RegionOptions carries the per-figure toggles a Region needs.
type RegionOptions struct {
	// Switch maps chromosome names to display names.
	Switch map[string]string

	// ChrLabel and LocLabel toggle the chromosome-name and coordinate-range
	// labels. The coordinate label is only drawn alongside a chromosome
	// label.
	ChrLabel bool
	LocLabel bool

	// Extra features (repeats and the like) drawn as shorter glyphs under
	// the gene row. Already pruned by the caller.
	Extra []bed.Feature
}

// Region is one laid-out track: its coordinate mapper plus the canvas
// anchors of every gene in its window.
type Region struct {
	Mapper  *geometry.Mapper
	Anchors map[string]GenePos
}

// Y returns the track's pivot height, which ribbon midpoints are computed
// from.
func (r *Region) Y() float64 { return r.Mapper.Pivot.Y }

// DrawRegion lays out one track and records its primitives: baseline, one
// directional glyph per gene, extra-feature glyphs, and labels. Hidden
// tracks compute anchors but draw nothing. scale is the figure-wide bp per
// canvas unit, before the track's ratio is applied.
func DrawRegion(list *render.List, t layout.Track, ext blocks.Extent, b *bed.Bed,
	scale float64, st styles.Style, asp geometry.Aspect, opts RegionOptions) (*Region, error) {

	if t.Ratio <= 0 {
		return nil, errors.New(errors.ErrCodeGeometry, "track ratio %v must be positive", t.Ratio)
	}
	scale /= t.Ratio

	window := geometry.Window{
		StartBp:     ext.Start.Start,
		EndBp:       ext.End.End,
		Orientation: ext.Orientation,
	}
	m, err := geometry.NewMapper(geom.Coord{X: t.X, Y: t.Y}, t.Rotation, scale, window, asp)
	if err != nil {
		return nil, err
	}

	r := &Region{Mapper: m, Anchors: make(map[string]GenePos)}

	if !t.Hidden {
		a, bp := m.Baseline()
		list.Line(a, bp, render.ShapeStyle{Stroke: &st.Baseline, StrokeWidth: 2, Z: zBaseline})
	}

	for _, g := range b.Slice(ext.StartIndex, ext.EndIndex) {
		gstart, gend := g.Start, g.End
		strand := g.Strand
		if strand == '-' {
			gstart, gend = gend, gstart
		}
		// A reverse-oriented window flips apparent strandedness.
		if ext.Orientation == '-' {
			if strand == '-' {
				strand = '+'
			} else {
				strand = '-'
			}
		}

		r.Anchors[g.Accn] = GenePos{A: m.Map(gstart), B: m.Map(gend)}

		if t.Hidden {
			continue
		}
		color := st.Forward
		if strand == '-' {
			color = st.Backward
		}
		quad := taperedQuad(m.Offset(gstart), m.Offset(gend), t.Y, st.GlyphHeight)
		list.Polygon(rotateQuad(quad, m), render.ShapeStyle{Fill: &color, Z: zGlyph})
	}

	if !t.Hidden {
		for _, g := range opts.Extra {
			quad := rectQuad(m.Offset(g.Start), m.Offset(g.End), t.Y, st.GlyphHeight*3/4)
			list.Polygon(rotateQuad(quad, m), render.ShapeStyle{Fill: &st.Extra, Z: zExtra})
		}
		drawLabels(list, t, ext, m, st, asp, opts)
	}

	return r, nil
}

func drawLabels(list *render.List, t layout.Track, ext blocks.Extent,
	m *geometry.Mapper, st styles.Style, asp geometry.Aspect, opts RegionOptions) {

	if !opts.ChrLabel {
		return
	}

	chr := ext.Chrom
	if name, ok := opts.Switch[chr]; ok {
		chr = name
	}
	if t.Label != "" {
		chr = t.Label
	}

	startBp, endBp := ext.Start.Start, ext.End.End
	if ext.Orientation == '-' {
		startBp, endBp = endBp, startBp
	}

	xx := t.X
	ha := "center"
	switch t.HA {
	case layout.AlignLeft:
		xx = m.XStart() - st.HPad
		ha = "right"
	case layout.AlignRight:
		xx = m.XEnd() + st.HPad
		ha = "left"
	}

	// Steep tracks push their labels further out so they clear the glyphs.
	damp := 1.0
	if rot := abs(t.Rotation); rot > st.LabelDampen {
		damp = rot / st.LabelDampen
	}
	yy := t.Y
	switch t.VA {
	case layout.AlignTop:
		yy += damp * st.Pad
	case layout.AlignBottom:
		yy -= damp * st.Pad
	}

	angle := geometry.TransformAngle(t.Rotation, asp)
	chrStyle := render.TextStyle{Color: t.Color, Size: 12, HA: ha, VA: "center", Z: zLabel}

	if opts.LocLabel {
		locStyle := render.TextStyle{Color: st.LocLabel, Size: 10, HA: ha, VA: "center", Z: zLabel}
		list.Text(geom.Coord{X: xx, Y: yy + st.VPad}, chr, angle, chrStyle)
		list.Text(geom.Coord{X: xx, Y: yy - st.VPad}, units.RangeLabel(startBp, endBp), angle, locStyle)
		return
	}
	list.Text(geom.Coord{X: xx, Y: yy}, chr, angle, chrStyle)
}

// taperedQuad is the directional gene glyph: full height at the start edge,
// a third of it at the end edge, so the narrow end points along
// transcription.
func taperedQuad(x1, x2, y, h float64) []geom.Coord {
	return []geom.Coord{
		{X: x1, Y: y - h/2},
		{X: x1, Y: y + h/2},
		{X: x2, Y: y + h/6},
		{X: x2, Y: y - h/6},
	}
}

// rectQuad is the undirected feature glyph.
func rectQuad(x1, x2, y, h float64) []geom.Coord {
	return []geom.Coord{
		{X: x1, Y: y - h/2},
		{X: x1, Y: y + h/2},
		{X: x2, Y: y + h/2},
		{X: x2, Y: y - h/2},
	}
}

func rotateQuad(pts []geom.Coord, m *geometry.Mapper) []geom.Coord {
	out := make([]geom.Coord, len(pts))
	for i, p := range pts {
		out[i] = geometry.RotateAbout(p, m.Pivot, m.Rotation, m.Aspect)
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
