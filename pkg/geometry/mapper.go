package geometry

import (
	"github.com/jbeda/geom"

	"github.com/synteny-tools/synplot/pkg/errors"
)

// Window is the visible genomic window of one track. StartBp and EndBp are
// the low and high coordinates of the window; Orientation '-' flips which
// end maps to the left edge of the track.
type Window struct {
	StartBp     int
	EndBp       int
	Orientation byte // '+' or '-'
}

// Span returns the window length in base pairs.
func (w Window) Span() int {
	return w.EndBp - w.StartBp
}

// origin is the genomic coordinate that maps to the track's left edge.
func (w Window) origin() int {
	if w.Orientation == '-' {
		return w.EndBp
	}
	return w.StartBp
}

// Mapper is the per-track affine map from genomic positions to canvas
// points: a 1-D linear embedding along the track baseline followed by a
// rotation about the track's pivot. A Mapper is immutable once built; Map
// is a pure function of its inputs and reproducible to full floating-point
// precision.
type Mapper struct {
	Pivot    geom.Coord
	Rotation float64 // degrees
	Scale    float64 // bp per canvas unit, already ratio-adjusted
	Window   Window
	Aspect   Aspect

	flank float64
}

// NewMapper validates the window and scale and returns the track mapper.
// A zero-length window or non-positive scale is degenerate input and fails
// with a GEOMETRY_ERROR rather than being clamped.
func NewMapper(pivot geom.Coord, rotation, scale float64, w Window, a Aspect) (*Mapper, error) {
	if w.Span() <= 0 {
		return nil, errors.New(errors.ErrCodeGeometry,
			"degenerate window [%d, %d]: span must be positive", w.StartBp, w.EndBp)
	}
	if scale <= 0 {
		return nil, errors.New(errors.ErrCodeGeometry, "degenerate scale %v", scale)
	}
	return &Mapper{
		Pivot:    pivot,
		Rotation: rotation,
		Scale:    scale,
		Window:   w,
		Aspect:   a,
		flank:    float64(w.Span()) / scale / 2,
	}, nil
}

// Flank is half the track's horizontal extent in canvas units; the baseline
// runs from XStart to XEnd through the pivot.
func (m *Mapper) Flank() float64 { return m.flank }

// XStart returns the unrotated left edge of the track baseline.
func (m *Mapper) XStart() float64 { return m.Pivot.X - m.flank }

// XEnd returns the unrotated right edge of the track baseline.
func (m *Mapper) XEnd() float64 { return m.Pivot.X + m.flank }

// Offset maps a genomic position to its unrotated canvas x coordinate.
// Distance is measured from the window origin, so '-' orientation windows
// grow leftward from their high coordinate.
func (m *Mapper) Offset(bp int) float64 {
	d := bp - m.Window.origin()
	if d < 0 {
		d = -d
	}
	return m.XStart() + float64(d)/m.Scale
}

// Map returns the final canvas position of a genomic coordinate: the 1-D
// offset placed on the baseline and rotated about the pivot.
func (m *Mapper) Map(bp int) geom.Coord {
	p := geom.Coord{X: m.Offset(bp), Y: m.Pivot.Y}
	return RotateAbout(p, m.Pivot, m.Rotation, m.Aspect)
}

// Baseline returns the two rotated endpoints of the track baseline.
func (m *Mapper) Baseline() (geom.Coord, geom.Coord) {
	a := RotateAbout(geom.Coord{X: m.XStart(), Y: m.Pivot.Y}, m.Pivot, m.Rotation, m.Aspect)
	b := RotateAbout(geom.Coord{X: m.XEnd(), Y: m.Pivot.Y}, m.Pivot, m.Rotation, m.Aspect)
	return a, b
}
