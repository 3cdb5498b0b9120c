package render

import (
	"bytes"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/synteny-tools/synplot/pkg/errors"
	"github.com/synteny-tools/synplot/pkg/fonts"
)

// RenderPNG rasterizes the display list.
func RenderPNG(l *List, opts ...Option) ([]byte, error) {
	cfg := buildConfig(opts)

	dc := gg.NewContext(int(cfg.width), int(cfg.height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, op := range l.Ops() {
		switch o := op.(type) {
		case Line:
			rasterLine(dc, cfg, o)
		case Path:
			rasterPath(dc, cfg, o)
		case Polygon:
			rasterPolygon(dc, cfg, o)
		case Text:
			if err := rasterText(dc, cfg, o); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func rasterLine(dc *gg.Context, cfg config, o Line) {
	if o.Style.Stroke == nil {
		return
	}
	x1, y1 := cfg.device(o.From.X, o.From.Y)
	x2, y2 := cfg.device(o.To.X, o.To.Y)
	setColor(dc, *o.Style.Stroke, o.Style.alpha())
	dc.SetLineWidth(strokeWidth(o.Style))
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

func rasterPath(dc *gg.Context, cfg config, o Path) {
	dc.NewSubPath()
	for _, seg := range o.Segs {
		switch seg.Op {
		case SegMove:
			x, y := cfg.device(seg.To.X, seg.To.Y)
			dc.MoveTo(x, y)
		case SegLine:
			x, y := cfg.device(seg.To.X, seg.To.Y)
			dc.LineTo(x, y)
		case SegCurve:
			c1x, c1y := cfg.device(seg.C1.X, seg.C1.Y)
			c2x, c2y := cfg.device(seg.C2.X, seg.C2.Y)
			x, y := cfg.device(seg.To.X, seg.To.Y)
			dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
		case SegClose:
			dc.ClosePath()
		}
	}
	paintCurrentPath(dc, o.Style)
}

func rasterPolygon(dc *gg.Context, cfg config, o Polygon) {
	if len(o.Points) == 0 {
		return
	}
	dc.NewSubPath()
	for i, p := range o.Points {
		x, y := cfg.device(p.X, p.Y)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	paintCurrentPath(dc, o.Style)
}

func paintCurrentPath(dc *gg.Context, s ShapeStyle) {
	a := s.alpha()
	if s.Fill != nil {
		setColor(dc, *s.Fill, a)
		if s.Stroke != nil {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if s.Stroke != nil {
		setColor(dc, *s.Stroke, a)
		dc.SetLineWidth(strokeWidth(s))
		dc.Stroke()
	}
	dc.ClearPath()
}

func rasterText(dc *gg.Context, cfg config, o Text) error {
	face, err := fonts.Face(cfg.fontPixels(o.Style.Size))
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	setColor(dc, o.Style.Color, 1)

	x, y := cfg.device(o.Pos.X, o.Pos.Y)

	ax := 0.5
	switch o.Style.HA {
	case "left":
		ax = 0
	case "right":
		ax = 1
	}
	// gg anchors so that ay=1 puts the given point at the top of the text
	// box in the y-down device frame.
	ay := 0.5
	switch o.Style.VA {
	case "top":
		ay = 1
	case "bottom":
		ay = 0
	}

	if o.Rotation != 0 {
		dc.Push()
		dc.RotateAbout(gg.Radians(-o.Rotation), x, y)
		dc.DrawStringAnchored(o.S, x, y, ax, ay)
		dc.Pop()
		return nil
	}
	dc.DrawStringAnchored(o.S, x, y, ax, ay)
	return nil
}

func setColor(dc *gg.Context, c colorful.Color, alpha float64) {
	dc.SetRGBA(c.R, c.G, c.B, alpha)
}
