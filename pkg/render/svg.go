package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

// RenderSVG emits the display list as a standalone SVG document.
func RenderSVG(l *List, opts ...Option) []byte {
	cfg := buildConfig(opts)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		cfg.width, cfg.height, cfg.width, cfg.height)
	fmt.Fprintf(&buf, `<rect width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", cfg.width, cfg.height)

	for _, op := range l.Ops() {
		switch o := op.(type) {
		case Line:
			renderSVGLine(&buf, cfg, o)
		case Path:
			renderSVGPath(&buf, cfg, o)
		case Polygon:
			renderSVGPolygon(&buf, cfg, o)
		case Text:
			renderSVGText(&buf, cfg, o)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSVGLine(buf *bytes.Buffer, cfg config, o Line) {
	x1, y1 := cfg.device(o.From.X, o.From.Y)
	x2, y2 := cfg.device(o.To.X, o.To.Y)
	fmt.Fprintf(buf, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s/>`+"\n",
		x1, y1, x2, y2, paintAttrs(o.Style))
}

func renderSVGPath(buf *bytes.Buffer, cfg config, o Path) {
	var d strings.Builder
	for _, seg := range o.Segs {
		switch seg.Op {
		case SegMove:
			x, y := cfg.device(seg.To.X, seg.To.Y)
			fmt.Fprintf(&d, "M %.2f %.2f ", x, y)
		case SegLine:
			x, y := cfg.device(seg.To.X, seg.To.Y)
			fmt.Fprintf(&d, "L %.2f %.2f ", x, y)
		case SegCurve:
			c1x, c1y := cfg.device(seg.C1.X, seg.C1.Y)
			c2x, c2y := cfg.device(seg.C2.X, seg.C2.Y)
			x, y := cfg.device(seg.To.X, seg.To.Y)
			fmt.Fprintf(&d, "C %.2f %.2f, %.2f %.2f, %.2f %.2f ", c1x, c1y, c2x, c2y, x, y)
		case SegClose:
			d.WriteString("Z ")
		}
	}
	fmt.Fprintf(buf, `<path d="%s"%s/>`+"\n", strings.TrimSpace(d.String()), paintAttrs(o.Style))
}

func renderSVGPolygon(buf *bytes.Buffer, cfg config, o Polygon) {
	var pts strings.Builder
	for i, p := range o.Points {
		if i > 0 {
			pts.WriteByte(' ')
		}
		x, y := cfg.device(p.X, p.Y)
		fmt.Fprintf(&pts, "%.2f,%.2f", x, y)
	}
	fmt.Fprintf(buf, `<polygon points="%s"%s/>`+"\n", pts.String(), paintAttrs(o.Style))
}

func renderSVGText(buf *bytes.Buffer, cfg config, o Text) {
	x, y := cfg.device(o.Pos.X, o.Pos.Y)

	anchor := "middle"
	switch o.Style.HA {
	case "left":
		anchor = "start"
	case "right":
		anchor = "end"
	}
	baseline := "central"
	switch o.Style.VA {
	case "top":
		baseline = "hanging"
	case "bottom":
		baseline = "auto"
	}

	transform := ""
	if o.Rotation != 0 {
		// Canvas rotation is counterclockwise; SVG rotates clockwise in
		// its y-down frame.
		transform = fmt.Sprintf(` transform="rotate(%.2f %.2f %.2f)"`, -o.Rotation, x, y)
	}

	fmt.Fprintf(buf,
		`<text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" fill="%s" text-anchor="%s" dominant-baseline="%s"%s>%s</text>`+"\n",
		x, y, cfg.fontPixels(o.Style.Size), o.Style.Color.Hex(), anchor, baseline,
		transform, escapeText(o.S))
}

func paintAttrs(s ShapeStyle) string {
	var b strings.Builder
	if s.Fill != nil {
		fmt.Fprintf(&b, ` fill="%s"`, s.Fill.Hex())
		if a := s.alpha(); a < 1 {
			fmt.Fprintf(&b, ` fill-opacity="%.3f"`, a)
		}
	} else {
		b.WriteString(` fill="none"`)
	}
	if s.Stroke != nil {
		fmt.Fprintf(&b, ` stroke="%s" stroke-width="%.2f"`, s.Stroke.Hex(), strokeWidth(s))
		if a := s.alpha(); a < 1 {
			fmt.Fprintf(&b, ` stroke-opacity="%.3f"`, a)
		}
	}
	return b.String()
}

func strokeWidth(s ShapeStyle) float64 {
	if s.StrokeWidth == 0 {
		return 1
	}
	return s.StrokeWidth
}

func escapeText(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
