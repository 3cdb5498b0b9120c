package synteny

import (
	"github.com/charmbracelet/log"

	"github.com/synteny-tools/synplot/pkg/bed"
	"github.com/synteny-tools/synplot/pkg/blocks"
	"github.com/synteny-tools/synplot/pkg/errors"
	"github.com/synteny-tools/synplot/pkg/geometry"
	"github.com/synteny-tools/synplot/pkg/layout"
	"github.com/synteny-tools/synplot/pkg/render"
	"github.com/synteny-tools/synplot/pkg/styles"
)

// Options configures figure composition. The zero value draws with default
// style, both labels off, no switch map, no extras and no scale bar.
type Options struct {
	// Switch maps chromosome names to display names.
	Switch map[string]string

	// Extra is an optional feature file (e.g. repeats) whose features are
	// extracted per track window and drawn as secondary glyphs.
	Extra *bed.Bed

	// ChrLabel and LocLabel toggle the track labels.
	ChrLabel bool
	LocLabel bool

	// ScaleBar adds the genomic reference bar.
	ScaleBar bool

	// Style overrides the default style when non-nil.
	Style *styles.Style

	// Logger defaults to log.Default.
	Logger *log.Logger
}

func (o Options) style() styles.Style {
	if o.Style != nil {
		return *o.Style
	}
	return styles.Default()
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// Figure is a composed synteny diagram: the recorded display list plus the
// layout artifacts tests and callers inspect.
type Figure struct {
	List    *render.List
	Regions []*Region
	Anchors AnchorMap
	Scale   float64 // bp per canvas unit, before per-track ratios
}

// Draw loads the three input files and composes the figure.
func Draw(datafile, bedfile, layoutfile string, opts Options) (*Figure, error) {
	bf, err := blocks.Load(datafile)
	if err != nil {
		return nil, err
	}
	b, err := bed.Load(bedfile)
	if err != nil {
		return nil, err
	}
	lo, err := layout.Load(layoutfile)
	if err != nil {
		return nil, err
	}
	return Compose(bf, b, lo, opts)
}

// Compose renders the figure from parsed inputs.
//
// Composition runs in two passes. The first lays out every track and
// collects gene anchors; the second draws ribbons edge by edge, ordinary
// pairs before highlighted ones so highlights stay visible. Pairs whose
// anchors are missing (a gene absent from a track's window) are logged and
// skipped rather than failing the whole figure.
func Compose(bf *blocks.BlockFile, b *bed.Bed, lo *layout.Layout, opts Options) (*Figure, error) {
	logger := opts.logger()
	st := opts.style()

	if err := lo.Validate(); err != nil {
		return nil, err
	}
	if bf.Ncols() != len(lo.Tracks) {
		return nil, errors.New(errors.ErrCodeReference,
			"block file has %d columns but layout declares %d tracks",
			bf.Ncols(), len(lo.Tracks))
	}

	exts := make([]blocks.Extent, bf.Ncols())
	extras := make([][]bed.Feature, bf.Ncols())
	maxSpan := 0
	for i := range exts {
		ext, err := bf.GetExtent(i, b)
		if err != nil {
			return nil, err
		}
		exts[i] = ext
		if ext.Span > maxSpan {
			maxSpan = ext.Span
		}
		if opts.Extra != nil {
			extras[i] = pruneFeatures(opts.Extra.Extract(ext.Chrom, ext.Start.Start, ext.End.End),
				ext.Span, st.PruneFraction, logger)
		}
	}

	scale := float64(maxSpan) / st.SpanFraction
	asp := geometry.Aspect{W: st.FigWidth, H: st.FigHeight}

	fig := &Figure{
		List:    render.NewList(),
		Anchors: make(AnchorMap),
		Scale:   scale,
	}

	for i, t := range lo.Tracks {
		r, err := DrawRegion(fig.List, t, exts[i], b, scale, st, asp, RegionOptions{
			Switch:   opts.Switch,
			ChrLabel: opts.ChrLabel,
			LocLabel: opts.LocLabel,
			Extra:    extras[i],
		})
		if err != nil {
			return nil, err
		}
		fig.Regions = append(fig.Regions, r)
		for accn, pos := range r.Anchors {
			if err := fig.Anchors.Insert(i, accn, pos); err != nil {
				return nil, err
			}
		}
	}

	for _, e := range lo.Edges {
		ymid := edgeYmid(e, fig.Regions, st)

		for _, p := range bf.IterPairs(e.A, e.B, false) {
			a, bp, ok := fig.lookupPair(e, p, logger)
			if !ok {
				continue
			}
			DrawShade(fig.List, a, bp, ymid, ShadeStyle{Fill: st.ShadeFill, Alpha: 1, Z: zShade})
		}

		for _, p := range bf.IterPairs(e.A, e.B, true) {
			a, bp, ok := fig.lookupPair(e, p, logger)
			if !ok {
				continue
			}
			color, err := styles.ParseColor(p.Highlight)
			if err != nil {
				logger.Warn("unknown highlight color, using default ribbon fill",
					"class", p.Highlight, "pair", p.A+"-"+p.B)
				color = st.ShadeFill
			}
			DrawShade(fig.List, a, bp, ymid, ShadeStyle{
				Fill: color, Stroke: &color, StrokeWidth: 1, Alpha: 1, Z: zHighlight,
			})
		}
	}

	if opts.ScaleBar {
		logger.Debug("drawing scale bar", "scale", scale)
		DrawScaleBar(fig.List, scale, st)
	}

	return fig, nil
}

func (f *Figure) lookupPair(e layout.Edge, p blocks.Pair, logger *log.Logger) (GenePos, GenePos, bool) {
	a, err := f.Anchors.Lookup(e.A, p.A)
	if err != nil {
		logger.Warn("skipping pair without anchor", "gene", p.A, "track", e.A)
		return GenePos{}, GenePos{}, false
	}
	b, err := f.Anchors.Lookup(e.B, p.B)
	if err != nil {
		logger.Warn("skipping pair without anchor", "gene", p.B, "track", e.B)
		return GenePos{}, GenePos{}, false
	}
	return a, b, true
}

// edgeYmid places the ribbon midline: beside the source track when the edge
// carries an arc bias, midway between both tracks otherwise.
func edgeYmid(e layout.Edge, regions []*Region, st styles.Style) float64 {
	switch e.Bias {
	case layout.BiasAbove:
		return regions[e.A].Y() + 2*st.Pad
	case layout.BiasBelow:
		return regions[e.A].Y() - 2*st.Pad
	default:
		return (regions[e.A].Y() + regions[e.B].Y()) / 2
	}
}

func pruneFeatures(fs []bed.Feature, span int, fraction float64, logger *log.Logger) []bed.Feature {
	minSpan := float64(span) * fraction
	var kept []bed.Feature
	for _, f := range fs {
		if float64(f.Span()) >= minSpan {
			kept = append(kept, f)
		}
	}
	logger.Debug("extracted extra features", "total", len(fs), "kept", len(kept))
	return kept
}
