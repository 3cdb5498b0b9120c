// Package layout parses the per-track layout configuration for synteny
// figures.
//
// The format is comma-delimited, one row per track, with optional edge rows:
//
//	#x, y, rotation, ha, va, color, ratio, label
//	0.5, 0.6,  0, left, center, m
//	0.5, 0.4,  0, left, center, k
//	# edges: e, track_a, track_b, arc_bias
//	e, 0, 1
//
// '#' rows are comments. A leading '*' on a track row hides the track:
// geometry is still computed (links can attach to it) but nothing is drawn.
// Row ordering is significant: it defines the track index that edge rows and
// block files refer to.
package layout

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/synteny-tools/synplot/pkg/errors"
	"github.com/synteny-tools/synplot/pkg/styles"
)

// Align is a label anchor mode.
type Align string

const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
	AlignTop    Align = "top"
	AlignBottom Align = "bottom"
)

// ArcBias steers a ribbon's vertical midpoint relative to the source track.
type ArcBias int

const (
	BiasNone ArcBias = iota
	BiasAbove
	BiasBelow
)

func (b ArcBias) String() string {
	switch b {
	case BiasAbove:
		return "above"
	case BiasBelow:
		return "below"
	default:
		return "none"
	}
}

// Track is one parsed layout row.
type Track struct {
	X, Y     float64        // pivot position in [0,1]²
	Rotation float64        // degrees, about the pivot
	HA, VA   Align          // label anchor modes
	Color    colorful.Color // track color (labels); may be auto-assigned
	Ratio    float64        // scale multiplier, default 1
	Label    string         // optional chromosome-name override
	Hidden   bool           // geometry computed, nothing drawn
}

// Edge links two tracks by index.
type Edge struct {
	A, B int
	Bias ArcBias
}

// Layout is the parsed configuration: ordered tracks plus edges.
type Layout struct {
	Tracks []Track
	Edges  []Edge
}

// autoColorMin/Max bound the track counts that get palette colors assigned
// to tracks whose color field was left empty.
const (
	autoColorMin = 3
	autoColorMax = 8
)

// Load parses a layout file from disk.
func Load(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open layout file %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a layout from r. Malformed rows fail with a PARSE_ERROR naming
// the row and offending field; edge index validation is deferred to
// Validate so the error classes stay distinct.
func Parse(r io.Reader) (*Layout, error) {
	l := &Layout{}
	var missingColor []int

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}

		if strings.HasPrefix(row, "e") {
			edge, err := parseEdgeRow(row, lineno)
			if err != nil {
				return nil, err
			}
			l.Edges = append(l.Edges, edge)
			continue
		}

		track, hasColor, err := parseTrackRow(row, lineno)
		if err != nil {
			return nil, err
		}
		if !hasColor {
			missingColor = append(missingColor, len(l.Tracks))
		}
		l.Tracks = append(l.Tracks, track)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read layout")
	}

	if n := len(l.Tracks); n >= autoColorMin && n <= autoColorMax {
		palette := styles.QualitativePalette(n)
		for _, i := range missingColor {
			l.Tracks[i].Color = palette[i]
		}
	}

	return l, nil
}

// Validate checks that every edge references existing tracks.
func (l *Layout) Validate() error {
	for i, e := range l.Edges {
		for _, idx := range []int{e.A, e.B} {
			if idx < 0 || idx >= len(l.Tracks) {
				return errors.New(errors.ErrCodeReference,
					"edge %d references track %d, but only %d tracks are declared",
					i, idx, len(l.Tracks))
			}
		}
	}
	return nil
}

func splitFields(row string) []string {
	parts := strings.Split(row, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseEdgeRow(row string, lineno int) (Edge, error) {
	args := splitFields(row)
	if args[0] != "e" {
		return Edge{}, errors.New(errors.ErrCodeParse, "row %d: bad edge marker %q", lineno, args[0])
	}
	if len(args) < 3 || len(args) > 4 {
		return Edge{}, errors.New(errors.ErrCodeParse,
			"row %d: edge rows take 3 or 4 fields, got %d", lineno, len(args))
	}

	a, err := strconv.Atoi(args[1])
	if err != nil {
		return Edge{}, errors.New(errors.ErrCodeParse, "row %d: track index %q is not an integer", lineno, args[1])
	}
	b, err := strconv.Atoi(args[2])
	if err != nil {
		return Edge{}, errors.New(errors.ErrCodeParse, "row %d: track index %q is not an integer", lineno, args[2])
	}

	bias := BiasNone
	if len(args) == 4 && args[3] != "" {
		switch args[3] {
		case "above":
			bias = BiasAbove
		case "below":
			bias = BiasBelow
		default:
			return Edge{}, errors.New(errors.ErrCodeParse,
				"row %d: arc bias %q (must be above or below)", lineno, args[3])
		}
	}

	return Edge{A: a, B: b, Bias: bias}, nil
}

func parseTrackRow(row string, lineno int) (t Track, hasColor bool, err error) {
	if strings.HasPrefix(row, "*") {
		t.Hidden = true
		row = row[1:]
	}

	args := splitFields(row)
	if len(args) < 6 || len(args) > 8 {
		return t, false, errors.New(errors.ErrCodeParse,
			"row %d: track rows take 6 to 8 fields, got %d", lineno, len(args))
	}

	num := func(field, name string) (float64, error) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return 0, errors.New(errors.ErrCodeParse, "row %d: %s %q is not numeric", lineno, name, field)
		}
		return v, nil
	}

	if t.X, err = num(args[0], "x"); err != nil {
		return t, false, err
	}
	if t.Y, err = num(args[1], "y"); err != nil {
		return t, false, err
	}
	if t.Rotation, err = num(args[2], "rotation"); err != nil {
		return t, false, err
	}

	if t.HA, err = parseAlign(args[3], lineno, "ha", AlignLeft, AlignRight, AlignCenter); err != nil {
		return t, false, err
	}
	if t.VA, err = parseAlign(args[4], lineno, "va", AlignTop, AlignBottom, AlignCenter); err != nil {
		return t, false, err
	}

	if args[5] != "" {
		t.Color, err = styles.ParseColor(args[5])
		if err != nil {
			return t, false, errors.New(errors.ErrCodeParse, "row %d: %v", lineno, errors.UserMessage(err))
		}
		hasColor = true
	}

	t.Ratio = 1
	if len(args) > 6 && args[6] != "" {
		if t.Ratio, err = num(args[6], "ratio"); err != nil {
			return t, false, err
		}
	}
	if len(args) > 7 {
		t.Label = args[7]
	}

	return t, hasColor, nil
}

func parseAlign(s string, lineno int, name string, valid ...Align) (Align, error) {
	for _, v := range valid {
		if Align(s) == v {
			return v, nil
		}
	}
	opts := make([]string, len(valid))
	for i, v := range valid {
		opts[i] = string(v)
	}
	return "", errors.New(errors.ErrCodeParse,
		"row %d: %s %q (must be %s)", lineno, name, s, fmt.Sprint(opts))
}
