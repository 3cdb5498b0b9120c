package layout

import (
	"strings"
	"testing"

	"github.com/synteny-tools/synplot/pkg/errors"
	"github.com/synteny-tools/synplot/pkg/styles"
)

const twoTrackLayout = `
# x, y, rotation, ha, va, color, ratio, label
0.5, 0.6, 0, left, center, m
0.5, 0.4, 45, right, top, k, 0.5, chr5 copy
e, 0, 1
`

func TestParseTracks(t *testing.T) {
	l, err := Parse(strings.NewReader(twoTrackLayout))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(l.Tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(l.Tracks))
	}

	t0 := l.Tracks[0]
	if t0.X != 0.5 || t0.Y != 0.6 || t0.Rotation != 0 {
		t.Errorf("track 0 geometry = %+v", t0)
	}
	if t0.HA != AlignLeft || t0.VA != AlignCenter {
		t.Errorf("track 0 anchors = %v/%v", t0.HA, t0.VA)
	}
	if t0.Ratio != 1 {
		t.Errorf("track 0 ratio = %v, want default 1", t0.Ratio)
	}
	if t0.Color != styles.MustColor("m") {
		t.Errorf("track 0 color = %v", t0.Color.Hex())
	}

	t1 := l.Tracks[1]
	if t1.Rotation != 45 || t1.Ratio != 0.5 || t1.Label != "chr5 copy" {
		t.Errorf("track 1 = %+v", t1)
	}
}

func TestParseEdges(t *testing.T) {
	l, err := Parse(strings.NewReader(twoTrackLayout))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(l.Edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(l.Edges))
	}
	e := l.Edges[0]
	if e.A != 0 || e.B != 1 || e.Bias != BiasNone {
		t.Errorf("edge = %+v", e)
	}
}

func TestParseArcBias(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want ArcBias
	}{
		{"above", "e, 0, 1, above", BiasAbove},
		{"below", "e, 0, 1, below", BiasBelow},
		{"empty trailing field", "e, 0, 1, ", BiasNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Parse(strings.NewReader(tt.row))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if l.Edges[0].Bias != tt.want {
				t.Errorf("bias = %v, want %v", l.Edges[0].Bias, tt.want)
			}
		})
	}
}

func TestParseHiddenTrack(t *testing.T) {
	l, err := Parse(strings.NewReader("*0.5, 0.6, 0, left, center, g"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !l.Tracks[0].Hidden {
		t.Error("leading * should mark the track hidden")
	}
	if l.Tracks[0].X != 0.5 {
		t.Errorf("hidden marker consumed a field: %+v", l.Tracks[0])
	}
}

func TestParseMalformedRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"too few fields", "0.5, 0.6, 0, left"},
		{"too many fields", "0.5, 0.6, 0, left, center, g, 1, label, extra"},
		{"non-numeric x", "abc, 0.6, 0, left, center, g"},
		{"non-numeric y", "0.5, ?, 0, left, center, g"},
		{"non-numeric rotation", "0.5, 0.6, up, left, center, g"},
		{"bad ha", "0.5, 0.6, 0, sideways, center, g"},
		{"bad va", "0.5, 0.6, 0, left, middle, g"},
		{"bad color", "0.5, 0.6, 0, left, center, nosuchcolor"},
		{"bad ratio", "0.5, 0.6, 0, left, center, g, wide"},
		{"edge bad index", "e, 0, one"},
		{"edge bad bias", "e, 0, 1, sideways"},
		{"edge too few fields", "e, 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.row))
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("Parse(%q) error = %v, want PARSE_ERROR", tt.row, err)
			}
		})
	}
}

func TestAutoColorAssignment(t *testing.T) {
	// Four tracks, two without a color: palette fills only the gaps.
	src := `
0.5, 0.8, 0, left, center, k
0.5, 0.6, 0, left, center,
0.5, 0.4, 0, left, center,
0.5, 0.2, 0, left, center, m
`
	l, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	palette := styles.QualitativePalette(4)

	if l.Tracks[0].Color != styles.MustColor("k") {
		t.Error("explicit color on track 0 should win over the palette")
	}
	if l.Tracks[1].Color != palette[1] || l.Tracks[2].Color != palette[2] {
		t.Error("empty colors should be filled from the qualitative palette")
	}
	if l.Tracks[3].Color != styles.MustColor("m") {
		t.Error("explicit color on track 3 should win over the palette")
	}
}

func TestNoAutoColorOutsideRange(t *testing.T) {
	src := `
0.5, 0.6, 0, left, center,
0.5, 0.4, 0, left, center, k
`
	l, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var zero = l.Tracks[0].Color
	if zero.R != 0 || zero.G != 0 || zero.B != 0 {
		t.Errorf("2-track layouts get no palette; color should stay zero, got %v", zero.Hex())
	}
}

func TestValidate(t *testing.T) {
	l, err := Parse(strings.NewReader(twoTrackLayout))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	l.Edges = append(l.Edges, Edge{A: 0, B: 5})
	if err := l.Validate(); !errors.Is(err, errors.ErrCodeReference) {
		t.Errorf("Validate error = %v, want REFERENCE_ERROR", err)
	}

	l.Edges = []Edge{{A: -1, B: 0}}
	if err := l.Validate(); !errors.Is(err, errors.ErrCodeReference) {
		t.Errorf("Validate error = %v, want REFERENCE_ERROR", err)
	}
}
