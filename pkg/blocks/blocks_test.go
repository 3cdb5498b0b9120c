package blocks

import (
	"strings"
	"testing"

	"github.com/synteny-tools/synplot/pkg/bed"
	"github.com/synteny-tools/synplot/pkg/errors"
)

// Two tracks; the second column runs against genomic order and carries one
// highlighted row.
const sampleBlocks = "geneA\tortho3\n" +
	"geneB\tortho2\n" +
	"r*geneC\tortho1\n" +
	"geneD\t.\n"

const sampleBed = "chr1\t100\t200\tgeneA\t0\t+\n" +
	"chr1\t300\t400\tgeneB\t0\t-\n" +
	"chr1\t500\t600\tgeneC\t0\t+\n" +
	"chr1\t700\t800\tgeneD\t0\t+\n" +
	"chr7\t100\t250\tortho1\t0\t+\n" +
	"chr7\t300\t450\tortho2\t0\t+\n" +
	"chr7\t500\t650\tortho3\t0\t-\n"

func fixtures(t *testing.T) (*BlockFile, *bed.Bed) {
	t.Helper()
	bf, err := Parse(strings.NewReader(sampleBlocks))
	if err != nil {
		t.Fatalf("Parse blocks: %v", err)
	}
	b, err := bed.Parse(strings.NewReader(sampleBed))
	if err != nil {
		t.Fatalf("Parse bed: %v", err)
	}
	return bf, b
}

func TestParseShape(t *testing.T) {
	bf, _ := fixtures(t)
	if bf.Ncols() != 2 {
		t.Errorf("Ncols() = %d, want 2", bf.Ncols())
	}
	if bf.Nrows() != 4 {
		t.Errorf("Nrows() = %d, want 4", bf.Nrows())
	}
}

func TestParseRaggedRows(t *testing.T) {
	_, err := Parse(strings.NewReader("a\tb\nc\n"))
	if !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("Parse error = %v, want PARSE_ERROR", err)
	}
}

func TestGetExtentForward(t *testing.T) {
	bf, b := fixtures(t)
	ext, err := bf.GetExtent(0, b)
	if err != nil {
		t.Fatalf("GetExtent: %v", err)
	}
	if ext.Chrom != "chr1" || ext.Orientation != '+' {
		t.Errorf("extent = %+v", ext)
	}
	if ext.Start.Accn != "geneA" || ext.End.Accn != "geneD" {
		t.Errorf("extent endpoints = %s..%s", ext.Start.Accn, ext.End.Accn)
	}
	if ext.Span != ext.End.End-ext.Start.Start {
		t.Errorf("span = %d", ext.Span)
	}
}

func TestGetExtentReverse(t *testing.T) {
	bf, b := fixtures(t)
	ext, err := bf.GetExtent(1, b)
	if err != nil {
		t.Fatalf("GetExtent: %v", err)
	}
	// Column 1 runs ortho3, ortho2, ortho1: against genomic order.
	if ext.Orientation != '-' {
		t.Errorf("orientation = %c, want -", ext.Orientation)
	}
	if ext.Chrom != "chr7" {
		t.Errorf("chrom = %s", ext.Chrom)
	}
	if ext.Start.Accn != "ortho1" || ext.End.Accn != "ortho3" {
		t.Errorf("extent endpoints = %s..%s", ext.Start.Accn, ext.End.Accn)
	}
}

func TestGetExtentErrors(t *testing.T) {
	bf, b := fixtures(t)
	if _, err := bf.GetExtent(5, b); !errors.Is(err, errors.ErrCodeReference) {
		t.Errorf("out-of-range column error = %v, want REFERENCE_ERROR", err)
	}

	unknown, err := Parse(strings.NewReader("nope1\tnope2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := unknown.GetExtent(0, b); !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("unknown genes error = %v, want PARSE_ERROR", err)
	}
}

func TestIterPairs(t *testing.T) {
	bf, _ := fixtures(t)

	ordinary := bf.IterPairs(0, 1, false)
	if len(ordinary) != 2 {
		t.Fatalf("ordinary pairs = %v", ordinary)
	}
	if ordinary[0].A != "geneA" || ordinary[0].B != "ortho3" {
		t.Errorf("pair 0 = %+v", ordinary[0])
	}
	for _, p := range ordinary {
		if p.Highlight != "" {
			t.Errorf("ordinary pair carries highlight: %+v", p)
		}
	}

	hl := bf.IterPairs(0, 1, true)
	if len(hl) != 1 || hl[0].A != "geneC" || hl[0].Highlight != "r" {
		t.Errorf("highlighted pairs = %v", hl)
	}

	// Restartable: a second call yields the same sequence.
	again := bf.IterPairs(0, 1, false)
	if len(again) != len(ordinary) {
		t.Error("IterPairs is not restartable")
	}
}

func TestIterPairsSkipsMissing(t *testing.T) {
	bf, _ := fixtures(t)
	for _, p := range append(bf.IterPairs(0, 1, false), bf.IterPairs(0, 1, true)...) {
		if p.A == "geneD" || p.B == "." || p.B == "" {
			t.Errorf("pair with missing ortholog leaked through: %+v", p)
		}
	}
}
