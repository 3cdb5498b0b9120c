package bed

import (
	"strings"
	"testing"

	"github.com/synteny-tools/synplot/pkg/errors"
)

const sample = "chr2\t500\t900\tgeneC\t0\t-\n" +
	"chr1\t100\t400\tgeneA\t0\t+\n" +
	"chr1\t600\t800\tgeneB\t0\t-\n" +
	"chr1\t50\t5000\tspanner\t0\t+\n"

func mustParse(t *testing.T, src string) *Bed {
	t.Helper()
	b, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return b
}

func TestParseSortsByPosition(t *testing.T) {
	b := mustParse(t, sample)
	var got []string
	for _, f := range b.Features {
		got = append(got, f.Accn)
	}
	want := []string{"spanner", "geneA", "geneB", "geneC"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v, want %v", got, want)
		}
	}
}

func TestParseCoordinateConvention(t *testing.T) {
	b := mustParse(t, "chr1\t100\t400\tgeneA\t0\t+\n")
	f := b.Features[0]
	if f.Start != 101 || f.End != 400 {
		t.Errorf("coordinates = [%d, %d], want 1-based inclusive [101, 400]", f.Start, f.End)
	}
	if f.Span() != 300 {
		t.Errorf("Span() = %d, want 300", f.Span())
	}
}

func TestParseDefaultsAndErrors(t *testing.T) {
	b := mustParse(t, "chr1\t10\t20\tg1\n")
	if b.Features[0].Strand != '+' {
		t.Error("missing strand should default to +")
	}

	tests := []struct {
		name string
		row  string
	}{
		{"too few fields", "chr1\t10\t20\n"},
		{"bad start", "chr1\tx\t20\tg1\n"},
		{"bad end", "chr1\t10\ty\tg1\n"},
		{"bad strand", "chr1\t10\t20\tg1\t0\t?\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.row)); !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("Parse error = %v, want PARSE_ERROR", err)
			}
		})
	}
}

func TestOrder(t *testing.T) {
	b := mustParse(t, sample)
	item, ok := b.Order()["geneB"]
	if !ok {
		t.Fatal("geneB missing from order")
	}
	if item.Feature.Accn != "geneB" || b.Features[item.Index].Accn != "geneB" {
		t.Errorf("order item = %+v", item)
	}
}

func TestSlice(t *testing.T) {
	b := mustParse(t, sample)
	got := b.Slice(1, 2)
	if len(got) != 2 || got[0].Accn != "geneA" || got[1].Accn != "geneB" {
		t.Errorf("Slice(1,2) = %v", got)
	}
	if b.Slice(2, 1) != nil {
		t.Error("inverted slice should be nil")
	}
	if b.Slice(0, 99) != nil {
		t.Error("out-of-range slice should be nil")
	}
}

func TestExtract(t *testing.T) {
	b := mustParse(t, sample)

	got := b.Extract("chr1", 200, 700)
	var accns []string
	for _, f := range got {
		accns = append(accns, f.Accn)
	}
	// spanner (51-5000) and geneA (101-400) and geneB (601-800) all overlap.
	want := []string{"spanner", "geneA", "geneB"}
	if len(accns) != len(want) {
		t.Fatalf("Extract = %v, want %v", accns, want)
	}
	for i := range want {
		if accns[i] != want[i] {
			t.Fatalf("Extract = %v, want %v", accns, want)
		}
	}

	if got := b.Extract("chr2", 1, 100); len(got) != 0 {
		t.Errorf("non-overlapping window returned %v", got)
	}
	if got := b.Extract("chr9", 1, 1e9); len(got) != 0 {
		t.Errorf("unknown chrom returned %v", got)
	}
}
