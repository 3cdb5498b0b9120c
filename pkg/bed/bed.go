// Package bed loads gene/feature files in BED format (tab-separated:
// chrom, start, end, accession, score, strand).
//
// Features are kept sorted by genomic position within each chromosome, which
// the block-extent and range-extraction queries rely on. Coordinates follow
// the BED convention on disk (0-based half-open) and are converted to
// 1-based inclusive in memory.
package bed

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/synteny-tools/synplot/pkg/errors"
)

// Feature is one BED record.
type Feature struct {
	Chrom  string
	Start  int // 1-based inclusive
	End    int // inclusive
	Accn   string
	Score  string
	Strand byte // '+' or '-'
}

// Span returns the feature length in base pairs.
func (f Feature) Span() int {
	return f.End - f.Start + 1
}

// OrderItem locates a feature by its index in the sorted feature list.
type OrderItem struct {
	Index   int
	Feature Feature
}

// Bed holds the sorted features of one BED file.
type Bed struct {
	Features []Feature

	order map[string]OrderItem
}

// Load reads and sorts a BED file.
func Load(path string) (*Bed, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "bed file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open bed file %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads BED records from r and sorts them by (chrom, start, accn).
func Parse(r io.Reader) (*Bed, error) {
	b := &Bed{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") || strings.HasPrefix(row, "track") {
			continue
		}
		f, err := parseRow(row, lineno)
		if err != nil {
			return nil, err
		}
		b.Features = append(b.Features, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read bed")
	}

	sort.SliceStable(b.Features, func(i, j int) bool {
		a, c := b.Features[i], b.Features[j]
		if a.Chrom != c.Chrom {
			return a.Chrom < c.Chrom
		}
		if a.Start != c.Start {
			return a.Start < c.Start
		}
		return a.Accn < c.Accn
	})

	b.order = make(map[string]OrderItem, len(b.Features))
	for i, f := range b.Features {
		if _, dup := b.order[f.Accn]; !dup {
			b.order[f.Accn] = OrderItem{Index: i, Feature: f}
		}
	}

	return b, nil
}

func parseRow(row string, lineno int) (Feature, error) {
	args := strings.Split(row, "\t")
	if len(args) < 4 {
		return Feature{}, errors.New(errors.ErrCodeParse,
			"bed row %d: need at least 4 fields, got %d", lineno, len(args))
	}

	start, err := strconv.Atoi(args[1])
	if err != nil {
		return Feature{}, errors.New(errors.ErrCodeParse, "bed row %d: start %q is not an integer", lineno, args[1])
	}
	end, err := strconv.Atoi(args[2])
	if err != nil {
		return Feature{}, errors.New(errors.ErrCodeParse, "bed row %d: end %q is not an integer", lineno, args[2])
	}

	f := Feature{
		Chrom:  args[0],
		Start:  start + 1, // 0-based half-open on disk
		End:    end,
		Accn:   args[3],
		Strand: '+',
	}
	if len(args) > 4 {
		f.Score = args[4]
	}
	if len(args) > 5 {
		switch args[5] {
		case "+", "-":
			f.Strand = args[5][0]
		default:
			return Feature{}, errors.New(errors.ErrCodeParse,
				"bed row %d: strand %q (must be + or -)", lineno, args[5])
		}
	}

	return f, nil
}

// Order maps accession to its position in the sorted feature list. For
// duplicate accessions the first occurrence wins.
func (b *Bed) Order() map[string]OrderItem {
	return b.order
}

// Slice returns features [si, ei] inclusive of the sorted list.
func (b *Bed) Slice(si, ei int) []Feature {
	if si < 0 || ei >= len(b.Features) || si > ei {
		return nil
	}
	return b.Features[si : ei+1]
}

// Extract returns features on chrom overlapping [start, end], in genomic
// order. Binary search finds the chromosome block; the scan inside it is
// linear because feature ends are not monotone in start order.
func (b *Bed) Extract(chrom string, start, end int) []Feature {
	lo := sort.Search(len(b.Features), func(i int) bool {
		return b.Features[i].Chrom >= chrom
	})

	var out []Feature
	for _, f := range b.Features[lo:] {
		if f.Chrom != chrom || f.Start > end {
			break
		}
		if f.End >= start {
			out = append(out, f)
		}
	}
	return out
}
