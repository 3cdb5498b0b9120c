// Package blocks loads MCScan collinearity files: the block source that
// pairs up orthologous genes across tracks.
//
// Each row holds one gene per track, tab-separated, with "." (or an empty
// field) meaning the track has no ortholog in that block row. A token of the
// form "r*Os01g0100100" marks the row's pair as highlighted with color
// class "r". Column order matches the track order of the layout file.
package blocks

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/synteny-tools/synplot/pkg/bed"
	"github.com/synteny-tools/synplot/pkg/errors"
)

// cell is one token of the block matrix.
type cell struct {
	accn      string
	highlight string // color class, "" if not highlighted
}

func (c cell) empty() bool { return c.accn == "" }

// BlockFile is a parsed collinearity file.
type BlockFile struct {
	rows  [][]cell
	ncols int
}

// Pair is one orthologous gene pair between two tracks.
type Pair struct {
	A, B      string // accessions in the two tracks
	Highlight string // color class, "" for ordinary pairs
}

// Extent describes the genomic window a track's column covers.
type Extent struct {
	Start, End           bed.Feature
	StartIndex, EndIndex int
	Chrom                string
	Orientation          byte // '-' when the column runs against genomic order
	Span                 int
}

// Load reads a block file from disk.
func Load(path string) (*BlockFile, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "block file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open block file %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the block matrix from r. All rows must have the same number
// of columns.
func Parse(r io.Reader) (*BlockFile, error) {
	bf := &BlockFile{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		row := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(row) == "" || strings.HasPrefix(row, "#") {
			continue
		}

		fields := strings.Split(row, "\t")
		if bf.ncols == 0 {
			bf.ncols = len(fields)
		} else if len(fields) != bf.ncols {
			return nil, errors.New(errors.ErrCodeParse,
				"block row %d: %d columns, expected %d", lineno, len(fields), bf.ncols)
		}

		cells := make([]cell, len(fields))
		for i, tok := range fields {
			cells[i] = parseCell(tok)
		}
		bf.rows = append(bf.rows, cells)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read block file")
	}

	return bf, nil
}

func parseCell(tok string) cell {
	tok = strings.TrimSpace(tok)
	if tok == "" || tok == "." {
		return cell{}
	}
	if class, accn, ok := strings.Cut(tok, "*"); ok && class != "" && accn != "" {
		return cell{accn: accn, highlight: class}
	}
	return cell{accn: tok}
}

// Ncols returns the number of tracks the file covers.
func (bf *BlockFile) Ncols() int { return bf.ncols }

// Nrows returns the number of block rows.
func (bf *BlockFile) Nrows() int { return len(bf.rows) }

// GetExtent computes the genomic window of column i against the given bed.
// Orientation is '-' when the column's first gene lies after its last gene
// in genomic order (the block runs against the chromosome).
func (bf *BlockFile) GetExtent(i int, b *bed.Bed) (Extent, error) {
	if i < 0 || i >= bf.ncols {
		return Extent{}, errors.New(errors.ErrCodeReference,
			"block column %d out of range (ncols=%d)", i, bf.ncols)
	}

	order := b.Order()
	first, last := -1, -1
	lo, hi := -1, -1
	for _, row := range bf.rows {
		c := row[i]
		if c.empty() {
			continue
		}
		item, ok := order[c.accn]
		if !ok {
			continue
		}
		if first < 0 {
			first = item.Index
		}
		last = item.Index
		if lo < 0 || item.Index < lo {
			lo = item.Index
		}
		if item.Index > hi {
			hi = item.Index
		}
	}
	if lo < 0 {
		return Extent{}, errors.New(errors.ErrCodeParse,
			"block column %d: no genes found in bed file", i)
	}

	orientation := byte('+')
	if first > last {
		orientation = '-'
	}

	start := b.Features[lo]
	end := b.Features[hi]
	return Extent{
		Start:       start,
		End:         end,
		StartIndex:  lo,
		EndIndex:    hi,
		Chrom:       start.Chrom,
		Orientation: orientation,
		Span:        end.End - start.Start,
	}, nil
}

// IterPairs returns the gene pairs between columns i and j. With highlight
// false it yields ordinary pairs only; with highlight true it yields the
// highlighted pairs along with their color class. Each call builds a fresh
// slice, so the sequence is restartable.
func (bf *BlockFile) IterPairs(i, j int, highlight bool) []Pair {
	var out []Pair
	for _, row := range bf.rows {
		a, b := row[i], row[j]
		if a.empty() || b.empty() {
			continue
		}
		class := a.highlight
		if class == "" {
			class = b.highlight
		}
		if (class != "") != highlight {
			continue
		}
		out = append(out, Pair{A: a.accn, B: b.accn, Highlight: class})
	}
	return out
}
