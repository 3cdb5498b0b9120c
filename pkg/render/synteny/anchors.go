package synteny

import (
	"github.com/jbeda/geom"

	"github.com/synteny-tools/synplot/pkg/errors"
)

// GenePos holds the two rotated canvas anchor points of one gene: A at the
// transcription start, B at the end. Ribbons attach to these.
type GenePos struct {
	A, B geom.Coord
}

// AnchorKey identifies a gene anchor by track index and accession.
type AnchorKey struct {
	Track int
	Accn  string
}

// AnchorMap collects gene anchors across all tracks of a figure.
type AnchorMap map[AnchorKey]GenePos

// Insert registers a gene anchor. Registering the same (track, accession)
// twice is a reference error: silently overwriting would make ribbon
// endpoints depend on block-row order.
func (m AnchorMap) Insert(track int, accn string, pos GenePos) error {
	k := AnchorKey{Track: track, Accn: accn}
	if _, dup := m[k]; dup {
		return errors.New(errors.ErrCodeReference,
			"gene %s anchored twice on track %d", accn, track)
	}
	m[k] = pos
	return nil
}

// Lookup resolves a gene anchor, failing with ANCHOR_MISSING when the gene
// was never laid out on the given track.
func (m AnchorMap) Lookup(track int, accn string) (GenePos, error) {
	pos, ok := m[AnchorKey{Track: track, Accn: accn}]
	if !ok {
		return GenePos{}, errors.New(errors.ErrCodeAnchorMissing,
			"gene %s has no anchor on track %d", accn, track)
	}
	return pos, nil
}
