// Package units formats genomic lengths as human-readable strings (Kb, Mb, Gb).
package units

import (
	"fmt"
	"strings"
)

// Unit is a genomic length unit.
type Unit struct {
	Suffix string
	Factor float64
}

var (
	Bp = Unit{"bp", 1}
	Kb = Unit{"Kb", 1e3}
	Mb = Unit{"Mb", 1e6}
	Gb = Unit{"Gb", 1e9}
)

// BestUnit returns the largest unit whose factor does not exceed bp.
// Zero and negative lengths fall back to base pairs.
func BestUnit(bp int) Unit {
	v := bp
	if v < 0 {
		v = -v
	}
	switch {
	case v >= 1e9:
		return Gb
	case v >= 1e6:
		return Mb
	case v >= 1e3:
		return Kb
	default:
		return Bp
	}
}

// Format renders bp in the given unit with the given number of decimals,
// e.g. Format(6250000, Mb, 2) == "6.25Mb".
func Format(bp int, u Unit, precision int) string {
	return FormatBare(bp, u, precision) + u.Suffix
}

// FormatBare is Format without the unit suffix, e.g. "6.25".
// Trailing zeros are kept so that ranges like "6.25-7.50Mb" line up.
func FormatBare(bp int, u Unit, precision int) string {
	if u.Factor == 1 {
		return fmt.Sprintf("%d", bp)
	}
	return fmt.Sprintf("%.*f", precision, float64(bp)/u.Factor)
}

// HumanSize renders bp with an automatically chosen unit,
// e.g. HumanSize(50000, 0) == "50Kb".
func HumanSize(bp int, precision int) string {
	return Format(bp, BestUnit(bp), precision)
}

// RangeLabel renders a genomic window as "6.25-7.50Mb": both endpoints in the
// unit of the larger endpoint, suffix printed once.
func RangeLabel(startBp, endBp int) string {
	u := BestUnit(max(startBp, endBp))
	start := FormatBare(startBp, u, 2)
	end := FormatBare(endBp, u, 2)
	return strings.Join([]string{start, end}, "-") + u.Suffix
}
