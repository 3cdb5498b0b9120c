package styles

import colorful "github.com/lucasb-eyer/go-colorful"

// set2 is the ColorBrewer Set2 qualitative palette (8 colors), the default
// track palette for figures with 3-8 tracks.
var set2 = []string{
	"#66c2a5", "#fc8d62", "#8da0cb", "#e78ac3",
	"#a6d854", "#ffd92f", "#e5c494", "#b3b3b3",
}

// QualitativePalette returns n distinct track colors.
//
// When n is at most the palette size, colors are sampled without replacement
// at evenly spaced positions, so 3 tracks get well-separated hues rather
// than three neighbors. When n exceeds the palette size the palette repeats
// in order. Both policies are deterministic: the same n always yields the
// same colors.
func QualitativePalette(n int) []colorful.Color {
	if n <= 0 {
		return nil
	}
	out := make([]colorful.Color, n)
	if n <= len(set2) {
		for i := range out {
			out[i] = MustColor(set2[i*len(set2)/n])
		}
		return out
	}
	for i := range out {
		out[i] = MustColor(set2[i%len(set2)])
	}
	return out
}
