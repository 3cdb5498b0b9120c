package styles

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/synteny-tools/synplot/pkg/errors"
)

// Single-letter and named colors accepted in layout files and style configs.
// The letters follow the classic matplotlib abbreviations so existing layout
// files keep their meaning.
var namedColors = map[string]string{
	"b": "#0000ff",
	"g": "#008000",
	"r": "#ff0000",
	"c": "#00bfbf",
	"m": "#bf00bf",
	"y": "#bfbf00",
	"k": "#000000",
	"w": "#ffffff",

	"gray":           "#808080",
	"grey":           "#808080",
	"gainsboro":      "#dcdcdc",
	"lightslategrey": "#778899",
	"lightslategray": "#778899",
	"lavender":       "#e6e6fa",
	"orange":         "#ffa500",
	"white":          "#ffffff",
	"black":          "#000000",
}

// ParseColor resolves a color spec: "#rrggbb" hex, a single-letter
// abbreviation, or one of the named colors above.
func ParseColor(s string) (colorful.Color, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[spec]; ok {
		spec = hex
	}
	c, err := colorful.Hex(spec)
	if err != nil {
		return colorful.Color{}, errors.New(errors.ErrCodeParse, "unknown color %q", s)
	}
	return c, nil
}

// MustColor is ParseColor for package-internal constants.
func MustColor(s string) colorful.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
