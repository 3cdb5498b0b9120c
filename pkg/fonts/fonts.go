// Package fonts provides the embedded typeface used by raster output.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/synteny-tools/synplot/pkg/errors"
)

var (
	parseOnce sync.Once
	regular   *truetype.Font
	parseErr  error
)

// Regular returns the parsed Go Regular typeface. The TTF data is parsed
// once and cached.
func Regular() (*truetype.Font, error) {
	parseOnce.Do(func() {
		regular, parseErr = truetype.Parse(goregular.TTF)
		if parseErr != nil {
			parseErr = errors.Wrap(errors.ErrCodeInternal, parseErr, "parse embedded font")
		}
	})
	return regular, parseErr
}

// Face builds a font.Face at the given point size (72 DPI).
func Face(size float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
