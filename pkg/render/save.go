package render

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/synteny-tools/synplot/pkg/errors"
)

// WriteFile renders the display list and writes it to path. The format is
// chosen by file extension (.svg or .png).
func WriteFile(l *List, path string, opts ...Option) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		data = RenderSVG(l, opts...)
	case ".png":
		data, err = RenderPNG(l, opts...)
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unsupported output format %q (use .svg or .png)", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
