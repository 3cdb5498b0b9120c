package blocks

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/synteny-tools/synplot/pkg/errors"
)

// LoadSwitch reads a two-column tab-separated file mapping chromosome names
// to display names (the --switch option).
func LoadSwitch(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "switch file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open switch file %s", path)
	}
	defer f.Close()
	return ParseSwitch(f)
}

// ParseSwitch reads the rename map from r.
func ParseSwitch(r io.Reader) (map[string]string, error) {
	out := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		row := strings.TrimSpace(scanner.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}
		fields := strings.Split(row, "\t")
		if len(fields) < 2 {
			return nil, errors.New(errors.ErrCodeParse,
				"switch row %d: need 2 tab-separated fields", lineno)
		}
		out[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read switch file")
	}
	return out, nil
}
