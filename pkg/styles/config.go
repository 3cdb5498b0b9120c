package styles

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/synteny-tools/synplot/pkg/errors"
)

// fileConfig mirrors the TOML style file. All fields are optional; unset
// fields keep their defaults. Colors accept the same specs as layout files
// (hex, single letters, named colors).
type fileConfig struct {
	Forward  string `toml:"forward"`
	Backward string `toml:"backward"`
	Extra    string `toml:"extra"`
	Baseline string `toml:"baseline"`
	LocLabel string `toml:"loc_label"`

	ShadeFill string `toml:"shade_fill"`
	ScaleBar  string `toml:"scale_bar"`

	GlyphHeight *float64 `toml:"glyph_height"`
	Pad         *float64 `toml:"pad"`
	VPad        *float64 `toml:"vpad"`
	HPad        *float64 `toml:"hpad"`
	LabelDampen *float64 `toml:"label_dampen"`

	PruneFraction *float64 `toml:"prune_fraction"`

	ScaleBarFraction *float64 `toml:"scale_bar_fraction"`
	ScaleBarX        *float64 `toml:"scale_bar_x"`
	ScaleBarY        *float64 `toml:"scale_bar_y"`

	SpanFraction *float64 `toml:"span_fraction"`
}

// Load reads a TOML style file and overlays it on the default style.
func Load(path string) (Style, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, errors.Wrap(errors.ErrCodeFileNotFound, err, "style file %s", path)
		}
		return s, errors.Wrap(errors.ErrCodeInternal, err, "read style file %s", path)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return s, errors.Wrap(errors.ErrCodeParse, err, "parse style file %s", path)
	}
	if err := applyConfig(&s, cfg); err != nil {
		return s, err
	}
	return s, nil
}

func applyConfig(s *Style, cfg fileConfig) error {
	for _, c := range []struct {
		spec string
		set  func(*Style, string) error
	}{
		{cfg.Forward, func(s *Style, v string) error { c, err := ParseColor(v); s.Forward = c; return err }},
		{cfg.Backward, func(s *Style, v string) error { c, err := ParseColor(v); s.Backward = c; return err }},
		{cfg.Extra, func(s *Style, v string) error { c, err := ParseColor(v); s.Extra = c; return err }},
		{cfg.Baseline, func(s *Style, v string) error { c, err := ParseColor(v); s.Baseline = c; return err }},
		{cfg.LocLabel, func(s *Style, v string) error { c, err := ParseColor(v); s.LocLabel = c; return err }},
		{cfg.ShadeFill, func(s *Style, v string) error { c, err := ParseColor(v); s.ShadeFill = c; return err }},
		{cfg.ScaleBar, func(s *Style, v string) error { c, err := ParseColor(v); s.ScaleBar = c; return err }},
	} {
		if c.spec == "" {
			continue
		}
		if err := c.set(s, c.spec); err != nil {
			return err
		}
	}

	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&s.GlyphHeight, cfg.GlyphHeight)
	setF(&s.Pad, cfg.Pad)
	setF(&s.VPad, cfg.VPad)
	setF(&s.HPad, cfg.HPad)
	setF(&s.LabelDampen, cfg.LabelDampen)
	setF(&s.PruneFraction, cfg.PruneFraction)
	setF(&s.ScaleBarFraction, cfg.ScaleBarFraction)
	setF(&s.ScaleBarX, cfg.ScaleBarX)
	setF(&s.ScaleBarY, cfg.ScaleBarY)
	setF(&s.SpanFraction, cfg.SpanFraction)

	return nil
}
