package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/synteny-tools/synplot/pkg/bed"
	"github.com/synteny-tools/synplot/pkg/blocks"
	"github.com/synteny-tools/synplot/pkg/cache"
	"github.com/synteny-tools/synplot/pkg/errors"
	"github.com/synteny-tools/synplot/pkg/layout"
	"github.com/synteny-tools/synplot/pkg/render"
	"github.com/synteny-tools/synplot/pkg/render/synteny"
	"github.com/synteny-tools/synplot/pkg/render/tree"
	"github.com/synteny-tools/synplot/pkg/styles"
)

// canvasDPI converts the style's figure size (inches) to output pixels.
const canvasDPI = 100

// drawOpts holds the command-line flags for the draw command.
type drawOpts struct {
	switchFile string  // chromosome rename map (two-column TSV)
	treeFile   string  // tree list for phylogenetic side panels
	extraFile  string  // extra features (e.g. repeats) in BED format
	scalebar   bool    // add the genomic scale bar
	format     string  // output format: svg or png
	output     string  // output file path
	styleFile  string  // TOML style overrides
	width      float64 // output width in pixels
	height     float64 // output height in pixels
	noChrLabel bool    // suppress chromosome labels
	noLocLabel bool    // suppress coordinate-range labels
	useCache   bool    // reuse cached renders of unchanged inputs
	quiet      bool    // warnings and errors only
}

func newDrawCmd() *cobra.Command {
	opts := drawOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "draw <datafile> <bedfile> <layoutfile>",
		Short: "Render a synteny figure from block, bed and layout files",
		Long: `Draw composes a multi-track synteny figure: each layout row places one
chromosome region on the canvas, and the block file pairs up the genes that
ribbons connect between tracks.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[opts.format] {
				return errors.New(errors.ErrCodeInvalidFormat,
					"invalid format %q (must be svg or png)", opts.format)
			}
			return runDraw(cmd.Context(), args[0], args[1], args[2], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.switchFile, "switch", "", "two-column TSV renaming chromosomes for display")
	cmd.Flags().StringVar(&opts.treeFile, "tree", "", "tree list file; renders phylogenetic panels next to the figure")
	cmd.Flags().StringVar(&opts.extraFile, "extra", "", "BED file of extra features (repeats) drawn under the gene row")
	cmd.Flags().BoolVar(&opts.scalebar, "scalebar", false, "add a genomic scale bar")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: datafile base + format extension)")
	cmd.Flags().StringVar(&opts.styleFile, "style", "", "TOML file overriding colors and proportions")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "output width in pixels (default from style)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "output height in pixels (default from style)")
	cmd.Flags().BoolVar(&opts.noChrLabel, "no-chr-label", false, "suppress chromosome labels")
	cmd.Flags().BoolVar(&opts.noLocLabel, "no-loc-label", false, "suppress coordinate-range labels")
	cmd.Flags().BoolVar(&opts.useCache, "cache", false, "reuse cached renders of unchanged inputs")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "warnings and errors only")

	return cmd
}

var validFormats = map[string]bool{"svg": true, "png": true}

// figureKeyOpts is everything besides the three main inputs that changes
// the rendered bytes. Part of the cache key.
type figureKeyOpts struct {
	SwitchHash string
	ExtraHash  string
	StyleHash  string
	ScaleBar   bool
	Format     string
	Width      float64
	Height     float64
	NoChrLabel bool
	NoLocLabel bool
}

func runDraw(ctx context.Context, datafile, bedfile, layoutfile string, opts *drawOpts) error {
	logger := loggerFromContext(ctx)
	if opts.quiet {
		logger = newLogger(os.Stderr, charmlog.WarnLevel)
	}
	prog := newProgress(logger)

	dataRaw, err := readInput(datafile)
	if err != nil {
		return err
	}
	bedRaw, err := readInput(bedfile)
	if err != nil {
		return err
	}
	layoutRaw, err := readInput(layoutfile)
	if err != nil {
		return err
	}

	st := styles.Default()
	var styleRaw []byte
	if opts.styleFile != "" {
		if styleRaw, err = readInput(opts.styleFile); err != nil {
			return err
		}
		if st, err = styles.Load(opts.styleFile); err != nil {
			return err
		}
	}
	if opts.width > 0 {
		st.FigWidth = opts.width / canvasDPI
	}
	if opts.height > 0 {
		st.FigHeight = opts.height / canvasDPI
	}
	outW, outH := st.FigWidth*canvasDPI, st.FigHeight*canvasDPI

	var switchRaw, extraRaw []byte
	if opts.switchFile != "" {
		if switchRaw, err = readInput(opts.switchFile); err != nil {
			return err
		}
	}
	if opts.extraFile != "" {
		if extraRaw, err = readInput(opts.extraFile); err != nil {
			return err
		}
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(datafile, filepath.Ext(datafile)) + "." + opts.format
	} else if ext := strings.TrimPrefix(filepath.Ext(output), "."); validFormats[ext] {
		// An explicit output extension wins over --format.
		opts.format = ext
	}

	store, key, err := openCache(ctx, opts, dataRaw, bedRaw, layoutRaw, switchRaw, extraRaw, styleRaw)
	if err != nil {
		return err
	}
	defer store.Close()

	if cached, ok, err := store.Get(ctx, key); err != nil {
		return err
	} else if ok {
		if err := os.WriteFile(output, cached, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
		}
		logger.Debug("cache hit", "key", key)
		printInfo("figure unchanged, reusing cached render")
		printFile(output)
		return nil
	}

	bf, err := blocks.Parse(bytes.NewReader(dataRaw))
	if err != nil {
		return err
	}
	b, err := bed.Parse(bytes.NewReader(bedRaw))
	if err != nil {
		return err
	}
	lo, err := layout.Parse(bytes.NewReader(layoutRaw))
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d block rows across %d tracks", bf.Nrows(), bf.Ncols())

	composeOpts := synteny.Options{
		ChrLabel: !opts.noChrLabel,
		LocLabel: !opts.noLocLabel,
		ScaleBar: opts.scalebar,
		Style:    &st,
		Logger:   logger,
	}
	if switchRaw != nil {
		if composeOpts.Switch, err = blocks.ParseSwitch(bytes.NewReader(switchRaw)); err != nil {
			return err
		}
	}
	if extraRaw != nil {
		if composeOpts.Extra, err = bed.Parse(bytes.NewReader(extraRaw)); err != nil {
			return err
		}
	}

	var sp *Spinner
	if !opts.quiet {
		sp = newSpinnerWithContext(ctx, "composing figure")
		sp.Start()
	}
	fig, err := synteny.Compose(bf, b, lo, composeOpts)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	data, err := encodeFigure(fig, opts.format, outW, outH)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", output)
	}
	if err := store.Set(ctx, key, data, 0); err != nil {
		printWarning("could not store render in cache: %v", err)
	}

	prog.done(fmt.Sprintf("Rendered %s", output))
	printSuccess("figure written")
	printStats(len(lo.Tracks), countRibbons(fig))
	printFile(output)

	if opts.treeFile != "" {
		if err := renderTreePanels(ctx, logger, opts.treeFile, output, opts.format); err != nil {
			return err
		}
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return data, nil
}

// openCache returns the artifact cache and figure key for this invocation,
// or a null cache when --cache is off.
func openCache(ctx context.Context, opts *drawOpts,
	dataRaw, bedRaw, layoutRaw, switchRaw, extraRaw, styleRaw []byte) (cache.Cache, string, error) {

	keyOpts := figureKeyOpts{
		SwitchHash: cache.Hash(switchRaw),
		ExtraHash:  cache.Hash(extraRaw),
		StyleHash:  cache.Hash(styleRaw),
		ScaleBar:   opts.scalebar,
		Format:     opts.format,
		Width:      opts.width,
		Height:     opts.height,
		NoChrLabel: opts.noChrLabel,
		NoLocLabel: opts.noLocLabel,
	}
	key := cache.FigureKey(cache.Hash(dataRaw), cache.Hash(bedRaw), cache.Hash(layoutRaw), keyOpts)

	if !opts.useCache {
		return cache.NewNullCache(), key, nil
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "resolve cache directory")
	}
	store, err := cache.NewFileCache(filepath.Join(base, "synplot"))
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInternal, err, "open cache")
	}
	return store, key, nil
}

func encodeFigure(fig *synteny.Figure, format string, w, h float64) ([]byte, error) {
	switch format {
	case "svg":
		return render.RenderSVG(fig.List, render.WithSize(w, h)), nil
	case "png":
		return render.RenderPNG(fig.List, render.WithSize(w, h))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

func countRibbons(fig *synteny.Figure) int {
	n := 0
	for _, op := range fig.List.Ops() {
		if _, ok := op.(render.Path); ok {
			n++
		}
	}
	return n
}

// renderTreePanels writes one Graphviz panel per tree-list entry next to
// the main figure: base.tree1.svg, base.tree2.svg, ...
func renderTreePanels(ctx context.Context, logger *charmlog.Logger, treeFile, output, format string) error {
	trees, err := tree.Load(treeFile)
	if err != nil {
		return err
	}
	logger.Infof("Imported %d trees", len(trees))

	base := strings.TrimSuffix(output, filepath.Ext(output))
	for i, t := range trees {
		dot := tree.ToDOT(t)

		var data []byte
		if format == "png" {
			data, err = tree.RenderPNG(ctx, dot)
		} else {
			data, err = tree.RenderSVG(ctx, dot)
		}
		if err != nil {
			return err
		}

		path := fmt.Sprintf("%s.tree%d.%s", base, i+1, format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
		}
		printFile(path)
	}
	return nil
}
