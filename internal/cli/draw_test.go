package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/synteny-tools/synplot/pkg/errors"
)

const (
	drawBlocks = "geneA\tortho1\ngeneB\tortho2\n"
	drawBed    = "chr1\t100\t200\tgeneA\t0\t+\n" +
		"chr1\t300\t400\tgeneB\t0\t-\n" +
		"chr7\t100\t250\tortho1\t0\t+\n" +
		"chr7\t300\t450\tortho2\t0\t+\n"
	drawLayout = "0.5, 0.6, 0, left, center, m\n" +
		"0.5, 0.4, 0, left, center, k\n" +
		"e, 0, 1\n"
)

func writeDrawFixtures(t *testing.T) (datafile, bedfile, layoutfile string) {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"blocks.txt": drawBlocks,
		"genes.bed":  drawBed,
		"layout.csv": drawLayout,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return filepath.Join(dir, "blocks.txt"), filepath.Join(dir, "genes.bed"), filepath.Join(dir, "layout.csv")
}

func TestRunDrawWritesSVG(t *testing.T) {
	datafile, bedfile, layoutfile := writeDrawFixtures(t)
	output := filepath.Join(t.TempDir(), "fig.svg")

	opts := drawOpts{format: "svg", output: output, quiet: true, scalebar: true}
	if err := runDraw(context.Background(), datafile, bedfile, layoutfile, &opts); err != nil {
		t.Fatalf("runDraw: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	svg := string(data)
	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("output is not an SVG document")
	}
	// Two baselines, ribbons and the scale bar should all be present.
	if !strings.Contains(svg, "<path") || !strings.Contains(svg, "<polygon") {
		t.Error("figure content missing from SVG")
	}
}

func TestRunDrawDerivesOutputPath(t *testing.T) {
	datafile, bedfile, layoutfile := writeDrawFixtures(t)

	opts := drawOpts{format: "svg", quiet: true}
	if err := runDraw(context.Background(), datafile, bedfile, layoutfile, &opts); err != nil {
		t.Fatalf("runDraw: %v", err)
	}

	want := strings.TrimSuffix(datafile, ".txt") + ".svg"
	if _, err := os.Stat(want); err != nil {
		t.Errorf("derived output %s missing: %v", want, err)
	}
}

func TestRunDrawOutputExtensionWinsOverFormat(t *testing.T) {
	datafile, bedfile, layoutfile := writeDrawFixtures(t)
	output := filepath.Join(t.TempDir(), "fig.svg")

	opts := drawOpts{format: "png", output: output, quiet: true}
	if err := runDraw(context.Background(), datafile, bedfile, layoutfile, &opts); err != nil {
		t.Fatalf("runDraw: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<svg") {
		t.Error("output extension .svg should override --format png")
	}
}

func TestRunDrawMissingInput(t *testing.T) {
	_, bedfile, layoutfile := writeDrawFixtures(t)

	opts := drawOpts{format: "svg", quiet: true}
	err := runDraw(context.Background(), "nope.txt", bedfile, layoutfile, &opts)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing input error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestRunDrawCacheReuse(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	datafile, bedfile, layoutfile := writeDrawFixtures(t)
	output := filepath.Join(t.TempDir(), "fig.svg")

	opts := drawOpts{format: "svg", output: output, quiet: true, useCache: true}
	if err := runDraw(context.Background(), datafile, bedfile, layoutfile, &opts); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Remove(output); err != nil {
		t.Fatal(err)
	}
	if err := runDraw(context.Background(), datafile, bedfile, layoutfile, &opts); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("cached render differs from original")
	}
}
