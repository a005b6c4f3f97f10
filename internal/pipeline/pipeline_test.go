package pipeline

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/specimen-tools/wingpoints/internal/mask"
)

// writeSpecimenPhoto writes a synthetic 40x30 photograph: a gray board, an
// orange specimen square at rows 5..15 x cols 5..15, and a white tag at
// rows 2..12 x cols 28..36. With the ruler boundary at row 20 the tag edge
// resolves to column 29.
func writeSpecimenPhoto(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	board := color.RGBA{R: 120, G: 120, B: 120, A: 255}
	specimen := color.RGBA{R: 200, G: 80, B: 0, A: 255}
	tag := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, board)
		}
	}
	for y := 5; y <= 15; y++ {
		for x := 5; x <= 15; x++ {
			img.Set(x, y, specimen)
		}
	}
	for y := 2; y <= 12; y++ {
		for x := 28; x <= 36; x++ {
			img.Set(x, y, tag)
		}
	}

	path := filepath.Join(dir, "specimen.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return path
}

func TestNewRejectsInvalidTopRuler(t *testing.T) {
	if _, err := New(Options{TopRuler: 0}, false); err == nil {
		t.Error("expected error for zero top ruler")
	}
	if _, err := New(Options{TopRuler: -3}, false); err == nil {
		t.Error("expected error for negative top ruler")
	}
}

func TestRunProducesLandmarks(t *testing.T) {
	dir := t.TempDir()
	photo := writeSpecimenPhoto(t, dir)

	runner, err := New(Options{TopRuler: 20}, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer runner.Close()

	report, err := runner.Run(photo)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.TagEdge != 29 {
		t.Errorf("tag edge: got %d, want 29", report.TagEdge)
	}
	if report.CacheHit {
		t.Error("first run must not be a cache hit")
	}
	if report.TagText != nil {
		t.Error("tag text without ReadTags")
	}

	lm := report.Landmarks
	if lm.Midline != 10 {
		t.Errorf("midline: got %d, want 10", lm.Midline)
	}
	if lm.BodyCenter != (mask.Point{Row: 10, Col: 10}) {
		t.Errorf("body center: got %v, want (10,10)", lm.BodyCenter)
	}
	if lm.OuterL != (mask.Point{Row: 5, Col: 5}) {
		t.Errorf("left wingtip: got %v, want (5,5)", lm.OuterL)
	}
	if lm.OuterR != (mask.Point{Row: 5, Col: 15}) {
		t.Errorf("right wingtip: got %v, want (5,15)", lm.OuterR)
	}

	if report.Measurements.WingSpan.DistancePixels <= 0 {
		t.Error("wing span should be positive")
	}
}

func TestRunCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	photo := writeSpecimenPhoto(t, dir)

	runner, err := New(Options{
		TopRuler:  20,
		CachePath: filepath.Join(dir, "cache.db"),
	}, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer runner.Close()

	first, err := runner.Run(photo)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if first.CacheHit {
		t.Error("first run must be a miss")
	}

	second, err := runner.Run(photo)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !second.CacheHit {
		t.Error("second run must be a hit")
	}
	if second.Landmarks.Points()["outer_pix_l"] != first.Landmarks.Points()["outer_pix_l"] {
		t.Error("cached landmarks differ from computed landmarks")
	}
}

func TestRunWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	photo := writeSpecimenPhoto(t, dir)

	runner, err := New(Options{
		TopRuler:   20,
		PlotDir:    filepath.Join(dir, "plots"),
		OverlayDir: filepath.Join(dir, "overlays"),
	}, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer runner.Close()

	report, err := runner.Run(photo)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(report.PlotPaths) == 0 {
		t.Error("no plots written")
	}
	for _, p := range report.PlotPaths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("plot missing: %v", err)
		}
	}

	if report.OverlayPath == "" {
		t.Fatal("no overlay written")
	}
	if _, err := os.Stat(report.OverlayPath); err != nil {
		t.Errorf("overlay missing: %v", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	runner, err := New(Options{TopRuler: 20}, false)
	if err != nil {
		t.Fatal(err)
	}
	defer runner.Close()

	if _, err := runner.Run(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStem(t *testing.T) {
	if got := stem("/data/photos/BMNH_1234.png"); got != "BMNH_1234" {
		t.Errorf("stem: got %q", got)
	}
}
