package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/specimen-tools/wingpoints/internal/binarize"
	"github.com/specimen-tools/wingpoints/internal/cache"
	"github.com/specimen-tools/wingpoints/internal/imaging"
	"github.com/specimen-tools/wingpoints/internal/landmarks"
	"github.com/specimen-tools/wingpoints/internal/ocr"
	"github.com/specimen-tools/wingpoints/internal/visual"
)

// Number of diagnostic panels in a plot board. Detection draws the
// points-of-interest panel at index 2.
const boardPanels = 3

// Options configure a Runner.
type Options struct {
	// TopRuler is the row where the measurement ruler begins. Rows at
	// and below it are excluded from the specimen area.
	TopRuler int

	// CachePath, when non-empty, enables the on-disk result cache.
	CachePath string

	// PlotDir, when non-empty, enables diagnostic plots, one PNG per
	// pipeline stage per image.
	PlotDir string

	// OverlayDir, when non-empty, enables landmark overlays painted on
	// the photographs.
	OverlayDir string

	// ReadTags enables OCR of the specimen tag area.
	ReadTags bool

	// Language is the Tesseract language code for tag OCR.
	Language string
}

// Report is the complete result for one photograph.
type Report struct {
	Path         string                 `json:"path"`
	Landmarks    *landmarks.Result      `json:"landmarks"`
	Measurements landmarks.Measurements `json:"measurements"`
	TagEdge      int                    `json:"tag_edge"`
	TagText      *ocr.TagText           `json:"tag_text,omitempty"`
	OverlayPath  string                 `json:"overlay_path,omitempty"`
	PlotPaths    []string               `json:"plot_paths,omitempty"`
	CacheHit     bool                   `json:"cache_hit"`
}

// Runner processes photographs one at a time. It is not safe for
// concurrent use.
type Runner struct {
	opts   Options
	images *imaging.ImageCache
	store  *cache.Store
	debug  bool
}

// New validates opts and prepares a Runner, opening the result cache if
// one is configured.
func New(opts Options, debug bool) (*Runner, error) {
	if opts.TopRuler <= 0 {
		return nil, fmt.Errorf("top ruler row must be positive, got %d", opts.TopRuler)
	}
	if opts.Language == "" {
		opts.Language = "eng"
	}

	r := &Runner{
		opts:   opts,
		images: imaging.NewImageCache(),
		debug:  debug,
	}

	if opts.CachePath != "" {
		store, err := cache.NewStore(opts.CachePath)
		if err != nil {
			return nil, err
		}
		r.store = store
	}

	return r, nil
}

// Close releases the result cache, if open.
func (r *Runner) Close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}

// Run processes one photograph and returns its report.
func (r *Runner) Run(path string) (*Report, error) {
	img, err := r.images.Load(path)
	if err != nil {
		return nil, err
	}

	fingerprint := ""
	if r.store != nil {
		fingerprint = cache.Fingerprint(img, r.opts.TopRuler)
		if report, ok := r.lookup(fingerprint); ok {
			r.debugf("cache hit for %s", path)
			report.Path = path
			report.CacheHit = true
			return report, nil
		}
	}

	binRes, err := binarize.Binarize(img, r.opts.TopRuler)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.debugf("binarized %s: silhouette %dx%d, tag edge at column %d",
		path, binRes.Mask.Width, binRes.Mask.Height, binRes.TagEdge)

	var board *visual.Board
	var surfaces []landmarks.Surface
	if r.opts.PlotDir != "" {
		board = visual.NewBoard(boardPanels)
		surfaces = board.Surfaces()

		p := board.Panel(0)
		p.SetTitle("Binary silhouette")
		p.DrawMask(binRes.Mask)
	}

	result, err := landmarks.Detect(binRes.Mask, surfaces)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	report := &Report{
		Path:         path,
		Landmarks:    result,
		Measurements: landmarks.Measure(result),
		TagEdge:      binRes.TagEdge,
	}

	if r.opts.ReadTags {
		report.TagText = r.readTag(img, binRes.TagEdge, path)
	}

	if board != nil {
		paths, err := board.Save(r.opts.PlotDir, stem(path))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		report.PlotPaths = paths
	}

	if r.opts.OverlayDir != "" {
		if err := os.MkdirAll(r.opts.OverlayDir, 0o755); err != nil {
			return nil, fmt.Errorf("create overlay dir: %w", err)
		}
		overlayPath := filepath.Join(r.opts.OverlayDir, stem(path)+"_landmarks.png")
		if err := visual.SavePNG(overlayPath, visual.Overlay(img, result)); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		report.OverlayPath = overlayPath
	}

	if r.store != nil {
		r.remember(fingerprint, report)
	}

	return report, nil
}

// readTag crops the tag area and runs OCR over it. Tag reading is best
// effort: a build without OCR support or an unreadable tag logs a warning
// and leaves the report's tag text empty.
func (r *Runner) readTag(img image.Image, tagEdge int, path string) *ocr.TagText {
	tagImg, err := imaging.CropTagArea(img, r.opts.TopRuler, tagEdge)
	if err != nil {
		log.Printf("%s: tag crop failed: %v", path, err)
		return nil
	}

	text, err := ocr.ReadTag(tagImg, r.opts.Language)
	if errors.Is(err, ocr.ErrUnavailable) {
		log.Printf("%s: tag reading skipped, ocr not compiled in", path)
		return nil
	}
	if err != nil {
		log.Printf("%s: tag ocr failed: %v", path, err)
		return nil
	}
	return text
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// lookup fetches and decodes a cached report. Decode failures are treated
// as misses so a stale cache never blocks processing.
func (r *Runner) lookup(fingerprint string) (*Report, bool) {
	payload, ok, err := r.store.Get(fingerprint)
	if err != nil {
		log.Printf("cache lookup failed: %v", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var report Report
	if err := json.Unmarshal(payload, &report); err != nil {
		log.Printf("discarding undecodable cache entry: %v", err)
		return nil, false
	}
	return &report, true
}

// remember stores a report in the cache. Failures are logged, not fatal.
func (r *Runner) remember(fingerprint string, report *Report) {
	payload, err := json.Marshal(report)
	if err != nil {
		log.Printf("cache encode failed: %v", err)
		return
	}
	if err := r.store.Put(fingerprint, payload); err != nil {
		log.Printf("cache store failed: %v", err)
	}
}

func (r *Runner) debugf(format string, args ...interface{}) {
	if r.debug {
		log.Printf(format, args...)
	}
}
