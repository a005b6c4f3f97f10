package visual

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/specimen-tools/wingpoints/internal/landmarks"
	"github.com/specimen-tools/wingpoints/internal/mask"
)

// Default figure dimensions for saved panels.
const (
	panelWidth  = 6 * vg.Inch
	panelHeight = 4 * vg.Inch
)

// Panel is a single diagnostic figure. It records draw calls and builds the
// underlying plot only when saved, so panels handed to a detection run that
// is never rendered cost nothing beyond the recorded geometry.
//
// Panel implements landmarks.Surface.
type Panel struct {
	title      string
	background *mask.Mask
	vlines     []int
	points     []mask.Point
	markerSize int
}

// NewPanel creates an empty panel.
func NewPanel() *Panel {
	return &Panel{}
}

// SetTitle names the panel.
func (p *Panel) SetTitle(title string) {
	p.title = title
}

// DrawMask sets the binary mask rendered as the panel background.
func (p *Panel) DrawMask(m *mask.Mask) {
	p.background = m
}

// DrawVLine records a dashed vertical line at the given column.
func (p *Panel) DrawVLine(col int) {
	p.vlines = append(p.vlines, col)
}

// DrawPoints records scatter markers at the listed points.
func (p *Panel) DrawPoints(points []mask.Point, markerSize int) {
	p.points = append(p.points, points...)
	p.markerSize = markerSize
}

// Empty reports whether nothing has been drawn on the panel.
func (p *Panel) Empty() bool {
	return p.title == "" && p.background == nil &&
		len(p.vlines) == 0 && len(p.points) == 0
}

// Save materializes the panel and writes it as a PNG to path.
func (p *Panel) Save(path string) error {
	plt, err := p.render()
	if err != nil {
		return fmt.Errorf("render panel %q: %w", p.title, err)
	}
	if err := plt.Save(panelWidth, panelHeight, path); err != nil {
		return fmt.Errorf("save panel %q: %w", p.title, err)
	}
	return nil
}

// render builds the gonum plot from the recorded draw calls. The mask lives
// in a row-down frame while the plot's y axis grows upward, so rows are
// flipped against the mask height.
func (p *Panel) render() (*plot.Plot, error) {
	plt := plot.New()
	plt.Title.Text = p.title
	plt.X.Label.Text = "column"
	plt.Y.Label.Text = "row"

	height := 0
	if p.background != nil {
		height = p.background.Height
		img := maskImage(p.background)
		plt.Add(plotter.NewImage(img, 0, 0,
			float64(p.background.Width), float64(p.background.Height)))
	}

	for _, col := range p.vlines {
		line, err := plotter.NewLine(plotter.XYs{
			{X: float64(col), Y: 0},
			{X: float64(col), Y: float64(height)},
		})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		line.Color = color.RGBA{R: 255, A: 255}
		plt.Add(line)
	}

	if len(p.points) > 0 {
		xys := make(plotter.XYs, len(p.points))
		for i, pt := range p.points {
			xys[i] = plotter.XY{
				X: float64(pt.Col) + 0.5,
				Y: float64(height-pt.Row) - 0.5,
			}
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Shape = draw.CrossGlyph{}
		scatter.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(float64(p.markerSize) / 2)
		plt.Add(scatter)
	}

	return plt, nil
}

// maskImage converts a mask to a grayscale image, foreground white.
func maskImage(m *mask.Mask) image.Image {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			if m.At(r, c) {
				img.SetGray(c, r, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// Board is an ordered set of panels mirroring the stages of a detection
// run. Panels that were never drawn on are skipped when saving.
type Board struct {
	panels []*Panel
}

// NewBoard creates a board with n empty panels.
func NewBoard(n int) *Board {
	b := &Board{panels: make([]*Panel, n)}
	for i := range b.panels {
		b.panels[i] = NewPanel()
	}
	return b
}

// Panel returns the i-th panel, or nil if out of range.
func (b *Board) Panel(i int) *Panel {
	if i < 0 || i >= len(b.panels) {
		return nil
	}
	return b.panels[i]
}

// Surfaces exposes the panels as drawing surfaces for landmark detection.
func (b *Board) Surfaces() []landmarks.Surface {
	surfaces := make([]landmarks.Surface, len(b.panels))
	for i, p := range b.panels {
		surfaces[i] = p
	}
	return surfaces
}

// Save writes each non-empty panel to dir as <stem>_<index>.png and
// returns the written paths.
func (b *Board) Save(dir, stem string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create plot dir: %w", err)
	}

	var paths []string
	for i, p := range b.panels {
		if p.Empty() {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.png", stem, i))
		if err := p.Save(path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
