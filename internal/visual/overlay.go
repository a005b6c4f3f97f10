package visual

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/imgio"

	"github.com/specimen-tools/wingpoints/internal/landmarks"
)

// Marker and line styling for photograph overlays.
var (
	markerColor = color.RGBA{R: 255, A: 255}
	lineColor   = color.RGBA{R: 255, G: 215, A: 255}
)

const (
	markerHalfSize = 5
	dashLength     = 4
)

// Overlay copies the photograph and paints the detected landmarks on it:
// a dashed vertical line at the body midline and a cross at each of the
// five landmarks. The input image is not modified.
func Overlay(img image.Image, res *landmarks.Result) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	drawDashedVLine(out, res.Midline)
	for _, pt := range res.Points() {
		drawCross(out, pt.Col, pt.Row)
	}
	return out
}

// SavePNG writes an image to path as a PNG.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save overlay: %w", err)
	}
	return nil
}

// drawDashedVLine draws a dashed vertical line across the full image
// height at the given column.
func drawDashedVLine(img *image.RGBA, col int) {
	bounds := img.Bounds()
	x := bounds.Min.X + col
	if x < bounds.Min.X || x >= bounds.Max.X {
		return
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if ((y-bounds.Min.Y)/dashLength)%2 == 0 {
			img.Set(x, y, lineColor)
		}
	}
}

// drawCross paints a cross marker centered on the pixel at (col, row).
// Arms falling outside the image are clipped.
func drawCross(img *image.RGBA, col, row int) {
	bounds := img.Bounds()
	cx := bounds.Min.X + col
	cy := bounds.Min.Y + row

	for d := -markerHalfSize; d <= markerHalfSize; d++ {
		if x := cx + d; x >= bounds.Min.X && x < bounds.Max.X &&
			cy >= bounds.Min.Y && cy < bounds.Max.Y {
			img.Set(x, cy, markerColor)
		}
		if y := cy + d; y >= bounds.Min.Y && y < bounds.Max.Y &&
			cx >= bounds.Min.X && cx < bounds.Max.X {
			img.Set(cx, y, markerColor)
		}
	}
}
