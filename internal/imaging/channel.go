package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// RedChannel extracts the red component of every pixel as a grid of 0-255
// intensities indexed grid[row][col].
//
// The red channel is the first-pass binarization input: against the pale
// board background it separates the dark specimen body and wings well enough
// to locate the printed tags, which are then cropped before the refined
// saturation pass.
func RedChannel(img image.Image) [][]float64 {
	bounds := img.Bounds()
	height := bounds.Dy()
	width := bounds.Dx()

	grid := make([][]float64, height)
	for r := 0; r < height; r++ {
		grid[r] = make([]float64, width)
		for c := 0; c < width; c++ {
			red, _, _, _ := img.At(bounds.Min.X+c, bounds.Min.Y+r).RGBA()
			grid[r][c] = float64(red >> 8)
		}
	}
	return grid
}

// SaturationChannel converts every pixel to HSV and extracts the saturation
// component as a grid of values in [0, 1] indexed grid[row][col].
//
// Saturation distinguishes the colored wing surface from both the near-white
// board and near-black shadows, which share low saturation. The conversion
// uses S = (max-min)/max with S = 0 for black.
func SaturationChannel(img image.Image) [][]float64 {
	bounds := img.Bounds()
	height := bounds.Dy()
	width := bounds.Dx()

	grid := make([][]float64, height)
	for r := 0; r < height; r++ {
		grid[r] = make([]float64, width)
		for c := 0; c < width; c++ {
			red, green, blue, _ := img.At(bounds.Min.X+c, bounds.Min.Y+r).RGBA()
			col := colorful.Color{
				R: float64(red>>8) / 255.0,
				G: float64(green>>8) / 255.0,
				B: float64(blue>>8) / 255.0,
			}
			_, s, _ := col.Hsv()
			grid[r][c] = s
		}
	}
	return grid
}

// RescaleIntensity linearly maps the grid's value range onto [lo, hi] and
// returns a new grid. A constant grid maps uniformly to lo, leaving the
// degenerate case for the thresholding stage to report.
func RescaleIntensity(grid [][]float64, lo, hi float64) [][]float64 {
	minV, maxV, ok := gridRange(grid)

	out := make([][]float64, len(grid))
	for r := range grid {
		out[r] = make([]float64, len(grid[r]))
		for c, v := range grid[r] {
			if !ok || maxV == minV {
				out[r][c] = lo
				continue
			}
			out[r][c] = lo + (v-minV)/(maxV-minV)*(hi-lo)
		}
	}
	return out
}

// gridRange returns the minimum and maximum values of a grid. ok is false
// for a grid with no cells.
func gridRange(grid [][]float64) (minV, maxV float64, ok bool) {
	for _, row := range grid {
		for _, v := range row {
			if !ok {
				minV, maxV, ok = v, v, true
				continue
			}
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}
	return minV, maxV, ok
}
