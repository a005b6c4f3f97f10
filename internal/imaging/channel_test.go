package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// fillImage creates a solid color test image.
func fillImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRedChannel(t *testing.T) {
	img := fillImage(4, 3, color.RGBA{0, 0, 0, 255})
	img.Set(2, 1, color.RGBA{200, 50, 10, 255})

	grid := RedChannel(img)
	if len(grid) != 3 || len(grid[0]) != 4 {
		t.Fatalf("grid dims: got %dx%d, want 3x4", len(grid), len(grid[0]))
	}
	// (x=2, y=1) maps to grid[1][2].
	if grid[1][2] != 200 {
		t.Errorf("grid[1][2]: got %v, want 200", grid[1][2])
	}
	if grid[0][0] != 0 {
		t.Errorf("background red: got %v, want 0", grid[0][0])
	}
}

func TestSaturationChannel(t *testing.T) {
	img := fillImage(2, 2, color.RGBA{128, 128, 128, 255})
	img.Set(1, 0, color.RGBA{255, 0, 0, 255})

	grid := SaturationChannel(img)
	if grid[0][0] != 0 {
		t.Errorf("gray saturation: got %v, want 0", grid[0][0])
	}
	if math.Abs(grid[0][1]-1.0) > 1e-9 {
		t.Errorf("pure red saturation: got %v, want 1", grid[0][1])
	}
}

func TestRescaleIntensity(t *testing.T) {
	grid := [][]float64{{0.2, 0.4}, {0.6, 0.2}}

	out := RescaleIntensity(grid, 0, 255)
	if out[0][0] != 0 {
		t.Errorf("minimum should map to 0, got %v", out[0][0])
	}
	if out[1][0] != 255 {
		t.Errorf("maximum should map to 255, got %v", out[1][0])
	}
	if math.Abs(out[0][1]-127.5) > 1e-9 {
		t.Errorf("midpoint should map to 127.5, got %v", out[0][1])
	}
}

func TestRescaleIntensityConstant(t *testing.T) {
	grid := [][]float64{{0.5, 0.5}}

	out := RescaleIntensity(grid, 0, 255)
	if out[0][0] != 0 || out[0][1] != 0 {
		t.Error("constant grid should map uniformly to the low bound")
	}
}

func TestCropRows(t *testing.T) {
	img := fillImage(10, 8, color.White)

	cropped, err := CropRows(img, 5, 7)
	if err != nil {
		t.Fatalf("CropRows failed: %v", err)
	}
	if cropped.Bounds().Dy() != 5 || cropped.Bounds().Dx() != 7 {
		t.Errorf("cropped dims: got %dx%d, want 5 rows x 7 cols",
			cropped.Bounds().Dy(), cropped.Bounds().Dx())
	}
}

func TestCropRowsOutOfBounds(t *testing.T) {
	img := fillImage(10, 8, color.White)

	if _, err := CropRows(img, 9, 7); err == nil {
		t.Error("expected error for window taller than frame")
	}
	if _, err := CropRows(img, 0, 7); err == nil {
		t.Error("expected error for empty window")
	}
}

func TestCropTagArea(t *testing.T) {
	img := fillImage(10, 8, color.White)

	cropped, err := CropTagArea(img, 6, 4)
	if err != nil {
		t.Fatalf("CropTagArea failed: %v", err)
	}
	if cropped.Bounds().Dx() != 6 || cropped.Bounds().Dy() != 6 {
		t.Errorf("tag window dims: got %d cols x %d rows, want 6x6",
			cropped.Bounds().Dx(), cropped.Bounds().Dy())
	}
}
