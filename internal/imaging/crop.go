package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropRows extracts the window rows [0, bottom) x cols [0, right) from an
// image. This is the specimen window: everything below the ruler top and
// right of the tag edge is discarded before the refined thresholding pass.
//
// Row/col coordinates follow the pipeline convention (row 0 at the top); the
// translation to image.Rect x/y happens here.
func CropRows(img image.Image, bottom, right int) (image.Image, error) {
	bounds := img.Bounds()
	if bottom <= 0 || right <= 0 {
		return nil, fmt.Errorf("invalid crop window: %d rows x %d cols", bottom, right)
	}
	if bottom > bounds.Dy() || right > bounds.Dx() {
		return nil, fmt.Errorf("crop window %d rows x %d cols exceeds frame %dx%d",
			bottom, right, bounds.Dy(), bounds.Dx())
	}

	rect := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+right, bounds.Min.Y+bottom)
	return imaging.Crop(img, rect), nil
}

// CropTagArea extracts the printed-tag window rows [0, bottom) x
// cols [left, width). Used by the optional tag OCR pass after the tag edge
// has been located.
func CropTagArea(img image.Image, bottom, left int) (image.Image, error) {
	bounds := img.Bounds()
	if bottom <= 0 || left < 0 || left >= bounds.Dx() {
		return nil, fmt.Errorf("invalid tag window: rows [0,%d) cols [%d,%d)", bottom, left, bounds.Dx())
	}
	if bottom > bounds.Dy() {
		bottom = bounds.Dy()
	}

	rect := image.Rect(bounds.Min.X+left, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+bottom)
	return imaging.Crop(img, rect), nil
}
