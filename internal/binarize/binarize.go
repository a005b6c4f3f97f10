package binarize

import (
	"fmt"
	"image"

	"github.com/specimen-tools/wingpoints/internal/imaging"
	"github.com/specimen-tools/wingpoints/internal/mask"
)

// firstPassBins is the histogram resolution of the coarse red-channel Otsu
// pass. The coarse pass only needs to expose the tag blocks, so a reduced
// bin count keeps it robust against sensor noise.
const firstPassBins = 60

// secondPassBins is the histogram resolution of the refined saturation pass
// over the cropped specimen window.
const secondPassBins = 256

// Result holds the refined silhouette together with the crop geometry that
// produced it. The mask covers rows [0, TopRuler) x cols [0, TagEdge) of the
// source frame; landmark coordinates computed on it live in that frame.
type Result struct {
	// Mask is the specimen silhouette, tags excluded.
	Mask *mask.Mask

	// TagEdge is the whole-frame column separating the specimen (left)
	// from the printed tags (right).
	TagEdge int

	// TopRuler is the ruler-top row the frame was cropped at, echoed from
	// the input.
	TopRuler int
}

// Binarize produces the refined specimen silhouette from an RGB photograph
// and the ruler-top row supplied by the ruler detector.
//
// The first pass thresholds the red channel of the whole frame (60-bin Otsu)
// to locate the tag edge. The frame is then cropped to rows [0, topRuler)
// and columns [0, tagEdge), and the crop's HSV saturation channel, rescaled
// to [0, 255], is thresholded with a second Otsu cutoff to yield the
// silhouette.
//
// Binarize is a pure function of (img, topRuler); callers that want
// memoization wrap it with the cache collaborator.
func Binarize(img image.Image, topRuler int) (*Result, error) {
	red := imaging.RedChannel(img)

	coarseThresh, err := Otsu(red, firstPassBins)
	if err != nil {
		return nil, fmt.Errorf("first pass: %w", err)
	}
	firstPass := mask.FromGrid(red, coarseThresh)

	tagEdge, err := FindTagsEdge(firstPass, topRuler)
	if err != nil {
		return nil, fmt.Errorf("tag edge: %w", err)
	}

	cropped, err := imaging.CropRows(img, topRuler, tagEdge)
	if err != nil {
		return nil, fmt.Errorf("specimen crop: %w", err)
	}

	saturation := imaging.RescaleIntensity(imaging.SaturationChannel(cropped), 0, 255)
	refinedThresh, err := Otsu(saturation, secondPassBins)
	if err != nil {
		return nil, fmt.Errorf("second pass: %w", err)
	}

	return &Result{
		Mask:     mask.FromGrid(saturation, refinedThresh),
		TagEdge:  tagEdge,
		TopRuler: topRuler,
	}, nil
}
