package binarize

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrThresholdingFailed indicates an Otsu computation could not separate a
// bimodal histogram, typically because the input region has (near-)constant
// intensity. Raised by the binarizer; not recoverable by retrying.
var ErrThresholdingFailed = errors.New("thresholding failed")

// Otsu computes the Otsu threshold of a float grid using a histogram with
// the given number of equal-width bins spanning the grid's value range.
//
// The returned threshold is the center of the bin maximizing between-class
// variance; binarize with value > threshold. A grid whose histogram occupies
// fewer than two bins cannot be split and yields ErrThresholdingFailed.
func Otsu(grid [][]float64, nbins int) (float64, error) {
	if nbins < 2 {
		return 0, fmt.Errorf("otsu: need at least 2 bins, got %d", nbins)
	}

	minV, maxV, n := gridStats(grid)
	if n == 0 {
		return 0, fmt.Errorf("%w: empty region", ErrThresholdingFailed)
	}
	if maxV == minV {
		return 0, fmt.Errorf("%w: constant intensity %g", ErrThresholdingFailed, minV)
	}

	counts := make([]float64, nbins)
	binWidth := (maxV - minV) / float64(nbins)
	for _, row := range grid {
		for _, v := range row {
			bin := int((v - minV) / binWidth)
			if bin >= nbins {
				bin = nbins - 1
			}
			counts[bin]++
		}
	}

	occupied := 0
	for _, c := range counts {
		if c > 0 {
			occupied++
		}
	}
	if occupied < 2 {
		return 0, fmt.Errorf("%w: histogram occupies %d bin(s)", ErrThresholdingFailed, occupied)
	}

	centers := make([]float64, nbins)
	weighted := make([]float64, nbins)
	for i := range counts {
		centers[i] = minV + (float64(i)+0.5)*binWidth
		weighted[i] = counts[i] * centers[i]
	}

	// Cumulative class weights and means from the left and from the right.
	weightLo := make([]float64, nbins)
	copy(weightLo, counts)
	floats.CumSum(weightLo, weightLo)
	sumLo := make([]float64, nbins)
	copy(sumLo, weighted)
	floats.CumSum(sumLo, sumLo)

	total := weightLo[nbins-1]
	totalSum := sumLo[nbins-1]

	bestIdx := -1
	bestVar := 0.0
	for i := 0; i < nbins-1; i++ {
		wLo := weightLo[i]
		wHi := total - wLo
		if wLo == 0 || wHi == 0 {
			continue
		}
		meanLo := sumLo[i] / wLo
		meanHi := (totalSum - sumLo[i]) / wHi
		d := meanLo - meanHi
		v := wLo * wHi * d * d
		if bestIdx == -1 || v > bestVar {
			bestIdx, bestVar = i, v
		}
	}
	if bestIdx == -1 {
		return 0, fmt.Errorf("%w: no usable bimodal split", ErrThresholdingFailed)
	}
	return centers[bestIdx], nil
}

func gridStats(grid [][]float64) (minV, maxV float64, n int) {
	for _, row := range grid {
		for _, v := range row {
			if n == 0 {
				minV, maxV = v, v
			} else {
				if v < minV {
					minV = v
				}
				if v > maxV {
					maxV = v
				}
			}
			n++
		}
	}
	return minV, maxV, n
}
