package landmarks

import (
	"math"

	"github.com/specimen-tools/wingpoints/internal/mask"
)

// DistanceResult describes the separation between two landmarks.
type DistanceResult struct {
	DistancePixels float64 `json:"distance_pixels"`
	DeltaRow       int     `json:"delta_row"`
	DeltaCol       int     `json:"delta_col"`
	AngleDegrees   float64 `json:"angle_degrees"`
}

// MeasureDistance calculates the pixel distance between two landmarks.
// The angle is measured from the horizontal, 0 = rightward, 90 = downward.
func MeasureDistance(a, b mask.Point) DistanceResult {
	deltaRow := b.Row - a.Row
	deltaCol := b.Col - a.Col
	distance := math.Hypot(float64(deltaRow), float64(deltaCol))
	angle := math.Atan2(float64(deltaRow), float64(deltaCol)) * 180 / math.Pi

	return DistanceResult{
		DistancePixels: math.Round(distance*100) / 100,
		DeltaRow:       deltaRow,
		DeltaCol:       deltaCol,
		AngleDegrees:   math.Round(angle*10) / 10,
	}
}

// Measurements summarizes the standard wing measurements derived from a
// landmark set, in pixels. Calibration to physical units is a downstream
// concern.
type Measurements struct {
	// LeftWing and RightWing span wingtip to shoulder.
	LeftWing  DistanceResult `json:"left_wing"`
	RightWing DistanceResult `json:"right_wing"`

	// WingSpan spans the two wingtips.
	WingSpan DistanceResult `json:"wing_span"`
}

// Measure derives the standard wing measurements from a landmark result.
func Measure(res *Result) Measurements {
	return Measurements{
		LeftWing:  MeasureDistance(res.OuterL, res.InnerL),
		RightWing: MeasureDistance(res.OuterR, res.InnerR),
		WingSpan:  MeasureDistance(res.OuterL, res.OuterR),
	}
}
