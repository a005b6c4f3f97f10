package landmarks

import (
	"fmt"

	"github.com/specimen-tools/wingpoints/internal/mask"
)

// Landmark keys, fixed by the output contract with downstream measurement
// code.
const (
	KeyOuterL     = "outer_pix_l"
	KeyInnerL     = "inner_pix_l"
	KeyOuterR     = "outer_pix_r"
	KeyInnerR     = "inner_pix_r"
	KeyBodyCenter = "body_center"
)

// Result holds the five landmarks in the whole-silhouette coordinate frame,
// plus the reconstructed antenna-free mask and the midline column used for
// the split.
type Result struct {
	OuterL     mask.Point `json:"outer_pix_l"`
	InnerL     mask.Point `json:"inner_pix_l"`
	OuterR     mask.Point `json:"outer_pix_r"`
	InnerR     mask.Point `json:"inner_pix_r"`
	BodyCenter mask.Point `json:"body_center"`

	// Midline is the symmetry-axis column the silhouette was split at.
	Midline int `json:"midline"`

	// CleanMask is the silhouette with antenna artifacts removed,
	// reassembled from the two processed halves.
	CleanMask *mask.Mask `json:"-"`
}

// Points returns the five landmarks keyed by their contract names.
func (r *Result) Points() map[string]mask.Point {
	return map[string]mask.Point{
		KeyOuterL:     r.OuterL,
		KeyInnerL:     r.InnerL,
		KeyOuterR:     r.OuterR,
		KeyInnerR:     r.InnerR,
		KeyBodyCenter: r.BodyCenter,
	}
}

// Detect extracts the five landmarks from a specimen silhouette.
//
// The silhouette is split at the body midline into a left half (columns
// [0, midline)) and a right half (columns [midline, width)). Each half is
// antenna-cleaned, then searched for its wingtip and shoulder. Half-local
// coordinates are translated back to the silhouette frame: right-half
// results gain the midline column offset, and the left shoulder gains the
// left wingtip's column offset (its search window starts at the wingtip
// column, not at zero).
//
// surfaces is an ordered list of up to four optional rendering handles; nil
// entries are skipped. Drawing is purely additive and never alters the
// returned result. Detect is otherwise a pure function of the silhouette
// and is safe to memoize by mask fingerprint.
func Detect(silhouette *mask.Mask, surfaces []Surface) (*Result, error) {
	middle, err := SplitColumn(silhouette)
	if err != nil {
		return nil, fmt.Errorf("midline: %w", err)
	}

	left, right := silhouette.SplitAt(middle)

	middleRow, err := columnRowCentroid(silhouette, middle)
	if err != nil {
		return nil, fmt.Errorf("body center: %w", err)
	}
	bodyCenter := mask.Point{Row: middleRow, Col: middle}

	// Left wing. Its half shares the silhouette's column origin, so the
	// whole-frame body center is a valid reference in half coordinates.
	cleanLeft := RemoveAntenna(left)
	outerL, err := DetectOuterPixel(cleanLeft, bodyCenter)
	if err != nil {
		return nil, fmt.Errorf("left wingtip: %w", err)
	}
	innerL, err := DetectInnerPixel(cleanLeft, outerL, SideLeft)
	if err != nil {
		return nil, fmt.Errorf("left shoulder: %w", err)
	}
	innerL.Col += outerL.Col

	// Right wing. The reference center projects to column 0 of the
	// right half so wingtip distance grows away from the body axis.
	cleanRight := RemoveAntenna(right)
	outerR, err := DetectOuterPixel(cleanRight, mask.Point{Row: middleRow, Col: 0})
	if err != nil {
		return nil, fmt.Errorf("right wingtip: %w", err)
	}
	innerR, err := DetectInnerPixel(cleanRight, outerR, SideRight)
	if err != nil {
		return nil, fmt.Errorf("right shoulder: %w", err)
	}
	outerR.Col += middle
	innerR.Col += middle

	cleanMask, err := mask.ConcatHorizontal(cleanLeft, cleanRight)
	if err != nil {
		return nil, fmt.Errorf("reassemble mask: %w", err)
	}

	result := &Result{
		OuterL:     outerL,
		InnerL:     innerL,
		OuterR:     outerR,
		InnerR:     innerR,
		BodyCenter: bodyCenter,
		Midline:    middle,
		CleanMask:  cleanMask,
	}

	drawOverlay(surfaces, result)
	return result, nil
}

// columnRowCentroid returns the mean row of the foreground cells in one
// column, truncated to an integer.
func columnRowCentroid(m *mask.Mask, col int) (int, error) {
	sum, n := 0, 0
	for r := 0; r < m.Height; r++ {
		if m.At(r, col) {
			sum += r
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("midline column %d has no foreground: %w", col, mask.ErrNoRegionsFound)
	}
	return sum / n, nil
}

// drawOverlay renders the points-of-interest panel on the third surface, if
// present. A fourth surface indicates a compact multi-panel layout and
// shrinks the markers.
func drawOverlay(surfaces []Surface, res *Result) {
	if len(surfaces) < 3 || surfaces[2] == nil {
		return
	}
	s := surfaces[2]

	s.SetTitle("Points of interest")
	s.DrawMask(res.CleanMask)
	s.DrawVLine(res.Midline)

	markerSize := 10
	if len(surfaces) > 3 && surfaces[3] != nil {
		markerSize = 2
	}
	s.DrawPoints([]mask.Point{
		res.OuterL, res.InnerL, res.OuterR, res.InnerR, res.BodyCenter,
	}, markerSize)
}
