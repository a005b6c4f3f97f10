package landmarks

import "github.com/specimen-tools/wingpoints/internal/mask"

// Surface is a write-only rendering handle the orchestrator draws overlays
// on. Implementations render to a plot, an image file, or nothing at all;
// the orchestrator never reads a surface back, and drawing has no effect on
// the returned landmark data.
//
// Detect accepts an ordered list of up to four surfaces and draws the
// points-of-interest overlay on the third (index 2), mirroring the panel
// layout of the full processing pipeline (ruler, binarization, landmarks,
// measurement). The presence of a fourth surface signals a compact layout,
// shrinking the landmark markers.
type Surface interface {
	// SetTitle names the panel.
	SetTitle(title string)

	// DrawMask renders a binary mask as the panel background.
	DrawMask(m *mask.Mask)

	// DrawVLine draws a dashed vertical line across the full panel height
	// at the given column.
	DrawVLine(col int)

	// DrawPoints scatters markers of the given size at the listed points.
	DrawPoints(points []mask.Point, markerSize int)
}
