// Package visual renders landmark results for human review.
//
// Two surfaces are provided. Panel produces standalone diagnostic figures
// (one PNG per pipeline stage) through gonum/plot; it implements
// landmarks.Surface by recording draw calls and materializing the plot on
// Save, so a panel that is never saved costs nothing. Overlay paints the
// landmarks directly onto the photograph for a quick side-by-side check.
//
// Both surfaces use the pipeline's (row, col) coordinates and handle the
// translation to the y-up frame of the plotting backend internally.
package visual
