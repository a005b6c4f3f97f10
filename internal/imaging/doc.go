// Package imaging provides image loading and channel extraction for the
// specimen pipeline.
//
// This package sits between decoded image.Image values and the float grids
// the binarizer works on. It extracts single intensity channels (the red
// channel for the first thresholding pass, the HSV saturation channel for
// the second), rescales intensity ranges, and crops frames to the specimen
// window.
//
// # Coordinate System
//
// Channel grids are indexed grid[row][col], 0-based, row 0 at the top. This
// is the (row, col) convention used by the mask and landmarks packages; note
// it is transposed from the (x, y) convention of image.Image, and the
// functions here perform that translation.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Channel extraction never
// mutates the source image, so extractions on the same image may run
// concurrently.
//
// # Error Handling
//
// Functions return errors for unreadable or undecodable files and for crop
// windows outside the frame. Degenerate image content (for example a
// constant-intensity channel) is not an error here; the binarizer detects
// and reports it.
package imaging
