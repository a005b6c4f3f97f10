// Package ocr reads the printed text on specimen tags.
//
// Museum photographs carry identification tags (catalog numbers, locality
// labels) in the top-right corner of the frame. After binarization locates
// the tag boundary, the tag area can be cropped out and passed here to
// recover the printed text via Tesseract (through gosseract/v2).
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// The bindings require CGO. Builds without CGO get a stub that returns
// ErrUnavailable, so the rest of the pipeline works unchanged; only tag
// reading is disabled.
package ocr
