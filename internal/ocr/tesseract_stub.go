//go:build !cgo

package ocr

import "image"

// ReadTag is a stub for builds without CGO. It always returns
// ErrUnavailable.
func ReadTag(img image.Image, language string) (*TagText, error) {
	return nil, ErrUnavailable
}

// Available reports whether OCR support is compiled into the binary.
func Available() bool {
	return false
}
