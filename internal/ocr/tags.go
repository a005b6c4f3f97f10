package ocr

import "errors"

// ErrUnavailable is returned when the binary was built without Tesseract
// support (CGO disabled).
var ErrUnavailable = errors.New("ocr support not compiled in")

// TagText holds the text recovered from a specimen tag.
type TagText struct {
	// Text is the recognized tag content with original line breaks.
	Text string `json:"text"`

	// Words lists individual recognized words with confidence scores.
	Words []Word `json:"words,omitempty"`
}

// Word is a single recognized token.
type Word struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}
