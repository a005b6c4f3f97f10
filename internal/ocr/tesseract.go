//go:build cgo

package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ReadTag performs OCR on a cropped tag image and returns the recognized
// text. The language is a Tesseract code such as "eng"; the matching
// training data must be installed.
//
// Word-level confidence extraction is best effort: if bounding box
// extraction fails (for example on a Tesseract version mismatch), the
// full text is still returned with an empty Words slice.
func ReadTag(img image.Image, language string) (*TagText, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode tag image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("set ocr language %q: %w", language, err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("load tag image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("ocr: %w", err)
	}

	result := &TagText{Text: strings.TrimSpace(text)}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return result, nil
	}
	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		result.Words = append(result.Words, Word{
			Text:       word,
			Confidence: box.Confidence / 100.0,
		})
	}

	return result, nil
}

// Available reports whether OCR support is compiled into the binary.
func Available() bool {
	return true
}
