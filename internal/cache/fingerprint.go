package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"hash"
	"image"

	"github.com/specimen-tools/wingpoints/internal/mask"
)

// pipelineVersion is folded into every fingerprint. Bump it whenever an
// algorithm change makes previously cached results stale.
const pipelineVersion = "wingpoints-1"

// Fingerprint hashes an image's pixel content together with the ruler
// boundary that parameterizes the pipeline. Two images with identical
// pixels and parameters fingerprint identically regardless of their
// source encoding.
func Fingerprint(img image.Image, topRuler int) string {
	h := sha256.New()
	h.Write([]byte(pipelineVersion))

	bounds := img.Bounds()
	writeInts(h, bounds.Dx(), bounds.Dy(), topRuler)

	var px [8]byte
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			binary.LittleEndian.PutUint16(px[0:], uint16(r))
			binary.LittleEndian.PutUint16(px[2:], uint16(g))
			binary.LittleEndian.PutUint16(px[4:], uint16(b))
			binary.LittleEndian.PutUint16(px[6:], uint16(a))
			h.Write(px[:])
		}
	}

	return fmt.Sprintf("%x", h.Sum(nil))
}

// MaskFingerprint hashes a binary mask, for memoizing stages that consume
// a silhouette rather than a photograph.
func MaskFingerprint(m *mask.Mask) string {
	h := sha256.New()
	h.Write([]byte(pipelineVersion))

	blob, _ := m.MarshalBinary()
	h.Write(blob)

	return fmt.Sprintf("%x", h.Sum(nil))
}

func writeInts(h hash.Hash, vals ...int) {
	var buf [8]byte
	for _, v := range vals {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
}
