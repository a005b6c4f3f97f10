package mask

import (
	"encoding/binary"
	"fmt"
)

// Point represents a pixel coordinate as (row, col), 0-based from the
// top-left corner.
type Point struct {
	Row int `json:"row"` // Vertical position (0 = topmost)
	Col int `json:"col"` // Horizontal position (0 = leftmost)
}

// Mask is a dense 2D boolean grid. True cells are foreground.
//
// Cells are stored row-major. The zero value is an empty 0x0 mask; use New
// to allocate a sized one.
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

// New allocates an all-background mask of the given dimensions.
func New(height, width int) *Mask {
	if height < 0 || width < 0 {
		height, width = 0, 0
	}
	return &Mask{
		Width:  width,
		Height: height,
		bits:   make([]bool, height*width),
	}
}

// At reports whether the cell at (row, col) is foreground.
// Coordinates outside the grid are background.
func (m *Mask) At(row, col int) bool {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return false
	}
	return m.bits[row*m.Width+col]
}

// Set assigns the cell at (row, col). Out-of-bounds coordinates are ignored.
func (m *Mask) Set(row, col int, v bool) {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return
	}
	m.bits[row*m.Width+col] = v
}

// Clone returns an independent copy of the mask.
func (m *Mask) Clone() *Mask {
	out := New(m.Height, m.Width)
	copy(out.bits, m.bits)
	return out
}

// Count returns the number of foreground cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Invert returns a new mask with foreground and background swapped.
func (m *Mask) Invert() *Mask {
	out := New(m.Height, m.Width)
	for i, b := range m.bits {
		out.bits[i] = !b
	}
	return out
}

// ColumnSums returns the per-column foreground cell counts.
func (m *Mask) ColumnSums() []float64 {
	sums := make([]float64, m.Width)
	for r := 0; r < m.Height; r++ {
		base := r * m.Width
		for c := 0; c < m.Width; c++ {
			if m.bits[base+c] {
				sums[c]++
			}
		}
	}
	return sums
}

// SubMask extracts the window rows [r0, r1) x cols [c0, c1) into a new mask.
// The window is clamped to the grid; an inverted or empty window yields a
// 0-sized mask.
func (m *Mask) SubMask(r0, c0, r1, c1 int) *Mask {
	r0 = clamp(r0, 0, m.Height)
	r1 = clamp(r1, 0, m.Height)
	c0 = clamp(c0, 0, m.Width)
	c1 = clamp(c1, 0, m.Width)
	if r1 < r0 {
		r1 = r0
	}
	if c1 < c0 {
		c1 = c0
	}
	out := New(r1-r0, c1-c0)
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			out.bits[(r-r0)*out.Width+(c-c0)] = m.bits[r*m.Width+c]
		}
	}
	return out
}

// SplitAt partitions the mask at the given column into a left half covering
// cols [0, col) and a right half covering cols [col, width). Together the
// halves cover every cell exactly once.
func (m *Mask) SplitAt(col int) (left, right *Mask) {
	return m.SubMask(0, 0, m.Height, col), m.SubMask(0, col, m.Height, m.Width)
}

// ConcatHorizontal joins two masks of equal height side by side, left first.
func ConcatHorizontal(left, right *Mask) (*Mask, error) {
	if left.Height != right.Height {
		return nil, fmt.Errorf("height mismatch: %d vs %d", left.Height, right.Height)
	}
	out := New(left.Height, left.Width+right.Width)
	for r := 0; r < out.Height; r++ {
		for c := 0; c < left.Width; c++ {
			out.bits[r*out.Width+c] = left.bits[r*left.Width+c]
		}
		for c := 0; c < right.Width; c++ {
			out.bits[r*out.Width+left.Width+c] = right.bits[r*right.Width+c]
		}
	}
	return out, nil
}

// FromGrid builds a mask by thresholding a float grid: cells with
// value > threshold become foreground. Rows must be equal length.
func FromGrid(grid [][]float64, threshold float64) *Mask {
	h := len(grid)
	w := 0
	if h > 0 {
		w = len(grid[0])
	}
	out := New(h, w)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if grid[r][c] > threshold {
				out.bits[r*w+c] = true
			}
		}
	}
	return out
}

// MarshalBinary encodes the mask as two uint32 dimensions followed by a
// bit-packed payload. Used by the result cache.
func (m *Mask) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 8+(len(m.bits)+7)/8)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(m.Height))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(m.Width))
	for i, b := range m.bits {
		if b {
			buf[8+i/8] |= 1 << uint(i%8)
		}
	}
	return buf, nil
}

// UnmarshalBinary decodes a payload produced by MarshalBinary.
func (m *Mask) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("mask payload too short: %d bytes", len(data))
	}
	h := int(binary.LittleEndian.Uint32(data[0:4]))
	w := int(binary.LittleEndian.Uint32(data[4:8]))
	n := h * w
	if len(data) < 8+(n+7)/8 {
		return fmt.Errorf("mask payload truncated: want %dx%d cells", h, w)
	}
	m.Height, m.Width = h, w
	m.bits = make([]bool, n)
	for i := 0; i < n; i++ {
		m.bits[i] = data[8+i/8]&(1<<uint(i%8)) != 0
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
