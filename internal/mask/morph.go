package mask

// Erode shrinks the foreground by one pixel: a cell survives only if it and
// all four edge neighbors are foreground. Cells on the grid border always
// erode, since their out-of-bounds neighbors count as background. The input
// is not modified.
func Erode(m *Mask) *Mask {
	out := New(m.Height, m.Width)
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			if m.At(r, c) &&
				m.At(r-1, c) && m.At(r+1, c) &&
				m.At(r, c-1) && m.At(r, c+1) {
				out.bits[r*out.Width+c] = true
			}
		}
	}
	return out
}

// Dilate grows the foreground by the given number of 4-connected iterations.
// The result contains exactly the cells within Manhattan distance iterations
// of the input foreground, computed with a multi-source breadth-first sweep
// instead of repeated passes. The input is not modified.
func Dilate(m *Mask, iterations int) *Mask {
	out := m.Clone()
	if iterations <= 0 {
		return out
	}

	dist := make([]int, m.Height*m.Width)
	var frontier []Point
	for r := 0; r < m.Height; r++ {
		for c := 0; c < m.Width; c++ {
			if m.bits[r*m.Width+c] {
				frontier = append(frontier, Point{r, c})
			} else {
				dist[r*m.Width+c] = -1
			}
		}
	}

	for depth := 1; depth <= iterations && len(frontier) > 0; depth++ {
		var next []Point
		for _, p := range frontier {
			for _, n := range [4]Point{
				{p.Row - 1, p.Col},
				{p.Row + 1, p.Col},
				{p.Row, p.Col - 1},
				{p.Row, p.Col + 1},
			} {
				if n.Row < 0 || n.Row >= m.Height || n.Col < 0 || n.Col >= m.Width {
					continue
				}
				idx := n.Row*m.Width + n.Col
				if dist[idx] != -1 {
					continue
				}
				dist[idx] = depth
				out.bits[idx] = true
				next = append(next, n)
			}
		}
		frontier = next
	}
	return out
}

// FillHoles fills interior background pockets: any background component not
// reachable from the grid border via 4-connected background cells becomes
// foreground. The input is not modified.
func FillHoles(m *Mask) *Mask {
	if m.Height == 0 || m.Width == 0 {
		return m.Clone()
	}

	outside := make([]bool, m.Height*m.Width)
	var queue []Point
	enqueue := func(r, c int) {
		idx := r*m.Width + c
		if !m.bits[idx] && !outside[idx] {
			outside[idx] = true
			queue = append(queue, Point{r, c})
		}
	}

	for c := 0; c < m.Width; c++ {
		enqueue(0, c)
		enqueue(m.Height-1, c)
	}
	for r := 0; r < m.Height; r++ {
		enqueue(r, 0)
		enqueue(r, m.Width-1)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.Row > 0 {
			enqueue(p.Row-1, p.Col)
		}
		if p.Row < m.Height-1 {
			enqueue(p.Row+1, p.Col)
		}
		if p.Col > 0 {
			enqueue(p.Row, p.Col-1)
		}
		if p.Col < m.Width-1 {
			enqueue(p.Row, p.Col+1)
		}
	}

	out := New(m.Height, m.Width)
	for i := range out.bits {
		out.bits[i] = m.bits[i] || !outside[i]
	}
	return out
}

// Intersect returns the cell-wise AND of two masks of equal dimensions.
func Intersect(a, b *Mask) *Mask {
	out := New(a.Height, a.Width)
	if b.Height != a.Height || b.Width != a.Width {
		return out
	}
	for i := range out.bits {
		out.bits[i] = a.bits[i] && b.bits[i]
	}
	return out
}

// ClearWhere returns a copy of m with every foreground cell of sel turned
// off. Dimensions must match; mismatched selections clear nothing.
func ClearWhere(m, sel *Mask) *Mask {
	out := m.Clone()
	if sel.Height != m.Height || sel.Width != m.Width {
		return out
	}
	for i := range out.bits {
		if sel.bits[i] {
			out.bits[i] = false
		}
	}
	return out
}
