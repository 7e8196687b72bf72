package core

// Grid stores a 2D layer of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for (row, col).
func (g Grid[T]) Index(row, col int) int { return row*g.W + col }

// At returns the value stored at (row, col).
func (g Grid[T]) At(row, col int) T { return g.data[row*g.W+col] }

// Set stores v at (row, col).
func (g Grid[T]) Set(row, col int, v T) { g.data[row*g.W+col] = v }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// OnBorder reports whether (row, col) lies on the outermost ring.
func (g Grid[T]) OnBorder(row, col int) bool {
	return row == 0 || col == 0 || row == g.H-1 || col == g.W-1
}

// Fill sets every cell to v.
func (g Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g Grid[T]) Clone() Grid[T] {
	out := Grid[T]{W: g.W, H: g.H, data: make([]T, len(g.data))}
	copy(out.data, g.data)
	return out
}

// CopyFrom overwrites the grid contents with src. Dimensions must match.
func (g Grid[T]) CopyFrom(src Grid[T]) {
	copy(g.data, src.data)
}
