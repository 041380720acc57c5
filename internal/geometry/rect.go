// Package geometry defines the Rect type shared by every tiling algorithm
// and the gap-application pass.
package geometry

// Rect is an integer rectangle in absolute device-pixel coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Left, Top, Right, Bottom give the edge coordinates. Right/Bottom are
// inclusive (matching the "last pixel" convention used by the gap pass),
// so for a Rect of Width w starting at X, Right == X+w-1.
func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.Width - 1 }
func (r Rect) Bottom() int { return r.Y + r.Height - 1 }

// Area returns Width*Height. Degenerate rects (non-positive dimensions)
// have zero or negative area.
func (r Rect) Area() int { return r.Width * r.Height }

// Valid reports whether the rect has strictly positive dimensions.
func (r Rect) Valid() bool { return r.Width > 0 && r.Height > 0 }

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.Left() >= r.Left() && other.Top() >= r.Top() &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// DistributeEvenly splits total into count parts as evenly as possible,
// handing the remainder one pixel at a time to the first parts. Mirrors
// the reference TilingAlgorithm::distributeEvenly helper shared by the
// Columns/Rows/Master-Stack/Three-Column algorithms.
func DistributeEvenly(total, count int) []int {
	if count <= 0 || total <= 0 {
		return nil
	}

	sizes := make([]int, 0, count)
	base := total / count
	remainder := total % count

	for i := 0; i < count; i++ {
		size := base
		if remainder > 0 {
			size++
			remainder--
		}
		sizes = append(sizes, size)
	}

	return sizes
}

// StackRects lays out sizes (as returned by DistributeEvenly) as a vertical
// stack of rects starting at (x, y) of the given width, top to bottom. Used
// by algorithms that distribute windows down a column.
func StackRects(x, y, width int, heights []int) []Rect {
	rects := make([]Rect, len(heights))
	cursor := y
	for i, h := range heights {
		rects[i] = Rect{X: x, Y: cursor, Width: width, Height: h}
		cursor += h
	}
	return rects
}

// RowRects is the horizontal twin of StackRects: lays out widths as a row
// of rects starting at (x, y) of the given height, left to right.
func RowRects(x, y, height int, widths []int) []Rect {
	rects := make([]Rect, len(widths))
	cursor := x
	for i, w := range widths {
		rects[i] = Rect{X: cursor, Y: y, Width: w, Height: height}
		cursor += w
	}
	return rects
}
