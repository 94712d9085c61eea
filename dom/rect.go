package dom

// Rect is an axis-aligned rectangle in terminal cell coordinates. X and Y
// locate the top-left corner; Width and Height are in cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point (x, y) falls inside the rectangle.
// Rectangles with non-positive width or height contain nothing.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// IsZero reports whether the rectangle is the zero value.
func (r Rect) IsZero() bool {
	return r == Rect{}
}
