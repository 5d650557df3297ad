package wmctrl

import "fmt"

// Geometry is a window position and size in screen coordinates.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Transformation is a requested move/resize, formatted as the MVARG
// argument of wmctrl -e: "g,x,y,w,h". A value of -1 for any of x, y,
// width or height tells wmctrl to keep the current value.
type Transformation struct {
	Gravity int
	X       int
	Y       int
	Width   int
	Height  int
}

// NewTransformation builds a move/resize request with default gravity.
func NewTransformation(x, y, width, height int) Transformation {
	return Transformation{X: x, Y: y, Width: width, Height: height}
}

// String renders the MVARG argument.
func (t Transformation) String() string {
	return fmt.Sprintf("%d,%d,%d,%d,%d", t.Gravity, t.X, t.Y, t.Width, t.Height)
}

// Geometry returns the geometry the transformation requests.
func (t Transformation) Geometry() Geometry {
	return Geometry{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}
