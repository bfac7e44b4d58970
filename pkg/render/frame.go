package render

// DefaultVertexRadius is the disc radius in pixels.
const DefaultVertexRadius = 15.0

// Frame is a pixel area that normalized vertex coordinates are mapped into.
type Frame struct {
	Width, Height float64
	Radius        float64
}

// NewFrame returns a Frame of the given size with the default vertex radius.
func NewFrame(width, height float64) Frame {
	return Frame{Width: width, Height: height, Radius: DefaultVertexRadius}
}

// Project maps normalized (x, y) to pixel coordinates with y growing
// downward. The frame is inset by the radius on every side.
func (f Frame) Project(x, y float64) (px, py float64) {
	px = x*(f.Width-2*f.Radius) + f.Radius
	py = y*(f.Height-2*f.Radius) + f.Radius
	return px, py
}

// ProjectUp is Project with y growing upward, as Graphviz expects.
func (f Frame) ProjectUp(x, y float64) (px, py float64) {
	px, py = f.Project(x, y)
	return px, f.Height - py
}
