package paint

import "github.com/corvidfold/flowbox/css"

// Canvas is a reference in-memory rasterizer: it plays a DisplayList
// back into a flat pixel buffer. It exists to make the painter
// contract testable end-to-end; flowbox does not otherwise define pixel
// output or encoding as a first-class concern.
type Canvas struct {
	Pixels        []css.Color
	Width, Height int
}

var white = css.Color{R: 255, G: 255, B: 255, A: 255}

// NewCanvas allocates a width x height canvas filled with white.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{Width: width, Height: height, Pixels: make([]css.Color, width*height)}
	for i := range c.Pixels {
		c.Pixels[i] = white
	}
	return c
}

// At returns the pixel color at (x, y).
func (c *Canvas) At(x, y int) css.Color {
	return c.Pixels[y*c.Width+x]
}

// paintItem fills cmd.Rect, clipped to the canvas extents, with
// cmd.Color — using standard half-open [start, end) integer ranges.
// No alpha compositing with the existing pixel value.
func (c *Canvas) paintItem(cmd Command) {
	x0 := clampInt(cmd.Rect.X, c.Width)
	y0 := clampInt(cmd.Rect.Y, c.Height)
	x1 := clampInt(cmd.Rect.X+cmd.Rect.Width, c.Width)
	y1 := clampInt(cmd.Rect.Y+cmd.Rect.Height, c.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Pixels[y*c.Width+x] = cmd.Color
		}
	}
}

func clampInt(v float32, max int) int {
	if v < 0 {
		return 0
	}
	if int(v) > max {
		return max
	}
	return int(v)
}

// Render paints list onto a fresh width x height canvas and returns it.
func Render(list DisplayList, width, height int) *Canvas {
	c := NewCanvas(width, height)
	for _, cmd := range list {
		c.paintItem(cmd)
	}
	return c
}
