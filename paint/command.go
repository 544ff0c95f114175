package paint

import (
	"github.com/corvidfold/flowbox/css"
	"github.com/corvidfold/flowbox/layout"
)

// Command is the closed sum of draw commands this core emits. Only one
// variant exists today: a solid-color fill of a rectangle.
type Command struct {
	Color css.Color
	Rect  layout.Rect
}

// DisplayList is the ordered sequence of draw commands a painter
// produces for one layout tree; later commands paint over earlier ones.
type DisplayList []Command

// Paint builds root's display list and rasterizes it onto a fresh
// width x height canvas.
func Paint(root *layout.Box, width, height int) *Canvas {
	return Render(BuildDisplayList(root), width, height)
}

// BuildDisplayList walks root in pre-order, emitting a background
// SolidColor and up to four border SolidColors per box before
// recursing into its children.
func BuildDisplayList(root *layout.Box) DisplayList {
	var list DisplayList
	renderBox(&list, root)
	tracer().Debugf("display list built: %d commands", len(list))
	return list
}

func renderBox(list *DisplayList, box *layout.Box) {
	renderBackground(list, box)
	renderBorders(list, box)
	for _, child := range box.Children() {
		renderBox(list, child)
	}
}

func renderBackground(list *DisplayList, box *layout.Box) {
	color, ok := boxColor(box, "background")
	if !ok {
		return
	}
	*list = append(*list, Command{Color: color, Rect: box.Dimensions.BorderBox()})
}

func renderBorders(list *DisplayList, box *layout.Box) {
	color, ok := boxColor(box, "border-color")
	if !ok {
		return
	}
	d := box.Dimensions
	border := d.BorderBox()

	*list = append(*list,
		Command{Color: color, Rect: layout.Rect{ // left
			X: border.X, Y: border.Y, Width: d.Border.Left, Height: border.Height,
		}},
		Command{Color: color, Rect: layout.Rect{ // right
			X: border.X + border.Width - d.Border.Right, Y: border.Y,
			Width: d.Border.Right, Height: border.Height,
		}},
		Command{Color: color, Rect: layout.Rect{ // top
			X: border.X, Y: border.Y, Width: border.Width, Height: d.Border.Top,
		}},
		Command{Color: color, Rect: layout.Rect{ // bottom
			X: border.X, Y: border.Y + border.Height - d.Border.Bottom,
			Width: border.Width, Height: d.Border.Bottom,
		}},
	)
}

// boxColor returns the specified color for property name on box's
// styled node, or false if box is an AnonymousBox (which never has a
// styled node) or the property isn't a color.
func boxColor(box *layout.Box, name string) (css.Color, bool) {
	if box.Styled == nil {
		return css.Color{}, false
	}
	v, ok := box.Styled.Value(name)
	if !ok || v.Kind != css.ColorValue {
		return css.Color{}, false
	}
	return v.Color, true
}
