package layout

// EdgeSizes holds the four edge widths of one box-model layer
// (padding, border, or margin), all in px.
type EdgeSizes struct {
	Left, Right, Top, Bottom float32
}

// Dimensions is a box's content rectangle plus its three surrounding
// edge quadruples, following the CSS box model: content, then padding,
// then border, then margin.
type Dimensions struct {
	X, Y          float32
	Width, Height float32

	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// Rect is a plain axis-aligned rectangle in px, independent of the box
// model layering Dimensions adds on top of it.
type Rect struct {
	X, Y, Width, Height float32
}

func (r Rect) expandedBy(edge EdgeSizes) Rect {
	return Rect{
		X:      r.X - edge.Left,
		Y:      r.Y - edge.Top,
		Width:  r.Width + edge.Left + edge.Right,
		Height: r.Height + edge.Top + edge.Bottom,
	}
}

// ContentBox is the content rectangle itself.
func (d Dimensions) ContentBox() Rect {
	return Rect{X: d.X, Y: d.Y, Width: d.Width, Height: d.Height}
}

// PaddingBox is the content rectangle expanded by padding.
func (d Dimensions) PaddingBox() Rect {
	return d.ContentBox().expandedBy(d.Padding)
}

// BorderBox is the padding box expanded by the border width — this is
// the rectangle the painter fills for a background color.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().expandedBy(d.Border)
}

// MarginBox is the border box expanded by margin.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().expandedBy(d.Margin)
}

// MarginBoxHeight is the total vertical space a box occupies in normal
// flow: content height plus vertical padding, border, and margin.
func (d Dimensions) MarginBoxHeight() float32 {
	return d.Height +
		d.Padding.Top + d.Padding.Bottom +
		d.Border.Top + d.Border.Bottom +
		d.Margin.Top + d.Margin.Bottom
}
