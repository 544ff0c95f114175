package layout

import (
	"github.com/corvidfold/flowbox/css"
	"github.com/corvidfold/flowbox/style"
)

var (
	autoKeyword = css.Keyword("auto")
	zeroLength  = css.Length(0, "px")
)

func isAuto(v css.Value) bool {
	return v.Kind == css.KeywordValue && v.Keyword == "auto"
}

// mustPx converts v to a px length, or returns a *LayoutError naming
// property if v isn't a length.
func mustPx(v css.Value, property string) (float32, error) {
	if px, ok := v.ToPx(); ok {
		return px, nil
	}
	return 0, newLayoutError(property, "value %v is not a length", v)
}

// Tree runs both the build and layout phases: style_tree + viewport ->
// layout tree with absolute geometry. viewport is the containing block
// for the root box: width and height pre-filled, all edges zero,
// origin (0,0).
func Tree(root *style.StyledNode, viewport Dimensions) (*Box, error) {
	if root.Display() == style.None {
		return nil, newLayoutError("display", "root styled node has display:none")
	}
	box := buildBoxTree(root)
	if err := layoutBox(box, viewport); err != nil {
		return nil, err
	}
	return box, nil
}

// layoutBox lays out box within containing, the dimensions of its
// containing block. Only block boxes carry out real width/height
// resolution; inline and anonymous boxes are laid out as zero-size
// no-ops at the parent's cursor, but are still recursed into so the
// tree shape is fully built.
func layoutBox(box *Box, containing Dimensions) error {
	switch box.Kind {
	case BlockBox:
		return layoutBlock(box, containing)
	default:
		box.Dimensions = Dimensions{X: containing.X, Y: containing.Y + containing.Height}
		for _, child := range box.Children() {
			if err := layoutBox(child, box.Dimensions); err != nil {
				return err
			}
		}
		return nil
	}
}

func layoutBlock(box *Box, containing Dimensions) error {
	if err := calculateWidth(box, containing); err != nil {
		return err
	}
	if err := calculateVerticalEdges(box, containing); err != nil {
		return err
	}
	if err := layoutBlockChildren(box); err != nil {
		return err
	}
	calculateHeight(box)
	return nil
}

// calculateWidth resolves width, margin-left/right, border-left/right-width,
// and padding-left/right per CSS 2.1 §10.3.3's block-level,
// non-replaced width algorithm.
func calculateWidth(box *Box, containing Dimensions) error {
	styled := box.Styled

	width, ok := styled.Value("width")
	if !ok {
		width = autoKeyword
	}
	marginLeft := styled.Lookup("margin-left", "margin", zeroLength)
	marginRight := styled.Lookup("margin-right", "margin", zeroLength)
	borderLeft := styled.Lookup("border-left-width", "border-width", zeroLength)
	borderRight := styled.Lookup("border-right-width", "border-width", zeroLength)
	paddingLeft := styled.Lookup("padding-left", "padding", zeroLength)
	paddingRight := styled.Lookup("padding-right", "padding", zeroLength)

	widthAuto := isAuto(width)
	marginLeftAuto := isAuto(marginLeft)
	marginRightAuto := isAuto(marginRight)

	widthPx := float32(0)
	if !widthAuto {
		px, err := mustPx(width, "width")
		if err != nil {
			return err
		}
		widthPx = px
	}
	marginLeftPx := float32(0)
	if !marginLeftAuto {
		px, err := mustPx(marginLeft, "margin-left")
		if err != nil {
			return err
		}
		marginLeftPx = px
	}
	marginRightPx := float32(0)
	if !marginRightAuto {
		px, err := mustPx(marginRight, "margin-right")
		if err != nil {
			return err
		}
		marginRightPx = px
	}
	borderLeftPx, err := mustPx(borderLeft, "border-left-width")
	if err != nil {
		return err
	}
	borderRightPx, err := mustPx(borderRight, "border-right-width")
	if err != nil {
		return err
	}
	paddingLeftPx, err := mustPx(paddingLeft, "padding-left")
	if err != nil {
		return err
	}
	paddingRightPx, err := mustPx(paddingRight, "padding-right")
	if err != nil {
		return err
	}

	total := marginLeftPx + marginRightPx + borderLeftPx + borderRightPx + paddingLeftPx + paddingRightPx + widthPx

	// If the values are overconstrained, auto margins act as if set to 0.
	if !widthAuto && total > containing.Width {
		if marginLeftAuto {
			marginLeftPx, marginLeftAuto = 0, false
		}
		if marginRightAuto {
			marginRightPx, marginRightAuto = 0, false
		}
	}

	underflow := containing.Width - total

	switch {
	case !widthAuto && !marginLeftAuto && !marginRightAuto:
		// Overconstrained: absorb the underflow into margin-right.
		marginRightPx += underflow
	case !widthAuto && !marginLeftAuto && marginRightAuto:
		marginRightPx = underflow
	case !widthAuto && marginLeftAuto && !marginRightAuto:
		marginLeftPx = underflow
	case widthAuto:
		if marginLeftAuto {
			marginLeftPx = 0
		}
		if marginRightAuto {
			marginRightPx = 0
		}
		if underflow >= 0 {
			widthPx = underflow
		} else {
			widthPx = 0
			marginRightPx += underflow
		}
	default: // !widthAuto && marginLeftAuto && marginRightAuto
		marginLeftPx = underflow / 2
		marginRightPx = underflow / 2
	}

	d := &box.Dimensions
	d.Width = widthPx
	d.Padding.Left = paddingLeftPx
	d.Padding.Right = paddingRightPx
	d.Border.Left = borderLeftPx
	d.Border.Right = borderRightPx
	d.Margin.Left = marginLeftPx
	d.Margin.Right = marginRightPx
	d.X = containing.X + d.Margin.Left + d.Border.Left + d.Padding.Left
	return nil
}

// calculateVerticalEdges resolves margin-top/bottom, border-top/bottom-width,
// and padding-top/bottom, and positions box.Dimensions.Y below the
// containing block's accumulated height.
func calculateVerticalEdges(box *Box, containing Dimensions) error {
	styled := box.Styled

	marginTop := styled.Lookup("margin-top", "margin", zeroLength)
	marginBottom := styled.Lookup("margin-bottom", "margin", zeroLength)
	borderTop := styled.Lookup("border-top-width", "border-width", zeroLength)
	borderBottom := styled.Lookup("border-bottom-width", "border-width", zeroLength)
	paddingTop := styled.Lookup("padding-top", "padding", zeroLength)
	paddingBottom := styled.Lookup("padding-bottom", "padding", zeroLength)

	marginTopPx, err := pxOrZeroIfAuto(marginTop, "margin-top")
	if err != nil {
		return err
	}
	marginBottomPx, err := pxOrZeroIfAuto(marginBottom, "margin-bottom")
	if err != nil {
		return err
	}
	borderTopPx, err := mustPx(borderTop, "border-top-width")
	if err != nil {
		return err
	}
	borderBottomPx, err := mustPx(borderBottom, "border-bottom-width")
	if err != nil {
		return err
	}
	paddingTopPx, err := mustPx(paddingTop, "padding-top")
	if err != nil {
		return err
	}
	paddingBottomPx, err := mustPx(paddingBottom, "padding-bottom")
	if err != nil {
		return err
	}

	d := &box.Dimensions
	d.Margin.Top = marginTopPx
	d.Margin.Bottom = marginBottomPx
	d.Border.Top = borderTopPx
	d.Border.Bottom = borderBottomPx
	d.Padding.Top = paddingTopPx
	d.Padding.Bottom = paddingBottomPx
	d.Y = containing.Y + containing.Height + d.Margin.Top + d.Border.Top + d.Padding.Top
	return nil
}

// pxOrZeroIfAuto treats an auto top/bottom margin as 0, else requires
// a length.
func pxOrZeroIfAuto(v css.Value, property string) (float32, error) {
	if isAuto(v) {
		return 0, nil
	}
	return mustPx(v, property)
}

// layoutBlockChildren lays out box's children in order against box's
// own current dimensions as their containing block, accumulating each
// child's margin-box height into box's height as it goes — so each
// child lands below the previous one.
func layoutBlockChildren(box *Box) error {
	for _, child := range box.Children() {
		if err := layoutBox(child, box.Dimensions); err != nil {
			return err
		}
		box.Dimensions.Height += child.Dimensions.MarginBoxHeight()
	}
	return nil
}

// calculateHeight overwrites the accumulated content height with an
// explicit `height: <length>px` declaration, if present. Any other
// value for "height" (absent, or a non-length keyword) leaves the
// shrink-to-fit accumulated height untouched.
func calculateHeight(box *Box) {
	if v, ok := box.Styled.Value("height"); ok && v.Kind == css.LengthValue {
		box.Dimensions.Height = v.Number
	}
}
