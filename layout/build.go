package layout

import "github.com/corvidfold/flowbox/style"

// buildBoxTree constructs the layout box tree for styled, which must
// not itself have display:none — callers (Tree) are responsible for
// the root display:none check, since that case is a *LayoutError, not
// an omission, while display:none descendants are silently dropped.
func buildBoxTree(styled *style.StyledNode) *Box {
	kind := InlineBox
	if styled.Display() == style.Block {
		kind = BlockBox
	}
	box := newBox(kind, styled)
	for _, child := range styled.Children() {
		if child.Display() == style.None {
			continue
		}
		box.insertChild(buildBoxTree(child))
	}
	return box
}
