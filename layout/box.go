package layout

import (
	"github.com/corvidfold/flowbox/style"
	"github.com/corvidfold/flowbox/tree"
)

// BoxKind tags the closed sum of layout box variants: BlockBox,
// InlineBox, or AnonymousBox — no fourth case exists.
type BoxKind int

const (
	BlockBox BoxKind = iota
	InlineBox
	AnonymousBox
)

func (k BoxKind) String() string {
	switch k {
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	default:
		return "anonymous"
	}
}

// Box is a node of the layout tree. Styled is nil for AnonymousBox:
// anonymous blocks have no styled node of their own to read properties
// from.
type Box struct {
	Kind       BoxKind
	Styled     *style.StyledNode
	Dimensions Dimensions

	tn *tree.Node[*Box]
}

func newBox(kind BoxKind, styled *style.StyledNode) *Box {
	b := &Box{Kind: kind, Styled: styled}
	b.tn = tree.NewNode(b)
	return b
}

// Children returns b's ordered child boxes.
func (b *Box) Children() []*Box {
	kids := b.tn.Children()
	out := make([]*Box, len(kids))
	for i, k := range kids {
		out[i] = k.Payload
	}
	return out
}

func (b *Box) lastChild() (*Box, bool) {
	last, ok := b.tn.LastChild()
	if !ok {
		return nil, false
	}
	return last.Payload, true
}

func (b *Box) appendChild(child *Box) {
	b.tn.AddChild(child.tn)
}

// insertChild implements the anonymous-block grouping rule: contiguous
// inline children of a block box share a single trailing AnonymousBlock
// (reusing the block's last child if it's already one); block children,
// and any child of a non-block box, are appended directly.
func (b *Box) insertChild(child *Box) {
	if b.Kind != BlockBox || child.Kind != InlineBox {
		b.appendChild(child)
		return
	}
	last, ok := b.lastChild()
	if !ok || last.Kind != AnonymousBox {
		last = newBox(AnonymousBox, nil)
		b.appendChild(last)
	}
	last.appendChild(child)
}
