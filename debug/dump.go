package debug

import (
	"fmt"

	"github.com/corvidfold/flowbox/dom"
	"github.com/corvidfold/flowbox/layout"
	"github.com/corvidfold/flowbox/style"
	tp "github.com/xlab/treeprint"
)

// DOMTree renders root's DOM subtree as an indented ASCII tree.
func DOMTree(root *dom.Node) string {
	p := tp.New()
	addDOMNode(p, root)
	out := p.String()
	tracer().Debugf("rendered DOM tree, %d bytes", len(out))
	return out
}

func addDOMNode(p tp.Tree, n *dom.Node) {
	kids := n.Children()
	if len(kids) == 0 {
		p.AddNode(n.String())
		return
	}
	branch := p.AddBranch(n.String())
	for _, ch := range kids {
		addDOMNode(branch, ch)
	}
}

// StyledTree renders root's styled subtree, each node labeled with its
// DOM node and resolved display value.
func StyledTree(root *style.StyledNode) string {
	p := tp.New()
	addStyledNode(p, root)
	out := p.String()
	tracer().Debugf("rendered styled tree, %d bytes", len(out))
	return out
}

func addStyledNode(p tp.Tree, sn *style.StyledNode) {
	label := fmt.Sprintf("%s [display:%s]", sn.DOMNode.String(), sn.Display())
	kids := sn.Children()
	if len(kids) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range kids {
		addStyledNode(branch, ch)
	}
}

// LayoutTree renders root's layout subtree, each node labeled with its
// kind and content-box geometry.
func LayoutTree(root *layout.Box) string {
	p := tp.New()
	addLayoutBox(p, root)
	out := p.String()
	tracer().Debugf("rendered layout tree, %d bytes", len(out))
	return out
}

func addLayoutBox(p tp.Tree, b *layout.Box) {
	d := b.Dimensions
	label := fmt.Sprintf("%s (x:%.0f y:%.0f w:%.0f h:%.0f)", b.Kind, d.X, d.Y, d.Width, d.Height)
	kids := b.Children()
	if len(kids) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range kids {
		addLayoutBox(branch, ch)
	}
}
