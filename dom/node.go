package dom

import (
	"fmt"

	"github.com/corvidfold/flowbox/tree"
)

// NodeKind tags the two variants of Node: ElementKind and TextKind form a
// closed sum — there is no third case and none is ever added at runtime.
type NodeKind int

const (
	// ElementKind marks a Node as carrying a tag name and attributes.
	ElementKind NodeKind = iota
	// TextKind marks a Node as carrying a text payload and no children.
	TextKind
)

func (k NodeKind) String() string {
	if k == TextKind {
		return "#text"
	}
	return "element"
}

// Node is a DOM node: either an element (tag name, attributes, ordered
// children) or a text node (string payload, no children). Which fields
// are meaningful is determined by Kind.
type Node struct {
	Kind    NodeKind
	TagName string            // meaningful for ElementKind; lowercase-preserved as written
	Attrs   map[string]string // meaningful for ElementKind; keys unique
	Text    string            // meaningful for TextKind

	tn *tree.Node[*Node] // the generic tree node this Node is the payload of
}

// NewElement creates a detached element node with the given tag name.
func NewElement(tagName string, attrs map[string]string) *Node {
	if attrs == nil {
		attrs = map[string]string{}
	}
	n := &Node{Kind: ElementKind, TagName: tagName, Attrs: attrs}
	n.tn = tree.NewNode(n)
	return n
}

// NewText creates a detached text node carrying text.
func NewText(text string) *Node {
	n := &Node{Kind: TextKind, Text: text}
	n.tn = tree.NewNode(n)
	return n
}

// IsElement reports whether n is an element node.
func (n *Node) IsElement() bool { return n.Kind == ElementKind }

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n.Kind == TextKind }

// AppendChild appends ch as the last child of n. AppendChild panics if n
// is a text node: text nodes never have children, by construction of
// the parser, so attaching one is a programmer error, not a recoverable
// input error.
func (n *Node) AppendChild(ch *Node) {
	if n.Kind == TextKind {
		panic("dom: cannot append a child to a text node")
	}
	n.tn.AddChild(ch.tn)
}

// Children returns n's ordered child nodes. A text node always returns
// an empty slice.
func (n *Node) Children() []*Node {
	kids := n.tn.Children()
	out := make([]*Node, len(kids))
	for i, k := range kids {
		out[i] = k.Payload
	}
	return out
}

// Parent returns n's parent node, or nil if n is the root or detached.
func (n *Node) Parent() *Node {
	p := n.tn.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// Attr returns the value of attribute key and whether it is present.
// Always false for text nodes.
func (n *Node) Attr(key string) (string, bool) {
	if n.Kind != ElementKind {
		return "", false
	}
	v, ok := n.Attrs[key]
	return v, ok
}

// ID returns the value of the "id" attribute, or "" if absent.
func (n *Node) ID() string {
	v, _ := n.Attr("id")
	return v
}

func (n *Node) String() string {
	if n.Kind == TextKind {
		return fmt.Sprintf("#text(%q)", n.Text)
	}
	return fmt.Sprintf("<%s>", n.TagName)
}
