package style

import (
	"github.com/corvidfold/flowbox/css"
	"github.com/corvidfold/flowbox/dom"
	"github.com/corvidfold/flowbox/tree"
)

// Display is the resolved value of the "display" property: Block,
// Inline, or None. Default (no declaration present) is Inline.
type Display int

const (
	Inline Display = iota
	Block
	None
)

func (d Display) String() string {
	switch d {
	case Block:
		return "block"
	case None:
		return "none"
	default:
		return "inline"
	}
}

// StyledNode mirrors a dom.Node one-to-one, carrying the specified
// values computed for it by style_tree. Text nodes get an empty
// property map.
type StyledNode struct {
	DOMNode    *dom.Node
	Properties map[string]css.Value

	tn *tree.Node[*StyledNode]
}

func newStyledNode(domNode *dom.Node, props map[string]css.Value) *StyledNode {
	sn := &StyledNode{DOMNode: domNode, Properties: props}
	sn.tn = tree.NewNode(sn)
	return sn
}

// Children returns sn's ordered styled children.
func (sn *StyledNode) Children() []*StyledNode {
	kids := sn.tn.Children()
	out := make([]*StyledNode, len(kids))
	for i, k := range kids {
		out[i] = k.Payload
	}
	return out
}

// Parent returns sn's parent, or nil for the styled root.
func (sn *StyledNode) Parent() *StyledNode {
	p := sn.tn.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// Value returns the specified value for property name, if present.
func (sn *StyledNode) Value(name string) (css.Value, bool) {
	v, ok := sn.Properties[name]
	return v, ok
}

// Lookup returns value(name), else value(fallback), else a clone of
// def. Used for shorthand resolution, e.g. `margin-left` falling back
// to `margin`.
func (sn *StyledNode) Lookup(name, fallback string, def css.Value) css.Value {
	if v, ok := sn.Value(name); ok {
		return v
	}
	if v, ok := sn.Value(fallback); ok {
		return v
	}
	return def
}

// Display reads the "display" property: one of Block, Inline, None.
// The default, when no "display" declaration matched, is Inline.
func (sn *StyledNode) Display() Display {
	v, ok := sn.Value("display")
	if !ok || v.Kind != css.KeywordValue {
		return Inline
	}
	switch v.Keyword {
	case "block":
		return Block
	case "none":
		return None
	default:
		return Inline
	}
}
