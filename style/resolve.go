package style

import (
	"sort"
	"strings"

	"github.com/corvidfold/flowbox/css"
	"github.com/corvidfold/flowbox/dom"
)

// MatchedRule pairs a rule with the specific selector of its (already
// specificity-sorted) selector list that matched an element — the unit
// the cascade sorts and applies, and the piece cascade-determinism
// checks need to inspect independent of the final property map.
type MatchedRule struct {
	Selector css.SimpleSelector
	Rule     css.Rule
}

func (m MatchedRule) specificity() css.Specificity {
	return m.Selector.Specificity()
}

// MatchedRules collects, for elem, the first (highest-specificity)
// selector of every stylesheet rule that matches it, scanning the
// stylesheet's rules linearly in source order. A rule contributes at
// most one MatchedRule, even if several of its selectors match.
func MatchedRules(elem *dom.Node, sheet css.Stylesheet) []MatchedRule {
	var matched []MatchedRule
	for _, rule := range sheet.Rules {
		for _, sel := range rule.Selectors { // pre-sorted highest-specificity first
			if matchesSelector(elem, sel) {
				matched = append(matched, MatchedRule{Selector: sel, Rule: rule})
				break
			}
		}
	}
	return matched
}

// matchesSelector implements single-compound selector matching: tag
// name equality, id equality, and class set membership, all conjoined;
// an empty (universal) selector matches everything.
func matchesSelector(elem *dom.Node, sel css.SimpleSelector) bool {
	if sel.TagName != "" && sel.TagName != elem.TagName {
		return false
	}
	if sel.ID != "" && elem.ID() != sel.ID {
		return false
	}
	if len(sel.Classes) > 0 {
		classAttr, _ := elem.Attr("class")
		elemClasses := make(map[string]struct{}, 4)
		for _, c := range strings.Fields(classAttr) {
			elemClasses[c] = struct{}{}
		}
		for _, want := range sel.Classes {
			if _, ok := elemClasses[want]; !ok {
				return false
			}
		}
	}
	return true
}

// specifiedValues computes elem's specified-values map: collect matched
// rules, stable-sort them by their selector's specificity ascending,
// then apply each matched rule's declarations in that order, later
// entries overwriting earlier ones.
func specifiedValues(elem *dom.Node, sheet css.Stylesheet) map[string]css.Value {
	matched := MatchedRules(elem, sheet)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].specificity().Less(matched[j].specificity())
	})
	values := make(map[string]css.Value)
	for _, m := range matched {
		for _, decl := range m.Rule.Declarations {
			values[decl.Name] = decl.Value
		}
	}
	return values
}

// Tree builds the styled tree for domRoot against sheet: style_tree(dom_root, stylesheet) -> styled_root.
// Text nodes receive an empty property map; element nodes receive the
// result of specifiedValues. Children are styled recursively, in
// document order.
func Tree(domRoot *dom.Node, sheet css.Stylesheet) *StyledNode {
	var props map[string]css.Value
	if domRoot.IsElement() {
		props = specifiedValues(domRoot, sheet)
	} else {
		props = map[string]css.Value{}
	}
	sn := newStyledNode(domRoot, props)
	for _, domChild := range domRoot.Children() {
		sn.tn.AddChild(Tree(domChild, sheet).tn)
	}
	tracer().Debugf("styled %v with %d properties, %d children", domRoot, len(props), len(domRoot.Children()))
	return sn
}
