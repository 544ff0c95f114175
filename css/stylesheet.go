package css

import "sort"

// Stylesheet is an ordered sequence of rules, in source order.
type Stylesheet struct {
	Rules []Rule
}

// Rule is a selector list plus a declaration block. Selectors is
// pre-sorted highest-specificity first by the parser.
type Rule struct {
	Selectors    []SimpleSelector
	Declarations []Declaration
}

// Declaration is a property name paired with a value, e.g.
// `margin-left: 15px`.
type Declaration struct {
	Name  string
	Value Value
}

// SimpleSelector is this grammar's only selector shape: a single
// compound of an optional tag name, an optional id, and a set of class
// names. There are no combinators, attribute selectors, or
// pseudo-classes.
type SimpleSelector struct {
	TagName string   // "" means unset
	ID      string   // "" means unset
	Classes []string // order-insensitive for matching
}

// Specificity is the triple (id-count, class-count, tag-count) compared
// lexicographically, per CSS's specificity algorithm restricted to this
// grammar's single-compound selectors.
type Specificity struct {
	ID, Class, Tag int
}

// Less reports whether s is strictly less specific than other, using
// lexicographic order over (ID, Class, Tag).
func (s Specificity) Less(other Specificity) bool {
	if s.ID != other.ID {
		return s.ID < other.ID
	}
	if s.Class != other.Class {
		return s.Class < other.Class
	}
	return s.Tag < other.Tag
}

// Specificity computes sel's specificity triple: http://www.w3.org/TR/selectors/#specificity
func (sel SimpleSelector) Specificity() Specificity {
	id := 0
	if sel.ID != "" {
		id = 1
	}
	tag := 0
	if sel.TagName != "" {
		tag = 1
	}
	return Specificity{ID: id, Class: len(sel.Classes), Tag: tag}
}

// sortSelectorsBySpecificityDescending sorts sels so that
// specificity(sels[i]) >= specificity(sels[i+1]) for all i. The sort is
// stable so that selectors of equal specificity keep their source order.
func sortSelectorsBySpecificityDescending(sels []SimpleSelector) {
	sort.SliceStable(sels, func(i, j int) bool {
		return sels[j].Specificity().Less(sels[i].Specificity())
	})
}
