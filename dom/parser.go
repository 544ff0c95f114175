package dom

import (
	"strings"
	"unicode/utf8"
)

// Parse reads an HTML source string and returns the document root. If the
// parsed top-level sequence is exactly one element, that element is
// returned directly; otherwise the sequence is wrapped in a synthetic
// "html" element.
func Parse(source string) (*Node, error) {
	p := &parser{input: source}
	nodes, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if len(nodes) == 1 && nodes[0].IsElement() {
		tracer().Debugf("parsed document is a single root element <%s>, no wrap", nodes[0].TagName)
		return nodes[0], nil
	}
	tracer().Debugf("wrapping %d top-level nodes in synthetic <html>", len(nodes))
	root := NewElement("html", nil)
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// parser is a recursive-descent reader over source, tracking a byte
// cursor. It decodes runes at that cursor but never backtracks — every
// byte, once consumed, is gone for good.
type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

// peekRune returns the rune at the cursor and its byte width, without
// advancing. It returns (0, 0) at end of input.
func (p *parser) peekRune() (rune, int) {
	if p.eof() {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(p.input[p.pos:])
	return r, size
}

func (p *parser) startsWith(s string) bool {
	return strings.HasPrefix(p.input[p.pos:], s)
}

// expect asserts that the literal lit occurs at the cursor and consumes
// it, or returns a *ParseError without advancing.
func (p *parser) expect(lit string) error {
	if !p.startsWith(lit) {
		return newParseError(p.pos, "expected %q", lit)
	}
	p.pos += len(lit)
	return nil
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}

func isNameByte(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func (p *parser) consumeWhitespace() {
	for {
		r, size := p.peekRune()
		if size == 0 || !isWhitespace(r) {
			return
		}
		p.pos += size
	}
}

// parseName reads Name := one or more of [A-Za-z0-9].
func (p *parser) parseName() (string, error) {
	start := p.pos
	for {
		r, size := p.peekRune()
		if size == 0 || !isNameByte(r) {
			break
		}
		p.pos += size
	}
	if p.pos == start {
		return "", newParseError(start, "expected a name")
	}
	return p.input[start:p.pos], nil
}

// parseNodes reads Nodes := ( whitespace? Node )* terminated by
// end-of-input or the literal "</".
func (p *parser) parseNodes() ([]*Node, error) {
	var nodes []*Node
	for {
		p.consumeWhitespace()
		if p.eof() || p.startsWith("</") {
			return nodes, nil
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

func (p *parser) parseNode() (*Node, error) {
	if p.startsWith("<") {
		return p.parseElement()
	}
	return p.parseText()
}

// parseElement reads:
//
//	Element := '<' Name Attributes '>' Nodes '</' Name '>'
//
// A self-closing form, '<' Name Attributes '/>' , is also accepted with
// no children and no separate close tag, so Attributes' terminator check
// also recognizes "/>" (documented in DESIGN.md).
func (p *parser) parseElement() (*Node, error) {
	if err := p.expect("<"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	elem := NewElement(name, attrs)
	if p.startsWith("/>") {
		p.pos += len("/>")
		return elem, nil
	}
	if err := p.expect(">"); err != nil {
		return nil, err
	}
	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	for _, ch := range children {
		elem.AppendChild(ch)
	}
	closeOffset := p.pos
	if err := p.expect("</"); err != nil {
		return nil, err
	}
	closeName, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.expect(">"); err != nil {
		return nil, err
	}
	if closeName != name {
		return nil, newParseError(closeOffset, "mismatched close tag: expected </%s>, found </%s>", name, closeName)
	}
	return elem, nil
}

// parseAttributes reads Attributes := ( whitespace AttrPair )*,
// terminated when the next non-whitespace byte is '>' (or, for the
// self-closing extension above, "/>").
func (p *parser) parseAttributes() (map[string]string, error) {
	attrs := map[string]string{}
	for {
		p.consumeWhitespace()
		if p.eof() || p.startsWith(">") || p.startsWith("/>") {
			return attrs, nil
		}
		name, value, err := p.parseAttrPair()
		if err != nil {
			return nil, err
		}
		attrs[name] = value // later occurrences overwrite earlier ones
	}
}

// parseAttrPair reads:
//
//	AttrPair := Name '=' ( '"' … '"' | '\'' … '\'' )
//
// where the closing quote must match the opening quote exactly.
func (p *parser) parseAttrPair() (name, value string, err error) {
	name, err = p.parseName()
	if err != nil {
		return "", "", err
	}
	if err := p.expect("="); err != nil {
		return "", "", err
	}
	quoteOffset := p.pos
	quote, size := p.peekRune()
	if size == 0 || (quote != '"' && quote != '\'') {
		return "", "", newParseError(quoteOffset, "expected a quoted attribute value")
	}
	p.pos += size
	start := p.pos
	for {
		r, sz := p.peekRune()
		if sz == 0 {
			return "", "", newParseError(start, "unterminated attribute value")
		}
		if r == quote {
			break
		}
		p.pos += sz
	}
	value = p.input[start:p.pos]
	p.pos += size // consume the matching closing quote
	return name, value, nil
}

// parseText reads Text := one or more bytes until the next '<'.
func (p *parser) parseText() (*Node, error) {
	start := p.pos
	for !p.eof() && !p.startsWith("<") {
		_, size := p.peekRune()
		if size == 0 {
			break
		}
		p.pos += size
	}
	if p.pos == start {
		return nil, newParseError(start, "expected text or an element")
	}
	return NewText(p.input[start:p.pos]), nil
}
