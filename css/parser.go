package css

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse reads a CSS source string and returns a Stylesheet. The parser
// is strict: any byte the grammar does not expect at its current
// position raises a *ParseError carrying that byte's offset.
func Parse(source string) (Stylesheet, error) {
	p := &parser{input: source}
	var rules []Rule
	for {
		p.consumeWhitespace()
		if p.eof() {
			break
		}
		rule, err := p.parseRule()
		if err != nil {
			return Stylesheet{}, err
		}
		rules = append(rules, rule)
	}
	tracer().Debugf("parsed stylesheet with %d rules", len(rules))
	return Stylesheet{Rules: rules}, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peekRune() (rune, int) {
	if p.eof() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(p.input[p.pos:])
}

func (p *parser) startsWith(s string) bool {
	return strings.HasPrefix(p.input[p.pos:], s)
}

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

func isIdentChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
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

func (p *parser) consumeWhile(test func(rune) bool) string {
	start := p.pos
	for {
		r, size := p.peekRune()
		if size == 0 || !test(r) {
			break
		}
		p.pos += size
	}
	return p.input[start:p.pos]
}

// parseIdentifier reads an Identifier: one or more of [A-Za-z0-9_-].
func (p *parser) parseIdentifier() (string, error) {
	start := p.pos
	ident := p.consumeWhile(isIdentChar)
	if ident == "" {
		return "", newParseError(start, "expected an identifier")
	}
	return ident, nil
}

// parseRule reads Rule := Selectors Declarations, where Declarations
// itself consumes the enclosing '{' ... '}' (the Selectors production
// stops at, but does not consume, the opening brace).
func (p *parser) parseRule() (Rule, error) {
	selectors, err := p.parseSelectors()
	if err != nil {
		return Rule{}, err
	}
	declarations, err := p.parseDeclarations()
	if err != nil {
		return Rule{}, err
	}
	return Rule{Selectors: selectors, Declarations: declarations}, nil
}

// parseSelectors reads:
//
//	Selectors := SimpleSelector ( whitespace? ',' whitespace? SimpleSelector )*
//
// and sorts the result by specificity descending on completion.
func (p *parser) parseSelectors() ([]SimpleSelector, error) {
	var sels []SimpleSelector
	for {
		p.consumeWhitespace()
		sel, err := p.parseSimpleSelector()
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
		p.consumeWhitespace()
		r, size := p.peekRune()
		if size == 0 {
			return nil, newParseError(p.pos, "unexpected end of input in selector list")
		}
		switch r {
		case ',':
			p.pos += size
		case '{':
			sortSelectorsBySpecificityDescending(sels)
			return sels, nil
		default:
			return nil, newParseError(p.pos, "unexpected character %q in selector list", r)
		}
	}
}

// parseSimpleSelector reads a run of id/class/universal/tag atoms until
// the next character is none of them and not an identifier character.
func (p *parser) parseSimpleSelector() (SimpleSelector, error) {
	var sel SimpleSelector
	for {
		r, size := p.peekRune()
		if size == 0 {
			break
		}
		switch {
		case r == '#':
			p.pos += size
			id, err := p.parseIdentifier()
			if err != nil {
				return SimpleSelector{}, err
			}
			sel.ID = id // overwrite: later #id wins
		case r == '.':
			p.pos += size
			class, err := p.parseIdentifier()
			if err != nil {
				return SimpleSelector{}, err
			}
			sel.Classes = append(sel.Classes, class)
		case r == '*':
			p.pos += size // universal: no effect on specificity
		case isIdentChar(r):
			tag, err := p.parseIdentifier()
			if err != nil {
				return SimpleSelector{}, err
			}
			sel.TagName = tag // overwrite: later tag name wins
		default:
			return sel, nil
		}
	}
	return sel, nil
}

// parseDeclarations reads Declarations := '{' ( whitespace? Declaration )* '}'.
func (p *parser) parseDeclarations() ([]Declaration, error) {
	p.consumeWhitespace()
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	var decls []Declaration
	for {
		p.consumeWhitespace()
		if p.startsWith("}") {
			p.pos++
			return decls, nil
		}
		if p.eof() {
			return nil, newParseError(p.pos, "unterminated declaration block, expected %q", "}")
		}
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
}

// parseDeclaration reads:
//
//	Declaration := Identifier whitespace? ':' whitespace? Value whitespace? ';'
func (p *parser) parseDeclaration() (Declaration, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return Declaration{}, err
	}
	p.consumeWhitespace()
	if err := p.expect(":"); err != nil {
		return Declaration{}, err
	}
	p.consumeWhitespace()
	value, err := p.parseValue()
	if err != nil {
		return Declaration{}, err
	}
	p.consumeWhitespace()
	if err := p.expect(";"); err != nil {
		return Declaration{}, err
	}
	return Declaration{Name: name, Value: value}, nil
}

// parseValue reads Value := if next char is a digit, Length; if '#',
// Color; else Keyword.
func (p *parser) parseValue() (Value, error) {
	r, size := p.peekRune()
	if size == 0 {
		return Value{}, newParseError(p.pos, "expected a value")
	}
	switch {
	case isDigit(r):
		return p.parseLength()
	case r == '#':
		return p.parseColor()
	default:
		kw, err := p.parseIdentifier()
		if err != nil {
			return Value{}, err
		}
		return Keyword(kw), nil
	}
}

// parseLength reads Length := float Unit, where Unit must be "px"
// (case-insensitive); any other unit is a *ParseError.
func (p *parser) parseLength() (Value, error) {
	numStart := p.pos
	numStr := p.consumeWhile(func(r rune) bool { return isDigit(r) || r == '.' })
	n, err := strconv.ParseFloat(numStr, 32)
	if err != nil {
		return Value{}, newParseError(numStart, "malformed number %q", numStr)
	}
	unitStart := p.pos
	unit, err := p.parseIdentifier()
	if err != nil {
		return Value{}, err
	}
	if !strings.EqualFold(unit, "px") {
		return Value{}, newParseError(unitStart, "unrecognized unit %q", unit)
	}
	return Length(float32(n), "px"), nil
}

// parseColor reads Color := '#' six hex digits, two per channel,
// alpha=255.
func (p *parser) parseColor() (Value, error) {
	start := p.pos
	if err := p.expect("#"); err != nil {
		return Value{}, err
	}
	if len(p.input)-p.pos < 6 {
		return Value{}, newParseError(start, "malformed color, expected 6 hex digits")
	}
	hex := p.input[p.pos : p.pos+6]
	for _, r := range hex {
		if !isHexDigit(r) {
			return Value{}, newParseError(start, "malformed color %q, expected 6 hex digits", hex)
		}
	}
	p.pos += 6
	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return RGBA(uint8(r), uint8(g), uint8(b), 255), nil
}
