package css

import "fmt"

// ValueKind tags the closed sum of CSS value variants: a Value is
// exactly one of Keyword, Length, or Color — there is no open
// extension.
type ValueKind int

const (
	KeywordValue ValueKind = iota
	LengthValue
	ColorValue
)

// Value is a CSS property value: a keyword identifier, a length in px,
// or an RGBA color. Which fields are meaningful is determined by Kind.
// Equality on Value is structural (plain Go ==, since every field is a
// comparable scalar or a comparable struct).
type Value struct {
	Kind ValueKind

	Keyword string // meaningful for KeywordValue

	Number float32 // meaningful for LengthValue
	Unit   string  // meaningful for LengthValue; always "px" — the only unit this grammar accepts

	Color Color // meaningful for ColorValue
}

// Color is an RGBA color, each channel a byte.
type Color struct {
	R, G, B, A uint8
}

func Keyword(name string) Value {
	return Value{Kind: KeywordValue, Keyword: name}
}

func Length(n float32, unit string) Value {
	return Value{Kind: LengthValue, Number: n, Unit: unit}
}

func RGBA(r, g, b, a uint8) Value {
	return Value{Kind: ColorValue, Color: Color{r, g, b, a}}
}

// ToPx returns the value's px length and true if Kind is LengthValue;
// otherwise it returns (0, false) — converting a keyword or color to a
// length is a layout-time invariant violation, not something this
// package raises an error for itself (see layout.LayoutError).
func (v Value) ToPx() (float32, bool) {
	if v.Kind != LengthValue {
		return 0, false
	}
	return v.Number, true
}

func (v Value) String() string {
	switch v.Kind {
	case KeywordValue:
		return v.Keyword
	case LengthValue:
		return fmt.Sprintf("%g%s", v.Number, v.Unit)
	case ColorValue:
		return fmt.Sprintf("#%02x%02x%02x%02x", v.Color.R, v.Color.G, v.Color.B, v.Color.A)
	default:
		return "<invalid value>"
	}
}
