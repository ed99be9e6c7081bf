package style

import (
	"strconv"
	"strings"
)

// Kind is the tag of a style value.
type Kind uint8

// Kinds of style values. KindNone is the kind of the zero Value.
const (
	KindNone Kind = iota
	KindNumber
	KindColor
	KindKeyword
	KindString
	KindSequence
	KindVar
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindColor:
		return "color"
	case KindKeyword:
		return "keyword"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindVar:
		return "var"
	}
	return "none"
}

// Value is a typed style value.
/*
type Value
	= None
	| Number float
	| Color  (r, g, b, a)
	| Keyword ident
	| String text
	| Sequence [float]
	| Var --name
*/
type Value struct {
	kind  Kind
	num   float64
	color Color
	text  string    // keyword, string or custom property name
	seq   []float64 // never shared with clients
}

// Number creates a numeric style value.
func Number(x float64) Value {
	return Value{kind: KindNumber, num: x}
}

// ColorValue creates a color style value.
func ColorValue(c Color) Value {
	return Value{kind: KindColor, color: c}
}

// RGBA creates a color style value from channels in [0,1].
func RGBA(r, g, b, a float64) Value {
	return ColorValue(Color{r, g, b, a})
}

// Keyword creates an enumerated style value, e.g. "center".
func Keyword(kw string) Value {
	return Value{kind: KindKeyword, text: kw}
}

// String creates a textual style value, e.g. a font family name.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Sequence creates a style value holding an ordered sequence of numbers.
// The numbers are copied.
func Sequence(xs ...float64) Value {
	seq := make([]float64, len(xs))
	copy(seq, xs)
	return Value{kind: KindSequence, seq: seq}
}

// Var creates a reference to a custom property, e.g. Var("--accent").
func Var(name string) Value {
	return Value{kind: KindVar, text: name}
}

// Kind returns the tag of a value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty is true for the zero value and for empty strings.
func (v Value) IsEmpty() bool {
	return v.kind == KindNone || (v.kind == KindString && v.text == "")
}

// IsVar is a predicate for references to custom properties.
func (v Value) IsVar() bool {
	return v.kind == KindVar
}

// Equal compares two values. Numbers and colors are compared exactly.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == other.num
	case KindColor:
		return v.color == other.color
	case KindKeyword, KindString, KindVar:
		return v.text == other.text
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if v.seq[i] != other.seq[i] {
				return false
			}
		}
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return formatFloat(v.num)
	case KindColor:
		return v.color.String()
	case KindKeyword:
		return v.text
	case KindString:
		return strconv.Quote(v.text)
	case KindSequence:
		parts := make([]string, len(v.seq))
		for i, x := range v.seq {
			parts[i] = formatFloat(x)
		}
		return "(" + strings.Join(parts, " ") + ")"
	case KindVar:
		return "var(" + v.text + ")"
	}
	return "<none>"
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for a value.
func (v Value) Match() *Matcher {
	return &Matcher{value: v}
}

// Matcher de-structures a value, e.g.
//
//     var x float64
//     switch m := v.Match(); m {
//     case m.Number(&x):
//         …
//     }
//
// Every method returns the matcher itself if the value is of the requested
// kind (and extracts the payload, if a non-nil target is given), nil otherwise.
type Matcher struct {
	value Value
}

// IsKind matches a value of a given kind.
func (m *Matcher) IsKind(k Kind) *Matcher {
	if m.value.kind == k {
		return m
	}
	return nil
}

// None matches the empty value.
func (m *Matcher) None() *Matcher {
	return m.IsKind(KindNone)
}

// Number matches a numeric value.
func (m *Matcher) Number(x *float64) *Matcher {
	if m.value.kind == KindNumber {
		if x != nil {
			*x = m.value.num
		}
		return m
	}
	return nil
}

// Color matches a color value.
func (m *Matcher) Color(c *Color) *Matcher {
	if m.value.kind == KindColor {
		if c != nil {
			*c = m.value.color
		}
		return m
	}
	return nil
}

// Keyword matches an enumerated value.
func (m *Matcher) Keyword(kw *string) *Matcher {
	if m.value.kind == KindKeyword {
		if kw != nil {
			*kw = m.value.text
		}
		return m
	}
	return nil
}

// Text matches a string value.
func (m *Matcher) Text(s *string) *Matcher {
	if m.value.kind == KindString {
		if s != nil {
			*s = m.value.text
		}
		return m
	}
	return nil
}

// Sequence matches a sequence of numbers. The target receives a copy.
func (m *Matcher) Sequence(xs *[]float64) *Matcher {
	if m.value.kind == KindSequence {
		if xs != nil {
			seq := make([]float64, len(m.value.seq))
			copy(seq, m.value.seq)
			*xs = seq
		}
		return m
	}
	return nil
}

// Var matches a reference to a custom property and extracts its name.
func (m *Matcher) Var(name *string) *Matcher {
	if m.value.kind == KindVar {
		if name != nil {
			*name = m.value.text
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// ValuePatterns lists the results of an expression match per kind of value.
// Default is returned for values of unknown kind.
type ValuePatterns[T any] struct {
	None     T
	Number   T
	Color    T
	Keyword  T
	String   T
	Sequence T
	Var      T
	Default  T
}

// ValuePattern starts an expression match on a value, e.g.
//
//     w := ValuePattern[float64](v).OneOf(ValuePatterns[float64]{
//         Number:  x,
//         Default: 1.0,
//     })
func ValuePattern[T any](v Value) *VMatchExpr[T] {
	return &VMatchExpr[T]{value: v}
}

// VMatchExpr is part of pattern matching for values and intended to be
// instantiated using `ValuePattern()` only.
type VMatchExpr[T any] struct {
	value Value
}

// OneOf selects the pattern for the kind of the value.
func (m *VMatchExpr[T]) OneOf(patterns ValuePatterns[T]) T {
	switch m.value.kind {
	case KindNone:
		return patterns.None
	case KindNumber:
		return patterns.Number
	case KindColor:
		return patterns.Color
	case KindKeyword:
		return patterns.Keyword
	case KindString:
		return patterns.String
	case KindSequence:
		return patterns.Sequence
	case KindVar:
		return patterns.Var
	}
	return patterns.Default
}

// With extracts the number of a numeric value, for use in patterns.
func (m *VMatchExpr[T]) With(x *float64) *VMatchExpr[T] {
	if x != nil {
		*x = m.value.num
	}
	return m
}

// Const returns x, for use in patterns.
func (m *VMatchExpr[T]) Const(x T) T {
	return x
}
