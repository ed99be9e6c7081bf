package style

import (
	"github.com/npillmayer/cascade/dom"
)

// Styler is implemented by compiled stylesheets. Styles keep a reference to
// the Styler which produced them, for lazily styling related nodes.
type Styler interface {
	Match(dom.StyleNode) *Style
}

// Style is the resolved style of a node: a mapping from property names to
// values, plus an optional nested style for the "::after" pseudo-element.
//
// A Style also carries two opaque back-references, the node it has been
// computed for and the stylesheet it has been computed with. They do not
// take part in the cascade and are ignored by Equal and String.
//
// Styles are created by the engine and handed over to the caller; the engine
// never changes a style after returning it. nil is a legal (empty) style.
type Style struct {
	props Declarations
	after *Style
	node  dom.StyleNode
	sheet Styler
}

// NewStyle creates a style from resolved declarations. The declarations are
// owned by the style from now on. An empty after-style is dropped.
func NewStyle(props Declarations, after *Style, node dom.StyleNode, sheet Styler) *Style {
	if props == nil {
		props = Declarations{}
	}
	if after.Len() == 0 {
		after = nil
	}
	return &Style{
		props: props,
		after: after,
		node:  node,
		sheet: sheet,
	}
}

// Len returns the number of properties, not counting the after-style.
func (s *Style) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}

// Get returns the value of a property.
func (s *Style) Get(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	v, ok := s.props[key]
	return v, ok
}

// Has is a predicate checking if a property is set.
func (s *Style) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Keys returns the property keys of a style in ascending order.
func (s *Style) Keys() []string {
	if s == nil {
		return nil
	}
	return s.props.Keys()
}

// Properties returns a copy of the property mapping.
func (s *Style) Properties() Declarations {
	if s == nil {
		return Declarations{}
	}
	return s.props.Clone()
}

// After returns the style of the "::after" pseudo-element, or nil.
func (s *Style) After() *Style {
	if s == nil {
		return nil
	}
	return s.after
}

// Node returns the node this style has been computed for.
func (s *Style) Node() dom.StyleNode {
	if s == nil {
		return nil
	}
	return s.node
}

// StyleSheet returns the stylesheet this style has been computed with.
func (s *Style) StyleSheet() Styler {
	if s == nil {
		return nil
	}
	return s.sheet
}

// ParentStyle matches the parent of the styled node against the stylesheet
// which produced s. It returns nil for root nodes and for styles without
// back-references.
func (s *Style) ParentStyle() *Style {
	if s == nil || s.node == nil || s.sheet == nil {
		return nil
	}
	parent := dom.Unwrap(s.node).Parent()
	if parent == nil {
		return nil
	}
	return s.sheet.Match(parent)
}

// Equal compares the properties and after-styles of two styles.
// Back-references are not compared.
func (s *Style) Equal(other *Style) bool {
	if s.Len() != other.Len() || s.After().Len() != other.After().Len() {
		return false
	}
	if s.Len() > 0 && !s.props.Equal(other.props) {
		return false
	}
	if s.After().Len() > 0 {
		return s.after.Equal(other.after)
	}
	return true
}

func (s *Style) String() string {
	if s == nil {
		return "{}"
	}
	str := s.props.String()
	if s.after != nil {
		str += " ::after " + s.after.String()
	}
	return str
}

// --- Typed getters ---------------------------------------------------------

// Number returns a numeric property.
func (s *Style) Number(key string) (float64, bool) {
	var x float64
	v, _ := s.Get(key)
	ok := v.Match().Number(&x) != nil
	return x, ok
}

// Color returns a color property.
func (s *Style) Color(key string) (Color, bool) {
	var c Color
	v, _ := s.Get(key)
	ok := v.Match().Color(&c) != nil
	return c, ok
}

// Keyword returns an enumerated property.
func (s *Style) Keyword(key string) (string, bool) {
	var kw string
	v, _ := s.Get(key)
	ok := v.Match().Keyword(&kw) != nil
	return kw, ok
}

// Text returns a string property.
func (s *Style) Text(key string) (string, bool) {
	var t string
	v, _ := s.Get(key)
	ok := v.Match().Text(&t) != nil
	return t, ok
}

// Sequence returns a property holding a sequence of numbers.
func (s *Style) Sequence(key string) ([]float64, bool) {
	var xs []float64
	v, _ := s.Get(key)
	ok := v.Match().Sequence(&xs) != nil
	return xs, ok
}
