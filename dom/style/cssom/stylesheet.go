package cssom

import "github.com/npillmayer/cascade/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// compilation of selectors and the cascade, we introduce an interface
// for CSS stylesheets. Clients for the styling engine may provide a
// concrete implementation of this interface or use one of the front-ends
// of this module (see packages tdewolffadapter and douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, in source order
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string               // the prelude / selectors of the rule
	Media() []string                // conditions of enclosing @media blocks, outermost first
	Declarations() []style.KeyValue // declarations in source order
	Properties() []string           // property keys, e.g. "line-width"
	Value(string) style.Property    // last property value for key, e.g. "2px"
}

// Frontend parses the text of a stylesheet.
//
// A front-end should be tolerant: malformed rules are skipped, and an error
// is returned only if a stylesheet cannot be read at all.
type Frontend interface {
	Parse(css string) (StyleSheet, error)
}

// FrontendFunc adapts a function to the Frontend interface.
type FrontendFunc func(css string) (StyleSheet, error)

// Parse is part of interface Frontend.
func (f FrontendFunc) Parse(css string) (StyleSheet, error) {
	return f(css)
}

// --- A simple rule and stylesheet ------------------------------------------

// SimpleRule is a plain implementation of interface Rule, usable by
// front-ends.
type SimpleRule struct {
	Prelude string
	Conds   []string
	Decls   []style.KeyValue
}

var _ Rule = &SimpleRule{}

// Selector returns the prelude / selectors of the rule.
func (r *SimpleRule) Selector() string {
	return r.Prelude
}

// Media returns the conditions of enclosing @media blocks.
func (r *SimpleRule) Media() []string {
	return r.Conds
}

// Declarations returns the declarations of the rule in source order.
func (r *SimpleRule) Declarations() []style.KeyValue {
	return r.Decls
}

// Properties returns the property keys of a rule, without duplicates.
func (r *SimpleRule) Properties() []string {
	props := make([]string, 0, len(r.Decls))
	seen := make(map[string]bool, len(r.Decls))
	for _, d := range r.Decls {
		if !seen[d.Key] {
			props = append(props, d.Key)
			seen[d.Key] = true
		}
	}
	return props
}

// Value returns the last property value for given key with this rule.
func (r *SimpleRule) Value(key string) style.Property {
	v := style.NullStyle
	for _, d := range r.Decls {
		if d.Key == key {
			v = d.Value
		}
	}
	return v
}

// RuleList is a plain implementation of interface StyleSheet.
type RuleList []Rule

var _ StyleSheet = &RuleList{}

// AppendRules appends rules from another stylesheet.
func (rl *RuleList) AppendRules(other StyleSheet) {
	if other == nil {
		return
	}
	*rl = append(*rl, other.Rules()...)
}

// Empty checks if this stylesheet contains any rules.
func (rl *RuleList) Empty() bool {
	return len(*rl) == 0
}

// Rules returns all the rules of a stylesheet.
func (rl *RuleList) Rules() []Rule {
	return *rl
}
