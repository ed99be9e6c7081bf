package selector

import (
	"strings"

	"github.com/npillmayer/cascade/dom"
)

// State pseudo-classes check for a token in the node's state.
var statePseudoClasses = map[string]bool{
	"hover":        true,
	"focus":        true,
	"focus-within": true,
	"active":       true,
	"drop":         true,
	"disabled":     true,
	"selected":     true,
}

func isStatePseudoClass(name string) bool {
	return statePseudoClasses[name]
}

func inState(token string) Predicate {
	return func(n dom.StyleNode) bool {
		return dom.HasState(n, token)
	}
}

func isRoot(n dom.StyleNode) bool {
	return dom.Unwrap(n).Parent() == nil
}

func isEmpty(n dom.StyleNode) bool {
	return len(dom.Unwrap(n).Children()) == 0
}

func hasClass(class string) Predicate {
	return func(n dom.StyleNode) bool {
		for _, c := range strings.Fields(n.Attribute("class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

func attributePresent(name string) Predicate {
	return func(n dom.StyleNode) bool {
		return n.Attribute(name) != ""
	}
}

func attributeEquals(name, value string) Predicate {
	return func(n dom.StyleNode) bool {
		return n.Attribute(name) == value
	}
}

// attributeMatch creates a predicate for attribute selectors with an
// operator. With fold set, values are compared case-insensitively.
func attributeMatch(name, op, value string, fold bool) Predicate {
	if fold {
		value = strings.ToLower(value)
	}
	var test func(a string) bool
	switch op {
	case "=":
		test = func(a string) bool { return a == value }
	case "~=":
		test = func(a string) bool {
			for _, w := range strings.Fields(a) {
				if w == value {
					return true
				}
			}
			return false
		}
	case "|=":
		test = func(a string) bool { return a == value || strings.HasPrefix(a, value+"-") }
	case "^=":
		test = func(a string) bool { return value != "" && strings.HasPrefix(a, value) }
	case "$=":
		test = func(a string) bool { return value != "" && strings.HasSuffix(a, value) }
	case "*=":
		test = func(a string) bool { return value != "" && strings.Contains(a, value) }
	default:
		panic("unknown attribute operator " + op)
	}
	return func(n dom.StyleNode) bool {
		a := n.Attribute(name)
		if fold {
			a = strings.ToLower(a)
		}
		return test(a)
	}
}

// matchesAny matches the real node behind n (not a pseudo-element) against
// a list of selectors.
func matchesAny(sels []Selector) Predicate {
	return func(n dom.StyleNode) bool {
		node := dom.Unwrap(n)
		for _, sel := range sels {
			if sel.Match(node) {
				return true
			}
		}
		return false
	}
}

// hasRelative matches nodes with a child (`:has(> x)`) or a descendant
// (`:has(x)`) matching one of a list of relative selectors.
func hasRelative(sels []Selector) Predicate {
	return func(n dom.StyleNode) bool {
		for _, child := range dom.Unwrap(n).Children() {
			for _, sel := range sels {
				if sel.Match(child) {
					return true
				}
			}
			if hasDescendant(child, sels, 1) {
				return true
			}
		}
		return false
	}
}

// hasDescendant checks the descendants of n against the selectors for
// descendant relations.
func hasDescendant(n dom.StyleNode, sels []Selector, depth int) bool {
	if depth > maxTreeDepth {
		tracer().Errorf("tree below %s is too deep for :has()", dom.Path(n))
		return false
	}
	for _, child := range n.Children() {
		for _, sel := range sels {
			if sel.leading != '>' && sel.Match(child) {
				return true
			}
		}
		if hasDescendant(child, sels, depth+1) {
			return true
		}
	}
	return false
}

const maxTreeDepth = 4096
