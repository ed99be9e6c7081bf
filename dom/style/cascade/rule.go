package cascade

import (
	"fmt"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/selector"
)

// Rule is a compiled rule of a stylesheet with a single selector.
// Rules are immutable.
type Rule struct {
	Selector     selector.Selector  // compiled selector
	Media        []string           // conditions of enclosing @media blocks, all of which must match
	Order        int                // unique position in source, across all sources
	Declarations style.Declarations // parsed declarations, shared by all selectors of a source rule
	media        []selector.Predicate
}

// Specificity returns the specificity of the rule's selector.
func (r Rule) Specificity() selector.Specificity {
	return r.Selector.Specificity
}

// Matches tells if the rule applies to a node.
func (r Rule) Matches(n dom.StyleNode) bool {
	for _, m := range r.media {
		if !m(n) {
			return false
		}
	}
	return r.Selector.Match(n)
}

// before is the cascade order of rules: by specificity, then by source order.
func (r Rule) before(other Rule) int {
	if c := r.Specificity().Compare(other.Specificity()); c != 0 {
		return c
	}
	return r.Order - other.Order
}

func (r Rule) String() string {
	s := fmt.Sprintf("%s %s #%d %s", r.Selector.Text, r.Specificity(), r.Order, r.Declarations)
	for i := len(r.Media) - 1; i >= 0; i-- {
		s = "@media " + r.Media[i] + " { " + s + " }"
	}
	return s
}
