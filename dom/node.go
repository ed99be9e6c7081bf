package dom

import "strings"

// StyleNode is the capability set a tree node has to expose to be styleable.
//
// Implementations must be free of side effects and safe for concurrent reads,
// as a compiled stylesheet may match nodes from multiple goroutines.
// Parent() has to return an untyped nil for the root of a tree (not a typed
// nil pointer wrapped into the interface).
type StyleNode interface {
	Name() string                 // element name, matched by type selectors
	Parent() StyleNode            // parent node or nil
	Children() []StyleNode        // child nodes in document order
	Attribute(name string) string // attribute value; "" means absent
	State() []string              // interaction state tokens, e.g. "hover"
	Pseudo() string               // pseudo-element name; "" for a real node
	DarkMode() DarkMode           // dark mode preference
}

// Pseudo-element names.
const (
	PseudoNone  = ""
	PseudoAfter = "after"
)

// DarkMode is a tri-state flag telling if a node is to be rendered in dark mode.
type DarkMode int8

const (
	DarkModeUnset DarkMode = iota // not specified by the node
	DarkModeOn
	DarkModeOff
)

// DarkModeFrom converts a boolean into a DarkMode.
func DarkModeFrom(dark bool) DarkMode {
	if dark {
		return DarkModeOn
	}
	return DarkModeOff
}

func (dm DarkMode) String() string {
	switch dm {
	case DarkModeOn:
		return "dark"
	case DarkModeOff:
		return "light"
	}
	return "unset"
}

// --- Pseudo nodes ----------------------------------------------------------

// pseudoNode embeds the real node, thus delegating every capability to it,
// except Pseudo().
type pseudoNode struct {
	StyleNode
	pseudo string
}

// PseudoNode wraps a node for evaluating pseudo-element selectors, e.g.
//
//     PseudoNode(node, PseudoAfter)
//
// The real node is not modified. Wrapping a pseudo node again replaces the
// pseudo-element name instead of stacking wrappers.
func PseudoNode(node StyleNode, pseudo string) StyleNode {
	if node == nil {
		return nil
	}
	if pn, ok := node.(pseudoNode); ok {
		node = pn.StyleNode
	}
	return pseudoNode{StyleNode: node, pseudo: pseudo}
}

// Pseudo returns the pseudo-element name of the wrapper.
func (pn pseudoNode) Pseudo() string {
	return pn.pseudo
}

// Unwrap returns the real node a pseudo node is derived from.
// For any other node, Unwrap returns the node itself.
func Unwrap(node StyleNode) StyleNode {
	if pn, ok := node.(pseudoNode); ok {
		return pn.StyleNode
	}
	return node
}

// --- Helpers ---------------------------------------------------------------

// HasState is a predicate checking if a node's state contains a given token.
func HasState(node StyleNode, token string) bool {
	if node == nil {
		return false
	}
	for _, s := range node.State() {
		if s == token {
			return true
		}
	}
	return false
}

// Path returns a short, human readable path from the root to a node,
// e.g. "diagram/box/text::after". Used for tracing and debugging.
func Path(node StyleNode) string {
	if node == nil {
		return "<nil>"
	}
	var names []string
	for n := Unwrap(node); n != nil; n = n.Parent() {
		names = append(names, n.Name())
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	path := strings.Join(names, "/")
	if p := node.Pseudo(); p != PseudoNone {
		path += "::" + p
	}
	return path
}

// guard against endless loops for cyclic Parent() implementations.
const maxDepth = 4096

// Ancestors calls f for every ancestor of node, starting with its parent,
// until f returns true or the root has been visited. It reports whether f
// returned true.
func Ancestors(node StyleNode, f func(StyleNode) bool) bool {
	if node == nil {
		return false
	}
	depth := 0
	for p := node.Parent(); p != nil; p = p.Parent() {
		if f(p) {
			return true
		}
		if depth++; depth > maxDepth {
			tracer().Errorf("ancestor chain of %s exceeds %d levels, giving up", node.Name(), maxDepth)
			return false
		}
	}
	return false
}
