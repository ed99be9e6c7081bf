package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	mx                  sync.RWMutex
	name                string
	attrs               map[string]string
	state               []string
	darkMode            dom.DarkMode
	computedStyles      *style.Style
}

var _ dom.StyleNode = &StyNode{}

// NewNode creates a new styled node for a diagram element of a given type.
func NewNode(name string) *StyNode {
	sn := &StyNode{name: name}
	sn.Payload = sn // Payload will always reference the node itself
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Add appends children to a node and returns the node.
func (sn *StyNode) Add(children ...*StyNode) *StyNode {
	for _, ch := range children {
		if ch != nil {
			sn.AddChild(&ch.Node)
		}
	}
	return sn
}

// SetAttribute sets an attribute and returns the node.
func (sn *StyNode) SetAttribute(key, value string) *StyNode {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	if sn.attrs == nil {
		sn.attrs = make(map[string]string)
	}
	sn.attrs[key] = value
	return sn
}

// SetState replaces the interaction state (e.g. "hover", "focus") and
// returns the node.
func (sn *StyNode) SetState(state ...string) *StyNode {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	sn.state = append([]string(nil), state...)
	return sn
}

// SetDarkMode sets the dark mode flag and returns the node. Nodes with dark
// mode unset inherit it from their parent.
func (sn *StyNode) SetDarkMode(dm dom.DarkMode) *StyNode {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	sn.darkMode = dm
	return sn
}

// Styles returns the style last set for this node, or nil.
func (sn *StyNode) Styles() *style.Style {
	sn.mx.RLock()
	defer sn.mx.RUnlock()
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.Style) {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	sn.computedStyles = styles
}

// --- dom.StyleNode ---------------------------------------------------------

// Name is part of interface dom.StyleNode.
func (sn *StyNode) Name() string {
	return sn.name
}

// Parent is part of interface dom.StyleNode.
func (sn *StyNode) Parent() dom.StyleNode {
	if p := Node(sn.Node.Parent()); p != nil {
		return p
	}
	return nil
}

// Children is part of interface dom.StyleNode.
func (sn *StyNode) Children() []dom.StyleNode {
	chs := sn.Node.Children()
	children := make([]dom.StyleNode, 0, len(chs))
	for _, ch := range chs {
		children = append(children, Node(ch))
	}
	return children
}

// Attribute is part of interface dom.StyleNode.
func (sn *StyNode) Attribute(key string) string {
	sn.mx.RLock()
	defer sn.mx.RUnlock()
	return sn.attrs[key]
}

// State is part of interface dom.StyleNode.
func (sn *StyNode) State() []string {
	sn.mx.RLock()
	defer sn.mx.RUnlock()
	return append([]string(nil), sn.state...)
}

// Pseudo is part of interface dom.StyleNode. Styled nodes are always real
// nodes.
func (sn *StyNode) Pseudo() string {
	return dom.PseudoNone
}

// DarkMode is part of interface dom.StyleNode.
func (sn *StyNode) DarkMode() dom.DarkMode {
	for n, d := sn, 0; n != nil && d <= tree.MaxDepth; n, d = Node(n.Node.Parent()), d+1 {
		n.mx.RLock()
		dm := n.darkMode
		n.mx.RUnlock()
		if dm != dom.DarkModeUnset {
			return dm
		}
	}
	return dom.DarkModeUnset
}

func (sn *StyNode) String() string {
	return "<" + sn.name + ">"
}
