/*
Package w3cdom makes HTML and SVG parse trees styleable.

Nodes of a tree parsed with golang.org/x/net/html are wrapped into
dom.StyleNodes, which may then be matched against a compiled stylesheet:

    doc, _ := html.Parse(r)
    root := w3cdom.Wrap(doc, w3cdom.WithDarkMode(dom.DarkModeOn))
    st := sheet.Match(root)

Only element nodes are exposed. Text, comment and doctype nodes are
invisible to selectors. The wrappers are read-only views on the parse tree;
clients must not modify the tree while wrappers are in use.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"strings"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'cascade.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}

// StateAttribute is the attribute holding the default interaction state
// of an element, as a space separated list of tokens.
const StateAttribute = "data-state"

// Option configures the wrapping of a parse tree.
type Option func(*config)

type config struct {
	states   func(*html.Node) []string
	darkMode dom.DarkMode
}

// WithStates sets a function for reading the interaction state of elements.
// The default reads the tokens of attribute StateAttribute.
func WithStates(states func(*html.Node) []string) Option {
	return func(c *config) {
		if states != nil {
			c.states = states
		}
	}
}

// WithDarkMode sets the dark mode for all nodes of a tree.
func WithDarkMode(dm dom.DarkMode) Option {
	return func(c *config) {
		c.darkMode = dm
	}
}

// Node is a styleable view on an element node of an HTML parse tree.
type Node struct {
	h   *html.Node
	cfg *config
}

var _ dom.StyleNode = &Node{}

// Wrap wraps an element node of a parse tree. If h is the document node
// or another non-element node, the first element child of h is wrapped.
// Wrap returns nil if there is no element to wrap.
func Wrap(h *html.Node, opts ...Option) dom.StyleNode {
	cfg := &config{states: dataState}
	for _, opt := range opts {
		opt(cfg)
	}
	if h != nil && h.Type != html.ElementNode {
		h = firstElement(h)
	}
	if h == nil {
		tracer().Debugf("no element to wrap")
		return nil
	}
	return &Node{h: h, cfg: cfg}
}

func firstElement(h *html.Node) *html.Node {
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// HTMLNode returns the wrapped node of the parse tree.
func (n *Node) HTMLNode() *html.Node {
	return n.h
}

// Name returns the tag name of the element.
func (n *Node) Name() string {
	if n.h.DataAtom != 0 {
		return n.h.DataAtom.String()
	}
	return n.h.Data
}

// Parent returns the parent element, or nil for the topmost element.
func (n *Node) Parent() dom.StyleNode {
	p := n.h.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return &Node{h: p, cfg: n.cfg}
}

// Children returns the element children in document order.
func (n *Node) Children() []dom.StyleNode {
	var children []dom.StyleNode
	for c := n.h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, &Node{h: c, cfg: n.cfg})
		}
	}
	return children
}

// Attribute returns the value of an attribute. Attributes with a namespace
// are addressed as "namespace:key".
func (n *Node) Attribute(name string) string {
	for _, a := range n.h.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		if key == name {
			return a.Val
		}
	}
	return ""
}

// State returns the interaction state of the element.
func (n *Node) State() []string {
	return n.cfg.states(n.h)
}

// Pseudo returns dom.PseudoNone.
func (n *Node) Pseudo() string {
	return dom.PseudoNone
}

// DarkMode returns the dark mode the tree has been wrapped with.
func (n *Node) DarkMode() dom.DarkMode {
	return n.cfg.darkMode
}

func (n *Node) String() string {
	return "<" + n.Name() + ">"
}

func dataState(h *html.Node) []string {
	for _, a := range h.Attr {
		if a.Key == StateAttribute && a.Namespace == "" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}
