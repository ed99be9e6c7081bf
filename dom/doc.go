/*
Package dom defines the view the styling engine has on a tree of styleable
nodes.

Status

Early draft—API may change frequently. Please stay patient.

Overview

The cascade engine never sees concrete tree types. Diagram elements, HTML
elements, shapes nested inside a diagram element: all of them are presented
to the engine through interface StyleNode, a small, read-only capability set
(name, parent, children, attributes, interaction state, pseudo-element marker,
dark mode).

Concrete implementations live elsewhere, e.g. in package styledtree (an
in-memory tree of diagram elements) and package w3cdom (an adapter for
golang.org/x/net/html parse trees). Clients are free to provide their own.

Pseudo-elements such as "::after" do not exist as nodes of a tree. The engine
evaluates them by wrapping a real node with PseudoNode, which delegates every
capability to the real node except Pseudo().

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cascade.dom'
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
