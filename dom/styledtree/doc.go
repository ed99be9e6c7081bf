/*
Package styledtree is a straightforward default implementation of a styleable
tree.

Overview

StyNode implements dom.StyleNode and carries the style computed for it.
Trees are built with a small chainable API:

    diagram := styledtree.NewNode("diagram").Add(
        styledtree.NewNode("box").SetAttribute("class", "large").Add(
            styledtree.NewNode("text"),
        ),
    )

Restyle matches every node of a tree against a stylesheet, concurrently
with a bounded number of workers, and stores the results on the nodes.

Nodes are safe for concurrent use. For interactive use it may be
appropriate to create a styleable tree from another type of node, e.g.
wrapping a W3C DOM (see package w3cdom). The engine's design fully supports
this kind of switch.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.dom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.dom")
}
