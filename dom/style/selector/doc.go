/*
Package selector compiles CSS selectors into predicates over style nodes.

A selector like

    diagram box > text:hover::after

is compiled into a Selector, holding a predicate which tells if a
dom.StyleNode is matched, together with the selector's specificity.
Selectors are evaluated right to left, i.e. the predicate first checks the
node itself and then walks up the tree for ancestors.

Supported are type and universal selectors, ids, classes, attribute
selectors (including the case-insensitive flag and dotted attribute names
like `[subject.name]`), descendant and child combinators, state pseudo-classes
(`:hover`, `:focus`, …), the structural pseudo-classes `:root` and `:empty`,
the functional pseudo-classes `:is()`, `:where()`, `:not()` and `:has()`, and
the pseudo-element `::after`.

Syntax errors are reported as errors wrapping ErrSyntax.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.selector'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.selector")
}
