/*
Package css provides functionality for CSS styling.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of computing style attributes for a
given node.

Property Values

ParseValue turns the raw text of a declaration into a typed style.Value,
depending on the property it is declared for: `fill: #ff0000` is a color,
`padding: 4 8` a sequence of four numbers, `font-size: small` a relative
keyword. Values which make no sense for a known property are rejected and
the declaration is dropped. Custom properties (`--accent: #0000ff`) keep
their raw text; it is parsed again whenever a property references it with
`var(--accent)`.

Computed Values

Compute takes the declaration blocks of all rules matching a node, in
ascending cascade priority, and computes the values a renderer will see:
layers are merged (later layers win), variable references are resolved
using the layers as a fallback chain, relative font sizes are scaled and
colors are composited with the opacity.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.css'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.css")
}
