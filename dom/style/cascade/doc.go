/*
Package cascade compiles stylesheets and computes the styles of nodes.

A CompiledStyleSheet is constructed once from one or more stylesheet texts,
where later texts have higher priority:

    sheet := cascade.Compile(defaultCSS, userCSS)
    st := sheet.Match(node)
    fill, ok := st.Color("fill")

Every rule of a stylesheet is compiled into one Rule per selector of its
selector list. Rules are sorted by specificity and source order, which is
the priority of the cascade. Malformed rules are dropped silently, the rest
of a stylesheet is unaffected.

A compiled stylesheet is immutable and may be shared among goroutines.
Match does not modify the stylesheet or the node and returns a fresh style
on every call.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.sheet'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.sheet")
}
