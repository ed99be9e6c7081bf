/*
Package tree implements a generic tree of mutable nodes.

Each node carries a payload of type parameter T and maintains a slice of
children. Modifications of the children of a node are protected by a mutex,
which makes it possible to read a tree from multiple goroutines while it is
being extended. Clients which need more than that, e.g. consistent snapshots
of a subtree, will have to synchronize themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cascade.tree'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.tree")
}
