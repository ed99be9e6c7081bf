package style

import (
	"maps"
	"sort"
	"strings"
)

// Declarations is a fragment of a style: a mapping from property names to
// values, e.g. the declaration block of a single rule. nil is a legal (empty)
// set of declarations.
type Declarations map[string]Value

// Merge folds layers of declarations from left to right into a new set of
// declarations. On key collision, later (higher priority) layers overwrite
// earlier ones. The layers themselves are not modified.
//
// Merge is the single merge primitive of the engine: the main cascade, the
// cascade for pseudo-elements and the variable fallback all go through it.
func Merge(layers ...Declarations) Declarations {
	n := 0
	for _, l := range layers {
		n += len(l)
	}
	merged := make(Declarations, n)
	for _, l := range layers {
		maps.Copy(merged, l)
	}
	return merged
}

// Clone returns a shallow copy of a set of declarations. As values are
// immutable, a shallow copy is sufficient.
func (d Declarations) Clone() Declarations {
	return Merge(d)
}

// Keys returns the property keys in ascending order.
func (d Declarations) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal compares two sets of declarations.
func (d Declarations) Equal(other Declarations) bool {
	if len(d) != len(other) {
		return false
	}
	for k, v := range d {
		w, ok := other[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

func (d Declarations) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range d.Keys() {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(d[k].String())
		sb.WriteString(";")
	}
	sb.WriteString("}")
	return sb.String()
}
