package selector

import "fmt"

// Specificity of a selector, as a triple (a, b, c) of
//
//   a: number of id selectors
//   b: number of class selectors, attribute selectors and pseudo-classes
//   c: number of type selectors and pseudo-elements
//
// Specificities are compared lexicographically.
type Specificity [3]int

// Less is a predicate for ordering specificities.
func (s Specificity) Less(other Specificity) bool {
	for i := 0; i < 3; i++ {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return false
}

// Compare returns -1, 0 or +1, depending on s being less than, equal to or
// greater than other.
func (s Specificity) Compare(other Specificity) int {
	switch {
	case s.Less(other):
		return -1
	case other.Less(s):
		return 1
	}
	return 0
}

// Add adds two specificities component-wise.
func (s Specificity) Add(other Specificity) Specificity {
	return Specificity{s[0] + other[0], s[1] + other[1], s[2] + other[2]}
}

func maxSpecificity(sels []Selector) Specificity {
	var max Specificity
	for _, sel := range sels {
		if max.Less(sel.Specificity) {
			max = sel.Specificity
		}
	}
	return max
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}
