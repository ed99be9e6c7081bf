package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type testNode struct {
	name     string
	parent   *testNode
	children []*testNode
	attrs    map[string]string
	states   []string
}

func (n *testNode) Name() string { return n.name }
func (n *testNode) Parent() StyleNode {
	if n.parent == nil {
		return nil
	}
	return n.parent
}
func (n *testNode) Children() []StyleNode {
	ch := make([]StyleNode, len(n.children))
	for i, c := range n.children {
		ch[i] = c
	}
	return ch
}
func (n *testNode) Attribute(name string) string { return n.attrs[name] }
func (n *testNode) State() []string              { return n.states }
func (n *testNode) Pseudo() string               { return PseudoNone }
func (n *testNode) DarkMode() DarkMode           { return DarkModeOn }

func (n *testNode) add(ch *testNode) *testNode {
	ch.parent = n
	n.children = append(n.children, ch)
	return n
}

func TestPseudoNodeDelegates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	root := &testNode{name: "diagram"}
	box := &testNode{name: "box", attrs: map[string]string{"id": "b1"}, states: []string{"hover"}}
	root.add(box)
	after := PseudoNode(box, PseudoAfter)
	if after.Pseudo() != PseudoAfter {
		t.Errorf("expected pseudo node to report %q, is %q", PseudoAfter, after.Pseudo())
	}
	if after.Name() != "box" || after.Attribute("id") != "b1" {
		t.Errorf("expected pseudo node to delegate name and attributes, didn't")
	}
	if after.Parent() != StyleNode(root) {
		t.Errorf("expected parent of pseudo node to be the real parent")
	}
	if !HasState(after, "hover") {
		t.Errorf("expected pseudo node to delegate state")
	}
	if after.DarkMode() != DarkModeOn {
		t.Errorf("expected pseudo node to delegate dark mode")
	}
	if box.Pseudo() != PseudoNone {
		t.Errorf("expected real node to stay unchanged")
	}
}

func TestPseudoNodeDoesNotStack(t *testing.T) {
	box := &testNode{name: "box"}
	pn := PseudoNode(PseudoNode(box, "before"), PseudoAfter)
	if pn.Pseudo() != PseudoAfter {
		t.Errorf("expected outer pseudo-element to win, have %q", pn.Pseudo())
	}
	if Unwrap(pn) != StyleNode(box) {
		t.Errorf("expected Unwrap to return the real node")
	}
	if PseudoNode(nil, PseudoAfter) != nil {
		t.Errorf("expected pseudo node of nil to be nil")
	}
}

func TestPathAndAncestors(t *testing.T) {
	root := &testNode{name: "diagram"}
	box := &testNode{name: "box"}
	text := &testNode{name: "text"}
	root.add(box)
	box.add(text)
	if p := Path(PseudoNode(text, PseudoAfter)); p != "diagram/box/text::after" {
		t.Errorf("unexpected path %q", p)
	}
	var names []string
	found := Ancestors(text, func(n StyleNode) bool {
		names = append(names, n.Name())
		return n.Name() == "diagram"
	})
	if !found || len(names) != 2 {
		t.Errorf("expected to visit box and diagram, visited %v", names)
	}
	if Ancestors(root, func(StyleNode) bool { return true }) {
		t.Errorf("expected root to have no ancestors")
	}
}

func TestDarkModeFrom(t *testing.T) {
	if DarkModeFrom(true) != DarkModeOn || DarkModeFrom(false) != DarkModeOff {
		t.Error("DarkModeFrom does not convert booleans correctly")
	}
	if DarkModeUnset.String() != "unset" {
		t.Errorf("unexpected string for unset dark mode: %s", DarkModeUnset)
	}
}
