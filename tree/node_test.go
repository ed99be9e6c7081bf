package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestAddAndIsolate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.tree")
	defer teardown()
	//
	root := NewNode("root")
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	root.AddChild(a).AddChild(c).InsertChildAt(1, b)
	assert.Equal(t, 3, root.ChildCount())
	assert.Equal(t, 1, root.IndexOfChild(b))
	assert.Equal(t, root, c.Parent())
	b.Isolate()
	assert.Nil(t, b.Parent())
	assert.Equal(t, []*Node[string]{a, c}, root.Children())
	_, ok := root.Child(5)
	assert.False(t, ok)
}

func TestReparenting(t *testing.T) {
	r1, r2, x := NewNode(1), NewNode(2), NewNode(3)
	r1.AddChild(x)
	r2.AddChild(x)
	assert.Equal(t, 0, r1.ChildCount())
	assert.Equal(t, r2, x.Parent())
	assert.Equal(t, 1, x.Depth())
}

func TestWalkPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.tree")
	defer teardown()
	//
	root := NewNode("r")
	a, b := NewNode("a"), NewNode("b")
	root.AddChild(a.AddChild(NewNode("a1"))).AddChild(b.AddChild(NewNode("b1")))
	var visited []string
	root.Walk(func(n *Node[string]) bool {
		visited = append(visited, n.Payload)
		return n != a
	})
	assert.Equal(t, []string{"r", "a", "b", "b1"}, visited)
}
