package selector_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style/selector"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diagram
// ├── box#b1.large.dashed   [subject.name=Order]
// │   ├── text              hover
// │   └── compartment
// │       └── text
// └── line                  lang=en-US
func testTree() map[string]*styledtree.StyNode {
	nodes := map[string]*styledtree.StyNode{
		"diagram":     styledtree.NewNode("diagram"),
		"box":         styledtree.NewNode("box"),
		"text":        styledtree.NewNode("text").SetState("hover"),
		"compartment": styledtree.NewNode("compartment"),
		"inner":       styledtree.NewNode("text"),
		"line":        styledtree.NewNode("line").SetAttribute("lang", "en-US"),
	}
	nodes["box"].SetAttribute("id", "b1").
		SetAttribute("class", "large dashed").
		SetAttribute("subject.name", "Order")
	nodes["diagram"].Add(
		nodes["box"].Add(
			nodes["text"],
			nodes["compartment"].Add(nodes["inner"]),
		),
		nodes["line"],
	)
	return nodes
}

func TestSelectorMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	nodes := testTree()
	cases := []struct {
		selector string
		matches  []string
	}{
		{"*", []string{"diagram", "box", "text", "compartment", "inner", "line"}},
		{"box", []string{"box"}},
		{"#b1", []string{"box"}},
		{".large", []string{"box"}},
		{"box.large.dashed", []string{"box"}},
		{".small", nil},
		{"diagram text", []string{"text", "inner"}},
		{"box > text", []string{"text"}},
		{"diagram > box > compartment text", []string{"inner"}},
		{"[lang]", []string{"line"}},
		{"[lang|=en]", []string{"line"}},
		{"[lang^=en]", []string{"line"}},
		{"[lang$=US]", []string{"line"}},
		{"[lang$=us]", nil},
		{"[lang$=us i]", []string{"line"}},
		{"[lang*=n-U]", []string{"line"}},
		{"[class~=dashed]", []string{"box"}},
		{"[class=dashed]", nil},
		{`[subject.name="Order"]`, []string{"box"}},
		{"text:hover", []string{"text"}},
		{":root", []string{"diagram"}},
		{"text:empty", []string{"text", "inner"}},
		{"compartment:empty", nil},
		{":is(box, line)", []string{"box", "line"}},
		{":where(box, line)", []string{"box", "line"}},
		{"text:not(:hover)", []string{"inner"}},
		{"box:has(text:hover)", []string{"box"}},
		{"box:has(> compartment)", []string{"box"}},
		{"diagram:has(> compartment)", nil},
		{"diagram:has(compartment)", []string{"diagram"}},
	}
	order := []string{"diagram", "box", "text", "compartment", "inner", "line"}
	for _, c := range cases {
		sel, err := selector.Compile(c.selector)
		require.NoError(t, err, "selector %q", c.selector)
		var matches []string
		for _, key := range order {
			if sel.Match(nodes[key]) {
				matches = append(matches, key)
			}
		}
		assert.Equal(t, c.matches, matches, "selector %q", c.selector)
	}
}

func TestSpecificity(t *testing.T) {
	cases := []struct {
		selector string
		spec     selector.Specificity
	}{
		{"*", selector.Specificity{0, 0, 0}},
		{"box", selector.Specificity{0, 0, 1}},
		{"diagram box", selector.Specificity{0, 0, 2}},
		{".large", selector.Specificity{0, 1, 0}},
		{"box.large:hover", selector.Specificity{0, 2, 1}},
		{"#b1", selector.Specificity{1, 0, 0}},
		{"[lang=en]", selector.Specificity{0, 1, 0}},
		{"box::after", selector.Specificity{0, 0, 2}},
		{":is(#b1, box)", selector.Specificity{1, 0, 0}},
		{":where(#b1, box)", selector.Specificity{0, 0, 0}},
		{"text:not(.a, .b)", selector.Specificity{0, 1, 1}},
	}
	for _, c := range cases {
		sel, err := selector.Compile(c.selector)
		require.NoError(t, err, "selector %q", c.selector)
		assert.Equal(t, c.spec, sel.Specificity, "selector %q", c.selector)
	}
	assert.True(t, selector.Specificity{0, 9, 9}.Less(selector.Specificity{1, 0, 0}))
	assert.Equal(t, 0, selector.Specificity{1, 2, 3}.Compare(selector.Specificity{1, 2, 3}))
}

func TestPseudoElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	nodes := testTree()
	box := nodes["box"]
	after := dom.PseudoNode(box, dom.PseudoAfter)
	for _, text := range []string{"box::after", "box:after", "diagram > box.large::after"} {
		sel, err := selector.Compile(text)
		require.NoError(t, err, "selector %q", text)
		assert.Equal(t, dom.PseudoAfter, sel.Pseudo)
		assert.True(t, sel.Match(after), "expected %q to match pseudo node", text)
		assert.False(t, sel.Match(box), "expected %q not to match real node", text)
	}
	sel, _ := selector.Compile("box")
	assert.True(t, sel.Match(box))
	assert.False(t, sel.Match(after), "selector without pseudo-element matched pseudo node")
	sel, _ = selector.Compile("box:not(.large)::after")
	assert.False(t, sel.Match(after))
}

func TestCompileList(t *testing.T) {
	sels, err := selector.CompileList("box, line , diagram text")
	require.NoError(t, err)
	if assert.Len(t, sels, 3) {
		assert.Equal(t, "box", sels[0].Text)
		assert.Equal(t, "line", sels[1].Text)
		assert.Equal(t, "diagram text", sels[2].Text)
	}
	_, err = selector.Compile("box, line")
	assert.True(t, errors.Is(err, selector.ErrSyntax))
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	for _, text := range []string{
		"",
		"box >",
		"> box",
		"box + line",
		"box ~ line",
		"box:unknown",
		"box::before",
		"box::after text",
		"box::after.large",
		"[lang",
		"[lang=]",
		"[lang=en x]",
		":is(box",
		":is(box::after)",
		"box,",
		"box, :nope",
		"box..large",
	} {
		_, err := selector.CompileList(text)
		if assert.Error(t, err, "selector %q", text) {
			assert.True(t, errors.Is(err, selector.ErrSyntax), "error for %q does not wrap ErrSyntax", text)
		}
	}
}

func TestCompileMedia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.selector")
	defer teardown()
	//
	dark := styledtree.NewNode("box").SetDarkMode(dom.DarkModeOn)
	light := styledtree.NewNode("box").SetDarkMode(dom.DarkModeOff)
	unset := styledtree.NewNode("box")
	cases := []struct {
		query              string
		dark, light, unset bool
	}{
		{"dark-mode", true, false, false},
		{"light-mode", false, true, false},
		{"prefers-color-scheme=dark", true, false, false},
		{"(prefers-color-scheme: light)", false, true, false},
		{"not dark-mode", false, true, true},
		{"dark-mode, light-mode", true, true, false},
	}
	for _, c := range cases {
		pred, err := selector.CompileMedia(c.query)
		require.NoError(t, err, "media query %q", c.query)
		assert.Equal(t, c.dark, pred(dark), "%q for dark node", c.query)
		assert.Equal(t, c.light, pred(light), "%q for light node", c.query)
		assert.Equal(t, c.unset, pred(unset), "%q for node without dark mode", c.query)
	}
	for _, query := range []string{"print", "screen and (min-width: 100px)", "prefers-color-scheme=blue", ""} {
		pred, err := selector.CompileMedia(query)
		assert.ErrorIs(t, err, selector.ErrSyntax, "media query %q", query)
		assert.False(t, pred(dark))
	}
}
