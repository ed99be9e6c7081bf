package cascade_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cascade"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/cascade/dom/styledtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, st *style.Style) style.Color {
	t.Helper()
	c, ok := st.Color("fill")
	require.True(t, ok, "no fill in %v", st)
	return c
}

func TestSelectedStateChangesFill(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile(`
		node { fill: #ff0000; }
		node:selected { fill: #00ff00; }
	`)
	assert.Equal(t, 2, sheet.Len())
	plain := styledtree.NewNode("node")
	selected := styledtree.NewNode("node").SetState("selected")
	assert.Equal(t, style.Color{1, 0, 0, 1}, fill(t, sheet.Match(plain)))
	assert.Equal(t, style.Color{0, 1, 0, 1}, fill(t, sheet.Match(selected)))
}

func TestOpacityIsComposited(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile(`box { opacity: 0.5; fill: #000000ff; stroke: #00000000; }`)
	st := sheet.Match(styledtree.NewNode("box"))
	assert.Equal(t, style.Color{0, 0, 0, 0.5}, fill(t, st))
	stroke, ok := st.Color("stroke")
	require.True(t, ok)
	assert.Equal(t, 0.0, stroke.Alpha(), "transparent color must stay transparent")
}

func TestVariablesAreResolved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile(`box { --accent: #0000ff; fill: var(--accent); }`)
	assert.Equal(t, style.Color{0, 0, 1, 1}, fill(t, sheet.Match(styledtree.NewNode("box"))))
	// variable defined by a rule of lower priority
	sheet = cascade.Compile(`
		diagram { --accent: blue; }
		diagram { color: var(--accent); }
	`)
	st := sheet.Match(styledtree.NewNode("diagram"))
	c, ok := st.Color("color")
	require.True(t, ok)
	assert.Equal(t, style.Color{0, 0, 1, 1}, c)
	// unresolved variable is absent
	sheet = cascade.Compile(`box { fill: var(--missing); line-width: 2; }`)
	st = sheet.Match(styledtree.NewNode("box"))
	assert.False(t, st.Has("fill"))
	assert.True(t, st.Has("line-width"))
}

func TestSpecificityWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile(`
		box.large { line-width: 3; }
		box { line-width: 1; }
		#b1 { line-width: 5; }
	`)
	box := styledtree.NewNode("box").SetAttribute("class", "large")
	w, _ := sheet.Match(box).Number("line-width")
	assert.Equal(t, 3.0, w)
	box.SetAttribute("id", "b1")
	w, _ = sheet.Match(box).Number("line-width")
	assert.Equal(t, 5.0, w)
}

func TestSourceOrderBreaksTies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile(`
		box { line-width: 1; }
		box { line-width: 2; }
	`)
	w, _ := sheet.Match(styledtree.NewNode("box")).Number("line-width")
	assert.Equal(t, 2.0, w)
	// later sources have higher priority
	sheet = cascade.Compile(`box { line-width: 1; }`, `box { line-width: 2; }`)
	w, _ = sheet.Match(styledtree.NewNode("box")).Number("line-width")
	assert.Equal(t, 2.0, w)
	// but not higher than a more specific selector
	sheet = cascade.Compile(`diagram box { line-width: 1; }`, `box { line-width: 2; }`)
	diagram := styledtree.NewNode("diagram")
	box := styledtree.NewNode("box")
	diagram.Add(box)
	w, _ = sheet.Match(box).Number("line-width")
	assert.Equal(t, 1.0, w)
}

func TestRulesAreDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	css := `
		box, line { fill: red; }
		* { stroke: black; }
		#b1 { fill: blue; }
		box.a:hover { fill: green; }
		line { line-width: 2; }
	`
	a, b := cascade.Compile(css), cascade.Compile(css)
	require.Equal(t, 6, a.Len())
	ra, rb := a.Rules(), b.Rules()
	seen := map[int]bool{}
	for i := range ra {
		assert.Equal(t, ra[i].Selector.Text, rb[i].Selector.Text)
		assert.Equal(t, ra[i].Order, rb[i].Order)
		assert.False(t, seen[ra[i].Order], "order index %d used twice", ra[i].Order)
		seen[ra[i].Order] = true
	}
	for i := 1; i < len(ra); i++ {
		c := ra[i-1].Specificity().Compare(ra[i].Specificity())
		assert.True(t, c < 0 || (c == 0 && ra[i-1].Order <= ra[i].Order),
			"rules out of order: %v before %v", ra[i-1], ra[i])
	}
	assert.Equal(t, "*", ra[0].Selector.Text)
	assert.Equal(t, "#b1", ra[len(ra)-1].Selector.Text)
}

func TestPseudoElementIsIsolated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile(`
		box { fill: red; }
		box::after { content: "note"; font-size: 8; }
	`)
	st := sheet.Match(styledtree.NewNode("box"))
	assert.True(t, st.Has("fill"))
	assert.False(t, st.Has("content"))
	after := st.After()
	require.NotNil(t, after)
	assert.True(t, after.Has("content"))
	assert.False(t, after.Has("fill"))
	assert.Equal(t, dom.PseudoAfter, after.Node().Pseudo())
	// no ::after rule, no after-style
	st = sheet.Match(styledtree.NewNode("line"))
	assert.Nil(t, st.After())
	assert.Equal(t, 0, st.Len())
}

func TestDarkModeMedia(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile(`
		box { fill: black; }
		@media dark-mode {
			box { fill: white; }
		}
		@media print {
			box { fill: red; }
		}
	`)
	root := styledtree.NewNode("diagram").SetDarkMode(dom.DarkModeOn)
	dark := styledtree.NewNode("box")
	root.Add(dark)
	light := styledtree.NewNode("box")
	assert.Equal(t, style.Color{1, 1, 1, 1}, fill(t, sheet.Match(dark)))
	assert.Equal(t, style.Color{0, 0, 0, 1}, fill(t, sheet.Match(light)))
}

func TestNestedMediaRequiresAllConditions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile(`
		@media dark-mode {
			@media light-mode {
				box { fill: #0000ff; }
			}
			@media dark-mode {
				box { stroke: #ff0000; }
			}
		}
	`)
	require.Equal(t, 2, sheet.Len())
	for _, dm := range []dom.DarkMode{dom.DarkModeOn, dom.DarkModeOff, dom.DarkModeUnset} {
		st := sheet.Match(styledtree.NewNode("box").SetDarkMode(dm))
		assert.False(t, st.Has("fill"), "contradicting media conditions matched in mode %s", dm)
		assert.Equal(t, dm == dom.DarkModeOn, st.Has("stroke"), "mode %s", dm)
	}
}

func TestMalformedRulesAreDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile(`
		box { line-width: 1; }
		box + line, box { line-width: 7; }
		box::before { line-width: 8; }
		box { fill: not-a-color; }
		box { line-width: 2; }
	`)
	assert.Equal(t, 2, sheet.Len())
	w, _ := sheet.Match(styledtree.NewNode("box")).Number("line-width")
	assert.Equal(t, 2.0, w)
}

func TestEmptySheetAndNilNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile()
	assert.Equal(t, 0, sheet.Len())
	st := sheet.Match(styledtree.NewNode("box"))
	require.NotNil(t, st)
	assert.Equal(t, 0, st.Len())
	assert.Equal(t, 0, cascade.Compile("box { fill: red; }").Match(nil).Len())
	var none *cascade.CompiledStyleSheet
	assert.Equal(t, 0, none.Len())
	assert.Nil(t, none.Rules())
}

func TestParentStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile(`diagram { font-size: 20; } box { fill: red; }`)
	diagram := styledtree.NewNode("diagram")
	box := styledtree.NewNode("box")
	diagram.Add(box)
	parent := sheet.Match(box).ParentStyle()
	require.NotNil(t, parent)
	size, ok := parent.Number("font-size")
	assert.True(t, ok)
	assert.Equal(t, 20.0, size)
	assert.Nil(t, parent.ParentStyle())
}

func TestConcurrentMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	sheet := cascade.Compile(`
		* { --accent: #336699; }
		box { fill: var(--accent); opacity: 0.5; }
		box:hover { stroke: red; }
		box::after { content: "x"; }
	`)
	box := styledtree.NewNode("box").SetState("hover")
	styledtree.NewNode("diagram").Add(box)
	want := sheet.Match(box)
	wantParent := want.ParentStyle()
	var wg sync.WaitGroup
	results := make([]*style.Style, 32)
	parents := make([]*style.Style, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = sheet.Match(box)
			parents[i] = results[i].ParentStyle()
		}(i)
	}
	wg.Wait()
	for i, st := range results {
		assert.True(t, want.Equal(st), "result #%d differs: %v", i, st)
		assert.True(t, wantParent.Equal(parents[i]), "parent style #%d differs: %v", i, parents[i])
	}
}

func TestDouceurFrontend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.sheet")
	defer teardown()
	//
	c := cascade.NewCompiler(cascade.WithFrontend(douceuradapter.Frontend()))
	sheet := c.Compile(`box { fill: #ff0000; } box:hover { fill: #00ff00; }`)
	assert.Equal(t, 2, sheet.Len())
	assert.Equal(t, style.Color{0, 1, 0, 1}, fill(t, sheet.Match(styledtree.NewNode("box").SetState("hover"))))
}

func ExampleCompile() {
	sheet := cascade.Compile(`
		box { fill: #ff0000; line-width: 2; }
		box:hover { fill: #00ff00; }
	`)
	st := sheet.Match(styledtree.NewNode("box").SetState("hover"))
	c, _ := st.Color("fill")
	fmt.Println(c.Hex())
	// Output: #00ff00ff
}
