package w3cdom

import (
	"strings"
	"testing"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cascade"
	"github.com/npillmayer/cascade/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var myhtml = `<!DOCTYPE html>
<html>
<head>
<style>
  p { fill: #ff0000; }
  p:hover { fill: #00ff00; }
  div > p.note { line-width: 3; }
</style>
</head>
<body>
  <!-- comment -->
  <div id="main">
    Some text
    <p class="note" data-state="hover">Hello</p>
    <p>World</p>
  </div>
</body>
</html>
`

func parse(t *testing.T) *html.Node {
	doc, err := html.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	return doc
}

func find(n dom.StyleNode, name string) dom.StyleNode {
	if n.Name() == name {
		return n
	}
	for _, ch := range n.Children() {
		if f := find(ch, name); f != nil {
			return f
		}
	}
	return nil
}

func TestWrapDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	root := Wrap(parse(t))
	require.NotNil(t, root)
	assert.Equal(t, "html", root.Name())
	assert.Nil(t, root.Parent(), "topmost element must not have a parent")
	assert.Nil(t, Wrap(nil))
	assert.Nil(t, Wrap(&html.Node{Type: html.DocumentNode}))
	div := find(root, "div")
	require.NotNil(t, div)
	assert.Equal(t, "main", div.Attribute("id"))
	assert.Equal(t, "", div.Attribute("class"))
	children := div.Children()
	require.Len(t, children, 2, "text and comment nodes must be skipped")
	assert.Equal(t, "p", children[0].Name())
	assert.Equal(t, []string{"hover"}, children[0].State())
	assert.Nil(t, children[1].State())
	assert.Equal(t, "html/body/div/p", dom.Path(children[0]))
	assert.Equal(t, dom.DarkModeUnset, children[0].DarkMode())
}

func TestOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	root := Wrap(parse(t),
		WithDarkMode(dom.DarkModeOn),
		WithStates(func(h *html.Node) []string {
			return []string{"focus"}
		}))
	p := find(root, "p")
	require.NotNil(t, p)
	assert.Equal(t, dom.DarkModeOn, p.DarkMode())
	assert.Equal(t, []string{"focus"}, p.State())
	assert.True(t, dom.HasState(p.Parent(), "focus"))
}

func TestStyleHTMLDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.dom")
	defer teardown()
	//
	doc := parse(t)
	sheets := douceuradapter.ExtractStyleElements(doc)
	require.Len(t, sheets, 1)
	sheet := cascade.CompileSheets(sheets[0])
	assert.Equal(t, 3, sheet.Len())
	ps := find(Wrap(doc), "div").Children()
	first, second := sheet.Match(ps[0]), sheet.Match(ps[1])
	c, _ := first.Color("fill")
	assert.Equal(t, style.Color{0, 1, 0, 1}, c)
	w, ok := first.Number("line-width")
	assert.True(t, ok)
	assert.Equal(t, 3.0, w)
	c, _ = second.Color("fill")
	assert.Equal(t, style.Color{1, 0, 0, 1}, c)
	assert.False(t, second.Has("line-width"))
}
