package douceuradapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	sheet, err := Parse(`
		box, line { line-width: 2; fill: red }
		@media dark-mode {
			box { fill: black }
		}
	`)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "box, line", rules[0].Selector())
	assert.Equal(t, []style.KeyValue{
		{Key: "line-width", Value: "2"},
		{Key: "fill", Value: "red"},
	}, rules[0].Declarations())
	assert.Empty(t, rules[0].Media())
	assert.Equal(t, []string{"dark-mode"}, rules[1].Media())
	assert.Equal(t, style.Property("black"), rules[1].Value("fill"))
}

func TestFrontendAndWrap(t *testing.T) {
	sheet, err := Frontend().Parse("box { fill: red }")
	require.NoError(t, err)
	assert.Len(t, sheet.Rules(), 1)
	assert.True(t, Wrap(nil).Empty())
}

var page = `<!DOCTYPE html>
<html>
<head><style>p { fill: red }</style></head>
<body>
  <p>Hello</p>
  <svg><style>rect { stroke: blue } circle { stroke: green }</style><rect/></svg>
</body>
</html>
`

func TestExtractStyleElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	sheets := ExtractStyleElements(doc)
	require.Len(t, sheets, 2)
	assert.Len(t, sheets[0].Rules(), 1)
	assert.Len(t, sheets[1].Rules(), 2)
	sheets[0].AppendRules(sheets[1])
	assert.Len(t, sheets[0].Rules(), 3)
	assert.Equal(t, "circle", sheets[0].Rules()[2].Selector())
}
