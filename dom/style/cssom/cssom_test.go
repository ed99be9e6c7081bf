package cssom

import (
	"testing"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/stretchr/testify/assert"
)

func TestSimpleRule(t *testing.T) {
	r := &SimpleRule{
		Prelude: "box",
		Decls: []style.KeyValue{
			{Key: "fill", Value: "red"},
			{Key: "line-width", Value: "2"},
			{Key: "fill", Value: "blue"},
		},
	}
	assert.Equal(t, []string{"fill", "line-width"}, r.Properties())
	assert.Equal(t, style.Property("blue"), r.Value("fill"))
	assert.Equal(t, style.NullStyle, r.Value("stroke"))
}

func TestRuleList(t *testing.T) {
	var rl RuleList
	assert.True(t, rl.Empty())
	other := RuleList{&SimpleRule{Prelude: "a"}, &SimpleRule{Prelude: "b"}}
	rl.AppendRules(&other)
	rl.AppendRules(nil)
	assert.Len(t, rl.Rules(), 2)
	var f Frontend = FrontendFunc(func(string) (StyleSheet, error) { return &rl, nil })
	sheet, err := f.Parse("")
	assert.NoError(t, err)
	assert.False(t, sheet.Empty())
}
