package cascade

import (
	"slices"

	"github.com/npillmayer/cascade/dom"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/css"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/cascade/dom/style/cssom/tdewolffadapter"
	"github.com/npillmayer/cascade/dom/style/selector"
)

// CompiledStyleSheet is a set of rules in cascade order.
type CompiledStyleSheet struct {
	rules []Rule
}

var _ style.Styler = &CompiledStyleSheet{}

// Option configures a Compiler.
type Option func(*Compiler)

// WithFrontend sets the stylesheet parser. The default is the error-tolerant
// parser of package tdewolffadapter.
func WithFrontend(f cssom.Frontend) Option {
	return func(c *Compiler) {
		if f != nil {
			c.frontend = f
		}
	}
}

// Compiler compiles stylesheets.
type Compiler struct {
	frontend cssom.Frontend
}

// NewCompiler creates a compiler.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{frontend: tdewolffadapter.Frontend()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles stylesheet texts with the default compiler. Rules of
// later sources have a higher priority than rules of earlier sources with
// the same specificity.
func Compile(sources ...string) *CompiledStyleSheet {
	return NewCompiler().Compile(sources...)
}

// CompileSheets compiles parsed stylesheets with the default compiler.
func CompileSheets(sheets ...cssom.StyleSheet) *CompiledStyleSheet {
	return NewCompiler().CompileSheets(sheets...)
}

// Compile parses stylesheet texts with the compiler's front-end and compiles
// them. A source the front-end rejects does not contribute any rules.
func (c *Compiler) Compile(sources ...string) *CompiledStyleSheet {
	sheets := make([]cssom.StyleSheet, 0, len(sources))
	for i, src := range sources {
		sheet, err := c.frontend.Parse(src)
		if err != nil {
			tracer().Infof("stylesheet #%d: %v", i, err)
		}
		if sheet != nil {
			sheets = append(sheets, sheet)
		}
	}
	return c.CompileSheets(sheets...)
}

// CompileSheets compiles parsed stylesheets. Rules with malformed selectors
// or media conditions, and rules without valid declarations, are dropped.
func (c *Compiler) CompileSheets(sheets ...cssom.StyleSheet) *CompiledStyleSheet {
	var rules []Rule
	order := 0
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		for _, r := range sheet.Rules() {
			compiled := compileRule(r, order)
			rules = append(rules, compiled...)
			order += len(compiled)
		}
	}
	slices.SortStableFunc(rules, Rule.before)
	tracer().P("rules", len(rules)).Debugf("compiled %d stylesheets", len(sheets))
	return &CompiledStyleSheet{rules: rules}
}

// compileRule compiles a source rule into one rule per selector. Selectors are
// numbered consecutively, starting with order.
func compileRule(r cssom.Rule, order int) []Rule {
	sels, err := selector.CompileList(r.Selector())
	if err != nil {
		tracer().Debugf("dropping rule: %v", err)
		return nil
	}
	conds := slices.Clone(r.Media())
	media := make([]selector.Predicate, len(conds))
	for i, cond := range conds {
		if media[i], err = selector.CompileMedia(cond); err != nil {
			tracer().Debugf("dropping rule %s: %v", r.Selector(), err)
			return nil
		}
	}
	decls := css.ParseDeclarations(r.Declarations())
	if len(decls) == 0 {
		tracer().Debugf("dropping rule %s without valid declarations", r.Selector())
		return nil
	}
	rules := make([]Rule, len(sels))
	for i, sel := range sels {
		rules[i] = Rule{
			Selector:     sel,
			Media:        conds,
			Order:        order + i,
			Declarations: decls,
			media:        media,
		}
	}
	return rules
}

// Len returns the number of compiled rules.
func (sheet *CompiledStyleSheet) Len() int {
	if sheet == nil {
		return 0
	}
	return len(sheet.rules)
}

// Rules returns the compiled rules in cascade order, lowest priority first.
// The slice is a copy; the media conditions and declarations of rules must
// not be modified.
func (sheet *CompiledStyleSheet) Rules() []Rule {
	if sheet == nil {
		return nil
	}
	return slices.Clone(sheet.rules)
}

// Match computes the style of a node.
//
// The declarations of all rules matching the node are layered in cascade
// order and computed into the node's style (see css.Compute). Rules
// matching the "::after" pseudo-element of the node are computed into a
// separate style, which is attached to the node's style if it is not empty.
func (sheet *CompiledStyleSheet) Match(node dom.StyleNode) *style.Style {
	if sheet == nil || node == nil {
		return style.NewStyle(nil, nil, node, nil)
	}
	afterNode := dom.PseudoNode(node, dom.PseudoAfter)
	var layers, afterLayers []style.Declarations
	for _, r := range sheet.rules {
		if r.Matches(afterNode) {
			afterLayers = append(afterLayers, r.Declarations)
		}
		if r.Matches(node) {
			layers = append(layers, r.Declarations)
		}
	}
	var after *style.Style
	if len(afterLayers) > 0 {
		after = style.NewStyle(css.Compute(afterLayers), nil, afterNode, sheet)
	}
	return style.NewStyle(css.Compute(layers), after, node, sheet)
}
