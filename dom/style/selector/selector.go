package selector

import (
	"strings"

	"github.com/npillmayer/cascade/dom"
	tdcss "github.com/tdewolff/parse/v2/css"
)

// Predicate tells if a node is matched by a selector.
type Predicate func(dom.StyleNode) bool

// Selector is a compiled selector.
type Selector struct {
	Text        string      // normalized selector text
	Match       Predicate   // tells if a node is matched
	Specificity Specificity // specificity of the selector
	Pseudo      string      // pseudo-element of the subject, or dom.PseudoNone
	leading     byte        // leading combinator of a relative selector, for :has()
}

// Compile compiles a single selector.
func Compile(text string) (Selector, error) {
	sels, err := CompileList(text)
	if err != nil {
		return Selector{}, err
	}
	if len(sels) != 1 {
		return Selector{}, syntaxError(text, "expected a single selector, have %d", len(sels))
	}
	return sels[0], nil
}

// CompileList compiles a comma separated list of selectors. If any of the
// selectors is malformed, an error is returned and no selector is compiled.
func CompileList(text string) ([]Selector, error) {
	ts, err := lex(text)
	if err != nil {
		return nil, err
	}
	sels, err := ts.selectorList(false)
	if err != nil {
		tracer().Debugf("%v", err)
		return nil, err
	}
	if !ts.atEnd() {
		return nil, ts.errorf("unexpected %q", ts.peek().data)
	}
	return sels, nil
}

// --- Parser ----------------------------------------------------------------

// compound is a compound selector, e.g. `box.large:hover`.
type compound struct {
	tests  []Predicate
	spec   Specificity
	pseudo string
}

func (c compound) match(n dom.StyleNode) bool {
	if n.Pseudo() != c.pseudo {
		return false
	}
	for _, test := range c.tests {
		if !test(n) {
			return false
		}
	}
	return true
}

// complexSelector is a chain of compound selectors, connected by combinators.
// combinators[i] connects compounds[i] and compounds[i+1].
type complexSelector struct {
	compounds   []compound
	combinators []byte
}

// matchAt matches compound i against n and, recursively, the compounds
// left of i against n's ancestors.
func (cs *complexSelector) matchAt(i int, n dom.StyleNode) bool {
	if !cs.compounds[i].match(n) {
		return false
	}
	if i == 0 {
		return true
	}
	switch cs.combinators[i-1] {
	case '>':
		parent := n.Parent()
		return parent != nil && cs.matchAt(i-1, parent)
	default:
		return dom.Ancestors(n, func(a dom.StyleNode) bool {
			return cs.matchAt(i-1, a)
		})
	}
}

func (ts *tokenStream) selectorList(relative bool) ([]Selector, error) {
	var sels []Selector
	for {
		ts.skipWS()
		sel, err := ts.complexSelector(relative)
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
		ts.skipWS()
		if ts.peek().tt != tdcss.CommaToken {
			return sels, nil
		}
		ts.next()
	}
}

func (ts *tokenStream) complexSelector(relative bool) (Selector, error) {
	start := ts.pos
	cs := &complexSelector{}
	leading := byte(' ')
	if relative && ts.peek().isDelim(">") {
		ts.next()
		ts.skipWS()
		leading = '>'
	}
	for {
		c, err := ts.compound()
		if err != nil {
			return Selector{}, err
		}
		cs.compounds = append(cs.compounds, c)
		ws := ts.skipWS()
		t := ts.peek()
		switch {
		case t.isDelim(">"):
			ts.next()
			ts.skipWS()
			cs.combinators = append(cs.combinators, '>')
			continue
		case t.isDelim("+"), t.isDelim("~"):
			return Selector{}, ts.errorf("unsupported combinator %q", t.data)
		case t == eof, t.tt == tdcss.CommaToken, t.tt == tdcss.RightParenthesisToken:
		case ws:
			cs.combinators = append(cs.combinators, ' ')
			continue
		default:
			return Selector{}, ts.errorf("unexpected %q", t.data)
		}
		break
	}
	sel := Selector{
		Text:    ts.textFrom(start),
		leading: leading,
	}
	last := len(cs.compounds) - 1
	for i, c := range cs.compounds {
		if c.pseudo != dom.PseudoNone && i != last {
			return Selector{}, ts.errorf("pseudo-element ::%s must be last", c.pseudo)
		}
		sel.Specificity = sel.Specificity.Add(c.spec)
	}
	sel.Pseudo = cs.compounds[last].pseudo
	sel.Match = func(n dom.StyleNode) bool {
		if n == nil {
			return false
		}
		return cs.matchAt(last, n)
	}
	return sel, nil
}

func (ts *tokenStream) compound() (compound, error) {
	var c compound
	consumed := false
	t := ts.peek()
	if t.tt == tdcss.IdentToken {
		ts.next()
		name := t.data
		c.tests = append(c.tests, func(n dom.StyleNode) bool {
			return n.Name() == name
		})
		c.spec[2]++
		consumed = true
	} else if t.isDelim("*") {
		ts.next()
		consumed = true
	}
	for {
		t = ts.peek()
		isSimple := t.tt == tdcss.HashToken || t.isDelim(".") ||
			t.tt == tdcss.LeftBracketToken || t.tt == tdcss.ColonToken
		if !isSimple {
			break
		}
		if c.pseudo != dom.PseudoNone {
			return c, ts.errorf("unexpected %q after pseudo-element", t.data)
		}
		var err error
		switch {
		case t.tt == tdcss.HashToken:
			ts.next()
			c.tests = append(c.tests, attributeEquals("id", strings.TrimPrefix(t.data, "#")))
			c.spec[0]++
		case t.isDelim("."):
			ts.next()
			name := ts.next()
			if name.tt != tdcss.IdentToken {
				return c, ts.errorf("expected class name after '.'")
			}
			c.tests = append(c.tests, hasClass(name.data))
			c.spec[1]++
		case t.tt == tdcss.LeftBracketToken:
			err = ts.attribute(&c)
		case t.tt == tdcss.ColonToken:
			err = ts.pseudo(&c)
		}
		if err != nil {
			return c, err
		}
		consumed = true
	}
	if !consumed {
		if t == eof {
			return c, ts.errorf("expected selector at end of input")
		}
		return c, ts.errorf("expected selector, have %q", t.data)
	}
	return c, nil
}

func (ts *tokenStream) attribute(c *compound) error {
	ts.next() // '['
	ts.skipWS()
	t := ts.next()
	if t.tt != tdcss.IdentToken {
		return ts.errorf("expected attribute name")
	}
	name := t.data
	for ts.peek().isDelim(".") {
		ts.next()
		t = ts.next()
		if t.tt != tdcss.IdentToken {
			return ts.errorf("malformed attribute name %q", name)
		}
		name += "." + t.data
	}
	ts.skipWS()
	t = ts.next()
	if t.tt == tdcss.RightBracketToken {
		c.tests = append(c.tests, attributePresent(name))
		c.spec[1]++
		return nil
	}
	var op string
	switch t.tt {
	case tdcss.DelimToken:
		if t.data == "=" {
			op = "="
		}
	case tdcss.IncludeMatchToken, tdcss.DashMatchToken, tdcss.PrefixMatchToken,
		tdcss.SuffixMatchToken, tdcss.SubstringMatchToken:
		op = t.data
	}
	if op == "" {
		return ts.errorf("unknown attribute operator %q", t.data)
	}
	ts.skipWS()
	t = ts.next()
	var value string
	switch t.tt {
	case tdcss.IdentToken, tdcss.NumberToken:
		value = t.data
	case tdcss.StringToken:
		value = unquote(t.data)
	default:
		return ts.errorf("expected attribute value for [%s]", name)
	}
	ts.skipWS()
	fold := false
	if t = ts.peek(); t.tt == tdcss.IdentToken {
		switch strings.ToLower(t.data) {
		case "i":
			fold = true
		case "s":
		default:
			return ts.errorf("unknown attribute flag %q", t.data)
		}
		ts.next()
		ts.skipWS()
	}
	if ts.next().tt != tdcss.RightBracketToken {
		return ts.errorf("unbalanced brackets in attribute selector [%s]", name)
	}
	c.tests = append(c.tests, attributeMatch(name, op, value, fold))
	c.spec[1]++
	return nil
}

func (ts *tokenStream) pseudo(c *compound) error {
	ts.next() // ':'
	if ts.peek().tt == tdcss.ColonToken {
		ts.next()
		t := ts.next()
		if t.tt != tdcss.IdentToken || strings.ToLower(t.data) != dom.PseudoAfter {
			return ts.errorf("unsupported pseudo-element ::%s", t.data)
		}
		c.pseudo = dom.PseudoAfter
		c.spec[2]++
		return nil
	}
	t := ts.next()
	switch t.tt {
	case tdcss.IdentToken:
		name := strings.ToLower(t.data)
		switch {
		case name == dom.PseudoAfter: // legacy single-colon notation
			c.pseudo = dom.PseudoAfter
			c.spec[2]++
			return nil
		case isStatePseudoClass(name):
			c.tests = append(c.tests, inState(name))
		case name == "root":
			c.tests = append(c.tests, isRoot)
		case name == "empty":
			c.tests = append(c.tests, isEmpty)
		default:
			return ts.errorf("unknown pseudo-class :%s", name)
		}
		c.spec[1]++
		return nil
	case tdcss.FunctionToken:
		name := strings.ToLower(strings.TrimSuffix(t.data, "("))
		var args []Selector
		var err error
		switch name {
		case "is", "where", "not":
			args, err = ts.selectorList(false)
		case "has":
			args, err = ts.selectorList(true)
		default:
			return ts.errorf("unknown pseudo-class :%s()", name)
		}
		if err != nil {
			return err
		}
		if ts.next().tt != tdcss.RightParenthesisToken {
			return ts.errorf("unbalanced parentheses in :%s()", name)
		}
		for _, arg := range args {
			if arg.Pseudo != dom.PseudoNone {
				return ts.errorf("pseudo-element not allowed in :%s()", name)
			}
		}
		switch name {
		case "is":
			c.tests = append(c.tests, matchesAny(args))
			c.spec = c.spec.Add(maxSpecificity(args))
		case "where":
			c.tests = append(c.tests, matchesAny(args))
		case "not":
			matched := matchesAny(args)
			c.tests = append(c.tests, func(n dom.StyleNode) bool { return !matched(n) })
			c.spec = c.spec.Add(maxSpecificity(args))
		case "has":
			c.tests = append(c.tests, hasRelative(args))
			c.spec = c.spec.Add(maxSpecificity(args))
		}
		return nil
	}
	return ts.errorf("expected pseudo-class after ':'")
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
