package selector

import (
	"strings"

	"github.com/npillmayer/cascade/dom"
	tdcss "github.com/tdewolff/parse/v2/css"
)

// CompileMedia compiles the condition of a `@media` block into a predicate.
// Rules inside a media block are matched only if both their selector and the
// media condition match.
//
// Media queries select on the dark mode of a node:
//
//     @media dark-mode                       matches nodes with DarkModeOn
//     @media light-mode                      matches nodes with DarkModeOff
//     @media prefers-color-scheme=dark       same as dark-mode
//     @media (prefers-color-scheme: light)   same as light-mode
//
// A leading `not` negates a query, a comma separated list of queries matches
// if any of them matches. Unknown queries result in an error wrapping
// ErrSyntax; callers should treat them as never matching.
func CompileMedia(query string) (Predicate, error) {
	ts, err := lex(query)
	if err != nil {
		return never, err
	}
	var preds []Predicate
	for {
		ts.skipWS()
		pred, err := ts.mediaQuery()
		if err != nil {
			tracer().Debugf("%v", err)
			return never, err
		}
		preds = append(preds, pred)
		ts.skipWS()
		if ts.atEnd() {
			break
		}
		if ts.next().tt != tdcss.CommaToken {
			return never, ts.errorf("malformed media query")
		}
	}
	if len(preds) == 1 {
		return preds[0], nil
	}
	return func(n dom.StyleNode) bool {
		for _, pred := range preds {
			if pred(n) {
				return true
			}
		}
		return false
	}, nil
}

func never(dom.StyleNode) bool {
	return false
}

func (ts *tokenStream) mediaQuery() (Predicate, error) {
	negate := false
	if t := ts.peek(); t.tt == tdcss.IdentToken && strings.EqualFold(t.data, "not") {
		ts.next()
		ts.skipWS()
		negate = true
	}
	parens := false
	if ts.peek().tt == tdcss.LeftParenthesisToken {
		ts.next()
		ts.skipWS()
		parens = true
	}
	mode, err := ts.colorScheme()
	if err != nil {
		return never, err
	}
	if parens {
		ts.skipWS()
		if ts.next().tt != tdcss.RightParenthesisToken {
			return never, ts.errorf("unbalanced parentheses in media query")
		}
	}
	return func(n dom.StyleNode) bool {
		return (n.DarkMode() == mode) != negate
	}, nil
}

// colorScheme parses a media feature selecting on dark mode.
func (ts *tokenStream) colorScheme() (dom.DarkMode, error) {
	t := ts.next()
	if t.tt != tdcss.IdentToken {
		return dom.DarkModeUnset, ts.errorf("expected media feature")
	}
	switch strings.ToLower(t.data) {
	case "dark-mode":
		return dom.DarkModeOn, nil
	case "light-mode":
		return dom.DarkModeOff, nil
	case "prefers-color-scheme":
		ts.skipWS()
		if sep := ts.next(); sep.tt != tdcss.ColonToken && !sep.isDelim("=") {
			return dom.DarkModeUnset, ts.errorf("expected ':' or '=' after %s", t.data)
		}
		ts.skipWS()
		v := ts.next()
		switch strings.ToLower(v.data) {
		case "dark":
			return dom.DarkModeOn, nil
		case "light":
			return dom.DarkModeOff, nil
		}
		return dom.DarkModeUnset, ts.errorf("unknown color scheme %q", v.data)
	}
	return dom.DarkModeUnset, ts.errorf("unsupported media query %q", t.data)
}
