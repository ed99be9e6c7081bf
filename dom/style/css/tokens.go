package css

import (
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
)

// token is a lexical token of a declaration value, with whitespace and
// comments removed.
type token struct {
	tt   tdcss.TokenType
	data string
}

func (t token) is(tt tdcss.TokenType) bool {
	return t.tt == tt
}

// ident returns the lower-case text of an identifier token.
func (t token) ident() (string, bool) {
	if t.tt != tdcss.IdentToken {
		return "", false
	}
	return strings.ToLower(t.data), true
}

// number returns the value of a plain number token.
func (t token) number() (float64, bool) {
	if t.tt != tdcss.NumberToken {
		return 0, false
	}
	x, err := strconv.ParseFloat(t.data, 64)
	return x, err == nil
}

// percentage returns the value of a percentage token, divided by 100.
func (t token) percentage() (float64, bool) {
	if t.tt != tdcss.PercentageToken {
		return 0, false
	}
	x, err := strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
	return x / 100, err == nil
}

// length returns a number or a dimension token in diagram units.
func (t token) length() (float64, bool) {
	switch t.tt {
	case tdcss.NumberToken:
		return t.number()
	case tdcss.DimensionToken:
		x, unit, ok := splitDimension(t.data)
		if !ok {
			return 0, false
		}
		return toDiagramUnits(x, unit)
	}
	return 0, false
}

// function returns the lower-case name of a function token, e.g. "rgb".
func (t token) function() (string, bool) {
	if t.tt != tdcss.FunctionToken {
		return "", false
	}
	return strings.ToLower(strings.TrimSuffix(t.data, "(")), true
}

// text returns the unquoted content of a string token.
func (t token) text() (string, bool) {
	if t.tt != tdcss.StringToken || len(t.data) < 2 {
		return "", false
	}
	return t.data[1 : len(t.data)-1], true
}

// tokenize splits the raw text of a declaration value into tokens.
func tokenize(raw string) []token {
	l := tdcss.NewLexer(parse.NewInput(strings.NewReader(raw)))
	var toks []token
	for {
		tt, data := l.Next()
		switch tt {
		case tdcss.ErrorToken:
			return toks
		case tdcss.WhitespaceToken, tdcss.CommentToken:
			continue
		}
		toks = append(toks, token{tt: tt, data: string(data)})
	}
}

// functionArgs returns the arguments of a function call spanning all of
// toks, without separating commas and slashes.
func functionArgs(toks []token) ([]token, bool) {
	if len(toks) < 2 || !toks[len(toks)-1].is(tdcss.RightParenthesisToken) {
		return nil, false
	}
	args := make([]token, 0, len(toks)-2)
	for _, t := range toks[1 : len(toks)-1] {
		if t.is(tdcss.CommaToken) || (t.is(tdcss.DelimToken) && t.data == "/") {
			continue
		}
		args = append(args, t)
	}
	return args, true
}

func joinTokens(toks []token) string {
	var sb strings.Builder
	for i, t := range toks {
		if i > 0 && !t.is(tdcss.CommaToken) && !t.is(tdcss.RightParenthesisToken) &&
			!toks[i-1].is(tdcss.FunctionToken) {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.data)
	}
	return sb.String()
}
