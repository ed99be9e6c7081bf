package selector

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
)

// ErrSyntax is wrapped by all errors reporting malformed selectors or media
// queries.
var ErrSyntax = errors.New("selector syntax error")

func syntaxError(text string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s in %q", ErrSyntax, fmt.Sprintf(format, args...), text)
}

type token struct {
	tt   tdcss.TokenType
	data string
}

// eof is returned by the token stream after the last token.
var eof = token{tt: tdcss.ErrorToken}

func (t token) isDelim(ch string) bool {
	return t.tt == tdcss.DelimToken && t.data == ch
}

// tokenStream is a sequence of lexical tokens with a read position.
// Comments are removed, whitespace is kept as it is significant for
// descendant combinators.
type tokenStream struct {
	text string
	toks []token
	pos  int
}

func lex(text string) (*tokenStream, error) {
	l := tdcss.NewLexer(parse.NewInput(strings.NewReader(text)))
	ts := &tokenStream{text: text}
	for {
		tt, data := l.Next()
		if tt == tdcss.ErrorToken {
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, syntaxError(text, "%v", err)
			}
			return ts, nil
		}
		if tt == tdcss.CommentToken {
			continue
		}
		ts.toks = append(ts.toks, token{tt: tt, data: string(data)})
	}
}

func (ts *tokenStream) peek() token {
	if ts.pos >= len(ts.toks) {
		return eof
	}
	return ts.toks[ts.pos]
}

func (ts *tokenStream) next() token {
	t := ts.peek()
	if ts.pos < len(ts.toks) {
		ts.pos++
	}
	return t
}

func (ts *tokenStream) atEnd() bool {
	return ts.pos >= len(ts.toks)
}

// skipWS skips whitespace and reports if there was any.
func (ts *tokenStream) skipWS() bool {
	skipped := false
	for ts.peek().tt == tdcss.WhitespaceToken {
		ts.pos++
		skipped = true
	}
	return skipped
}

// textFrom returns the selector text from token position start up to the
// current position.
func (ts *tokenStream) textFrom(start int) string {
	var sb strings.Builder
	for _, t := range ts.toks[start:ts.pos] {
		if t.tt == tdcss.WhitespaceToken {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteString(t.data)
	}
	return strings.TrimSpace(sb.String())
}

func (ts *tokenStream) errorf(format string, args ...interface{}) error {
	return syntaxError(ts.text, format, args...)
}
