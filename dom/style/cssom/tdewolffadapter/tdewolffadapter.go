/*
Package tdewolffadapter is the default implementation of interface
cssom.Frontend, built on the CSS parser of github.com/tdewolff/parse.

The parser is error-tolerant: malformed rules and declarations are skipped
and reported as warnings, the rest of a stylesheet survives. Declarations
flagged `!important` are treated like any other declaration. Rules inside
`@media` blocks carry the media conditions of all enclosing blocks; other at-rules are skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tdewolffadapter

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
)

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}

// ErrUnreadable is returned if the parser does not recover from errors.
var ErrUnreadable = errors.New("cannot read stylesheet")

// maxErrors is the number of consecutive parse errors after which we give up.
const maxErrors = 8

// StyleSheet is an adapter for interface cssom.StyleSheet.
type StyleSheet struct {
	cssom.RuleList
	warnings []error
}

var _ cssom.StyleSheet = &StyleSheet{}

// Warnings returns the problems the parser recovered from.
func (sheet *StyleSheet) Warnings() []error {
	return sheet.warnings
}

func (sheet *StyleSheet) warn(err error) {
	tracer().Debugf("css: %v", err)
	sheet.warnings = append(sheet.warnings, err)
}

// Frontend returns the parser as a cssom.Frontend.
func Frontend() cssom.Frontend {
	return cssom.FrontendFunc(func(css string) (cssom.StyleSheet, error) {
		sheet, err := Parse(css)
		return sheet, err
	})
}

// Parse parses the text of a stylesheet. It returns an error only if the
// parser did not recover from errors, together with the rules read so far.
func Parse(css string) (*StyleSheet, error) {
	p := &sheetParser{
		parser: tdcss.NewParser(parse.NewInput(strings.NewReader(css)), false),
		sheet:  &StyleSheet{},
	}
	err := p.parse()
	tracer().P("rules", len(p.sheet.RuleList)).Debugf("parsed stylesheet with %d warnings",
		len(p.sheet.warnings))
	return p.sheet, err
}

type sheetParser struct {
	parser *tdcss.Parser
	sheet  *StyleSheet
	media  []string // conditions of enclosing @media blocks
	skip   int      // depth of skipped at-rule blocks
	rule   *cssom.SimpleRule
}

func (p *sheetParser) parse() error {
	errcnt := 0
	for {
		gt, _, data := p.parser.Next()
		if gt == tdcss.ErrorGrammar {
			err := p.parser.Err()
			if err == nil || errors.Is(err, io.EOF) || err.Error() == "EOF" {
				return nil
			}
			if errcnt++; errcnt > maxErrors {
				return fmt.Errorf("%w: %v", ErrUnreadable, err)
			}
			p.sheet.warn(err)
			continue
		}
		errcnt = 0
		if p.skip > 0 {
			p.skipping(gt)
			continue
		}
		switch gt {
		case tdcss.BeginAtRuleGrammar:
			p.beginAtRule(string(data))
		case tdcss.EndAtRuleGrammar:
			if len(p.media) > 0 {
				p.media = p.media[:len(p.media)-1]
			}
		case tdcss.AtRuleGrammar:
			tracer().Debugf("css: skipping %s", data)
		case tdcss.BeginRulesetGrammar:
			p.rule = &cssom.SimpleRule{
				Prelude: p.prelude(data),
				Conds:   slices.Clone(p.media),
			}
		case tdcss.QualifiedRuleGrammar:
			p.sheet.warn(fmt.Errorf("rule without declaration block: %s", p.prelude(data)))
		case tdcss.DeclarationGrammar, tdcss.CustomPropertyGrammar:
			p.declaration(gt, string(data))
		case tdcss.EndRulesetGrammar:
			if p.rule != nil {
				p.sheet.RuleList = append(p.sheet.RuleList, p.rule)
				p.rule = nil
			}
		}
	}
}

func (p *sheetParser) beginAtRule(name string) {
	if strings.EqualFold(name, "@media") {
		p.media = append(p.media, strings.TrimSpace(joinTokens(p.parser.Values())))
		return
	}
	tracer().Debugf("css: skipping %s block", name)
	p.skip = 1
}

func (p *sheetParser) skipping(gt tdcss.GrammarType) {
	switch gt {
	case tdcss.BeginAtRuleGrammar, tdcss.BeginRulesetGrammar:
		p.skip++
	case tdcss.EndAtRuleGrammar, tdcss.EndRulesetGrammar:
		p.skip--
	}
}

func (p *sheetParser) prelude(data []byte) string {
	var sb strings.Builder
	if s := string(data); s != "{" {
		sb.WriteString(s)
	}
	sb.WriteString(joinTokens(p.parser.Values()))
	return strings.TrimSpace(sb.String())
}

func (p *sheetParser) declaration(gt tdcss.GrammarType, key string) {
	if p.rule == nil {
		p.sheet.warn(fmt.Errorf("declaration %s outside of rule", key))
		return
	}
	value := strings.TrimSpace(joinTokens(p.parser.Values()))
	if gt == tdcss.DeclarationGrammar {
		value = stripImportant(value)
	}
	if value == "" {
		p.sheet.warn(fmt.Errorf("empty declaration %s in rule %s", key, p.rule.Prelude))
		return
	}
	p.rule.Decls = append(p.rule.Decls, style.KeyValue{
		Key:   key,
		Value: style.Property(value),
	})
}

func joinTokens(toks []tdcss.Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.Write(t.Data)
	}
	return sb.String()
}

// stripImportant removes a trailing `!important`.
func stripImportant(value string) string {
	lower := strings.ToLower(value)
	if !strings.HasSuffix(lower, "important") {
		return value
	}
	rest := strings.TrimSpace(value[:len(value)-len("important")])
	if !strings.HasSuffix(rest, "!") {
		return value
	}
	return strings.TrimSpace(strings.TrimSuffix(rest, "!"))
}
