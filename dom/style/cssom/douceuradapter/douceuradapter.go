/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
built on github.com/aymerick/douceur.

Douceur is stricter than the default front-end (see package tdewolffadapter):
a stylesheet it cannot parse is rejected as a whole. On the other hand, this
package is able to extract stylesheets from <style> elements of HTML or
SVG documents.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/cascade/dom/style"
	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'cascade.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("cascade.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	rules cssom.RuleList
}

// Parse parses the text of a stylesheet with douceur.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceur cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// Frontend returns douceur as a cssom.Frontend.
func Frontend() cssom.Frontend {
	return cssom.FrontendFunc(func(text string) (cssom.StyleSheet, error) {
		sheet, err := Parse(text)
		if err != nil {
			return nil, err
		}
		return sheet, nil
	})
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// Rules of @media blocks are flattened into the list of rules, carrying
// the media conditions. Other at-rules are skipped.
func Wrap(c *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{}
	if c != nil {
		sheet.flatten(c.Rules, nil)
	}
	return sheet
}

func (sheet *CSSStyles) flatten(rules []*css.Rule, media []string) {
	for _, r := range rules {
		switch r.Kind {
		case css.QualifiedRule:
			sheet.rules = append(sheet.rules, Rule{rule: r, media: slices.Clone(media)})
		case css.AtRule:
			if strings.EqualFold(r.Name, "@media") {
				sheet.flatten(r.Rules, append(media, strings.TrimSpace(r.Prelude)))
				continue
			}
			tracer().Debugf("douceur: skipping %s", r.Name)
		}
	}
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	sheet.rules.AppendRules(other)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return sheet.rules.Rules()
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule  *css.Rule
	media []string
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	if len(r.rule.Selectors) > 0 {
		return strings.Join(r.rule.Selectors, ", ")
	}
	return r.rule.Prelude
}

// Media returns the conditions of enclosing @media blocks, outermost first.
func (r Rule) Media() []string {
	return r.media
}

// Declarations returns the declarations of the rule in source order.
func (r Rule) Declarations() []style.KeyValue {
	decls := make([]style.KeyValue, 0, len(r.rule.Declarations))
	for _, d := range r.rule.Declarations {
		decls = append(decls, style.KeyValue{Key: d.Property, Value: style.Property(d.Value)})
	}
	return decls
}

// Properties returns the property keys of a rule,
// e.g. "line-width"
func (r Rule) Properties() []string {
	decl := r.rule.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) style.Property {
	v := style.NullStyle
	for _, d := range r.rule.Declarations {
		if d.Property == key {
			v = style.Property(d.Value)
		}
	}
	return v
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements searches an HTML or SVG parse tree for embedded
// <style>s. It returns the content of style-elements as style sheets, in
// document order. Style elements douceur cannot parse are skipped.
func ExtractStyleElements(doc *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	var walk func(*html.Node, int)
	walk = func(h *html.Node, depth int) {
		if h == nil || depth > maxDepth {
			return
		}
		if h.Type == html.ElementNode && (h.DataAtom == atom.Style || h.Data == "style") {
			c, err := Parse(textContent(h))
			if err != nil {
				tracer().Infof("skipping <style> element: %v", err)
			} else {
				sheets = append(sheets, c)
			}
			return
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch, depth+1)
		}
	}
	walk(doc, 0)
	return sheets
}

const maxDepth = 4096

func textContent(h *html.Node) string {
	var sb strings.Builder
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			sb.WriteString(ch.Data)
		}
	}
	return sb.String()
}
