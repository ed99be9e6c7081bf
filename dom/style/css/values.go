package css

import (
	"strings"

	"github.com/npillmayer/cascade/dom/style"
	tdcss "github.com/tdewolff/parse/v2/css"
)

// valueParser parses the tokens of a declaration value for a property.
type valueParser func(toks []token) (style.Value, bool)

var parsers = map[string]valueParser{
	style.PColor:           parseColor,
	style.PBackgroundColor: parseColor,
	style.PTextColor:       parseColor,
	style.PFill:            parseColor,
	style.PStroke:          parseColor,
	style.PBorderRadius:    parseLength,
	style.PLineWidth:       parseLength,
	style.PMinWidth:        parseLength,
	style.PMinHeight:       parseLength,
	style.PVerticalSpacing: parseLength,
	style.POpacity:         parseOpacity,
	style.PFontSize:        parseFontSize,
	style.PPadding:         parsePadding,
	style.PDashStyle:       parseDashStyle,
	style.PLineStyle:       parseLineStyle,
	style.PFontWeight:      parseFontWeight,
	style.PFontFamily:      parseFontFamily,
	style.PContent:         parseContent,
	style.PFontStyle:       keywords("normal", "italic"),
	style.PTextAlign:       keywords("left", "center", "right"),
	style.PTextDecoration:  keywords("none", "underline", "line-through"),
	style.PVerticalAlign:   keywords("top", "middle", "bottom"),
	style.PJustifyContent:  keywords("start", "end", "center", "stretch", "space-around", "space-between"),
	style.PWhiteSpace:      keywords("normal", "nowrap"),
}

// ParseValue converts the raw text of a declaration into a value for a given
// property. It returns false if the text is not a valid value for the property;
// the declaration should then be dropped.
//
// Any property may reference a custom property with `var(--name)`. Custom
// properties themselves are kept as strings holding their raw text.
// Properties the engine does not know are interpreted by token type.
func ParseValue(property string, raw style.Property) (style.Value, bool) {
	v, ok := parseValue(property, raw)
	if !ok {
		tracer().Debugf("dropping invalid value for %s: %q", property, raw)
	}
	return v, ok
}

// parseValue is ParseValue without tracing, for use while matching.
func parseValue(property string, raw style.Property) (style.Value, bool) {
	if style.IsCustomProperty(property) {
		if raw.IsEmpty() {
			return style.Value{}, false
		}
		return style.String(strings.TrimSpace(raw.String())), true
	}
	toks := tokenize(raw.String())
	if len(toks) == 0 {
		return style.Value{}, false
	}
	if v, ok := parseVar(toks); ok {
		return v, true
	}
	parse, ok := parsers[property]
	if !ok {
		parse = parseAny
	}
	return parse(toks)
}

// ParseDeclarations converts a raw declaration block into typed declarations.
// Invalid declarations are dropped; for duplicate keys the last valid
// declaration wins.
func ParseDeclarations(kvs []style.KeyValue) style.Declarations {
	decls := make(style.Declarations, len(kvs))
	for _, kv := range kvs {
		key := strings.TrimSpace(kv.Key)
		if !style.IsCustomProperty(key) {
			key = strings.ToLower(key)
		}
		if v, ok := ParseValue(key, kv.Value); ok {
			decls[key] = v
		}
	}
	return decls
}

// parseVar recognizes `var(--name)`.
func parseVar(toks []token) (style.Value, bool) {
	if len(toks) != 3 {
		return style.Value{}, false
	}
	if fn, ok := toks[0].function(); !ok || fn != "var" {
		return style.Value{}, false
	}
	name := toks[1].data
	if !style.IsCustomProperty(name) || !toks[2].is(tdcss.RightParenthesisToken) {
		return style.Value{}, false
	}
	return style.Var(name), true
}

func parseColor(toks []token) (style.Value, bool) {
	c, ok := parseColorTokens(toks)
	if !ok {
		return style.Value{}, false
	}
	return style.ColorValue(c), true
}

func parseLength(toks []token) (style.Value, bool) {
	if len(toks) != 1 {
		return style.Value{}, false
	}
	x, ok := toks[0].length()
	if !ok {
		return style.Value{}, false
	}
	return style.Number(x), true
}

func parseOpacity(toks []token) (style.Value, bool) {
	if len(toks) != 1 {
		return style.Value{}, false
	}
	if x, ok := toks[0].number(); ok {
		return style.Number(x), true
	}
	if x, ok := toks[0].percentage(); ok {
		return style.Number(x), true
	}
	return style.Value{}, false
}

func parseFontSize(toks []token) (style.Value, bool) {
	if len(toks) != 1 {
		return style.Value{}, false
	}
	if kw, ok := toks[0].ident(); ok {
		if _, ok := style.FontSizeRatio(kw); ok {
			return style.Keyword(kw), true
		}
		return style.Value{}, false
	}
	return parseLength(toks)
}

// numbers collects lengths, skipping commas.
func numbers(toks []token) ([]float64, bool) {
	xs := make([]float64, 0, len(toks))
	for _, t := range toks {
		if t.is(tdcss.CommaToken) {
			continue
		}
		x, ok := t.length()
		if !ok {
			return nil, false
		}
		xs = append(xs, x)
	}
	return xs, true
}

func parsePadding(toks []token) (style.Value, bool) {
	xs, ok := numbers(toks)
	if !ok {
		return style.Value{}, false
	}
	four, err := style.ExpandFour(xs...)
	if err != nil {
		return style.Value{}, false
	}
	return style.Sequence(four[:]...), true
}

func parseDashStyle(toks []token) (style.Value, bool) {
	if kw, ok := toks[0].ident(); ok && len(toks) == 1 && kw == "none" {
		return style.Sequence(), true
	}
	xs, ok := numbers(toks)
	if !ok {
		return style.Value{}, false
	}
	return style.Sequence(xs...), true
}

// parseLineStyle maps `normal` to 0 and `sloppy [factor]` to the factor,
// which defaults to 0.5.
func parseLineStyle(toks []token) (style.Value, bool) {
	kw, ok := toks[0].ident()
	if !ok {
		return style.Value{}, false
	}
	switch {
	case kw == "normal" && len(toks) == 1:
		return style.Number(0), true
	case kw == "sloppy" && len(toks) == 1:
		return style.Number(0.5), true
	case kw == "sloppy" && len(toks) == 2:
		if x, ok := toks[1].number(); ok {
			return style.Number(x), true
		}
	}
	return style.Value{}, false
}

func parseFontWeight(toks []token) (style.Value, bool) {
	if len(toks) != 1 {
		return style.Value{}, false
	}
	if kw, ok := toks[0].ident(); ok && (kw == "normal" || kw == "bold") {
		return style.Keyword(kw), true
	}
	if x, ok := toks[0].number(); ok && x >= 1 && x <= 1000 {
		if x >= 600 {
			return style.Keyword("bold"), true
		}
		return style.Keyword("normal"), true
	}
	return style.Value{}, false
}

// parseFontFamily accepts a comma separated list of family names, each either
// quoted or a sequence of identifiers.
func parseFontFamily(toks []token) (style.Value, bool) {
	var sb strings.Builder
	sep := ""
	for _, t := range toks {
		switch t.tt {
		case tdcss.CommaToken:
			sb.WriteString(",")
			sep = " "
		case tdcss.StringToken:
			s, _ := t.text()
			sb.WriteString(sep + s)
			sep = " "
		case tdcss.IdentToken:
			sb.WriteString(sep + t.data)
			sep = " "
		default:
			return style.Value{}, false
		}
	}
	return style.String(sb.String()), true
}

func parseContent(toks []token) (style.Value, bool) {
	if len(toks) != 1 {
		return style.Value{}, false
	}
	if s, ok := toks[0].text(); ok {
		return style.String(s), true
	}
	return style.Value{}, false
}

func keywords(allowed ...string) valueParser {
	return func(toks []token) (style.Value, bool) {
		if len(toks) != 1 {
			return style.Value{}, false
		}
		kw, ok := toks[0].ident()
		if !ok {
			return style.Value{}, false
		}
		for _, a := range allowed {
			if kw == a {
				return style.Keyword(kw), true
			}
		}
		return style.Value{}, false
	}
}

// parseAny interprets the value of an unknown property by token type.
func parseAny(toks []token) (style.Value, bool) {
	if c, ok := parseColorTokens(toks); ok && !toks[0].is(tdcss.IdentToken) {
		return style.ColorValue(c), true
	}
	if len(toks) == 1 {
		t := toks[0]
		if x, ok := t.length(); ok {
			return style.Number(x), true
		}
		if x, ok := t.percentage(); ok {
			return style.Number(x), true
		}
		if kw, ok := t.ident(); ok {
			return style.Keyword(kw), true
		}
		if s, ok := t.text(); ok {
			return style.String(s), true
		}
	}
	if xs, ok := numbers(toks); ok {
		return style.Sequence(xs...), true
	}
	return style.String(joinTokens(toks)), true
}
