package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Property is the raw text of a declaration value. For example, with
//
//     padding: 4 8
//
// a property value of "4 8" is set. Raw properties are what stylesheet
// front-ends hand to the engine; package css turns them into typed values.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return strings.TrimSpace(string(p)) == ""
}

// KeyValue is a container for a raw style property.
type KeyValue struct {
	Key   string
	Value Property
}

// Property names the engine attaches meaning to. Style is using SVG property
// names where possible.
const (
	PBackgroundColor = "background-color"
	PBorderRadius    = "border-radius"
	PColor           = "color"
	PContent         = "content"
	PDashStyle       = "dash-style"
	PFill            = "fill"
	PFontFamily      = "font-family"
	PFontSize        = "font-size"
	PFontStyle       = "font-style"
	PFontWeight      = "font-weight"
	PJustifyContent  = "justify-content"
	PLineStyle       = "line-style"
	PLineWidth       = "line-width"
	PMinHeight       = "min-height"
	PMinWidth        = "min-width"
	POpacity         = "opacity"
	PPadding         = "padding"
	PStroke          = "stroke"
	PTextAlign       = "text-align"
	PTextColor       = "text-color"
	PTextDecoration  = "text-decoration"
	PVerticalAlign   = "vertical-align"
	PVerticalSpacing = "vertical-spacing"
	PWhiteSpace      = "white-space"
)

// IsCustomProperty returns wether a property key names a custom property,
// i.e. starts with "--".
func IsCustomProperty(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "--")
}

// ExpandFour distributes 1 to 4 values of a compound property onto the four
// sides top, right, bottom and left, following the CSS logic for shortcuts
// like `padding` and `margin`:
//
//     ExpandFour(a)          => a a a a
//     ExpandFour(a, b)       => a b a b
//     ExpandFour(a, b, c)    => a b c b
//     ExpandFour(a, b, c, d) => a b c d
//
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func ExpandFour[T any](fields ...T) ([4]T, error) {
	var r [4]T
	l := len(fields)
	if l == 0 || l > 4 {
		return r, fmt.Errorf("expecting 1-4 values for compound property, have %d", l)
	}
	r[0] = fields[0]
	switch l {
	case 1:
		r[1], r[2], r[3] = fields[0], fields[0], fields[0]
	case 2:
		r[1], r[2], r[3] = fields[1], fields[0], fields[1]
	case 3:
		r[1], r[2], r[3] = fields[1], fields[2], fields[1]
	case 4:
		r[1], r[2], r[3] = fields[1], fields[2], fields[3]
	}
	return r, nil
}
