package css

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/cascade/dom/style"
	tdcss "github.com/tdewolff/parse/v2/css"
)

// parseColorTokens recognizes named colors, hex colors and the functional
// notations rgb(), rgba(), hsl() and hsla().
func parseColorTokens(toks []token) (style.Color, bool) {
	if len(toks) == 0 {
		return style.Color{}, false
	}
	t := toks[0]
	if len(toks) == 1 {
		if t.is(tdcss.HashToken) {
			return hexColor(t.data)
		}
		if name, ok := t.ident(); ok {
			return NamedColor(name)
		}
		return style.Color{}, false
	}
	fn, ok := t.function()
	if !ok {
		return style.Color{}, false
	}
	args, ok := functionArgs(toks)
	if !ok {
		return style.Color{}, false
	}
	switch fn {
	case "rgb", "rgba":
		return rgbColor(args)
	case "hsl", "hsla":
		return hslColor(args)
	}
	return style.Color{}, false
}

// NamedColor looks up a CSS color keyword.
func NamedColor(name string) (style.Color, bool) {
	name = strings.ToLower(name)
	if name == "transparent" {
		return style.Transparent, true
	}
	rgb, ok := namedColors[name]
	if !ok {
		return style.Color{}, false
	}
	return style.Color{
		float64(rgb>>16&0xff) / 255,
		float64(rgb>>8&0xff) / 255,
		float64(rgb&0xff) / 255,
		1,
	}, true
}

// hexColor parses #rgb, #rgba, #rrggbb and #rrggbbaa.
func hexColor(s string) (style.Color, bool) {
	s = strings.TrimPrefix(s, "#")
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return style.Color{}, false
	}
	var c style.Color
	switch len(s) {
	case 3, 4:
		nibbles := len(s)
		for i := 0; i < nibbles; i++ {
			x := (n >> (4 * uint(nibbles-1-i))) & 0xf
			c[i] = float64(x*17) / 255
		}
		if nibbles == 3 {
			c[3] = 1
		}
	case 6, 8:
		bytes := len(s) / 2
		for i := 0; i < bytes; i++ {
			x := (n >> (8 * uint(bytes-1-i))) & 0xff
			c[i] = float64(x) / 255
		}
		if bytes == 3 {
			c[3] = 1
		}
	default:
		return style.Color{}, false
	}
	return c, true
}

func rgbColor(args []token) (style.Color, bool) {
	if len(args) != 3 && len(args) != 4 {
		return style.Color{}, false
	}
	c := style.Color{0, 0, 0, 1}
	for i, a := range args[:3] {
		if x, ok := a.number(); ok {
			c[i] = clamp(x / 255)
		} else if x, ok := a.percentage(); ok {
			c[i] = clamp(x)
		} else {
			return style.Color{}, false
		}
	}
	if len(args) == 4 {
		a, ok := alphaValue(args[3])
		if !ok {
			return style.Color{}, false
		}
		c[3] = a
	}
	return c, true
}

func hslColor(args []token) (style.Color, bool) {
	if len(args) != 3 && len(args) != 4 {
		return style.Color{}, false
	}
	h, ok := hue(args[0])
	if !ok {
		return style.Color{}, false
	}
	var sl [2]float64
	for i, a := range args[1:3] {
		if x, ok := a.percentage(); ok {
			sl[i] = clamp(x)
		} else if x, ok := a.number(); ok {
			sl[i] = clamp(x / 100)
		} else {
			return style.Color{}, false
		}
	}
	alpha := 1.0
	if len(args) == 4 {
		if alpha, ok = alphaValue(args[3]); !ok {
			return style.Color{}, false
		}
	}
	r, g, b := hslToRGB(h, sl[0], sl[1])
	return style.Color{r, g, b, alpha}, true
}

// hue returns an angle in degrees, normalized to [0…360).
func hue(t token) (float64, bool) {
	var deg float64
	if x, ok := t.number(); ok {
		deg = x
	} else if t.is(tdcss.DimensionToken) {
		x, unit, ok := splitDimension(t.data)
		if !ok {
			return 0, false
		}
		switch unit {
		case "deg":
			deg = x
		case "rad":
			deg = x * 180 / math.Pi
		case "grad":
			deg = x * 0.9
		case "turn":
			deg = x * 360
		default:
			return 0, false
		}
	} else {
		return 0, false
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg, true
}

func hslToRGB(h, s, l float64) (float64, float64, float64) {
	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		a := s * math.Min(l, 1-l)
		return l - a*math.Max(-1, math.Min(math.Min(k-3, 9-k), 1))
	}
	return f(0), f(8), f(4)
}

func alphaValue(t token) (float64, bool) {
	if x, ok := t.number(); ok {
		return clamp(x), true
	}
	if x, ok := t.percentage(); ok {
		return clamp(x), true
	}
	return 0, false
}

func clamp(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

var namedColors = map[string]uint32{
	"aliceblue":            0xf0f8ff,
	"antiquewhite":         0xfaebd7,
	"aqua":                 0x00ffff,
	"aquamarine":           0x7fffd4,
	"azure":                0xf0ffff,
	"beige":                0xf5f5dc,
	"bisque":               0xffe4c4,
	"black":                0x000000,
	"blanchedalmond":       0xffebcd,
	"blue":                 0x0000ff,
	"blueviolet":           0x8a2be2,
	"brown":                0xa52a2a,
	"burlywood":            0xdeb887,
	"cadetblue":            0x5f9ea0,
	"chartreuse":           0x7fff00,
	"chocolate":            0xd2691e,
	"coral":                0xff7f50,
	"cornflowerblue":       0x6495ed,
	"cornsilk":             0xfff8dc,
	"crimson":              0xdc143c,
	"cyan":                 0x00ffff,
	"darkblue":             0x00008b,
	"darkcyan":             0x008b8b,
	"darkgoldenrod":        0xb8860b,
	"darkgray":             0xa9a9a9,
	"darkgreen":            0x006400,
	"darkgrey":             0xa9a9a9,
	"darkkhaki":            0xbdb76b,
	"darkmagenta":          0x8b008b,
	"darkolivegreen":       0x556b2f,
	"darkorange":           0xff8c00,
	"darkorchid":           0x9932cc,
	"darkred":              0x8b0000,
	"darksalmon":           0xe9967a,
	"darkseagreen":         0x8fbc8f,
	"darkslateblue":        0x483d8b,
	"darkslategray":        0x2f4f4f,
	"darkslategrey":        0x2f4f4f,
	"darkturquoise":        0x00ced1,
	"darkviolet":           0x9400d3,
	"deeppink":             0xff1493,
	"deepskyblue":          0x00bfff,
	"dimgray":              0x696969,
	"dimgrey":              0x696969,
	"dodgerblue":           0x1e90ff,
	"firebrick":            0xb22222,
	"floralwhite":          0xfffaf0,
	"forestgreen":          0x228b22,
	"fuchsia":              0xff00ff,
	"gainsboro":            0xdcdcdc,
	"ghostwhite":           0xf8f8ff,
	"gold":                 0xffd700,
	"goldenrod":            0xdaa520,
	"gray":                 0x808080,
	"green":                0x008000,
	"greenyellow":          0xadff2f,
	"grey":                 0x808080,
	"honeydew":             0xf0fff0,
	"hotpink":              0xff69b4,
	"indianred":            0xcd5c5c,
	"indigo":               0x4b0082,
	"ivory":                0xfffff0,
	"khaki":                0xf0e68c,
	"lavender":             0xe6e6fa,
	"lavenderblush":        0xfff0f5,
	"lawngreen":            0x7cfc00,
	"lemonchiffon":         0xfffacd,
	"lightblue":            0xadd8e6,
	"lightcoral":           0xf08080,
	"lightcyan":            0xe0ffff,
	"lightgoldenrodyellow": 0xfafad2,
	"lightgray":            0xd3d3d3,
	"lightgreen":           0x90ee90,
	"lightgrey":            0xd3d3d3,
	"lightpink":            0xffb6c1,
	"lightsalmon":          0xffa07a,
	"lightseagreen":        0x20b2aa,
	"lightskyblue":         0x87cefa,
	"lightslategray":       0x778899,
	"lightslategrey":       0x778899,
	"lightsteelblue":       0xb0c4de,
	"lightyellow":          0xffffe0,
	"lime":                 0x00ff00,
	"limegreen":            0x32cd32,
	"linen":                0xfaf0e6,
	"magenta":              0xff00ff,
	"maroon":               0x800000,
	"mediumaquamarine":     0x66cdaa,
	"mediumblue":           0x0000cd,
	"mediumorchid":         0xba55d3,
	"mediumpurple":         0x9370db,
	"mediumseagreen":       0x3cb371,
	"mediumslateblue":      0x7b68ee,
	"mediumspringgreen":    0x00fa9a,
	"mediumturquoise":      0x48d1cc,
	"mediumvioletred":      0xc71585,
	"midnightblue":         0x191970,
	"mintcream":            0xf5fffa,
	"mistyrose":            0xffe4e1,
	"moccasin":             0xffe4b5,
	"navajowhite":          0xffdead,
	"navy":                 0x000080,
	"oldlace":              0xfdf5e6,
	"olive":                0x808000,
	"olivedrab":            0x6b8e23,
	"orange":               0xffa500,
	"orangered":            0xff4500,
	"orchid":               0xda70d6,
	"palegoldenrod":        0xeee8aa,
	"palegreen":            0x98fb98,
	"paleturquoise":        0xafeeee,
	"palevioletred":        0xdb7093,
	"papayawhip":           0xffefd5,
	"peachpuff":            0xffdab9,
	"peru":                 0xcd853f,
	"pink":                 0xffc0cb,
	"plum":                 0xdda0dd,
	"powderblue":           0xb0e0e6,
	"purple":               0x800080,
	"rebeccapurple":        0x663399,
	"red":                  0xff0000,
	"rosybrown":            0xbc8f8f,
	"royalblue":            0x4169e1,
	"saddlebrown":          0x8b4513,
	"salmon":               0xfa8072,
	"sandybrown":           0xf4a460,
	"seagreen":             0x2e8b57,
	"seashell":             0xfff5ee,
	"sienna":               0xa0522d,
	"silver":               0xc0c0c0,
	"skyblue":              0x87ceeb,
	"slateblue":            0x6a5acd,
	"slategray":            0x708090,
	"slategrey":            0x708090,
	"snow":                 0xfffafa,
	"springgreen":          0x00ff7f,
	"steelblue":            0x4682b4,
	"tan":                  0xd2b48c,
	"teal":                 0x008080,
	"thistle":              0xd8bfd8,
	"tomato":               0xff6347,
	"turquoise":            0x40e0d0,
	"violet":               0xee82ee,
	"wheat":                0xf5deb3,
	"white":                0xffffff,
	"whitesmoke":           0xf5f5f5,
	"yellow":               0xffff00,
	"yellowgreen":          0x9acd32,
}
