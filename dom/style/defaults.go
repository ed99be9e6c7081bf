package style

// DefaultFontSize is the base font size renderers should assume for relative
// font-size keywords if no absolute font size has been set by a stylesheet.
// The engine itself never applies it: a relative keyword without an absolute
// base is handed to the caller unchanged.
const DefaultFontSize = 14.0

// Relative font-size keywords and their scaling ratios.
var fontSizeRatios = map[string]float64{
	"x-small":  3.0 / 4.0,
	"small":    8.0 / 9.0,
	"medium":   1.0,
	"large":    6.0 / 5.0,
	"x-large":  3.0 / 2.0,
	"xx-large": 2.0,
	"smaller":  5.0 / 6.0,
	"larger":   6.0 / 5.0,
}

// FontSizeRatio returns the scaling ratio for a relative font-size keyword.
func FontSizeRatio(keyword string) (float64, bool) {
	r, ok := fontSizeRatios[keyword]
	return r, ok
}

// CompositedColors lists the color properties which are subject to opacity
// compositing. "fill" and "stroke" are the SVG names for background and
// foreground colors of shapes.
var CompositedColors = []string{
	PColor,
	PBackgroundColor,
	PTextColor,
	PFill,
	PStroke,
}
