package css

import (
	"github.com/npillmayer/cascade/dom/style"
)

// Compute computes the style values for a node from the declaration blocks of
// all rules matching it. Layers have to be given in ascending cascade priority,
// i.e. sorted by specificity and source order.
//
// Computing is done in four steps:
//
//   1. Layers are merged, higher priority layers overwriting lower ones.
//   2. References to custom properties are resolved (see ResolveVariables).
//   3. A relative font size is scaled by the last absolute one (see ScaleFontSize).
//   4. Colors are composited with the opacity (see CompositeOpacity).
//
// The layers are not modified.
func Compute(layers []style.Declarations) style.Declarations {
	merged := style.Merge(layers...)
	computed := ResolveVariables(merged, layers)
	ScaleFontSize(computed, layers)
	CompositeOpacity(computed)
	return computed
}

// ResolveVariables returns a copy of merged declarations with all references
// to custom properties resolved.
//
// For a property set to `var(--x)` the layers are searched from highest to
// lowest priority. The first layer with a non-empty, direct value for the
// property wins. A layer referencing a custom property contributes the raw
// text of that custom property in the merged declarations, parsed for the
// referencing property. If the custom property is unset, or if its text is not
// a valid value for the property, the search continues with the next lower
// layer. A property which cannot be resolved at all is dropped.
//
// Custom properties may themselves reference custom properties; cycles
// resolve to nothing.
//
// With no layers given, merged is treated as a single layer.
func ResolveVariables(merged style.Declarations, layers []style.Declarations) style.Declarations {
	if len(layers) == 0 {
		layers = []style.Declarations{merged}
	}
	resolved := make(style.Declarations, len(merged))
	for key, v := range merged {
		if !v.IsVar() {
			resolved[key] = v
			continue
		}
		if x, ok := resolveFromLayers(key, merged, layers); ok {
			resolved[key] = x
		}
	}
	return resolved
}

func resolveFromLayers(key string, merged style.Declarations, layers []style.Declarations) (style.Value, bool) {
	for i := len(layers) - 1; i >= 0; i-- {
		v, ok := layers[i][key]
		if !ok || v.IsEmpty() {
			continue
		}
		if !v.IsVar() {
			return v, true
		}
		if x, ok := dereference(key, v, merged, map[string]bool{}); ok {
			return x, true
		}
	}
	return style.Value{}, false
}

// dereference parses the raw text of the custom property v refers to, as a
// value for property key.
func dereference(key string, v style.Value, merged style.Declarations, visiting map[string]bool) (style.Value, bool) {
	var name, raw string
	v.Match().Var(&name)
	if visiting[name] {
		return style.Value{}, false
	}
	visiting[name] = true
	if merged[name].Match().Text(&raw) == nil {
		return style.Value{}, false
	}
	x, ok := parseValue(key, style.Property(raw))
	if !ok || x.IsEmpty() {
		return style.Value{}, false
	}
	if x.IsVar() {
		return dereference(key, x, merged, visiting)
	}
	return x, true
}

// ScaleFontSize replaces a relative font-size keyword in computed by the last
// absolute font size found in the layers, scaled by the keyword's ratio. If no
// layer sets an absolute font size, the keyword is kept and it is up to the
// renderer to scale it, usually relative to style.DefaultFontSize.
func ScaleFontSize(computed style.Declarations, layers []style.Declarations) {
	var base float64
	for _, l := range layers {
		var x float64
		if l[style.PFontSize].Match().Number(&x) != nil && x != 0 {
			base = x
		}
	}
	var kw string
	if computed[style.PFontSize].Match().Keyword(&kw) == nil {
		return
	}
	ratio, ok := style.FontSizeRatio(kw)
	if !ok || base == 0 {
		return
	}
	computed[style.PFontSize] = style.Number(base * ratio)
}

// CompositeOpacity multiplies the alpha channel of all non-transparent colors
// in style.CompositedColors with the opacity, if set.
func CompositeOpacity(computed style.Declarations) {
	var opacity float64
	if computed[style.POpacity].Match().Number(&opacity) == nil {
		return
	}
	for _, key := range style.CompositedColors {
		var c style.Color
		if computed[key].Match().Color(&c) == nil || c.Alpha() <= 0 {
			continue
		}
		computed[key] = style.ColorValue(c.WithAlpha(c.Alpha() * opacity))
	}
}
