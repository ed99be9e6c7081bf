package style

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a color with channels red, green, blue and alpha, each in [0,1].
// Channels are not pre-multiplied.
//
// Color implements color.Color, thus may be handed to image/draw and friends
// directly.
type Color [4]float64

// Transparent is the fully transparent color.
var Transparent = Color{0, 0, 0, 0}

// Alpha returns the alpha channel.
func (c Color) Alpha() float64 {
	return c[3]
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	c[3] = a
	return c
}

// RGBA is part of interface color.Color. It returns alpha-premultiplied
// channels in the range [0,0xffff].
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c[3])
	r = uint32(math.Round(clamp01(c[0]) * alpha * 0xffff))
	g = uint32(math.Round(clamp01(c[1]) * alpha * 0xffff))
	b = uint32(math.Round(clamp01(c[2]) * alpha * 0xffff))
	a = uint32(math.Round(alpha * 0xffff))
	return
}

var _ color.Color = Color{}

// ColorFrom converts any color.Color into a Color.
func ColorFrom(c color.Color) Color {
	if c == nil {
		return Transparent
	}
	if sc, ok := c.(Color); ok {
		return sc
	}
	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		float64(nc.R) / 0xffff,
		float64(nc.G) / 0xffff,
		float64(nc.B) / 0xffff,
		float64(nc.A) / 0xffff,
	}
}

// Hex returns a color in "#rrggbbaa" notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c[0]), to8(c[1]), to8(c[2]), to8(c[3]))
}

func (c Color) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", c[0], c[1], c[2], c[3])
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 0xff))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
