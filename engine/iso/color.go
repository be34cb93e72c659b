package iso

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a packed 24-bit RGB value (0xRRGGBB)
type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xFFFFFF

	// DefaultColor is used when a tile has neither an explicit color nor a known type
	DefaultColor = White
)

// RGB returns a Color from 8-bit channels
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// FromColor packs any color.Color, dropping alpha
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(n.R, n.G, n.B)
}

// Channels unpacks the three 8-bit channels
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16 & 0xFF), uint8(c >> 8 & 0xFF), uint8(c & 0xFF)
}

// RGBA implements color.Color; the color is fully opaque
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA(1).RGBA()
}

// NRGBA converts to a non-premultiplied color with the given opacity in [0,1]
func (c Color) NRGBA(alpha float64) color.NRGBA {
	r, g, b := c.Channels()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clampChannel(math.Round(alpha * 255)))}
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// Darken scales each channel by factor and floors the result.
// factor is expected in [0,1]; channels are clamped so out-of-range factors
// never leak into neighbouring channels.
func Darken(c Color, factor float64) Color {
	r, g, b := c.Channels()
	scale := func(ch uint8) uint8 {
		return uint8(clampChannel(math.Floor(float64(ch) * factor)))
	}
	return RGB(scale(r), scale(g), scale(b))
}

func clampChannel(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 255:
		return 255
	}
	return v
}
