package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particles-background/internal/config"
)

var (
	// Background is the color the canvas is cleared to.
	Background      = mustHex(config.BackgroundColor)
	connectionColor = mustHex(config.ConnectionColor)
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad color " + s)
	}
	return c
}

// NRGBA converts c to straight-alpha 8-bit color with the given alpha in [0, 1].
func NRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
