package pulse

import (
	"image/color"
	"math"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// ClearValue converts an 8 bit color into the clear value of a render pass.
// Targets with an srgb format expect linear values, the color is converted
// accordingly.
func ClearValue(c color.RGBA, format wgpu.TextureFormat) wgpu.Color {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	a := float64(c.A) / 255

	if isSRGB(format) {
		r, g, b = degamma(r), degamma(g), degamma(b)
	}

	return wgpu.Color{R: r, G: g, B: b, A: a}
}

func isSRGB(format wgpu.TextureFormat) bool {
	return format == wgpu.TextureFormatBGRA8UnormSrgb ||
		format == wgpu.TextureFormatRGBA8UnormSrgb
}

func degamma(x float64) float64 {
	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return x / 12.92
	}

	return sign * math.Pow((abs+0.055)/1.055, 2.4)
}
