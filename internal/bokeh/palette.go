package bokeh

import "github.com/gogpu/gg"

// Color is an 8-bit RGB base tone.
type Color struct {
	R, G, B uint8
}

// Palette mixes warm and cool tones.
var Palette = [...]Color{
	{255, 223, 186}, // warm peach
	{186, 225, 255}, // cool blue
	{255, 255, 255}, // white
	{255, 240, 200}, // warm yellow
	{200, 220, 255}, // light blue
}

// WithAlpha converts c to a gg color with the given alpha in [0, 1].
func (c Color) WithAlpha(a float64) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, a)
}

// InPalette reports whether c is one of the palette entries.
func InPalette(c Color) bool {
	for _, pc := range Palette {
		if pc == c {
			return true
		}
	}
	return false
}
