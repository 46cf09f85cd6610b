// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the grid and HUD.
type MapColors struct {
	BackgroundColor color.RGBA
	PassableColor   color.RGBA
	ImpassableColor color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	PathColor       color.RGBA
	PreviewBadColor color.RGBA
	TextLightColor  color.RGBA
	HealthBarColor  color.RGBA
	HealthBackColor color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha возвращает цвет с другой прозрачностью
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
