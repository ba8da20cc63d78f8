package core

import "image/color"

// Canvas is the drawing surface the rendering backend hands to entities,
// the HUD and the menu for one frame.
type Canvas interface {
	FillRect(r Rect, clr color.Color)
	StrokeRect(r Rect, width float32, clr color.Color)
	FillCircle(cx, cy, radius float64, clr color.Color)
	Text(s string, x, y float64, clr color.Color)
}

// Palette maps color names used by stage files to colors
var Palette = map[string]color.RGBA{
	"black":    {0, 0, 0, 255},
	"gray":     {130, 130, 130, 255},
	"darkgray": {80, 80, 80, 255},
	"red":      {230, 41, 55, 255},
	"orange":   {255, 161, 0, 255},
	"purple":   {200, 122, 255, 255},
	"green":    {0, 228, 48, 255},
	"blue":     {0, 121, 241, 255},
	"yellow":   {253, 249, 0, 255},
	"white":    {255, 255, 255, 255},
	"raywhite": {245, 245, 245, 255},
}
