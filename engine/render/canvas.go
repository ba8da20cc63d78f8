package render

import (
	"image/color"

	"github.com/1siamBot/pang/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Canvas draws core primitives onto an ebiten image
type Canvas struct {
	Screen    *ebiten.Image
	Face      text.Face
	Antialias bool
}

// NewCanvas creates a canvas using the built-in bitmap font
func NewCanvas() *Canvas {
	return &Canvas{
		Face:      text.NewGoXFace(basicfont.Face7x13),
		Antialias: true,
	}
}

// Begin points the canvas at this frame's screen and clears it
func (c *Canvas) Begin(screen *ebiten.Image, bg color.Color) {
	c.Screen = screen
	screen.Fill(bg)
}

func (c *Canvas) FillRect(r core.Rect, clr color.Color) {
	vector.DrawFilledRect(c.Screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, c.Antialias)
}

func (c *Canvas) StrokeRect(r core.Rect, width float32, clr color.Color) {
	vector.StrokeRect(c.Screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, c.Antialias)
}

func (c *Canvas) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.Screen, float32(cx), float32(cy), float32(radius), clr, c.Antialias)
}

// Text draws s with its top-left corner at (x, y)
func (c *Canvas) Text(s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.Screen, s, c.Face, op)
}

var _ core.Canvas = (*Canvas)(nil)
