package entities

import (
	"image/color"

	"github.com/1siamBot/pang/engine/core"
)

// Block is a solid wall or platform
type Block struct {
	core.Body
	Color color.RGBA
}

func NewBlock(x, y, w, h float64, clr color.RGBA) *Block {
	return &Block{Body: core.NewBody(core.CatBlock, core.Rect{X: x, Y: y, W: w, H: h}), Color: clr}
}

func (b *Block) Move(*core.World)                 {}
func (b *Block) Collide(*core.World, core.Entity) {}
func (b *Block) Draw(c core.Canvas)               { c.FillRect(b.Rect, b.Color) }

// Ladder lets the player climb while overlapping it
type Ladder struct {
	core.Body
	Color color.RGBA
}

func NewLadder(x, y, w, h float64, clr color.RGBA) *Ladder {
	return &Ladder{Body: core.NewBody(core.CatLadder, core.Rect{X: x, Y: y, W: w, H: h}), Color: clr}
}

func (l *Ladder) Move(*core.World)                 {}
func (l *Ladder) Collide(*core.World, core.Entity) {}

func (l *Ladder) Draw(c core.Canvas) {
	r := l.Rect
	c.StrokeRect(r, 2, l.Color)
	for y := r.Y + rungSpacing; y < r.Bottom(); y += rungSpacing {
		c.FillRect(core.Rect{X: r.X, Y: y, W: r.W, H: 2}, l.Color)
	}
}

const rungSpacing = 16
