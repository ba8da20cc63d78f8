package entities

import (
	"image/color"

	"github.com/1siamBot/pang/engine/core"
)

const (
	WeaponWidth = 20
	weaponSpeed = 8.0
)

// Weapon is a harpoon that grows upward from where it was fired until it
// reaches a block, an enemy or the top of the arena.
type Weapon struct {
	core.Body
	Color color.RGBA

	base   float64
	target core.Entity
}

func NewWeapon(x, y float64, clr color.RGBA) *Weapon {
	return &Weapon{
		Body:  core.NewBody(core.CatWeapon, core.Rect{X: x, Y: y, W: WeaponWidth, H: 0}),
		Color: clr,
		base:  y,
	}
}

// Target returns the enemy this harpoon struck, if any
func (wp *Weapon) Target() core.Entity { return wp.target }

func (wp *Weapon) Move(w *core.World) {
	if wp.Finished() {
		return
	}
	wp.Rect.Y -= weaponSpeed
	wp.Rect.H += weaponSpeed
	if top := w.Bounds.Y; wp.Rect.Y <= top {
		wp.Rect.Y = top
		wp.Rect.H = max(wp.base-top, 0)
		wp.Finish()
	}
}

func (wp *Weapon) Collide(_ *core.World, other core.Entity) {
	if wp.Finished() {
		return
	}
	switch other.Category() {
	case core.CatEnemy:
		wp.target = other
		wp.Finish()
	case core.CatBlock:
		// the block it was fired from never stops it
		if other.Bounds().Y < wp.base {
			wp.Finish()
		}
	}
}

func (wp *Weapon) Draw(c core.Canvas) {
	r := wp.Rect
	cx, _ := r.Center()
	c.FillRect(core.Rect{X: cx - 1, Y: r.Y, W: 2, H: r.H}, wp.Color)
	c.FillRect(core.Rect{X: r.X, Y: r.Y, W: r.W, H: min(r.H, 6)}, wp.Color)
}
