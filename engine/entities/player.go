package entities

import (
	"image/color"

	"github.com/1siamBot/pang/engine/core"
)

const (
	PlayerWidth  = 35
	PlayerHeight = 64

	walkSpeed   = 4.0
	climbSpeed  = 3.0
	gravity     = 0.5
	maxFall     = 12.0
	invulFrames = 90
)

// Player is the character controlled by the keyboard
type Player struct {
	core.Body
	Color color.RGBA

	prev         core.Rect
	onLadder     bool
	ladder       core.Rect
	climbing     bool
	grounded     bool
	invulnerable int
}

func NewPlayer(x, y float64, clr color.RGBA) *Player {
	r := core.Rect{X: x, Y: y, W: PlayerWidth, H: PlayerHeight}
	return &Player{
		Body:  core.NewBody(core.CatPlayer, r),
		Color: clr,
		prev:  r,
	}
}

// Grounded reports whether the last collision pass put the player on a block
func (p *Player) Grounded() bool { return p.grounded }

// Climbing reports whether the player moved along a ladder this frame
func (p *Player) Climbing() bool { return p.climbing }

// Invulnerable reports whether enemy contact is currently ignored
func (p *Player) Invulnerable() bool { return p.invulnerable > 0 }

func (p *Player) Move(w *core.World) {
	if p.Finished() {
		return
	}
	c := w.Controls
	p.prev = p.Rect

	p.VX = 0
	if c.Held(core.ActLeft) {
		p.VX -= walkSpeed
	}
	if c.Held(core.ActRight) {
		p.VX += walkSpeed
	}

	up, down := c.Held(core.ActUp), c.Held(core.ActDown)
	p.climbing = false
	switch {
	case p.onLadder && (up || down):
		p.climbing = true
		p.VY = climbSpeed
		if up {
			p.VY = -climbSpeed
		}
	case p.onLadder && !p.grounded:
		// hang on the ladder
		p.VY = 0
	default:
		p.VY = min(p.VY+gravity, maxFall)
	}

	// fire from where the last collision pass left the feet
	if c.JustPressed(core.ActFire) {
		cx, _ := p.Rect.Center()
		AddWeapon(w, cx-WeaponWidth/2, p.Rect.Bottom())
	}
	p.Rect = p.Rect.Translate(p.VX, p.VY)

	if p.invulnerable > 0 {
		p.invulnerable--
	}

	// set again by this frame's collision pass
	p.onLadder = false
	p.grounded = false
}

func (p *Player) Collide(w *core.World, other core.Entity) {
	if p.Finished() {
		return
	}
	switch other.Category() {
	case core.CatBlock:
		p.resolveBlock(other.Bounds())
	case core.CatLadder:
		p.onLadder = true
		p.ladder = other.Bounds()
	case core.CatEnemy:
		if p.invulnerable > 0 {
			return
		}
		p.invulnerable = invulFrames
		w.Score.AddHit()
		w.Events.Emit(core.Event{Type: core.EvtPlayerHit, Frame: w.TickCount, Payload: w.Score.Hits})
	}
}

// resolveBlock pushes the player out of b along the side it came from.
// A climbing player passes vertically through platforms the ladder crosses.
func (p *Player) resolveBlock(b core.Rect) {
	if !p.Rect.Overlaps(b) {
		return
	}
	side := entrySide(p.prev, p.Rect, b)
	if p.climbing && (side == sideTop || side == sideBottom) &&
		b.Y < p.ladder.Bottom() && b.Bottom() > p.ladder.Y {
		return
	}
	switch side {
	case sideTop:
		p.Rect.Y = b.Y - p.Rect.H
		p.VY = 0
		p.grounded = true
	case sideBottom:
		p.Rect.Y = b.Bottom()
		p.VY = 0
	case sideLeft:
		p.Rect.X = b.X - p.Rect.W
	case sideRight:
		p.Rect.X = b.Right()
	}
}

func (p *Player) Draw(c core.Canvas) {
	// blink while invulnerable
	if p.invulnerable > 0 && (p.invulnerable/6)%2 == 0 {
		return
	}
	c.FillRect(p.Rect, p.Color)
}
