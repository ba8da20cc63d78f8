package entities

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/1siamBot/pang/engine/core"
)

// Kind is the size class of a bouncing ball
type Kind uint8

const (
	Ball1 Kind = iota
	Ball2
	Ball3
	Ball4
	kindMax
)

type kindSpec struct {
	name     string
	diameter float64
	bounce   float64 // upward speed after touching the floor
	points   int
	color    string
}

var kindSpecs = [kindMax]kindSpec{
	{"ball1", 80, 11, 50, "red"},
	{"ball2", 56, 10, 75, "orange"},
	{"ball3", 32, 9, 100, "blue"},
	{"ball4", 16, 8, 150, "green"},
}

func (k Kind) String() string {
	if k < kindMax {
		return kindSpecs[k].name
	}
	return "unknown"
}

// Diameter returns the ball size in pixels
func (k Kind) Diameter() float64 { return kindSpecs[k].diameter }

// Points returns the score for popping a ball of this kind
func (k Kind) Points() int { return kindSpecs[k].points }

// ParseKind converts a stage file name like "ball2" to a Kind
func ParseKind(s string) (Kind, error) {
	for k := Kind(0); k < kindMax; k++ {
		if strings.EqualFold(kindSpecs[k].name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy kind %q", s)
}

const (
	ballSpeedX  = 2.0
	ballGravity = 0.25
	ballMaxFall = 10.0
	popHop      = 5.0
)

// Enemy is a bouncing ball. Popping it splits it into two smaller balls
// until the smallest kind.
type Enemy struct {
	core.Body
	Kind    Kind
	Heading int
	Color   color.RGBA

	prev core.Rect
}

func NewEnemy(x, y float64, kind Kind, heading int) *Enemy {
	d := kind.Diameter()
	if heading >= 0 {
		heading = 1
	} else {
		heading = -1
	}
	r := core.Rect{X: x, Y: y, W: d, H: d}
	// prev starts at the spawn rect: balls born inside a collision pass
	// resolve blocks they overlap before their first Move
	e := &Enemy{
		Body:    core.NewBody(core.CatEnemy, r),
		Kind:    kind,
		Heading: heading,
		Color:   core.Palette[kindSpecs[kind].color],
		prev:    r,
	}
	e.VX = float64(heading) * ballSpeedX
	return e
}

func (e *Enemy) Move(w *core.World) {
	if e.Finished() {
		return
	}
	e.prev = e.Rect
	e.VY = min(e.VY+ballGravity, ballMaxFall)
	e.Rect = e.Rect.Translate(e.VX, e.VY)
	e.bounceInside(w.Bounds)
}

// bounceInside reflects the ball off the arena edges
func (e *Enemy) bounceInside(b core.Rect) {
	if b.W <= 0 || b.H <= 0 {
		return
	}
	r := &e.Rect
	if r.X < b.X {
		r.X = b.X
		e.turn(1)
	} else if r.Right() > b.Right() {
		r.X = b.Right() - r.W
		e.turn(-1)
	}
	if r.Bottom() > b.Bottom() {
		r.Y = b.Bottom() - r.H
		e.VY = -kindSpecs[e.Kind].bounce
	} else if r.Y < b.Y {
		r.Y = b.Y
		e.VY = abs(e.VY)
	}
}

func (e *Enemy) turn(heading int) {
	e.Heading = heading
	e.VX = float64(heading) * ballSpeedX
}

func (e *Enemy) Collide(w *core.World, other core.Entity) {
	if e.Finished() {
		return
	}
	switch other.Category() {
	case core.CatWeapon:
		if wp, ok := other.(*Weapon); ok && wp.Target() == core.Entity(e) {
			e.pop(w)
		}
	case core.CatBlock:
		e.resolveBlock(other.Bounds())
	}
}

func (e *Enemy) resolveBlock(b core.Rect) {
	if !e.Rect.Overlaps(b) {
		return
	}
	switch entrySide(e.prev, e.Rect, b) {
	case sideTop:
		e.Rect.Y = b.Y - e.Rect.H
		e.VY = -kindSpecs[e.Kind].bounce
	case sideBottom:
		e.Rect.Y = b.Bottom()
		e.VY = abs(e.VY)
	case sideLeft:
		e.Rect.X = b.X - e.Rect.W
		e.turn(-1)
	case sideRight:
		e.Rect.X = b.Right()
		e.turn(1)
	}
}

// pop finishes the ball, scores it and spawns the next smaller pair
func (e *Enemy) pop(w *core.World) {
	e.Finish()
	w.AddScore(e.Kind.Points())
	w.Events.Emit(core.Event{Type: core.EvtEnemyPopped, Frame: w.TickCount, Payload: e.Kind})
	if e.Kind+1 >= kindMax {
		return
	}
	next := e.Kind + 1
	cx, cy := e.Rect.Center()
	d := next.Diameter()
	for _, heading := range []int{-1, 1} {
		child := AddEnemy(w, cx-d/2+float64(heading)*d/2, cy-d/2, next, heading)
		child.VY = -popHop
	}
}

func (e *Enemy) Draw(c core.Canvas) {
	cx, cy := e.Rect.Center()
	c.FillCircle(cx, cy, e.Rect.W/2, e.Color)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
