package entities

import (
	"fmt"

	"github.com/1siamBot/pang/engine/core"
	"github.com/1siamBot/pang/engine/maplib"
)

// AddEnemy creates a ball and attaches it to the world
func AddEnemy(w *core.World, x, y float64, kind Kind, heading int) *Enemy {
	e := NewEnemy(x, y, kind, heading)
	w.Spawn(e)
	return e
}

// AddWeapon fires a harpoon from (x, y). Only one weapon may exist at a
// time; while one is live, even if already spent, this is a no-op and
// returns nil.
func AddWeapon(w *core.World, x, y float64) *Weapon {
	if w.Registry.Count(core.CatWeapon) > 0 {
		return nil
	}
	wp := NewWeapon(x, y, core.Palette["purple"])
	w.Spawn(wp)
	w.Events.Emit(core.Event{Type: core.EvtWeaponFired, Frame: w.TickCount})
	return wp
}

// ValidateKind checks an enemy kind name for stage validation
func ValidateKind(name string) error {
	_, err := ParseKind(name)
	return err
}

// Spawn populates the world from a stage: boundary walls, platforms,
// ladders, enemies and finally the player, which is returned.
func Spawn(w *core.World, st *maplib.Stage, wallThickness float64) (*Player, error) {
	if err := st.Validate(ValidateKind); err != nil {
		return nil, fmt.Errorf("stage %q: %w", st.Name, err)
	}
	width, height := float64(st.Width), float64(st.Height)
	t := wallThickness
	if !st.Walls {
		t = 0
	}
	w.Bounds = core.NewRect(t, t, width-2*t, height-2*t)

	if st.Walls {
		black := core.Palette["black"]
		w.Spawn(NewBlock(0, 0, width, t, black))
		w.Spawn(NewBlock(0, height-t, width, t, core.Palette["gray"]))
		w.Spawn(NewBlock(0, 0, t, height, black))
		w.Spawn(NewBlock(width-t, 0, t, height, black))
	}
	for _, b := range st.Blocks {
		w.Spawn(NewBlock(b.X, b.Y, b.W, b.H, core.Palette[b.Color]))
	}
	for _, l := range st.Ladders {
		w.Spawn(NewLadder(l.X, l.Y, l.W, l.H, core.Palette[l.Color]))
	}
	for _, e := range st.Enemies {
		kind, err := ParseKind(e.Kind)
		if err != nil {
			return nil, err
		}
		AddEnemy(w, e.X, e.Y, kind, e.Heading)
	}

	y := height - t - PlayerHeight
	if st.Player.Y != nil {
		y = *st.Player.Y
	}
	p := NewPlayer(st.Player.X, y, core.Palette["black"])
	w.Spawn(p)
	return p, nil
}
