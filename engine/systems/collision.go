package systems

import (
	"github.com/1siamBot/pang/engine/core"
)

// CollisionRule pairs two categories. The hook of the A side is always
// invoked; the B side is notified too when Mutual is set.
type CollisionRule struct {
	A, B   core.Category
	Mutual bool
}

// DefaultRules is the fixed, ordered rule table checked every frame
var DefaultRules = []CollisionRule{
	{A: core.CatPlayer, B: core.CatEnemy},
	{A: core.CatPlayer, B: core.CatBlock},
	{A: core.CatPlayer, B: core.CatLadder},
	{A: core.CatWeapon, B: core.CatEnemy, Mutual: true},
	{A: core.CatWeapon, B: core.CatBlock},
	// Enemies also bounce off the arena bounds inside their own Move;
	// this rule covers interior platforms.
	{A: core.CatEnemy, B: core.CatBlock},
}

// CollisionSystem detects overlapping pairs and dispatches response hooks.
// It holds no per-category logic beyond the rule table.
type CollisionSystem struct {
	Rules []CollisionRule

	// Passes counts completed collision passes
	Passes uint64
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{Rules: DefaultRules}
}

func (s *CollisionSystem) Priority() int { return 20 }

func (s *CollisionSystem) Update(w *core.World, _ float64) {
	for _, rule := range s.Rules {
		as := w.Registry.Lookup(rule.A)
		if len(as) == 0 {
			continue
		}
		bs := w.Registry.Lookup(rule.B)
		for _, a := range as {
			for _, b := range bs {
				if !a.Bounds().Overlaps(b.Bounds()) {
					continue
				}
				a.Collide(w, b)
				if rule.Mutual {
					b.Collide(w, a)
				}
			}
		}
	}
	s.Passes++
}
