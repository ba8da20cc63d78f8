package entities

import (
	"testing"

	"github.com/1siamBot/pang/engine/core"
	"github.com/1siamBot/pang/engine/maplib"
	"github.com/1siamBot/pang/engine/systems"
)

const wall = 20.0

type arena struct {
	w         *core.World
	player    *Player
	floor     core.Entity
	motion    *systems.MotionSystem
	collision *systems.CollisionSystem
}

func newArena(t *testing.T, st *maplib.Stage) *arena {
	t.Helper()
	w := core.NewWorld(60)
	a := &arena{w: w, motion: systems.NewMotionSystem(nil), collision: systems.NewCollisionSystem()}
	w.AddSystem(a.motion)
	w.AddSystem(a.collision)
	p, err := Spawn(w, st, wall)
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	a.player = p
	if blocks := w.Registry.Lookup(core.CatBlock); len(blocks) >= 2 {
		a.floor = blocks[1]
	}
	return a
}

func boxStage() *maplib.Stage {
	return &maplib.Stage{Name: "box", Width: 800, Height: 600, Walls: true, Player: maplib.PlayerSpec{X: 400}}
}

func TestPlayerRestsOnFloor(t *testing.T) {
	a := newArena(t, boxStage())
	floor := a.floor.Bounds()
	if a.player.Bounds().Bottom() != floor.Y {
		t.Fatalf("player should start on the floor: bottom=%v floor=%v", a.player.Bounds().Bottom(), floor.Y)
	}

	a.motion.Update(a.w, 0)
	if !a.player.Bounds().Overlaps(floor) {
		t.Fatal("gravity should push the player into the floor before the collision pass")
	}
	a.collision.Update(a.w, 0)
	if !a.player.Grounded() {
		t.Fatal("player x block collision did not fire")
	}
	if got := a.player.Bounds().Bottom(); got != floor.Y {
		t.Fatalf("player not clamped to floor: bottom=%v want %v", got, floor.Y)
	}

	for i := 0; i < 30; i++ {
		a.w.Tick()
	}
	if got := a.player.Bounds().Bottom(); got != floor.Y {
		t.Fatalf("player fell through the floor: bottom=%v", got)
	}
}

func TestPlayerWalksIntoWall(t *testing.T) {
	st := boxStage()
	st.Player.X = wall + 2
	a := newArena(t, st)
	for i := 0; i < 5; i++ {
		a.w.Controls = core.Controls{}
		a.w.Controls.Set(core.ActLeft, true, i == 0)
		a.w.Tick()
	}
	if got := a.player.Bounds().X; got != wall {
		t.Fatalf("player should stop at the left wall, x=%v", got)
	}
}

func TestWeaponAndEnemyMutualPop(t *testing.T) {
	w := core.NewWorld(60)
	enemy := AddEnemy(w, 100, 100, Ball4, 1)
	wp := AddWeapon(w, 100, 200)
	wp.Rect = core.Rect{X: 100, Y: 90, W: WeaponWidth, H: 110}

	systems.NewCollisionSystem().Update(w, 0)

	if wp.Lifecycle() != core.Finished || enemy.Lifecycle() != core.Finished {
		t.Fatal("weapon and enemy should both finish")
	}
	if wp.Target() != core.Entity(enemy) {
		t.Fatal("weapon should record the enemy it hit")
	}
	if w.Score.Score != Ball4.Points() {
		t.Fatalf("expected score %d, got %d", Ball4.Points(), w.Score.Score)
	}

	systems.NewMotionSystem(nil).Update(w, 0)
	if w.EntityCount() != 0 {
		t.Fatalf("expected empty world, got %d entities", w.EntityCount())
	}
	if len(w.Registry.Lookup(core.CatEnemy)) != 0 || len(w.Registry.Lookup(core.CatWeapon)) != 0 {
		t.Fatal("popped entities left in index")
	}
}

func TestPopSplitsIntoSmallerPair(t *testing.T) {
	w := core.NewWorld(60)
	enemy := AddEnemy(w, 100, 100, Ball1, 1)
	wp := AddWeapon(w, 130, 300)
	wp.Rect = core.Rect{X: 130, Y: 150, W: WeaponWidth, H: 150}

	systems.NewCollisionSystem().Update(w, 0)
	systems.NewMotionSystem(nil).Update(w, 0)

	enemies := w.Registry.Lookup(core.CatEnemy)
	if len(enemies) != 2 {
		t.Fatalf("expected two children, got %d", len(enemies))
	}
	headings := 0
	for _, e := range enemies {
		child := e.(*Enemy)
		if child.Kind != Ball2 {
			t.Fatalf("child kind %s, want %s", child.Kind, Ball2)
		}
		headings += child.Heading
	}
	if headings != 0 {
		t.Fatal("children should head in opposite directions")
	}
	if enemy.Lifecycle() != core.Finished || w.Score.Score != Ball1.Points() {
		t.Fatalf("parent not popped: score=%d", w.Score.Score)
	}
}

func TestPoppedChildPushedOutSideways(t *testing.T) {
	red := core.Palette["red"]
	cases := []struct {
		name   string
		block  *Block
		parent core.Rect
		weapon core.Rect
		wantX  float64
	}{
		{
			name:   "platform",
			block:  NewBlock(200, 400, 150, 20, red),
			parent: core.Rect{X: 352, Y: 380},
			weapon: core.Rect{X: 380, Y: 390, W: WeaponWidth, H: 110},
			wantX:  350,
		},
		{
			name:   "wall",
			block:  NewBlock(0, 0, wall, 600, red),
			parent: core.Rect{X: wall, Y: 300},
			weapon: core.Rect{X: 40, Y: 310, W: WeaponWidth, H: 200},
			wantX:  wall,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := core.NewWorld(60)
			w.Spawn(tc.block)
			parent := AddEnemy(w, tc.parent.X, tc.parent.Y, Ball1, -1)
			wp := AddWeapon(w, tc.weapon.X, tc.weapon.Bottom())
			wp.Rect = tc.weapon

			systems.NewCollisionSystem().Update(w, 0)

			if parent.Lifecycle() != core.Finished {
				t.Fatal("parent should pop")
			}
			var left *Enemy
			for _, e := range w.Registry.Lookup(core.CatEnemy) {
				if c := e.(*Enemy); c != parent && c.Rect.X < parent.Rect.X+10 {
					left = c
				}
			}
			if left == nil {
				t.Fatal("left child not spawned")
			}
			_, cy := parent.Rect.Center()
			wantY := cy - Ball2.Diameter()/2
			if left.Rect.X != tc.wantX || left.Rect.Y != wantY {
				t.Fatalf("child rect %+v, want x=%v y=%v", left.Rect, tc.wantX, wantY)
			}
			if left.Heading != 1 || left.VY != -popHop {
				t.Fatalf("child heading=%d vy=%v, want heading 1 vy %v", left.Heading, left.VY, -popHop)
			}
			if left.Rect.Overlaps(tc.block.Rect) {
				t.Fatal("child still overlaps the block")
			}
		})
	}
}

func TestWeaponClaimsOnlyOneEnemy(t *testing.T) {
	w := core.NewWorld(60)
	first := AddEnemy(w, 100, 100, Ball4, 1)
	second := AddEnemy(w, 100, 150, Ball4, 1)
	wp := AddWeapon(w, 100, 300)
	wp.Rect = core.Rect{X: 100, Y: 90, W: WeaponWidth, H: 210}

	systems.NewCollisionSystem().Update(w, 0)

	if first.Lifecycle() != core.Finished {
		t.Fatal("first enemy should pop")
	}
	if second.Lifecycle() != core.Active {
		t.Fatal("a spent harpoon must not pop a second enemy")
	}
}

func TestAddWeaponSingleInstance(t *testing.T) {
	w := core.NewWorld(60)
	if AddWeapon(w, 0, 100) == nil {
		t.Fatal("first weapon should spawn")
	}
	size := w.EntityCount()
	if AddWeapon(w, 50, 100) != nil {
		t.Fatal("second weapon should be a no-op")
	}
	if w.EntityCount() != size || w.Registry.Count(core.CatWeapon) != 1 {
		t.Fatal("registry changed on rejected weapon")
	}

	wp := w.Registry.Lookup(core.CatWeapon)[0].(*Weapon)
	wp.Finish()
	if AddWeapon(w, 50, 100) != nil {
		t.Fatal("a spent but unreaped weapon still blocks firing")
	}
	w.Registry.RemoveFinished(nil)
	if AddWeapon(w, 50, 100) == nil {
		t.Fatal("firing should work again after the sweep")
	}
}

func TestPlayerFiresWeapon(t *testing.T) {
	a := newArena(t, boxStage())
	a.w.Controls.Press(core.ActFire)
	a.w.Tick()
	weapons := a.w.Registry.Lookup(core.CatWeapon)
	if len(weapons) != 1 {
		t.Fatalf("expected one weapon, got %d", len(weapons))
	}
	wp := weapons[0].(*Weapon)
	pcx, _ := a.player.Bounds().Center()
	wcx, _ := wp.Bounds().Center()
	if pcx != wcx {
		t.Fatalf("weapon should be centred on the player: %v vs %v", wcx, pcx)
	}

	// holding fire does not spawn a second harpoon
	a.w.Controls = core.Controls{}
	a.w.Controls.Set(core.ActFire, true, false)
	a.w.Tick()
	if a.w.Registry.Count(core.CatWeapon) != 1 {
		t.Fatal("only one weapon may exist")
	}
}

func TestWeaponStopsAtCeiling(t *testing.T) {
	a := newArena(t, boxStage())
	AddWeapon(a.w, 400, 580)
	for i := 0; i < 100 && a.w.Registry.Count(core.CatWeapon) > 0; i++ {
		a.w.Tick()
	}
	if a.w.Registry.Count(core.CatWeapon) != 0 {
		t.Fatal("weapon should finish at the top of the arena and be reaped")
	}
}

func TestWeaponIgnoresBlockItStandsOn(t *testing.T) {
	w := core.NewWorld(60)
	wp := NewWeapon(100, 400, core.Palette["purple"])
	wp.Rect = core.Rect{X: 100, Y: 380, W: WeaponWidth, H: 20}
	wp.Collide(w, NewBlock(50, 400, 150, 20, core.Palette["red"]))
	if wp.Finished() {
		t.Fatal("block below the base should not stop the harpoon")
	}
	wp.Collide(w, NewBlock(50, 370, 150, 20, core.Palette["red"]))
	if !wp.Finished() {
		t.Fatal("block above the base should stop the harpoon")
	}
}

func TestPlayerClimbsLadder(t *testing.T) {
	st := boxStage()
	st.Ladders = []maplib.RectSpec{{X: 400, Y: 300, W: 30, H: 280, Color: "orange"}}
	a := newArena(t, st)

	a.w.Tick() // collision pass notices the ladder
	a.w.Controls.Set(core.ActUp, true, true)
	a.w.Tick()
	if !a.player.Climbing() {
		t.Fatal("player should be climbing")
	}
	if got := a.player.Bounds().Bottom(); got >= 580 {
		t.Fatalf("player should have moved up, bottom=%v", got)
	}

	// releasing the key keeps the player on the ladder
	before := a.player.Bounds().Y
	a.w.Controls = core.Controls{}
	a.w.Tick()
	if a.player.Bounds().Y != before {
		t.Fatalf("player should hang on the ladder: y=%v want %v", a.player.Bounds().Y, before)
	}
}

func TestPlayerHitByEnemy(t *testing.T) {
	w := core.NewWorld(60)
	p := NewPlayer(100, 100, core.Palette["black"])
	w.Spawn(p)
	e := AddEnemy(w, 110, 110, Ball3, 1)

	p.Collide(w, e)
	p.Collide(w, e)
	if w.Score.Hits != 1 {
		t.Fatalf("invulnerability should absorb the second contact, hits=%d", w.Score.Hits)
	}
	if !p.Invulnerable() {
		t.Fatal("player should be invulnerable after a hit")
	}
	if w.Score.Score != 0 {
		t.Fatal("being hit never changes the score")
	}
	for i := 0; i < invulFrames; i++ {
		p.Move(w)
	}
	p.Collide(w, e)
	if w.Score.Hits != 2 {
		t.Fatalf("expected second hit after invulnerability, hits=%d", w.Score.Hits)
	}
}

func TestEnemyBouncesInsideArena(t *testing.T) {
	w := core.NewWorld(60)
	w.Bounds = core.Rect{X: 20, Y: 20, W: 760, H: 560}
	e := AddEnemy(w, 700, 580-Ball2.Diameter()-0.1, Ball2, 1)
	e.VY = 5
	e.Move(w)
	if e.VY >= 0 {
		t.Fatalf("ball should bounce off the floor, vy=%v", e.VY)
	}
	if e.Bounds().Bottom() > 580 {
		t.Fatal("ball left the arena")
	}

	e.Rect.X = 780 - e.Rect.W - 1
	e.Move(w)
	if e.Heading != -1 || e.Bounds().Right() > 780 {
		t.Fatalf("ball should turn at the right wall, heading=%d", e.Heading)
	}
}

func TestEnemyBouncesOnPlatform(t *testing.T) {
	w := core.NewWorld(60)
	platform := NewBlock(0, 300, 400, 20, core.Palette["red"])
	e := NewEnemy(100, 300-Ball3.Diameter()-1, Ball3, 1)
	e.VY = 3
	e.Move(w)
	e.Collide(w, platform)
	if e.Bounds().Bottom() != 300 || e.VY >= 0 {
		t.Fatalf("ball should bounce on the platform: bottom=%v vy=%v", e.Bounds().Bottom(), e.VY)
	}
}

func TestSpawnDefaultStage(t *testing.T) {
	st, err := maplib.DefaultStage()
	if err != nil {
		t.Fatal(err)
	}
	a := newArena(t, st)
	counts := map[core.Category]int{
		core.CatPlayer: 1,
		core.CatBlock:  7,
		core.CatLadder: 1,
		core.CatEnemy:  1,
		core.CatWeapon: 0,
	}
	for cat, want := range counts {
		if got := a.w.Registry.Count(cat); got != want {
			t.Errorf("%s: got %d want %d", cat, got, want)
		}
	}
	if a.w.Bounds != core.NewRect(wall, wall, 800-2*wall, 600-2*wall) {
		t.Fatalf("unexpected bounds %+v", a.w.Bounds)
	}
	// the player is added last and therefore drawn on top
	all := a.w.Registry.Entities()
	if all[len(all)-1] != core.Entity(a.player) {
		t.Fatal("player should be the last entity")
	}
}

func TestSpawnRejectsInvalidStage(t *testing.T) {
	st := boxStage()
	st.Enemies = []maplib.EnemySpec{{Kind: "cube", Heading: 1}}
	if _, err := Spawn(core.NewWorld(60), st, wall); err == nil {
		t.Fatal("expected error for unknown enemy kind")
	}
}

func TestParseKind(t *testing.T) {
	for k := Ball1; k < kindMax; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("BALL2"); err != nil {
		t.Fatal("kind names are case-insensitive")
	}
}

func TestClimbingDownStopsAtFloor(t *testing.T) {
	st := boxStage()
	st.Ladders = []maplib.RectSpec{{X: 400, Y: 300, W: 30, H: 280, Color: "orange"}}
	a := newArena(t, st)
	a.w.Tick()
	for i := 0; i < 5; i++ {
		a.w.Controls = core.Controls{}
		a.w.Controls.Set(core.ActDown, true, i == 0)
		a.w.Tick()
	}
	if got := a.player.Bounds().Bottom(); got != 580 {
		t.Fatalf("player should stand on the floor at the ladder foot, bottom=%v", got)
	}
}

func TestClimbingThroughPlatform(t *testing.T) {
	st := boxStage()
	st.Blocks = []maplib.RectSpec{{X: 300, Y: 400, W: 150, H: 20, Color: "red"}}
	st.Ladders = []maplib.RectSpec{{X: 400, Y: 390, W: 30, H: 190, Color: "orange"}}
	a := newArena(t, st)
	a.w.Tick()
	a.w.Controls.Set(core.ActUp, true, true)
	for i := 0; i < 60; i++ {
		a.w.Tick()
	}
	if got := a.player.Bounds().Bottom(); got > 400 {
		t.Fatalf("player should have climbed past the platform, bottom=%v", got)
	}
}
