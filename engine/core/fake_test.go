package core

import "image/color"

// fakeEntity records hook invocations
type fakeEntity struct {
	Body
	moves    int
	collided []Entity
	onMove   func(f *fakeEntity, w *World)
	onDraw   func()
}

func newFake(cat Category, x, y, w, h float64) *fakeEntity {
	return &fakeEntity{Body: NewBody(cat, Rect{X: x, Y: y, W: w, H: h})}
}

func (f *fakeEntity) Move(w *World) {
	f.moves++
	if f.onMove != nil {
		f.onMove(f, w)
	}
}

func (f *fakeEntity) Collide(_ *World, other Entity) {
	f.collided = append(f.collided, other)
}

func (f *fakeEntity) Draw(c Canvas) {
	if f.onDraw != nil {
		f.onDraw()
	}
	c.FillRect(f.Rect, color.Black)
}

// checkInvariants verifies every live entity is in exactly one bucket, the
// one matching its category, and exactly once in the live sequence.
func checkInvariants(r *Registry) string {
	seen := make(map[Handle]int)
	for _, h := range r.live {
		seen[h]++
		if seen[h] > 1 {
			return "entity listed twice in live sequence"
		}
		if _, ok := r.Get(h); !ok {
			return "stale handle in live sequence"
		}
	}
	inBucket := make(map[Handle]int)
	for cat := Category(0); cat < CatMax; cat++ {
		for _, h := range r.index[cat] {
			e, ok := r.Get(h)
			if !ok {
				return "stale handle in index"
			}
			if e.Category() != cat {
				return "entity indexed under wrong category"
			}
			inBucket[h]++
		}
	}
	if len(inBucket) != len(seen) {
		return "index and live sequence disagree on membership"
	}
	for h, n := range inBucket {
		if n != 1 || seen[h] != 1 {
			return "entity not in exactly one bucket"
		}
	}
	return ""
}

type nopCanvas struct{ rects int }

func (c *nopCanvas) FillRect(Rect, color.Color)                        { c.rects++ }
func (c *nopCanvas) StrokeRect(Rect, float32, color.Color)             {}
func (c *nopCanvas) FillCircle(float64, float64, float64, color.Color) {}
func (c *nopCanvas) Text(string, float64, float64, color.Color)        {}
