package core

// Category is the closed classification of an entity. It selects the
// collision rules an entity takes part in and never changes after creation.
type Category uint8

const (
	CatPlayer Category = iota
	CatEnemy
	CatWeapon
	CatBlock
	CatLadder
	CatMax
)

var categoryNames = [CatMax]string{"player", "enemy", "weapon", "block", "ladder"}

func (c Category) String() string {
	if c < CatMax {
		return categoryNames[c]
	}
	return "unknown"
}

// Lifecycle is the entity state observed by the motion pass sweep
type Lifecycle uint8

const (
	Active Lifecycle = iota
	Finished
)

func (l Lifecycle) String() string {
	if l == Finished {
		return "finished"
	}
	return "active"
}

// Entity is anything placed in the world. Move advances it one frame and
// Collide is the response hook invoked when it overlaps other.
type Entity interface {
	Category() Category
	Bounds() Rect
	Lifecycle() Lifecycle
	Move(w *World)
	Collide(w *World, other Entity)
	Draw(c Canvas)
}

// Body holds the state every entity kind shares. Kinds embed it by value.
type Body struct {
	Rect   Rect
	VX, VY float64

	cat  Category
	life Lifecycle
}

func NewBody(cat Category, r Rect) Body {
	return Body{Rect: NewRect(r.X, r.Y, r.W, r.H), cat: cat}
}

func (b *Body) Category() Category   { return b.cat }
func (b *Body) Bounds() Rect         { return b.Rect }
func (b *Body) Lifecycle() Lifecycle { return b.life }

// Finish moves the entity to Finished; it is reaped by the next motion pass
func (b *Body) Finish() { b.life = Finished }

func (b *Body) Finished() bool { return b.life == Finished }
