package core

import "fmt"

// Handle identifies a registry slot. The low 32 bits are the slot index and
// the high 32 bits its generation, so a handle to a released slot goes stale.
type Handle uint64

func newHandle(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (h Handle) Index() uint32 { return uint32(h) }

// Generation returns the slot generation the handle was issued for
func (h Handle) Generation() uint32 { return uint32(h >> 32) }

type slot struct {
	ent        Entity
	generation uint32
}

// Registry is the sole owner of live entities. The live sequence holds
// handles in insertion order (which is also draw order); the index maps a
// category to the handles of that category. Neither keeps a second owning
// reference: releasing a slot is the only place an entity is dropped.
type Registry struct {
	slots    []slot
	freeList []uint32
	live     []Handle
	index    [CatMax][]Handle
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		slots:    make([]slot, 0, 64),
		freeList: make([]uint32, 0, 16),
		live:     make([]Handle, 0, 64),
	}
}

// Add stores e, appends it to the live sequence and to its category bucket
func (r *Registry) Add(e Entity) Handle {
	var idx uint32
	if n := len(r.freeList); n > 0 {
		idx = r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
	} else {
		idx = uint32(len(r.slots))
		r.slots = append(r.slots, slot{})
	}
	r.slots[idx].ent = e
	h := newHandle(idx, r.slots[idx].generation)
	r.live = append(r.live, h)
	cat := e.Category()
	r.index[cat] = append(r.index[cat], h)
	return h
}

// Get resolves a handle, reporting false for stale or unknown handles
func (r *Registry) Get(h Handle) (Entity, bool) {
	idx := h.Index()
	if int(idx) >= len(r.slots) {
		return nil, false
	}
	s := r.slots[idx]
	if s.ent == nil || s.generation != h.Generation() {
		return nil, false
	}
	return s.ent, true
}

// Len returns the number of live entities
func (r *Registry) Len() int {
	return len(r.live)
}

// Count returns the number of live entities of a category
func (r *Registry) Count(cat Category) int {
	if cat >= CatMax {
		return 0
	}
	return len(r.index[cat])
}

// Entities returns the live entities in insertion order. The result is a
// snapshot: entities added while the caller iterates are not included.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, 0, len(r.live))
	for _, h := range r.live {
		out = append(out, r.slots[h.Index()].ent)
	}
	return out
}

// Lookup returns a snapshot of the live entities of a category in insertion
// order. Unknown or empty categories yield an empty slice.
func (r *Registry) Lookup(cat Category) []Entity {
	if cat >= CatMax {
		return nil
	}
	bucket := r.index[cat]
	out := make([]Entity, 0, len(bucket))
	for _, h := range bucket {
		out = append(out, r.slots[h.Index()].ent)
	}
	return out
}

// RemoveFinished drops every Finished entity. Finished handles are collected
// first, then each one is taken out of its index bucket, reported to onRemove
// and released, and finally the live sequence is compacted keeping the
// survivors in order. It returns the number of removed entities.
func (r *Registry) RemoveFinished(onRemove func(Entity)) int {
	var finished []Handle
	for _, h := range r.live {
		if r.slots[h.Index()].ent.Lifecycle() == Finished {
			finished = append(finished, h)
		}
	}
	if len(finished) == 0 {
		return 0
	}

	for _, h := range finished {
		e := r.slots[h.Index()].ent
		r.unindex(e.Category(), h)
		if onRemove != nil {
			onRemove(e)
		}
		r.release(h)
	}

	n := 0
	for _, h := range r.live {
		if _, ok := r.Get(h); ok {
			r.live[n] = h
			n++
		}
	}
	clear(r.live[n:])
	r.live = r.live[:n]
	return len(finished)
}

// unindex removes h from its bucket by identity, keeping bucket order
func (r *Registry) unindex(cat Category, h Handle) {
	bucket := r.index[cat]
	for i, bh := range bucket {
		if bh == h {
			r.index[cat] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("registry: handle %#x missing from %s bucket", uint64(h), cat))
}

func (r *Registry) release(h Handle) {
	idx := h.Index()
	s := &r.slots[idx]
	if s.ent == nil || s.generation != h.Generation() {
		panic(fmt.Sprintf("registry: release of stale handle %#x", uint64(h)))
	}
	s.ent = nil
	s.generation++
	r.freeList = append(r.freeList, idx)
}
