package core

// DefaultTickRate is the frame rate the game targets
const DefaultTickRate = 60.0

// System processes the world each tick
type System interface {
	Update(w *World, dt float64)
	Priority() int
}

// World is the game-wide context handed to every system and entity hook.
// Entities may spawn other entities and add score; only the frame driver
// writes Controls; rendering only reads.
type World struct {
	Registry *Registry
	Score    Scoreboard
	Controls Controls
	Events   *EventBus

	// Bounds is the playable area inside the boundary walls
	Bounds    Rect
	TickCount uint64
	TickRate  float64

	systems []System
}

// NewWorld creates an empty world
func NewWorld(tickRate float64) *World {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &World{
		Registry: NewRegistry(),
		Events:   NewEventBus(),
		TickRate: tickRate,
	}
}

// Spawn attaches an entity to the world
func (w *World) Spawn(e Entity) Handle {
	h := w.Registry.Add(e)
	w.Events.Emit(Event{Type: EvtEntitySpawned, Frame: w.TickCount, Payload: e.Category()})
	return h
}

// AddScore adds points to the running score
func (w *World) AddScore(points int) {
	before := w.Score.Score
	w.Score.AddScore(points)
	if w.Score.Score != before {
		w.Events.Emit(Event{Type: EvtScoreChanged, Frame: w.TickCount, Payload: w.Score.Score})
	}
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick runs all systems once in priority order
func (w *World) Tick() {
	dt := 1.0 / w.TickRate
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	w.TickCount++
}

// Draw draws every live entity in insertion order
func (w *World) Draw(c Canvas) {
	for _, e := range w.Registry.Entities() {
		e.Draw(c)
	}
}

// EntityCount returns the number of alive entities
func (w *World) EntityCount() int {
	return w.Registry.Len()
}
