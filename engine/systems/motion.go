package systems

import (
	"github.com/1siamBot/pang/engine/core"
	"go.uber.org/zap"
)

// MotionSystem advances every entity one frame in registry order, then
// reaps the ones that finished.
type MotionSystem struct {
	Log *zap.Logger

	// Passes counts completed motion passes
	Passes uint64
}

func NewMotionSystem(log *zap.Logger) *MotionSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &MotionSystem{Log: log}
}

func (s *MotionSystem) Priority() int { return 10 }

func (s *MotionSystem) Update(w *core.World, _ float64) {
	// Entities spawned by a Move join the live sequence but first move next frame.
	for _, e := range w.Registry.Entities() {
		e.Move(w)
	}
	w.Registry.RemoveFinished(func(e core.Entity) {
		s.Log.Debug("remove entity", zap.Stringer("category", e.Category()), zap.Uint64("tick", w.TickCount))
		w.Events.Emit(core.Event{Type: core.EvtEntityRemoved, Frame: w.TickCount, Payload: e.Category()})
	})
	s.Passes++
}
