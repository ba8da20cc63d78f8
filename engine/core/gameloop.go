package core

import (
	"errors"

	"go.uber.org/zap"
)

// GameState represents the frame driver state
type GameState uint8

const (
	StateRunning GameState = iota
	StatePaused
	StateQuit
)

func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateQuit:
		return "quit"
	}
	return "unknown"
}

// ErrQuit is returned by Update once the game has been asked to quit
var ErrQuit = errors.New("game: quit selected")

// Pause menu option labels, in display order
const (
	MenuContinue = "Continue"
	MenuBreak    = "Break"
	MenuRestart  = "Restart"
	MenuQuit     = "Quit"
)

// MenuLabels are the options offered by the pause menu
var MenuLabels = []string{MenuContinue, MenuBreak, MenuRestart, MenuQuit}

// Menu is the pause menu collaborator. It owns its own selection state and
// reports choices through the callback it was constructed with.
type Menu interface {
	Update(c Controls)
	Draw(c Canvas)
}

// Drawer draws itself onto a canvas
type Drawer interface {
	Draw(c Canvas)
}

// GameLoop drives one frame at a time: motion and collision while running,
// the menu alone while paused.
type GameLoop struct {
	World      *World
	State      GameState
	Menu       Menu
	HUD        Drawer
	FrameCount uint64

	log *zap.Logger
}

// NewGameLoop creates a running frame driver over w
func NewGameLoop(w *World, log *zap.Logger) *GameLoop {
	if log == nil {
		log = zap.NewNop()
	}
	return &GameLoop{
		World: w,
		State: StateRunning,
		log:   log,
	}
}

// Update advances one frame with the given input snapshot. It returns
// ErrQuit once the Quit state is reached.
func (gl *GameLoop) Update(c Controls) error {
	if gl.State == StateQuit {
		return ErrQuit
	}
	gl.FrameCount++

	if c.JustPressed(ActQuit) {
		gl.log.Info("exit key pressed")
		gl.State = StateQuit
		return ErrQuit
	}
	if c.JustPressed(ActPause) {
		gl.TogglePause()
	}

	if gl.State == StatePaused {
		if gl.Menu != nil {
			gl.Menu.Update(c)
		}
	} else {
		gl.World.Controls = c
		gl.World.Tick()
	}
	gl.World.Events.Dispatch()

	if gl.State == StateQuit {
		return ErrQuit
	}
	return nil
}

// TogglePause flips between Running and Paused
func (gl *GameLoop) TogglePause() {
	switch gl.State {
	case StateRunning:
		gl.setState(StatePaused)
	case StatePaused:
		gl.setState(StateRunning)
	}
}

// Paused reports whether the menu currently owns the frame
func (gl *GameLoop) Paused() bool {
	return gl.State == StatePaused
}

// OnMenu handles a pause menu selection
func (gl *GameLoop) OnMenu(label string) {
	gl.log.Info("menu selected", zap.String("label", label))
	gl.World.Events.Emit(Event{Type: EvtMenuSelected, Frame: gl.FrameCount, Payload: label})
	switch label {
	case MenuContinue:
		gl.setState(StateRunning)
	case MenuQuit:
		gl.setState(StateQuit)
	default:
		// TODO: Break and Restart have no defined behaviour yet; a restart needs a world reset path.
		gl.log.Warn("menu option not implemented", zap.String("label", label))
	}
}

// Draw draws the world in registry order, then the HUD, then the menu
// while paused
func (gl *GameLoop) Draw(c Canvas) {
	gl.World.Draw(c)
	if gl.HUD != nil {
		gl.HUD.Draw(c)
	}
	if gl.State == StatePaused && gl.Menu != nil {
		gl.Menu.Draw(c)
	}
}

func (gl *GameLoop) setState(s GameState) {
	if gl.State == s || gl.State == StateQuit {
		return
	}
	gl.log.Info("game state changed", zap.Stringer("from", gl.State), zap.Stringer("to", s))
	gl.State = s
	switch s {
	case StatePaused:
		gl.World.Events.Emit(Event{Type: EvtPaused, Frame: gl.FrameCount})
	case StateRunning:
		gl.World.Events.Emit(Event{Type: EvtResumed, Frame: gl.FrameCount})
	}
}
