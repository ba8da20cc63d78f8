package core

// Action is a logical input the game reacts to
type Action uint8

const (
	ActLeft Action = iota
	ActRight
	ActUp
	ActDown
	ActFire
	ActPause
	ActConfirm
	ActQuit
	ActMax
)

var actionNames = [ActMax]string{"left", "right", "up", "down", "fire", "pause", "confirm", "quit"}

func (a Action) String() string {
	if a < ActMax {
		return actionNames[a]
	}
	return "unknown"
}

// Controls is the input snapshot for one frame
type Controls struct {
	held    uint16
	pressed uint16

	MouseX, MouseY int
	Click          bool
}

// Held reports whether the action is down this frame
func (c Controls) Held(a Action) bool {
	return c.held&(1<<a) != 0
}

// JustPressed reports whether the action went down this frame
func (c Controls) JustPressed(a Action) bool {
	return c.pressed&(1<<a) != 0
}

// Set records the state of an action
func (c *Controls) Set(a Action, held, justPressed bool) {
	bit := uint16(1) << a
	c.held &^= bit
	c.pressed &^= bit
	if held {
		c.held |= bit
	}
	if justPressed {
		c.pressed |= bit
	}
}

// Press marks the action as pressed and held this frame
func (c *Controls) Press(a Action) {
	c.Set(a, true, true)
}
