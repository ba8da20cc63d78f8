package input

import (
	"errors"
	"fmt"

	"github.com/1siamBot/pang/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings maps each action to the keys that trigger it
type Bindings [core.ActMax][]ebiten.Key

// ParseBindings resolves ebiten key names ("ArrowLeft", "Space", "F10", ...)
// keyed by action name. Actions missing from names stay unbound.
func ParseBindings(names map[string][]string) (Bindings, error) {
	var b Bindings
	var errs []error
	for a := core.Action(0); a < core.ActMax; a++ {
		for _, name := range names[a.String()] {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				errs = append(errs, fmt.Errorf("input: %s: unknown key %q", a, name))
				continue
			}
			b[a] = append(b[a], k)
		}
	}
	return b, errors.Join(errs...)
}

// InputState polls keyboard and mouse once per frame
type InputState struct {
	Bindings Bindings

	MouseX, MouseY  int
	LeftPressed     bool
	LeftJustPressed bool
}

func NewInputState(b Bindings) *InputState {
	return &InputState{Bindings: b}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Controls returns the snapshot for the current frame
func (s *InputState) Controls() core.Controls {
	c := core.Controls{
		MouseX: s.MouseX,
		MouseY: s.MouseY,
		Click:  s.LeftJustPressed,
	}
	for a := core.Action(0); a < core.ActMax; a++ {
		held, pressed := false, false
		for _, k := range s.Bindings[a] {
			held = held || ebiten.IsKeyPressed(k)
			pressed = pressed || inpututil.IsKeyJustPressed(k)
		}
		c.Set(a, held, pressed)
	}
	return c
}
