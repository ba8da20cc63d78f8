package ui

import (
	"fmt"

	"github.com/1siamBot/pang/engine/core"
)

// HUD is the heads-up display drawn over the arena
type HUD struct {
	ScreenW, ScreenH int
	WallThickness    float64

	World *core.World
	FPS   func() float64
}

func NewHUD(w *core.World, sw, sh int, wallThickness float64, fps func() float64) *HUD {
	return &HUD{
		ScreenW:       sw,
		ScreenH:       sh,
		WallThickness: wallThickness,
		World:         w,
		FPS:           fps,
	}
}

// Draw renders score, hits and the measured frame rate
func (h *HUD) Draw(cv core.Canvas) {
	y := h.WallThickness / 2
	cv.Text(fmt.Sprintf("Score: %03d", h.World.Score.Score), 100, y, core.Palette["white"])
	if h.World.Score.Hits > 0 {
		cv.Text(fmt.Sprintf("Hits: %d", h.World.Score.Hits), float64(h.ScreenW)-200, y, core.Palette["yellow"])
	}
	if h.FPS != nil {
		cv.Text(fmt.Sprintf("%.0f FPS", h.FPS()), 10, 10, core.Palette["green"])
	}
}
