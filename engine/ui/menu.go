package ui

import (
	"image/color"

	"github.com/1siamBot/pang/engine/core"
)

// MenuButton represents a clickable menu button
type MenuButton struct {
	X, Y, W, H int
	Text       string
}

func (b MenuButton) contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

func (b MenuButton) rect() core.Rect {
	return core.NewRect(float64(b.X), float64(b.Y), float64(b.W), float64(b.H))
}

var (
	menuOverlay = color.RGBA{0, 0, 0, 160}
	menuPanel   = color.RGBA{15, 15, 30, 230}
	menuBorder  = color.RGBA{0, 140, 200, 255}
	menuAccent  = color.RGBA{0, 200, 255, 255}
	menuBtnNorm = color.RGBA{25, 35, 55, 240}
	menuBtnHov  = color.RGBA{35, 55, 90, 255}
	menuBtnEdge = color.RGBA{40, 70, 120, 200}
	menuText    = color.RGBA{200, 220, 255, 255}
)

// Menu is the pause menu. It is driven by the game loop while paused and
// reports the chosen label through OnSelect.
type Menu struct {
	ScreenW, ScreenH int
	Labels           []string
	OnSelect         func(label string)

	buttons  []MenuButton
	hoverIdx int
}

func NewMenu(screenW, screenH int, labels []string, onSelect func(string)) *Menu {
	m := &Menu{
		ScreenW:  screenW,
		ScreenH:  screenH,
		Labels:   append([]string(nil), labels...),
		OnSelect: onSelect,
	}
	m.buttons = m.layout()
	return m
}

// Hovered returns the index of the highlighted button, or -1
func (m *Menu) Hovered() int {
	if len(m.buttons) == 0 {
		return -1
	}
	return m.hoverIdx
}

// Buttons returns the button layout
func (m *Menu) Buttons() []MenuButton {
	return m.buttons
}

func (m *Menu) layout() []MenuButton {
	cx := m.ScreenW / 2
	bw, bh, gap := 220, 36, 8
	total := len(m.Labels)*(bh+gap) - gap
	startY := m.ScreenH/2 - total/2 + 20
	buttons := make([]MenuButton, len(m.Labels))
	for i, name := range m.Labels {
		buttons[i] = MenuButton{
			X: cx - bw/2, Y: startY + i*(bh+gap),
			W: bw, H: bh, Text: name,
		}
	}
	return buttons
}

// Update moves the highlight from keyboard or mouse and fires OnSelect on
// confirm or click.
func (m *Menu) Update(c core.Controls) {
	n := len(m.buttons)
	if n == 0 {
		return
	}

	if c.JustPressed(core.ActUp) {
		m.hoverIdx = (m.hoverIdx - 1 + n) % n
	}
	if c.JustPressed(core.ActDown) {
		m.hoverIdx = (m.hoverIdx + 1) % n
	}

	mouseIdx := -1
	for i, b := range m.buttons {
		if b.contains(c.MouseX, c.MouseY) {
			mouseIdx = i
		}
	}
	if mouseIdx >= 0 {
		m.hoverIdx = mouseIdx
	}

	switch {
	case c.Click && mouseIdx >= 0:
		m.selectIdx(mouseIdx)
	case c.JustPressed(core.ActConfirm):
		m.selectIdx(m.hoverIdx)
	}
}

func (m *Menu) selectIdx(i int) {
	if m.OnSelect != nil {
		m.OnSelect(m.buttons[i].Text)
	}
}

// Draw renders the overlay, panel and buttons
func (m *Menu) Draw(cv core.Canvas) {
	cv.FillRect(core.NewRect(0, 0, float64(m.ScreenW), float64(m.ScreenH)), menuOverlay)

	panelW := 300.0
	panelH := float64(len(m.buttons)*44) + 80
	px := float64(m.ScreenW)/2 - panelW/2
	py := float64(m.ScreenH)/2 - panelH/2 - 20
	panel := core.NewRect(px, py, panelW, panelH)
	cv.FillRect(panel, menuPanel)
	cv.StrokeRect(panel, 2, menuBorder)

	title := "PAUSED"
	cv.Text(title, float64(m.ScreenW)/2-float64(len(title)*3), py+20, menuText)
	cv.FillRect(core.NewRect(px+20, py+38, panelW-40, 2), menuAccent)

	for i, b := range m.buttons {
		m.drawButton(cv, b, i == m.hoverIdx)
	}
}

func (m *Menu) drawButton(cv core.Canvas, b MenuButton, hovered bool) {
	clr, edge := menuBtnNorm, menuBtnEdge
	if hovered {
		clr, edge = menuBtnHov, menuAccent
	}
	cv.FillRect(b.rect(), clr)
	cv.StrokeRect(b.rect(), 1, edge)

	tx := b.X + b.W/2 - len(b.Text)*3
	ty := b.Y + b.H/2 - 6
	cv.Text(b.Text, float64(tx), float64(ty), menuText)
}
