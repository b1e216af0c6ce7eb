package ui

import (
	"image"
	"math"

	"minesweeper/internal/core"
)

const (
	buttonWidth   = 200
	buttonHeight  = 48
	buttonSpacing = 72
	bobAmplitude  = 6
	bobSpeed      = 2.5
)

// Button is one difficulty choice on the title screen.
type Button struct {
	Difficulty core.Difficulty
	Rect       image.Rectangle
}

// Menu lays out the registered difficulties as a column of buttons centred in
// a screen of the given size. The buttons bob vertically over time.
type Menu struct {
	w, h    int
	buttons []Button
}

// NewMenu builds a menu from the current difficulty registry.
func NewMenu(w, h int) *Menu {
	m := &Menu{w: w, h: h}
	for _, d := range core.Difficulties() {
		m.buttons = append(m.buttons, Button{Difficulty: d})
	}
	m.Layout(0)
	return m
}

// Layout positions the buttons for time t in seconds.
func (m *Menu) Layout(t float64) {
	top := m.h/2 - (len(m.buttons)*buttonSpacing)/2
	for i := range m.buttons {
		bob := int(math.Round(math.Sin(t*bobSpeed+float64(i)) * bobAmplitude))
		x := (m.w - buttonWidth) / 2
		y := top + i*buttonSpacing + bob
		m.buttons[i].Rect = image.Rect(x, y, x+buttonWidth, y+buttonHeight)
	}
}

// Buttons returns the laid out buttons.
func (m *Menu) Buttons() []Button { return m.buttons }

// HitTest returns the difficulty under (x, y).
func (m *Menu) HitTest(x, y int) (core.Difficulty, bool) {
	p := image.Pt(x, y)
	for _, b := range m.buttons {
		if p.In(b.Rect) {
			return b.Difficulty, true
		}
	}
	return core.Difficulty{}, false
}
