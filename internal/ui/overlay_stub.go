//go:build !ebiten

package ui

import "minesweeper/internal/mines"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct {
	menu *Menu
}

// NewOverlay constructs a stub overlay that still lays out the title menu.
func NewOverlay(w, h int) *Overlay { return &Overlay{menu: NewMenu(w, h)} }

// Menu returns the title screen menu.
func (o *Overlay) Menu() *Menu { return o.menu }

// Update advances the menu layout.
func (o *Overlay) Update(t float64) { o.menu.Layout(t) }

// DrawSplash is a no-op in headless builds.
func (o *Overlay) DrawSplash(any, float64) {}

// DrawTitle is a no-op in headless builds.
func (o *Overlay) DrawTitle(any) {}

// DrawResult is a no-op in headless builds.
func (o *Overlay) DrawResult(any, mines.State) {}
