//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"minesweeper/internal/mines"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	bannerBG    = color.RGBA{R: 10, G: 10, B: 14, A: 200}
	titleColor  = color.RGBA{R: 120, G: 220, B: 240, A: 255}
	buttonBG    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonFG    = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	winColor    = color.RGBA{R: 120, G: 230, B: 120, A: 255}
	loseColor   = color.RGBA{R: 240, G: 90, B: 80, A: 255}
	bannerScale = 3.0
)

// Overlay draws the non-board screens and banners.
type Overlay struct {
	w, h int
	menu *Menu
}

// NewOverlay constructs an overlay for a w x h window.
func NewOverlay(w, h int) *Overlay {
	return &Overlay{w: w, h: h, menu: NewMenu(w, h)}
}

// Menu returns the title screen menu for hit testing.
func (o *Overlay) Menu() *Menu { return o.menu }

// Update advances the title screen animation to time t in seconds.
func (o *Overlay) Update(t float64) { o.menu.Layout(t) }

// DrawSplash paints the splash screen, fading in over elapsed seconds.
func (o *Overlay) DrawSplash(screen *ebiten.Image, elapsed float64) {
	a := uint8(255 * math.Min(elapsed, 1))
	c := color.NRGBA{R: titleColor.R, G: titleColor.G, B: titleColor.B, A: a}
	o.drawCentered(screen, "MINESWEEPER", o.h/2, bannerScale, c)
}

// DrawTitle paints the difficulty buttons.
func (o *Overlay) DrawTitle(screen *ebiten.Image) {
	o.drawCentered(screen, "MINESWEEPER", o.h/6, bannerScale, titleColor)
	face := basicfont.Face7x13
	for _, b := range o.menu.Buttons() {
		r := b.Rect
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), buttonBG, false)
		label := b.Difficulty.Name
		bounds := text.BoundString(face, label)
		x := r.Min.X + (r.Dx()-bounds.Dx())/2
		y := r.Min.Y + (r.Dy()+bounds.Dy())/2
		text.Draw(screen, label, face, x, y, buttonFG)
	}
}

// DrawResult paints the win or loss banner for a finished board.
func (o *Overlay) DrawResult(screen *ebiten.Image, state mines.State) {
	if !state.Over() {
		return
	}
	msg, c := "Game Over!", loseColor
	if state.Won() {
		msg, c = "You Win!", winColor
	}
	top := float32(o.h/2 - 40)
	vector.DrawFilledRect(screen, 0, top, float32(o.w), 80, bannerBG, false)
	o.drawCentered(screen, msg, o.h/2, bannerScale, c)
	o.drawCentered(screen, "right click to continue", o.h/2+30, 1, buttonFG)
}

func (o *Overlay) drawCentered(screen *ebiten.Image, msg string, y int, scale float64, c color.Color) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, msg)
	img := ebiten.NewImage(bounds.Dx()+2, bounds.Dy()+2)
	defer img.Dispose()
	text.Draw(img, msg, face, -bounds.Min.X+1, -bounds.Min.Y+1, c)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(o.w)/2-float64(bounds.Dx())*scale/2, float64(y)-float64(bounds.Dy())*scale/2)
	screen.DrawImage(img, op)
}
