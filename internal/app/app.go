//go:build ebiten

package app

import (
	"image/color"

	"minesweeper/internal/core"
	"minesweeper/internal/mines"
	"minesweeper/internal/render"
	"minesweeper/internal/session"
	"minesweeper/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 100

var background = color.RGBA{R: 24, G: 24, B: 30, A: 255}

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	painter *render.BoardPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	w, h  int
	dt    float64
	clock float64
}

// New constructs a Game for s in a w x h window updated tps times a second.
func New(s *session.Session, w, h, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		session: s,
		overlay: ui.NewOverlay(w, h),
		hud:     ui.NewHUD(s, hudWidth),
		w:       w,
		h:       h,
		dt:      1 / float64(tps),
	}
}

// Update handles per-frame input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch g.session.Screen() {
	case session.ScreenTitle:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		g.updateTitle()
	case session.ScreenGame:
		g.updateGame()
	}

	g.session.Update(g.dt)
	g.clock += g.dt
	g.overlay.Update(g.clock)
	g.hud.Update()
	return nil
}

func (g *Game) updateTitle() {
	options := core.Difficulties()
	for i, k := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3} {
		if i < len(options) && inpututil.IsKeyJustPressed(k) {
			g.session.Select(options[i])
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if d, ok := g.overlay.Menu().HitTest(x, y); ok {
			g.session.Select(d)
		}
	}
}

func (g *Game) updateGame() {
	b := g.session.Board()
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.Back()
		return
	}
	if b.State().Over() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
			g.session.Continue()
		}
		return
	}

	x, y := ebiten.CursorPosition()
	l := b.Layout()
	l.Origin = l.Origin.Add(g.session.ShakeOffset())
	c := CellAt(l, b.Size(), float64(x), float64(y))
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.session.Apply(session.Action{Kind: session.RevealAt, Col: c.Col, Row: c.Row})
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.session.Apply(session.Action{Kind: session.ToggleFlagAt, Col: c.Col, Row: c.Row})
	}
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	switch g.session.Screen() {
	case session.ScreenSplash:
		g.overlay.DrawSplash(screen, g.session.Elapsed())
	case session.ScreenTitle:
		g.overlay.DrawTitle(screen)
	case session.ScreenGame:
		g.drawBoard(screen, g.session.Board())
	}
}

func (g *Game) drawBoard(screen *ebiten.Image, b *mines.Board) {
	if g.painter == nil || g.painter.Size() != b.Size() {
		g.painter = render.NewBoardPainter(b.Size())
	}
	shake := g.session.ShakeOffset()
	l := b.Layout()
	g.painter.Draw(screen, b, l.Origin.Add(shake), l.TileSize)
	render.DrawParticles(screen, g.session.Particles(), shake)
	g.hud.Draw(screen)
	g.overlay.DrawResult(screen, b.State())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
