// Package term is a terminal frontend for the game built on tcell.
package term

import (
	"fmt"
	"math"
	"time"

	"minesweeper/internal/core"
	"minesweeper/internal/mines"
	"minesweeper/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// TileUnits is the size of one cell in effect coordinates. Particles move in
// the same units as the GUI so the shared physics constants look right.
const TileUnits = 16.0

const (
	boardX    = 2
	boardY    = 2
	cellWidth = 2
)

// Layout is the effect layout the terminal expects for every board size.
func Layout(int) mines.Layout { return mines.Layout{TileSize: TileUnits} }

// Runner translates terminal events into session actions and draws the
// session to a tcell screen.
type Runner struct {
	screen  tcell.Screen
	session *session.Session
	log     logrus.FieldLogger
	step    *core.FixedStep

	cursor  mines.Cell
	menu    int
	buttons tcell.ButtonMask
}

// New returns a runner drawing s onto screen at tps updates per second.
func New(screen tcell.Screen, s *session.Session, log logrus.FieldLogger, tps int) *Runner {
	return &Runner{screen: screen, session: s, log: log, step: core.NewFixedStep(tps)}
}

// Run polls events and updates until the player quits.
func (r *Runner) Run() error {
	r.screen.EnableMouse()
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go r.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(r.step.Step() / 2)
	defer ticker.Stop()
	dt := r.step.Step().Seconds()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !r.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if r.step.ShouldStep() {
				r.session.Update(dt)
				r.Draw()
			}
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev)
	case *tcell.EventMouse:
		r.handleMouse(ev)
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return true
}

func (r *Runner) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		return false
	}
	switch r.session.Screen() {
	case session.ScreenTitle:
		return r.handleTitleKey(ev)
	case session.ScreenGame:
		r.handleGameKey(ev)
	}
	return true
}

func (r *Runner) handleTitleKey(ev *tcell.EventKey) bool {
	options := core.Difficulties()
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyUp:
		r.menu = max(r.menu-1, 0)
	case tcell.KeyDown:
		r.menu = min(r.menu+1, len(options)-1)
	case tcell.KeyEnter:
		r.choose(options, r.menu)
	case tcell.KeyRune:
		if ev.Rune() >= '1' && ev.Rune() <= '9' {
			r.choose(options, int(ev.Rune()-'1'))
		}
	}
	return true
}

func (r *Runner) choose(options []core.Difficulty, i int) {
	if i < 0 || i >= len(options) {
		return
	}
	r.menu = i
	if r.session.Select(options[i]) {
		r.cursor = mines.Cell{}
	}
}

func (r *Runner) handleGameKey(ev *tcell.EventKey) {
	b := r.session.Board()
	if b == nil {
		return
	}
	move := func(dc, dr int) {
		r.cursor.Col, r.cursor.Row = session.Clamp(r.cursor.Col+dc, r.cursor.Row+dr, b.Size())
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		r.session.Back()
	case tcell.KeyUp:
		move(0, -1)
	case tcell.KeyDown:
		move(0, 1)
	case tcell.KeyLeft:
		move(-1, 0)
	case tcell.KeyRight:
		move(1, 0)
	case tcell.KeyEnter:
		r.reveal()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			move(0, -1)
		case 'j':
			move(0, 1)
		case 'h':
			move(-1, 0)
		case 'l':
			move(1, 0)
		case ' ':
			r.reveal()
		case 'f':
			r.flag()
		case 'n':
			if r.session.Continue() {
				r.cursor.Col, r.cursor.Row = session.Clamp(r.cursor.Col, r.cursor.Row, r.session.Board().Size())
			}
		}
	}
}

func (r *Runner) handleMouse(ev *tcell.EventMouse) {
	// tcell repeats the held buttons on every motion report; only act on
	// buttons that were up in the previous report.
	pressed := ev.Buttons() &^ r.buttons
	r.buttons = ev.Buttons()
	if r.session.Screen() != session.ScreenGame || r.session.Board() == nil {
		return
	}

	x, y := ev.Position()
	r.cursor = r.cellAt(x, y, r.session.Board().Size())
	switch {
	case pressed&tcell.Button1 != 0:
		r.reveal()
	case pressed&tcell.Button2 != 0:
		if r.session.Board().State().Over() {
			r.session.Continue()
			return
		}
		r.flag()
	}
}

// boardOrigin returns the screen position of the top-left cell, shifted by
// the current camera shake.
func (r *Runner) boardOrigin() (int, int) {
	off := r.session.ShakeOffset()
	return boardX + int(off.X/TileUnits*cellWidth), boardY + int(off.Y/TileUnits)
}

// cellAt maps a screen position to the clamped cell drawn there.
func (r *Runner) cellAt(x, y, size int) mines.Cell {
	ox, oy := r.boardOrigin()
	col := int(math.Floor(float64(x-ox) / cellWidth))
	col, row := session.Clamp(col, y-oy, size)
	return mines.Cell{Col: col, Row: row}
}

func (r *Runner) reveal() {
	res := r.session.Apply(session.Action{Kind: session.RevealAt, Col: r.cursor.Col, Row: r.cursor.Row})
	r.log.WithFields(logrus.Fields{"cell": r.cursor, "outcome": res.Reveal.Kind}).Debug("reveal")
}

func (r *Runner) flag() {
	res := r.session.Apply(session.Action{Kind: session.ToggleFlagAt, Col: r.cursor.Col, Row: r.cursor.Row})
	r.log.WithFields(logrus.Fields{"cell": r.cursor, "flagged": res.Flag.Flagged}).Debug("flag")
}

// Preselect highlights the named difficulty on the title menu.
func (r *Runner) Preselect(name string) {
	for i, d := range core.Difficulties() {
		if d.Name == name {
			r.menu = i
			return
		}
	}
}

// Cursor returns the highlighted cell.
func (r *Runner) Cursor() mines.Cell { return r.cursor }

func (r *Runner) String() string {
	return fmt.Sprintf("term.Runner{screen=%v cursor=%v}", r.session.Screen(), r.cursor)
}
