package term

import (
	"fmt"
	"strconv"

	"minesweeper/internal/core"
	"minesweeper/internal/mines"
	"minesweeper/internal/session"

	"github.com/gdamore/tcell/v2"
)

var (
	styleBase   = tcell.StyleDefault
	styleHidden = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFlag   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMine   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleHint   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleSpark  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// numberColors indexes by adjacent mine count.
var numberColors = [...]tcell.Color{
	tcell.ColorDefault,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorPurple,
	tcell.ColorGray,
}

// Draw paints the current screen and shows it.
func (r *Runner) Draw() {
	r.screen.Clear()
	switch r.session.Screen() {
	case session.ScreenSplash:
		r.drawSplash()
	case session.ScreenTitle:
		r.drawTitle()
	case session.ScreenGame:
		r.drawGame()
	}
	r.screen.Show()
}

func (r *Runner) drawSplash() {
	w, h := r.screen.Size()
	msg := "MINESWEEPER"
	putString(r.screen, (w-len(msg))/2, h/2, styleTitle, msg)
}

func (r *Runner) drawTitle() {
	putString(r.screen, boardX, 1, styleTitle, "MINESWEEPER")
	for i, d := range core.Difficulties() {
		style := styleBase
		if i == r.menu {
			style = style.Reverse(true)
		}
		line := fmt.Sprintf("%d. %-8s %2dx%-2d", i+1, d.Name, d.Size, d.Size)
		putString(r.screen, boardX, 3+i, style, line)
	}
	_, h := r.screen.Size()
	putString(r.screen, boardX, h-1, styleHint, "up/down/enter or 1-9 to start, q to quit")
}

func (r *Runner) drawGame() {
	b := r.session.Board()
	if b == nil {
		return
	}
	ox, oy := r.boardOrigin()

	n := b.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			ch, style := cellGlyph(b, col, row)
			if r.cursor.Col == col && r.cursor.Row == row {
				style = style.Reverse(true)
			}
			r.screen.SetContent(ox+col*cellWidth, oy+row, ch, nil, style)
		}
	}

	w, h := r.screen.Size()
	for _, p := range r.session.Particles() {
		x := ox + int(p.Position.X/TileUnits*cellWidth)
		y := oy + int(p.Position.Y/TileUnits)
		if x >= 0 && y >= 0 && x < w && y < h {
			r.screen.SetContent(x, y, '.', nil, styleSpark)
		}
	}

	status := r.status(b)
	putString(r.screen, boardX, 0, styleHint, status)
	switch b.State() {
	case mines.Won:
		putString(r.screen, boardX, boardY+n+1, styleTitle, "You win! n: continue")
	case mines.Lost:
		putString(r.screen, boardX, boardY+n+1, styleMine, "Game over! n: new board")
	default:
		putString(r.screen, boardX, boardY+n+1, styleHint, "space reveal, f flag, esc menu")
	}
}

func (r *Runner) status(b *mines.Board) string {
	snap := r.session.Parameters()
	s := fmt.Sprintf("%s  mines %d  flags %d", r.session.Difficulty().Name, b.MineTotal(), b.FlagCount())
	if p, ok := snap.Lookup("won"); ok {
		s += "  won " + p.Value
	}
	if p, ok := snap.Lookup("lost"); ok {
		s += "  lost " + p.Value
	}
	return s
}

func cellGlyph(b *mines.Board, col, row int) (rune, tcell.Style) {
	switch {
	case b.Mine(col, row):
		return '*', styleMine
	case b.Flag(col, row):
		return 'F', styleFlag
	case !b.Revealed(col, row):
		return '#', styleHidden
	}
	v := b.Value(col, row)
	if v == 0 {
		return ' ', styleBase
	}
	return rune(strconv.Itoa(v)[0]), styleBase.Foreground(numberColors[v]).Bold(true)
}

func putString(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, ch := range str {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}
