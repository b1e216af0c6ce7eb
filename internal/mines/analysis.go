package mines

import (
	"minesweeper/internal/core"

	"github.com/zyedidia/generic/mapset"
)

// Analysis summarizes the layout of a board independent of play.
type Analysis struct {
	Size  int
	Mines int
	// ZeroCells counts safe cells with no adjacent mines.
	ZeroCells int
	// Openings counts the connected regions of zero cells; one click on any of
	// them cascades through the whole region.
	Openings int
	// LargestOpening is the number of cells a single cascade can disclose at
	// most: the biggest zero region plus its numbered border.
	LargestOpening int
	// BBBV is the minimum number of reveals needed to clear the board.
	BBBV int
	// CentreMine is true when the centre cell holds a mine.
	CentreMine bool
}

// Analyze computes layout statistics for b. The board is not modified.
func Analyze(b *Board) Analysis {
	n := b.size
	a := Analysis{Size: n, Mines: b.mineTotal, CentreMine: b.mines.At(n/2, n/2)}

	counts := core.NewGrid(n, n, -1)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if b.mines.At(col, row) {
				continue
			}
			c := b.adjacentMines(Cell{Col: col, Row: row})
			counts.Set(col, row, c)
			if c == 0 {
				a.ZeroCells++
			}
		}
	}

	covered := core.NewGrid(n, n, false)
	seen := core.NewGrid(n, n, false)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if counts.At(col, row) != 0 || seen.At(col, row) {
				continue
			}
			a.Openings++
			if size := floodOpening(counts, seen, covered, Cell{Col: col, Row: row}); size > a.LargestOpening {
				a.LargestOpening = size
			}
		}
	}

	a.BBBV = a.Openings
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if counts.At(col, row) > 0 && !covered.At(col, row) {
				a.BBBV++
			}
		}
	}
	return a
}

// floodOpening walks the zero region containing start, marking its cells as
// seen and every cell it discloses as covered. It returns the number of cells
// one reveal inside the region discloses.
func floodOpening(counts *core.Grid[int], seen, covered *core.Grid[bool], start Cell) int {
	disclosed := mapset.New[Cell]()
	stack := []Cell{start}
	seen.Set(start.Col, start.Row, true)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, off := range core.Offsets {
			x, y := c.Col+off[0], c.Row+off[1]
			if !counts.InBounds(x, y) {
				continue
			}
			disclosed.Put(Cell{Col: x, Row: y})
			covered.Set(x, y, true)
			if counts.At(x, y) == 0 && !seen.At(x, y) {
				seen.Set(x, y, true)
				stack = append(stack, Cell{Col: x, Row: y})
			}
		}
	}
	return disclosed.Size()
}
