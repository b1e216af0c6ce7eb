package mines

import "minesweeper/internal/core"

// RevealKind classifies the result of a reveal.
type RevealKind uint8

const (
	// RevealNoOp means nothing changed.
	RevealNoOp RevealKind = iota
	// RevealDetonated means a mine was hit and the game is lost.
	RevealDetonated
	// RevealRevealed means one or more cells were disclosed.
	RevealRevealed
)

func (k RevealKind) String() string {
	switch k {
	case RevealNoOp:
		return "noop"
	case RevealDetonated:
		return "detonated"
	case RevealRevealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// RevealOutcome reports what a reveal did.
type RevealOutcome struct {
	Kind RevealKind
	// Cells lists the cells disclosed by this call in processing order.
	Cells   []Cell
	Effects []Effect
}

// Reveal discloses the cell at (col, row). Flagged and already revealed cells
// are left alone. Revealing a mine loses the game and detonates every mine on
// the board; revealing a cell with no adjacent mines cascades into its
// neighbors. Boards that are no longer Playing ignore reveals.
func (b *Board) Reveal(col, row int) RevealOutcome {
	target := Cell{Col: col, Row: row}
	isMine := b.mines.At(col, row)
	if b.state.Over() || b.flags.At(col, row) {
		return RevealOutcome{Kind: RevealNoOp}
	}
	if isMine {
		return b.detonate()
	}
	if b.Revealed(col, row) {
		return RevealOutcome{Kind: RevealNoOp}
	}

	out := RevealOutcome{Kind: RevealRevealed}
	stack := []Cell{target}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.Revealed(c.Col, c.Row) {
			continue
		}

		b.setFlag(c, false)
		n := b.adjacentMines(c)
		b.values.Set(c.Col, c.Row, int8(n))
		out.Cells = append(out.Cells, c)
		out.Effects = b.emitter.Burst(out.Effects, c, RevealBurst)
		if n != 0 {
			continue
		}

		// Push in reverse so neighbors pop in offset order.
		for i := len(core.Offsets) - 1; i >= 0; i-- {
			x, y := c.Col+core.Offsets[i][0], c.Row+core.Offsets[i][1]
			if b.values.InBounds(x, y) && !b.Revealed(x, y) {
				stack = append(stack, Cell{Col: x, Row: y})
			}
		}
	}
	return out
}

func (b *Board) detonate() RevealOutcome {
	b.state = Lost
	out := RevealOutcome{Kind: RevealDetonated}
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.mines.At(col, row) {
				out.Effects = b.emitter.Burst(out.Effects, Cell{Col: col, Row: row}, DetonationBurst)
			}
		}
	}
	return out
}
