package mines

import (
	"fmt"
	"time"

	"minesweeper/internal/core"
	rng "minesweeper/pkg/core"

	"github.com/google/uuid"
)

// Unrevealed marks a cell whose adjacent-mine count has not been disclosed.
const Unrevealed = -1

// Cell addresses one square of the board.
type Cell struct {
	Col, Row int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Col, c.Row) }

// Board is a square Minesweeper grid together with the game state it drives.
// A Board is owned by a single game session and is not safe for concurrent use.
type Board struct {
	id   uuid.UUID
	size int

	values *core.Grid[int8]
	mines  *core.Grid[bool]
	flags  *core.Grid[bool]

	mineTotal    int
	flagCount    int
	correctFlags int
	state        State

	emitter *Emitter
}

// New builds a board of the given size with mines at the listed cells.
// Duplicate entries count once. It panics when size < 1 or a mine lies outside
// the board.
func New(size int, mines []Cell, r *rng.RNG) *Board {
	if size < 1 {
		panic(fmt.Sprintf("mines: board size must be at least 1, got %d", size))
	}
	if r == nil {
		r = rng.NewRNG(time.Now().UnixNano())
	}
	b := &Board{
		id:      uuid.New(),
		size:    size,
		values:  core.NewGrid(size, size, int8(Unrevealed)),
		mines:   core.NewGrid(size, size, false),
		flags:   core.NewGrid(size, size, false),
		emitter: NewEmitter(r, DefaultLayout()),
	}
	for _, m := range mines {
		if b.mines.At(m.Col, m.Row) {
			continue
		}
		b.mines.Set(m.Col, m.Row, true)
		b.mineTotal++
	}
	return b
}

// ID identifies this board in logs and statistics.
func (b *Board) ID() uuid.UUID { return b.id }

// Size returns the number of cells along each edge.
func (b *Board) Size() int { return b.size }

// State reports whether the game is still running and, if not, how it ended.
func (b *Board) State() State { return b.state }

// MineTotal returns the number of mines on the board.
func (b *Board) MineTotal() int { return b.mineTotal }

// FlagCount returns the number of flags currently placed.
func (b *Board) FlagCount() int { return b.flagCount }

// Value returns the adjacent-mine count of a revealed cell or Unrevealed.
func (b *Board) Value(col, row int) int { return int(b.values.At(col, row)) }

// Revealed reports whether the cell has been disclosed.
func (b *Board) Revealed(col, row int) bool { return b.values.At(col, row) != Unrevealed }

// Flag reports whether the cell carries a flag.
func (b *Board) Flag(col, row int) bool { return b.flags.At(col, row) }

// Mine reports whether the cell holds a mine. Mines stay hidden while the game
// is in progress, so it always returns false until the game is over.
func (b *Board) Mine(col, row int) bool {
	isMine := b.mines.At(col, row)
	return b.state.Over() && isMine
}

// SetLayout changes where effect descriptors are positioned.
func (b *Board) SetLayout(l Layout) { b.emitter.layout = l }

// Layout returns the current effect layout.
func (b *Board) Layout() Layout { return b.emitter.layout }

// adjacentMines counts mines among the in-bounds neighbors of c.
func (b *Board) adjacentMines(c Cell) int {
	n := 0
	for _, off := range core.Offsets {
		if off[0] == 0 && off[1] == 0 {
			continue
		}
		x, y := c.Col+off[0], c.Row+off[1]
		if b.mines.InBounds(x, y) && b.mines.At(x, y) {
			n++
		}
	}
	return n
}

// setFlag updates a flag and the counters the win check relies on.
func (b *Board) setFlag(c Cell, on bool) {
	if b.flags.At(c.Col, c.Row) == on {
		return
	}
	b.flags.Set(c.Col, c.Row, on)
	delta := 1
	if !on {
		delta = -1
	}
	b.flagCount += delta
	if b.mines.At(c.Col, c.Row) {
		b.correctFlags += delta
	}
}
