package mines

import (
	"fmt"
	"math"
	"time"

	"minesweeper/internal/core"
	rng "minesweeper/pkg/core"

	"github.com/zyedidia/generic/mapset"
)

// Density is the fraction of cells that hold a mine.
const Density = 0.182

// MineCount returns the number of mines placed on a size x size board.
func MineCount(size int) int {
	return int(math.Round(float64(size) * float64(size) * Density))
}

// Generate returns a fresh board with MineCount(size) mines placed uniformly at
// random. Positions are drawn independently and redrawn on collision, so the
// first click is not guaranteed to be safe.
func Generate(size int, r *rng.RNG) *Board {
	if size < 1 {
		panic(fmt.Sprintf("mines: board size must be at least 1, got %d", size))
	}
	if r == nil {
		r = rng.NewRNG(time.Now().UnixNano())
	}
	target := MineCount(size)
	taken := mapset.New[Cell]()
	placed := make([]Cell, 0, target)
	for len(placed) < target {
		c := Cell{Col: r.IntN(size), Row: r.IntN(size)}
		if taken.Has(c) {
			continue
		}
		taken.Put(c)
		placed = append(placed, c)
	}
	return New(size, placed, r)
}

func init() {
	core.Register(core.Difficulty{Name: "easy", Size: 8})
	core.Register(core.Difficulty{Name: "medium", Size: 16})
	core.Register(core.Difficulty{Name: "hard", Size: 24})
}
