package mines

import (
	"math"
	"slices"
	"testing"

	rng "minesweeper/pkg/core"
)

func countMines(b *Board) int {
	n := 0
	for _, m := range b.mines.Cells() {
		if m {
			n++
		}
	}
	return n
}

// scanWin is the reference win check: flags must equal mines pointwise.
func scanWin(b *Board) bool {
	flags, mines := b.flags.Cells(), b.mines.Cells()
	for i := range flags {
		if flags[i] != mines[i] {
			return false
		}
	}
	return true
}

func TestMineCount(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 8: 12, 16: 47, 24: 105}
	for size, want := range cases {
		if got := MineCount(size); got != want {
			t.Errorf("MineCount(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestGeneratePlacesExactMineCount(t *testing.T) {
	for size := 1; size <= 24; size++ {
		for seed := int64(0); seed < 5; seed++ {
			b := Generate(size, rng.NewRNG(seed))
			if got, want := countMines(b), MineCount(size); got != want {
				t.Fatalf("size %d seed %d: %d mines, want %d", size, seed, got, want)
			}
			if b.MineTotal() != MineCount(size) {
				t.Fatalf("MineTotal %d disagrees with placed mines", b.MineTotal())
			}
			for _, v := range b.values.Cells() {
				if v != Unrevealed {
					t.Fatalf("fresh board has revealed cell (value %d)", v)
				}
			}
			if b.FlagCount() != 0 || b.State() != Playing {
				t.Fatalf("fresh board flags=%d state=%v", b.FlagCount(), b.State())
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(16, rng.NewRNG(99))
	b := Generate(16, rng.NewRNG(99))
	if !slices.Equal(a.mines.Cells(), b.mines.Cells()) {
		t.Fatal("same seed produced different mine layouts")
	}
	c := Generate(16, rng.NewRNG(100))
	if slices.Equal(a.mines.Cells(), c.mines.Cells()) {
		t.Fatal("different seeds should produce different layouts")
	}
	if a.ID() == b.ID() {
		t.Fatal("each board should get its own id")
	}
}

func TestGenerateRejectsEmptyBoard(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for size 0")
		}
	}()
	Generate(0, rng.NewRNG(1))
}

func TestRevealIdempotent(t *testing.T) {
	b := New(4, []Cell{{3, 3}}, rng.NewRNG(1))

	first := b.Reveal(2, 2)
	if first.Kind != RevealRevealed {
		t.Fatalf("first reveal kind %v", first.Kind)
	}
	if got := b.Value(2, 2); got != 1 {
		t.Fatalf("value at (2,2) = %d, want 1", got)
	}
	if len(first.Cells) != 1 || len(first.Effects) != RevealBurst {
		t.Fatalf("numbered cell should reveal alone: cells=%d effects=%d", len(first.Cells), len(first.Effects))
	}

	before := slices.Clone(b.values.Cells())
	second := b.Reveal(2, 2)
	if second.Kind != RevealNoOp || len(second.Effects) != 0 {
		t.Fatalf("second reveal = %+v, want noop", second)
	}
	if !slices.Equal(before, b.values.Cells()) {
		t.Fatal("noop reveal changed the board")
	}
}

func TestRevealFloodFillStopsAtNumbers(t *testing.T) {
	wall := []Cell{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}}
	b := New(5, wall, rng.NewRNG(1))

	out := b.Reveal(0, 0)
	if out.Kind != RevealRevealed {
		t.Fatalf("reveal kind %v", out.Kind)
	}
	if len(out.Cells) != 10 {
		t.Fatalf("revealed %d cells, want 10", len(out.Cells))
	}
	if len(out.Effects) != 10*RevealBurst {
		t.Fatalf("emitted %d effects, want %d", len(out.Effects), 10*RevealBurst)
	}

	wantCol1 := []int{2, 3, 3, 3, 2}
	for row := 0; row < 5; row++ {
		if got := b.Value(0, row); got != 0 {
			t.Fatalf("(0,%d) = %d, want 0", row, got)
		}
		if got := b.Value(1, row); got != wantCol1[row] {
			t.Fatalf("(1,%d) = %d, want %d", row, got, wantCol1[row])
		}
		for col := 2; col < 5; col++ {
			if b.Revealed(col, row) {
				t.Fatalf("(%d,%d) revealed outside the closure", col, row)
			}
		}
	}
}

func TestRevealFloodFillClosureMatchesReference(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b := Generate(16, rng.NewRNG(seed))
		start, ok := firstZeroCell(b)
		if !ok {
			continue
		}
		want := referenceClosure(b, start)

		b.Reveal(start.Col, start.Row)
		for row := 0; row < 16; row++ {
			for col := 0; col < 16; col++ {
				c := Cell{Col: col, Row: row}
				if b.Revealed(col, row) != want[c] {
					t.Fatalf("seed %d: cell %v revealed=%v, closure says %v", seed, c, b.Revealed(col, row), want[c])
				}
			}
		}
	}
}

func firstZeroCell(b *Board) (Cell, bool) {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			c := Cell{Col: col, Row: row}
			if !b.mines.At(col, row) && b.adjacentMines(c) == 0 {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// referenceClosure is a breadth-first flood over zero cells.
func referenceClosure(b *Board, start Cell) map[Cell]bool {
	out := map[Cell]bool{start: true}
	queue := []Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if b.adjacentMines(c) != 0 {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				n := Cell{Col: c.Col + dx, Row: c.Row + dy}
				if !b.mines.InBounds(n.Col, n.Row) || out[n] {
					continue
				}
				out[n] = true
				queue = append(queue, n)
			}
		}
	}
	return out
}

func TestRevealSingleCellBoard(t *testing.T) {
	b := New(1, nil, rng.NewRNG(1))
	out := b.Reveal(0, 0)
	if out.Kind != RevealRevealed || b.Value(0, 0) != 0 || len(out.Cells) != 1 {
		t.Fatalf("1x1 reveal = %+v value=%d", out, b.Value(0, 0))
	}
}

func TestCornerNeighborCount(t *testing.T) {
	for _, size := range []int{3, 8, 24} {
		b := New(size, []Cell{{1, 0}, {1, 1}}, rng.NewRNG(1))
		b.Reveal(0, 0)
		if got := b.Value(0, 0); got != 2 {
			t.Fatalf("size %d: corner value %d, want 2", size, got)
		}
	}
}

func TestFlaggedCellIsProtected(t *testing.T) {
	b := New(3, []Cell{{2, 2}, {0, 2}}, rng.NewRNG(1))
	if out := b.ToggleFlag(2, 2); out.Kind != FlagToggled || !out.Flagged || out.Won {
		t.Fatalf("flag toggle = %+v", out)
	}
	if out := b.Reveal(2, 2); out.Kind != RevealNoOp {
		t.Fatalf("reveal of flagged mine = %v, want noop", out.Kind)
	}
	if b.State() != Playing {
		t.Fatalf("state %v after protected reveal", b.State())
	}
}

func TestFlagExclusivity(t *testing.T) {
	b := New(5, []Cell{{4, 4}}, rng.NewRNG(1))
	b.ToggleFlag(1, 1)
	if !b.Flag(1, 1) || b.FlagCount() != 1 {
		t.Fatal("flag not placed")
	}

	b.Reveal(0, 0)
	if !b.Revealed(1, 1) {
		t.Fatal("flood fill should disclose the flagged cell")
	}
	if b.Flag(1, 1) || b.FlagCount() != 0 {
		t.Fatal("revealed cell kept its flag")
	}
	if out := b.ToggleFlag(1, 1); out.Kind != FlagNoOp {
		t.Fatalf("flagging a revealed cell = %v, want noop", out.Kind)
	}
}

func TestWinRequiresExactFlags(t *testing.T) {
	b := New(2, []Cell{{0, 0}, {1, 1}}, rng.NewRNG(1))

	out := b.ToggleFlag(0, 0)
	if out.Won || len(out.Effects) != FlagBurst {
		t.Fatalf("one of two mines flagged: %+v", out)
	}
	out = b.ToggleFlag(1, 0)
	if out.Won {
		t.Fatal("wrong flag must not win")
	}
	out = b.ToggleFlag(1, 1)
	if out.Won {
		t.Fatal("extra flag on a safe cell must not win")
	}
	out = b.ToggleFlag(1, 0)
	if !out.Won || out.Flagged {
		t.Fatalf("removing the wrong flag should win: %+v", out)
	}
	if b.State() != Won || !b.State().Won() {
		t.Fatalf("state %v, want won", b.State())
	}
	if out := b.ToggleFlag(0, 1); out.Kind != FlagNoOp {
		t.Fatal("finished board should ignore flags")
	}
}

func TestWinMatchesFullScan(t *testing.T) {
	r := rng.NewRNG(5)
	for seed := int64(0); seed < 10; seed++ {
		b := Generate(4, rng.NewRNG(seed))
		for i := 0; i < 200 && !b.State().Over(); i++ {
			col, row := r.IntN(4), r.IntN(4)
			if r.IntN(5) == 0 && !b.mines.At(col, row) {
				b.Reveal(col, row)
				continue
			}
			out := b.ToggleFlag(col, row)
			if out.Kind == FlagToggled && out.Won != scanWin(b) {
				t.Fatalf("seed %d step %d: incremental win %v, scan %v", seed, i, out.Won, scanWin(b))
			}
		}
	}
}

func TestDetonationExplodesEveryMine(t *testing.T) {
	b := New(8, []Cell{{3, 3}, {0, 0}, {7, 7}, {5, 1}}, rng.NewRNG(1))
	if b.Mine(3, 3) {
		t.Fatal("mines must stay hidden while playing")
	}

	out := b.Reveal(3, 3)
	if out.Kind != RevealDetonated {
		t.Fatalf("reveal kind %v, want detonated", out.Kind)
	}
	if b.State() != Lost || !b.State().Over() || b.State().Won() {
		t.Fatalf("state %v, want lost", b.State())
	}
	if got, want := len(out.Effects), DetonationBurst*b.MineTotal(); got != want {
		t.Fatalf("%d effects, want %d", got, want)
	}
	if !b.Mine(3, 3) || !b.Mine(7, 7) {
		t.Fatal("mines should be visible after game over")
	}
	if b.Revealed(3, 3) {
		t.Fatal("a detonated mine must not receive a count")
	}
	if out := b.Reveal(1, 1); out.Kind != RevealNoOp {
		t.Fatal("finished board should ignore reveals")
	}
}

func TestMinesNeverCounted(t *testing.T) {
	r := rng.NewRNG(11)
	for seed := int64(0); seed < 10; seed++ {
		b := Generate(8, rng.NewRNG(seed))
		for i := 0; i < 100 && !b.State().Over(); i++ {
			col, row := r.IntN(8), r.IntN(8)
			if r.IntN(2) == 0 {
				b.ToggleFlag(col, row)
			} else {
				b.Reveal(col, row)
			}
			for j, v := range b.values.Cells() {
				if b.mines.Cells()[j] && v != Unrevealed {
					t.Fatalf("mine at index %d revealed as %d", j, v)
				}
				if b.flags.Cells()[j] && v != Unrevealed {
					t.Fatalf("index %d is flagged and revealed", j)
				}
			}
		}
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	b := New(4, nil, rng.NewRNG(1))
	for name, fn := range map[string]func(){
		"reveal": func() { b.Reveal(4, 0) },
		"flag":   func() { b.ToggleFlag(0, -1) },
		"value":  func() { b.Value(-1, 0) },
		"mine":   func() { New(2, []Cell{{2, 2}}, nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestEffectDescriptors(t *testing.T) {
	b := New(6, nil, rng.NewRNG(3))
	b.SetLayout(Layout{TileSize: 10})
	out := b.ToggleFlag(2, 4)
	if len(out.Effects) != FlagBurst {
		t.Fatalf("%d effects, want %d", len(out.Effects), FlagBurst)
	}
	for _, e := range out.Effects {
		if math.Abs(e.Position.X-22) > 1e-9 || math.Abs(e.Position.Y-42) > 1e-9 {
			t.Fatalf("effect position %+v, want (22,42)", e.Position)
		}
		if e.Velocity.X < -4 || e.Velocity.X >= 4 || e.Velocity.Y < -10 || e.Velocity.Y >= -1 {
			t.Fatalf("velocity %+v outside range", e.Velocity)
		}
		if e.Life != EffectLife {
			t.Fatalf("life %f, want %d", e.Life, EffectLife)
		}
	}
}

func TestAnalyzeWall(t *testing.T) {
	wall := []Cell{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}}
	a := Analyze(New(5, wall, rng.NewRNG(1)))
	want := Analysis{Size: 5, Mines: 5, ZeroCells: 10, Openings: 2, LargestOpening: 10, BBBV: 2, CentreMine: true}
	if a != want {
		t.Fatalf("Analyze = %+v, want %+v", a, want)
	}
}

func TestAnalyzeIsolatedNumbers(t *testing.T) {
	// A lone mine on a 2x2 board leaves no zero cells: every safe cell needs
	// its own click.
	a := Analyze(New(2, []Cell{{0, 0}}, rng.NewRNG(1)))
	if a.Openings != 0 || a.BBBV != 3 || a.ZeroCells != 0 {
		t.Fatalf("Analyze = %+v", a)
	}
}

func TestParametersSnapshot(t *testing.T) {
	b := New(8, []Cell{{0, 0}, {1, 1}}, rng.NewRNG(1))
	b.ToggleFlag(5, 5)
	snap := b.Parameters()
	if p, ok := snap.Lookup("remaining"); !ok || p.Value != "1" {
		t.Fatalf("remaining = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("state"); !ok || p.Value != "playing" {
		t.Fatalf("state = %+v, %v", p, ok)
	}
}
