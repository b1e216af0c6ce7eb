package mines

// FlagKind classifies the result of a flag toggle.
type FlagKind uint8

const (
	// FlagNoOp means the target was already revealed or the game is over.
	FlagNoOp FlagKind = iota
	// FlagToggled means the flag on the target was inverted.
	FlagToggled
)

// FlagOutcome reports what a flag toggle did.
type FlagOutcome struct {
	Kind FlagKind
	// Flagged is the new flag state of the target.
	Flagged bool
	// Won is true when the toggle completed the board.
	Won     bool
	Effects []Effect
}

// ToggleFlag inverts the flag on an unrevealed cell and checks for a win.
func (b *Board) ToggleFlag(col, row int) FlagOutcome {
	c := Cell{Col: col, Row: row}
	if b.Revealed(col, row) || b.state.Over() {
		return FlagOutcome{Kind: FlagNoOp}
	}
	on := !b.flags.At(col, row)
	b.setFlag(c, on)

	out := FlagOutcome{Kind: FlagToggled, Flagged: on}
	out.Effects = b.emitter.Burst(out.Effects, c, FlagBurst)
	if b.flagsMatchMines() {
		b.state = Won
		out.Won = true
	}
	return out
}

// flagsMatchMines reports whether every mine is flagged and nothing else is.
// The counters kept by setFlag make this equivalent to a full scan.
func (b *Board) flagsMatchMines() bool {
	return b.correctFlags == b.mineTotal && b.flagCount == b.mineTotal
}
