package mines

// State is the lifecycle of a single board.
type State uint8

const (
	// Playing means the board still accepts reveals and flags.
	Playing State = iota
	// Lost means a mine was revealed.
	Lost
	// Won means every mine, and nothing else, is flagged.
	Won
)

// Over reports whether the game has ended.
func (s State) Over() bool { return s != Playing }

// Won reports whether the game ended in a win.
func (s State) Won() bool { return s == Won }

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}
