package session

import (
	"strconv"

	"minesweeper/internal/core"
	"minesweeper/internal/mines"
)

// ActionKind enumerates the inputs the board understands.
type ActionKind uint8

const (
	RevealAt ActionKind = iota + 1
	ToggleFlagAt
	NewGame
)

// Action is a discrete input produced by a frontend. Col and Row must already
// be clamped to the board; Size is read only by NewGame.
type Action struct {
	Kind ActionKind
	Col  int
	Row  int
	Size int
}

// Result carries the board outcome of an Action. Only the field matching the
// action kind is meaningful.
type Result struct {
	Kind    ActionKind
	Reveal  mines.RevealOutcome
	Flag    mines.FlagOutcome
	Started bool
}

// Clamp pins (col, row) to the cells of a size x size board.
func Clamp(col, row, size int) (int, int) {
	return min(max(col, 0), size-1), min(max(row, 0), size-1)
}

// Apply performs a. Reveals and flags are ignored outside gameplay.
func (s *Session) Apply(a Action) Result {
	res := Result{Kind: a.Kind}
	switch a.Kind {
	case NewGame:
		if s.screen == ScreenSplash {
			return res
		}
		s.difficulty = difficultyFor(a.Size)
		s.startBoard(a.Size)
		s.setScreen(ScreenGame)
		res.Started = true
	case RevealAt:
		if !s.playing() {
			return res
		}
		res.Reveal = s.board.Reveal(a.Col, a.Row)
		s.particles.Spawn(res.Reveal.Effects)
		if res.Reveal.Kind == mines.RevealDetonated {
			s.shake.Kick(s.rng)
			s.log.WithFields(s.boardFields()).WithField("cell", mines.Cell{Col: a.Col, Row: a.Row}).Info("detonated")
			s.record(false)
		}
	case ToggleFlagAt:
		if !s.playing() {
			return res
		}
		res.Flag = s.board.ToggleFlag(a.Col, a.Row)
		s.particles.Spawn(res.Flag.Effects)
		if res.Flag.Won {
			s.log.WithFields(s.boardFields()).Info("won")
			s.record(true)
		}
	}
	return res
}

func (s *Session) playing() bool {
	return s.screen == ScreenGame && s.board != nil && !s.board.State().Over()
}

func difficultyFor(size int) core.Difficulty {
	for _, d := range core.Difficulties() {
		if d.Size == size {
			return d
		}
	}
	return core.Difficulty{Name: "custom", Size: size}
}

// Parameters combines the board's HUD values with session details.
func (s *Session) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if s.board != nil {
		snap = s.board.Parameters()
	}
	group := core.ParameterGroup{
		Name: "Session",
		Params: []core.Parameter{
			{Key: "difficulty", Label: "Difficulty", Type: core.ParamTypeString, Value: s.difficulty.Name},
		},
	}
	if s.stats != nil && s.board != nil {
		rec := s.stats.Stats().Boards[s.board.Size()]
		group.Params = append(group.Params,
			core.Parameter{Key: "won", Label: "Won", Type: core.ParamTypeInt, Value: strconv.Itoa(rec.Won)},
			core.Parameter{Key: "lost", Label: "Lost", Type: core.ParamTypeInt, Value: strconv.Itoa(rec.Lost)},
		)
	}
	snap.Groups = append(snap.Groups, group)
	return snap
}
