// Package session implements the screen flow around a Minesweeper board:
// splash, title menu and gameplay. Frontends translate device input into
// Actions and draw whatever the session exposes.
package session

import (
	"io"
	"time"

	"minesweeper/internal/core"
	"minesweeper/internal/fx"
	"minesweeper/internal/mines"
	"minesweeper/internal/store"
	rng "minesweeper/pkg/core"

	"github.com/sirupsen/logrus"
)

// Screen is the top-level presentation state.
type Screen uint8

const (
	ScreenSplash Screen = iota
	ScreenTitle
	ScreenGame
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "splash"
	case ScreenTitle:
		return "title"
	case ScreenGame:
		return "game"
	default:
		return "unknown"
	}
}

// Config controls a session.
type Config struct {
	// Seed feeds board generation and effect sampling. Zero picks a
	// time-based seed.
	Seed int64
	// SplashSeconds is how long the splash screen stays up.
	SplashSeconds float64
	Physics       fx.Physics
	// Layout maps a board size to effect coordinates. Nil uses tile units.
	Layout func(size int) mines.Layout
}

// DefaultConfig returns the reference timings and physics.
func DefaultConfig() Config {
	return Config{SplashSeconds: 3, Physics: fx.DefaultPhysics()}
}

// Session owns the active board and the cosmetic state around it. It is
// driven from a single goroutine.
type Session struct {
	cfg   Config
	log   logrus.FieldLogger
	rng   *rng.RNG
	stats *store.Store

	screen     Screen
	splash     float64
	difficulty core.Difficulty
	board      *mines.Board

	particles *fx.System
	shake     *fx.Shake
}

// New returns a session on the splash screen. log and stats may be nil.
func New(cfg Config, log logrus.FieldLogger, stats *store.Store) *Session {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.Physics.TicksPerSecond <= 0 {
		cfg.Physics = fx.DefaultPhysics()
	}
	return &Session{
		cfg:       cfg,
		log:       log,
		rng:       rng.NewRNG(seed),
		stats:     stats,
		particles: fx.NewSystem(cfg.Physics),
		shake:     fx.NewShake(cfg.Physics.TicksPerSecond),
	}
}

// Screen returns the current screen.
func (s *Session) Screen() Screen { return s.screen }

// Board returns the active board, or nil before the first game.
func (s *Session) Board() *mines.Board { return s.board }

// Difficulty returns the difficulty of the active board.
func (s *Session) Difficulty() core.Difficulty { return s.difficulty }

// Particles returns the live particles for drawing.
func (s *Session) Particles() []fx.Particle { return s.particles.Particles() }

// ShakeOffset returns the current camera displacement.
func (s *Session) ShakeOffset() core.Vec2 { return s.shake.Offset() }

// Elapsed returns the time spent on the splash screen so far.
func (s *Session) Elapsed() float64 { return s.splash }

// Update advances timers and cosmetic effects by dt seconds.
func (s *Session) Update(dt float64) {
	s.shake.Update(dt)
	switch s.screen {
	case ScreenSplash:
		s.splash += dt
		if s.splash > s.cfg.SplashSeconds {
			s.setScreen(ScreenTitle)
		}
	case ScreenGame:
		s.particles.Update(dt)
	}
}

// Select starts a game of the given difficulty from the title screen.
func (s *Session) Select(d core.Difficulty) bool {
	if s.screen != ScreenTitle || d.Size < 1 {
		return false
	}
	s.difficulty = d
	if s.stats != nil {
		if err := s.stats.SetLastDifficulty(d.Name); err != nil {
			s.log.WithError(err).Warn("could not save difficulty")
		}
	}
	s.startBoard(d.Size)
	s.setScreen(ScreenGame)
	return true
}

// Back leaves a running game for the title screen.
func (s *Session) Back() bool {
	if s.screen != ScreenGame || s.board == nil || s.board.State().Over() {
		return false
	}
	s.leaveGame()
	return true
}

// Continue replaces a finished board with a fresh one of the same size. After
// a win the player is returned to the title screen.
func (s *Session) Continue() bool {
	if s.screen != ScreenGame || s.board == nil || !s.board.State().Over() {
		return false
	}
	won := s.board.State().Won()
	s.startBoard(s.board.Size())
	if won {
		s.leaveGame()
	}
	return true
}

// leaveGame returns to the title. Particles only move during play, so any
// still alive are dropped instead of resuming on the next board.
func (s *Session) leaveGame() {
	s.particles.Clear()
	s.setScreen(ScreenTitle)
}

func (s *Session) startBoard(size int) {
	s.board = mines.Generate(size, s.rng)
	if s.cfg.Layout != nil {
		s.board.SetLayout(s.cfg.Layout(size))
	}
	s.log.WithFields(logrus.Fields{
		"game":  s.board.ID(),
		"size":  size,
		"mines": s.board.MineTotal(),
	}).Info("new game")
}

func (s *Session) setScreen(next Screen) {
	if next == s.screen {
		return
	}
	s.log.WithFields(logrus.Fields{"from": s.screen, "to": next}).Debug("screen change")
	s.screen = next
}

func (s *Session) boardFields() logrus.Fields {
	return logrus.Fields{
		"game":  s.board.ID(),
		"size":  s.board.Size(),
		"flags": s.board.FlagCount(),
	}
}

func (s *Session) record(won bool) {
	if s.stats == nil {
		return
	}
	if err := s.stats.RecordResult(s.board.Size(), won); err != nil {
		s.log.WithError(err).Warn("could not save stats")
	}
}
