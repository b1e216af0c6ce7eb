package app

import (
	"fmt"
	"io"

	"minesweeper/internal/config"
	"minesweeper/internal/logging"
	"minesweeper/internal/mines"
	"minesweeper/internal/session"
	"minesweeper/internal/store"

	"github.com/sirupsen/logrus"
)

// Env bundles the settings, logger and statistics a frontend runs with.
type Env struct {
	Settings *config.File
	Log      *logrus.Logger
	Stats    *store.Store

	closer io.Closer
}

// Open loads settings, registers their difficulties and opens the logger and
// statistics store. Logs go to LogFile when set and to fallback otherwise; a
// nil fallback discards them.
func (c *Config) Open(fallback io.Writer) (*Env, error) {
	settings, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	settings.Register()

	env := &Env{Settings: settings}
	if c.LogFile == "" && fallback != nil {
		env.Log, err = logging.New(c.LogLevel, fallback)
	} else {
		env.Log, env.closer, err = logging.OpenFile(c.LogLevel, c.LogFile)
	}
	if err != nil {
		return nil, err
	}

	env.Stats, err = c.openStats()
	if err != nil {
		env.Log.WithError(err).Warn("statistics will not be saved")
	}
	return env, nil
}

func (c *Config) openStats() (*store.Store, error) {
	if c.NoStats {
		return store.New(nil)
	}
	s, err := store.Open(c.AppName)
	if s == nil {
		mem, _ := store.New(nil)
		return mem, err
	}
	return s, err
}

// Session starts a session with the loaded settings.
func (e *Env) Session(seed int64, layout func(size int) mines.Layout) *session.Session {
	cfg := session.DefaultConfig()
	cfg.Seed = seed
	cfg.SplashSeconds = e.Settings.SplashSeconds
	cfg.Physics = e.Settings.Physics()
	cfg.Layout = layout
	return session.New(cfg, e.Log, e.Stats)
}

// Close flushes and releases the log file.
func (e *Env) Close() error {
	if e.closer == nil {
		return nil
	}
	if err := e.closer.Close(); err != nil {
		return fmt.Errorf("failed to close log: %w", err)
	}
	return nil
}

// LastDifficulty returns the difficulty chosen in a previous run, if any.
func (e *Env) LastDifficulty() string { return e.Stats.Stats().LastDifficulty }
