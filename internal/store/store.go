// Package store persists player statistics across runs.
package store

import (
	"fmt"
	"maps"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	statsObject   = "stats"
	statsProperty = "global"
)

// Record counts finished games on one board size.
type Record struct {
	Won  int `yaml:"won"`
	Lost int `yaml:"lost"`
}

// Played returns the number of finished games.
func (r Record) Played() int { return r.Won + r.Lost }

// Stats is the persisted document.
type Stats struct {
	LastDifficulty string         `yaml:"lastDifficulty"`
	Boards         map[int]Record `yaml:"boards"`
}

// Store keeps Stats in memory and mirrors them to gdata storage. A Store
// without a manager works purely in memory.
type Store struct {
	manager *gdata.Manager
	stats   Stats
}

// Open creates a gdata-backed store for appName and loads existing stats.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return New(m)
}

// New wraps an existing manager, which may be nil, and loads existing stats.
func New(m *gdata.Manager) (*Store, error) {
	s := &Store{manager: m, stats: Stats{Boards: map[int]Record{}}}
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// Load replaces the in-memory stats with the stored ones, if any.
func (s *Store) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	var loaded Stats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	if loaded.Boards == nil {
		loaded.Boards = map[int]Record{}
	}
	s.stats = loaded
	return nil
}

// Save writes the in-memory stats to storage.
func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	if err := s.manager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// RecordResult counts a finished game on a board of the given size and saves.
func (s *Store) RecordResult(size int, won bool) error {
	r := s.stats.Boards[size]
	if won {
		r.Won++
	} else {
		r.Lost++
	}
	s.stats.Boards[size] = r
	return s.Save()
}

// SetLastDifficulty remembers the most recently chosen difficulty and saves.
func (s *Store) SetLastDifficulty(name string) error {
	s.stats.LastDifficulty = name
	return s.Save()
}

// Stats returns a copy of the current statistics.
func (s *Store) Stats() Stats {
	return Stats{LastDifficulty: s.stats.LastDifficulty, Boards: maps.Clone(s.stats.Boards)}
}
