// Package config loads the optional YAML settings file.
//
// Every field has a default, so a missing file is not an error; a present but
// malformed or inconsistent file is.
package config

import (
	"errors"
	"fmt"
	"os"

	"minesweeper/internal/core"
	"minesweeper/internal/fx"

	"gopkg.in/yaml.v3"
)

// Difficulty is a named board size offered on the title screen.
type Difficulty struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

// Particles tunes the cosmetic particle physics.
type Particles struct {
	Gravity        float64 `yaml:"gravity"`
	Drag           float64 `yaml:"drag"`
	TicksPerSecond float64 `yaml:"ticksPerSecond"`
}

// Window sizes the GUI frontend.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// File mirrors the YAML settings document.
type File struct {
	Difficulties  []Difficulty `yaml:"difficulties"`
	Particles     Particles    `yaml:"particles"`
	SplashSeconds float64      `yaml:"splashSeconds"`
	Window        Window       `yaml:"window"`
}

// Default returns the built-in settings.
func Default() *File {
	phys := fx.DefaultPhysics()
	return &File{
		Difficulties: []Difficulty{
			{Name: "easy", Size: 8},
			{Name: "medium", Size: 16},
			{Name: "hard", Size: 24},
		},
		Particles: Particles{
			Gravity:        phys.Gravity,
			Drag:           phys.Drag,
			TicksPerSecond: phys.TicksPerSecond,
		},
		SplashSeconds: 3,
		Window:        Window{Width: 800, Height: 600},
	}
}

// Load reads settings from path on top of the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (*File, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (f *File) Validate() error {
	if len(f.Difficulties) == 0 {
		return errors.New("at least one difficulty is required")
	}
	seen := map[string]bool{}
	for _, d := range f.Difficulties {
		if d.Name == "" {
			return errors.New("difficulty name must not be empty")
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate difficulty %q", d.Name)
		}
		seen[d.Name] = true
		if d.Size < 1 {
			return fmt.Errorf("difficulty %q: size %d must be at least 1", d.Name, d.Size)
		}
	}
	if f.Particles.Drag < 0 || f.Particles.Drag > 1 {
		return fmt.Errorf("particle drag %.2f must be within [0,1]", f.Particles.Drag)
	}
	if f.Particles.TicksPerSecond <= 0 {
		return fmt.Errorf("particle ticksPerSecond %.2f must be positive", f.Particles.TicksPerSecond)
	}
	if f.SplashSeconds < 0 {
		return fmt.Errorf("splashSeconds %.2f must not be negative", f.SplashSeconds)
	}
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d must be positive", f.Window.Width, f.Window.Height)
	}
	return nil
}

// Register publishes the configured difficulties to the core registry.
func (f *File) Register() {
	for _, d := range f.Difficulties {
		core.Register(core.Difficulty{Name: d.Name, Size: d.Size})
	}
}

// Physics converts the particle settings for the fx package.
func (f *File) Physics() fx.Physics {
	return fx.Physics{
		Gravity:        f.Particles.Gravity,
		Drag:           f.Particles.Drag,
		TicksPerSecond: f.Particles.TicksPerSecond,
	}
}
