package fx

import (
	"minesweeper/internal/core"
	"minesweeper/internal/mines"
)

// Physics holds the per-tick constants applied to live particles.
type Physics struct {
	// Gravity is added to the vertical velocity every update.
	Gravity float64
	// Drag scales the horizontal velocity every update.
	Drag float64
	// TicksPerSecond converts frame time into life ticks.
	TicksPerSecond float64
}

// DefaultPhysics matches the 60 tick-per-second reference tuning.
func DefaultPhysics() Physics {
	return Physics{Gravity: 0.5, Drag: 0.94, TicksPerSecond: 60}
}

// Particle is a live copy of a spawned effect.
type Particle struct {
	Position core.Vec2
	Velocity core.Vec2
	Life     float64
}

// System owns the particles spawned from board effects.
type System struct {
	physics   Physics
	particles []Particle
}

// NewSystem returns an empty particle system.
func NewSystem(p Physics) *System {
	return &System{physics: p}
}

// Spawn takes ownership of the given effects.
func (s *System) Spawn(effects []mines.Effect) {
	for _, e := range effects {
		s.particles = append(s.particles, Particle{Position: e.Position, Velocity: e.Velocity, Life: e.Life})
	}
}

// Update advances every particle by one frame of dt seconds and drops the ones
// whose life has run out.
func (s *System) Update(dt float64) {
	live := s.particles[:0]
	for _, p := range s.particles {
		p.Velocity.Y += s.physics.Gravity
		p.Velocity.X *= s.physics.Drag
		p.Position = p.Position.Add(p.Velocity)
		p.Life -= dt * s.physics.TicksPerSecond
		if p.Life <= 0 {
			continue
		}
		live = append(live, p)
	}
	clear(s.particles[len(live):])
	s.particles = live
}

// Particles exposes the live particles for drawing.
func (s *System) Particles() []Particle { return s.particles }

// Len returns the number of live particles.
func (s *System) Len() int { return len(s.particles) }

// Clear removes every particle.
func (s *System) Clear() { s.particles = s.particles[:0] }
