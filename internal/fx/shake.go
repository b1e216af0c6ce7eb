package fx

import (
	"minesweeper/internal/core"
	rng "minesweeper/pkg/core"
)

const (
	shakeAmplitude = 80.0
	shakePeriod    = 2.0
	shakeDamping   = -0.5
)

// Shake is a decaying camera offset kicked off by detonations.
type Shake struct {
	offset core.Vec2
	timer  float64
	tps    float64
}

// NewShake returns a resting shake that counts ticksPerSecond ticks a second.
func NewShake(ticksPerSecond float64) *Shake {
	if ticksPerSecond <= 0 {
		ticksPerSecond = 60
	}
	return &Shake{timer: shakePeriod, tps: ticksPerSecond}
}

// Kick displaces the camera by a random offset of up to 80 units per axis.
func (s *Shake) Kick(r *rng.RNG) {
	s.offset = core.Vec2{
		X: r.Range(-shakeAmplitude, shakeAmplitude),
		Y: r.Range(-shakeAmplitude, shakeAmplitude),
	}
	s.timer = shakePeriod
}

// Update flips and halves the offset every two ticks.
func (s *Shake) Update(dt float64) {
	s.timer -= dt * s.tps
	if s.timer <= 0 {
		s.timer = shakePeriod
		s.offset = s.offset.Scale(shakeDamping)
	}
}

// Offset returns the current camera displacement.
func (s *Shake) Offset() core.Vec2 { return s.offset }
