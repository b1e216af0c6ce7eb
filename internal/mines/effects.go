package mines

import (
	"minesweeper/internal/core"
	rng "minesweeper/pkg/core"
)

const (
	// EffectLife is the initial life of every effect, in update ticks.
	EffectLife = 80

	// RevealBurst is the number of effects emitted per revealed cell.
	RevealBurst = 5
	// DetonationBurst is the number of effects emitted per mine on detonation.
	DetonationBurst = 5
	// FlagBurst is the number of effects emitted per flag toggle.
	FlagBurst = 2
)

// Velocity ranges for emitted effects, in presentation units per tick.
const (
	minVelocityX = -4.0
	maxVelocityX = 4.0
	minVelocityY = -10.0
	maxVelocityY = -1.0
)

// Effect describes one cosmetic particle for the presentation layer to spawn.
// It carries no gameplay meaning.
type Effect struct {
	Position core.Vec2
	Velocity core.Vec2
	Life     float64
}

// Layout maps cells to presentation coordinates.
type Layout struct {
	Origin   core.Vec2
	TileSize float64
}

// DefaultLayout places cell (c, r) at (c, r) in tile units.
func DefaultLayout() Layout { return Layout{TileSize: 1} }

// Position returns the spawn point for effects on c, inset 0.2 tiles from the
// cell's top-left corner.
func (l Layout) Position(c Cell) core.Vec2 {
	return core.Vec2{
		X: l.Origin.X + (float64(c.Col)+0.2)*l.TileSize,
		Y: l.Origin.Y + (float64(c.Row)+0.2)*l.TileSize,
	}
}

// Emitter turns board events into effect descriptors. It keeps no record of
// what it emitted.
type Emitter struct {
	rng    *rng.RNG
	layout Layout
}

// NewEmitter returns an emitter sampling velocities from r.
func NewEmitter(r *rng.RNG, layout Layout) *Emitter {
	return &Emitter{rng: r, layout: layout}
}

// Burst appends n effects positioned on c to dst and returns the result.
func (e *Emitter) Burst(dst []Effect, c Cell, n int) []Effect {
	pos := e.layout.Position(c)
	for i := 0; i < n; i++ {
		dst = append(dst, Effect{
			Position: pos,
			Velocity: core.Vec2{
				X: e.rng.Range(minVelocityX, maxVelocityX),
				Y: e.rng.Range(minVelocityY, maxVelocityY),
			},
			Life: EffectLife,
		})
	}
	return dst
}
