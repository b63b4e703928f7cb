package sim

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/skybreak-gg/skybreak/game"
	"github.com/skybreak-gg/skybreak/level"
)

// BeamPhase enumerates the tractor beam cycle states. A beam is always in
// exactly one of them.
type BeamPhase uint8

const (
	BeamWaiting BeamPhase = iota
	BeamActive
)

// BeamState is a per-drone tractor beam cycle: wait a random delay, then
// raise a surface lump toward the drone over Duration seconds. The core
// only runs the timer and interpolation; mesh placement belongs to the
// renderer, which consumes Visible and Progress.
type BeamState struct {
	Phase BeamPhase
	// Timer is the seconds left until the next beam while waiting.
	Timer float64
	// Progress runs 0..1 while the beam is active.
	Progress float64
	// Visible mirrors the phase for the render sink.
	Visible bool

	DelayMin float64
	DelayMax float64
	Duration float64
}

func newBeamState(cfg level.BeamConfig, rng *rand.Rand) *BeamState {
	b := &BeamState{
		DelayMin: cfg.DelayMin,
		DelayMax: cfg.DelayMax,
		Duration: cfg.Duration,
	}
	b.rearm(rng)
	return b
}

func (b *BeamState) rearm(rng *rand.Rand) {
	b.Phase = BeamWaiting
	b.Timer = b.DelayMin + rng.Float64()*(b.DelayMax-b.DelayMin)
	b.Progress = 0
	b.Visible = false
}

func (b *BeamState) advance(dt float64, rng *rand.Rand) {
	switch b.Phase {
	case BeamWaiting:
		b.Timer -= dt
		if b.Timer <= 0 {
			b.Phase = BeamActive
			b.Progress = 0
			b.Visible = true
		}
	case BeamActive:
		b.Progress += dt / b.Duration
		if b.Progress >= 1 {
			b.rearm(rng)
		}
	}
}

// LumpPosition interpolates the beamed lump between the surface point and
// the drone, parameterized by Progress.
func (b *BeamState) LumpPosition(surface, drone mgl64.Vec3) mgl64.Vec3 {
	return game.LerpVec64(surface, drone, b.Progress)
}
