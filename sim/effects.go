package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/skybreak-gg/skybreak/game"
)

// Explosion is a transient visual entity that grows and fades out over its
// lifetime.
type Explosion struct {
	Pos      mgl64.Vec3
	TTL      float64
	Duration float64
	Scale    float32
	Alpha    float32
}

// Spark is a short-lived debris particle with a randomized velocity.
type Spark struct {
	Pos      mgl64.Vec3
	Vel      mgl64.Vec3
	TTL      float64
	Duration float64
	Alpha    float32
}

func (s *Simulator) spawnExplosion(pos mgl64.Vec3) {
	s.explosions = append(s.explosions, &Explosion{
		Pos:      pos,
		TTL:      ExplosionTTL,
		Duration: ExplosionTTL,
		Scale:    1,
		Alpha:    1,
	})
}

func (s *Simulator) spawnSparks(pos mgl64.Vec3) {
	for i := 0; i < SparkCount; i++ {
		vel := mgl64.Vec3{
			(s.rng.Float64()*2 - 1) * SparkSpread,
			(s.rng.Float64()*2 - 1) * SparkSpread,
			(s.rng.Float64()*2 - 1) * SparkSpread,
		}
		s.sparks = append(s.sparks, &Spark{
			Pos:      pos,
			Vel:      vel,
			TTL:      SparkTTL,
			Duration: SparkTTL,
			Alpha:    1,
		})
	}
}

// simulateEffects decays transient entities and removes each exactly once
// when its TTL crosses zero.
func (s *Simulator) simulateEffects(dt float64) {
	for i := len(s.explosions) - 1; i >= 0; i-- {
		e := s.explosions[i]
		e.TTL -= dt
		if e.TTL <= 0 {
			s.explosions = append(s.explosions[:i], s.explosions[i+1:]...)
			continue
		}
		e.Scale = 1 + float32(e.Duration-e.TTL)*ExplosionGrowthRate
		e.Alpha = game.Alpha32(e.TTL, e.Duration)
	}

	for i := len(s.sparks) - 1; i >= 0; i-- {
		sp := s.sparks[i]
		sp.TTL -= dt
		if sp.TTL <= 0 {
			s.sparks = append(s.sparks[:i], s.sparks[i+1:]...)
			continue
		}
		sp.Pos = sp.Pos.Add(sp.Vel.Mul(dt))
		sp.Vel = sp.Vel.Mul(SparkVelocityDecay)
		sp.Alpha = game.Alpha32(sp.TTL, sp.Duration)
	}
}
