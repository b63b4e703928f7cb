package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDestroySpawnsEffects(t *testing.T) {
	s := newTestSim(t, droneLevel(1, 1))

	for i := 0; i < 2000 && s.drones.Len() > 0; i++ {
		s.Tick(ControlState{Fire: true}, testDt)
	}
	if s.drones.Len() != 0 {
		t.Fatalf("drone never destroyed")
	}
	if len(s.explosions) != 1 {
		t.Fatalf("expected one explosion, got %d", len(s.explosions))
	}
	if len(s.sparks) != SparkCount {
		t.Fatalf("expected %d sparks, got %d", SparkCount, len(s.sparks))
	}
}

func TestExplosionGrowsAndFades(t *testing.T) {
	s := newTestSim(t, testLevel())
	s.spawnExplosion(mgl64.Vec3{1, 2, 3})

	e := s.explosions[0]
	prevScale := e.Scale
	prevAlpha := e.Alpha
	for i := 0; i < 60; i++ {
		s.Tick(ControlState{}, testDt)
		if len(s.explosions) == 0 {
			t.Fatalf("tick %d: explosion expired before its TTL", i)
		}
		if e.Scale < prevScale {
			t.Fatalf("tick %d: explosion shrank", i)
		}
		if e.Alpha > prevAlpha {
			t.Fatalf("tick %d: explosion alpha rose", i)
		}
		prevScale, prevAlpha = e.Scale, e.Alpha
	}

	// TTL is 1.2s; one long tick past the remainder removes it.
	s.Tick(ControlState{}, ExplosionTTL)
	if len(s.explosions) != 0 {
		t.Fatalf("explosion outlived its TTL")
	}
}

func TestSparksDriftAndDecay(t *testing.T) {
	s := newTestSim(t, testLevel())
	s.spawnSparks(mgl64.Vec3{})

	if len(s.sparks) != SparkCount {
		t.Fatalf("expected %d sparks, got %d", SparkCount, len(s.sparks))
	}
	sp := s.sparks[0]
	v0 := sp.Vel.Len()

	s.Tick(ControlState{}, testDt)
	if math.Abs(sp.Vel.Len()-v0*SparkVelocityDecay) > 1e-9 {
		t.Fatalf("spark velocity not decayed by the per-tick factor")
	}
	if v0 > 0 && sp.Pos == (mgl64.Vec3{}) {
		t.Fatalf("spark did not move")
	}

	s.Tick(ControlState{}, SparkTTL)
	if len(s.sparks) != 0 {
		t.Fatalf("sparks outlived their TTL")
	}
}
