package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClampFloat(t *testing.T) {
	if v := ClampFloat(5, 0, 1); v != 1 {
		t.Fatalf("expected 1, got %v", v)
	}
	if v := ClampFloat(-5, 0, 1); v != 0 {
		t.Fatalf("expected 0, got %v", v)
	}
	if v := ClampFloat(0.5, 0, 1); v != 0.5 {
		t.Fatalf("expected 0.5, got %v", v)
	}
}

func TestDampingScale(t *testing.T) {
	// At exactly one 60Hz frame the scale must equal the raw factor.
	if s := DampingScale(0.92, 1.0/60.0); math.Abs(s-0.92) > 1e-12 {
		t.Fatalf("expected 0.92, got %v", s)
	}
	// Two frames compose multiplicatively.
	if s := DampingScale(0.92, 2.0/60.0); math.Abs(s-0.92*0.92) > 1e-12 {
		t.Fatalf("expected %v, got %v", 0.92*0.92, s)
	}
}

func TestSafeNormalizeFallback(t *testing.T) {
	fallback := mgl64.Vec3{0, 1, 0}
	if v := SafeNormalize(mgl64.Vec3{}, fallback); v != fallback {
		t.Fatalf("expected fallback for zero vector, got %v", v)
	}
	v := SafeNormalize(mgl64.Vec3{3, 0, 4}, fallback)
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Fatalf("expected unit vector, got %v", v)
	}
}

func TestSampleInSphereDistribution(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	center := mgl64.Vec3{10, -5, 3}
	const radius = 10.0
	const n = 20000

	sum := 0.0
	for i := 0; i < n; i++ {
		p := SampleInSphere(rng, center, radius)
		d := p.Sub(center).Len()
		if d > radius+1e-9 {
			t.Fatalf("sample %v outside radius: %v", p, d)
		}
		sum += d
	}

	// Uniform-by-volume sampling has E[r] = 0.75 * R.
	mean := sum / n
	if math.Abs(mean-0.75*radius) > 0.15 {
		t.Fatalf("expected mean radius near %v, got %v", 0.75*radius, mean)
	}
}

func TestOrientationFromUp(t *testing.T) {
	up := mgl64.Vec3{1, 2, 3}.Normalize()
	q := OrientationFromUp(up)

	rotated := q.Rotate(mgl64.Vec3{0, 1, 0})
	if rotated.Sub(up).Len() > 1e-9 {
		t.Fatalf("expected local +Y to map onto %v, got %v", up, rotated)
	}
	if math.Abs(q.Rotate(mgl64.Vec3{1, 0, 0}).Len()-1) > 1e-9 {
		t.Fatalf("orientation is not a rotation")
	}
}

func TestOrientationAlong(t *testing.T) {
	forward := mgl64.Vec3{-4, 1, 2}.Normalize()
	q := OrientationAlong(forward)

	rotated := q.Rotate(mgl64.Vec3{0, 0, 1})
	if rotated.Sub(forward).Len() > 1e-9 {
		t.Fatalf("expected local +Z to map onto %v, got %v", forward, rotated)
	}
	// Near-vertical directions must still produce a valid basis.
	q = OrientationAlong(mgl64.Vec3{0, 1, 0})
	if math.Abs(q.Rotate(mgl64.Vec3{0, 0, 1}).Sub(mgl64.Vec3{0, 1, 0}).Len()) > 1e-9 {
		t.Fatalf("vertical forward not handled")
	}
}
