package game

import (
	"math"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float64) float64 {
	if num < min {
		return min
	}
	return math.Min(num, max)
}

// DampingScale converts a damping factor expressed per 60Hz frame into the
// multiplier for a tick of dt seconds, so damping behaves the same at any
// frame rate.
func DampingScale(factor, dt float64) float64 {
	return math.Pow(factor, dt*60.0)
}

// SafeNormalize returns v normalized, or fallback when v is too short to
// normalize without blowing up.
func SafeNormalize(v, fallback mgl64.Vec3) mgl64.Vec3 {
	if v.LenSqr() < 1e-12 {
		return fallback
	}
	return v.Normalize()
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec64 interpolates linearly between two vectors.
func LerpVec64(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Vec32To64 converts a 32-bit vector to a 64-bit one.
func Vec32To64(vec3 mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(vec3[0]), float64(vec3[1]), float64(vec3[2])}
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}

// Quat64To32 converts a 64-bit quaternion to a 32-bit one.
func Quat64To32(q mgl64.Quat) mgl32.Quat {
	return mgl32.Quat{W: float32(q.W), V: Vec64To32(q.V)}
}

// Alpha32 returns remaining/total as a float32 clamped to [0, 1], the fade
// value render layers expect for expiring entities.
func Alpha32(remaining, total float64) float32 {
	if total <= 0 {
		return 0
	}
	return math32.Max(0, math32.Min(1, float32(remaining/total)))
}

// RandomUnit returns a direction sampled uniformly from the unit sphere.
func RandomUnit(rng *rand.Rand) mgl64.Vec3 {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)
	sinPhi := math.Sin(phi)
	return mgl64.Vec3{
		sinPhi * math.Cos(theta),
		math.Cos(phi),
		sinPhi * math.Sin(theta),
	}
}

// SampleInSphere returns a point sampled uniformly by volume from the sphere
// at center with the given radius. The cube root on the radial term is what
// makes the density uniform by volume rather than clustered at the center.
func SampleInSphere(rng *rand.Rand, center mgl64.Vec3, radius float64) mgl64.Vec3 {
	r := math.Cbrt(rng.Float64()) * radius
	return center.Add(RandomUnit(rng).Mul(r))
}

// OrientationFromUp builds an orientation whose local +Y axis points along
// up. Up must be a unit vector.
func OrientationFromUp(up mgl64.Vec3) mgl64.Quat {
	ref := mgl64.Vec3{0, 0, 1}
	if math.Abs(up.Dot(ref)) > 0.99 {
		ref = mgl64.Vec3{1, 0, 0}
	}
	right := up.Cross(ref).Normalize()
	forward := right.Cross(up)
	return basisQuat(right, up, forward)
}

// OrientationAlong builds an orientation whose local +Z axis points along
// forward. Forward must be a unit vector.
func OrientationAlong(forward mgl64.Vec3) mgl64.Quat {
	up := mgl64.Vec3{0, 1, 0}
	if math.Abs(forward.Dot(up)) > 0.99 {
		up = mgl64.Vec3{0, 0, 1}
	}
	right := up.Cross(forward).Normalize()
	up = forward.Cross(right)
	return basisQuat(right, up, forward)
}

func basisQuat(right, up, forward mgl64.Vec3) mgl64.Quat {
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(right, up, forward).Mat4())
}
