package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ellipsoid is a local-space collision volume derived from an entity's
// visual bounds: a center offset, per-axis radii and a scalar radius.
type Ellipsoid struct {
	Center mgl64.Vec3
	Radii  mgl64.Vec3
	Radius float64
}

// EllipsoidFromBounds derives an ellipsoid from local-space extents. The
// center is the midpoint and the radii are the half-extents per axis.
// Degenerate bounds (zero-size or inverted, as produced by an empty mesh
// set) yield a zero-radius ellipsoid; callers must treat Radius <= 0 as
// "no collision volume".
func EllipsoidFromBounds(min, max mgl64.Vec3) Ellipsoid {
	e := Ellipsoid{
		Center: min.Add(max).Mul(0.5),
		Radii:  max.Sub(min).Mul(0.5),
	}
	for i := 0; i < 3; i++ {
		if e.Radii[i] < 0 {
			e.Radii[i] = 0
		}
	}
	e.Radius = math.Max(e.Radii[0], math.Max(e.Radii[1], e.Radii[2]))
	return e
}

// Contains reports whether a local-space point lies inside the ellipsoid.
// A zero-length axis is treated as a unit radius so a flat ellipsoid can
// neither divide by zero nor classify everything as a hit.
func (e Ellipsoid) Contains(local mgl64.Vec3) bool {
	p := local.Sub(e.Center)
	sum := 0.0
	for i := 0; i < 3; i++ {
		r := e.Radii[i]
		if r <= 0 {
			r = 1
		}
		n := p[i] / r
		sum += n * n
	}
	return sum <= 1
}
