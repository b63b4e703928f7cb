package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestEllipsoidFromBounds(t *testing.T) {
	e := EllipsoidFromBounds(mgl64.Vec3{-1, -2, -3}, mgl64.Vec3{3, 2, 1})
	if e.Center != (mgl64.Vec3{1, 0, -1}) {
		t.Fatalf("unexpected center %v", e.Center)
	}
	if e.Radii != (mgl64.Vec3{2, 2, 2}) {
		t.Fatalf("unexpected radii %v", e.Radii)
	}
	if e.Radius != 2 {
		t.Fatalf("unexpected radius %v", e.Radius)
	}
}

func TestEllipsoidFromDegenerateBounds(t *testing.T) {
	e := EllipsoidFromBounds(mgl64.Vec3{5, 5, 5}, mgl64.Vec3{5, 5, 5})
	if e.Radius != 0 {
		t.Fatalf("expected zero radius for zero-size bounds, got %v", e.Radius)
	}
	// Inverted bounds, as produced by an empty mesh set.
	e = EllipsoidFromBounds(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{-1, -1, -1})
	if e.Radius != 0 {
		t.Fatalf("expected zero radius for inverted bounds, got %v", e.Radius)
	}
}

func TestEllipsoidContains(t *testing.T) {
	e := EllipsoidFromBounds(mgl64.Vec3{-2, -1, -4}, mgl64.Vec3{2, 1, 4})
	if !e.Contains(e.Center) {
		t.Fatalf("center must always be inside")
	}

	const eps = 1e-3
	for axis := 0; axis < 3; axis++ {
		inside := e.Center
		inside[axis] += e.Radii[axis] * (1 - eps)
		if !e.Contains(inside) {
			t.Fatalf("point just inside axis %d classified as miss", axis)
		}

		outside := e.Center
		outside[axis] += e.Radii[axis] * (1 + eps)
		if e.Contains(outside) {
			t.Fatalf("point just outside axis %d classified as hit", axis)
		}
	}
}

func TestEllipsoidZeroAxisGuard(t *testing.T) {
	e := Ellipsoid{Radii: mgl64.Vec3{0, 1, 1}, Radius: 1}
	if !e.Contains(mgl64.Vec3{0.5, 0, 0}) {
		t.Fatalf("zero axis must be treated as unit radius")
	}
	if e.Contains(mgl64.Vec3{1.5, 0, 0}) {
		t.Fatalf("zero axis guard must not classify everything as a hit")
	}
}
