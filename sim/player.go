package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/skybreak-gg/skybreak/game"
)

// PlayerState holds the ship's pose, velocities and physical constants. It
// is owned exclusively by the simulation and mutated only here.
type PlayerState struct {
	Pos         mgl64.Vec3
	Orientation mgl64.Quat
	Vel         mgl64.Vec3
	// AngVel holds pitch/yaw/roll rates in radians per second.
	AngVel mgl64.Vec3

	MaxSpeed       float64
	ThrustAccel    float64
	AngularAccel   float64
	LinearDamping  float64
	AngularDamping float64
	Radius         float64
}

// Forward returns the ship's forward direction in world space.
func (p *PlayerState) Forward() mgl64.Vec3 {
	return p.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
}

// localAxes are the rotation axes for pitch, yaw and roll in ship space.
var localAxes = [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// simulatePlayer integrates control input into the ship's orientation and
// velocity, resolves sphere collisions against the environment and returns
// the resulting speed.
func (s *Simulator) simulatePlayer(input ControlState, dt float64) float64 {
	p := &s.player

	angular := mgl64.Vec3{input.pitchAxis(), input.yawAxis(), input.rollAxis()}
	p.AngVel = p.AngVel.Add(angular.Mul(p.AngularAccel * dt))
	p.AngVel = p.AngVel.Mul(game.DampingScale(p.AngularDamping, dt))

	for i, axis := range localAxes {
		if math.Abs(p.AngVel[i]) < RotationEpsilon {
			continue
		}
		p.Orientation = p.Orientation.Mul(mgl64.QuatRotate(p.AngVel[i]*dt, axis)).Normalize()
	}

	forward := p.Forward()
	if input.Throttle {
		p.Vel = p.Vel.Add(forward.Mul(p.ThrustAccel * dt))
	} else if input.Reverse {
		p.Vel = p.Vel.Sub(forward.Mul(p.ThrustAccel * ReverseThrustMultiplier * dt))
	}

	p.Vel = p.Vel.Mul(game.DampingScale(p.LinearDamping, dt))
	if speed := p.Vel.Len(); speed > p.MaxSpeed {
		p.Vel = p.Vel.Mul(p.MaxSpeed / speed)
	}

	next := p.Pos.Add(p.Vel.Mul(dt))
	for _, body := range s.bodies {
		toShip := next.Sub(body.Center)
		minDist := body.Radius + p.Radius
		if toShip.Len() >= minDist {
			continue
		}
		// A ship exactly at the body center has no outward normal; push it
		// up rather than normalizing a zero vector.
		normal := game.SafeNormalize(toShip, mgl64.Vec3{0, 1, 0})
		next = body.Center.Add(normal.Mul(minDist))
		p.Vel = p.Vel.Mul(CollisionRestitution)
		// First collision wins; bodies do not overlap in level design.
		break
	}
	p.Pos = next

	return p.Vel.Len()
}
