package sim

import (
	"math"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/skybreak-gg/skybreak/assert"
	"github.com/skybreak-gg/skybreak/game"
	"github.com/skybreak-gg/skybreak/level"
)

// DroneState is a hostile entity tracked by the registry. Health only
// decreases, via weapon hits; a drone leaves the registry exactly once,
// on the tick its health reaches zero.
type DroneState struct {
	ID          int64
	Pos         mgl64.Vec3
	Orientation mgl64.Quat
	// Vel is the drone's current velocity as reported by its movement
	// model, used for orientation and render interpolation.
	Vel    mgl64.Vec3
	Health int32

	// Ellipsoid is the local-space collision volume, computed once at
	// spawn from the drone's visual bounds.
	Ellipsoid game.Ellipsoid

	Beam *BeamState

	model        movementModel
	lookAt       *mgl64.Vec3
	faceMovement bool
}

// movementModel advances a drone's position for one tick. Each variant
// holds its own scratch state; the fields are disjoint across models.
type movementModel interface {
	advance(d *DroneState, s *Simulator, dt float64)
}

// orbitModel circles the first environment body at a fixed altitude. The
// angular rate is capped so drones on larger radii do not exceed the
// configured tangential speed.
type orbitModel struct {
	Angle         float64
	Tilt          float64
	Altitude      float64
	Speed         float64
	MaxTangential float64
}

func (m *orbitModel) radius(s *Simulator) float64 {
	return m.Altitude + s.surfaceRadius()
}

func (m *orbitModel) position(s *Simulator) mgl64.Vec3 {
	rot := mgl64.QuatRotate(m.Angle, mgl64.Vec3{0, 1, 0}).
		Mul(mgl64.QuatRotate(m.Tilt, mgl64.Vec3{0, 0, 1}))
	return s.orbitCenter().Add(rot.Rotate(mgl64.Vec3{m.radius(s), 0, 0}))
}

func (m *orbitModel) advance(d *DroneState, s *Simulator, dt float64) {
	radius := m.radius(s)
	if radius <= 0 {
		return
	}
	omega := m.Speed
	if maxOmega := m.MaxTangential / radius; omega > maxOmega {
		omega = maxOmega
	}
	m.Angle += omega * dt

	next := m.position(s)
	if dt > 0 {
		d.Vel = next.Sub(d.Pos).Mul(1 / dt)
	}
	d.Pos = next
}

// patrolModel flies between targets sampled uniformly from its area.
type patrolModel struct {
	Center mgl64.Vec3
	Radius float64
	Speed  float64

	target *mgl64.Vec3
}

func (m *patrolModel) advance(d *DroneState, s *Simulator, dt float64) {
	if m.target == nil {
		t := game.SampleInSphere(s.rng, m.Center, m.Radius)
		m.target = &t
	}

	to := m.target.Sub(d.Pos)
	if to.Len() < PatrolArriveDistance {
		m.target = nil
		d.Vel = mgl64.Vec3{}
		return
	}

	d.Vel = to.Normalize().Mul(m.Speed)
	d.Pos = d.Pos.Add(d.Vel.Mul(dt))
}

// randomAreaModel drifts on a velocity that is stochastically resampled
// with the configured expected interval, steering back toward the center
// when it strays too far.
type randomAreaModel struct {
	Center   mgl64.Vec3
	Radius   float64
	Speed    float64
	Interval float64

	vel mgl64.Vec3
}

func (m *randomAreaModel) advance(d *DroneState, s *Simulator, dt float64) {
	if m.vel == (mgl64.Vec3{}) || s.rng.Float64() < dt/m.Interval {
		m.vel = game.RandomUnit(s.rng).Mul(m.Speed)
	}
	if d.Pos.Sub(m.Center).Len() > m.Radius*AreaSteerFraction {
		back := game.SafeNormalize(m.Center.Sub(d.Pos), mgl64.Vec3{0, 1, 0})
		m.vel = back.Mul(m.Speed)
	}

	d.Vel = m.vel
	d.Pos = d.Pos.Add(m.vel.Mul(dt))
}

// stationaryModel keeps the spawn-time position.
type stationaryModel struct{}

func (stationaryModel) advance(d *DroneState, s *Simulator, dt float64) {}

func (s *Simulator) spawnDrones() {
	cfg := s.level.Drones
	s.drones = orderedmap.NewOrderedMap[int64, *DroneState]()
	s.initialDrones = cfg.Count

	for i := 0; i < cfg.Count; i++ {
		d := &DroneState{
			ID:          s.nextDroneID,
			Orientation: mgl64.QuatIdent(),
			Health:      cfg.Health,
			Ellipsoid:   game.EllipsoidFromBounds(vec3(cfg.Bounds[0]), vec3(cfg.Bounds[1])),
		}
		s.nextDroneID++

		switch cfg.Model {
		case level.ModelOrbit:
			m := &orbitModel{
				Angle:         s.rng.Float64() * 2 * math.Pi,
				Tilt:          (s.rng.Float64()*2 - 1) * cfg.TiltMax,
				Altitude:      cfg.Altitude,
				Speed:         cfg.Speed,
				MaxTangential: cfg.MaxSpeed,
			}
			d.model = m
			d.Pos = m.position(s)
		case level.ModelPatrol:
			d.model = &patrolModel{
				Center: vec3(cfg.Area.Center),
				Radius: cfg.Area.Radius,
				Speed:  cfg.Speed,
			}
			d.Pos = game.SampleInSphere(s.rng, vec3(cfg.Area.Center), cfg.Area.Radius)
		case level.ModelRandom:
			d.model = &randomAreaModel{
				Center:   vec3(cfg.Area.Center),
				Radius:   cfg.Area.Radius,
				Speed:    cfg.Speed,
				Interval: cfg.DirectionChangeInterval,
			}
			d.Pos = game.SampleInSphere(s.rng, vec3(cfg.Area.Center), cfg.Area.Radius)
		case level.ModelStationary:
			d.model = stationaryModel{}
			d.Pos = vec3(cfg.Positions[i%len(cfg.Positions)])
		}

		if cfg.LookAt != nil {
			v := vec3(*cfg.LookAt)
			d.lookAt = &v
		}
		d.faceMovement = cfg.FaceMovementDirection
		if cfg.Beam != nil {
			d.Beam = newBeamState(*cfg.Beam, s.rng)
		}

		s.drones.Set(d.ID, d)
	}
}

func (s *Simulator) simulateDrones(dt float64) {
	for el := s.drones.Front(); el != nil; el = el.Next() {
		d := el.Value
		d.model.advance(d, s, dt)
		if d.Beam != nil {
			d.Beam.advance(dt, s.rng)
		}
		s.orientDrone(d)
	}
}

// orientDrone applies the configured facing rule. A fixed look-at point
// builds a basis whose up axis points toward the target (the source
// convention is inverted vs. a camera look-at); otherwise the drone faces
// its movement direction when moving fast enough for a stable basis.
func (s *Simulator) orientDrone(d *DroneState) {
	if d.lookAt != nil {
		up := d.lookAt.Sub(d.Pos)
		if up.LenSqr() < 1e-12 {
			return
		}
		d.Orientation = game.OrientationFromUp(up.Normalize())
		return
	}
	if d.faceMovement && d.Vel.Len() >= MinFacingSpeed {
		d.Orientation = game.OrientationAlong(d.Vel.Normalize())
	}
}

// removeDrone takes a drone out of the registry. Removal happens at most
// once per drone; the destroyed-event path and this compaction are coupled
// within the same tick.
func (s *Simulator) removeDrone(id int64) {
	_, ok := s.drones.Get(id)
	assert.IsTrue(ok, "drone %d removed twice", id)
	s.drones.Delete(id)
}
