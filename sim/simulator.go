package sim

import (
	"math"
	"math/rand/v2"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"

	"github.com/skybreak-gg/skybreak/event"
	"github.com/skybreak-gg/skybreak/game"
	"github.com/skybreak-gg/skybreak/level"
	"github.com/skybreak-gg/skybreak/records"
)

// CollisionBody is an immutable environment sphere supplied by the level.
type CollisionBody struct {
	Center mgl64.Vec3
	Radius float64
}

type weaponState struct {
	FireRateMs      float64
	ProjectileSpeed float64
	ProjectileTTL   float64
	MuzzleOffset    mgl64.Vec3
}

// Options configure a Simulator beyond the level record.
type Options struct {
	// Store receives best times. Nil disables record tracking.
	Store records.Store
	// Log receives debug traces. Nil disables them.
	Log *logrus.Entry
	// Seed is xor'd into the level's deterministic seed. Zero keeps the
	// level default, which makes replays reproducible from the level id.
	Seed uint64
}

// Simulator advances the combat simulation one control snapshot at a time.
// It owns every entity for the duration of a level; hosts read poses back
// through Render and drain events from each TickResult. All methods must be
// called from a single goroutine.
type Simulator struct {
	level *level.Config
	store records.Store
	log   *logrus.Entry
	rng   *rand.Rand
	seed  uint64

	clock  float64
	bodies []CollisionBody

	player    PlayerState
	weapon    weaponState
	condition VictoryCondition

	drones      *orderedmap.OrderedMap[int64, *DroneState]
	projectiles []*Projectile
	explosions  []*Explosion
	sparks      []*Spark

	nextDroneID   int64
	initialDrones int
	destroyed     int
	lastShotMs    float64

	victory    victoryState
	generation uint64

	events event.Queue
}

// New builds a simulator for the given level. The configuration is
// validated and never mutated.
func New(cfg *level.Config, opts Options) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{
		level: cfg,
		store: opts.Store,
		log:   opts.Log,
		seed:  cfg.Seed() ^ opts.Seed,
	}
	s.bodies = make([]CollisionBody, 0, len(cfg.Bodies))
	for _, b := range cfg.Bodies {
		s.bodies = append(s.bodies, CollisionBody{Center: vec3(b.Center), Radius: b.Radius})
	}
	s.weapon = weaponState{
		FireRateMs:      cfg.Weapon.FireRateMs,
		ProjectileSpeed: cfg.Weapon.ProjectileSpeed,
		ProjectileTTL:   cfg.Weapon.ProjectileTTL,
		MuzzleOffset:    vec3(cfg.Weapon.MuzzleOffset),
	}
	var err error
	if s.condition, err = conditionFromConfig(cfg.Victory); err != nil {
		return nil, err
	}

	s.Reset()
	return s, nil
}

// Reset clears all transient entities, respawns drones and re-arms the
// victory latches. It must only be called between ticks.
func (s *Simulator) Reset() {
	s.generation++
	s.rng = rand.New(rand.NewPCG(s.seed, s.generation))
	s.clock = 0
	s.lastShotMs = math.Inf(-1)
	s.destroyed = 0

	cfg := s.level.Player
	s.player = PlayerState{
		Pos:            vec3(cfg.Start),
		Orientation:    mgl64.QuatIdent(),
		MaxSpeed:       cfg.MaxSpeed,
		ThrustAccel:    cfg.ThrustAccel,
		AngularAccel:   cfg.AngularAccel,
		LinearDamping:  cfg.LinearDamping,
		AngularDamping: cfg.AngularDamping,
		Radius:         cfg.Radius,
	}

	s.projectiles = nil
	s.explosions = nil
	s.sparks = nil
	s.events = event.Queue{}
	s.spawnDrones()

	// Entities are fully loaded at this point, so the start timestamp is
	// latched immediately. The best time is read once per run.
	s.victory = victoryState{startTime: s.clock}
	if s.store != nil {
		s.victory.bestTime, s.victory.hasBest = s.store.Get(s.level.ID)
	}
	s.debugf("reset: %d drones, generation %d", s.drones.Len(), s.generation)
}

// Tick advances the simulation by dt seconds under the given control
// snapshot. The order is fixed: player movement resolves before weapon hit
// tests, which resolve before effects and enemy movement, with victory
// evaluated last so same-tick destructions count.
func (s *Simulator) Tick(input ControlState, dt float64) TickResult {
	if dt < 0 {
		dt = 0
	}
	s.clock += dt

	speed := s.simulatePlayer(input, dt)
	s.simulateWeapon(input, dt)
	s.simulateEffects(dt)
	s.simulateDrones(dt)
	s.simulateVictory()

	return TickResult{
		Speed:     speed,
		Elapsed:   s.clock - s.victory.startTime,
		Drones:    s.drones.Len(),
		Destroyed: s.destroyed,
		Won:       s.victory.won,
		FinalTime: s.victory.finalTime,
		Events:    s.events.Drain(),
	}
}

// Clock returns the accumulated simulation time in seconds.
func (s *Simulator) Clock() float64 {
	return s.clock
}

// Player returns the ship state for host inspection.
func (s *Simulator) Player() *PlayerState {
	return &s.player
}

func (s *Simulator) clockMs() int64 {
	return int64(s.clock * 1000)
}

// surfaceRadius is the radius of the first environment body, 0 if the level
// has none.
func (s *Simulator) surfaceRadius() float64 {
	if len(s.bodies) == 0 {
		return 0
	}
	return s.bodies[0].Radius
}

func (s *Simulator) orbitCenter() mgl64.Vec3 {
	if len(s.bodies) == 0 {
		return mgl64.Vec3{}
	}
	return s.bodies[0].Center
}

// surfacePointToward returns the point on the first body's surface along
// the center-to-pos axis. Without bodies it falls back to the ground
// projection so beam interpolation stays total.
func (s *Simulator) surfacePointToward(pos mgl64.Vec3) mgl64.Vec3 {
	if len(s.bodies) == 0 {
		return mgl64.Vec3{pos.X(), 0, pos.Z()}
	}
	body := s.bodies[0]
	normal := game.SafeNormalize(pos.Sub(body.Center), mgl64.Vec3{0, 1, 0})
	return body.Center.Add(normal.Mul(body.Radius))
}

func (s *Simulator) debugf(format string, args ...interface{}) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

func vec3(a [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{a[0], a[1], a[2]}
}
