package level

import (
	"github.com/zeebo/xxh3"

	"github.com/skybreak-gg/skybreak/serror"
)

// Movement model tags accepted in level files.
const (
	ModelOrbit      = "orbit"
	ModelPatrol     = "patrol"
	ModelRandom     = "random"
	ModelStationary = "stationary"
)

// Victory condition kinds accepted in level files.
const (
	VictoryDestroyAll   = "destroy-all"
	VictoryDestroyCount = "destroy-count"
	VictorySurviveTime  = "survive-time"
)

// Body is an immutable environment collision sphere.
type Body struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

// PlayerConfig holds the ship's physical constants. Damping factors are
// expressed per 60Hz frame.
type PlayerConfig struct {
	Start          [3]float64 `json:"start"`
	MaxSpeed       float64    `json:"maxSpeed"`
	ThrustAccel    float64    `json:"thrustAccel"`
	AngularAccel   float64    `json:"angularAccel"`
	LinearDamping  float64    `json:"linearDamping"`
	AngularDamping float64    `json:"angularDamping"`
	Radius         float64    `json:"radius"`
}

// WeaponConfig holds projectile spawn and travel constants.
type WeaponConfig struct {
	FireRateMs      float64    `json:"fireRateMs"`
	ProjectileSpeed float64    `json:"projectileSpeed"`
	ProjectileTTL   float64    `json:"projectileTtl"`
	MuzzleOffset    [3]float64 `json:"muzzleOffset"`
}

// Area is a spherical region drones sample targets from.
type Area struct {
	Center [3]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

// BeamConfig holds the tractor beam cycle timings in seconds.
type BeamConfig struct {
	DelayMin float64 `json:"delayMin"`
	DelayMax float64 `json:"delayMax"`
	Duration float64 `json:"duration"`
}

// DroneConfig describes the level's drone batch. Fields beyond Count,
// Health, Model and Bounds apply only to the model they belong to.
type DroneConfig struct {
	Count  int    `json:"count"`
	Health int32  `json:"health"`
	Model  string `json:"model"`
	Speed  float64 `json:"speed"`

	// Bounds are the drones' local-space visual extents, the source of the
	// collision ellipsoid computed at spawn.
	Bounds [2][3]float64 `json:"bounds"`

	// Orbit model.
	Altitude float64 `json:"altitude"`
	TiltMax  float64 `json:"tiltMax"`
	MaxSpeed float64 `json:"maxSpeed"`

	// Patrol and random-area models.
	Area                    Area    `json:"area"`
	DirectionChangeInterval float64 `json:"directionChangeInterval"`

	// Stationary model; cycled by index when shorter than Count.
	Positions [][3]float64 `json:"positions"`

	LookAt                *[3]float64 `json:"lookAt"`
	FaceMovementDirection bool        `json:"faceMovementDirection"`

	Beam *BeamConfig `json:"beam"`
}

// VictoryConfig is the level's declarative win condition.
type VictoryConfig struct {
	Kind    string  `json:"kind"`
	Count   int     `json:"count"`
	Seconds float64 `json:"seconds"`
}

// Config is an immutable level record. The simulation never mutates it.
type Config struct {
	ID      string        `json:"id"`
	Bodies  []Body        `json:"bodies"`
	Player  PlayerConfig  `json:"player"`
	Weapon  WeaponConfig  `json:"weapon"`
	Drones  DroneConfig   `json:"drones"`
	Victory VictoryConfig `json:"victory"`
}

// Seed derives the level's deterministic RNG seed from its id.
func (c *Config) Seed() uint64 {
	return xxh3.HashString(c.ID)
}

// Validate rejects configurations the tick loop is not expected to defend
// against, such as zero-radius bodies or sample areas.
func (c *Config) Validate() error {
	if c.ID == "" {
		return serror.New("level id must not be empty")
	}
	for i, b := range c.Bodies {
		if b.Radius <= 0 {
			return serror.New("body %d: radius must be positive, got %v", i, b.Radius)
		}
	}
	if err := c.validatePlayer(); err != nil {
		return err
	}
	if err := c.validateWeapon(); err != nil {
		return err
	}
	if err := c.validateDrones(); err != nil {
		return err
	}
	return c.validateVictory()
}

func (c *Config) validatePlayer() error {
	p := c.Player
	if p.MaxSpeed <= 0 {
		return serror.New("player: maxSpeed must be positive, got %v", p.MaxSpeed)
	}
	if p.ThrustAccel <= 0 || p.AngularAccel <= 0 {
		return serror.New("player: thrust and angular acceleration must be positive")
	}
	if p.LinearDamping <= 0 || p.LinearDamping > 1 {
		return serror.New("player: linearDamping must be in (0, 1], got %v", p.LinearDamping)
	}
	if p.AngularDamping <= 0 || p.AngularDamping > 1 {
		return serror.New("player: angularDamping must be in (0, 1], got %v", p.AngularDamping)
	}
	if p.Radius <= 0 {
		return serror.New("player: radius must be positive, got %v", p.Radius)
	}
	return nil
}

func (c *Config) validateWeapon() error {
	w := c.Weapon
	if w.FireRateMs < 0 {
		return serror.New("weapon: fireRateMs must not be negative, got %v", w.FireRateMs)
	}
	if w.ProjectileSpeed <= 0 {
		return serror.New("weapon: projectileSpeed must be positive, got %v", w.ProjectileSpeed)
	}
	if w.ProjectileTTL <= 0 {
		return serror.New("weapon: projectileTtl must be positive, got %v", w.ProjectileTTL)
	}
	return nil
}

func (c *Config) validateDrones() error {
	d := c.Drones
	if d.Count < 0 {
		return serror.New("drones: count must not be negative, got %d", d.Count)
	}
	if d.Count == 0 {
		return nil
	}
	if d.Health <= 0 {
		return serror.New("drones: health must be positive, got %d", d.Health)
	}
	switch d.Model {
	case ModelOrbit:
		if d.Speed <= 0 {
			return serror.New("drones: orbit speed must be positive, got %v", d.Speed)
		}
		if d.MaxSpeed <= 0 {
			return serror.New("drones: orbit maxSpeed must be positive, got %v", d.MaxSpeed)
		}
		if d.Altitude < 0 {
			return serror.New("drones: orbit altitude must not be negative, got %v", d.Altitude)
		}
	case ModelPatrol:
		if d.Speed <= 0 {
			return serror.New("drones: patrol speed must be positive, got %v", d.Speed)
		}
		if d.Area.Radius <= 0 {
			return serror.New("drones: patrol area radius must be positive, got %v", d.Area.Radius)
		}
	case ModelRandom:
		if d.Speed <= 0 {
			return serror.New("drones: random speed must be positive, got %v", d.Speed)
		}
		if d.Area.Radius <= 0 {
			return serror.New("drones: random area radius must be positive, got %v", d.Area.Radius)
		}
		if d.DirectionChangeInterval <= 0 {
			return serror.New("drones: directionChangeInterval must be positive, got %v", d.DirectionChangeInterval)
		}
	case ModelStationary:
		if len(d.Positions) == 0 {
			return serror.New("drones: stationary model requires at least one position")
		}
	default:
		return serror.New("drones: unknown movement model %q", d.Model)
	}
	if b := d.Beam; b != nil {
		if b.DelayMin < 0 || b.DelayMax < b.DelayMin {
			return serror.New("drones: beam delays must satisfy 0 <= delayMin <= delayMax")
		}
		if b.Duration <= 0 {
			return serror.New("drones: beam duration must be positive, got %v", b.Duration)
		}
	}
	return nil
}

func (c *Config) validateVictory() error {
	v := c.Victory
	switch v.Kind {
	case VictoryDestroyAll:
	case VictoryDestroyCount:
		if v.Count <= 0 {
			return serror.New("victory: destroy-count requires a positive count, got %d", v.Count)
		}
	case VictorySurviveTime:
		if v.Seconds <= 0 {
			return serror.New("victory: survive-time requires positive seconds, got %v", v.Seconds)
		}
	default:
		return serror.New("victory: unknown kind %q", v.Kind)
	}
	return nil
}
