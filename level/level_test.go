package level

import (
	"strings"
	"testing"
)

const sampleLevel = `
{
	// Orbital defense over the home moon.
	id: moon-1
	bodies: [
		{ center: [0, 0, 0], radius: 60 }
	]
	player: {
		start: [0, 0, 120]
		maxSpeed: 45
		thrustAccel: 30
		angularAccel: 2.4
		linearDamping: 0.99
		angularDamping: 0.92
		radius: 1.5
	}
	weapon: {
		fireRateMs: 200
		projectileSpeed: 120
		projectileTtl: 2
		muzzleOffset: [0, -0.5, 2]
	}
	drones: {
		count: 6
		health: 3
		model: orbit
		speed: 0.4
		maxSpeed: 25
		altitude: 20
		tiltMax: 0.6
		bounds: [[-2, -1, -2], [2, 1, 2]]
		lookAt: [0, 0, 0]
		beam: { delayMin: 1, delayMax: 5, duration: 2.5 }
	}
	victory: { kind: "destroy-all" }
}
`

func TestParseSampleLevel(t *testing.T) {
	cfg, err := Parse([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.ID != "moon-1" {
		t.Fatalf("unexpected id %q", cfg.ID)
	}
	if len(cfg.Bodies) != 1 || cfg.Bodies[0].Radius != 60 {
		t.Fatalf("unexpected bodies %+v", cfg.Bodies)
	}
	if cfg.Drones.Model != ModelOrbit || cfg.Drones.Count != 6 {
		t.Fatalf("unexpected drones %+v", cfg.Drones)
	}
	if cfg.Drones.Beam == nil || cfg.Drones.Beam.Duration != 2.5 {
		t.Fatalf("beam config not decoded: %+v", cfg.Drones.Beam)
	}
	if cfg.Drones.LookAt == nil {
		t.Fatalf("lookAt not decoded")
	}
	if cfg.Victory.Kind != VictoryDestroyAll {
		t.Fatalf("unexpected victory %+v", cfg.Victory)
	}
}

func TestValidateRejectsDegenerateConfigs(t *testing.T) {
	base := func() *Config {
		cfg, err := Parse([]byte(sampleLevel))
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		return cfg
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero body radius", func(c *Config) { c.Bodies[0].Radius = 0 }, "radius"},
		{"damping above one", func(c *Config) { c.Player.LinearDamping = 1.5 }, "linearDamping"},
		{"zero damping", func(c *Config) { c.Player.AngularDamping = 0 }, "angularDamping"},
		{"zero health", func(c *Config) { c.Drones.Health = 0 }, "health"},
		{"unknown model", func(c *Config) { c.Drones.Model = "swarm" }, "model"},
		{"inverted beam delays", func(c *Config) { c.Drones.Beam.DelayMax = 0.5 }, "beam"},
		{"unknown victory", func(c *Config) { c.Victory.Kind = "outlast" }, "victory"},
		{"zero projectile speed", func(c *Config) { c.Weapon.ProjectileSpeed = 0 }, "projectileSpeed"},
	}

	for _, tc := range cases {
		cfg := base()
		tc.mutate(cfg)
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestValidateModelRequirements(t *testing.T) {
	cfg, _ := Parse([]byte(sampleLevel))

	cfg.Drones.Model = ModelPatrol
	cfg.Drones.Area.Radius = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("patrol with zero area radius must be rejected")
	}

	cfg.Drones.Model = ModelStationary
	cfg.Drones.Positions = nil
	if err := cfg.Validate(); err == nil {
		t.Fatalf("stationary without positions must be rejected")
	}

	// Zero drones skips drone validation entirely.
	cfg.Drones.Count = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero drones should validate, got %v", err)
	}
}

func TestSeedDeterminism(t *testing.T) {
	a := &Config{ID: "moon-1"}
	b := &Config{ID: "moon-1"}
	c := &Config{ID: "moon-2"}
	if a.Seed() != b.Seed() {
		t.Fatalf("same id must derive the same seed")
	}
	if a.Seed() == c.Seed() {
		t.Fatalf("different ids should derive different seeds")
	}
}
