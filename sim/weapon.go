package sim

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/skybreak-gg/skybreak/event"
	"github.com/skybreak-gg/skybreak/game"
)

// Projectile travels along a fixed direction until it expires or hits a
// drone. First hit wins; a projectile never damages two drones.
type Projectile struct {
	Pos mgl64.Vec3
	Dir mgl64.Vec3
	TTL float64
}

func (s *Simulator) simulateWeapon(input ControlState, dt float64) {
	if input.Fire {
		s.tryFire()
	}
	s.advanceProjectiles(dt)
}

// tryFire honors a fire request only after the cooldown has passed.
func (s *Simulator) tryFire() {
	nowMs := float64(s.clockMs())
	if nowMs-s.lastShotMs <= s.weapon.FireRateMs {
		return
	}
	s.lastShotMs = nowMs

	muzzle := s.player.Pos.Add(s.player.Orientation.Rotate(s.weapon.MuzzleOffset))
	s.projectiles = append(s.projectiles, &Projectile{
		Pos: muzzle,
		Dir: s.player.Forward(),
		TTL: s.weapon.ProjectileTTL,
	})
}

// advanceProjectiles iterates in reverse so expired or hitting projectiles
// can be removed in place.
func (s *Simulator) advanceProjectiles(dt float64) {
	for i := len(s.projectiles) - 1; i >= 0; i-- {
		p := s.projectiles[i]
		p.Pos = p.Pos.Add(p.Dir.Mul(s.weapon.ProjectileSpeed * dt))
		p.TTL -= dt
		if p.TTL <= 0 {
			s.removeProjectile(i)
			continue
		}
		if s.testProjectile(p) {
			s.removeProjectile(i)
		}
	}
}

// testProjectile checks the projectile against every live drone and applies
// damage on the first hit.
func (s *Simulator) testProjectile(p *Projectile) bool {
	for el := s.drones.Front(); el != nil; el = el.Next() {
		d := el.Value
		if d.Ellipsoid.Radius <= 0 {
			// No collision volume.
			continue
		}
		local := d.Orientation.Inverse().Rotate(p.Pos.Sub(d.Pos))
		if !d.Ellipsoid.Contains(local) {
			continue
		}
		s.damageDrone(d)
		return true
	}
	return false
}

func (s *Simulator) damageDrone(d *DroneState) {
	d.Health--
	pos := game.Vec64To32(d.Pos)

	if d.Health > 0 {
		s.events.Push(event.DroneHitEvent{
			NopEvent: event.NopEvent{EvTime: s.clockMs()},
			DroneID:  d.ID,
			Pos:      pos,
		})
		s.spawnSparks(d.Pos)
		return
	}

	s.events.Push(event.DroneDestroyedEvent{
		NopEvent: event.NopEvent{EvTime: s.clockMs()},
		DroneID:  d.ID,
		Pos:      pos,
	})
	s.spawnExplosion(d.Pos)
	s.spawnSparks(d.Pos)
	s.removeDrone(d.ID)
	s.destroyed++
	s.debugf("drone %d destroyed, %d remaining", d.ID, s.drones.Len())
}

func (s *Simulator) removeProjectile(i int) {
	s.projectiles = append(s.projectiles[:i], s.projectiles[i+1:]...)
}
