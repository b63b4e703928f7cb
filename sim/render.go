package sim

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/skybreak-gg/skybreak/game"
)

// Pose is a float32 position + orientation pair for mesh placement.
type Pose struct {
	Pos         mgl32.Vec3
	Orientation mgl32.Quat
}

type DronePose struct {
	ID int64
	Pose
}

type ExplosionSprite struct {
	Pos   mgl32.Vec3
	Scale float32
	Alpha float32
}

type SparkSprite struct {
	Pos   mgl32.Vec3
	Alpha float32
}

// BeamSprite carries everything a renderer needs to draw one tractor beam:
// the visibility flag, the raise progress and the interpolated lump
// position between the surface and the drone.
type BeamSprite struct {
	DroneID  int64
	Visible  bool
	Progress float32
	Surface  mgl32.Vec3
	Lump     mgl32.Vec3
}

// RenderState is a snapshot of every live entity's pose for one frame. The
// renderer reads it; the core never issues draw calls.
type RenderState struct {
	Player      Pose
	Drones      []DronePose
	Projectiles []mgl32.Vec3
	Explosions  []ExplosionSprite
	Sparks      []SparkSprite
	Beams       []BeamSprite
}

// Render builds the frame snapshot from the current simulation state.
func (s *Simulator) Render() RenderState {
	rs := RenderState{
		Player: Pose{
			Pos:         game.Vec64To32(s.player.Pos),
			Orientation: game.Quat64To32(s.player.Orientation),
		},
		Drones:      make([]DronePose, 0, s.drones.Len()),
		Projectiles: make([]mgl32.Vec3, 0, len(s.projectiles)),
		Explosions:  make([]ExplosionSprite, 0, len(s.explosions)),
		Sparks:      make([]SparkSprite, 0, len(s.sparks)),
	}

	for el := s.drones.Front(); el != nil; el = el.Next() {
		d := el.Value
		rs.Drones = append(rs.Drones, DronePose{
			ID: d.ID,
			Pose: Pose{
				Pos:         game.Vec64To32(d.Pos),
				Orientation: game.Quat64To32(d.Orientation),
			},
		})
		if d.Beam == nil {
			continue
		}
		surface := s.surfacePointToward(d.Pos)
		rs.Beams = append(rs.Beams, BeamSprite{
			DroneID:  d.ID,
			Visible:  d.Beam.Visible,
			Progress: float32(d.Beam.Progress),
			Surface:  game.Vec64To32(surface),
			Lump:     game.Vec64To32(d.Beam.LumpPosition(surface, d.Pos)),
		})
	}

	for _, p := range s.projectiles {
		rs.Projectiles = append(rs.Projectiles, game.Vec64To32(p.Pos))
	}
	for _, e := range s.explosions {
		rs.Explosions = append(rs.Explosions, ExplosionSprite{
			Pos:   game.Vec64To32(e.Pos),
			Scale: e.Scale,
			Alpha: e.Alpha,
		})
	}
	for _, sp := range s.sparks {
		rs.Sparks = append(rs.Sparks, SparkSprite{
			Pos:   game.Vec64To32(sp.Pos),
			Alpha: sp.Alpha,
		})
	}

	return rs
}
