package event

import (
	"bytes"

	"github.com/go-gl/mathgl/mgl32"
)

// DroneHitEvent is emitted when a projectile damages a drone without
// destroying it.
type DroneHitEvent struct {
	NopEvent

	DroneID int64
	Pos     mgl32.Vec3
}

func (DroneHitEvent) ID() byte {
	return EventIDDroneHit
}

func (ev DroneHitEvent) Encode() []byte {
	buf := &bytes.Buffer{}
	WriteEventHeader(ev, buf)
	writeLInt64(buf, ev.DroneID)
	writeLVec32(buf, ev.Pos)

	return buf.Bytes()
}

// DroneDestroyedEvent is emitted on the tick a drone's health first reaches
// zero. It fires exactly once per drone.
type DroneDestroyedEvent struct {
	NopEvent

	DroneID int64
	Pos     mgl32.Vec3
}

func (DroneDestroyedEvent) ID() byte {
	return EventIDDroneDestroyed
}

func (ev DroneDestroyedEvent) Encode() []byte {
	buf := &bytes.Buffer{}
	WriteEventHeader(ev, buf)
	writeLInt64(buf, ev.DroneID)
	writeLVec32(buf, ev.Pos)

	return buf.Bytes()
}
