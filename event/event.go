package event

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/skybreak-gg/skybreak/serror"
)

const EventsVersion = "1"

// Event is a simulation event drained by the host after each tick. Events
// carry the simulation time in milliseconds and encode to a little-endian
// frame so hosts can append them to a replay stream.
type Event interface {
	ID() byte
	Encode() []byte

	Time() int64
}

type NopEvent struct {
	EvTime int64
}

func (n NopEvent) Time() int64 {
	return n.EvTime
}

func WriteEventHeader(ev Event, buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, uint64(ev.ID()))
	binary.Write(buf, binary.LittleEndian, uint64(ev.Time()))
}

// DecodeEvents decodes a replay stream back into events.
func DecodeEvents(dat []byte) ([]Event, error) {
	buf := bytes.NewBuffer(dat)
	events := []Event{}
	for buf.Len() > 0 {
		ev, err := DecodeEvent(buf)
		if err != nil {
			return events, serror.New("error decoding event: %v", err)
		}
		events = append(events, ev)
	}

	return events, nil
}

// DecodeEvent decodes a single event frame from the buffer.
func DecodeEvent(buf *bytes.Buffer) (Event, error) {
	if buf.Len() < 16 {
		return nil, serror.New("truncated event header")
	}
	id := byte(binary.LittleEndian.Uint64(buf.Next(8)))
	t := int64(binary.LittleEndian.Uint64(buf.Next(8)))

	switch id {
	case EventIDDroneHit:
		ev := DroneHitEvent{}
		ev.EvTime = t
		ev.DroneID = readLInt64(buf)
		ev.Pos = readLVec32(buf)
		return ev, nil
	case EventIDDroneDestroyed:
		ev := DroneDestroyedEvent{}
		ev.EvTime = t
		ev.DroneID = readLInt64(buf)
		ev.Pos = readLVec32(buf)
		return ev, nil
	case EventIDVictory:
		ev := VictoryEvent{}
		ev.EvTime = t
		ev.FinalTime = math.Float64frombits(binary.LittleEndian.Uint64(buf.Next(8)))
		flag, err := buf.ReadByte()
		if err != nil {
			return nil, serror.New("error reading best flag from VictoryEvent: %v", err)
		}
		ev.NewBest = flag == 1
		return ev, nil
	default:
		return nil, serror.New("unknown event: %d", id)
	}
}

const (
	_ = iota
	EventIDDroneHit
	EventIDDroneDestroyed
	EventIDVictory
)
