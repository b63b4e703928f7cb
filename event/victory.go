package event

import (
	"bytes"
	"encoding/binary"
	"math"
)

// VictoryEvent is emitted once when the level's win condition is met.
type VictoryEvent struct {
	NopEvent

	// FinalTime is the elapsed simulation time in seconds.
	FinalTime float64
	// NewBest is true if FinalTime beat the previously recorded best.
	NewBest bool
}

func (VictoryEvent) ID() byte {
	return EventIDVictory
}

func (ev VictoryEvent) Encode() []byte {
	buf := &bytes.Buffer{}
	WriteEventHeader(ev, buf)
	binary.Write(buf, binary.LittleEndian, math.Float64bits(ev.FinalTime))
	if ev.NewBest {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}
