package event

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

func writeLInt64(buf *bytes.Buffer, v int64) {
	binary.Write(buf, binary.LittleEndian, v)
}

func readLInt64(buf *bytes.Buffer) int64 {
	return int64(binary.LittleEndian.Uint64(buf.Next(8)))
}

func writeLVec32(buf *bytes.Buffer, v mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		binary.Write(buf, binary.LittleEndian, math.Float32bits(v[i]))
	}
}

func readLVec32(buf *bytes.Buffer) mgl32.Vec3 {
	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf.Next(4)))
	}
	return v
}
