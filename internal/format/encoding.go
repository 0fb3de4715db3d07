package format

import (
	"encoding/binary"
	"math"
)

// Little-endian put helpers. Callers guarantee b has room at off.

// PutU32 writes a uint32 value to the buffer at the specified offset.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// PutI32 writes an int32 value to the buffer at the specified offset.
func PutI32(b []byte, off int, v int32) {
	binary.LittleEndian.PutUint32(b[off:off+4], uint32(v))
}

// PutI64 writes an int64 value to the buffer at the specified offset.
func PutI64(b []byte, off int, v int64) {
	binary.LittleEndian.PutUint64(b[off:off+8], uint64(v))
}

// PutF32 writes a float32 value to the buffer at the specified offset.
func PutF32(b []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(b[off:off+4], math.Float32bits(v))
}

// PutVector3 writes three consecutive float32 values.
func PutVector3(b []byte, off int, v [3]float32) {
	PutF32(b, off, v[0])
	PutF32(b, off+4, v[1])
	PutF32(b, off+8, v[2])
}

// ReadI32 reads an int32 value from the buffer at the specified offset.
func ReadI32(b []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(b[off : off+4]))
}

// ReadI64 reads an int64 value from the buffer at the specified offset.
func ReadI64(b []byte, off int) int64 {
	return int64(binary.LittleEndian.Uint64(b[off : off+8]))
}

// ReadVector3 reads three consecutive float32 values.
func ReadVector3(b []byte, off int) [3]float32 {
	return [3]float32{
		math.Float32frombits(binary.LittleEndian.Uint32(b[off:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[off+4:])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[off+8:])),
	}
}
