// Package buf contains little-endian helpers for the packed string-table region.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// PutU16LE writes v at b[off:]. Out-of-range writes are dropped.
func PutU16LE(b []byte, off int, v uint16) {
	if dst, ok := Slice(b, off, 2); ok {
		binary.LittleEndian.PutUint16(dst, v)
	}
}

// PutU32LE writes v at b[off:]. Out-of-range writes are dropped.
func PutU32LE(b []byte, off int, v uint32) {
	if dst, ok := Slice(b, off, 4); ok {
		binary.LittleEndian.PutUint32(dst, v)
	}
}

// PutU64LE writes v at b[off:]. Out-of-range writes are dropped.
func PutU64LE(b []byte, off int, v uint64) {
	if dst, ok := Slice(b, off, 8); ok {
		binary.LittleEndian.PutUint64(dst, v)
	}
}
