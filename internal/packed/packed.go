// Package packed provides compact comparable keys for search states.
package packed

import (
	"encoding/binary"
	"hash/maphash"
)

// Packable is the constraint for keys stored in a partitioned map.
type Packable interface {
	comparable
	Hash(seed maphash.Seed) uint64
}

const (
	coordBits = 16
	coordMask = 1<<coordBits - 1
)

// Cell is a compressed representation of a grid position and a cycle phase.
//
//	bits  0..15: x
//	bits 16..31: y
//	bits 32..63: phase
type Cell uint64

// PackCell returns the packed representation of x, y and phase.
// x and y must fit into 16 bits.
func PackCell(x, y, phase int) Cell {
	return Cell(uint64(x)&coordMask | (uint64(y)&coordMask)<<coordBits | uint64(uint32(phase))<<(2*coordBits))
}

// Unpack returns x, y and phase of c.
func (c Cell) Unpack() (x, y, phase int) {
	return int(c & coordMask), int((c >> coordBits) & coordMask), int(uint32(c >> (2 * coordBits)))
}

// Hash returns a hash value of c.
func (c Cell) Hash(seed maphash.Seed) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(c))
	return maphash.Bytes(seed, b[:])
}
