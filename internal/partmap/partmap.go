// Package partmap provide a partitioned map.
package partmap

import (
	"hash/maphash"
	"sync"

	"github.com/go-bnb/puzzlesolver/internal/packed"
)

type part[K packed.Packable] struct {
	mu sync.Mutex
	m  map[K]int
}

// Map maps keys to the lowest value stored for them. Keys are spread over
// independently locked parts so that concurrent searches rarely contend.
type Map[K packed.Packable] struct {
	numPart uint64
	seed    maphash.Seed
	parts   []*part[K]
}

// New returns a map with numPart parts.
func New[K packed.Packable](numPart uint64) *Map[K] {
	if numPart == 0 {
		numPart = 1
	}
	pm := &Map[K]{
		numPart: numPart,
		seed:    maphash.MakeSeed(),
		parts:   make([]*part[K], numPart),
	}
	for i := range pm.parts {
		pm.parts[i] = &part[K]{m: make(map[K]int)}
	}
	return pm
}

func (pm *Map[K]) part(k K) *part[K] { return pm.parts[k.Hash(pm.seed)%pm.numPart] }

// Load returns the value stored for k.
func (pm *Map[K]) Load(k K) (int, bool) {
	part := pm.part(k)
	part.mu.Lock()
	v, ok := part.m[k]
	part.mu.Unlock()
	return v, ok
}

// StoreMin stores v for k if k is not present or v is lower than the stored
// value. It reports whether v was stored.
func (pm *Map[K]) StoreMin(k K, v int) bool {
	part := pm.part(k)
	part.mu.Lock()
	if old, ok := part.m[k]; ok && old <= v {
		part.mu.Unlock()
		return false
	}
	part.m[k] = v
	part.mu.Unlock()
	return true
}

// Size returns the number of keys.
func (pm *Map[K]) Size() int {
	size := 0
	for _, part := range pm.parts {
		part.mu.Lock()
		size += len(part.m)
		part.mu.Unlock()
	}
	return size
}

// NumPart returns the number of parts.
func (pm *Map[K]) NumPart() int { return int(pm.numPart) }
