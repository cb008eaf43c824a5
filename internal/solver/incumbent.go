package solver

import (
	"sync/atomic"

	"github.com/go-bnb/puzzlesolver/internal/spinlock"
)

// Goal selects whether lower or higher scores are better.
type Goal int

// Goals.
const (
	Minimize Goal = iota
	Maximize
)

// Better reports whether score a is strictly better than score b.
func (g Goal) Better(a, b int) bool {
	if g == Maximize {
		return a > b
	}
	return a < b
}

// Incumbent holds the best solution found so far.
//
// The score can be read without locking for pruning; it may be stale but is
// always a score that was actually offered (or the initial sentinel).
// Replacements are serialized by a spinlock so that score and payload always
// belong together.
type Incumbent[T any] struct {
	goal    Goal
	score   atomic.Int64
	mu      spinlock.Mutex
	payload T
	found   bool
}

// NewIncumbent returns an incumbent with the sentinel score initial.
func NewIncumbent[T any](goal Goal, initial int) *Incumbent[T] {
	in := &Incumbent[T]{goal: goal}
	in.score.Store(int64(initial))
	return in
}

// Score returns the current best score.
func (in *Incumbent[T]) Score() int { return int(in.score.Load()) }

// Offer replaces the incumbent if score is strictly better. payload is only
// called on replacement. It returns the previous score and whether the
// incumbent was replaced.
func (in *Incumbent[T]) Offer(score int, payload func() T) (int, bool) {
	// fast path without lock
	if !in.goal.Better(score, in.Score()) {
		return in.Score(), false
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	prev := in.Score()
	if !in.goal.Better(score, prev) {
		return prev, false
	}
	in.payload = payload()
	in.found = true
	in.score.Store(int64(score))
	return prev, true
}

// Load returns the best score, its payload and whether any offer was accepted.
func (in *Incumbent[T]) Load() (int, T, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.Score(), in.payload, in.found
}
