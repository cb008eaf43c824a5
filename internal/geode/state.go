package geode

import (
	"fmt"

	"github.com/go-bnb/puzzlesolver/internal/spinlock"
)

// State is a snapshot of the factory at the start of Minute (1-based): the
// resources collected so far and the robots owned per kind.
type State struct {
	Minute     int
	Resources  Resources
	Production Resources
}

// InitialState returns the state at the start of minute 1 with a single ore
// robot.
func InitialState() State {
	return State{Minute: 1, Production: Unit(Ore)}
}

// Projection returns the geodes at the end of the horizon if no further geode
// robot is built.
func (s State) Projection(horizon int) int {
	return s.Resources[Geode] + (horizon+1-s.Minute)*s.Production[Geode]
}

// Idle returns the state one minute later without building.
func (s State) Idle() State {
	return State{Minute: s.Minute + 1, Resources: s.Resources.Add(s.Production), Production: s.Production}
}

// Build returns the state right after a robot of kind was built for cost,
// waiting as long as production needs to cover the cost. It reports false if
// the robot can never be afforded with the current production.
func (s State) Build(kind Kind, cost Resources) (State, bool) {
	wait, ok := TimeToBuild(cost, s.Resources, s.Production)
	if !ok {
		return State{}, false
	}
	return State{
		Minute:     s.Minute + wait + 1,
		Resources:  s.Resources.Add(s.Production.Mul(wait + 1)).DiffSafe(cost),
		Production: s.Production.Add(Unit(kind)),
	}, true
}

func (s State) String() string {
	return fmt.Sprintf("{minute:%d resources:%s production:%s}", s.Minute, s.Resources, s.Production)
}

// TimeToBuild returns the minutes to wait until production covers what is
// missing from stock to pay cost. The division truncates, so the result can
// be one minute short when the need is not a multiple of the production. It
// reports false if a needed kind is not produced at all.
func TimeToBuild(cost, stock, production Resources) (int, bool) {
	need := cost.DiffSafe(stock)
	wait := 0
	for k := range cost {
		if cost[k] == 0 {
			continue
		}
		if production[k] == 0 {
			if need[k] > 0 {
				return 0, false
			}
			continue
		}
		wait = max(wait, need[k]/production[k])
	}
	return wait, true
}

// Bests keeps the best known state for every minute of the horizon.
type Bests struct {
	mu      spinlock.Mutex
	horizon int
	states  []State
}

// NewBests returns per minute bests for horizon minutes.
func NewBests(horizon int) *Bests {
	b := &Bests{horizon: horizon, states: make([]State, horizon+2)}
	for i := range b.states {
		b.states[i].Minute = i
	}
	return b
}

// Offer compares s with the best state of its minute. It reports false if the
// projection of s is lower than the one of the best state, so s is not worth
// exploring. Otherwise s replaces the best state if it has at least as many
// robots of every kind.
func (b *Bests) Offer(s State) bool {
	if s.Minute < 0 || s.Minute >= len(b.states) {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	best := &b.states[s.Minute]
	if s.Projection(b.horizon) < best.Projection(b.horizon) {
		return false
	}
	if s.Production.GreaterEq(best.Production) {
		*best = s
	}
	return true
}

// At returns the best state of minute.
func (b *Bests) At(minute int) State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.states[minute]
}
