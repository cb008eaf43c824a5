// Package geode finds the most geodes a robot factory blueprint can crack
// within a time horizon.
//
// Every minute each robot collects one unit of its resource. The factory may
// build one robot at a time, paid from the stockpile. The optimizer explores
// build orders depth-first (geode, obsidian, clay and ore robots first, idling
// last) and prunes states whose projected geodes fall behind the best state
// seen at the same minute.
package geode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/go-bnb/puzzlesolver/internal/solver"
)

// DefaultMinutes is the default time horizon.
const DefaultMinutes = 24

// ErrInvalidHorizon is returned for a negative time horizon.
var ErrInvalidHorizon = errors.New("geode: time horizon must not be negative")

var buildOrder = [...]Kind{Geode, Obsidian, Clay, Ore}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithMinutes sets the time horizon.
func WithMinutes(minutes int) Option { return func(o *Optimizer) { o.minutes = minutes } }

// WithWorkers sets the number of goroutines exploring the first decisions.
// Values <= 0 use one goroutine per CPU.
func WithWorkers(workers int) Option { return func(o *Optimizer) { o.workers = workers } }

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option { return func(o *Optimizer) { o.logger = logger } }

// Optimizer searches the best build order for one blueprint.
type Optimizer struct {
	blueprint Blueprint
	minutes   int
	workers   int
	logger    *slog.Logger
}

// New returns an optimizer for bp.
func New(bp Blueprint, opts ...Option) *Optimizer {
	o := &Optimizer{
		blueprint: bp,
		minutes:   DefaultMinutes,
		workers:   1,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Result is the outcome of an optimization.
type Result struct {
	Geodes int
	// Best is the state with the most geodes after the last minute.
	Best  State
	Stats solver.StatsSnapshot
}

type run struct {
	*Optimizer
	bests  *Bests
	final  *solver.Incumbent[State]
	warned [NumKind]atomic.Bool
	stats  solver.Stats
}

// Run explores the build orders. The first decisions are explored as own
// branches sharing the per minute bests.
func (o *Optimizer) Run(ctx context.Context) (*Result, error) {
	if o.minutes < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHorizon, o.minutes)
	}

	r := &run{
		Optimizer: o,
		bests:     NewBests(o.minutes),
		final:     solver.NewIncumbent[State](solver.Maximize, -1),
	}

	initial := InitialState()
	var branches []solver.Branch
	if r.enter(initial) {
		for _, state := range r.successors(initial) {
			state := state
			branches = append(branches, func(ctx context.Context) error { return r.iterate(ctx, state) })
		}
	}

	if err := solver.Fanout(ctx, o.workers, branches); err != nil {
		return nil, err
	}

	geodes, best, found := r.final.Load()
	if !found {
		geodes = 0
	}
	result := &Result{Geodes: geodes, Best: best, Stats: r.stats.Snapshot()}
	o.logger.Debug("optimization finished", "blueprint", o.blueprint.ID, "geodes", result.Geodes, "stats", result.Stats)
	return result, nil
}

// enter offers state to the per minute bests, records finished states and
// reports whether the successors of state need to be explored.
func (r *run) enter(state State) bool {
	r.stats.Nodes.Add(1)

	if !r.bests.Offer(state) {
		r.stats.Pruned.Add(1)
		return false
	}

	if state.Minute > r.minutes {
		if prev, ok := r.final.Offer(state.Resources[Geode], func() State { return state }); ok {
			r.stats.Improved.Add(1)
			r.logger.Debug("best state improved", "geodes", state.Resources[Geode], "previous", prev, "state", state)
		}
		return false
	}
	return true
}

func (r *run) successors(state State) []State {
	states := make([]State, 0, len(buildOrder)+1)
	for _, kind := range buildOrder {
		if pre, ok := kind.Prerequisite(); ok && state.Production[pre] == 0 {
			continue
		}
		next, ok := state.Build(kind, r.blueprint.Cost(kind))
		if !ok || next.Minute > r.minutes+1 {
			r.noTime(kind, state)
			continue
		}
		states = append(states, next)
	}
	return append(states, state.Idle())
}

func (r *run) noTime(kind Kind, state State) {
	r.stats.Skipped.Add(1)
	if r.warned[kind].CompareAndSwap(false, true) {
		r.logger.Warn("no time to build robot", "robot", kind, "minute", state.Minute, "blueprint", r.blueprint.ID)
	}
}

func (r *run) iterate(ctx context.Context, state State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.enter(state) {
		return nil
	}
	for _, next := range r.successors(state) {
		if err := r.iterate(ctx, next); err != nil {
			return err
		}
	}
	return nil
}
