package valley

import (
	"context"
	"log/slog"

	"github.com/go-bnb/puzzlesolver/internal/packed"
	"github.com/go-bnb/puzzlesolver/internal/partmap"
	"github.com/go-bnb/puzzlesolver/internal/solver"
	"golang.org/x/exp/slices"
)

// DefaultMaxMinutes is the initial best time. Only routes strictly faster
// than this are reported.
const DefaultMaxMinutes = 1000

const numPart = 64

// Option configures a Solver.
type Option func(*Solver)

// WithMaxMinutes sets the initial best time.
func WithMaxMinutes(minutes int) Option { return func(s *Solver) { s.maxMinutes = minutes } }

// WithWorkers sets the number of goroutines exploring top-level moves.
// Values <= 0 use one goroutine per CPU.
func WithWorkers(workers int) Option { return func(s *Solver) { s.workers = workers } }

// WithMemoize enables or disables the visited cache keyed by expedition
// position and blizzard phase.
func WithMemoize(memoize bool) Option { return func(s *Solver) { s.memoize = memoize } }

// WithLogger sets the logger for improving results.
func WithLogger(logger *slog.Logger) Option { return func(s *Solver) { s.logger = logger } }

// Solver searches the fastest route through a field.
type Solver struct {
	field      *Field
	forecast   *Forecast
	maxMinutes int
	workers    int
	memoize    bool
	logger     *slog.Logger
}

// New returns a solver for f.
func New(f *Field, opts ...Option) *Solver {
	s := &Solver{
		field:      f,
		maxMinutes: DefaultMaxMinutes,
		workers:    1,
		memoize:    true,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.forecast = NewForecast(f, s.maxMinutes)
	return s
}

// Forecast returns the blizzard forecast used by the solver.
func (s *Solver) Forecast() *Forecast { return s.forecast }

// Result is the outcome of a search.
type Result struct {
	// Minutes is the fastest time found, or the initial best time if no
	// faster route exists.
	Minutes int
	Found   bool
	// Path holds the expedition position for every minute from 0 to Minutes.
	Path  []Position
	Stats solver.StatsSnapshot
}

type search struct {
	*Solver
	best    *solver.Incumbent[[]Position]
	visited *partmap.Map[packed.Cell]
	stats   solver.Stats
}

// Search runs the branch-and-bound search. Each top-level move is explored as
// an own branch; branches share the best time and the visited cache.
func (s *Solver) Search(ctx context.Context) (*Result, error) {
	sr := &search{
		Solver: s,
		best:   solver.NewIncumbent[[]Position](solver.Minimize, s.maxMinutes),
	}
	if s.memoize {
		sr.visited = partmap.New[packed.Cell](numPart)
	}

	initial := Initial(s.field, s.forecast)
	var branches []solver.Branch
	if sr.enter(initial, []Position{initial.Expedition}) {
		for _, state := range initial.Successors(s.field, s.forecast) {
			state := state
			branches = append(branches, func(ctx context.Context) error {
				return sr.iterate(ctx, state, []Position{initial.Expedition, state.Expedition})
			})
		}
	}

	if err := solver.Fanout(ctx, s.workers, branches); err != nil {
		return nil, err
	}

	minutes, path, found := sr.best.Load()
	result := &Result{Minutes: minutes, Found: found, Path: path, Stats: sr.stats.Snapshot()}
	s.logger.Debug("search finished", "minutes", result.Minutes, "found", result.Found, "stats", result.Stats)
	return result, nil
}

// enter checks state against the bound, records finished states and reports
// whether the successors of state need to be explored.
func (sr *search) enter(state State, path []Position) bool {
	sr.stats.Nodes.Add(1)

	// bound worse
	if state.Bound(sr.field) > sr.best.Score() {
		sr.stats.Pruned.Add(1)
		return false
	}

	if state.Finished(sr.field) {
		prev, ok := sr.best.Offer(state.Minute, func() []Position { return slices.Clone(path) })
		if ok {
			sr.stats.Improved.Add(1)
			sr.logger.Info("best state improved", "minutes", state.Minute, "previous", prev, "expedition", state.Expedition)
		}
		return false
	}

	if sr.visited != nil {
		key := packed.PackCell(state.Expedition.X, state.Expedition.Y, sr.forecast.Phase(state.Minute))
		if !sr.visited.StoreMin(key, state.Minute) {
			sr.stats.Pruned.Add(1)
			return false
		}
	}
	return true
}

func (sr *search) iterate(ctx context.Context, state State, path []Position) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !sr.enter(state, path) {
		return nil
	}
	for _, next := range state.Successors(sr.field, sr.forecast) {
		if err := sr.iterate(ctx, next, append(path, next.Expedition)); err != nil {
			return err
		}
	}
	return nil
}
