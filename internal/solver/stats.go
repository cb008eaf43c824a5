package solver

import (
	"log/slog"
	"sync/atomic"
)

// Stats counts search events. All counters are safe for concurrent use.
type Stats struct {
	Nodes    atomic.Int64 // states visited
	Pruned   atomic.Int64 // states cut by the bound or a cache
	Improved atomic.Int64 // incumbent replacements
	Skipped  atomic.Int64 // branches that could not be generated
}

// StatsSnapshot is a point in time copy of Stats.
type StatsSnapshot struct {
	Nodes, Pruned, Improved, Skipped int64
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Nodes:    s.Nodes.Load(),
		Pruned:   s.Pruned.Load(),
		Improved: s.Improved.Load(),
		Skipped:  s.Skipped.Load(),
	}
}

// LogValue implements slog.LogValuer.
func (s StatsSnapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("nodes", s.Nodes),
		slog.Int64("pruned", s.Pruned),
		slog.Int64("improved", s.Improved),
		slog.Int64("skipped", s.Skipped),
	)
}
