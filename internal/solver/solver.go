// Package solver provides the building blocks shared by the branch-and-bound
// searches: an incumbent best solution, search statistics and the fan-out of
// top-level branches onto worker goroutines.
package solver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NumWorker returns the number of workers to use for a configured value.
// Values <= 0 select one worker per CPU.
func NumWorker(workers int) int {
	if workers <= 0 {
		return runtime.NumCPU()
	}
	return workers
}

// Branch explores one subtree of a search.
type Branch func(ctx context.Context) error

// Fanout runs branches on at most workers goroutines and returns the first
// error. With a single worker the branches run in order on the calling
// goroutine, which keeps the exploration order of a plain depth-first search.
func Fanout(ctx context.Context, workers int, branches []Branch) error {
	if NumWorker(workers) == 1 {
		for _, branch := range branches {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := branch(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(NumWorker(workers))
	for _, branch := range branches {
		branch := branch
		g.Go(func() error { return branch(gCtx) })
	}
	return g.Wait()
}
