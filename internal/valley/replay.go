package valley

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// Sentinel errors for path replay.
var (
	ErrBadPath     = errors.New("valley: invalid path")
	ErrOutOfBounds = errors.New("valley: expedition left the valley")
	ErrCollision   = errors.New("valley: expedition hit a blizzard")
)

// Replay checks that path, one position per minute starting at minute 0, leads
// from the entrance to the exit. Blizzards are moved independently of any
// forecast.
func Replay(f *Field, path []Position) error {
	if len(path) == 0 || path[0] != f.Start {
		return fmt.Errorf("%w: does not start at %s", ErrBadPath, f.Start)
	}

	blizzards := f.Blizzards()
	for minute := 1; minute < len(path); minute++ {
		blizzards = Advance(f, blizzards)
		prev, p := path[minute-1], path[minute]
		if prev.Distance(p) > 1 {
			return fmt.Errorf("%w: jump from %s to %s at minute %d", ErrBadPath, prev, p, minute)
		}
		if !f.Passable(p) {
			return fmt.Errorf("%w: %s at minute %d", ErrOutOfBounds, p, minute)
		}
		if slices.IndexFunc(blizzards, func(b Blizzard) bool { return b.Position == p }) >= 0 {
			return fmt.Errorf("%w: %s at minute %d", ErrCollision, p, minute)
		}
	}

	if last := path[len(path)-1]; last != f.Goal {
		return fmt.Errorf("%w: ends at %s instead of %s", ErrBadPath, last, f.Goal)
	}
	return nil
}
