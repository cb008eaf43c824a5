// Package valley finds the fastest way through a walled valley of moving
// blizzards.
//
// The valley is read once into an immutable Field. Blizzards move one cell per
// minute and wrap around on the interior rectangle, so their positions repeat
// with a period of lcm(width-2, height-2) minutes. The expedition starts in the
// single opening of the top wall and has to reach the opening in the bottom
// wall at (width-2, height-1).
package valley

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// Sentinel errors for field parsing.
var (
	ErrEmptyField     = errors.New("valley: field has no rows")
	ErrNonRectangular = errors.New("valley: all rows must have the same length")
	ErrTooSmall       = errors.New("valley: field must be at least 3 wide and 2 high")
	ErrUnknownCell    = errors.New("valley: unknown cell")
	ErrNoEntrance     = errors.New("valley: no opening in the top wall")
	ErrNoExit         = errors.New("valley: no opening at the bottom exit")
	ErrBlizzardOnWall = errors.New("valley: blizzard outside of the interior")
)

const (
	wall = '#'
	open = '.'
)

// Position is a cell coordinate. Y grows downwards.
type Position struct {
	X, Y int
}

// Add returns p moved by offset q.
func (p Position) Add(q Position) Position { return Position{X: p.X + q.X, Y: p.Y + q.Y} }

// Distance returns the taxicab distance between p and q.
func (p Position) Distance(q Position) int { return abs(p.X-q.X) + abs(p.Y-q.Y) }

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Field is the static valley. It is immutable once built.
type Field struct {
	Width, Height int
	Start, Goal   Position
	blizzards     []Blizzard
}

// ParseField reads a field from r. Blank lines are ignored.
func ParseField(r io.Reader) (*Field, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("valley: read field: %w", err)
	}
	return NewField(rows)
}

// NewField builds a field from its text rows.
func NewField(rows []string) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyField
	}
	width, height := len(rows[0]), len(rows)
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}
	if width < 3 || height < 2 {
		return nil, ErrTooSmall
	}

	f := &Field{Width: width, Height: height}

	for y, row := range rows {
		for x := 0; x < width; x++ {
			c := row[x]
			switch c {
			case wall, open:
				continue
			}
			d, ok := directionIn[c]
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrUnknownCell, c, x, y)
			}
			p := Position{X: x, Y: y}
			if !f.interior(p) {
				return nil, fmt.Errorf("%w at %s", ErrBlizzardOnWall, p)
			}
			f.blizzards = append(f.blizzards, Blizzard{Position: p, Direction: d})
		}
	}

	x := strings.IndexByte(rows[0], open)
	if x < 0 {
		return nil, ErrNoEntrance
	}
	f.Start = Position{X: x, Y: 0}

	f.Goal = Position{X: width - 2, Y: height - 1}
	if rows[f.Goal.Y][f.Goal.X] != open {
		return nil, fmt.Errorf("%w at %s", ErrNoExit, f.Goal)
	}
	return f, nil
}

// Blizzards returns the blizzards at minute 0.
func (f *Field) Blizzards() []Blizzard { return slices.Clone(f.blizzards) }

func (f *Field) interior(p Position) bool {
	return p.X > 0 && p.X < f.Width-1 && p.Y > 0 && p.Y < f.Height-1
}

// Passable reports whether the expedition may stand on p ignoring blizzards:
// the two openings and every interior cell.
func (f *Field) Passable(p Position) bool {
	return p == f.Start || p == f.Goal || f.interior(p)
}

// Period returns the number of minutes after which all blizzards are back at
// their initial positions.
func (f *Field) Period() int {
	w, h := f.Width-2, f.Height-2
	if w <= 0 || h <= 0 {
		return 1
	}
	return w / gcd(w, h) * h
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
