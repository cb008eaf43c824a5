package valley

// Direction is the fixed heading of a blizzard.
type Direction uint8

// Directions.
const (
	North Direction = iota
	South
	East
	West
)

var directionIn = map[byte]Direction{
	'^': North,
	'v': South,
	'>': East,
	'<': West,
}

var directionOut = map[Direction]byte{}

func init() {
	for c, d := range directionIn {
		directionOut[d] = c
	}
}

var directionOffsets = [...]Position{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	East:  {X: 1, Y: 0},
	West:  {X: -1, Y: 0},
}

// Rune returns the field character of d.
func (d Direction) Rune() byte { return directionOut[d] }

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Blizzard is a hazard moving one cell per minute.
type Blizzard struct {
	Position
	Direction Direction
}

// Next returns the blizzard one minute later. Leaving the interior wraps
// around to the opposite side of the interior.
func (b Blizzard) Next(f *Field) Blizzard {
	p := b.Position.Add(directionOffsets[b.Direction])

	if p.X <= 0 {
		p.X = f.Width - 2
	}
	if p.X >= f.Width-1 {
		p.X = 1
	}
	if p.Y <= 0 {
		p.Y = f.Height - 2
	}
	if p.Y >= f.Height-1 {
		p.Y = 1
	}
	return Blizzard{Position: p, Direction: b.Direction}
}

// Advance returns all blizzards moved by one minute.
func Advance(f *Field, blizzards []Blizzard) []Blizzard {
	next := make([]Blizzard, len(blizzards))
	for i, b := range blizzards {
		next[i] = b.Next(f)
	}
	return next
}
