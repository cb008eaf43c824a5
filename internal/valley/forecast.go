package valley

// Forecast answers where the blizzards are at a given minute. Occupancy is
// computed from the initial blizzard layout: a blizzard only ever travels
// along its own row or column, so the cell it started on at minute t is found
// by stepping back t cells modulo the interior size.
//
// Blizzard lists are cached for the first phases a search can reach; the
// remaining phases are computed on demand. A Forecast is immutable once built
// and safe for concurrent use.
type Forecast struct {
	field     *Field
	period    int
	initial   []uint8      // direction bits at minute 0, indexed y*width+x
	blizzards [][]Blizzard // by phase, at most the first maxMinutes+2
}

// NewForecast prepares the forecast of f for searches ending no later than
// maxMinutes.
func NewForecast(f *Field, maxMinutes int) *Forecast {
	fc := &Forecast{
		field:   f,
		period:  f.Period(),
		initial: make([]uint8, f.Width*f.Height),
	}
	for _, b := range f.blizzards {
		fc.initial[b.Y*f.Width+b.X] |= 1 << b.Direction
	}

	// successors are generated up to one minute past the bound
	cached := min(fc.period, max(maxMinutes+2, 1))
	fc.blizzards = make([][]Blizzard, cached)
	blizzards := f.Blizzards()
	for phase := 0; phase < cached; phase++ {
		fc.blizzards[phase] = blizzards
		if phase+1 < cached {
			blizzards = Advance(f, blizzards)
		}
	}
	return fc
}

// Period returns the cycle length in minutes.
func (fc *Forecast) Period() int { return fc.period }

// Phase returns the cycle phase of minute.
func (fc *Forecast) Phase(minute int) int { return minute % fc.period }

// Blizzards returns the blizzards at minute. The slice must not be modified.
func (fc *Forecast) Blizzards(minute int) []Blizzard {
	phase := fc.Phase(minute)
	if phase < len(fc.blizzards) {
		return fc.blizzards[phase]
	}
	blizzards := fc.field.Blizzards()
	for i, b := range blizzards {
		blizzards[i] = fc.at(b, phase)
	}
	return blizzards
}

// at returns blizzard b of minute 0 moved by minute steps.
func (fc *Forecast) at(b Blizzard, minute int) Blizzard {
	w, h := fc.field.Width-2, fc.field.Height-2
	switch b.Direction {
	case North:
		b.Y = 1 + mod(b.Y-1-minute, h)
	case South:
		b.Y = 1 + mod(b.Y-1+minute, h)
	case East:
		b.X = 1 + mod(b.X-1+minute, w)
	case West:
		b.X = 1 + mod(b.X-1-minute, w)
	}
	return b
}

// Occupied reports whether a blizzard is at p at minute.
// Blizzards never leave the interior, so other positions are never occupied.
func (fc *Forecast) Occupied(minute int, p Position) bool {
	f := fc.field
	if !f.interior(p) {
		return false
	}
	w, h := f.Width-2, f.Height-2
	row := p.Y * f.Width
	return fc.initial[row+1+mod(p.X-1-minute, w)]&(1<<East) != 0 ||
		fc.initial[row+1+mod(p.X-1+minute, w)]&(1<<West) != 0 ||
		fc.initial[(1+mod(p.Y-1-minute, h))*f.Width+p.X]&(1<<South) != 0 ||
		fc.initial[(1+mod(p.Y-1+minute, h))*f.Width+p.X]&(1<<North) != 0
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
