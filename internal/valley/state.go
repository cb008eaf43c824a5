package valley

// State is one step of the search. States are never modified after they were
// created; successors share the forecast's blizzard slice of their minute.
type State struct {
	Minute     int
	Blizzards  []Blizzard
	Expedition Position
}

// candidate moves in exploration order: east, south, stay, north, west
var moves = [...]Position{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
}

// Initial returns the state at minute 0 with the expedition at the entrance.
func Initial(f *Field, fc *Forecast) State {
	return State{Minute: 0, Blizzards: fc.Blizzards(0), Expedition: f.Start}
}

// Finished reports whether the expedition reached the goal.
func (s State) Finished(f *Field) bool { return s.Expedition.Distance(f.Goal) == 0 }

// Bound returns a lower bound of the minute the goal can be reached from s.
func (s State) Bound(f *Field) int { return s.Minute + s.Expedition.Distance(f.Goal) }

// Successors returns the states reachable in the next minute: the blizzards
// advance and the expedition moves to or stays on a free passable cell.
func (s State) Successors(f *Field, fc *Forecast) []State {
	next := s.Minute + 1
	blizzards := fc.Blizzards(next)

	states := make([]State, 0, len(moves))
	for _, move := range moves {
		p := s.Expedition.Add(move)
		if !f.Passable(p) || fc.Occupied(next, p) {
			continue
		}
		states = append(states, State{Minute: next, Blizzards: blizzards, Expedition: p})
	}
	return states
}
