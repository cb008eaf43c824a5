package geode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleBlueprints = `Blueprint 1:
  Each ore robot costs 4 ore.
  Each clay robot costs 2 ore.
  Each obsidian robot costs 3 ore and 14 clay.
  Each geode robot costs 2 ore and 7 obsidian.

Blueprint 2:
  Each ore robot costs 2 ore.
  Each clay robot costs 3 ore.
  Each obsidian robot costs 3 ore and 8 clay.
  Each geode robot costs 3 ore and 12 obsidian.
`

var exampleBlueprint1 = Blueprint{
	ID: 1,
	Costs: [NumKind]Resources{
		Ore:      {4, 0, 0, 0},
		Clay:     {2, 0, 0, 0},
		Obsidian: {3, 14, 0, 0},
		Geode:    {2, 0, 7, 0},
	},
}

func TestParseBlueprints(t *testing.T) {
	bps, err := ParseBlueprints(strings.NewReader(exampleBlueprints))
	require.NoError(t, err)
	require.Len(t, bps, 2)

	assert.Equal(t, exampleBlueprint1, bps[0])
	assert.Equal(t, 2, bps[1].ID)
	assert.Equal(t, Resources{3, 0, 12, 0}, bps[1].Cost(Geode))
}

func TestParseBlueprintsSingleLine(t *testing.T) {
	input := "Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. " +
		"Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.\n"

	bps, err := ParseBlueprints(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bps, 1)
	assert.Equal(t, exampleBlueprint1, bps[0])
}

func TestParseBlueprintsStopsAtOtherLine(t *testing.T) {
	input := `Blueprint 7:
Each ore robot costs 4 ore.
Each clay robot costs 2 ore.
Each obsidian robot costs 3 ore and 14 clay.
Each geode robot costs 2 ore and 7 obsidian.
this line ends the robot list
Each ore robot costs 99 ore.
`
	bps, err := ParseBlueprints(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bps, 1)
	assert.Equal(t, 7, bps[0].ID)
	assert.Equal(t, Resources{4, 0, 0, 0}, bps[0].Cost(Ore))
}

func TestParseBlueprintsHeader(t *testing.T) {
	input := `Blueprint 3
Each ore robot costs 4 ore.
Each clay robot costs 2 ore.
Each obsidian robot costs 3 ore and 14 clay.
Each geode robot costs 2 ore and 7 obsidian.
Blueprint 4x:
Each ore robot costs 99 ore.
`
	bps, err := ParseBlueprints(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bps, 1)
	assert.Equal(t, 3, bps[0].ID)
	assert.Equal(t, Resources{4, 0, 0, 0}, bps[0].Cost(Ore))
}

func TestParseBlueprintsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "", ErrNoBlueprint},
		{"NoHeader", "Each ore robot costs 4 ore.\n", ErrNoBlueprint},
		{"IDWithSuffix", "Blueprint 12abc: Each ore robot costs 4 ore. Each clay robot costs 2 ore. " +
			"Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.\n", ErrNoBlueprint},
		{"UnknownRobot", "Blueprint 1:\nEach diamond robot costs 4 ore.\n", ErrUnknownKind},
		{"UnknownResource", "Blueprint 1:\nEach ore robot costs 4 gold.\n", ErrUnknownKind},
		{"Incomplete", "Blueprint 1:\nEach ore robot costs 4 ore.\nEach clay robot costs 2 ore.\n", ErrIncompleteBlueprint},
		{"Interrupted", "Blueprint 1:\nEach ore robot costs 4 ore.\nfoo\nEach clay robot costs 2 ore.\n" +
			"Each obsidian robot costs 3 ore and 14 clay.\nEach geode robot costs 2 ore and 7 obsidian.\n", ErrIncompleteBlueprint},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseBlueprints(strings.NewReader(test.input))
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Ore, Clay, Obsidian, Geode} {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("Ore")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, "kind(9)", Kind(9).String())
}
