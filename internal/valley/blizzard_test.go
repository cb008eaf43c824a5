package valley

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlizzardNext(t *testing.T) {
	f := mustParse(t, exampleField)

	tests := []struct {
		b    Blizzard
		want Position
	}{
		{Blizzard{Position{X: 2, Y: 2}, East}, Position{X: 3, Y: 2}},
		{Blizzard{Position{X: 6, Y: 2}, East}, Position{X: 1, Y: 2}},
		{Blizzard{Position{X: 1, Y: 2}, West}, Position{X: 6, Y: 2}},
		{Blizzard{Position{X: 3, Y: 1}, North}, Position{X: 3, Y: 4}},
		{Blizzard{Position{X: 3, Y: 4}, South}, Position{X: 3, Y: 1}},
		{Blizzard{Position{X: 3, Y: 2}, South}, Position{X: 3, Y: 3}},
	}

	for _, test := range tests {
		got := test.b.Next(f)
		assert.Equal(t, test.want, got.Position, "blizzard %v moving %s", test.b.Position, test.b.Direction)
		assert.Equal(t, test.b.Direction, got.Direction)
	}
}

func TestBlizzardPeriodicity(t *testing.T) {
	f := mustParse(t, exampleField)
	initial := f.Blizzards()

	blizzards := initial
	for minute := 1; minute <= f.Period(); minute++ {
		blizzards = Advance(f, blizzards)
		for _, b := range blizzards {
			assert.True(t, f.interior(b.Position), "blizzard outside interior at minute %d: %s", minute, b.Position)
		}
	}
	assert.Equal(t, initial, blizzards)

	// twice around the cycle
	for minute := 0; minute < f.Period(); minute++ {
		blizzards = Advance(f, blizzards)
	}
	assert.Equal(t, initial, blizzards)
}

func TestDirectionRune(t *testing.T) {
	for c, d := range directionIn {
		assert.Equal(t, c, d.Rune())
	}
	assert.Equal(t, "west", West.String())
}
