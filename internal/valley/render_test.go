package valley

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	f := mustParse(t, exampleField)
	fc := NewForecast(f, DefaultMaxMinutes)

	var sb strings.Builder
	require.NoError(t, Render(&sb, f, Initial(f, fc)))
	assert.Equal(t, "#E"+exampleField[2:], sb.String())
}

func TestRenderStacked(t *testing.T) {
	f := mustParse(t, "#.####\n#>..<#\n####.#\n")
	fc := NewForecast(f, DefaultMaxMinutes)

	s := State{Minute: 1, Blizzards: fc.Blizzards(1), Expedition: Position{X: 1, Y: 0}}
	var sb strings.Builder
	require.NoError(t, Render(&sb, f, s))
	assert.Equal(t, "#E####\n#.><.#\n####.#\n", sb.String())

	s = State{Minute: 2, Blizzards: []Blizzard{{Position{2, 1}, East}, {Position{2, 1}, West}}, Expedition: Position{X: 4, Y: 2}}
	sb.Reset()
	require.NoError(t, Render(&sb, f, s))
	assert.Equal(t, "#.####\n#.2..#\n####E#\n", sb.String())
}
