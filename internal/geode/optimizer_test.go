package geode

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var freeBlueprint = Blueprint{ID: 1}

func TestOptimizer(t *testing.T) {
	tests := []struct {
		name    string
		bp      Blueprint
		minutes int
		geodes  int
	}{
		{"FreeNoHorizon", freeBlueprint, 0, 0},
		{"FreeOneMinute", freeBlueprint, 1, 0},
		{"FreeThreeMinutes", freeBlueprint, 3, 0},
		{"FreeFourMinutes", freeBlueprint, 4, 1},
		{"FreeFiveMinutes", freeBlueprint, 5, 3},
		{"NoObsidian", Blueprint{ID: 2, Costs: [NumKind]Resources{
			Ore:      {1, 0, 0, 0},
			Clay:     {1, 0, 0, 0},
			Obsidian: {1, 0, 0, 0},
			Geode:    {0, 0, 0, 1000},
		}}, 6, 0},
	}

	for _, test := range tests {
		for _, workers := range []int{1, 4} {
			t.Run(test.name, func(t *testing.T) {
				o := New(test.bp, WithMinutes(test.minutes), WithWorkers(workers), WithLogger(discard))
				result, err := o.Run(context.Background())
				require.NoError(t, err)
				assert.Equal(t, test.geodes, result.Geodes)
				assert.Equal(t, test.geodes, result.Best.Resources[Geode])
				assert.Equal(t, test.minutes+1, result.Best.Minute)
			})
		}
	}
}

func TestOptimizerSkipsUnaffordable(t *testing.T) {
	bp := Blueprint{ID: 3, Costs: [NumKind]Resources{
		Ore:      {50, 0, 0, 0},
		Clay:     {50, 0, 0, 0},
		Obsidian: {50, 50, 0, 0},
		Geode:    {50, 0, 50, 0},
	}}

	result, err := New(bp, WithMinutes(10), WithLogger(discard)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Geodes)
	assert.Equal(t, Resources{10, 0, 0, 0}, result.Best.Resources)
	assert.Positive(t, result.Stats.Skipped)
}

func TestOptimizerInvalidHorizon(t *testing.T) {
	_, err := New(freeBlueprint, WithMinutes(-1), WithLogger(discard)).Run(context.Background())
	assert.ErrorIs(t, err, ErrInvalidHorizon)
}

func TestOptimizerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(exampleBlueprint1, WithLogger(discard)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptimizerExample(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long running optimization")
	}

	bps, err := ParseBlueprints(strings.NewReader(exampleBlueprints))
	require.NoError(t, err)
	require.Len(t, bps, 2)

	// time to build truncates, so the counts exceed an exact simulation
	expected := map[int]int{1: 16, 2: 22}
	for _, bp := range bps {
		for _, workers := range []int{1, 0} {
			result, err := New(bp, WithLogger(discard), WithWorkers(workers)).Run(context.Background())
			require.NoError(t, err)
			assert.Equal(t, expected[bp.ID], result.Geodes, "blueprint %d workers %d", bp.ID, workers)
			assert.Equal(t, DefaultMinutes+1, result.Best.Minute)
			assert.Equal(t, result.Geodes, result.Best.Resources[Geode])
			assert.Positive(t, result.Stats.Nodes)
		}
	}
}
