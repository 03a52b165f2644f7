package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepsea/internal/sim"
)

func TestDiveKeepsInvariants(t *testing.T) {
	cfg := sim.DefaultConfig()
	res := Dive(cfg, 42, 600, 60)

	assert.Equal(t, 600, res.Steps)
	assert.NotZero(t, res.Fish)
	assert.NotZero(t, res.Bubbles)
	assert.True(t, res.Healthy(cfg.Params.Flock.MaxSpeed), "invariants broken: %+v", res)
	assert.LessOrEqual(t, res.MinOxygen, 100.0)
	assert.Greater(t, res.MaxDepth, 0.0, "the scripted dive should sink")
}

func TestDiveIsDeterministic(t *testing.T) {
	cfg := sim.DefaultConfig()
	a := Dive(cfg, 7, 240, 60)
	b := Dive(cfg, 7, 240, 60)
	assert.Equal(t, a, b)
}

func TestRunKeepsSeedOrder(t *testing.T) {
	cfg := sim.DefaultConfig()
	seeds := []int64{9, 3, 5}
	got, err := Run(context.Background(), cfg, seeds, 120, 60, 2)
	require.NoError(t, err)
	require.Len(t, got, len(seeds))
	for i, seed := range seeds {
		assert.Equal(t, seed, got[i].Seed)
		assert.Equal(t, Dive(cfg, seed, 120, 60), got[i])
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, sim.DefaultConfig(), Seeds(1, 4), 60, 60, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSeeds(t *testing.T) {
	assert.Equal(t, []int64{10, 11, 12}, Seeds(10, 3))
	assert.Empty(t, Seeds(1, 0))
}
