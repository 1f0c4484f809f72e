package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oechslein/AdventOfCode2024/internal/core"
	"github.com/oechslein/AdventOfCode2024/pkg/grid"
	"github.com/oechslein/AdventOfCode2024/pkg/sims/life"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func lifeFactory(cfg map[string]string) core.Sim { return life.New(life.FromMap(cfg)) }

// blinkerSim starts every run from a blinker plus a block, whatever the seed;
// seed 0 starts empty.
type blinkerSim struct{ *life.Life }

func (b blinkerSim) Reset(seed int64) {
	g := b.Cells()
	g.Fill(0)
	if seed == 0 {
		return
	}
	for _, p := range []grid.Pos{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 6, Y: 6}, {X: 7, Y: 6}, {X: 6, Y: 7}, {X: 7, Y: 7}} {
		g.Set(p.X, p.Y, 1)
	}
}

func blinkerFactory(map[string]string) core.Sim {
	c := life.DefaultConfig()
	c.Width, c.Height = 10, 10
	return blinkerSim{life.New(c)}
}

func TestRunDeterministic(t *testing.T) {
	params := map[string]string{"w": "24", "h": "24"}
	opts := Options{Seeds: Seeds(10, 6), Steps: 20, Workers: 3}

	a, err := Run(context.Background(), lifeFactory, params, opts, nil)
	require.NoError(t, err)
	b, err := Run(context.Background(), lifeFactory, params, Options{Seeds: opts.Seeds, Steps: 20, Workers: 1}, nil)
	require.NoError(t, err)

	require.Len(t, a, 6)
	for i := range a {
		assert.Equal(t, int64(10+i), a[i].Seed)
		assert.Equal(t, a[i].Final, b[i].Final, "seed %d", a[i].Seed)
		assert.Equal(t, a[i].Peak, b[i].Peak)
		assert.GreaterOrEqual(t, a[i].Peak, a[i].Initial)
	}
}

func TestRunStability(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	res, err := Run(context.Background(), blinkerFactory, nil, Options{Seeds: []int64{1, 0}, Steps: 6, Workers: 2}, zap.New(obs))
	require.NoError(t, err)
	require.Len(t, res, 2)

	empty, osc := res[0], res[1]
	assert.Equal(t, int64(0), empty.Seed)
	assert.Equal(t, 0, empty.Final)
	assert.Equal(t, 0, empty.StableAt)

	assert.Equal(t, 7, osc.Initial)
	assert.Equal(t, 7, osc.Final)
	assert.Equal(t, -1, osc.StableAt, "a blinker never settles")

	s := Summarize(res)
	assert.Equal(t, 2, s.Runs)
	assert.Equal(t, 1, s.Extinct)
	assert.Equal(t, 1, s.Stable)
	assert.Equal(t, int64(1), s.Best.Seed)
	assert.InDelta(t, 3.5, s.MeanFinal, 1e-9)

	assert.Equal(t, 1, logs.FilterMessage("sweep finished").Len())
	assert.Equal(t, 2, logs.FilterMessage("seed finished").Len())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, lifeFactory, nil, Options{Seeds: Seeds(1, 8), Steps: 50, Workers: 2}, nil)
	assert.True(t, errors.Is(err, context.Canceled), "err = %v", err)
}

func TestRunNilFactory(t *testing.T) {
	_, err := Run(context.Background(), nil, nil, Options{Seeds: Seeds(1, 1)}, nil)
	assert.Error(t, err)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
