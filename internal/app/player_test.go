package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wildfire-ca/internal/sims/wildfire"
)

func newTestPlayer(t *testing.T, steps int) *Player {
	t.Helper()
	cfg := wildfire.DefaultConfig()
	cfg.Size = 12
	cfg.Steps = steps
	cfg.Params.BurnTime = 2
	cfg.Params.ExogenousIgnitions = 1
	sim, err := wildfire.New(cfg)
	require.NoError(t, err)
	return NewPlayer(sim)
}

func TestPlayerForwardSimulatesThenStops(t *testing.T) {
	p := newTestPlayer(t, 3)
	for i := 1; i <= 3; i++ {
		require.True(t, p.Forward(), "forward %d", i)
		require.Equal(t, i, p.Cursor())
		require.Equal(t, i, p.Sim().CurrentStep())
	}
	require.False(t, p.Forward(), "no steps left")
}

func TestPlayerReplaysRecordedHistory(t *testing.T) {
	p := newTestPlayer(t, 4)
	for p.Forward() {
	}
	require.True(t, p.Back())
	require.True(t, p.Back())
	require.Equal(t, 2, p.Cursor())

	f := p.Frame()
	require.Equal(t, 2, f.Snapshot.Step)
	require.Equal(t, 2, f.Metrics.Step)
	require.Equal(t, 4, f.LastStep)
	require.Equal(t, 4, f.Total)

	p.Forward()
	require.Equal(t, 3, p.Cursor())
	require.Equal(t, 4, p.Sim().CurrentStep(), "replaying must not simulate")

	for p.Back() {
	}
	require.Equal(t, 0, p.Cursor())
}

func TestPlayerResetRewinds(t *testing.T) {
	p := newTestPlayer(t, 5)
	p.Forward()
	p.Forward()
	p.Reset(99)
	require.Equal(t, 0, p.Cursor())
	require.Equal(t, 0, p.Sim().CurrentStep())
	require.Equal(t, int64(99), p.Sim().Seed())
}

func TestPlayerLiveView(t *testing.T) {
	p := newTestPlayer(t, 3)
	require.True(t, p.Live(), "a fresh run shows the live state")

	p.Forward()
	p.Back()
	require.False(t, p.Live(), "a replayed step is not live")

	p.Forward()
	require.True(t, p.Live())
	p.ToggleHeat()
	require.False(t, p.Live(), "the temperature view is drawn from the snapshot")
}

func TestPlayerColorsMatchLiveCells(t *testing.T) {
	p := newTestPlayer(t, 2)
	p.Forward()
	f := p.Frame()
	sim := p.Sim()
	palette := sim.Palette()

	colors := p.Colors(f)
	for i, v := range sim.Cells() {
		require.Equal(t, palette[v], colors[i], "cell %d", i)
	}
	centre := 6*12 + 6
	require.NotEqual(t, palette[wildfire.Vegetated], colors[centre])
	require.Equal(t, palette[wildfire.Empty], colors[0], "border")

	p.ToggleHeat()
	require.True(t, p.Heat())
	colors = p.Colors(f)
	require.Equal(t, wildfire.HeatColor(f.Snapshot.Temperature.At(6, 6)), colors[centre])
}
