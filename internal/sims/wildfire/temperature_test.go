package wildfire

import (
	"math"
	"testing"

	"wildfire-ca/internal/core"
)

func TestTemperatureLoneFire(t *testing.T) {
	p := DefaultConfig().Params
	size := 9
	grid := core.NewGrid[State](size, size)
	timer := core.NewGrid[int](size, size)
	grid.Set(4, 4, Burning)
	timer.Set(4, 4, p.BurnTime)

	temp := ComputeTemperature(grid, timer, 1, p)
	if got := temp.At(4, 4); got != 800 {
		t.Fatalf("fresh fire should peak at 800, got %.3f", got)
	}
	bound := 20 + 0.4*800*math.Exp(-1.8)
	for _, c := range []Cell{{4, 7}, {1, 4}, {4, 1}, {7, 4}} {
		if got := temp.At(c.Row, c.Col); got < bound-1e-9 {
			t.Fatalf("distance-3 cell (%d,%d) = %.4f, want >= %.4f", c.Row, c.Col, got, bound)
		}
	}
	if got := temp.At(0, 0); got != 20 {
		t.Fatalf("cells beyond the diffusion radius stay ambient, got %.3f", got)
	}
}

func TestTemperaturePeakCoolsWithProgress(t *testing.T) {
	p := DefaultConfig().Params
	p.BurnTime = 5
	grid := core.NewGrid[State](3, 3)
	timer := core.NewGrid[int](3, 3)
	grid.Set(1, 1, Burning)

	timer.Set(1, 1, 1)
	temp := ComputeTemperature(grid, timer, 0, p)
	want := 800 - 300*(4.0/5.0)
	if got := temp.At(1, 1); math.Abs(got-want) > 1e-9 {
		t.Fatalf("late-stage fire %.3f, want %.3f", got, want)
	}
}

func TestTemperatureMaxCombine(t *testing.T) {
	p := DefaultConfig().Params
	size := 7
	grid := core.NewGrid[State](size, size)
	timer := core.NewGrid[int](size, size)
	grid.Set(3, 2, Burning)
	grid.Set(3, 4, Burning)
	timer.Set(3, 2, p.BurnTime)
	timer.Set(3, 4, p.BurnTime)

	temp := ComputeTemperature(grid, timer, 0, p)
	single := 20 + 0.4*800*math.Exp(-0.6)
	if got := temp.At(3, 3); math.Abs(got-single) > 1e-9 {
		t.Fatalf("cell between two fires %.4f, want max-combined %.4f", got, single)
	}
}

func TestTemperatureAshCoolsByStep(t *testing.T) {
	p := DefaultConfig().Params
	grid := core.NewGrid[State](3, 3)
	timer := core.NewGrid[int](3, 3)
	grid.Set(1, 1, Ash)

	for _, step := range []int{0, 10, 50} {
		temp := ComputeTemperature(grid, timer, step, p)
		want := math.Max(20, 400*math.Pow(0.97, float64(step)))
		if got := temp.At(1, 1); math.Abs(got-want) > 1e-9 {
			t.Fatalf("step %d: ash %.4f, want %.4f", step, got, want)
		}
	}
	temp := ComputeTemperature(grid, timer, 500, p)
	if got := temp.At(1, 1); got != 20 {
		t.Fatalf("old ash should floor at ambient, got %.4f", got)
	}
}
