package wildfire

import (
	"math"
	"testing"

	"wildfire-ca/internal/core"
)

func analyticsFixture(t *testing.T) (Snapshot, Snapshot, Params) {
	t.Helper()
	p := DefaultConfig().Params
	p.BurnTime = 3
	p.HotspotLimit = 3
	size := 6
	wind := FixedWind{Size: size, Speed: 2, Direction: 0.5}.Next(0, nil)

	prevGrid := core.NewGrid[State](size, size)
	prevTimer := core.NewGrid[int](size, size)
	prevGrid.Set(2, 2, Burning)
	prevTimer.Set(2, 2, 3)
	prev := Snapshot{Step: 0, Grid: prevGrid, BurnTimer: prevTimer, Wind: wind,
		Temperature: ComputeTemperature(prevGrid, prevTimer, 0, p)}

	grid := core.NewGrid[State](size, size)
	timer := core.NewGrid[int](size, size)
	grid.Set(1, 1, Ash)
	grid.Set(2, 2, Burning)
	grid.Set(2, 3, Burning)
	timer.Set(2, 2, 3)
	timer.Set(2, 3, 3)
	cur := Snapshot{Step: 1, Grid: grid, BurnTimer: timer, Wind: wind,
		Temperature: ComputeTemperature(grid, timer, 1, p)}
	return prev, cur, p
}

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestAnalyzeCountsAreaAndSpread(t *testing.T) {
	prev, cur, p := analyticsFixture(t)
	m := Analyze(cur, &prev, p)

	if m.Step != 1 || m.BurningCells != 2 || m.AshCells != 1 || m.AffectedCells != 3 {
		t.Fatalf("counts: step=%d burning=%d ash=%d affected=%d", m.Step, m.BurningCells, m.AshCells, m.AffectedCells)
	}
	if !approx(m.AffectedArea, 2700, 1e-9) {
		t.Fatalf("30 m cells cover 900 m² each, area=%v", m.AffectedArea)
	}
	if !approx(m.SpreadRate, 1800, 1e-9) {
		t.Fatalf("spread rate = %v, want 1800", m.SpreadRate)
	}
	if !m.HasFire || !approx(m.CentroidRow, 2, 1e-12) || !approx(m.CentroidCol, 2.5, 1e-12) {
		t.Fatalf("centroid (%v,%v) hasFire=%v", m.CentroidRow, m.CentroidCol, m.HasFire)
	}
	if !approx(m.MaxTemperature, 800, 1e-9) || m.MeanTemperature <= 20 {
		t.Fatalf("temperatures max=%v mean=%v", m.MaxTemperature, m.MeanTemperature)
	}
	if !approx(m.MeanWindSpeed, 2, 1e-12) || !approx(m.MeanWindDirection, 0.5, 1e-9) {
		t.Fatalf("wind mean %v @ %v", m.MeanWindSpeed, m.MeanWindDirection)
	}

	if first := Analyze(prev, nil, p); first.SpreadRate != 0 {
		t.Fatalf("the initial step has no spread rate, got %v", first.SpreadRate)
	}
}

func TestAnalyzeHotspotsRankedAndCapped(t *testing.T) {
	prev, cur, p := analyticsFixture(t)
	hs := Analyze(cur, &prev, p).Hotspots

	if len(hs) != 3 {
		t.Fatalf("expected 3 hotspots, got %d", len(hs))
	}
	if hs[0].Cell != (Cell{Row: 2, Col: 2}) || hs[1].Cell != (Cell{Row: 2, Col: 3}) {
		t.Fatalf("equal peaks should be ordered by position: %v, %v", hs[0].Cell, hs[1].Cell)
	}
	if hs[0].Risk != RiskExtreme || hs[0].State != Burning {
		t.Fatalf("first hotspot %+v", hs[0])
	}
	ash := hs[2]
	if ash.Cell != (Cell{Row: 1, Col: 1}) || ash.State != Ash || ash.Risk != RiskHigh {
		t.Fatalf("ash hotspot %+v", ash)
	}
	if !approx(ash.Temperature, 400*0.97, 1e-9) {
		t.Fatalf("ash temperature %v", ash.Temperature)
	}

	p.HotspotLimit = 0
	if got := Analyze(cur, &prev, p).Hotspots; len(got) != 0 {
		t.Fatalf("zero limit should yield no hotspots, got %d", len(got))
	}
}

func TestAnalyzeNoFire(t *testing.T) {
	p := DefaultConfig().Params
	grid := core.NewGrid[State](4, 4)
	timer := core.NewGrid[int](4, 4)
	snap := Snapshot{Grid: grid, BurnTimer: timer, Wind: FixedWind{Size: 4}.Next(0, nil),
		Temperature: ComputeTemperature(grid, timer, 0, p)}

	m := Analyze(snap, nil, p)
	if m.HasFire || m.AffectedArea != 0 || len(m.Hotspots) != 0 {
		t.Fatalf("empty grid metrics %+v", m)
	}
	if !approx(m.MaxTemperature, 20, 1e-12) {
		t.Fatalf("max temperature %v, want ambient", m.MaxTemperature)
	}
}

func TestClassifyRiskBoundaries(t *testing.T) {
	cases := []struct {
		temp float64
		want RiskLevel
	}{
		{20, RiskLow},
		{99.9, RiskLow},
		{100, RiskModerate},
		{199.9, RiskModerate},
		{200, RiskHigh},
		{400, RiskCritical},
		{599, RiskCritical},
		{600, RiskExtreme},
		{800, RiskExtreme},
	}
	for _, tc := range cases {
		if got := ClassifyRisk(tc.temp); got != tc.want {
			t.Fatalf("ClassifyRisk(%.1f) = %v, want %v", tc.temp, got, tc.want)
		}
	}
	if RiskCritical.String() != "CRITICAL" || RiskLevel(42).String() != "UNKNOWN" {
		t.Fatalf("names: %s %s", RiskCritical, RiskLevel(42))
	}
}

func TestMetricsSeriesMatchesHistory(t *testing.T) {
	sim := runToEnd(t, scenarioConfig(16, 3, 12, 2))

	series := sim.MetricsSeries()
	if len(series) != len(sim.History()) {
		t.Fatalf("series has %d entries, history %d", len(series), len(sim.History()))
	}
	for i, m := range series {
		if m.Step != i {
			t.Fatalf("entry %d has step %d", i, m.Step)
		}
		if i > 0 && !approx(m.SpreadRate, m.AffectedArea-series[i-1].AffectedArea, 1e-9) {
			t.Fatalf("step %d spread %v does not match area delta", i, m.SpreadRate)
		}
	}
	again, err := sim.Metrics(5)
	if err != nil {
		t.Fatalf("Metrics: %v", err)
	}
	if again.AffectedArea != series[5].AffectedArea || len(again.Hotspots) != len(series[5].Hotspots) {
		t.Fatalf("cached metrics differ: %+v vs %+v", again, series[5])
	}
	if _, err := sim.Metrics(99); err == nil {
		t.Fatal("expected an error past the last step")
	}
}
