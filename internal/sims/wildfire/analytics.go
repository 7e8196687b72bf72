package wildfire

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RiskLevel buckets a temperature into a qualitative alert level.
type RiskLevel uint8

const (
	RiskLow RiskLevel = iota
	RiskModerate
	RiskHigh
	RiskCritical
	RiskExtreme
)

var riskNames = [...]string{"LOW", "MODERATE", "HIGH", "CRITICAL", "EXTREME"}

func (r RiskLevel) String() string {
	if int(r) < len(riskNames) {
		return riskNames[r]
	}
	return "UNKNOWN"
}

// Upper bounds (exclusive, °C) for each risk level below EXTREME.
var riskBounds = [...]float64{100, 200, 400, 600}

// ClassifyRisk maps a temperature to its risk level.
func ClassifyRisk(tempC float64) RiskLevel {
	for i, bound := range riskBounds {
		if tempC < bound {
			return RiskLevel(i)
		}
	}
	return RiskExtreme
}

// Hotspot is a cell hotter than the configured alert threshold.
type Hotspot struct {
	Cell
	Temperature float64
	State       State
	Risk        RiskLevel
}

// StepMetrics aggregates the fire picture for one recorded step.
type StepMetrics struct {
	Step          int
	BurningCells  int
	AshCells      int
	AffectedCells int
	// AffectedArea is the burning plus burned area in square meters.
	AffectedArea float64
	// SpreadRate is the change in AffectedArea since the previous step.
	SpreadRate float64
	// Centroid is the mean (row, col) of burning cells. Valid only when HasFire.
	CentroidRow, CentroidCol float64
	HasFire                  bool

	MaxTemperature  float64
	MeanTemperature float64
	MeanWindSpeed   float64
	// MeanWindDirection is the circular mean of the per-cell directions (radians).
	MeanWindDirection float64

	Hotspots []Hotspot
}

// Analyze derives the metrics for snap. prev is the previous step's snapshot
// and may be nil for the initial state.
func Analyze(snap Snapshot, prev *Snapshot, p Params) StepMetrics {
	m := StepMetrics{Step: snap.Step}
	cellArea := p.CellSizeMeters * p.CellSizeMeters

	var rowSum, colSum float64
	states := snap.Grid.Cells()
	for idx, st := range states {
		switch st {
		case Burning:
			m.BurningCells++
			rowSum += float64(idx / snap.Grid.W)
			colSum += float64(idx % snap.Grid.W)
		case Ash:
			m.AshCells++
		}
	}
	m.AffectedCells = m.BurningCells + m.AshCells
	m.AffectedArea = float64(m.AffectedCells) * cellArea
	if m.BurningCells > 0 {
		m.HasFire = true
		m.CentroidRow = rowSum / float64(m.BurningCells)
		m.CentroidCol = colSum / float64(m.BurningCells)
	}
	if prev != nil {
		m.SpreadRate = m.AffectedArea - float64(affectedCells(prev.Grid.Cells()))*cellArea
	}

	temps := snap.Temperature.Cells()
	if len(temps) > 0 {
		m.MaxTemperature = floats.Max(temps)
		m.MeanTemperature = stat.Mean(temps, nil)
	}
	if speeds := snap.Wind.Speed.Cells(); len(speeds) > 0 {
		m.MeanWindSpeed = stat.Mean(speeds, nil)
		m.MeanWindDirection = stat.CircularMean(snap.Wind.Direction.Cells(), nil)
	}

	m.Hotspots = hotspots(snap, p.HotspotThreshold, p.HotspotLimit)
	return m
}

func affectedCells(states []State) int {
	n := 0
	for _, st := range states {
		if st == Burning || st == Ash {
			n++
		}
	}
	return n
}

// hotspots returns up to limit cells strictly above threshold, hottest first
// with ties broken by row then column.
func hotspots(snap Snapshot, threshold float64, limit int) []Hotspot {
	if limit <= 0 {
		return nil
	}
	var out []Hotspot
	w := snap.Temperature.W
	for idx, t := range snap.Temperature.Cells() {
		if t <= threshold {
			continue
		}
		out = append(out, Hotspot{
			Cell:        Cell{Row: idx / w, Col: idx % w},
			Temperature: t,
			State:       snap.Grid.Cells()[idx],
			Risk:        ClassifyRisk(t),
		})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Temperature != out[b].Temperature {
			return out[a].Temperature > out[b].Temperature
		}
		if out[a].Row != out[b].Row {
			return out[a].Row < out[b].Row
		}
		return out[a].Col < out[b].Col
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Metrics returns the analytics for a recorded step.
func (s *Simulation) Metrics(step int) (StepMetrics, error) {
	if _, err := s.Snapshot(step); err != nil {
		return StepMetrics{}, err
	}
	for len(s.metrics) <= step {
		i := len(s.metrics)
		var prev *Snapshot
		if i > 0 {
			prev = &s.history[i-1]
		}
		s.metrics = append(s.metrics, Analyze(s.history[i], prev, s.cfg.Params))
	}
	return s.metrics[step], nil
}

// MetricsSeries returns the analytics for every recorded step.
func (s *Simulation) MetricsSeries() []StepMetrics {
	if len(s.history) == 0 {
		return nil
	}
	// Metrics fills the cache up to the requested step.
	if _, err := s.Metrics(len(s.history) - 1); err != nil {
		return nil
	}
	return s.metrics
}
