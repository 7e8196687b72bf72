package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/sims/wildfire"
)

// Frame is everything the HUD and overlay draw for one recorded step.
type Frame struct {
	Snapshot  wildfire.Snapshot
	Metrics   wildfire.StepMetrics
	Elevation core.Grid[float64]
	LastStep  int
	Total     int
}

// ViewState carries the viewer toggles shown in the status block.
type ViewState struct {
	Paused bool
	Heat   bool
	Seed   int64
}

// StatusLines formats the per-step readout shown at the top of the HUD.
func StatusLines(f Frame, v ViewState) []string {
	m := f.Metrics
	mode := "states"
	if v.Heat {
		mode = "temperature"
	}
	run := "running"
	if v.Paused {
		run = "paused"
	}
	lines := []string{
		fmt.Sprintf("step %d/%d (%s)", f.Snapshot.Step, f.Total, run),
		fmt.Sprintf("seed %d  view %s", v.Seed, mode),
		fmt.Sprintf("burning %s  ash %s", humanize.Comma(int64(m.BurningCells)), humanize.Comma(int64(m.AshCells))),
		fmt.Sprintf("area %s m2 (%+.0f)", humanize.Commaf(m.AffectedArea), m.SpreadRate),
		fmt.Sprintf("max %.0fC  mean %.1fC", m.MaxTemperature, m.MeanTemperature),
		fmt.Sprintf("wind %.2f @ %.2f rad", m.MeanWindSpeed, m.MeanWindDirection),
	}
	if m.HasFire {
		lines = append(lines, fmt.Sprintf("centre (%.1f, %.1f)", m.CentroidRow, m.CentroidCol))
	} else {
		lines = append(lines, "no active fire")
	}
	if f.Snapshot.Step < f.LastStep {
		lines = append(lines, fmt.Sprintf("replaying, %d recorded", f.LastStep))
	}
	return lines
}

// HotspotLines lists the ranked hotspots of a frame.
func HotspotLines(f Frame) []string {
	if len(f.Metrics.Hotspots) == 0 {
		return []string{"no hotspots"}
	}
	out := make([]string, 0, len(f.Metrics.Hotspots))
	for i, h := range f.Metrics.Hotspots {
		out = append(out, fmt.Sprintf("%2d (%d,%d) %4.0fC %s", i+1, h.Row, h.Col, h.Temperature, h.Risk))
	}
	return out
}
