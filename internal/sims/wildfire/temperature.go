package wildfire

import (
	"math"

	"wildfire-ca/internal/core"
)

// ComputeTemperature derives the temperature map (°C) for a recorded state.
// It is rebuilt from scratch every step and never feeds back into spread.
//
// Burning cells take a peak that falls from PeakTemp towards PeakTemp-PeakDrop
// as the burn progresses, and heat every cell within DiffusionRadius
// (Chebyshev) using max-combine rather than summing contributions. Ash cools
// by the absolute step index, so all ash shares one temperature per step.
func ComputeTemperature(grid core.Grid[State], timer core.Grid[int], step int, p Params) core.Grid[float64] {
	temp := core.NewGrid[float64](grid.W, grid.H)
	temp.Fill(p.AmbientTemp)
	cells := temp.Cells()
	states := grid.Cells()

	ashTemp := math.Max(p.AmbientTemp, p.AshTemp*math.Pow(p.AshCooling, float64(step)))
	burnTime := float64(p.BurnTime)
	r := p.DiffusionRadius

	for i := 0; i < grid.H; i++ {
		for j := 0; j < grid.W; j++ {
			idx := grid.Index(i, j)
			switch states[idx] {
			case Burning:
				progress := (burnTime - float64(timer.At(i, j))) / burnTime
				peak := p.PeakTemp - p.PeakDrop*progress
				cells[idx] = peak
				for di := -r; di <= r; di++ {
					ni := i + di
					if ni < 0 || ni >= grid.H {
						continue
					}
					for dj := -r; dj <= r; dj++ {
						nj := j + dj
						if nj < 0 || nj >= grid.W {
							continue
						}
						if di == 0 && dj == 0 {
							continue
						}
						dist := math.Hypot(float64(di), float64(dj))
						heated := p.AmbientTemp + p.DiffusionGain*peak*math.Exp(-dist*p.DiffusionDecay)
						nIdx := ni*grid.W + nj
						if heated > cells[nIdx] {
							cells[nIdx] = heated
						}
					}
				}
			case Ash:
				cells[idx] = ashTemp
			}
		}
	}
	return temp
}
