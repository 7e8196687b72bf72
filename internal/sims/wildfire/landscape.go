package wildfire

import (
	"math"

	"wildfire-ca/internal/core"
)

// ValleyElevation builds the static diagonal valley: lowest along row == col
// and rising towards base elevation away from it.
func ValleyElevation(size int, p Params) core.Grid[float64] {
	elev := core.NewGrid[float64](size, size)
	width := float64(size) * p.ValleyWidthRatio
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			var dist float64
			if width > 0 {
				dist = math.Abs(float64(i-j)) / width
			} else if i != j {
				dist = math.Inf(1)
			}
			elev.Set(i, j, p.BaseElevation-p.ValleyDepth*math.Exp(-dist*dist))
		}
	}
	return elev
}

// GenerateFuel draws the fuel map in row-major order. A cell is barren (0)
// with BarrenChance, otherwise it takes a rounded normal sample clipped to [1,10].
func GenerateFuel(size int, p Params, rng *core.RNG) core.Grid[int] {
	fuel := core.NewGrid[int](size, size)
	cells := fuel.Cells()
	for i := range cells {
		if rng.Chance(p.BarrenChance) {
			cells[i] = 0
			continue
		}
		cells[i] = clampInt(int(math.Round(rng.Normal(p.FuelMean, p.FuelStdDev))), 1, 10)
	}
	return fuel
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
