package wildfire

import "wildfire-ca/internal/core"

// TransitionStats summarizes what happened during one automaton step.
type TransitionStats struct {
	Scheduled   int
	Skipped     int
	SpreadFires int
	BurnedOut   int
}

// Transition computes the next generation from prev. Every ignition decision
// reads only prevGrid, and all writes land in freshly allocated buffers, so
// fires started this step cannot spread again until the next one.
//
// events must contain only the ignitions due at this step. A scheduled event
// is applied only when its target is Vegetated in prevGrid.
func Transition(prevGrid core.Grid[State], prevTimer core.Grid[int], events []ScheduledIgnition,
	model IgnitionModel, wind WindField, rng *core.RNG) (core.Grid[State], core.Grid[int], TransitionStats) {
	nextGrid := prevGrid.Clone()
	nextTimer := prevTimer.Clone()
	burnTime := model.Params.BurnTime
	var stats TransitionStats

	for _, ev := range events {
		if !prevGrid.InBounds(ev.Row, ev.Col) || prevGrid.At(ev.Row, ev.Col) != Vegetated ||
			nextGrid.At(ev.Row, ev.Col) != Vegetated {
			stats.Skipped++
			continue
		}
		nextGrid.Set(ev.Row, ev.Col, Burning)
		nextTimer.Set(ev.Row, ev.Col, burnTime)
		stats.Scheduled++
	}

	states := prevGrid.Cells()
	for r := 0; r < prevGrid.H; r++ {
		for c := 0; c < prevGrid.W; c++ {
			idx := prevGrid.Index(r, c)
			if states[idx] != Burning {
				continue
			}
			src := Cell{Row: r, Col: c}
			for _, off := range neighbors4 {
				dst := Cell{Row: r + off.Row, Col: c + off.Col}
				if !prevGrid.InBounds(dst.Row, dst.Col) || prevGrid.At(dst.Row, dst.Col) != Vegetated {
					continue
				}
				if !rng.Chance(model.Probability(src, dst, wind)) {
					continue
				}
				if nextGrid.At(dst.Row, dst.Col) != Burning {
					stats.SpreadFires++
				}
				nextGrid.Set(dst.Row, dst.Col, Burning)
				nextTimer.Set(dst.Row, dst.Col, burnTime)
			}

			left := nextTimer.Cells()[idx] - 1
			if left <= 0 {
				left = 0
				nextGrid.Cells()[idx] = Ash
				stats.BurnedOut++
			}
			nextTimer.Cells()[idx] = left
		}
	}
	return nextGrid, nextTimer, stats
}
