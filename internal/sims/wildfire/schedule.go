package wildfire

import (
	"sort"

	"wildfire-ca/internal/core"
)

// ScheduledIgnition is an exogenous fire start forced at the given step.
type ScheduledIgnition struct {
	Step int
	Cell
}

// GenerateSchedule draws count events with a step in [1, steps] and an
// interior location, sorted ascending by step. Events sharing a step keep
// their draw order. No events can be placed when steps is zero.
func GenerateSchedule(count, steps, size int, rng *core.RNG) []ScheduledIgnition {
	if count <= 0 || steps <= 0 || size < 3 {
		return nil
	}
	events := make([]ScheduledIgnition, count)
	for i := range events {
		events[i] = ScheduledIgnition{
			Step: rng.IntRange(1, steps),
			Cell: Cell{
				Row: rng.IntRange(1, size-2),
				Col: rng.IntRange(1, size-2),
			},
		}
	}
	sort.SliceStable(events, func(a, b int) bool { return events[a].Step < events[b].Step })
	return events
}
