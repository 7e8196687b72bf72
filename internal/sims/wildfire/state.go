package wildfire

import "wildfire-ca/internal/core"

// State enumerates the fire state of a single cell.
type State uint8

const (
	Empty State = iota
	Vegetated
	Burning
	Ash
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Vegetated:
		return "vegetated"
	case Burning:
		return "burning"
	case Ash:
		return "ash"
	default:
		return "unknown"
	}
}

// Cell addresses a grid location by row and column.
type Cell struct {
	Row, Col int
}

// neighbors4 lists the 4-connected offsets in the order ignition is attempted:
// up, down, left, right.
var neighbors4 = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Snapshot is the recorded state after a step. Slices are shared with the
// simulation history and must be treated as read-only.
type Snapshot struct {
	Step        int
	Grid        core.Grid[State]
	BurnTimer   core.Grid[int]
	Wind        WindField
	Temperature core.Grid[float64]
}
