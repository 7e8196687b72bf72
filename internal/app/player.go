package app

import (
	"image/color"

	"wildfire-ca/internal/sims/wildfire"
	"wildfire-ca/internal/ui"
)

// Player walks a simulation's history. Stepping past the last recorded step
// advances the simulation itself, so live runs and replays share one cursor.
type Player struct {
	sim    *wildfire.Simulation
	cursor int
	heat   bool
	colors []color.RGBA
}

// NewPlayer starts at the initial state.
func NewPlayer(sim *wildfire.Simulation) *Player {
	size := sim.Size()
	return &Player{sim: sim, colors: make([]color.RGBA, size.W*size.H)}
}

// Sim returns the underlying simulation.
func (p *Player) Sim() *wildfire.Simulation { return p.sim }

// Cursor is the step currently shown.
func (p *Player) Cursor() int { return p.cursor }

// Forward shows the next step, simulating it if needed. It reports false at
// the end of the run.
func (p *Player) Forward() bool {
	if p.cursor < p.sim.CurrentStep() {
		p.cursor++
		return true
	}
	if p.sim.Done() {
		return false
	}
	p.sim.Step()
	p.cursor = p.sim.CurrentStep()
	return true
}

// Back shows the previous recorded step.
func (p *Player) Back() bool {
	if p.cursor == 0 {
		return false
	}
	p.cursor--
	return true
}

// Reset restarts the simulation from seed and rewinds the cursor.
func (p *Player) Reset(seed int64) {
	p.sim.Reset(seed)
	p.cursor = 0
}

// ToggleHeat switches between the state palette and the temperature ramp.
func (p *Player) ToggleHeat() { p.heat = !p.heat }

// Heat reports whether the temperature view is active.
func (p *Player) Heat() bool { return p.heat }

// Live reports whether the cursor is on the newest step in the state view,
// where the simulation's own palette indices can be drawn directly.
func (p *Player) Live() bool { return !p.heat && p.cursor == p.sim.CurrentStep() }

// Frame assembles the snapshot and analytics for the cursor.
func (p *Player) Frame() ui.Frame {
	snap, err := p.sim.Snapshot(p.cursor)
	if err != nil {
		p.cursor = p.sim.CurrentStep()
		snap, _ = p.sim.Snapshot(p.cursor)
	}
	metrics, _ := p.sim.Metrics(p.cursor)
	return ui.Frame{
		Snapshot:  snap,
		Metrics:   metrics,
		Elevation: p.sim.Elevation(),
		LastStep:  p.sim.CurrentStep(),
		Total:     p.sim.Config().Steps,
	}
}

// Colors returns one color per cell for the frame in the active view. It is
// used for replayed steps and the temperature view.
func (p *Player) Colors(f ui.Frame) []color.RGBA {
	if p.heat {
		for i, t := range f.Snapshot.Temperature.Cells() {
			p.colors[i] = wildfire.HeatColor(t)
		}
		return p.colors
	}
	palette := p.sim.Palette()
	for i, st := range f.Snapshot.Grid.Cells() {
		p.colors[i] = palette[st]
	}
	return p.colors
}
