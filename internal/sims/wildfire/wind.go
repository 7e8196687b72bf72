package wildfire

import (
	"math"

	"wildfire-ca/internal/core"
)

// WindBase is the field-wide wind vector before drift and local noise.
// Component naming follows the field: Speed and Direction (radians).
type WindBase struct {
	Speed     float64
	Direction float64
}

// WindField stores per-cell wind speed and direction.
type WindField struct {
	Speed     core.Grid[float64]
	Direction core.Grid[float64]
}

// NewWindField allocates a still field of the given size.
func NewWindField(size int) WindField {
	return WindField{
		Speed:     core.NewGrid[float64](size, size),
		Direction: core.NewGrid[float64](size, size),
	}
}

// WindSource produces the wind field for a step. Implementations may keep
// continuity state between calls; steps are requested in increasing order.
type WindSource interface {
	Next(step int, rng *core.RNG) WindField
}

// InitialWindBase is the continuity state before the first generated field.
var InitialWindBase = WindBase{Speed: 1.0, Direction: 0.2}

// BaseWindAt evaluates the smooth periodic base wind for step t.
func BaseWindAt(t int) WindBase {
	ft := float64(t)
	return WindBase{
		Speed:     1.0 + 1.2*math.Sin(ft/20.0) + 0.7*math.Cos(ft/35.0),
		Direction: 0.2 + 1.0*math.Cos(ft/25.0) + 0.5*math.Sin(ft/15.0),
	}
}

// GenerateWind produces the field for step t from the previous base vector.
// With smoothing zero the base is exactly BaseWindAt(t); otherwise it is
// blended towards prev so consecutive fields change more gradually. Noise is
// drawn per cell in row-major order, speed before direction.
func GenerateWind(size, t int, prev WindBase, sigma, smoothing float64, rng *core.RNG) (WindField, WindBase) {
	target := BaseWindAt(t)
	base := WindBase{
		Speed:     (1-smoothing)*target.Speed + smoothing*prev.Speed,
		Direction: (1-smoothing)*target.Direction + smoothing*prev.Direction,
	}
	drift := math.Sin(float64(t) / 7.0)

	field := NewWindField(size)
	speed := field.Speed.Cells()
	dir := field.Direction.Cells()
	for i := range speed {
		speed[i] = base.Speed + drift + rng.Normal(0, sigma)
		dir[i] = base.Direction + drift + rng.Normal(0, sigma)
	}
	return field, base
}

// WindGenerator is the default WindSource. It threads the base vector from
// one call to the next.
type WindGenerator struct {
	size      int
	sigma     float64
	smoothing float64
	base      WindBase
}

// NewWindGenerator returns a generator seeded with InitialWindBase.
func NewWindGenerator(size int, p Params) *WindGenerator {
	return &WindGenerator{
		size:      size,
		sigma:     p.WindNoiseSigma,
		smoothing: p.WindBaseSmoothing,
		base:      InitialWindBase,
	}
}

// Next generates the field for step and stores the new base vector.
func (g *WindGenerator) Next(step int, rng *core.RNG) WindField {
	field, base := GenerateWind(g.size, step, g.base, g.sigma, g.smoothing, rng)
	g.base = base
	return field
}

// Base reports the continuity state carried into the next call.
func (g *WindGenerator) Base() WindBase { return g.base }

// FixedWind is a WindSource that returns the same uniform field every step.
// It draws no random numbers.
type FixedWind struct {
	Size      int
	Speed     float64
	Direction float64
}

// Next returns a uniform field.
func (f FixedWind) Next(int, *core.RNG) WindField {
	field := NewWindField(f.Size)
	field.Speed.Fill(f.Speed)
	field.Direction.Fill(f.Direction)
	return field
}
