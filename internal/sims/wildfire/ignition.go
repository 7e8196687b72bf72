package wildfire

import (
	"math"

	"wildfire-ca/internal/core"
)

// IgnitionModel computes the chance that a burning cell ignites a vegetated
// 4-neighbor. The static layers are shared, never copied or modified.
type IgnitionModel struct {
	Size      int
	Elevation core.Grid[float64]
	Fuel      core.Grid[int]
	Params    Params
}

// SlopeFactor grows with the absolute elevation difference between the two cells.
func (m IgnitionModel) SlopeFactor(src, dst Cell) float64 {
	rise := math.Abs(m.Elevation.At(dst.Row, dst.Col) - m.Elevation.At(src.Row, src.Col))
	angle := math.Atan(rise / (float64(m.Size) * math.Sqrt2))
	return math.Exp(m.Params.SlopeCoeff * angle)
}

// WindFactor is largest when the wind at dst blows along src→dst and decays
// with misalignment.
func (m IgnitionModel) WindFactor(src, dst Cell, wind WindField) float64 {
	speed := wind.Speed.At(dst.Row, dst.Col)
	heading := math.Atan2(float64(dst.Row-src.Row), float64(dst.Col-src.Col))
	diff := wind.Direction.At(dst.Row, dst.Col) - heading
	return math.Exp(m.Params.WindSpeedCoeff*speed) *
		math.Exp(m.Params.WindAlignCoeff*speed*(math.Cos(diff)-1))
}

// FuelFactor scales linearly with the target's fuel type.
func (m IgnitionModel) FuelFactor(dst Cell) float64 {
	return float64(m.Fuel.At(dst.Row, dst.Col)) / 10.0
}

// Probability returns the unclamped ignition probability for src→dst. Values
// at or above one make ignition certain when drawn against a uniform [0,1).
func (m IgnitionModel) Probability(src, dst Cell, wind WindField) float64 {
	return m.Params.IgnitionBase *
		m.SlopeFactor(src, dst) *
		m.WindFactor(src, dst, wind) *
		m.FuelFactor(dst)
}
