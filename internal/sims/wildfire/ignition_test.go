package wildfire

import (
	"math"
	"testing"

	"wildfire-ca/internal/core"
)

func calmModel(size int, fuel core.Grid[int]) IgnitionModel {
	return IgnitionModel{
		Size:      size,
		Elevation: flatElevation(size),
		Fuel:      fuel,
		Params:    DefaultConfig().Params,
	}
}

func TestIgnitionReducesToFuelOnFlatCalmGround(t *testing.T) {
	size := 5
	fuel := core.NewGrid[int](size, size)
	wind := FixedWind{Size: size}.Next(0, nil)
	src := Cell{Row: 2, Col: 2}
	dst := Cell{Row: 2, Col: 3}

	prev := -1.0
	for f := 0; f <= 10; f++ {
		fuel.Set(dst.Row, dst.Col, f)
		m := calmModel(size, fuel)
		got := m.Probability(src, dst, wind)
		want := 0.7 * float64(f) / 10
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("fuel %d: probability %.6f, want %.6f", f, got, want)
		}
		if got <= prev {
			t.Fatalf("probability must strictly increase with fuel: %d gave %.6f after %.6f", f, got, prev)
		}
		prev = got
	}
}

func TestWindFactorFavoursAlignedWind(t *testing.T) {
	size := 5
	m := calmModel(size, uniformFuel(size, 10))
	src := Cell{Row: 2, Col: 2}
	east := Cell{Row: 2, Col: 3}
	west := Cell{Row: 2, Col: 1}

	// Direction 0 points along +col, i.e. from src towards east.
	wind := FixedWind{Size: size, Speed: 5, Direction: 0}.Next(0, nil)
	aligned := m.WindFactor(src, east, wind)
	opposed := m.WindFactor(src, west, wind)
	if aligned <= opposed {
		t.Fatalf("aligned factor %.4f should exceed opposed %.4f", aligned, opposed)
	}
	if want := math.Exp(0.0045 * 5); math.Abs(aligned-want) > 1e-12 {
		t.Fatalf("fully aligned factor %.6f, want %.6f", aligned, want)
	}

	calm := FixedWind{Size: size}.Next(0, nil)
	if got := m.WindFactor(src, west, calm); got != 1 {
		t.Fatalf("calm wind factor %.6f, want 1", got)
	}
}

func TestSlopeFactorUsesAbsoluteRise(t *testing.T) {
	size := 10
	elev := flatElevation(size)
	elev.Set(4, 5, 50)
	m := IgnitionModel{Size: size, Elevation: elev, Fuel: uniformFuel(size, 10), Params: DefaultConfig().Params}

	up := m.SlopeFactor(Cell{4, 4}, Cell{4, 5})
	down := m.SlopeFactor(Cell{4, 5}, Cell{4, 4})
	if up != down {
		t.Fatalf("slope factor should be symmetric: %.6f vs %.6f", up, down)
	}
	want := math.Exp(0.088 * math.Atan(50/(10*math.Sqrt2)))
	if math.Abs(up-want) > 1e-12 {
		t.Fatalf("slope factor %.6f, want %.6f", up, want)
	}
	if up <= 1 {
		t.Fatal("any rise should increase the slope factor above 1")
	}
}

func TestProbabilityIsNotClamped(t *testing.T) {
	size := 5
	m := calmModel(size, uniformFuel(size, 10))
	wind := FixedWind{Size: size, Speed: 200, Direction: 0}.Next(0, nil)
	p := m.Probability(Cell{2, 2}, Cell{2, 3}, wind)
	if p <= 1 {
		t.Fatalf("strong aligned wind should push probability above 1, got %.4f", p)
	}
}
