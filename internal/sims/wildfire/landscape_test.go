package wildfire

import (
	"math"
	"slices"
	"testing"

	"wildfire-ca/internal/core"
)

func TestValleyElevationLowestOnDiagonal(t *testing.T) {
	p := DefaultConfig().Params
	size := 16
	elev := ValleyElevation(size, p)

	want := p.BaseElevation - p.ValleyDepth
	for i := 0; i < size; i++ {
		if got := elev.At(i, i); math.Abs(got-want) > 1e-9 {
			t.Fatalf("diagonal (%d,%d) = %.3f, want %.3f", i, i, got, want)
		}
		for j := 0; j < size; j++ {
			if elev.At(i, j) < elev.At(i, i)-1e-9 {
				t.Fatalf("(%d,%d) lower than the valley floor", i, j)
			}
			if elev.At(i, j) != elev.At(j, i) {
				t.Fatalf("valley must be symmetric about the diagonal at (%d,%d)", i, j)
			}
		}
	}
	if elev.At(0, size-1) <= elev.At(0, 1) {
		t.Fatal("elevation should rise away from the diagonal")
	}
}

func TestGenerateFuelDeterministicAndInRange(t *testing.T) {
	p := DefaultConfig().Params
	a := GenerateFuel(64, p, core.NewRNG(7))
	b := GenerateFuel(64, p, core.NewRNG(7))
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("fuel generation must be deterministic for a seed")
	}
	c := GenerateFuel(64, p, core.NewRNG(8))
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds should produce different fuel maps")
	}

	barren := 0
	for _, f := range a.Cells() {
		if f < 0 || f > 10 {
			t.Fatalf("fuel %d outside [0,10]", f)
		}
		if f == 0 {
			barren++
		}
	}
	frac := float64(barren) / float64(len(a.Cells()))
	if frac < 0.05 || frac > 0.15 {
		t.Fatalf("barren fraction %.3f far from 0.1", frac)
	}
}

func TestGenerateFuelWithoutBarrenNeverZero(t *testing.T) {
	p := DefaultConfig().Params
	p.BarrenChance = 0
	fuel := GenerateFuel(32, p, core.NewRNG(1))
	for i, f := range fuel.Cells() {
		if f < 1 {
			t.Fatalf("cell %d has fuel %d with barren chance disabled", i, f)
		}
	}
}
