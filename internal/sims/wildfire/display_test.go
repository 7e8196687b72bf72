package wildfire

import (
	"image/color"
	"testing"
)

func TestHeatColorRamp(t *testing.T) {
	if got := HeatColor(-5); got != (color.RGBA{B: 255, A: 255}) {
		t.Fatalf("below ambient should clamp to blue, got %+v", got)
	}
	if got := HeatColor(2000); got != (color.RGBA{R: 139, A: 255}) {
		t.Fatalf("above the ramp should clamp to maroon, got %+v", got)
	}
	if got := HeatColor(200); got != (color.RGBA{R: 255, G: 255, A: 255}) {
		t.Fatalf("200C should be yellow, got %+v", got)
	}
	mid := HeatColor(500)
	if mid.R != 255 || mid.G == 0 || mid.G >= 165 {
		t.Fatalf("500C should sit between orange and red, got %+v", mid)
	}
}

func TestPaletteCoversStates(t *testing.T) {
	sim, err := New(scenarioConfig(6, 2, 1, 0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pal := sim.Palette()
	for _, v := range sim.Cells() {
		if int(v) >= len(pal) {
			t.Fatalf("display value %d has no palette entry", v)
		}
	}
}
