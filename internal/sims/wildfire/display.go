package wildfire

import (
	"image/color"
	"math"
)

var statePalette = []color.RGBA{
	Empty:     {R: 139, G: 69, B: 19, A: 255},
	Vegetated: {R: 34, G: 139, B: 34, A: 255},
	Burning:   {R: 255, G: 69, B: 0, A: 255},
	Ash:       {R: 47, G: 79, B: 79, A: 255},
}

// Palette maps the values returned by Cells to colors.
func (s *Simulation) Palette() []color.RGBA {
	return statePalette
}

type colorStop struct {
	temp float64
	c    color.RGBA
}

var heatStops = []colorStop{
	{20, color.RGBA{R: 0, G: 0, B: 255, A: 255}},
	{50, color.RGBA{R: 0, G: 255, B: 255, A: 255}},
	{100, color.RGBA{R: 0, G: 255, B: 0, A: 255}},
	{200, color.RGBA{R: 255, G: 255, B: 0, A: 255}},
	{400, color.RGBA{R: 255, G: 165, B: 0, A: 255}},
	{600, color.RGBA{R: 255, G: 0, B: 0, A: 255}},
	{900, color.RGBA{R: 139, G: 0, B: 0, A: 255}},
}

// HeatColor maps a temperature in °C onto the blue→cyan→green→yellow→orange→
// red→maroon ramp. Values outside [20,900] clamp to the ends.
func HeatColor(tempC float64) color.RGBA {
	if tempC <= heatStops[0].temp || math.IsNaN(tempC) {
		return heatStops[0].c
	}
	for i := 1; i < len(heatStops); i++ {
		hi := heatStops[i]
		if tempC > hi.temp {
			continue
		}
		lo := heatStops[i-1]
		return blendColors(lo.c, hi.c, (tempC-lo.temp)/(hi.temp-lo.temp))
	}
	return heatStops[len(heatStops)-1].c
}

func blendColors(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*inv + float64(b)*w + 0.5) }
	return color.RGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}
