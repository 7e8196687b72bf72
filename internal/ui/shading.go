package ui

import (
	"image/color"
	"math"
)

// riskColors tints hotspot markers by risk level.
var riskColors = [...]color.RGBA{
	{R: 120, G: 200, B: 120, A: 220},
	{R: 230, G: 220, B: 90, A: 220},
	{R: 245, G: 160, B: 60, A: 230},
	{R: 240, G: 70, B: 50, A: 240},
	{R: 200, G: 40, B: 200, A: 250},
}

func riskColor(level int) color.RGBA {
	if level < 0 || level >= len(riskColors) {
		return riskColors[len(riskColors)-1]
	}
	return riskColors[level]
}

// windVector converts speed and direction into screen-space components.
// Direction is measured from the column axis towards increasing rows.
func windVector(speed, direction float64) (vx, vy float64) {
	return speed * math.Cos(direction), speed * math.Sin(direction)
}

// elevationShade fills buf with a translucent hypsometric tint of field.
func elevationShade(buf []byte, field []float64, w, h int) {
	if len(field) != w*h || len(field) == 0 {
		return
	}
	minVal, maxVal := field[0], field[0]
	for _, v := range field {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	span := maxVal - minVal
	if span == 0 {
		span = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			col := elevationColor((field[idx] - minVal) / span)

			maxDiff := 0.0
			for _, n := range [...]struct{ dx, dy int }{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nx, ny := x+n.dx, y+n.dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				maxDiff = math.Max(maxDiff, math.Abs(field[idx]-field[ny*w+nx]))
			}
			alpha := float64(col.A) * (0.55 + 0.45*clamp01(maxDiff/span))

			base := idx * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = uint8(math.Round(alpha))
		}
	}
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			return lerpRGBA(prev.col, curr.col, (t-prev.t)/(curr.t-prev.t))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
