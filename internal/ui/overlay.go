//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional layers on top of the fire map: wind arrows (1),
// elevation shading (2) and hotspot markers (3).
type Overlay struct {
	scale        int
	showWind     bool
	showElev     bool
	showHotspots bool
	pixel        *ebiten.Image
	elevationImg *ebiten.Image
	elevationBuf []byte
}

// NewOverlay constructs an overlay with hotspot markers enabled.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale, showHotspots: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the layer toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWind = !o.showWind
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showElev = !o.showElev
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showHotspots = !o.showHotspots
	}
}

// Draw renders the enabled layers for f.
func (o *Overlay) Draw(screen *ebiten.Image, f Frame) {
	if o.showElev {
		o.drawElevation(screen, f)
	}
	if o.showWind {
		o.drawWind(screen, f)
	}
	if o.showHotspots {
		for _, h := range f.Metrics.Hotspots {
			cx := (float64(h.Col) + 0.5) * float64(o.scale)
			cy := (float64(h.Row) + 0.5) * float64(o.scale)
			o.drawRing(screen, cx, cy, float64(o.scale)*1.5, riskColor(int(h.Risk)))
		}
	}
}

func (o *Overlay) drawWind(screen *ebiten.Image, f Frame) {
	speed := f.Snapshot.Wind.Speed
	dir := f.Snapshot.Wind.Direction
	if speed.W == 0 || speed.H == 0 {
		return
	}
	const (
		maxSpeedEstimate = 4.0
		headAngle        = math.Pi / 6
	)
	spacing := max(4, speed.W/16)
	span := float64(spacing * o.scale)
	for r := spacing / 2; r < speed.H; r += spacing {
		for c := spacing / 2; c < speed.W; c += spacing {
			vx, vy := windVector(speed.At(r, c), dir.At(r, c))
			mag := math.Hypot(vx, vy)
			if mag < 1e-3 {
				continue
			}
			norm := clamp01(mag / maxSpeedEstimate)
			length := span * (0.3 + 0.4*math.Sqrt(norm))
			nx, ny := vx/mag, vy/mag
			sx := (float64(c) + 0.5) * float64(o.scale)
			sy := (float64(r) + 0.5) * float64(o.scale)
			tipX, tipY := sx+nx*length*0.6, sy+ny*length*0.6
			tailX, tailY := sx-nx*length*0.4, sy-ny*length*0.4
			col := lerpRGBA(color.RGBA{R: 80, G: 170, B: 230, A: 150}, color.RGBA{R: 150, G: 240, B: 250, A: 240}, norm)
			thickness := math.Max(1, float64(o.scale)*0.6)

			o.drawLine(screen, tailX, tailY, tipX, tipY, thickness, col)
			head := math.Min(length*0.3, float64(o.scale)*4)
			angle := math.Atan2(ny, nx)
			o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*head, tipY-math.Sin(angle+headAngle)*head, thickness, col)
			o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*head, tipY-math.Sin(angle-headAngle)*head, thickness, col)
		}
	}
}

func (o *Overlay) drawElevation(screen *ebiten.Image, f Frame) {
	w, h := f.Elevation.W, f.Elevation.H
	if w == 0 || h == 0 {
		return
	}
	if o.elevationImg == nil || o.elevationImg.Bounds().Dx() != w || o.elevationImg.Bounds().Dy() != h {
		o.elevationImg = ebiten.NewImage(w, h)
		o.elevationBuf = make([]byte, 4*w*h)
		elevationShade(o.elevationBuf, f.Elevation.Cells(), w, h)
		o.elevationImg.WritePixels(o.elevationBuf)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.elevationImg, op)
}

func (o *Overlay) drawRing(screen *ebiten.Image, cx, cy, radius float64, col color.RGBA) {
	const segments = 12
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / segments
		a1 := 2 * math.Pi * float64(i+1) / segments
		o.drawLine(screen,
			cx+radius*math.Cos(a0), cy+radius*math.Sin(a0),
			cx+radius*math.Cos(a1), cy+radius*math.Sin(a1),
			1, col)
	}
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
