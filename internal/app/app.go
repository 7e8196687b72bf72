//go:build ebiten

package app

import (
	"time"

	"wildfire-ca/internal/core"
	"wildfire-ca/internal/render"
	"wildfire-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a wildfire run to the ebiten.Game interface.
type Game struct {
	player  *Player
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
	frame    ui.Frame
}

// New constructs a Game for the provided player.
func New(player *Player, cfg *Config) *Game {
	size := player.Sim().Size()
	g := &Game{
		player:   player,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(cfg.Scale),
		hud:      ui.NewHUD(player.Sim(), cfg.HUDWidth),
		pacer:    core.NewFixedStep(cfg.TPS),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     player.Sim().Seed(),
	}
	g.frame = player.Frame()
	return g
}

// Reset restarts the run with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.player.Reset(seed)
	g.hud.Refresh(g.player.Sim())
	g.tickOnce = false
}

// Update handles input and advances playback at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.paused = true
		g.player.Back()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.player.ToggleHeat()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.pacer.SetTPS(g.pacer.TPS() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.pacer.SetTPS(max(1, g.pacer.TPS()/2))
	}

	g.overlay.Update()

	if g.tickOnce {
		g.player.Forward()
		g.tickOnce = false
	} else if !g.paused && g.pacer.ShouldStep() {
		if !g.player.Forward() {
			g.paused = true
		}
	}
	g.frame = g.player.Frame()
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.player.Live() {
		sim := g.player.Sim()
		g.painter.BlitPalette(screen, sim.Cells(), sim.Palette(), g.scale)
	} else {
		g.painter.BlitColors(screen, g.player.Colors(g.frame), g.scale)
	}
	g.overlay.Draw(screen, g.frame)
	size := g.player.Sim().Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale, g.frame,
		ui.ViewState{Paused: g.paused, Heat: g.player.Heat(), Seed: g.seed})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.player.Sim().Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
