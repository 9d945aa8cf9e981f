//go:build ebiten

package app

import (
	"image/color"

	"textlife/internal/core"
	"textlife/internal/render"
	"textlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. Each key press
// advances one generation, like each byte read by the console driver.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	auto    *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale int
	keys  []ebiten.Key
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg ViewConfig) *Game {
	cfg = cfg.normalize()
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim),
		auto:     core.NewFixedStep(cfg.TPS),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}
	g.overlay.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.auto.Restart()
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		if g.auto.ShouldStep() {
			g.sim.Step()
		}
		return nil
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch k {
		case ebiten.KeyR, ebiten.KeyTab, ebiten.KeySpace:
			continue
		}
		g.sim.Step()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	iw, ih := g.painter.Size()
	return iw * g.scale, ih * g.scale
}
