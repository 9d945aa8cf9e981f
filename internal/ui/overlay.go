//go:build ebiten

package ui

import (
	"image/color"

	"textlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const overlayPadding = 4

// Overlay draws a status line with the sim name and generation on top of the
// board. Tab toggles it.
type Overlay struct {
	sim    core.Sim
	hidden bool
	shade  *ebiten.Image
}

// NewOverlay constructs an overlay for sim.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim}
	o.shade = ebiten.NewImage(1, 1)
	o.shade.Fill(color.RGBA{A: 160})
	return o
}

// Update toggles visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.hidden = !o.hidden
	}
}

// Draw paints the status line in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.hidden {
		return
	}
	label := StatusLabel(o.sim.Name(), o.sim.Generation())
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*overlayPadding), float64(bounds.Dy()+2*overlayPadding))
	screen.DrawImage(o.shade, op)

	text.Draw(screen, label, face, overlayPadding-bounds.Min.X, overlayPadding-bounds.Min.Y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
