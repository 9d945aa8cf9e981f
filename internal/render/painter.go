//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	iw, ih int
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for a grid of w by h cells.
func NewGridPainter(w, h int) *GridPainter {
	iw, ih := ImageSize(w, h)
	gp := &GridPainter{iw: iw, ih: ih, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(iw, ih)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.iw*gp.ih {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.iw, gp.ih }
