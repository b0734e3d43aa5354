//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a world-sized RGBA buffer into a single texture and
// draws it scaled to the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads rgba (4 bytes per cell, row-major) and draws it onto dst at
// the given integer scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, rgba []byte, scale int) {
	if len(rgba) != 4*gp.w*gp.h {
		return
	}
	gp.img.WritePixels(rgba)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
