//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/MagicLemma/alchimia/internal/sand"
)

// Overlay draws optional debugging visuals on top of the world view.
// Currently: a tint over every awake chunk, toggled with C.
type Overlay struct {
	world *sand.World
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for the given world.
func NewOverlay(world *sand.World, scale int) *Overlay {
	o := &Overlay{world: world, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update processes the overlay's own input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.show = !o.show
	}
}

// Draw renders the chunk-activity tint when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}

	side := o.world.Size() / sand.ChunkSize
	span := float64(sand.ChunkSize * o.scale)
	for cy := 0; cy < side; cy++ {
		for cx := 0; cx < side; cx++ {
			pos := sand.Pos{X: cx * sand.ChunkSize, Y: cy * sand.ChunkSize}
			if !o.world.IsChunkAwake(pos) {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(span, span)
			op.GeoM.Translate(float64(cx)*span, float64(cy)*span)
			op.ColorScale.Scale(1, 1, 1, 0.12)
			screen.DrawImage(o.pixel, op)
		}
	}
}
