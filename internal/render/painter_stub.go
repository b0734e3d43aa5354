//go:build !ebiten

package render

// GridPainter is a placeholder in headless builds.
type GridPainter struct {
	w, h int
}

// NewGridPainter allocates a placeholder painter.
func NewGridPainter(w, h int) *GridPainter { return &GridPainter{w: w, h: h} }

// Blit is a no-op in headless builds.
func (gp *GridPainter) Blit(any, []byte, int) {}

// Size returns the dimensions the painter was created with.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
