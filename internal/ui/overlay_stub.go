//go:build !ebiten

package ui

import "github.com/MagicLemma/alchimia/internal/sand"

// Overlay is a placeholder in headless builds.
type Overlay struct{}

// NewOverlay constructs a placeholder overlay.
func NewOverlay(*sand.World, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op in headless builds.
func (o *Overlay) Draw(any) {}
